package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
)

// HomepageSlideRepository defines the interface for homepage slide data access.
type HomepageSlideRepository interface {
	Create(ctx context.Context, slide *models.HomepageSlide) error
	FindActive(ctx context.Context) ([]models.HomepageSlide, error)
	FindAll(ctx context.Context) ([]models.HomepageSlide, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GormHomepageSlideRepository implements HomepageSlideRepository using GORM.
type GormHomepageSlideRepository struct {
	db *gorm.DB
}

// NewGormHomepageSlideRepository creates a new GormHomepageSlideRepository.
func NewGormHomepageSlideRepository(db *gorm.DB) HomepageSlideRepository {
	return &GormHomepageSlideRepository{db: db}
}

// Create inserts a new slide.
func (r *GormHomepageSlideRepository) Create(ctx context.Context, slide *models.HomepageSlide) error {
	return r.db.WithContext(ctx).Create(slide).Error
}

// FindActive retrieves the active slides in display order for the storefront.
func (r *GormHomepageSlideRepository) FindActive(ctx context.Context) ([]models.HomepageSlide, error) {
	var slides []models.HomepageSlide
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

// FindAll retrieves every slide, active or not, in display order.
func (r *GormHomepageSlideRepository) FindAll(ctx context.Context) ([]models.HomepageSlide, error) {
	var slides []models.HomepageSlide
	if err := r.db.WithContext(ctx).
		Order("display_order ASC").
		Order("created_at ASC").
		Find(&slides).Error; err != nil {
		return nil, err
	}
	return slides, nil
}

// Delete removes a slide permanently.
func (r *GormHomepageSlideRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.HomepageSlide{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
