package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
)

// ErrUsageLimitReached is returned by Redeem when the discount's usage limit
// has been exhausted. The conditional update makes the check and the
// increment a single atomic statement, so concurrent redemptions of the same
// code cannot overshoot the limit.
var ErrUsageLimitReached = errors.New("discount usage limit reached")

// DiscountRepository defines the interface for discount data access.
type DiscountRepository interface {
	Create(ctx context.Context, discount *models.Discount) error
	FindByCode(ctx context.Context, code string) (*models.Discount, error)
	Redeem(ctx context.Context, code string) error
	Release(ctx context.Context, code string) error
	Deactivate(ctx context.Context, code string) error
	FindAll(ctx context.Context, page, limit int) ([]models.Discount, int64, error)
}

// GormDiscountRepository implements DiscountRepository using GORM.
type GormDiscountRepository struct {
	db *gorm.DB
}

// NewGormDiscountRepository creates a new GormDiscountRepository.
func NewGormDiscountRepository(db *gorm.DB) DiscountRepository {
	return &GormDiscountRepository{db: db}
}

// Create inserts a new discount.
func (r *GormDiscountRepository) Create(ctx context.Context, discount *models.Discount) error {
	return r.db.WithContext(ctx).Create(discount).Error
}

// FindByCode retrieves a discount by its code (case-insensitive; codes are
// stored upper-cased). Inactive discounts are still returned so the caller
// can distinguish "not found" from "inactive".
func (r *GormDiscountRepository) FindByCode(ctx context.Context, code string) (*models.Discount, error) {
	var discount models.Discount
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&discount).Error
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

// Redeem atomically increments used_count, refusing when the usage limit is
// already exhausted. Returns ErrUsageLimitReached when no row qualifies.
func (r *GormDiscountRepository) Redeem(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Discount{}).
		Where("code = ? AND (usage_limit IS NULL OR used_count < usage_limit)", strings.ToUpper(code)).
		UpdateColumn("used_count", gorm.Expr("used_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUsageLimitReached
	}
	return nil
}

// Release decrements used_count, never below zero. Called when an order is
// cancelled or when checkout fails after a redemption.
func (r *GormDiscountRepository) Release(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Model(&models.Discount{}).
		Where("code = ? AND used_count > 0", strings.ToUpper(code)).
		UpdateColumn("used_count", gorm.Expr("used_count - 1")).
		Error
}

// Deactivate soft-deactivates a discount by setting active = false.
func (r *GormDiscountRepository) Deactivate(ctx context.Context, code string) error {
	result := r.db.WithContext(ctx).
		Model(&models.Discount{}).
		Where("code = ?", strings.ToUpper(code)).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindAll retrieves paginated discounts, newest first.
func (r *GormDiscountRepository) FindAll(ctx context.Context, page, limit int) ([]models.Discount, int64, error) {
	var discounts []models.Discount
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Discount{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&discounts).Error; err != nil {
		return nil, 0, err
	}

	return discounts, total, nil
}
