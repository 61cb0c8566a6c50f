package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
)

// ShippingRuleRepository defines the interface for shipping rule data access.
type ShippingRuleRepository interface {
	Create(ctx context.Context, rule *models.ShippingRule) error
	FindForPincode(ctx context.Context, pincode string) (*models.ShippingRule, error)
	Deactivate(ctx context.Context, id string) error
	FindAll(ctx context.Context, page, limit int) ([]models.ShippingRule, int64, error)
}

// GormShippingRuleRepository implements ShippingRuleRepository using GORM.
type GormShippingRuleRepository struct {
	db *gorm.DB
}

// NewGormShippingRuleRepository creates a new GormShippingRuleRepository.
func NewGormShippingRuleRepository(db *gorm.DB) ShippingRuleRepository {
	return &GormShippingRuleRepository{db: db}
}

// Create inserts a new shipping rule.
func (r *GormShippingRuleRepository) Create(ctx context.Context, rule *models.ShippingRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

// FindForPincode returns the active rule covering the pincode. Ranges may
// overlap, so matches are ordered deterministically: narrowest range first,
// then most recently created. Fixed-width codes make string comparison
// equivalent to numeric comparison.
func (r *GormShippingRuleRepository) FindForPincode(ctx context.Context, pincode string) (*models.ShippingRule, error) {
	var rule models.ShippingRule
	err := r.db.WithContext(ctx).
		Where("active = ? AND pincode_start <= ? AND pincode_end >= ?", true, pincode, pincode).
		Order("(pincode_end::bigint - pincode_start::bigint) ASC").
		Order("created_at DESC").
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

// Deactivate soft-deactivates a rule by id.
func (r *GormShippingRuleRepository) Deactivate(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Model(&models.ShippingRule{}).
		Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindAll retrieves paginated rules, newest first.
func (r *GormShippingRuleRepository) FindAll(ctx context.Context, page, limit int) ([]models.ShippingRule, int64, error) {
	var rules []models.ShippingRule
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ShippingRule{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&rules).Error; err != nil {
		return nil, 0, err
	}

	return rules, total, nil
}
