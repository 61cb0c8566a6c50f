package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
)

// DiscountService defines the interface for discount business logic.
//
// Validate is a pure read: it never touches usedCount. Redemption happens
// once, at order placement, through Redeem; Release undoes a redemption when
// an order is cancelled or checkout fails after the increment.
type DiscountService interface {
	CreateDiscount(ctx context.Context, req *models.CreateDiscountRequest) (*models.Discount, *ServiceError)
	Validate(ctx context.Context, code string, subtotal float64) (*models.ValidateDiscountResponse, *ServiceError)
	Redeem(ctx context.Context, code string) *ServiceError
	Release(ctx context.Context, code string)
	GetDiscount(ctx context.Context, code string) (*models.Discount, *ServiceError)
	DeactivateDiscount(ctx context.Context, code string) *ServiceError
	ListDiscounts(ctx context.Context, page, limit int) ([]models.Discount, int64, *ServiceError)
}

type discountServiceImpl struct {
	repo   repository.DiscountRepository
	clock  Clock
	logger *zap.Logger
}

// NewDiscountService creates a new DiscountService.
func NewDiscountService(repo repository.DiscountRepository, clock Clock, logger *zap.Logger) DiscountService {
	return &discountServiceImpl{repo: repo, clock: clock, logger: logger}
}

// CreateDiscount creates a new discount code.
func (s *discountServiceImpl) CreateDiscount(ctx context.Context, req *models.CreateDiscountRequest) (*models.Discount, *ServiceError) {
	if !req.ValidFrom.Before(req.ValidUntil) {
		return nil, &ServiceError{StatusCode: 400, Message: "validFrom must be before validUntil"}
	}
	if req.Type == models.DiscountTypePercentage && req.Value > 100 {
		return nil, &ServiceError{StatusCode: 400, Message: "Percentage discount cannot exceed 100"}
	}
	if req.MaxDiscount != nil && *req.MaxDiscount <= 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "maxDiscount must be positive"}
	}
	if req.MaxDiscount != nil && req.Type == models.DiscountTypeFixed {
		return nil, &ServiceError{StatusCode: 400, Message: "maxDiscount applies only to percentage discounts"}
	}
	if req.UsageLimit != nil && *req.UsageLimit <= 0 {
		return nil, &ServiceError{StatusCode: 400, Message: "usageLimit must be positive"}
	}

	discount := &models.Discount{
		Code:           strings.ToUpper(strings.TrimSpace(req.Code)),
		Type:           req.Type,
		Value:          req.Value,
		MinOrderAmount: req.MinOrderAmount,
		MaxDiscount:    req.MaxDiscount,
		UsageLimit:     req.UsageLimit,
		ValidFrom:      req.ValidFrom,
		ValidUntil:     req.ValidUntil,
		Active:         true,
	}

	if err := s.repo.Create(ctx, discount); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, &ServiceError{StatusCode: 409, Message: "Discount code already exists"}
		}
		s.logger.Error("Failed to create discount", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create discount"}
	}

	s.logger.Info("Discount created", zap.String("code", discount.Code), zap.String("type", string(discount.Type)))
	return discount, nil
}

// Validate checks whether a code is usable against the given subtotal right
// now and computes the discount amount. Rejections are expected outcomes, not
// errors: the response carries a stable reason code plus a user-facing
// message.
func (s *discountServiceImpl) Validate(ctx context.Context, code string, subtotal float64) (*models.ValidateDiscountResponse, *ServiceError) {
	rejected := func(reason, message string) *models.ValidateDiscountResponse {
		return &models.ValidateDiscountResponse{Valid: false, Code: strings.ToUpper(code), Reason: reason, Message: message}
	}

	discount, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return rejected(models.DiscountNotFound, "This discount code is not valid"), nil
	}

	if !discount.Active {
		return rejected(models.DiscountInactive, "This discount code is no longer active"), nil
	}

	// Window bounds are inclusive on both ends.
	now := s.clock.Now()
	if now.Before(discount.ValidFrom) || now.After(discount.ValidUntil) {
		return rejected(models.DiscountExpired, "This discount code has expired"), nil
	}

	if subtotal < discount.MinOrderAmount {
		return rejected(models.MinOrderNotMet,
			fmt.Sprintf("Minimum order amount of %.2f required", discount.MinOrderAmount)), nil
	}

	if discount.UsageLimit != nil && discount.UsedCount >= *discount.UsageLimit {
		return rejected(models.UsageLimitReached, "This discount code has reached its usage limit"), nil
	}

	var amount float64
	switch discount.Type {
	case models.DiscountTypePercentage:
		amount = subtotal * discount.Value / 100
		if discount.MaxDiscount != nil && amount > *discount.MaxDiscount {
			amount = *discount.MaxDiscount
		}
	case models.DiscountTypeFixed:
		amount = discount.Value
		if amount > subtotal {
			amount = subtotal
		}
	default:
		return nil, &ServiceError{StatusCode: 500, Message: "Unknown discount type"}
	}

	return &models.ValidateDiscountResponse{
		Valid:          true,
		Code:           discount.Code,
		Type:           discount.Type,
		DiscountAmount: amount,
	}, nil
}

// Redeem consumes one use of the code. The repository performs an atomic
// conditional increment, so concurrent checkouts cannot overshoot the limit.
func (s *discountServiceImpl) Redeem(ctx context.Context, code string) *ServiceError {
	if err := s.repo.Redeem(ctx, code); err != nil {
		if err == repository.ErrUsageLimitReached {
			return &ServiceError{StatusCode: 400, Code: models.UsageLimitReached, Message: "This discount code has reached its usage limit"}
		}
		s.logger.Error("Failed to redeem discount", zap.String("code", code), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to apply discount"}
	}
	return nil
}

// Release returns a redemption, e.g. after order cancellation. Best-effort:
// a failure is logged, never surfaced to the caller.
func (s *discountServiceImpl) Release(ctx context.Context, code string) {
	if err := s.repo.Release(ctx, code); err != nil {
		s.logger.Error("Failed to release discount usage", zap.String("code", code), zap.Error(err))
	}
}

// GetDiscount retrieves a discount by code.
func (s *discountServiceImpl) GetDiscount(ctx context.Context, code string) (*models.Discount, *ServiceError) {
	discount, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, &ServiceError{StatusCode: 404, Message: "Discount not found"}
	}
	return discount, nil
}

// DeactivateDiscount deactivates a discount by code.
func (s *discountServiceImpl) DeactivateDiscount(ctx context.Context, code string) *ServiceError {
	if err := s.repo.Deactivate(ctx, code); err != nil {
		if err.Error() == "record not found" {
			return &ServiceError{StatusCode: 404, Message: "Discount not found"}
		}
		s.logger.Error("Failed to deactivate discount", zap.String("code", code), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to deactivate discount"}
	}

	s.logger.Info("Discount deactivated", zap.String("code", code))
	return nil
}

// ListDiscounts returns paginated discounts.
func (s *discountServiceImpl) ListDiscounts(ctx context.Context, page, limit int) ([]models.Discount, int64, *ServiceError) {
	discounts, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list discounts", zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to list discounts"}
	}
	return discounts, total, nil
}
