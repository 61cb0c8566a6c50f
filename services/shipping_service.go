package services

import (
	"context"
	"regexp"

	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
)

// NoShippingCoverage is the stable code returned when no active rule covers a
// pincode. It is a hard stop for checkout: without a rule there is no
// shipping charge and no delivery promise.
const NoShippingCoverage = "NO_SHIPPING_COVERAGE"

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// ShippingService resolves pincodes to shipping rules and manages the rules.
type ShippingService interface {
	CreateRule(ctx context.Context, req *models.CreateShippingRuleRequest) (*models.ShippingRule, *ServiceError)
	// CheckPincode returns the rule covering the pincode, or a 404
	// NoShippingCoverage error when the address is not serviceable.
	CheckPincode(ctx context.Context, pincode string) (*models.ShippingRule, *ServiceError)
	DeactivateRule(ctx context.Context, id string) *ServiceError
	ListRules(ctx context.Context, page, limit int) ([]models.ShippingRule, int64, *ServiceError)
}

type shippingServiceImpl struct {
	repo   repository.ShippingRuleRepository
	logger *zap.Logger
}

// NewShippingService creates a new ShippingService.
func NewShippingService(repo repository.ShippingRuleRepository, logger *zap.Logger) ShippingService {
	return &shippingServiceImpl{repo: repo, logger: logger}
}

// CreateRule creates a new shipping rule after validating the range.
func (s *shippingServiceImpl) CreateRule(ctx context.Context, req *models.CreateShippingRuleRequest) (*models.ShippingRule, *ServiceError) {
	if !pincodePattern.MatchString(req.PincodeStart) || !pincodePattern.MatchString(req.PincodeEnd) {
		return nil, &ServiceError{StatusCode: 400, Message: "Pincodes must be 6-digit numeric strings"}
	}
	if req.PincodeStart > req.PincodeEnd {
		return nil, &ServiceError{StatusCode: 400, Message: "pincodeStart must not exceed pincodeEnd"}
	}

	rule := &models.ShippingRule{
		PincodeStart:   req.PincodeStart,
		PincodeEnd:     req.PincodeEnd,
		State:          req.State,
		DeliveryDays:   req.DeliveryDays,
		ShippingCharge: req.ShippingCharge,
		CodAvailable:   req.CodAvailable,
		Active:         true,
	}

	if err := s.repo.Create(ctx, rule); err != nil {
		s.logger.Error("Failed to create shipping rule", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create shipping rule"}
	}

	s.logger.Info("Shipping rule created",
		zap.String("range", rule.PincodeStart+"-"+rule.PincodeEnd),
		zap.String("state", rule.State),
	)
	return rule, nil
}

// CheckPincode resolves the pincode to its shipping rule.
func (s *shippingServiceImpl) CheckPincode(ctx context.Context, pincode string) (*models.ShippingRule, *ServiceError) {
	if !pincodePattern.MatchString(pincode) {
		return nil, &ServiceError{StatusCode: 400, Message: "Pincode must be a 6-digit numeric string"}
	}

	rule, err := s.repo.FindForPincode(ctx, pincode)
	if err != nil {
		return nil, &ServiceError{
			StatusCode: 404,
			Code:       NoShippingCoverage,
			Message:    "Delivery is not available for this pincode",
		}
	}
	return rule, nil
}

// DeactivateRule deactivates a rule by id.
func (s *shippingServiceImpl) DeactivateRule(ctx context.Context, id string) *ServiceError {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if err.Error() == "record not found" {
			return &ServiceError{StatusCode: 404, Message: "Shipping rule not found"}
		}
		s.logger.Error("Failed to deactivate shipping rule", zap.String("id", id), zap.Error(err))
		return &ServiceError{StatusCode: 500, Message: "Failed to deactivate shipping rule"}
	}
	return nil
}

// ListRules returns paginated shipping rules.
func (s *shippingServiceImpl) ListRules(ctx context.Context, page, limit int) ([]models.ShippingRule, int64, *ServiceError) {
	rules, total, err := s.repo.FindAll(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list shipping rules", zap.Error(err))
		return nil, 0, &ServiceError{StatusCode: 500, Message: "Failed to list shipping rules"}
	}
	return rules, total, nil
}
