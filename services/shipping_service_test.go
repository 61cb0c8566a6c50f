package services_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// mockShippingRepo resolves pincodes against an in-memory rule list using the
// same fixed-width string comparison as the real query, narrowest range first.
type mockShippingRepo struct {
	rules []*models.ShippingRule
}

func (m *mockShippingRepo) Create(_ context.Context, rule *models.ShippingRule) error {
	if rule.ID == uuid.Nil {
		rule.ID = uuid.New()
	}
	m.rules = append(m.rules, rule)
	return nil
}

func (m *mockShippingRepo) FindForPincode(_ context.Context, pincode string) (*models.ShippingRule, error) {
	var best *models.ShippingRule
	for _, r := range m.rules {
		if !r.Active || pincode < r.PincodeStart || pincode > r.PincodeEnd {
			continue
		}
		if best == nil || span(r) < span(best) {
			best = r
		}
	}
	if best == nil {
		return nil, errNotFound
	}
	return best, nil
}

func span(r *models.ShippingRule) int {
	start, _ := strconv.Atoi(r.PincodeStart)
	end, _ := strconv.Atoi(r.PincodeEnd)
	return end - start
}

func (m *mockShippingRepo) Deactivate(_ context.Context, id string) error {
	for _, r := range m.rules {
		if r.ID.String() == id {
			r.Active = false
			return nil
		}
	}
	return errNotFound
}

func (m *mockShippingRepo) FindAll(_ context.Context, _, _ int) ([]models.ShippingRule, int64, error) {
	var result []models.ShippingRule
	for _, r := range m.rules {
		result = append(result, *r)
	}
	return result, int64(len(result)), nil
}

func newShippingService(repo repository.ShippingRuleRepository) services.ShippingService {
	logger, _ := zap.NewDevelopment()
	return services.NewShippingService(repo, logger)
}

func rule(start, end string, charge float64, cod bool) *models.ShippingRule {
	return &models.ShippingRule{
		ID:             uuid.New(),
		PincodeStart:   start,
		PincodeEnd:     end,
		State:          "Maharashtra",
		DeliveryDays:   3,
		ShippingCharge: charge,
		CodAvailable:   cod,
		Active:         true,
	}
}

func TestCheckPincode_RangeBoundsAreInclusive(t *testing.T) {
	repo := &mockShippingRepo{rules: []*models.ShippingRule{rule("400001", "400099", 50, true)}}
	svc := newShippingService(repo)

	for _, pincode := range []string{"400001", "400050", "400099"} {
		found, svcErr := svc.CheckPincode(context.Background(), pincode)
		assert.Nil(t, svcErr, "pincode %s should be covered", pincode)
		assert.Equal(t, 50.0, found.ShippingCharge)
	}
}

func TestCheckPincode_NarrowestOverlappingRuleWins(t *testing.T) {
	wide := rule("400001", "499999", 80, false)
	narrow := rule("400001", "400099", 40, true)
	svc := newShippingService(&mockShippingRepo{rules: []*models.ShippingRule{wide, narrow}})

	found, svcErr := svc.CheckPincode(context.Background(), "400050")
	assert.Nil(t, svcErr)
	assert.Equal(t, narrow.ID, found.ID)
}

func TestCheckPincode_OutsideRange(t *testing.T) {
	repo := &mockShippingRepo{rules: []*models.ShippingRule{rule("400001", "400099", 50, true)}}
	svc := newShippingService(repo)

	_, svcErr := svc.CheckPincode(context.Background(), "400100")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Equal(t, services.NoShippingCoverage, svcErr.Code)
}

func TestCheckPincode_InvalidFormat(t *testing.T) {
	svc := newShippingService(&mockShippingRepo{})

	for _, pincode := range []string{"40001", "4000123", "40O001", ""} {
		_, svcErr := svc.CheckPincode(context.Background(), pincode)
		assert.NotNil(t, svcErr, "pincode %q should be rejected", pincode)
		assert.Equal(t, 400, svcErr.StatusCode)
	}
}

func TestCheckPincode_InactiveRuleIgnored(t *testing.T) {
	r := rule("400001", "400099", 50, true)
	r.Active = false
	svc := newShippingService(&mockShippingRepo{rules: []*models.ShippingRule{r}})

	_, svcErr := svc.CheckPincode(context.Background(), "400050")
	assert.NotNil(t, svcErr)
	assert.Equal(t, services.NoShippingCoverage, svcErr.Code)
}

func TestCreateRule_RejectsInvertedRange(t *testing.T) {
	svc := newShippingService(&mockShippingRepo{})

	_, svcErr := svc.CreateRule(context.Background(), &models.CreateShippingRuleRequest{
		PincodeStart: "400099",
		PincodeEnd:   "400001",
		State:        "Maharashtra",
		DeliveryDays: 3,
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateRule_SinglePincodeRange(t *testing.T) {
	svc := newShippingService(&mockShippingRepo{})

	created, svcErr := svc.CreateRule(context.Background(), &models.CreateShippingRuleRequest{
		PincodeStart:   "400001",
		PincodeEnd:     "400001",
		State:          "Maharashtra",
		DeliveryDays:   2,
		ShippingCharge: 40,
	})
	assert.Nil(t, svcErr)
	assert.True(t, created.Active)

	found, svcErr := svc.CheckPincode(context.Background(), "400001")
	assert.Nil(t, svcErr)
	assert.Equal(t, created.ID, found.ID)
}
