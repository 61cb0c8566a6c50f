package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// --- Fixed clock ---

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

// --- Mock repository ---

type mockDiscountRepo struct {
	discounts map[string]*models.Discount
}

func newMockDiscountRepo() *mockDiscountRepo {
	return &mockDiscountRepo{discounts: make(map[string]*models.Discount)}
}

func (m *mockDiscountRepo) Create(_ context.Context, d *models.Discount) error {
	if _, exists := m.discounts[d.Code]; exists {
		return errDuplicateKey
	}
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	m.discounts[d.Code] = d
	return nil
}

func (m *mockDiscountRepo) FindByCode(_ context.Context, code string) (*models.Discount, error) {
	d, ok := m.discounts[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, errNotFound
	}
	return d, nil
}

func (m *mockDiscountRepo) Redeem(_ context.Context, code string) error {
	d, ok := m.discounts[strings.ToUpper(code)]
	if !ok {
		return repository.ErrUsageLimitReached
	}
	if d.UsageLimit != nil && d.UsedCount >= *d.UsageLimit {
		return repository.ErrUsageLimitReached
	}
	d.UsedCount++
	return nil
}

func (m *mockDiscountRepo) Release(_ context.Context, code string) error {
	if d, ok := m.discounts[strings.ToUpper(code)]; ok && d.UsedCount > 0 {
		d.UsedCount--
	}
	return nil
}

func (m *mockDiscountRepo) Deactivate(_ context.Context, code string) error {
	d, ok := m.discounts[strings.ToUpper(code)]
	if !ok {
		return errNotFound
	}
	d.Active = false
	return nil
}

func (m *mockDiscountRepo) FindAll(_ context.Context, _, _ int) ([]models.Discount, int64, error) {
	var result []models.Discount
	for _, d := range m.discounts {
		result = append(result, *d)
	}
	return result, int64(len(result)), nil
}

type stringError string

func (e stringError) Error() string { return string(e) }

const (
	errNotFound     = stringError("record not found")
	errDuplicateKey = stringError("duplicate key value violates unique constraint")
)

// --- Helpers ---

func newDiscountService(repo repository.DiscountRepository) services.DiscountService {
	logger, _ := zap.NewDevelopment()
	return services.NewDiscountService(repo, fixedClock{now: testNow}, logger)
}

func activeDiscount(code string, discountType models.DiscountType, value float64) *models.Discount {
	return &models.Discount{
		ID:         uuid.New(),
		Code:       code,
		Type:       discountType,
		Value:      value,
		ValidFrom:  testNow.Add(-24 * time.Hour),
		ValidUntil: testNow.Add(24 * time.Hour),
		Active:     true,
	}
}

// --- CreateDiscount ---

func TestCreateDiscount_UppercasesCode(t *testing.T) {
	repo := newMockDiscountRepo()
	svc := newDiscountService(repo)

	discount, svcErr := svc.CreateDiscount(context.Background(), &models.CreateDiscountRequest{
		Code:       "save10",
		Type:       models.DiscountTypePercentage,
		Value:      10,
		ValidFrom:  testNow,
		ValidUntil: testNow.Add(24 * time.Hour),
	})
	assert.Nil(t, svcErr)
	assert.Equal(t, "SAVE10", discount.Code)
	assert.True(t, discount.Active)
}

func TestCreateDiscount_RejectsInvertedWindow(t *testing.T) {
	svc := newDiscountService(newMockDiscountRepo())

	_, svcErr := svc.CreateDiscount(context.Background(), &models.CreateDiscountRequest{
		Code:       "SAVE10",
		Type:       models.DiscountTypeFixed,
		Value:      100,
		ValidFrom:  testNow.Add(24 * time.Hour),
		ValidUntil: testNow,
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateDiscount_RejectsPercentageOver100(t *testing.T) {
	svc := newDiscountService(newMockDiscountRepo())

	_, svcErr := svc.CreateDiscount(context.Background(), &models.CreateDiscountRequest{
		Code:       "TOOMUCH",
		Type:       models.DiscountTypePercentage,
		Value:      150,
		ValidFrom:  testNow,
		ValidUntil: testNow.Add(24 * time.Hour),
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateDiscount_RejectsMaxDiscountOnFixed(t *testing.T) {
	svc := newDiscountService(newMockDiscountRepo())

	cap := 50.0
	_, svcErr := svc.CreateDiscount(context.Background(), &models.CreateDiscountRequest{
		Code:        "FLAT100",
		Type:        models.DiscountTypeFixed,
		Value:       100,
		MaxDiscount: &cap,
		ValidFrom:   testNow,
		ValidUntil:  testNow.Add(24 * time.Hour),
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
}

func TestCreateDiscount_DuplicateCode(t *testing.T) {
	repo := newMockDiscountRepo()
	repo.discounts["SAVE10"] = activeDiscount("SAVE10", models.DiscountTypePercentage, 10)
	svc := newDiscountService(repo)

	_, svcErr := svc.CreateDiscount(context.Background(), &models.CreateDiscountRequest{
		Code:       "SAVE10",
		Type:       models.DiscountTypePercentage,
		Value:      10,
		ValidFrom:  testNow,
		ValidUntil: testNow.Add(24 * time.Hour),
	})
	assert.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)
}

// --- Validate ---

func TestValidate_PercentageDiscount(t *testing.T) {
	repo := newMockDiscountRepo()
	repo.discounts["SAVE10"] = activeDiscount("SAVE10", models.DiscountTypePercentage, 10)
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "save10", 1000)
	assert.Nil(t, svcErr)
	assert.True(t, resp.Valid)
	assert.Equal(t, 100.0, resp.DiscountAmount)
}

func TestValidate_PercentageCappedByMaxDiscount(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("SAVE20", models.DiscountTypePercentage, 20)
	maxDiscount := 150.0
	d.MaxDiscount = &maxDiscount
	repo.discounts["SAVE20"] = d
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "SAVE20", 1000)
	assert.Nil(t, svcErr)
	assert.True(t, resp.Valid)
	assert.Equal(t, 150.0, resp.DiscountAmount) // 20% of 1000 capped at 150
}

func TestValidate_FixedDiscountClampedToSubtotal(t *testing.T) {
	repo := newMockDiscountRepo()
	repo.discounts["FLAT500"] = activeDiscount("FLAT500", models.DiscountTypeFixed, 500)
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "FLAT500", 300)
	assert.Nil(t, svcErr)
	assert.True(t, resp.Valid)
	assert.Equal(t, 300.0, resp.DiscountAmount)
}

func TestValidate_UnknownCode(t *testing.T) {
	svc := newDiscountService(newMockDiscountRepo())

	resp, svcErr := svc.Validate(context.Background(), "NOPE", 1000)
	assert.Nil(t, svcErr)
	assert.False(t, resp.Valid)
	assert.Equal(t, models.DiscountNotFound, resp.Reason)
}

func TestValidate_InactiveCode(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("OLD", models.DiscountTypeFixed, 50)
	d.Active = false
	repo.discounts["OLD"] = d
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "OLD", 1000)
	assert.Nil(t, svcErr)
	assert.False(t, resp.Valid)
	assert.Equal(t, models.DiscountInactive, resp.Reason)
}

func TestValidate_WindowBoundsAreInclusive(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("EDGE", models.DiscountTypeFixed, 50)
	d.ValidFrom = testNow
	d.ValidUntil = testNow
	repo.discounts["EDGE"] = d
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "EDGE", 1000)
	assert.Nil(t, svcErr)
	assert.True(t, resp.Valid)
}

func TestValidate_ExpiredCode(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("PAST", models.DiscountTypeFixed, 50)
	d.ValidUntil = testNow.Add(-time.Second)
	repo.discounts["PAST"] = d
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "PAST", 1000)
	assert.Nil(t, svcErr)
	assert.False(t, resp.Valid)
	assert.Equal(t, models.DiscountExpired, resp.Reason)
}

func TestValidate_NotYetValid(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("FUTURE", models.DiscountTypeFixed, 50)
	d.ValidFrom = testNow.Add(time.Hour)
	repo.discounts["FUTURE"] = d
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "FUTURE", 1000)
	assert.Nil(t, svcErr)
	assert.False(t, resp.Valid)
	assert.Equal(t, models.DiscountExpired, resp.Reason)
}

func TestValidate_MinOrderNotMet(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("BIG", models.DiscountTypePercentage, 10)
	d.MinOrderAmount = 500
	repo.discounts["BIG"] = d
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "BIG", 499.99)
	assert.Nil(t, svcErr)
	assert.False(t, resp.Valid)
	assert.Equal(t, models.MinOrderNotMet, resp.Reason)

	// Exactly the minimum qualifies.
	resp, svcErr = svc.Validate(context.Background(), "BIG", 500)
	assert.Nil(t, svcErr)
	assert.True(t, resp.Valid)
}

func TestValidate_UsageLimitReached(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("LIMITED", models.DiscountTypeFixed, 50)
	limit := 3
	d.UsageLimit = &limit
	d.UsedCount = 3
	repo.discounts["LIMITED"] = d
	svc := newDiscountService(repo)

	resp, svcErr := svc.Validate(context.Background(), "LIMITED", 1000)
	assert.Nil(t, svcErr)
	assert.False(t, resp.Valid)
	assert.Equal(t, models.UsageLimitReached, resp.Reason)
}

func TestValidate_DoesNotConsumeUsage(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("READ", models.DiscountTypeFixed, 50)
	repo.discounts["READ"] = d
	svc := newDiscountService(repo)

	for i := 0; i < 5; i++ {
		resp, svcErr := svc.Validate(context.Background(), "READ", 1000)
		assert.Nil(t, svcErr)
		assert.True(t, resp.Valid)
	}
	assert.Equal(t, 0, d.UsedCount)
}

// --- Redeem / Release ---

func TestRedeem_IncrementsUsedCount(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("ONCE", models.DiscountTypeFixed, 50)
	limit := 1
	d.UsageLimit = &limit
	repo.discounts["ONCE"] = d
	svc := newDiscountService(repo)

	assert.Nil(t, svc.Redeem(context.Background(), "ONCE"))
	assert.Equal(t, 1, d.UsedCount)

	svcErr := svc.Redeem(context.Background(), "ONCE")
	assert.NotNil(t, svcErr)
	assert.Equal(t, models.UsageLimitReached, svcErr.Code)
	assert.Equal(t, 1, d.UsedCount)
}

func TestRelease_ReturnsARedemption(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("BACK", models.DiscountTypeFixed, 50)
	d.UsedCount = 2
	repo.discounts["BACK"] = d
	svc := newDiscountService(repo)

	svc.Release(context.Background(), "BACK")
	assert.Equal(t, 1, d.UsedCount)
}

// --- Deactivate ---

func TestDeactivateDiscount(t *testing.T) {
	repo := newMockDiscountRepo()
	d := activeDiscount("GONE", models.DiscountTypeFixed, 50)
	repo.discounts["GONE"] = d
	svc := newDiscountService(repo)

	assert.Nil(t, svc.DeactivateDiscount(context.Background(), "GONE"))
	assert.False(t, d.Active)

	svcErr := svc.DeactivateDiscount(context.Background(), "MISSING")
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
}
