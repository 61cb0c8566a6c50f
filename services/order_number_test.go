package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/models"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/services"
)

// sequenceRepo stubs only the latest-number lookup; the other methods are
// never reached by OrderNumberSequence.
type sequenceRepo struct {
	latest map[string]string // prefix -> latest order number
}

func (r *sequenceRepo) LatestOrderNumber(_ context.Context, prefix string) (string, error) {
	return r.latest[prefix], nil
}

func (r *sequenceRepo) Create(context.Context, *models.Order) error { return nil }
func (r *sequenceRepo) FindByID(context.Context, uuid.UUID) (*models.Order, error) {
	return nil, errNotFound
}
func (r *sequenceRepo) FindByOrderNumber(context.Context, string) (*models.Order, error) {
	return nil, errNotFound
}
func (r *sequenceRepo) FindByUserID(context.Context, string, int, int) ([]models.Order, int64, error) {
	return nil, 0, nil
}
func (r *sequenceRepo) FindAll(context.Context, repository.OrderFilter, int, int) ([]models.Order, int64, error) {
	return nil, 0, nil
}
func (r *sequenceRepo) Update(context.Context, *models.Order) error { return nil }
func (r *sequenceRepo) Delete(context.Context, uuid.UUID) error     { return nil }

func TestOrderNumber_FirstOfYear(t *testing.T) {
	seq := services.NewOrderNumberSequence(&sequenceRepo{latest: map[string]string{}})

	number, err := seq.Next(context.Background(), time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "ORD-2026-00001", number)
}

func TestOrderNumber_Increments(t *testing.T) {
	seq := services.NewOrderNumberSequence(&sequenceRepo{
		latest: map[string]string{"ORD-2026-": "ORD-2026-00042"},
	})

	number, err := seq.Next(context.Background(), time.Date(2026, time.June, 15, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "ORD-2026-00043", number)
}

func TestOrderNumber_ResetsEachYear(t *testing.T) {
	seq := services.NewOrderNumberSequence(&sequenceRepo{
		latest: map[string]string{"ORD-2026-": "ORD-2026-09999"},
	})

	number, err := seq.Next(context.Background(), time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "ORD-2027-00001", number)
}

func TestOrderNumber_GrowsPastPadding(t *testing.T) {
	seq := services.NewOrderNumberSequence(&sequenceRepo{
		latest: map[string]string{"ORD-2026-": "ORD-2026-99999"},
	})

	number, err := seq.Next(context.Background(), time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.Equal(t, "ORD-2026-100000", number)
}

func TestOrderNumber_MalformedLatest(t *testing.T) {
	seq := services.NewOrderNumberSequence(&sequenceRepo{
		latest: map[string]string{"ORD-2026-": "ORD-2026-XYZ"},
	})

	_, err := seq.Next(context.Background(), time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}
