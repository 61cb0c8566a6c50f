package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/GopalSonawane/ruprikal-artisan-e-commerce-platform/repository"
)

// OrderNumberSequence produces user-facing order numbers of the form
// ORD-<year>-<5-digit sequence>, strictly increasing within a calendar year
// and restarting at 00001 each new year.
//
// The read-then-format step here is not atomic: two concurrent checkouts can
// compute the same next number. Safety comes from the unique index on
// orders.order_number plus the orchestrator's bounded retry on insert
// conflict, not from locking.
type OrderNumberSequence struct {
	repo repository.OrderRepository
}

// NewOrderNumberSequence creates a new OrderNumberSequence.
func NewOrderNumberSequence(repo repository.OrderRepository) *OrderNumberSequence {
	return &OrderNumberSequence{repo: repo}
}

// Next returns the next order number for the year of the given instant.
func (s *OrderNumberSequence) Next(ctx context.Context, now time.Time) (string, error) {
	prefix := fmt.Sprintf("ORD-%d-", now.Year())

	latest, err := s.repo.LatestOrderNumber(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("failed to read latest order number: %w", err)
	}

	next := 1
	if latest != "" {
		suffix := strings.TrimPrefix(latest, prefix)
		n, err := strconv.Atoi(suffix)
		if err != nil {
			return "", fmt.Errorf("malformed order number %q: %w", latest, err)
		}
		next = n + 1
	}

	return fmt.Sprintf("%s%05d", prefix, next), nil
}
