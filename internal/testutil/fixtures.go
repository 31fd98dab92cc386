package testutil

import (
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/google/uuid"
)

// ActivityOption mutates a test activity during construction.
type ActivityOption func(*domain.Activity)

// WithWeeklyMinutes overrides the default weekly budget.
func WithWeeklyMinutes(min int) ActivityOption {
	return func(a *domain.Activity) { a.WeeklyMinutes = min }
}

// WithCategory overrides the default category.
func WithCategory(cat string) ActivityOption {
	return func(a *domain.Activity) { a.Category = cat }
}

// NewTestActivity builds a valid activity with a fresh UUID and timestamps.
func NewTestActivity(name string, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:            uuid.New().String(),
		Name:          name,
		WeeklyMinutes: 60,
		Category:      "Sport",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
