package service

import (
	"context"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/ics"
	"github.com/alexanderramin/semainier/internal/scheduler"
)

type ActivityService interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}

// Plan is a generated schedule for one upcoming week.
type Plan struct {
	WeekStart  time.Time
	WeekEnd    time.Time
	Events     []domain.ScheduledEvent
	Shortfalls []scheduler.Shortfall
}

type PlanService interface {
	// GeneratePlan computes next week's schedule from the stored
	// activities and the configured source calendars.
	GeneratePlan(ctx context.Context, now time.Time) (*Plan, error)

	// RenderFeed generates the plan and renders it as an iCalendar feed.
	RenderFeed(ctx context.Context, now time.Time) (string, error)
}

// BusySource provides busy intervals from external calendars. Implemented by
// ics.Fetcher; stubbed in tests.
type BusySource interface {
	FetchBusy(ctx context.Context, urls []string, win ics.BusyWindow) []domain.BusyInterval
}
