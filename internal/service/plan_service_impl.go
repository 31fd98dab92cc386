package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/semainier/internal/ics"
	"github.com/alexanderramin/semainier/internal/logging"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/alexanderramin/semainier/internal/scheduler"
)

// PlanConfig carries the planner tunables extracted from the app config.
type PlanConfig struct {
	Timezone     string
	SlotMinutes  int
	CalendarURLs []string
}

type planService struct {
	activities repository.ActivityRepo
	busy       BusySource
	loc        *time.Location
	slotDur    time.Duration
	urls       []string
}

// NewPlanService wires the weekly planning pipeline. An unknown timezone
// falls back to UTC with a log line rather than failing startup.
func NewPlanService(activities repository.ActivityRepo, busy BusySource, cfg PlanConfig) PlanService {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Error("unknown timezone, falling back to UTC", err, "timezone", cfg.Timezone)
		loc = time.UTC
	}
	slotMin := cfg.SlotMinutes
	if slotMin <= 0 {
		slotMin = 30
	}
	return &planService{
		activities: activities,
		busy:       busy,
		loc:        loc,
		slotDur:    time.Duration(slotMin) * time.Minute,
		urls:       cfg.CalendarURLs,
	}
}

func (s *planService) GeneratePlan(ctx context.Context, now time.Time) (*Plan, error) {
	weekStart, weekEnd := scheduler.NextWeekWindow(now, s.loc)
	plan := &Plan{WeekStart: weekStart, WeekEnd: weekEnd}

	activities, err := s.activities.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	if len(activities) == 0 {
		return plan, nil
	}

	win := ics.BusyWindow{Start: weekStart, End: weekEnd, Location: s.loc}
	busy := scheduler.MergeIntervals(s.busy.FetchBusy(ctx, s.urls, win))

	slots := scheduler.BuildSlots(weekStart, weekEnd, s.slotDur)
	scheduler.MarkBusy(slots, busy)

	res := scheduler.Allocate(activities, slots, s.slotDur)
	plan.Events = res.Events
	plan.Shortfalls = res.Shortfalls

	logging.Info("weekly plan generated",
		"week_start", weekStart.Format("2006-01-02"),
		"activities", len(activities),
		"events", len(plan.Events),
		"busy_intervals", len(busy),
		"shortfalls", len(plan.Shortfalls))
	return plan, nil
}

func (s *planService) RenderFeed(ctx context.Context, now time.Time) (string, error) {
	plan, err := s.GeneratePlan(ctx, now)
	if err != nil {
		return "", err
	}
	return ics.RenderFeed(plan.Events, now), nil
}
