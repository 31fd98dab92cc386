package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrActivityNotFound is returned when an activity ID does not exist.
var ErrActivityNotFound = errors.New("activity not found")

// ValidationError reports a rejected activity field. Its message is safe to
// surface to clients verbatim.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

const (
	maxNameLen     = 100
	maxCategoryLen = 50
)

// Activity is a recurring task with a weekly time budget.
type Activity struct {
	ID            string
	Name          string
	WeeklyMinutes int
	Category      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the fields a client is allowed to set.
// The ID is server-assigned and deliberately not checked here.
func (a *Activity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return &ValidationError{Field: "name", Reason: "activity name is required"}
	}
	if len(a.Name) > maxNameLen {
		return &ValidationError{Field: "name", Reason: fmt.Sprintf("activity name must be at most %d characters", maxNameLen)}
	}
	if a.WeeklyMinutes <= 0 {
		return &ValidationError{Field: "weekly_minutes", Reason: "weekly minutes must be a positive integer"}
	}
	if strings.TrimSpace(a.Category) == "" {
		return &ValidationError{Field: "category", Reason: "activity category is required"}
	}
	if len(a.Category) > maxCategoryLen {
		return &ValidationError{Field: "category", Reason: fmt.Sprintf("activity category must be at most %d characters", maxCategoryLen)}
	}
	return nil
}

// DisplayID returns a short identifier suitable for tables and logs.
func (a *Activity) DisplayID() string {
	if len(a.ID) >= 8 {
		return a.ID[:8]
	}
	return a.ID
}
