package domain

import "time"

// BusyInterval is a half-open [Start, End) period during which the user is
// unavailable. Both bounds are in UTC.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the interval overlaps [start, end).
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return b.Start.Before(end) && b.End.After(start)
}

// Duration returns the interval length.
func (b BusyInterval) Duration() time.Duration {
	return b.End.Sub(b.Start)
}

// Clamp trims the interval to [start, end). The second return value is false
// when nothing of the interval remains inside the window.
func (b BusyInterval) Clamp(start, end time.Time) (BusyInterval, bool) {
	if !b.Overlaps(start, end) {
		return BusyInterval{}, false
	}
	if b.Start.Before(start) {
		b.Start = start
	}
	if b.End.After(end) {
		b.End = end
	}
	if !b.End.After(b.Start) {
		return BusyInterval{}, false
	}
	return b, true
}

// ScheduledEvent is one placed slot of an activity in the generated week.
// Times are in UTC; rendering converts to the configured timezone.
type ScheduledEvent struct {
	ActivityName string
	Category     string
	Start        time.Time
	End          time.Time
}
