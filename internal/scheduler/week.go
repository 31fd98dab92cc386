package scheduler

import "time"

// NextWeekWindow returns the [start, end) bounds of the planning week in
// UTC: the upcoming Monday at 00:00 in loc through the following Monday.
// A now that already falls on a Monday plans the week starting that same
// day.
func NextWeekWindow(now time.Time, loc *time.Location) (time.Time, time.Time) {
	local := now.In(loc)

	daysUntilMonday := (int(time.Monday) - int(local.Weekday()) + 7) % 7
	monday := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, daysUntilMonday)
	return monday.UTC(), monday.AddDate(0, 0, 7).UTC()
}
