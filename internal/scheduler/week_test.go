package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextWeekWindow_MidWeek(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	// Wednesday 2026-09-02.
	now := time.Date(2026, 9, 2, 15, 30, 0, 0, paris)
	start, end := NextWeekWindow(now, paris)

	wantStart := time.Date(2026, 9, 7, 0, 0, 0, 0, paris)
	assert.True(t, start.Equal(wantStart), "got %v want %v", start, wantStart)
	assert.True(t, end.Equal(wantStart.AddDate(0, 0, 7)))
	assert.Equal(t, time.UTC, start.Location())
}

func TestNextWeekWindow_OnMondayStartsSameDay(t *testing.T) {
	now := time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC) // a Monday
	start, end := NextWeekWindow(now, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC), end)
}

func TestNextWeekWindow_SundayRollsToTomorrow(t *testing.T) {
	now := time.Date(2026, 9, 6, 23, 0, 0, 0, time.UTC) // a Sunday
	start, _ := NextWeekWindow(now, time.UTC)

	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), start)
}

func TestNextWeekWindow_SpansSevenDays(t *testing.T) {
	start, end := NextWeekWindow(time.Date(2026, 3, 25, 12, 0, 0, 0, time.UTC), time.UTC)
	assert.Equal(t, 7*24*time.Hour, end.Sub(start))
}
