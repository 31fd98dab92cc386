package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var weekStart = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC) // a Monday

func TestBuildSlots_CoversWeek(t *testing.T) {
	weekEnd := weekStart.AddDate(0, 0, 7)
	slots := BuildSlots(weekStart, weekEnd, 30*time.Minute)

	require.Len(t, slots, 7*24*2)
	assert.Equal(t, weekStart, slots[0].Start)
	assert.Equal(t, weekEnd, slots[len(slots)-1].End)
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, 30*time.Minute, s.End.Sub(s.Start))
	}
}

func TestBuildSlots_TruncatesFinalSlot(t *testing.T) {
	end := weekStart.Add(70 * time.Minute)
	slots := BuildSlots(weekStart, end, 30*time.Minute)

	require.Len(t, slots, 3)
	assert.Equal(t, 10*time.Minute, slots[2].End.Sub(slots[2].Start))
}

func TestMarkBusy_OverlappingSlotsUnavailable(t *testing.T) {
	slots := BuildSlots(weekStart, weekStart.Add(2*time.Hour), 30*time.Minute)
	busy := []domain.BusyInterval{
		{Start: weekStart.Add(45 * time.Minute), End: weekStart.Add(75 * time.Minute)},
	}

	MarkBusy(slots, busy)

	// The busy interval touches slots [30,60), [60,90).
	assert.True(t, slots[0].Available)
	assert.False(t, slots[1].Available)
	assert.False(t, slots[2].Available)
	assert.True(t, slots[3].Available)
}

func TestAllocate_SlotCountIsRoundedBudget(t *testing.T) {
	slots := BuildSlots(weekStart, weekStart.AddDate(0, 0, 7), 30*time.Minute)

	run := testutil.NewTestActivity("Course", testutil.WithWeeklyMinutes(90))
	read := testutil.NewTestActivity("Lecture", testutil.WithWeeklyMinutes(45), testutil.WithCategory("Culture"))

	res := Allocate([]*domain.Activity{run, read}, slots, 30*time.Minute)

	countByName := map[string]int{}
	for _, ev := range res.Events {
		countByName[ev.ActivityName]++
	}
	assert.Equal(t, 3, countByName["Course"])  // 90/30
	assert.Equal(t, 2, countByName["Lecture"]) // round(45/30) = 2
	assert.Empty(t, res.Shortfalls)
}

func TestAllocate_NeverUsesBusySlots(t *testing.T) {
	slots := BuildSlots(weekStart, weekStart.AddDate(0, 0, 7), 30*time.Minute)
	busy := []domain.BusyInterval{
		{Start: weekStart, End: weekStart.Add(2 * time.Hour)},
	}
	MarkBusy(slots, busy)

	act := testutil.NewTestActivity("Piano", testutil.WithWeeklyMinutes(60))
	res := Allocate([]*domain.Activity{act}, slots, 30*time.Minute)

	require.Len(t, res.Events, 2)
	for _, ev := range res.Events {
		for _, b := range busy {
			assert.False(t, b.Overlaps(ev.Start, ev.End), "event %v placed in busy interval", ev)
		}
	}
	// First free slot is right after the busy block.
	assert.Equal(t, weekStart.Add(2*time.Hour), res.Events[0].Start)
}

func TestAllocate_FirstComeFirstServed(t *testing.T) {
	slots := BuildSlots(weekStart, weekStart.AddDate(0, 0, 7), 30*time.Minute)

	first := testutil.NewTestActivity("Première", testutil.WithWeeklyMinutes(60))
	second := testutil.NewTestActivity("Seconde", testutil.WithWeeklyMinutes(30))

	res := Allocate([]*domain.Activity{first, second}, slots, 30*time.Minute)

	require.Len(t, res.Events, 3)
	assert.Equal(t, "Première", res.Events[0].ActivityName)
	assert.Equal(t, "Première", res.Events[1].ActivityName)
	assert.Equal(t, "Seconde", res.Events[2].ActivityName)
	assert.True(t, res.Events[1].End.Equal(res.Events[2].Start) || res.Events[1].End.Before(res.Events[2].Start))
}

func TestAllocate_ReportsShortfall(t *testing.T) {
	// Only two hours of week, everything else busy.
	slots := BuildSlots(weekStart, weekStart.Add(2*time.Hour), 30*time.Minute)

	greedy := testutil.NewTestActivity("Marathon", testutil.WithWeeklyMinutes(600))
	res := Allocate([]*domain.Activity{greedy}, slots, 30*time.Minute)

	require.Len(t, res.Events, 4)
	require.Len(t, res.Shortfalls, 1)
	assert.Equal(t, "Marathon", res.Shortfalls[0].ActivityName)
	assert.Equal(t, 480, res.Shortfalls[0].MissingMinutes)
}

func TestAllocate_ZeroBudgetRoundsAway(t *testing.T) {
	slots := BuildSlots(weekStart, weekStart.AddDate(0, 0, 7), 30*time.Minute)

	tiny := testutil.NewTestActivity("Micro", testutil.WithWeeklyMinutes(10))
	res := Allocate([]*domain.Activity{tiny}, slots, 30*time.Minute)

	// round(10/30) = 0 slots: nothing scheduled, nothing owed.
	assert.Empty(t, res.Events)
	assert.Empty(t, res.Shortfalls)
}
