package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/logging"
)

// Slot is one planning cell of the week grid.
type Slot struct {
	Start     time.Time
	End       time.Time
	Available bool
}

// Shortfall records an activity whose weekly budget could not be fully
// placed in the available free slots.
type Shortfall struct {
	ActivityName   string
	MissingMinutes int
}

// Result is the outcome of a weekly allocation.
type Result struct {
	Events     []domain.ScheduledEvent
	Shortfalls []Shortfall
}

// BuildSlots returns the contiguous slot grid covering [weekStart, weekEnd)
// at the given granularity. All slots start available.
func BuildSlots(weekStart, weekEnd time.Time, slotDur time.Duration) []Slot {
	var slots []Slot
	for cur := weekStart; cur.Before(weekEnd); cur = cur.Add(slotDur) {
		end := cur.Add(slotDur)
		if end.After(weekEnd) {
			end = weekEnd
		}
		slots = append(slots, Slot{Start: cur, End: end, Available: true})
	}
	return slots
}

// MarkBusy flags every slot that overlaps a busy interval as unavailable.
func MarkBusy(slots []Slot, busy []domain.BusyInterval) {
	for _, b := range busy {
		for i := range slots {
			if b.Overlaps(slots[i].Start, slots[i].End) {
				slots[i].Available = false
			}
		}
	}
}

// Allocate distributes each activity's weekly budget over the free slots,
// first come first served in activity order. An activity needs
// round(weekly_minutes / slot minutes) slots; activities that do not fully
// fit are reported as shortfalls and logged, never treated as errors.
// Allocated slots are consumed (marked unavailable) as a side effect.
func Allocate(activities []*domain.Activity, slots []Slot, slotDur time.Duration) Result {
	slotMin := slotDur.Minutes()

	type need struct {
		activity  *domain.Activity
		remaining int
	}

	var needs []*need
	for _, a := range activities {
		wanted := int(math.Round(float64(a.WeeklyMinutes) / slotMin))
		if wanted > 0 {
			needs = append(needs, &need{activity: a, remaining: wanted})
		}
	}

	// Events are collected grouped per activity, matching the order the
	// needs list is drained in.
	assigned := make(map[string][]Slot, len(needs))

	current := 0
	for i := range slots {
		if current >= len(needs) {
			break
		}
		if !slots[i].Available {
			continue
		}

		n := needs[current]
		assigned[n.activity.ID] = append(assigned[n.activity.ID], slots[i])
		slots[i].Available = false
		n.remaining--
		if n.remaining == 0 {
			current++
		}
	}

	var res Result
	for _, n := range needs {
		for _, s := range assigned[n.activity.ID] {
			res.Events = append(res.Events, domain.ScheduledEvent{
				ActivityName: n.activity.Name,
				Category:     n.activity.Category,
				Start:        s.Start,
				End:          s.End,
			})
		}
		if n.remaining > 0 {
			missing := int(float64(n.remaining) * slotMin)
			res.Shortfalls = append(res.Shortfalls, Shortfall{
				ActivityName:   n.activity.Name,
				MissingMinutes: missing,
			})
			logging.Warn("activity budget not fully placed",
				"activity", n.activity.Name,
				"missing_minutes", missing)
		}
	}
	return res
}
