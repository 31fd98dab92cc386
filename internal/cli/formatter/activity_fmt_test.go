package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/scheduler"
)

func TestFormatActivityList(t *testing.T) {
	activities := []*domain.Activity{
		{ID: "11111111-aaaa", Name: "Course à pied", WeeklyMinutes: 90, Category: "Sport"},
		{ID: "22222222-bbbb", Name: "Lecture", WeeklyMinutes: 120, Category: "Loisir"},
	}

	out := FormatActivityList(activities)

	assert.Contains(t, out, "Course à pied")
	assert.Contains(t, out, "90 min/semaine")
	assert.Contains(t, out, "Lecture")
	assert.Contains(t, out, "11111111")
	assert.NotContains(t, out, "11111111-aaaa")
}

func TestWeeklyMinutes(t *testing.T) {
	assert.Equal(t, "90 min/semaine", WeeklyMinutes(90))
	assert.Equal(t, "0 min/semaine", WeeklyMinutes(0))
}

func TestCategoryBadgeAccent(t *testing.T) {
	out := CategoryBadge("étude")
	assert.Contains(t, out, "Étude")
}

func TestFormatPlan(t *testing.T) {
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	weekStart := time.Date(2026, 9, 7, 0, 0, 0, 0, paris)
	events := []domain.ScheduledEvent{
		{
			ActivityName: "Piano",
			Category:     "Musique",
			Start:        time.Date(2026, 9, 7, 8, 0, 0, 0, paris).UTC(),
			End:          time.Date(2026, 9, 7, 8, 30, 0, 0, paris).UTC(),
		},
	}
	shortfalls := []scheduler.Shortfall{{ActivityName: "Piano", MissingMinutes: 30}}

	out := FormatPlan(weekStart.UTC(), weekStart.AddDate(0, 0, 7).UTC(), events, shortfalls, paris)

	assert.Contains(t, out, "Semaine du 07/09/2026")
	assert.Contains(t, out, "Lundi")
	assert.Contains(t, out, "08:00-08:30")
	assert.Contains(t, out, "Piano")
	assert.Contains(t, out, "30 minutes non placées")
}

func TestFormatPlanEmpty(t *testing.T) {
	out := FormatPlan(time.Now(), time.Now(), nil, nil, time.UTC)
	assert.Contains(t, out, "Aucun créneau planifié.")
}
