package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/scheduler"
)

// FormatPlan renders next week's schedule as a table, one row per slot,
// with shortfall warnings underneath.
func FormatPlan(weekStart, weekEnd time.Time, events []domain.ScheduledEvent, shortfalls []scheduler.Shortfall, loc *time.Location) string {
	var b strings.Builder

	title := fmt.Sprintf("Semaine du %s", weekStart.In(loc).Format("02/01/2006"))

	if len(events) == 0 {
		b.WriteString(StyleDim.Render("Aucun créneau planifié."))
	} else {
		headers := []string{"JOUR", "HEURE", "ACTIVITÉ", "CATÉGORIE"}
		rows := make([][]string, 0, len(events))
		for _, ev := range events {
			start := ev.Start.In(loc)
			end := ev.End.In(loc)
			rows = append(rows, []string{
				StyleFg.Render(frenchDay(start.Weekday())),
				StyleFg.Render(fmt.Sprintf("%s-%s", start.Format("15:04"), end.Format("15:04"))),
				Bold(ev.ActivityName),
				CategoryBadge(ev.Category),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	for _, sf := range shortfalls {
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf("⚠ %s: %d minutes non placées", sf.ActivityName, sf.MissingMinutes)))
	}

	return RenderBox(title, b.String())
}

// frenchDay returns the French weekday name.
func frenchDay(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "Lundi"
	case time.Tuesday:
		return "Mardi"
	case time.Wednesday:
		return "Mercredi"
	case time.Thursday:
		return "Jeudi"
	case time.Friday:
		return "Vendredi"
	case time.Saturday:
		return "Samedi"
	default:
		return "Dimanche"
	}
}
