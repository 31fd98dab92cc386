package formatter

import (
	"github.com/alexanderramin/semainier/internal/domain"
)

// FormatActivityList renders a styled activity list inside a bordered box.
func FormatActivityList(activities []*domain.Activity) string {
	headers := []string{"ID", "NOM", "BUDGET", "CATÉGORIE"}
	rows := make([][]string, 0, len(activities))

	for _, a := range activities {
		rows = append(rows, []string{
			TruncID(a.ID),
			Bold(a.Name),
			StyleFg.Render(WeeklyMinutes(a.WeeklyMinutes)),
			CategoryBadge(a.Category),
		})
	}

	table := RenderTable(headers, rows)
	return RenderBox("Activités", table)
}
