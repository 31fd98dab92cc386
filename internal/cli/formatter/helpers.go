package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// WeeklyMinutes formats a weekly time budget, e.g. "90 min/semaine".
func WeeklyMinutes(min int) string {
	return fmt.Sprintf("%d min/semaine", min)
}

// CategoryBadge returns a capitalized, purple-styled category label.
func CategoryBadge(category string) string {
	if category == "" {
		return StyleDim.Render("--")
	}
	// First rune, not first byte, so accented categories survive.
	r := []rune(category)
	label := strings.ToUpper(string(r[0])) + string(r[1:])
	return StylePurple.Render(label)
}
