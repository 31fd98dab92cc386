package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
)

// semainierHuhTheme styles huh forms with the shared palette.
func semainierHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// activityFields holds the form-bound values for the activity form.
type activityFields struct {
	name     string
	minutes  string
	category string
	submit   bool
}

// newActivityForm builds the create/edit form. Field values deliberately go
// to the server unvalidated so a rejection comes back as a server message,
// the same path a remote failure takes.
func newActivityForm(f *activityFields, editing bool) *huh.Form {
	submitLabel := "Ajouter"
	cancelLabel := ""
	if editing {
		submitLabel = "Modifier"
		cancelLabel = "Annuler"
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nom").
				Placeholder("Course à pied").
				Value(&f.name),
			huh.NewInput().
				Title("Minutes par semaine").
				Placeholder("90").
				Value(&f.minutes),
			huh.NewInput().
				Title("Catégorie").
				Placeholder("Sport").
				Value(&f.category),
			huh.NewConfirm().
				Title("").
				Affirmative(submitLabel).
				Negative(cancelLabel).
				Value(&f.submit),
		),
	).WithTheme(semainierHuhTheme()).WithShowHelp(false)
}
