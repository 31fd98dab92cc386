package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive activity manager",
		Long: `Start an interactive view of your activities: browse the list,
add or edit activities through a form, and copy the calendar
feed link. Requires a running server (semainier serve).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return fmt.Errorf("shell requires an interactive terminal")
			}

			model := newShellModel(app.Client, app.Notify, clipboard.WriteAll)
			_, err := tea.NewProgram(model).Run()
			return err
		},
	}
}
