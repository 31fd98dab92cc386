package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func newLinkCmd(app *App) *cobra.Command {
	var copy bool

	cmd := &cobra.Command{
		Use:   "link",
		Short: "Print the calendar feed URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := app.Client.FeedURL()
			fmt.Println(url)

			if copy {
				if err := clipboard.WriteAll(url); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println("Lien copié dans le presse-papiers.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copy, "copy", false, "Also copy the URL to the clipboard")

	return cmd
}
