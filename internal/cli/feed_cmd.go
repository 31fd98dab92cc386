package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func newFeedCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Generate next week's schedule as an iCalendar feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			feed, err := app.Plans.RenderFeed(cmd.Context(), time.Now())
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Print(feed)
				return nil
			}

			if err := os.WriteFile(out, []byte(feed), 0o644); err != nil {
				return fmt.Errorf("writing feed to %s: %w", out, err)
			}
			fmt.Printf("Flux écrit dans %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Write the feed to a file instead of stdout")

	return cmd
}
