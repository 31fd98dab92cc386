package cli

import (
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and calendar feed server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Serve(cmd)
		},
	}
}
