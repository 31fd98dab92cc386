package cli

import (
	"github.com/spf13/cobra"

	"github.com/alexanderramin/semainier/internal/api"
	"github.com/alexanderramin/semainier/internal/config"
	"github.com/alexanderramin/semainier/internal/service"
)

// App holds the dependencies used by CLI commands. Activity commands and the
// shell talk to a running server through Client; plan and feed run the
// scheduling pipeline locally through Plans.
type App struct {
	Client  *api.Client
	Plans   service.PlanService
	Cfg     *config.Config
	Confirm Confirmer
	Notify  Notifier

	// Serve starts the HTTP server. Injected from main so the cli package
	// doesn't own server construction.
	Serve func(cmd *cobra.Command) error
}

// NewRootCmd creates the top-level "semainier" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "semainier",
		Short: "Personal weekly activity planner",
	}

	root.AddCommand(
		newServeCmd(app),
		newShellCmd(app),
		newActivityCmd(app),
		newPlanCmd(app),
		newFeedCmd(app),
		newLinkCmd(app),
	)

	return root
}
