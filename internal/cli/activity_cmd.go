package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/semainier/internal/cli/formatter"
	"github.com/alexanderramin/semainier/internal/domain"
)

// resolveActivityID matches user input against the stored activities by
// exact ID, ID prefix, or exact name (case-insensitive).
func resolveActivityID(ctx context.Context, app *App, input string) (*domain.Activity, error) {
	if input == "" {
		return nil, fmt.Errorf("activity ID is required")
	}

	activities, err := app.Client.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range activities {
		if activities[i].ID == input {
			return &activities[i], nil
		}
	}

	for i := range activities {
		if strings.EqualFold(activities[i].Name, input) {
			return &activities[i], nil
		}
	}

	var matches []*domain.Activity
	for i := range activities {
		if strings.HasPrefix(activities[i].ID, input) {
			matches = append(matches, &activities[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("activity not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("activity ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityUpdateCmd(app),
		newActivityRemoveCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var name, category string
	var minutes int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := app.Client.Create(cmd.Context(), domain.Activity{
				Name:          name,
				WeeklyMinutes: minutes,
				Category:      category,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Activité créée : %s (%s) [%s]\n",
				created.Name, formatter.WeeklyMinutes(created.WeeklyMinutes), created.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Weekly time budget in minutes")
	cmd.Flags().StringVar(&category, "category", "", "Activity category")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("minutes")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := app.Client.List(cmd.Context())
			if err != nil {
				return err
			}

			if len(activities) == 0 {
				fmt.Println("Aucune activité.")
				return nil
			}

			ptrs := make([]*domain.Activity, len(activities))
			for i := range activities {
				ptrs[i] = &activities[i]
			}
			fmt.Printf("%s\n", formatter.FormatActivityList(ptrs))
			return nil
		},
	}
}

func newActivityUpdateCmd(app *App) *cobra.Command {
	var name, category string
	var minutes int

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			activity, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				activity.Name = name
			}
			if cmd.Flags().Changed("minutes") {
				activity.WeeklyMinutes = minutes
			}
			if cmd.Flags().Changed("category") {
				activity.Category = category
			}

			updated, err := app.Client.Update(ctx, *activity)
			if err != nil {
				return err
			}

			fmt.Printf("Activité modifiée : %s (%s)\n",
				updated.Name, formatter.WeeklyMinutes(updated.WeeklyMinutes))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Weekly time budget in minutes")
	cmd.Flags().StringVar(&category, "category", "", "Activity category")

	return cmd
}

func newActivityRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			activity, err := resolveActivityID(ctx, app, args[0])
			if err != nil {
				return err
			}

			if !yes && !app.Confirm.Confirm(fmt.Sprintf("Supprimer %q ?", activity.Name)) {
				fmt.Println("Annulé.")
				return nil
			}

			if err := app.Client.Delete(ctx, activity.ID); err != nil {
				return err
			}

			fmt.Printf("Activité supprimée : %s\n", activity.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation")

	return cmd
}
