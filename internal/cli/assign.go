package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/controller"
)

var assignCmd = &cobra.Command{
	Use:   "assign <name>",
	Short: "Make a project current without syncing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.Assign(args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(result)
			}
			printAssign(result)
			return nil
		})
	},
}

var unassignCmd = &cobra.Command{
	Use:   "unassign",
	Short: "Clear the current project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			result := ctrl.Unassign()
			if jsonOutput {
				return outputJSON(result)
			}
			if result.NoOp {
				PrintWarning("No project to unassign.")
				return nil
			}
			PrintInfo(fmt.Sprintf("Unassigned %s from current project.", result.Cleared))
			return nil
		})
	},
}

// printAssign reports an assignment, including the project it displaced.
func printAssign(result *controller.AssignResult) {
	if result == nil {
		return
	}
	if result.Previous != "" {
		PrintInfo(fmt.Sprintf("Unassigned %s from current project.", result.Previous))
	}
	PrintSuccess(fmt.Sprintf("Assigned %s to current project", result.Current))
}
