package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/controller"
)

var loadYes bool

var loadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Make a project current and pull it into the workspace",
	Long: `Assign a project and pull its sync targets into the workspace.

If a different project is current you are asked before it is replaced.
Use --yes to replace it without asking.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var confirmer controller.Confirmer
		if loadYes {
			confirmer = controller.AlwaysConfirm{}
		}

		return runAction(cmd, confirmer, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.Load(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to load project: %w", err)
			}
			if jsonOutput {
				return outputJSON(result)
			}
			if result.Declined {
				PrintWarning(fmt.Sprintf("Kept %s as current project", result.Blocking))
				return nil
			}
			if result.Overwritten != "" {
				PrintInfo(fmt.Sprintf("Unassigned %s from current project.", result.Overwritten))
			}
			printAssign(result.Assign)
			PrintSuccess(fmt.Sprintf("Pulled %s into workspace", result.Project))
			return nil
		})
	},
}

func init() {
	loadCmd.Flags().BoolVarP(&loadYes, "yes", "y", false, "Replace the current project without asking")
}
