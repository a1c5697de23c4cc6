package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/controller"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Save the workspace into the current project",
	Long: `Mirror each sync target from the workspace into the current project in
the library. Files removed from the workspace are removed from the project.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.Push(ctx)
			if err != nil {
				return fmt.Errorf("failed to push: %w", err)
			}
			return reportSync(result, "No assigned project to push to.", "Pushed workspace to %s")
		})
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Refresh the workspace from the current project",
	Long: `Mirror each sync target of the current project from the library into the
workspace. Files not in the project are removed from the workspace.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.Pull(ctx)
			if err != nil {
				return fmt.Errorf("failed to pull: %w", err)
			}
			return reportSync(result, "No assigned project to pull from.", "Pulled %s into workspace")
		})
	},
}

func reportSync(result *controller.SyncResult, noProject, done string) error {
	if jsonOutput {
		return outputJSON(result)
	}
	if result.NoProject {
		PrintWarning(noProject)
		return nil
	}
	PrintSuccess(fmt.Sprintf(done, result.Project))
	return nil
}
