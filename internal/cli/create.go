package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/controller"
)

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project and make it current",
	Long: `Create an empty project in the library and assign it as the current project.

Names may use '/' to group projects, e.g. games/jam.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}
			if jsonOutput {
				return outputJSON(result)
			}
			PrintSuccess(fmt.Sprintf("Created project %s", result.Project))
			printAssign(result.Assign)
			return nil
		})
	},
}
