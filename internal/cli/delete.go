package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/controller"
)

var (
	deletePattern string
	deleteUnsafe  bool
)

var deleteCmd = &cobra.Command{
	Use:     "delete [names...]",
	Aliases: []string{"rm"},
	Short:   "Delete projects from the library",
	Long: `Delete the named projects, or every project matching --pattern when no
names are given. Deleted projects are moved to the library's trash unless
--unsafe is set. Deleting the current project unassigns it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && deletePattern == "" {
			return fmt.Errorf("nothing to delete: give project names or --pattern")
		}
		req := controller.DeleteRequest{
			Names:   args,
			Pattern: deletePattern,
			Safe:    !deleteUnsafe,
		}

		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.Delete(req)
			if err != nil {
				return fmt.Errorf("failed to delete: %w", err)
			}
			if jsonOutput {
				return outputJSON(result)
			}
			if result.NoOp {
				PrintEmptyState("No projects found in library.")
				return nil
			}

			verb := "Moved to trash"
			if !result.Safe {
				verb = "Deleted"
			}
			PrintSuccess(fmt.Sprintf("%s %s: %s", verb,
				PrintCount(len(result.Deleted), "project", "projects"), strings.Join(result.Deleted, ", ")))
			if result.Unassigned != "" {
				PrintInfo(fmt.Sprintf("Unassigned %s from current project.", result.Unassigned))
			}
			return nil
		})
	},
}

func init() {
	deleteCmd.Flags().StringVarP(&deletePattern, "pattern", "p", "", "Delete every project matching this glob")
	deleteCmd.Flags().BoolVar(&deleteUnsafe, "unsafe", false, "Remove projects permanently instead of moving them to trash")
}
