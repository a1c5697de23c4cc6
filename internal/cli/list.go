package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/controller"
)

var listCmd = &cobra.Command{
	Use:     "list [pattern]",
	Aliases: []string{"ls"},
	Short:   "List projects in the library",
	Long: `List projects, sorted by name. A pattern uses shell glob syntax and is
matched against the full name and against its last element.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern := ""
		if len(args) == 1 {
			pattern = args[0]
		}

		return runQuery(cmd, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.List(pattern)
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(result)
			}

			return framed(func() error {
				if len(result.Projects) == 0 {
					PrintEmptyState("No projects found in library.")
					return nil
				}
				PrintList(result.Projects, 0)
				return nil
			})
		})
	},
}
