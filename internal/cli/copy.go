package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/controller"
)

var copyLong bool

var copyCmd = &cobra.Command{
	Use:   "copy <source> [destination]",
	Short: "Copy a project",
	Long: `Copy a project within the library.

The destination is named next to the source: copying games/jam to jam2 creates
games/jam2. Use --long to give the destination as a full name. Without a
destination the library picks <source>-copy.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := controller.CopyRequest{Source: args[0], Long: copyLong}
		if len(args) == 2 {
			req.Destination = args[1]
		}

		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.Copy(ctx, req)
			if err != nil {
				return fmt.Errorf("failed to copy project: %w", err)
			}
			if jsonOutput {
				return outputJSON(result)
			}
			if result.Copied {
				PrintSuccess(fmt.Sprintf("Copied project %s to %s", result.Source, result.Destination))
			}
			return nil
		})
	},
}

func init() {
	copyCmd.Flags().BoolVarP(&copyLong, "long", "l", false, "Treat the destination as a full project name")
}
