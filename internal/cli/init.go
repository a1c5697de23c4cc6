package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/controller"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize or retrieve librarian data",
	Long: `Create the metadata file on first run, asking for the library and
workspace directories unless --library and --workspace are given.

On later runs the existing metadata is retrieved and saved again.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			if jsonOutput {
				return outputJSON(ctrl.Record())
			}
			rec := ctrl.Record()
			PrintLabelValue("Library", rec.LibraryPath)
			PrintLabelValue("Workspace", rec.WorkspacePath)
			return nil
		})
	},
}
