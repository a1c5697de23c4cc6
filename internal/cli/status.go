package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/clock"
	"github.com/danieljhkim/librarian/internal/controller"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current project and librarian settings",
	Long: `Display the current project together with the library, workspace and
sync targets. A current project that no longer exists in the library is
unassigned.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAction(cmd, nil, func(ctx context.Context, ctrl *controller.Controller) error {
			result, err := ctrl.Status()
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(result)
			}

			return framed(func() error {
				if result.StaleCleared != "" {
					PrintWarning(fmt.Sprintf("%s is no longer in the library", result.StaleCleared))
				}
				if result.Current == "" {
					PrintInfo("There is no current project assigned.")
				} else {
					PrintInfo(fmt.Sprintf("Current project: %s", result.Current))
				}

				rec := result.Record
				PrintLabelValue("Metadata", result.MetadataPath)
				PrintLabelValue("Library", rec.LibraryPath)
				PrintLabelValue("Workspace", rec.WorkspacePath)
				PrintLabelValue("Sync targets", strings.Join(rec.SyncTargets, ", "))
				PrintLabelValue("Created", formatTime(rec.CreateTime))
				PrintLabelValue("Modified", formatTime(rec.ModifyTime))
				return nil
			})
		})
	},
}

func formatTime(epoch float64) string {
	t := clock.FromEpochSeconds(epoch)
	if t.IsZero() {
		return "unknown"
	}
	return t.Local().Format(time.RFC1123)
}
