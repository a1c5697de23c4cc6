package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/librarian/internal/config"
	"github.com/danieljhkim/librarian/internal/prompt"
)

var (
	// Global flags
	jsonOutput    bool
	verbose       bool
	metadataPath  string
	libraryPath   string
	workspacePath string
	syncTargets   []string

	// Colors for help output sections
	groupTitleColor   = color.New(color.FgCyan, color.Bold)
	sectionTitleColor = color.New(color.FgBlue, color.Bold)
)

// rootCmd is the root command for librarian.
var rootCmd = &cobra.Command{
	Use:     "librarian",
	Version: "dev",
	Short:   "Personal project library and workspace manager",
	Long: `librarian keeps a library of projects and one workspace.

Exactly one project can be current at a time. Load a project to copy its sync
targets into the workspace, push to save workspace changes back into the
library, and pull to refresh the workspace from the library.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// customHelpFunc returns a custom help function that colors group titles
func customHelpFunc(cmd *cobra.Command, args []string) {
	// Build complete help output
	var help strings.Builder

	// Add long description if present
	if cmd.Long != "" {
		help.WriteString(cmd.Long)
		help.WriteString("\n\n")
	}

	// Add usage
	help.WriteString(sectionTitleColor.Sprint("Usage:"))
	help.WriteString("\n")
	fmt.Fprintf(&help, "  %s\n\n", cmd.UseLine())

	// Add grouped commands
	for _, group := range cmd.Groups() {
		// Color the group title
		help.WriteString(groupTitleColor.Sprint(group.Title))
		help.WriteString("\n")

		for _, c := range cmd.Commands() {
			if c.GroupID == group.ID && !c.Hidden {
				fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
			}
		}
		help.WriteString("\n")
	}

	// Add ungrouped commands (Additional Commands section)
	hasUngrouped := false
	for _, c := range cmd.Commands() {
		if c.GroupID == "" && !c.Hidden {
			if !hasUngrouped {
				help.WriteString(sectionTitleColor.Sprint("Additional Commands:"))
				help.WriteString("\n")
				hasUngrouped = true
			}
			fmt.Fprintf(&help, "  %-11s %s\n", c.Name(), c.Short)
		}
	}
	if hasUngrouped {
		help.WriteString("\n")
	}

	// Add flags
	if cmd.HasAvailableLocalFlags() || cmd.HasAvailablePersistentFlags() {
		help.WriteString(sectionTitleColor.Sprint("Flags:"))
		help.WriteString("\n")
		help.WriteString(cmd.LocalFlags().FlagUsages())
		help.WriteString(cmd.InheritedFlags().FlagUsages())
		help.WriteString("\n")
	}

	// Add usage footer
	fmt.Fprintf(&help, "Use \"%s [command] --help\" for more information about a command.\n", cmd.CommandPath())

	fmt.Fprint(cmd.OutOrStdout(), help.String())
}

func init() {
	// Set custom help function to color group titles
	rootCmd.SetHelpFunc(customHelpFunc)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")
	flags.StringVar(&metadataPath, "metadata", "", "Metadata file (default $"+config.MetadataEnv+" or ./"+config.DefaultMetadataFile+")")
	flags.StringVar(&libraryPath, "library", "", "Library directory, used on first run")
	flags.StringVar(&workspacePath, "workspace", "", "Workspace directory, used on first run")
	flags.StringArrayVar(&syncTargets, "sync-target", nil, "Project sub-path to sync, used on first run (repeatable)")

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "project-lifecycle",
		Title: "Project Lifecycle:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "sync",
		Title: "Workspace Sync:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "library-management",
		Title: "Library Management:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	// CLI & Tooling commands
	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the librarian CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	// Add help command to CLI & Tooling group
	helpCmd := &cobra.Command{
		Use:     "help [command]",
		Short:   "Help about any command",
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Root().Help()
		},
	}
	rootCmd.SetHelpCommand(helpCmd)

	// Add completion command to CLI & Tooling group
	completionCmd := &cobra.Command{
		Use:     "completion",
		Short:   "Generate the autocompletion script for the specified shell",
		GroupID: "cli-tooling",
		Long: `Generate the autocompletion script for librarian for the specified shell.
See each sub-command's help for details on how to use the generated script.`,
	}
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "bash",
		Short:                 "Generate the autocompletion script for bash",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenBashCompletion(stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "zsh",
		Short:                 "Generate the autocompletion script for zsh",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenZshCompletion(stdout)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "fish",
		Short:                 "Generate the autocompletion script for fish",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenFishCompletion(stdout, true)
		},
	})
	completionCmd.AddCommand(&cobra.Command{
		Use:                   "powershell",
		Short:                 "Generate the autocompletion script for powershell",
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootCmd.GenPowerShellCompletionWithDesc(stdout)
		},
	})
	rootCmd.AddCommand(completionCmd)

	// Project Lifecycle commands
	createCmd.GroupID = "project-lifecycle"
	copyCmd.GroupID = "project-lifecycle"
	assignCmd.GroupID = "project-lifecycle"
	unassignCmd.GroupID = "project-lifecycle"
	loadCmd.GroupID = "project-lifecycle"
	deleteCmd.GroupID = "project-lifecycle"
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(assignCmd)
	rootCmd.AddCommand(unassignCmd)
	rootCmd.AddCommand(loadCmd)
	rootCmd.AddCommand(deleteCmd)

	// Workspace Sync commands
	pushCmd.GroupID = "sync"
	pullCmd.GroupID = "sync"
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)

	// Library Management commands
	initCmd.GroupID = "library-management"
	statusCmd.GroupID = "library-management"
	listCmd.GroupID = "library-management"
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(listCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext executes the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// ReportError prints err to stderr. Cancellations are reported as a plain message.
func ReportError(err error) {
	if errors.Is(err, prompt.ErrCancelled) {
		_, _ = fmt.Fprintln(stderr, err)
		return
	}
	PrintError(err.Error())
}
