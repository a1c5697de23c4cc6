package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danieljhkim/librarian/internal/clock"
	"github.com/danieljhkim/librarian/internal/config"
	"github.com/danieljhkim/librarian/internal/controller"
	"github.com/danieljhkim/librarian/internal/fsops"
	"github.com/danieljhkim/librarian/internal/hash"
	"github.com/danieljhkim/librarian/internal/library"
	"github.com/danieljhkim/librarian/internal/logging"
	"github.com/danieljhkim/librarian/internal/metadata"
	"github.com/danieljhkim/librarian/internal/prompt"
)

// stdin is where prompts read answers; tests replace it.
var (
	stdin       io.Reader = os.Stdin
	interactive           = func() bool { return prompt.IsInteractive(os.Stdin) }
)

// session is an opened controller plus what the command needs to finish.
type session struct {
	ctrl   *controller.Controller
	open   *controller.OpenResult
	logger *zap.Logger
}

// newController opens the controller with real implementations of all
// dependencies. A nil confirmer asks the operator on stdin.
func newController(confirmer controller.Confirmer) (*session, error) {
	paths, err := config.ResolvePaths(metadataPath, "")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve metadata path: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	logger, err := logging.New(verbose)
	if err != nil {
		return nil, err
	}

	fs := fsops.NewRealFS()
	clk := &clock.RealClock{}
	hasher := hash.NewSHA256Hasher()
	console := prompt.New(stdin, stdout, fs)

	req := controller.OpenRequest{SyncTargets: syncTargets}
	if req.LibraryPath, err = flagPath(fs, libraryPath, "library"); err != nil {
		return nil, err
	}
	if req.WorkspacePath, err = flagPath(fs, workspacePath, "workspace"); err != nil {
		return nil, err
	}

	var prompter controller.PathPrompter = console
	if !interactive() {
		prompter = nonInteractive{}
	}
	if confirmer == nil {
		confirmer = console
	}

	ctrl, result, err := controller.Open(controller.Deps{
		Store: metadata.NewFileStore(fs, paths.Metadata),
		NewService: func(rec *metadata.Record) (controller.Service, error) {
			return library.New(fs, hasher, clk, logger, library.Config{
				LibraryPath:   rec.LibraryPath,
				WorkspacePath: rec.WorkspacePath,
				SyncTargets:   rec.SyncTargets,
			})
		},
		Prompter:  prompter,
		Confirmer: confirmer,
		Clock:     clk,
		Logger:    logger,
	}, req)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return &session{ctrl: ctrl, open: result, logger: logger}, nil
}

// flagPath canonicalizes a path given on the command line. It must exist.
func flagPath(fs fsops.FS, value, role string) (string, error) {
	if value == "" {
		return "", nil
	}
	canonical, err := fs.Canonicalize(value)
	if err != nil {
		return "", fmt.Errorf("invalid %s path %s: %w", role, value, err)
	}
	return canonical, nil
}

// nonInteractive refuses to prompt when stdin is not a terminal.
type nonInteractive struct{}

func (nonInteractive) GetPath(role string) (string, error) {
	return "", fmt.Errorf("%w: no %s path configured and stdin is not a terminal; pass --%s", prompt.ErrCancelled, role, role)
}

// runAction opens the controller, runs action, and persists the state.
func runAction(cmd *cobra.Command, confirmer controller.Confirmer, action func(ctx context.Context, ctrl *controller.Controller) error) error {
	return run(cmd, confirmer, true, action)
}

// runQuery is runAction for commands that never change state. Only a first
// run, which initialized the record, is saved.
func runQuery(cmd *cobra.Command, action func(ctx context.Context, ctrl *controller.Controller) error) error {
	return run(cmd, nil, false, action)
}

func run(cmd *cobra.Command, confirmer controller.Confirmer, save bool, action func(ctx context.Context, ctrl *controller.Controller) error) error {
	s, err := newController(confirmer)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.logger.Sync()
	}()

	if !jsonOutput {
		printOpen(s.open)
	}

	if err := action(cmd.Context(), s.ctrl); err != nil {
		return err
	}
	// A first run still records the paths it just set up.
	if !save && !s.open.Initialized {
		return nil
	}
	return s.ctrl.Save()
}

func printOpen(result *controller.OpenResult) {
	if result.Initialized {
		PrintInfo("Initialized Librarian data.")
		return
	}
	PrintEmptyState("Retrieved Librarian data.")
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
