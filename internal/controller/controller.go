// Package controller provides the project state machine behind librarian.
//
// The controller owns one persisted record (library and workspace roots, the
// current project, sync targets and timestamps) and coordinates the prompts,
// the metadata store and the library service. Actions mutate the record in
// memory only; callers persist it with Save.
//
// Key components:
//   - Open: hydrates the record, or initializes it on first run
//   - Assign/Unassign/Create/Copy/Load: transitions of the current project
//   - Push/Pull: sync of the current project
//   - List/Delete/Status: library queries and maintenance
package controller

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"go.uber.org/zap"

	"github.com/danieljhkim/librarian/internal/clock"
	"github.com/danieljhkim/librarian/internal/logging"
	"github.com/danieljhkim/librarian/internal/metadata"
)

// Deps are the collaborators of a Controller. A nil Confirmer declines every
// question.
type Deps struct {
	Store      metadata.Store
	NewService ServiceFactory
	Prompter   PathPrompter
	Confirmer  Confirmer
	Clock      clock.Clock
	Logger     *zap.Logger
}

// Controller orchestrates all project operations.
// It is the main API surface called by the CLI.
type Controller struct {
	store     metadata.Store
	service   Service
	confirmer Confirmer
	clock     clock.Clock
	logger    *zap.Logger
	record    *metadata.Record
}

// Open hydrates the controller from the metadata store, or initializes a fresh
// record when none exists. Nothing is written; call Save to persist.
func Open(deps Deps, req OpenRequest) (*Controller, *OpenResult, error) {
	logger := logging.OrNop(deps.Logger)
	result := &OpenResult{MetadataPath: deps.Store.Path()}

	rec, err := deps.Store.Load()
	switch {
	case err == nil:
		logger.Debug("retrieved metadata", zap.String("path", result.MetadataPath))
	case errors.Is(err, metadata.ErrNotFound):
		rec, err = initialize(deps, req)
		if err != nil {
			return nil, nil, err
		}
		result.Initialized = true
		logger.Debug("initialized metadata", zap.String("path", result.MetadataPath))
	default:
		return nil, nil, err
	}

	service, err := deps.NewService(rec)
	if err != nil {
		return nil, nil, err
	}

	confirmer := deps.Confirmer
	if confirmer == nil {
		confirmer = neverConfirm{}
	}

	return &Controller{
		store:     deps.Store,
		service:   service,
		confirmer: confirmer,
		clock:     deps.Clock,
		logger:    logger,
		record:    rec,
	}, result, nil
}

// initialize builds the first-run record, prompting for any missing root.
func initialize(deps Deps, req OpenRequest) (*metadata.Record, error) {
	library, err := resolveRoot(deps.Prompter, req.LibraryPath, "library")
	if err != nil {
		return nil, err
	}
	workspace, err := resolveRoot(deps.Prompter, req.WorkspacePath, "workspace")
	if err != nil {
		return nil, err
	}

	if library == workspace {
		return nil, fmt.Errorf("%w: %s", ErrFolderCollision, library)
	}

	return metadata.NewRecord(library, workspace, req.SyncTargets, clock.EpochSeconds(deps.Clock.Now())), nil
}

func resolveRoot(prompter PathPrompter, supplied, role string) (string, error) {
	if supplied != "" {
		return filepath.Clean(supplied), nil
	}
	if prompter == nil {
		return "", fmt.Errorf("no %s path given and no prompt available", role)
	}
	return prompter.GetPath(role)
}

// Save persists the record, stamping its modify time.
func (c *Controller) Save() error {
	c.record.ModifyTime = clock.EpochSeconds(c.clock.Now())
	if err := c.store.Save(c.record); err != nil {
		return fmt.Errorf("failed to save metadata: %w", err)
	}
	return nil
}

// Current returns the current project, or "" when none is assigned.
func (c *Controller) Current() string {
	return c.record.Current()
}

// Record returns a copy of the controller state.
func (c *Controller) Record() *metadata.Record {
	rec := *c.record
	if c.record.CurrentProject != nil {
		current := *c.record.CurrentProject
		rec.CurrentProject = &current
	}
	rec.SyncTargets = slices.Clone(c.record.SyncTargets)
	return &rec
}
