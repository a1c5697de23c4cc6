package metadata

import (
	"fmt"
	"slices"
)

// DefaultSyncTarget is the sub-path synced when none are configured.
const DefaultSyncTarget = "UserData"

// Record is the persisted controller state.
type Record struct {
	// LibraryPath is the absolute root holding archived projects
	LibraryPath string `yaml:"library-path" json:"libraryPath"`

	// WorkspacePath is the absolute root holding the active project's files
	WorkspacePath string `yaml:"workspace-path" json:"workspacePath"`

	// CurrentProject is the project loaded into the workspace, nil when none
	CurrentProject *string `yaml:"current-project" json:"currentProject"`

	// CreateTime is when the record was first initialized (epoch seconds)
	CreateTime float64 `yaml:"create-time" json:"createTime"`

	// ModifyTime is when the record was last saved (epoch seconds)
	ModifyTime float64 `yaml:"modify-time" json:"modifyTime"`

	// SyncTargets are the project sub-paths that push and pull synchronize
	SyncTargets []string `yaml:"sync-targets" json:"syncTargets"`
}

// DefaultSyncTargets returns a fresh copy of the default sync target list.
func DefaultSyncTargets() []string {
	return []string{DefaultSyncTarget}
}

// NewRecord creates a record for a first run. Empty targets fall back to the default.
func NewRecord(libraryPath, workspacePath string, syncTargets []string, now float64) *Record {
	if len(syncTargets) == 0 {
		syncTargets = DefaultSyncTargets()
	}
	return &Record{
		LibraryPath:   libraryPath,
		WorkspacePath: workspacePath,
		CreateTime:    now,
		ModifyTime:    now,
		SyncTargets:   slices.Clone(syncTargets),
	}
}

// Current returns the current project name, or "" when none is assigned.
func (r *Record) Current() string {
	if r.CurrentProject == nil {
		return ""
	}
	return *r.CurrentProject
}

// SetCurrent assigns name as current project; "" clears it.
func (r *Record) SetCurrent(name string) {
	if name == "" {
		r.CurrentProject = nil
		return
	}
	r.CurrentProject = &name
}

// normalize applies defaulting rules to a freshly decoded record.
func (r *Record) normalize() {
	if r.CurrentProject != nil && *r.CurrentProject == "" {
		r.CurrentProject = nil
	}
	if len(r.SyncTargets) == 0 {
		r.SyncTargets = DefaultSyncTargets()
	}
}

// Validate checks the fields a usable record cannot do without.
func (r *Record) Validate() error {
	if r.LibraryPath == "" {
		return fmt.Errorf("%w: library-path is missing", ErrInvalid)
	}
	if r.WorkspacePath == "" {
		return fmt.Errorf("%w: workspace-path is missing", ErrInvalid)
	}
	for _, target := range r.SyncTargets {
		if target == "" {
			return fmt.Errorf("%w: sync-targets contains an empty entry", ErrInvalid)
		}
	}
	return nil
}
