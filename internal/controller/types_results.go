package controller

import "github.com/danieljhkim/librarian/internal/metadata"

// OpenResult reports how the controller state was obtained.
type OpenResult struct {
	// Initialized is true when no metadata existed and a fresh record was created
	Initialized bool `json:"initialized"`

	// MetadataPath is the location of the metadata file
	MetadataPath string `json:"metadataPath"`
}

// AssignResult reports a change of the current project.
type AssignResult struct {
	// Previous is the project that was displaced, empty if none
	Previous string `json:"previous,omitempty"`

	// Current is the newly assigned project
	Current string `json:"current"`
}

// UnassignResult reports the outcome of clearing the current project.
type UnassignResult struct {
	// NoOp is true when nothing was assigned
	NoOp bool `json:"noOp"`

	// Cleared is the project that was unassigned
	Cleared string `json:"cleared,omitempty"`
}

// CreateResult reports a created project.
type CreateResult struct {
	Project string        `json:"project"`
	Assign  *AssignResult `json:"assign"`
}

// CopyResult reports a project copy.
type CopyResult struct {
	Source string `json:"source"`

	// Destination is the resolved destination name, empty when nothing was copied
	Destination string `json:"destination,omitempty"`

	// Copied is false when the library could not resolve a destination
	Copied bool `json:"copied"`
}

// LoadResult reports a load.
type LoadResult struct {
	Project string `json:"project"`

	// Declined is true when the operator refused to replace Blocking
	Declined bool `json:"declined"`

	// Blocking is the assigned project that prompted the overwrite question
	Blocking string `json:"blocking,omitempty"`

	// Overwritten is the project replaced after a confirmed overwrite
	Overwritten string `json:"overwritten,omitempty"`

	// Assign is set once the project has been assigned and pulled
	Assign *AssignResult `json:"assign,omitempty"`
}

// SyncResult reports a push or pull.
type SyncResult struct {
	// Project is the synced project, empty when NoProject
	Project string `json:"project,omitempty"`

	// NoProject is true when nothing is assigned
	NoProject bool `json:"noProject"`
}

// ListResult holds matching project names in lexicographic order.
type ListResult struct {
	Pattern  string   `json:"pattern"`
	Projects []string `json:"projects"`
}

// DeleteResult reports a delete.
type DeleteResult struct {
	// Deleted are the names handed to the library
	Deleted []string `json:"deleted"`

	// NoOp is true when the pattern resolved to nothing
	NoOp bool `json:"noOp"`

	Safe bool `json:"safe"`

	// Unassigned is the current project, if it was among the deleted
	Unassigned string `json:"unassigned,omitempty"`
}

// StatusResult describes the controller state.
type StatusResult struct {
	MetadataPath string           `json:"metadataPath"`
	Record       *metadata.Record `json:"record"`

	// Current is the current project after stale cleanup, empty if none
	Current string `json:"current,omitempty"`

	// StaleCleared is a current project that no longer exists in the library
	StaleCleared string `json:"staleCleared,omitempty"`
}
