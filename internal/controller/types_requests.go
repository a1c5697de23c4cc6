package controller

// OpenRequest carries the first-run settings. They are ignored when a
// metadata file already exists.
type OpenRequest struct {
	// LibraryPath is the library root; prompted for when empty
	LibraryPath string

	// WorkspacePath is the workspace root; prompted for when empty
	WorkspacePath string

	// SyncTargets overrides the default sync targets
	SyncTargets []string
}

// CopyRequest describes a project copy.
type CopyRequest struct {
	// Source is the project to copy
	Source string

	// Destination is the new project name; empty lets the library choose
	Destination string

	// Long treats Destination as a full name instead of a sibling of Source
	Long bool
}

// DeleteRequest describes which projects to delete.
type DeleteRequest struct {
	// Names are deleted exactly; when set, Pattern is ignored
	Names []string

	// Pattern selects projects by listing when Names is empty
	Pattern string

	// Safe keeps deleted projects recoverable
	Safe bool
}
