package library

import "errors"

var (
	// ErrNotFound indicates the named project does not exist in the library.
	ErrNotFound = errors.New("project not found")

	// ErrExists indicates a project or directory already occupies the name.
	ErrExists = errors.New("project already exists")

	// ErrInvalidName indicates a project name that cannot be used.
	ErrInvalidName = errors.New("invalid project name")

	// ErrInvalidPattern indicates a malformed list pattern.
	ErrInvalidPattern = errors.New("invalid pattern")
)
