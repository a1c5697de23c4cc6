package controller

import "errors"

var (
	// ErrInvalidProject indicates a name the library service does not recognize as a project.
	ErrInvalidProject = errors.New("invalid project")

	// ErrFolderCollision indicates the library and workspace resolve to the same directory.
	ErrFolderCollision = errors.New("library and workspace paths collide")
)
