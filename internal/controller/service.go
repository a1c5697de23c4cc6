package controller

import (
	"context"

	"github.com/danieljhkim/librarian/internal/metadata"
)

// Service is the project library the controller drives.
// Its errors are returned to the caller unchanged.
type Service interface {
	IsProject(name string) (bool, error)
	CreateProject(name string) error

	// CopyProject returns the destination actually used, or "" when no
	// destination could be resolved.
	CopyProject(ctx context.Context, src, dst string) (string, error)

	PullProject(ctx context.Context, name string) error
	PushProject(ctx context.Context, name string) error
	ListProjects(pattern string) ([]string, error)
	DeleteProjects(names []string, safe bool) error
}

// ServiceFactory builds the Service for a hydrated record.
type ServiceFactory func(rec *metadata.Record) (Service, error)

// PathPrompter asks the operator for a confirmed, existing, absolute path.
type PathPrompter interface {
	GetPath(role string) (string, error)
}

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// AlwaysConfirm answers yes without asking.
type AlwaysConfirm struct{}

// Confirm always returns true.
func (AlwaysConfirm) Confirm(string) (bool, error) {
	return true, nil
}

// neverConfirm declines every question. It stands in when no Confirmer is
// wired so that nothing is overwritten without an explicit answer.
type neverConfirm struct{}

func (neverConfirm) Confirm(string) (bool, error) {
	return false, nil
}
