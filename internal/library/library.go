package library

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/danieljhkim/librarian/internal/clock"
	"github.com/danieljhkim/librarian/internal/fsops"
	"github.com/danieljhkim/librarian/internal/hash"
	"github.com/danieljhkim/librarian/internal/logging"
)

// Config locates the library and workspace roots.
type Config struct {
	// LibraryPath is the absolute root holding projects
	LibraryPath string

	// WorkspacePath is the absolute root holding the loaded project
	WorkspacePath string

	// SyncTargets are the project sub-paths mirrored by push and pull
	SyncTargets []string
}

// FileLibrary implements the project service on top of the filesystem.
type FileLibrary struct {
	fs      fsops.FS
	hasher  hash.Hasher
	clock   clock.Clock
	logger  *zap.Logger
	library string
	work    string
	targets []string
}

// New creates a FileLibrary. Sync targets must be relative paths that stay
// inside a project.
func New(fs fsops.FS, hasher hash.Hasher, clk clock.Clock, logger *zap.Logger, cfg Config) (*FileLibrary, error) {
	if cfg.LibraryPath == "" || cfg.WorkspacePath == "" {
		return nil, fmt.Errorf("library and workspace paths are required")
	}
	for _, target := range cfg.SyncTargets {
		if err := fsops.ValidateProjectName(target); err != nil {
			return nil, fmt.Errorf("invalid sync target %q: %w", target, err)
		}
		if target == MarkerFile {
			return nil, fmt.Errorf("invalid sync target %q: reserved name", target)
		}
	}

	return &FileLibrary{
		fs:      fs,
		hasher:  hasher,
		clock:   clk,
		logger:  logging.OrNop(logger),
		library: cfg.LibraryPath,
		work:    cfg.WorkspacePath,
		targets: append([]string(nil), cfg.SyncTargets...),
	}, nil
}

// ProjectDir returns the directory of the named project.
func (l *FileLibrary) ProjectDir(name string) string {
	return filepath.Join(l.library, filepath.FromSlash(name))
}

// validateName rejects names that are unsafe or collide with reserved entries.
func validateName(name string) error {
	if err := fsops.ValidateProjectName(name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidName, err)
	}
	first, _, _ := strings.Cut(name, "/")
	if first == TrashDir {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, TrashDir)
	}
	if path.Base(name) == MarkerFile {
		return fmt.Errorf("%w: %q is reserved", ErrInvalidName, MarkerFile)
	}
	return nil
}

// IsProject reports whether name is an existing project.
// Names that could never be projects are simply not projects.
func (l *FileLibrary) IsProject(name string) (bool, error) {
	if validateName(name) != nil {
		return false, nil
	}
	return l.isProjectDir(l.ProjectDir(name))
}

func (l *FileLibrary) isProjectDir(dir string) (bool, error) {
	info, err := l.fs.Stat(dir)
	if err != nil {
		if fsops.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return false, nil
	}
	return l.hasMarker(dir)
}

// enclosingProject returns the name of a project that contains name, if any.
func (l *FileLibrary) enclosingProject(name string) (string, error) {
	for parent := path.Dir(name); parent != "."; parent = path.Dir(parent) {
		ok, err := l.isProjectDir(l.ProjectDir(parent))
		if err != nil {
			return "", err
		}
		if ok {
			return parent, nil
		}
	}
	return "", nil
}

// checkFree verifies that a new project may be placed at name.
func (l *FileLibrary) checkFree(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	exists, err := l.fs.Exists(l.ProjectDir(name))
	if err != nil {
		return fmt.Errorf("failed to check project directory: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	parent, err := l.enclosingProject(name)
	if err != nil {
		return err
	}
	if parent != "" {
		return fmt.Errorf("%w: %s would be nested inside project %s", ErrInvalidName, name, parent)
	}
	return nil
}

// CreateProject creates an empty project with one directory per sync target.
func (l *FileLibrary) CreateProject(name string) error {
	if err := l.checkFree(name); err != nil {
		return err
	}

	dir := l.ProjectDir(name)
	if err := l.fs.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	for _, target := range l.targets {
		if err := l.fs.MkdirAll(filepath.Join(dir, filepath.FromSlash(target)), 0755); err != nil {
			return fmt.Errorf("failed to create sync target %s: %w", target, err)
		}
	}
	if err := l.writeMarker(dir, newMarker(name, l.clock.Now())); err != nil {
		return err
	}

	l.logger.Info("created project", zap.String("project", name), zap.String("dir", dir))
	return nil
}

// ListProjects returns the sorted names of projects matching pattern.
// An empty pattern matches everything. Otherwise the pattern is matched
// against the full name and against its last element, so "*" matches all.
func (l *FileLibrary) ListProjects(pattern string) ([]string, error) {
	if pattern != "" {
		if _, err := path.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
		}
	}

	var names []string
	if err := l.walk(l.library, "", func(name string) {
		if matches(pattern, name) {
			names = append(names, name)
		}
	}); err != nil {
		return nil, err
	}

	sort.Strings(names)
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// walk visits every project below dir. Project directories are not descended.
func (l *FileLibrary) walk(dir, rel string, visit func(name string)) error {
	entries, err := l.fs.ReadDir(dir)
	if err != nil {
		if fsops.IsNotExist(err) && rel == "" {
			return nil
		}
		return fmt.Errorf("failed to read library directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if rel == "" && entry.Name() == TrashDir {
			continue
		}

		name := path.Join(rel, entry.Name())
		child := filepath.Join(dir, entry.Name())
		ok, err := l.hasMarker(child)
		if err != nil {
			l.logger.Warn("skipping unreadable project", zap.String("dir", child), zap.Error(err))
			continue
		}
		if ok {
			visit(name)
			continue
		}
		if err := l.walk(child, name, visit); err != nil {
			return err
		}
	}
	return nil
}

func matches(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	if ok, _ := path.Match(pattern, name); ok {
		return true
	}
	ok, _ := path.Match(pattern, path.Base(name))
	return ok
}

// checkContext returns ctx's error if it has been cancelled.
func checkContext(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("operation cancelled: %w", err)
	}
	return nil
}
