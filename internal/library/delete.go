package library

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"
)

// DeleteProjects removes the named projects. Every name must be a project;
// nothing is removed if any is not. With safe set, projects are moved into
// the library's trash directory instead of being destroyed.
func (l *FileLibrary) DeleteProjects(names []string, safe bool) error {
	seen := make(map[string]bool, len(names))
	var unique []string
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		ok, err := l.IsProject(name)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		unique = append(unique, name)
	}

	for _, name := range unique {
		dir := l.ProjectDir(name)
		if safe {
			trashed := filepath.Join(l.library, TrashDir,
				fmt.Sprintf("%s-%d", filepath.FromSlash(name), l.clock.Now().UnixNano()))
			if err := l.fs.Rename(dir, trashed); err != nil {
				return fmt.Errorf("failed to move project %s to trash: %w", name, err)
			}
			l.logger.Info("moved project to trash", zap.String("project", name), zap.String("trash", trashed))
		} else {
			if err := l.fs.RemoveAll(dir); err != nil {
				return fmt.Errorf("failed to delete project %s: %w", name, err)
			}
			l.logger.Info("deleted project", zap.String("project", name))
		}

		if err := l.pruneEmptyParents(filepath.Dir(dir)); err != nil {
			return err
		}
	}

	return nil
}

// pruneEmptyParents removes empty grouping directories left behind by a
// nested project, stopping at the library root.
func (l *FileLibrary) pruneEmptyParents(dir string) error {
	root := filepath.Clean(l.library)
	for dir = filepath.Clean(dir); dir != root && len(dir) > len(root); dir = filepath.Dir(dir) {
		entries, err := l.fs.ReadDir(dir)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", dir, err)
		}
		if len(entries) > 0 {
			return nil
		}
		if err := l.fs.RemoveAll(dir); err != nil {
			return fmt.Errorf("failed to remove empty directory %s: %w", dir, err)
		}
	}
	return nil
}
