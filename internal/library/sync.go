package library

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/danieljhkim/librarian/internal/planner"
)

// direction names which side of a sync is the source.
type direction string

const (
	pull direction = "pull"
	push direction = "push"
)

// PullProject mirrors every sync target of the project from the library into
// the workspace.
func (l *FileLibrary) PullProject(ctx context.Context, name string) error {
	return l.syncProject(ctx, name, pull)
}

// PushProject mirrors every sync target from the workspace back into the
// project in the library.
func (l *FileLibrary) PushProject(ctx context.Context, name string) error {
	return l.syncProject(ctx, name, push)
}

func (l *FileLibrary) syncProject(ctx context.Context, name string, dir direction) error {
	ok, err := l.IsProject(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	projectDir := l.ProjectDir(name)
	for _, target := range l.targets {
		if err := checkContext(ctx); err != nil {
			return err
		}

		libSide := filepath.Join(projectDir, filepath.FromSlash(target))
		workSide := filepath.Join(l.work, filepath.FromSlash(target))
		src, dst := libSide, workSide
		if dir == push {
			src, dst = workSide, libSide
		}

		if err := l.mirror(ctx, src, dst); err != nil {
			return fmt.Errorf("failed to %s %s of %s: %w", dir, target, name, err)
		}
	}

	l.logger.Info("synced project", zap.String("project", name), zap.String("direction", string(dir)))
	return nil
}

// mirror makes dst an exact copy of src. A missing or non-directory src is
// skipped so that an absent side never wipes the other.
func (l *FileLibrary) mirror(ctx context.Context, src, dst string) error {
	isDir, err := l.isDir(src)
	if err != nil {
		return err
	}
	if !isDir {
		l.logger.Warn("sync target missing, skipping", zap.String("source", src))
		return nil
	}

	plan, err := planner.BuildMirrorPlan(src, dst, l.fs, l.hasher)
	if err != nil {
		return err
	}

	for _, op := range plan.Operations {
		if err := checkContext(ctx); err != nil {
			return err
		}
		l.logger.Debug("sync operation", zap.String("op", op.Type), zap.String("path", op.RelPath))
		if err := l.execute(op); err != nil {
			return err
		}
	}

	l.logger.Debug("sync target done",
		zap.String("source", src),
		zap.Int("copied", plan.Count(planner.OpCopy)),
		zap.Int("removed", plan.Count(planner.OpRemove)),
		zap.Int("unchanged", plan.Unchanged),
	)
	return nil
}

// execute applies one planned operation.
func (l *FileLibrary) execute(op planner.Operation) error {
	switch op.Type {
	case planner.OpMkdir:
		if err := l.fs.MkdirAll(op.DestPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	case planner.OpCopy:
		if err := l.fs.Copy(op.SourcePath, op.DestPath); err != nil {
			return fmt.Errorf("failed to copy: %w", err)
		}
	case planner.OpRemove:
		if err := l.fs.RemoveAll(op.DestPath); err != nil {
			return fmt.Errorf("failed to remove path: %w", err)
		}
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
	return nil
}

func (l *FileLibrary) isDir(p string) (bool, error) {
	exists, err := l.fs.Exists(p)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", p, err)
	}
	if !exists {
		return false, nil
	}
	info, err := l.fs.Stat(p)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", p, err)
	}
	return info.IsDir(), nil
}
