package library

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// maxCopySuffix bounds the search for a free default copy name.
const maxCopySuffix = 1000

// CopyProject duplicates src as dst and returns the name actually used.
// An empty dst picks the first free "<src>-copy", "<src>-copy-2", ... name.
// When dst is already taken no destination can be resolved and "" is returned
// without error.
func (l *FileLibrary) CopyProject(ctx context.Context, src, dst string) (string, error) {
	if err := checkContext(ctx); err != nil {
		return "", err
	}

	ok, err := l.IsProject(src)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, src)
	}

	if dst == "" {
		dst, err = l.defaultCopyName(src)
		if err != nil {
			return "", err
		}
		if dst == "" {
			l.logger.Warn("no free copy name", zap.String("project", src))
			return "", nil
		}
	}

	if err := l.checkFree(dst); err != nil {
		if errors.Is(err, ErrExists) {
			l.logger.Warn("copy destination taken", zap.String("destination", dst))
			return "", nil
		}
		return "", err
	}

	dstDir := l.ProjectDir(dst)
	if err := l.fs.Copy(l.ProjectDir(src), dstDir); err != nil {
		return "", fmt.Errorf("failed to copy project %s: %w", src, err)
	}
	if err := l.writeMarker(dstDir, newMarker(dst, l.clock.Now())); err != nil {
		return "", err
	}

	l.logger.Info("copied project", zap.String("source", src), zap.String("destination", dst))
	return dst, nil
}

// defaultCopyName returns the first unused copy name for src, or "" if none is free.
func (l *FileLibrary) defaultCopyName(src string) (string, error) {
	for i := 1; i <= maxCopySuffix; i++ {
		candidate := src + "-copy"
		if i > 1 {
			candidate = fmt.Sprintf("%s-copy-%d", src, i)
		}
		exists, err := l.fs.Exists(l.ProjectDir(candidate))
		if err != nil {
			return "", fmt.Errorf("failed to check %s: %w", candidate, err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", nil
}
