// Package fsops provides the filesystem operations librarian performs.
//
// Every mutation of the library, the workspace or the metadata file goes
// through the FS interface so that higher layers can be tested against
// temporary directories or fakes.
//
// Key features:
//   - Atomic writes using temp file + rename
//   - Recursive copy that follows symlinks
//   - Path canonicalization (absolute, symlinks resolved)
//   - Project name validation
package fsops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

// FS provides an abstraction for filesystem operations.
type FS interface {
	// Stat returns file info, following symlinks.
	Stat(path string) (os.FileInfo, error)

	// ReadDir lists the entries of a directory sorted by name.
	ReadDir(path string) ([]os.DirEntry, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// RemoveAll removes a path and all its contents.
	RemoveAll(path string) error

	// Rename moves oldpath to newpath.
	Rename(oldpath, newpath string) error

	// Copy copies a file or directory from src to dst.
	Copy(src, dst string) error

	// AtomicWrite writes data to path atomically using temp file + rename.
	AtomicWrite(path string, data []byte, perm os.FileMode) error

	// ReadFile reads the entire contents of a file.
	ReadFile(path string) ([]byte, error)

	// Exists checks if a path exists.
	Exists(path string) (bool, error)

	// Canonicalize returns the absolute path with symlinks resolved.
	Canonicalize(path string) (string, error)
}

// RealFS implements FS using actual OS operations.
type RealFS struct{}

// NewRealFS creates a new RealFS.
func NewRealFS() *RealFS {
	return &RealFS{}
}

func (fs *RealFS) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

func (fs *RealFS) ReadDir(path string) ([]os.DirEntry, error) {
	return os.ReadDir(path)
}

func (fs *RealFS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *RealFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// Rename moves oldpath to newpath, creating the parent of newpath if needed.
func (fs *RealFS) Rename(oldpath, newpath string) error {
	if err := os.MkdirAll(filepath.Dir(newpath), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}
	return os.Rename(oldpath, newpath)
}

// Copy copies a file or directory from src to dst.
// Follows symlinks to copy the target content, not the symlink itself.
// A destination of a different type (file vs directory) is replaced.
func (fs *RealFS) Copy(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	dstInfo, err := os.Lstat(dst)
	if err == nil {
		if srcInfo.IsDir() != dstInfo.IsDir() {
			if err := os.RemoveAll(dst); err != nil {
				return fmt.Errorf("failed to remove existing destination: %w", err)
			}
		}
	} else if !IsNotExist(err) {
		return fmt.Errorf("failed to stat destination: %w", err)
	}

	if srcInfo.IsDir() {
		return fs.copyDir(src, dst, srcInfo.Mode())
	}
	return fs.copyFile(src, dst, srcInfo.Mode())
}

func (fs *RealFS) copyFile(src, dst string, mode os.FileMode) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	return dstFile.Sync()
}

func (fs *RealFS) copyDir(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(dst, mode.Perm()); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read source directory: %w", err)
	}

	for _, entry := range entries {
		if err := fs.Copy(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name())); err != nil {
			return err
		}
	}

	return nil
}

// AtomicWrite writes data to path atomically using temp file + rename.
func (fs *RealFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, ".librarian-tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	tmpFile = nil
	return nil
}

func (fs *RealFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Exists checks if a path exists. A dangling symlink counts as existing.
func (fs *RealFS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsNotExist reports whether err means path is absent, including a path that
// runs through a regular file.
func IsNotExist(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}

// Canonicalize returns the absolute form of path with every symlink resolved.
// The path must exist.
func (fs *RealFS) Canonicalize(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to make path absolute: %w", err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve symlinks: %w", err)
	}
	return resolved, nil
}

// ValidateProjectName checks that name is a clean, slash separated relative
// name that cannot escape the library root.
func ValidateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("invalid project name: empty")
	}
	if strings.Contains(name, "\\") {
		return fmt.Errorf("invalid project name %q: use '/' to separate levels", name)
	}
	if path.IsAbs(name) || filepath.IsAbs(name) {
		return fmt.Errorf("invalid project name %q: must be relative", name)
	}

	cleaned := path.Clean(name)
	if cleaned != name {
		return fmt.Errorf("invalid project name %q: not in canonical form (%q)", name, cleaned)
	}
	if cleaned == "." {
		return fmt.Errorf("invalid project name: empty or current directory")
	}
	for _, part := range strings.Split(cleaned, "/") {
		if part == ".." {
			return fmt.Errorf("invalid project name %q: path traversal not allowed", name)
		}
	}

	return nil
}
