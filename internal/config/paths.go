// Package config resolves where librarian keeps its metadata file.
//
// The metadata file is a single YAML document, by default librarian.yaml in
// the current working directory. The location can be overridden with the
// --metadata flag or the LIBRARIAN_METADATA environment variable.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultMetadataFile is the metadata file name used when nothing overrides it.
	DefaultMetadataFile = "librarian.yaml"

	// MetadataEnv names the environment variable that overrides the metadata path.
	MetadataEnv = "LIBRARIAN_METADATA"
)

// Paths contains the filesystem paths used by librarian.
type Paths struct {
	// Metadata is the absolute path to the metadata file
	Metadata string
}

// ResolvePaths returns the paths for this invocation.
// Precedence for the metadata file: flagValue, then LIBRARIAN_METADATA, then
// librarian.yaml relative to cwd. Relative values are resolved against cwd.
func ResolvePaths(flagValue, cwd string) (*Paths, error) {
	metadata := flagValue
	if metadata == "" {
		metadata = os.Getenv(MetadataEnv)
	}
	if metadata == "" {
		metadata = DefaultMetadataFile
	}

	if !filepath.IsAbs(metadata) {
		if cwd == "" {
			wd, err := os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("failed to get current directory: %w", err)
			}
			cwd = wd
		}
		metadata = filepath.Join(cwd, metadata)
	}

	return &Paths{Metadata: filepath.Clean(metadata)}, nil
}

// EnsureDirectories creates the directory holding the metadata file.
func (p *Paths) EnsureDirectories() error {
	dir := filepath.Dir(p.Metadata)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
