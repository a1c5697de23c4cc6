package metadata

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/librarian/internal/fsops"
)

var (
	// ErrNotFound indicates no metadata file exists yet (first run).
	ErrNotFound = errors.New("metadata not found")

	// ErrInvalid indicates the metadata file exists but cannot be used.
	ErrInvalid = errors.New("invalid metadata")
)

// Store provides an interface for persisting the controller record.
type Store interface {
	// Load reads and validates the record.
	// Returns ErrNotFound if there is no metadata file.
	Load() (*Record, error)

	// Save writes the record atomically.
	Save(rec *Record) error

	// Path returns the location of the metadata file.
	Path() string
}

// FileStore implements Store using a YAML file on disk.
type FileStore struct {
	fs   fsops.FS
	path string
}

// NewFileStore creates a new FileStore for the metadata file at path.
func NewFileStore(fs fsops.FS, path string) *FileStore {
	return &FileStore{
		fs:   fs,
		path: path,
	}
}

// Path returns the location of the metadata file.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the record, applying defaults for missing keys.
func (s *FileStore) Load() (*Record, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read metadata: %w", err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, s.path, err)
	}

	rec.normalize()
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}

	return &rec, nil
}

// Save writes all six keys to the metadata file.
func (s *FileStore) Save(rec *Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write metadata: %w", err)
	}

	return nil
}
