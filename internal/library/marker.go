package library

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/librarian/internal/fsops"
)

const (
	// MarkerFile identifies a directory as a project.
	MarkerFile = ".librarian-project.yaml"

	// TrashDir holds projects removed by a safe delete. It is never listed.
	TrashDir = ".librarian-trash"
)

// Marker is the identity record stored at the root of every project.
type Marker struct {
	// ID is unique per project directory; copies get a new one
	ID string `yaml:"id"`

	// Name is the project name at the time the marker was written
	Name string `yaml:"name"`

	// Created is when this project directory was created
	Created time.Time `yaml:"created"`
}

// newMarker creates a marker with a fresh ID.
func newMarker(name string, created time.Time) *Marker {
	return &Marker{
		ID:      uuid.NewString(),
		Name:    name,
		Created: created.UTC(),
	}
}

// readMarker loads the marker of the project directory dir.
// Returns an error satisfying fsops.IsNotExist when dir is not a project.
func (l *FileLibrary) readMarker(dir string) (*Marker, error) {
	data, err := l.fs.ReadFile(filepath.Join(dir, MarkerFile))
	if err != nil {
		return nil, err
	}

	var marker Marker
	if err := yaml.Unmarshal(data, &marker); err != nil {
		return nil, fmt.Errorf("failed to parse project marker in %s: %w", dir, err)
	}
	if marker.ID == "" {
		return nil, fmt.Errorf("project marker in %s has no id", dir)
	}
	return &marker, nil
}

// writeMarker saves marker at the root of dir.
func (l *FileLibrary) writeMarker(dir string, marker *Marker) error {
	data, err := yaml.Marshal(marker)
	if err != nil {
		return fmt.Errorf("failed to marshal project marker: %w", err)
	}
	if err := l.fs.AtomicWrite(filepath.Join(dir, MarkerFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write project marker: %w", err)
	}
	return nil
}

// hasMarker reports whether dir holds a readable marker.
func (l *FileLibrary) hasMarker(dir string) (bool, error) {
	_, err := l.readMarker(dir)
	if err == nil {
		return true, nil
	}
	if fsops.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
