package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/librarian/internal/clock"
	"github.com/danieljhkim/librarian/internal/controller"
	"github.com/danieljhkim/librarian/internal/fsops"
	"github.com/danieljhkim/librarian/internal/hash"
	"github.com/danieljhkim/librarian/internal/library"
	"github.com/danieljhkim/librarian/internal/metadata"
)

// testEnv holds the directories and collaborators shared by successive runs.
type testEnv struct {
	libraryDir   string
	workspaceDir string
	metadataPath string

	fs     *fsops.RealFS
	hasher *countingHasher
	clock  *clock.FakeClock
}

// countingHasher wraps the real hasher and counts files hashed.
type countingHasher struct {
	inner  hash.Hasher
	hashed int
}

func (h *countingHasher) HashFile(path string) (string, error) {
	h.hashed++
	return h.inner.HashFile(path)
}

// scriptedConfirmer answers confirmations from a fixed list, then says no.
type scriptedConfirmer struct {
	answers []bool
}

func (c *scriptedConfirmer) Confirm(string) (bool, error) {
	if len(c.answers) == 0 {
		return false, nil
	}
	answer := c.answers[0]
	c.answers = c.answers[1:]
	return answer, nil
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	base := t.TempDir()

	env := &testEnv{
		libraryDir:   filepath.Join(base, "library"),
		workspaceDir: filepath.Join(base, "workspace"),
		metadataPath: filepath.Join(base, "librarian.yaml"),
		fs:           fsops.NewRealFS(),
		hasher:       &countingHasher{inner: hash.NewSHA256Hasher()},
		clock:        clock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
	}
	for _, dir := range []string{env.libraryDir, env.workspaceDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}
	return env
}

// open starts a new "process": a controller hydrated from the metadata file.
func (e *testEnv) open(t *testing.T, confirmer controller.Confirmer) *controller.Controller {
	t.Helper()
	if confirmer == nil {
		confirmer = &scriptedConfirmer{}
	}

	ctrl, _, err := controller.Open(controller.Deps{
		Store: metadata.NewFileStore(e.fs, e.metadataPath),
		NewService: func(rec *metadata.Record) (controller.Service, error) {
			return library.New(e.fs, e.hasher, e.clock, nil, library.Config{
				LibraryPath:   rec.LibraryPath,
				WorkspacePath: rec.WorkspacePath,
				SyncTargets:   rec.SyncTargets,
			})
		},
		Confirmer: confirmer,
		Clock:     e.clock,
	}, controller.OpenRequest{
		LibraryPath:   e.libraryDir,
		WorkspacePath: e.workspaceDir,
		SyncTargets:   []string{"UserData", "Config"},
	})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	return ctrl
}

// save persists ctrl, ending the "process".
func (e *testEnv) save(t *testing.T, ctrl *controller.Controller) {
	t.Helper()
	if err := ctrl.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent of %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

func assertMissing(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, err = %v", path, err)
	}
}
