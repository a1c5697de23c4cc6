package library

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/danieljhkim/librarian/internal/clock"
	"github.com/danieljhkim/librarian/internal/fsops"
	"github.com/danieljhkim/librarian/internal/hash"
)

type fixture struct {
	lib   *FileLibrary
	root  string
	work  string
	clock *clock.FakeClock
}

func newFixture(t *testing.T, targets ...string) *fixture {
	t.Helper()
	if len(targets) == 0 {
		targets = []string{"UserData"}
	}

	base := t.TempDir()
	root := filepath.Join(base, "library")
	work := filepath.Join(base, "workspace")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.MkdirAll(work, 0755))

	clk := clock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	lib, err := New(fsops.NewRealFS(), hash.NewSHA256Hasher(), clk, zap.NewNop(), Config{
		LibraryPath:   root,
		WorkspacePath: work,
		SyncTargets:   targets,
	})
	require.NoError(t, err)

	return &fixture{lib: lib, root: root, work: work, clock: clk}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNew_RejectsBadSyncTargets(t *testing.T) {
	for _, target := range []string{"", "../escape", "/abs", MarkerFile} {
		_, err := New(fsops.NewRealFS(), hash.NewSHA256Hasher(), &clock.RealClock{}, nil, Config{
			LibraryPath:   "/lib",
			WorkspacePath: "/ws",
			SyncTargets:   []string{target},
		})
		assert.Error(t, err, "target %q", target)
	}
}

func TestCreateProject(t *testing.T) {
	f := newFixture(t, "UserData", "Config/Keys")

	require.NoError(t, f.lib.CreateProject("games/jam"))

	ok, err := f.lib.IsProject("games/jam")
	require.NoError(t, err)
	assert.True(t, ok)

	assert.DirExists(t, filepath.Join(f.root, "games", "jam", "UserData"))
	assert.DirExists(t, filepath.Join(f.root, "games", "jam", "Config", "Keys"))

	marker, err := f.lib.readMarker(f.lib.ProjectDir("games/jam"))
	require.NoError(t, err)
	assert.Equal(t, "games/jam", marker.Name)
	assert.NotEmpty(t, marker.ID)
	assert.True(t, marker.Created.Equal(f.clock.Now()))

	// the grouping directory is not itself a project
	ok, err = f.lib.IsProject("games")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreateProject_Errors(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.lib.CreateProject("alpha"))

	tests := []struct {
		name    string
		project string
		wantErr error
	}{
		{"existing", "alpha", ErrExists},
		{"nested", "alpha/inner", ErrInvalidName},
		{"empty", "", ErrInvalidName},
		{"parent escape", "../alpha", ErrInvalidName},
		{"absolute", "/alpha", ErrInvalidName},
		{"trash", TrashDir + "/x", ErrInvalidName},
		{"marker", "x/" + MarkerFile, ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := f.lib.CreateProject(tt.project)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsProject_InvalidNameIsNotProject(t *testing.T) {
	f := newFixture(t)

	ok, err := f.lib.IsProject("../../etc")
	require.NoError(t, err)
	assert.False(t, ok)

	writeFile(t, filepath.Join(f.root, "plain.txt"), "x")
	ok, err = f.lib.IsProject("plain.txt")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.lib.IsProject("plain.txt/inner")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListProjects(t *testing.T) {
	f := newFixture(t)
	for _, name := range []string{"zeta", "alpha", "games/jam", "games/puzzle", "tools/cli"} {
		require.NoError(t, f.lib.CreateProject(name))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(f.root, "empty-group"), 0755))

	tests := []struct {
		pattern string
		want    []string
	}{
		{"", []string{"alpha", "games/jam", "games/puzzle", "tools/cli", "zeta"}},
		{"*", []string{"alpha", "games/jam", "games/puzzle", "tools/cli", "zeta"}},
		{"games/*", []string{"games/jam", "games/puzzle"}},
		{"j*", []string{"games/jam"}},
		{"nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := f.lib.ListProjects(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListProjects_InvalidPattern(t *testing.T) {
	f := newFixture(t)
	_, err := f.lib.ListProjects("[")
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestListProjects_MissingLibrary(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.RemoveAll(f.root))

	got, err := f.lib.ListProjects("")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCopyProject(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.lib.CreateProject("alpha"))
	writeFile(t, filepath.Join(f.root, "alpha", "UserData", "save.dat"), "level 3")

	got, err := f.lib.CopyProject(ctx, "alpha", "beta")
	require.NoError(t, err)
	assert.Equal(t, "beta", got)
	assert.Equal(t, "level 3", readFile(t, filepath.Join(f.root, "beta", "UserData", "save.dat")))

	src, err := f.lib.readMarker(f.lib.ProjectDir("alpha"))
	require.NoError(t, err)
	dst, err := f.lib.readMarker(f.lib.ProjectDir("beta"))
	require.NoError(t, err)
	assert.Equal(t, "beta", dst.Name)
	assert.NotEqual(t, src.ID, dst.ID)
}

func TestCopyProject_DefaultNames(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.lib.CreateProject("alpha"))

	first, err := f.lib.CopyProject(ctx, "alpha", "")
	require.NoError(t, err)
	assert.Equal(t, "alpha-copy", first)

	second, err := f.lib.CopyProject(ctx, "alpha", "")
	require.NoError(t, err)
	assert.Equal(t, "alpha-copy-2", second)
}

func TestCopyProject_ExistingDestinationResolvesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.lib.CreateProject("alpha"))
	require.NoError(t, f.lib.CreateProject("beta"))

	got, err := f.lib.CopyProject(ctx, "alpha", "beta")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCopyProject_MissingSource(t *testing.T) {
	f := newFixture(t)
	_, err := f.lib.CopyProject(context.Background(), "ghost", "beta")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCopyProject_CancelledContext(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.lib.CreateProject("alpha"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.lib.CopyProject(ctx, "alpha", "beta")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, filepath.Join(f.root, "beta"))
}

func TestPullProject_MirrorsIntoWorkspace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.lib.CreateProject("alpha"))
	writeFile(t, filepath.Join(f.root, "alpha", "UserData", "save.dat"), "library")
	writeFile(t, filepath.Join(f.root, "alpha", "UserData", "sub", "cfg.ini"), "a=1")
	writeFile(t, filepath.Join(f.work, "UserData", "stale.tmp"), "old")
	writeFile(t, filepath.Join(f.work, "UserData", "save.dat"), "workspace")
	writeFile(t, filepath.Join(f.work, "Other", "keep.txt"), "untouched")

	require.NoError(t, f.lib.PullProject(ctx, "alpha"))

	assert.Equal(t, "library", readFile(t, filepath.Join(f.work, "UserData", "save.dat")))
	assert.Equal(t, "a=1", readFile(t, filepath.Join(f.work, "UserData", "sub", "cfg.ini")))
	assert.NoFileExists(t, filepath.Join(f.work, "UserData", "stale.tmp"))
	assert.Equal(t, "untouched", readFile(t, filepath.Join(f.work, "Other", "keep.txt")))
}

func TestPullProject_ReplacesFileWithNestedDirectory(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.lib.CreateProject("alpha"))
	writeFile(t, filepath.Join(f.root, "alpha", "UserData", "saves", "slot1", "data.sav"), "progress")
	writeFile(t, filepath.Join(f.work, "UserData", "saves"), "plain file")

	require.NoError(t, f.lib.PullProject(context.Background(), "alpha"))

	assert.Equal(t, "progress", readFile(t, filepath.Join(f.work, "UserData", "saves", "slot1", "data.sav")))
}

func TestPushProject_MirrorsIntoLibrary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.lib.CreateProject("alpha"))
	writeFile(t, filepath.Join(f.root, "alpha", "UserData", "old.dat"), "gone soon")
	writeFile(t, filepath.Join(f.work, "UserData", "new.dat"), "fresh")

	require.NoError(t, f.lib.PushProject(ctx, "alpha"))

	assert.Equal(t, "fresh", readFile(t, filepath.Join(f.root, "alpha", "UserData", "new.dat")))
	assert.NoFileExists(t, filepath.Join(f.root, "alpha", "UserData", "old.dat"))
	assert.FileExists(t, filepath.Join(f.root, "alpha", MarkerFile))
}

func TestPushProject_MissingWorkspaceTargetIsSkipped(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.lib.CreateProject("alpha"))
	writeFile(t, filepath.Join(f.root, "alpha", "UserData", "save.dat"), "keep me")

	require.NoError(t, f.lib.PushProject(context.Background(), "alpha"))

	assert.Equal(t, "keep me", readFile(t, filepath.Join(f.root, "alpha", "UserData", "save.dat")))
}

func TestSync_UnknownProject(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.lib.PullProject(context.Background(), "ghost"), ErrNotFound)
	assert.ErrorIs(t, f.lib.PushProject(context.Background(), "ghost"), ErrNotFound)
}

func TestDeleteProjects_SafeMovesToTrash(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.lib.CreateProject("games/jam"))
	writeFile(t, filepath.Join(f.root, "games", "jam", "UserData", "save.dat"), "progress")

	require.NoError(t, f.lib.DeleteProjects([]string{"games/jam"}, true))

	assert.NoDirExists(t, filepath.Join(f.root, "games", "jam"))
	assert.NoDirExists(t, filepath.Join(f.root, "games"), "empty grouping directory should be pruned")

	trashed := filepath.Join(f.root, TrashDir, "games", "jam-"+itoa(f.clock.Now().UnixNano()))
	assert.Equal(t, "progress", readFile(t, filepath.Join(trashed, "UserData", "save.dat")))

	names, err := f.lib.ListProjects("")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDeleteProjects_Unsafe(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.lib.CreateProject("alpha"))
	require.NoError(t, f.lib.CreateProject("beta"))

	require.NoError(t, f.lib.DeleteProjects([]string{"alpha", "alpha"}, false))

	assert.NoDirExists(t, filepath.Join(f.root, "alpha"))
	assert.NoDirExists(t, filepath.Join(f.root, TrashDir))
	assert.DirExists(t, filepath.Join(f.root, "beta"))
}

func TestDeleteProjects_AllOrNothing(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.lib.CreateProject("alpha"))

	err := f.lib.DeleteProjects([]string{"alpha", "ghost"}, false)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.DirExists(t, filepath.Join(f.root, "alpha"))
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
