package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/openwin/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, windowsPath string) *Repository {
	t.Helper()

	repo, err := NewRepository(windowsPath, nil)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "windows.toml"))
	focused := time.Date(2026, 10, 15, 9, 30, 0, 123456789, time.UTC)

	first := domain.WindowRecord{
		ID:        "w-1",
		Folder:    "/work/proj",
		File:      "/work/proj/main.go",
		FocusedAt: focused,
	}
	second := domain.WindowRecord{
		ID:               "w-2",
		Workspace:        &domain.WorkspaceID{ID: "ws-1", ConfigPath: "/work/all.code-workspace"},
		ExtensionDevPath: "/work/ext",
		FocusedAt:        focused.Add(time.Minute),
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	windows, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.WindowRecord{first, second}, windows)
}

func TestRepositorySaveUpdatesInPlaceAndKeepsOrder(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "windows.toml"))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.WindowRecord{ID: "a", Folder: "/a"}))
	require.NoError(t, repo.Save(ctx, domain.WindowRecord{ID: "b", Folder: "/b"}))
	require.NoError(t, repo.Save(ctx, domain.WindowRecord{ID: "a", Folder: "/a2"}))

	windows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, domain.WindowID("a"), windows[0].ID)
	assert.Equal(t, "/a2", windows[0].Folder)
	assert.Equal(t, domain.WindowID("b"), windows[1].ID)
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "windows.toml"))
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.WindowRecord{ID: "a"}))
	require.NoError(t, repo.Save(ctx, domain.WindowRecord{ID: "b"}))

	require.NoError(t, repo.Delete(ctx, "a"))
	require.ErrorIs(t, repo.Delete(ctx, "a"), domain.ErrWindowNotFound)

	windows, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, windows, 1)
	assert.Equal(t, domain.WindowID("b"), windows[0].ID)
}

func TestRepositoryReadsHandWrittenSnapshot(t *testing.T) {
	t.Parallel()

	windowsPath := filepath.Join(t.TempDir(), "windows.toml")
	require.NoError(t, os.WriteFile(windowsPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[windows]]",
		"id = \"w-1\"",
		"folder = \"/proj\"",
		"focused_at = \"2026-10-15T09:30:00Z\"",
		"",
		"[[windows]]",
		"id = \"w-2\"",
		"",
		"[windows.workspace]",
		"id = \"ws\"",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, windowsPath)

	windows, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, "/proj", windows[0].Folder)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), windows[0].FocusedAt)
	require.NotNil(t, windows[1].Workspace)
	assert.Equal(t, "ws", windows[1].Workspace.ID)
	assert.True(t, windows[1].FocusedAt.IsZero())
}

func TestRepositorySaveEnforcesPermissions(t *testing.T) {
	t.Parallel()

	windowsPath := filepath.Join(t.TempDir(), "nested", "windows.toml")
	repo := newTestRepository(t, windowsPath)

	require.NoError(t, repo.Save(context.Background(), domain.WindowRecord{ID: "w-1"}))

	info, err := os.Stat(windowsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "windows.toml"))

	windows, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, windows)

	_, err = repo.GetByID(context.Background(), "w-1")
	require.ErrorIs(t, err, domain.ErrWindowNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	windowsPath := filepath.Join(t.TempDir(), "windows.toml")
	require.NoError(t, os.WriteFile(windowsPath, []byte("windows = ["), 0o600))

	repo := newTestRepository(t, windowsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode windows file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "windows.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.WindowRecord{ID: "w-1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveAllWindows(t *testing.T) {
	t.Parallel()

	windowsPath := filepath.Join(t.TempDir(), "windows.toml")
	repoA := newTestRepository(t, windowsPath)
	repoB := newTestRepository(t, windowsPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoA.Save(context.Background(), domain.WindowRecord{ID: domain.WindowID("a-" + strconv.Itoa(i))})
		}
	}()

	go func() {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repoB.Save(context.Background(), domain.WindowRecord{ID: domain.WindowID("b-" + strconv.Itoa(i))})
		}
	}()

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	windows, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, windows, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	windowsPath := filepath.Join(t.TempDir(), "windows.toml")
	repo := newTestRepository(t, windowsPath)

	require.NoError(t, repo.Save(context.Background(), domain.WindowRecord{ID: "w-1"}))

	data, err := os.ReadFile(windowsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	windowsPath := filepath.Join(t.TempDir(), "windows.toml")
	require.NoError(t, os.WriteFile(windowsPath, []byte("version = 999\n\nwindows = []\n"), 0o600))

	repo := newTestRepository(t, windowsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported windows schema version")
}

func TestNewRepositoryRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewRepository("  ", nil)
	require.Error(t, err)
}
