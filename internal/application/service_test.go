package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/openwin/internal/domain"
	"github.com/bnema/openwin/internal/ports/mocks"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, fsys afero.Fs, defaults ResolveDefaults) (*Service, *mocks.MockWindowRepository) {
	t.Helper()

	repo := mocks.NewMockWindowRepository(t)
	resolver := NewResolver[domain.WindowRecord](fsys, domain.CaseSensitive, nil)
	return NewService(repo, resolver, defaults), repo
}

func TestServiceResolveUsesStoredWindows(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, afero.NewMemMapFs(), ResolveDefaults{})
	window := domain.WindowRecord{ID: "w-1", Folder: "/proj", FocusedAt: focusedAt(1)}
	repo.EXPECT().List(mockAnyContext()).Return([]domain.WindowRecord{window}, nil).Once()

	decision, err := svc.Resolve(context.Background(), ResolveCommand{FilePath: "/proj/src/a.ts"})
	require.NoError(t, err)
	assert.Equal(t, domain.ExistingWindow(window), decision.Resolution)
	assert.Equal(t, 1, decision.Windows)
	assert.Equal(t, domain.OpenContextCLI, decision.Request.Context)
	assert.Equal(t, domain.DefaultSettingsFolderName, decision.Request.SettingsFolderName)
}

func TestServiceResolveAppliesDefaults(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, []string{"/home/u/.cursor"}, []string{"/home/u/.cursor/settings.json"})
	svc, repo := newTestService(t, fsys, ResolveDefaults{UserHome: "/home/u", SettingsFolderName: ".cursor"})
	repo.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()

	decision, err := svc.Resolve(context.Background(), ResolveCommand{FilePath: "/home/u/notes/../todo.md"})
	require.NoError(t, err)
	assert.Equal(t, "/home/u/todo.md", decision.Request.FilePath)
	assert.Equal(t, "/home/u", decision.Request.UserHome)
	assert.Equal(t, domain.DiscoveredFolder[domain.WindowRecord]("/home/u"), decision.Resolution)
}

func TestServiceResolveRequestOverridesDefaults(t *testing.T) {
	t.Parallel()

	fsys := memFs(t, []string{"/home/u/.vscode"}, nil)
	svc, repo := newTestService(t, fsys, ResolveDefaults{UserHome: "/home/u"})
	repo.EXPECT().List(mockAnyContext()).Return(nil, nil).Twice()

	decision, err := svc.Resolve(context.Background(), ResolveCommand{FilePath: "/home/u/a.md"})
	require.NoError(t, err)
	assert.Equal(t, domain.ResolutionNoMatch, decision.Resolution.Kind, "home requires a settings file")

	decision, err = svc.Resolve(context.Background(), ResolveCommand{FilePath: "/home/u/a.md", UserHome: "/home/other"})
	require.NoError(t, err)
	assert.Equal(t, domain.DiscoveredFolder[domain.WindowRecord]("/home/u"), decision.Resolution)
}

func TestServiceResolveListError(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, afero.NewMemMapFs(), ResolveDefaults{})
	repo.EXPECT().List(mockAnyContext()).Return(nil, errors.New("locked")).Once()

	_, err := svc.Resolve(context.Background(), ResolveCommand{FilePath: "/a"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "list windows: locked")
}

func TestServiceFindSettingsRoot(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, memFs(t, []string{"/a/.vscode"}, nil), ResolveDefaults{})

	root, ok := svc.FindSettingsRoot("/a/b/c.ts", "", "")
	require.True(t, ok)
	assert.Equal(t, "/a", root)
}

func TestServiceMatch(t *testing.T) {
	t.Parallel()

	windows := []domain.WindowRecord{
		{ID: "folder", Folder: "/proj"},
		{ID: "ws", Workspace: &domain.WorkspaceID{ID: "ws-1", ConfigPath: "/all.code-workspace"}},
		{ID: "ext", ExtensionDevPath: "/ext"},
	}

	tests := []struct {
		name  string
		query MatchQuery
		want  domain.WindowID
	}{
		{name: "folder", query: MatchQuery{Kind: MatchFolder, Value: "/proj/"}, want: "folder"},
		{name: "workspace", query: MatchQuery{Kind: MatchWorkspace, Value: " ws-1 "}, want: "ws"},
		{name: "extension", query: MatchQuery{Kind: MatchExtensionDevelopment, Value: "/ext"}, want: "ext"},
		{name: "workspace file", query: MatchQuery{Kind: MatchWorkspaceOrFolder, Value: "/all.code-workspace"}, want: "ws"},
		{name: "folder path", query: MatchQuery{Kind: MatchWorkspaceOrFolder, Value: "/proj"}, want: "folder"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newTestService(t, afero.NewMemMapFs(), ResolveDefaults{})
			repo.EXPECT().List(mockAnyContext()).Return(windows, nil).Once()

			got, err := svc.Match(context.Background(), tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.ID)
		})
	}
}

func TestServiceMatchMissesReturnNotFound(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, afero.NewMemMapFs(), ResolveDefaults{})
	repo.EXPECT().List(mockAnyContext()).Return([]domain.WindowRecord{{ID: "w", Folder: "/proj"}}, nil).Once()

	_, err := svc.Match(context.Background(), MatchQuery{Kind: MatchFolder, Value: "/proj/sub"})
	require.ErrorIs(t, err, domain.ErrWindowNotFound)
}

func TestServiceMatchUnsupportedKind(t *testing.T) {
	t.Parallel()

	svc, repo := newTestService(t, afero.NewMemMapFs(), ResolveDefaults{})
	repo.EXPECT().List(mockAnyContext()).Return(nil, nil).Once()

	_, err := svc.Match(context.Background(), MatchQuery{Kind: "title", Value: "x"})
	require.Error(t, err)
	assert.ErrorContains(t, err, `unsupported match kind "title"`)
}
