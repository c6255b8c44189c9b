package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/openwin/internal/domain"
	"github.com/bnema/openwin/internal/ports"
)

// Service answers open requests against the stored window snapshot.
type Service struct {
	windows  ports.WindowRepository
	resolver *Resolver[domain.WindowRecord]
	defaults ResolveDefaults
}

// ResolveDefaults fill in request fields the caller left empty.
type ResolveDefaults struct {
	UserHome           string
	SettingsFolderName string
}

func NewService(windows ports.WindowRepository, resolver *Resolver[domain.WindowRecord], defaults ResolveDefaults) *Service {
	return &Service{windows: windows, resolver: resolver, defaults: defaults}
}

func (s *Service) Resolve(ctx context.Context, cmd ResolveCommand) (Decision, error) {
	windows, err := s.windows.List(ctx)
	if err != nil {
		return Decision{}, fmt.Errorf("list windows: %w", err)
	}

	cmd = s.withDefaults(cmd)
	resolution := s.resolver.Resolve(domain.BestWindowQuery[domain.WindowRecord]{
		Windows:            windows,
		NewWindow:          cmd.NewWindow,
		ReuseWindow:        cmd.ReuseWindow,
		Context:            cmd.Context,
		FilePath:           cmd.FilePath,
		UserHome:           cmd.UserHome,
		SettingsFolderName: cmd.SettingsFolderName,
	})

	return Decision{Request: cmd, Resolution: resolution, Windows: len(windows)}, nil
}

func (s *Service) FindSettingsRoot(filePath, userHome, settingsFolderName string) (string, bool) {
	cmd := s.withDefaults(ResolveCommand{FilePath: filePath, UserHome: userHome, SettingsFolderName: settingsFolderName})
	return s.resolver.FindSettingsRoot(cmd.FilePath, cmd.UserHome, cmd.SettingsFolderName)
}

func (s *Service) Match(ctx context.Context, query MatchQuery) (domain.WindowRecord, error) {
	windows, err := s.windows.List(ctx)
	if err != nil {
		return domain.WindowRecord{}, fmt.Errorf("list windows: %w", err)
	}

	policy := s.resolver.Policy()
	value := strings.TrimSpace(query.Value)

	var (
		window domain.WindowRecord
		ok     bool
	)
	switch query.Kind {
	case MatchFolder:
		window, ok = domain.MatchOnFolder(policy, windows, absPath(value))
	case MatchWorkspace:
		window, ok = domain.MatchOnWorkspace(windows, domain.WorkspaceID{ID: value})
	case MatchExtensionDevelopment:
		window, ok = domain.MatchOnExtensionDevelopmentPath(policy, windows, absPath(value))
	case MatchWorkspaceOrFolder:
		window, ok = domain.MatchOnWorkspaceOrFolder(policy, windows, absPath(value))
	default:
		return domain.WindowRecord{}, fmt.Errorf("unsupported match kind %q", query.Kind)
	}

	if !ok {
		return domain.WindowRecord{}, domain.ErrWindowNotFound
	}

	return window, nil
}

func (s *Service) withDefaults(cmd ResolveCommand) ResolveCommand {
	if cmd.FilePath != "" {
		cmd.FilePath = absPath(cmd.FilePath)
	}
	if cmd.Context == "" {
		cmd.Context = domain.OpenContextCLI
	}
	if cmd.UserHome == "" {
		cmd.UserHome = s.defaults.UserHome
	}
	if cmd.SettingsFolderName == "" {
		cmd.SettingsFolderName = s.defaults.SettingsFolderName
	}
	if cmd.SettingsFolderName == "" {
		cmd.SettingsFolderName = domain.DefaultSettingsFolderName
	}

	return cmd
}
