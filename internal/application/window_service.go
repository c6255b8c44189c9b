package application

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bnema/openwin/internal/domain"
	"github.com/bnema/openwin/internal/ports"
	"github.com/google/uuid"
)

// WindowService maintains the window snapshot that the resolver reads.
type WindowService struct {
	windows ports.WindowRepository
	clock   ports.Clock
	newID   func() string
}

func NewWindowService(windows ports.WindowRepository, clock ports.Clock) *WindowService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &WindowService{windows: windows, clock: clock, newID: uuid.NewString}
}

func (s *WindowService) List(ctx context.Context) ([]domain.WindowRecord, error) {
	windows, err := s.windows.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}

	return windows, nil
}

func (s *WindowService) Add(ctx context.Context, cmd AddWindowCommand) (domain.WindowRecord, error) {
	id := domain.WindowID(strings.TrimSpace(string(cmd.ID)))
	if id == "" {
		id = domain.WindowID(s.newID())
	}

	_, err := s.windows.GetByID(ctx, id)
	if err == nil {
		return domain.WindowRecord{}, fmt.Errorf("%w: %s", domain.ErrWindowExists, id)
	}
	if !errors.Is(err, domain.ErrWindowNotFound) {
		return domain.WindowRecord{}, fmt.Errorf("get window by id: %w", err)
	}

	window := domain.WindowRecord{
		ID:               id,
		Folder:           absPath(cmd.Folder),
		File:             absPath(cmd.File),
		ExtensionDevPath: absPath(cmd.ExtensionDevPath),
		FocusedAt:        s.clock.Now(),
	}
	if cmd.Workspace != nil {
		workspace := *cmd.Workspace
		workspace.ConfigPath = absPath(workspace.ConfigPath)
		window.Workspace = &workspace
	}

	if err := window.Validate(); err != nil {
		return domain.WindowRecord{}, err
	}

	if err := s.windows.Save(ctx, window); err != nil {
		return domain.WindowRecord{}, fmt.Errorf("save window: %w", err)
	}

	return window, nil
}

// Focus marks the window as the most recently focused one.
func (s *WindowService) Focus(ctx context.Context, id domain.WindowID) (domain.WindowRecord, error) {
	window, err := s.windows.GetByID(ctx, id)
	if err != nil {
		return domain.WindowRecord{}, err
	}

	window.FocusedAt = s.clock.Now()
	if err := s.windows.Save(ctx, window); err != nil {
		return domain.WindowRecord{}, fmt.Errorf("save window: %w", err)
	}

	return window, nil
}

func (s *WindowService) Remove(ctx context.Context, id domain.WindowID) error {
	if err := s.windows.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete window: %w", err)
	}

	return nil
}

func absPath(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}

	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return filepath.Clean(trimmed)
	}

	return abs
}
