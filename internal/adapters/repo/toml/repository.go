package toml

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/openwin/internal/domain"
	"github.com/bnema/openwin/internal/logging"
	"github.com/bnema/openwin/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	windowsFileMode = 0o600
	windowsDirMode  = 0o700
	tempFilePattern = ".windows-*.toml.tmp"
)

// Repository stores the window snapshot in a single TOML file.
type Repository struct {
	windowsPath string
	mu          *sync.RWMutex
	logger      *slog.Logger
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.WindowRepository = (*Repository)(nil)

func NewRepository(windowsPath string, logger *slog.Logger) (*Repository, error) {
	if strings.TrimSpace(windowsPath) == "" {
		return nil, errors.New("windows path is empty")
	}
	if logger == nil {
		logger = logging.Nop()
	}

	absPath, err := filepath.Abs(windowsPath)
	if err != nil {
		return nil, fmt.Errorf("resolve windows path: %w", err)
	}
	absPath = filepath.Clean(absPath)

	return &Repository{
		windowsPath: absPath,
		mu:          lockForPath(absPath),
		logger:      logger.With(slog.String("component", "window_repository")),
	}, nil
}

func (r *Repository) Path() string {
	return r.windowsPath
}

func (r *Repository) Save(ctx context.Context, window domain.WindowRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(window)
	updated := false
	for i := range file.Windows {
		if file.Windows[i].ID == encoded.ID {
			file.Windows[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Windows = append(file.Windows, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := r.writeSchema(file); err != nil {
		return err
	}

	r.logger.Debug("window saved", slog.String("id", encoded.ID), slog.Bool("updated", updated))
	return nil
}

func (r *Repository) Delete(ctx context.Context, id domain.WindowID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := make([]windowSchema, 0, len(file.Windows))
	for _, entry := range file.Windows {
		if entry.ID == string(id) {
			continue
		}
		kept = append(kept, entry)
	}

	if len(kept) == len(file.Windows) {
		return domain.ErrWindowNotFound
	}
	file.Windows = kept

	if err := r.writeSchema(file); err != nil {
		return err
	}

	r.logger.Debug("window deleted", slog.String("id", string(id)))
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.WindowID) (domain.WindowRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.WindowRecord{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.WindowRecord{}, err
	}

	for _, entry := range file.Windows {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.WindowRecord{}, domain.ErrWindowNotFound
}

// List returns the windows in file order, which is the order the resolver
// uses for tie-breaks.
func (r *Repository) List(ctx context.Context) ([]domain.WindowRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	windows := make([]domain.WindowRecord, 0, len(file.Windows))
	for _, entry := range file.Windows {
		windows = append(windows, fromSchema(entry))
	}

	return windows, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.windowsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read windows file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode windows file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.windowsPath), windowsDirMode); err != nil {
		return fmt.Errorf("create windows directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode windows file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.windowsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp windows file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp windows file: %w", err)
	}

	if err := tempFile.Chmod(windowsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp windows file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp windows file: %w", err)
	}

	if err := os.Rename(tempName, r.windowsPath); err != nil {
		return fmt.Errorf("replace windows file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(window domain.WindowRecord) windowSchema {
	encoded := windowSchema{
		ID:               string(window.ID),
		Folder:           window.Folder,
		File:             window.File,
		ExtensionDevPath: window.ExtensionDevPath,
		FocusedAt:        formatTime(window.FocusedAt),
	}
	if window.Workspace != nil {
		encoded.Workspace = &workspaceSchema{
			ID:         window.Workspace.ID,
			ConfigPath: window.Workspace.ConfigPath,
		}
	}

	return encoded
}

func fromSchema(window windowSchema) domain.WindowRecord {
	decoded := domain.WindowRecord{
		ID:               domain.WindowID(window.ID),
		Folder:           window.Folder,
		File:             window.File,
		ExtensionDevPath: window.ExtensionDevPath,
		FocusedAt:        parseTime(window.FocusedAt),
	}
	if window.Workspace != nil {
		decoded.Workspace = &domain.WorkspaceID{
			ID:         window.Workspace.ID,
			ConfigPath: window.Workspace.ConfigPath,
		}
	}

	return decoded
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.Format(time.RFC3339Nano)
}
