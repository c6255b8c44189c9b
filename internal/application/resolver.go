package application

import (
	"log/slog"
	"path/filepath"

	"github.com/bnema/openwin/internal/domain"
	"github.com/bnema/openwin/internal/logging"
	"github.com/bnema/openwin/internal/ports"
)

// Resolver decides which window should handle an open request.
type Resolver[W domain.Window] struct {
	probe  ports.FileProber
	policy domain.CasePolicy
	logger *slog.Logger
}

func NewResolver[W domain.Window](probe ports.FileProber, policy domain.CasePolicy, logger *slog.Logger) *Resolver[W] {
	if logger == nil {
		logger = logging.Nop()
	}

	return &Resolver[W]{
		probe:  probe,
		policy: policy,
		logger: logger.With(slog.String("component", "resolver")),
	}
}

func (r *Resolver[W]) Policy() domain.CasePolicy {
	return r.policy
}

// Resolve picks the window for query. A window that already owns the file
// wins over a discovered settings root unless that root is strictly deeper
// than the window's folder. Without a path match the most recently focused
// window is used, or NoMatch when a new window was requested.
func (r *Resolver[W]) Resolve(query domain.BestWindowQuery[W]) domain.Resolution[W] {
	if !query.NewWindow && query.FilePath != "" && query.Context.AllowsPathMatching() {
		windowOnFilePath, owned := domain.FindWindowOwningFilePath(r.policy, query.Windows, query.FilePath)

		var (
			folderWithSettings string
			discovered         bool
		)
		if !query.ReuseWindow {
			folderWithSettings, discovered = r.FindSettingsRoot(query.FilePath, query.UserHome, query.SettingsFolder())
		}

		if owned && (!discovered || len(folderWithSettings) <= len(filepath.Clean(windowOnFilePath.FolderPath()))) {
			r.logger.Debug("file owned by open window",
				slog.String("file", query.FilePath),
				slog.String("folder", windowOnFilePath.FolderPath()),
			)
			return domain.ExistingWindow(windowOnFilePath)
		}

		if discovered {
			r.logger.Debug("settings root discovered",
				slog.String("file", query.FilePath),
				slog.String("folder", folderWithSettings),
			)
			return domain.DiscoveredFolder[W](folderWithSettings)
		}
	}

	if query.NewWindow {
		r.logger.Debug("new window requested")
		return domain.NoMatch[W]()
	}

	if window, ok := domain.SelectLastActive(query.Windows); ok {
		r.logger.Debug("falling back to last active window",
			slog.Time("focused_at", window.LastFocusTime()),
		)
		return domain.ExistingWindow(window)
	}

	r.logger.Debug("no window available")
	return domain.NoMatch[W]()
}

func (r *Resolver[W]) FindSettingsRoot(filePath, userHome, settingsFolderName string) (string, bool) {
	return FindSettingsRoot(r.probe, r.policy, filePath, userHome, settingsFolderName)
}
