package cmd

import (
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	aferoprobe "github.com/bnema/openwin/internal/adapters/probe/afero"
	resolutionrender "github.com/bnema/openwin/internal/adapters/render/resolution"
	tomlrepo "github.com/bnema/openwin/internal/adapters/repo/toml"
	"github.com/bnema/openwin/internal/application"
	"github.com/bnema/openwin/internal/config"
	"github.com/bnema/openwin/internal/domain"
	"github.com/bnema/openwin/internal/logging"
	"github.com/bnema/openwin/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	cfg            config.Config
	logger         *slog.Logger
	windows        *application.WindowService
	windowRepo     *tomlrepo.Repository
	probe          ports.FileProber
	renderDecision func(application.Decision, resolutionrender.RenderOptions) (string, error)
	renderWindows  func([]domain.WindowRecord, resolutionrender.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := logging.New(cfg.Log)

	repo, err := tomlrepo.NewRepository(cfg.WindowsPath, logger)
	if err != nil {
		return nil, fmt.Errorf("wire window repository: %w", err)
	}

	return &app{
		cfg:            cfg,
		logger:         logger,
		windows:        application.NewWindowService(repo, ports.SystemClock{}),
		windowRepo:     repo,
		probe:          aferoprobe.NewOSProber(),
		renderDecision: resolutionrender.Render,
		renderWindows:  resolutionrender.RenderWindows,
		now:            time.Now,
	}, nil
}

// service builds the resolving service. An empty rawPolicy keeps the
// configured case policy.
func (a *app) service(rawPolicy string) (*application.Service, error) {
	policy := a.cfg.CasePolicy
	if strings.TrimSpace(rawPolicy) != "" {
		parsed, err := domain.ParseCasePolicy(rawPolicy, runtime.GOOS)
		if err != nil {
			return nil, err
		}
		policy = parsed
	}

	resolver := application.NewResolver[domain.WindowRecord](a.probe, policy, a.logger)
	return application.NewService(a.windowRepo, resolver, application.ResolveDefaults{
		UserHome:           a.cfg.UserHome,
		SettingsFolderName: a.cfg.SettingsFolder,
	}), nil
}
