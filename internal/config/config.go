package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/bnema/openwin/internal/domain"
	"github.com/bnema/openwin/internal/logging"
	"github.com/spf13/viper"
)

const (
	configName  = "config"
	configType  = "toml"
	configDir   = ".config/openwin"
	windowsFile = "windows.toml"
	envPrefix   = "OW"

	WindowsPathKey    = "windows.path"
	SettingsFolderKey = "resolver.settings_folder"
	CasePolicyKey     = "resolver.case_policy"
	UserHomeKey       = "resolver.user_home"
	LogLevelKey       = "log.level"
	LogFormatKey      = "log.format"
)

type Config struct {
	WindowsPath    string
	SettingsFolder string
	CasePolicy     domain.CasePolicy
	UserHome       string
	Log            logging.Config
}

// Load reads ~/.config/openwin/config.toml into cfg. A missing file is not an
// error. OW_-prefixed environment variables override file values, for example
// OW_RESOLVER_CASE_POLICY.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(WindowsPathKey, filepath.Join(dir, windowsFile))
	cfg.SetDefault(SettingsFolderKey, domain.DefaultSettingsFolderName)
	cfg.SetDefault(CasePolicyKey, "auto")
	cfg.SetDefault(UserHomeKey, homeDir)
	cfg.SetDefault(LogLevelKey, "warn")
	cfg.SetDefault(LogFormatKey, string(logging.FormatText))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	windowsPath := strings.TrimSpace(cfg.GetString(WindowsPathKey))
	if windowsPath == "" {
		return Config{}, errors.New("windows path is empty")
	}
	windowsPath, err = normalizePath(windowsPath)
	if err != nil {
		return Config{}, err
	}

	policy, err := domain.ParseCasePolicy(cfg.GetString(CasePolicyKey), runtime.GOOS)
	if err != nil {
		return Config{}, err
	}

	settingsFolder := strings.TrimSpace(cfg.GetString(SettingsFolderKey))
	if settingsFolder == "" {
		settingsFolder = domain.DefaultSettingsFolderName
	}

	return Config{
		WindowsPath:    windowsPath,
		SettingsFolder: settingsFolder,
		CasePolicy:     policy,
		UserHome:       cfg.GetString(UserHomeKey),
		Log: logging.Config{
			Level:  cfg.GetString(LogLevelKey),
			Format: logging.Format(cfg.GetString(LogFormatKey)),
			Output: os.Stderr,
		},
	}, nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve windows path: %w", err)
	}

	return filepath.Clean(absPath), nil
}
