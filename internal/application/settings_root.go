package application

import (
	"path/filepath"

	"github.com/bnema/openwin/internal/domain"
	"github.com/bnema/openwin/internal/ports"
)

// FindSettingsRoot walks upward from the directory of filePath and returns
// the first folder that carries a settings folder. At the user home only an
// actual settings file counts, since the home-level settings folder usually
// holds extensions rather than project configuration.
func FindSettingsRoot(probe ports.FileProber, policy domain.CasePolicy, filePath, userHome, settingsFolderName string) (string, bool) {
	if filePath == "" {
		return "", false
	}
	if settingsFolderName == "" {
		settingsFolderName = domain.DefaultSettingsFolderName
	}

	for folder := range domain.Ancestors(filepath.Dir(filepath.Clean(filePath))) {
		if hasSettings(probe, policy, folder, userHome, settingsFolderName) {
			return folder, true
		}
	}

	return "", false
}

func hasSettings(probe ports.FileProber, policy domain.CasePolicy, folder, userHome, settingsFolderName string) bool {
	settingsDir := filepath.Join(folder, settingsFolderName)

	if policy.Equal(folder, userHome) {
		info, err := probe.Stat(filepath.Join(settingsDir, domain.SettingsFileName))
		if err != nil {
			return false
		}
		return info.Mode().IsRegular()
	}

	info, err := probe.Stat(settingsDir)
	if err != nil {
		return false
	}

	return info.IsDir()
}
