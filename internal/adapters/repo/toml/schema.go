package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Windows []windowSchema `toml:"windows"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported windows schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type windowSchema struct {
	ID               string           `toml:"id"`
	Folder           string           `toml:"folder,omitempty"`
	File             string           `toml:"file,omitempty"`
	ExtensionDevPath string           `toml:"extension_dev_path,omitempty"`
	FocusedAt        string           `toml:"focused_at,omitempty"`
	Workspace        *workspaceSchema `toml:"workspace,omitempty"`
}

type workspaceSchema struct {
	ID         string `toml:"id"`
	ConfigPath string `toml:"config_path,omitempty"`
}
