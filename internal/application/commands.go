package application

import (
	"github.com/bnema/openwin/internal/domain"
)

type AddWindowCommand struct {
	ID               domain.WindowID
	Folder           string
	File             string
	Workspace        *domain.WorkspaceID
	ExtensionDevPath string
}

type ResolveCommand struct {
	FilePath           string
	Context            domain.OpenContext
	NewWindow          bool
	ReuseWindow        bool
	UserHome           string
	SettingsFolderName string
}
