package domain

import (
	"fmt"
	"strings"
	"time"
)

type WindowID string

// WorkspaceID identifies a multi-root workspace. Two workspaces are the same
// workspace iff their IDs are equal; ConfigPath is informational.
type WorkspaceID struct {
	ID         string
	ConfigPath string
}

func (w WorkspaceID) Same(other WorkspaceID) bool {
	return w.ID == other.ID
}

// Window is the read-only view of an open editor window that the resolver
// needs. Any window type exposing these capabilities can be resolved.
type Window interface {
	WorkspaceIdentity() (WorkspaceID, bool)
	FolderPath() string
	ExtensionDevelopmentPath() string
	LastFocusTime() time.Time
}

type WindowRecord struct {
	ID               WindowID
	Workspace        *WorkspaceID
	Folder           string
	File             string
	ExtensionDevPath string
	FocusedAt        time.Time
}

var _ Window = WindowRecord{}

func (w WindowRecord) WorkspaceIdentity() (WorkspaceID, bool) {
	if w.Workspace == nil {
		return WorkspaceID{}, false
	}

	return *w.Workspace, true
}

func (w WindowRecord) FolderPath() string {
	return w.Folder
}

func (w WindowRecord) ExtensionDevelopmentPath() string {
	return w.ExtensionDevPath
}

func (w WindowRecord) LastFocusTime() time.Time {
	return w.FocusedAt
}

func (w WindowRecord) Validate() error {
	if strings.TrimSpace(string(w.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if w.Workspace != nil && strings.TrimSpace(w.Workspace.ID) == "" {
		return fmt.Errorf("workspace id is required when a workspace is set")
	}

	return nil
}

// Label is a short human description of what the window has open.
func (w WindowRecord) Label() string {
	switch {
	case w.Workspace != nil && w.Workspace.ConfigPath != "":
		return fmt.Sprintf("workspace %s", w.Workspace.ConfigPath)
	case w.Workspace != nil:
		return fmt.Sprintf("workspace %s", w.Workspace.ID)
	case w.Folder != "":
		return fmt.Sprintf("folder %s", w.Folder)
	case w.File != "":
		return fmt.Sprintf("file %s", w.File)
	case w.ExtensionDevPath != "":
		return fmt.Sprintf("extension development %s", w.ExtensionDevPath)
	default:
		return "empty window"
	}
}
