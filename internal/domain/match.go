package domain

import "path/filepath"

// MatchOnFolder returns the first window whose open folder is path-equal to
// folder.
func MatchOnFolder[W Window](policy CasePolicy, windows []W, folder string) (W, bool) {
	for _, window := range windows {
		if policy.Equal(window.FolderPath(), folder) {
			return window, true
		}
	}

	var zero W
	return zero, false
}

// MatchOnWorkspace returns the first window that has workspace open.
func MatchOnWorkspace[W Window](windows []W, workspace WorkspaceID) (W, bool) {
	if workspace.ID != "" {
		for _, window := range windows {
			opened, ok := window.WorkspaceIdentity()
			if ok && opened.Same(workspace) {
				return window, true
			}
		}
	}

	var zero W
	return zero, false
}

// MatchOnExtensionDevelopmentPath returns the first window launched for
// extension development against path.
func MatchOnExtensionDevelopmentPath[W Window](policy CasePolicy, windows []W, path string) (W, bool) {
	for _, window := range windows {
		if policy.Equal(window.ExtensionDevelopmentPath(), path) {
			return window, true
		}
	}

	var zero W
	return zero, false
}

// MatchOnWorkspaceOrFolder returns the first window whose workspace file or
// open folder is path.
func MatchOnWorkspaceOrFolder[W Window](policy CasePolicy, windows []W, path string) (W, bool) {
	for _, window := range windows {
		if workspace, ok := window.WorkspaceIdentity(); ok && policy.Equal(workspace.ConfigPath, path) {
			return window, true
		}
		if policy.Equal(window.FolderPath(), path) {
			return window, true
		}
	}

	var zero W
	return zero, false
}

// FindWindowOwningFilePath returns the window whose open folder is the
// deepest ancestor (or equal) of filePath. On equal depth the earlier window
// wins.
func FindWindowOwningFilePath[W Window](policy CasePolicy, windows []W, filePath string) (W, bool) {
	var (
		best       W
		found      bool
		bestLength int
	)

	for _, window := range windows {
		folder := window.FolderPath()
		if !policy.IsEqualOrParent(filePath, folder) {
			continue
		}

		length := len(filepath.Clean(folder))
		if !found || length > bestLength {
			best, bestLength, found = window, length, true
		}
	}

	return best, found
}

// SelectLastActive returns the most recently focused window. Ties go to the
// window listed first.
func SelectLastActive[W Window](windows []W) (W, bool) {
	var zero W
	if len(windows) == 0 {
		return zero, false
	}

	best := windows[0]
	for _, window := range windows[1:] {
		if window.LastFocusTime().After(best.LastFocusTime()) {
			best = window
		}
	}

	return best, true
}
