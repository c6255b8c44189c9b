package domain

import (
	"fmt"
	"strings"
)

// OpenContext is the origin of an open request.
type OpenContext string

const (
	OpenContextDesktop OpenContext = "desktop"
	OpenContextCLI     OpenContext = "cli"
	OpenContextDock    OpenContext = "dock"
	OpenContextAPI     OpenContext = "api"
	OpenContextMenu    OpenContext = "menu"
	OpenContextDialog  OpenContext = "dialog"
)

func (c OpenContext) Valid() bool {
	switch c {
	case OpenContextDesktop, OpenContextCLI, OpenContextDock, OpenContextAPI, OpenContextMenu, OpenContextDialog:
		return true
	default:
		return false
	}
}

// AllowsPathMatching reports whether requests from this origin may be routed
// to a window by looking at the requested path.
func (c OpenContext) AllowsPathMatching() bool {
	switch c {
	case OpenContextDesktop, OpenContextCLI, OpenContextDock:
		return true
	default:
		return false
	}
}

func ParseOpenContext(raw string) (OpenContext, error) {
	ctx := OpenContext(strings.ToLower(strings.TrimSpace(raw)))
	if !ctx.Valid() {
		return "", fmt.Errorf("%w %q", ErrInvalidOpenContext, raw)
	}

	return ctx, nil
}
