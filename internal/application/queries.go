package application

import "github.com/bnema/openwin/internal/domain"

type MatchKind string

const (
	MatchFolder               MatchKind = "folder"
	MatchWorkspace            MatchKind = "workspace"
	MatchExtensionDevelopment MatchKind = "extension_dev_path"
	MatchWorkspaceOrFolder    MatchKind = "path"
)

type MatchQuery struct {
	Kind  MatchKind
	Value string
}

// Decision is a resolution together with the snapshot it was computed from.
type Decision struct {
	Request    ResolveCommand
	Resolution domain.Resolution[domain.WindowRecord]
	Windows    int
}
