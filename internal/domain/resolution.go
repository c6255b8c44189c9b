package domain

const (
	DefaultSettingsFolderName = ".vscode"
	SettingsFileName          = "settings.json"
)

// BestWindowQuery describes an open request. An empty FilePath means the
// request carries no path.
type BestWindowQuery[W Window] struct {
	Windows            []W
	NewWindow          bool
	ReuseWindow        bool
	Context            OpenContext
	FilePath           string
	UserHome           string
	SettingsFolderName string
}

func (q BestWindowQuery[W]) SettingsFolder() string {
	if q.SettingsFolderName == "" {
		return DefaultSettingsFolderName
	}

	return q.SettingsFolderName
}

type ResolutionKind string

const (
	ResolutionNoMatch          ResolutionKind = "no_match"
	ResolutionExistingWindow   ResolutionKind = "existing_window"
	ResolutionDiscoveredFolder ResolutionKind = "discovered_folder"
)

// Resolution is the answer to a BestWindowQuery. Window is set only for
// ResolutionExistingWindow and Folder only for ResolutionDiscoveredFolder.
// ResolutionNoMatch tells the caller to open a new window.
type Resolution[W Window] struct {
	Kind   ResolutionKind
	Window W
	Folder string
}

func ExistingWindow[W Window](window W) Resolution[W] {
	return Resolution[W]{Kind: ResolutionExistingWindow, Window: window}
}

func DiscoveredFolder[W Window](folder string) Resolution[W] {
	return Resolution[W]{Kind: ResolutionDiscoveredFolder, Folder: folder}
}

func NoMatch[W Window]() Resolution[W] {
	return Resolution[W]{Kind: ResolutionNoMatch}
}
