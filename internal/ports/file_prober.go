package ports

import "io/fs"

// FileProber answers read-only existence questions about the file system.
type FileProber interface {
	Stat(name string) (fs.FileInfo, error)
}
