// Package afero answers settings-folder existence checks through an afero
// file system, wrapped read-only so probing can never write.
package afero

import (
	"io/fs"

	"github.com/bnema/openwin/internal/ports"
	"github.com/spf13/afero"
)

type Prober struct {
	fs afero.Fs
}

var _ ports.FileProber = (*Prober)(nil)

func NewProber(base afero.Fs) *Prober {
	if base == nil {
		base = afero.NewOsFs()
	}

	return &Prober{fs: afero.NewReadOnlyFs(base)}
}

// NewOSProber probes the host file system.
func NewOSProber() *Prober {
	return NewProber(afero.NewOsFs())
}

func (p *Prober) Stat(name string) (fs.FileInfo, error) {
	return p.fs.Stat(name)
}
