// Package fsprobe provides filesystem state queries and mtime manipulation.
package fsprobe

import (
	"os"
	"time"

	"github.com/Smattr/scrutineer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileProbe = (*Probe)(nil)

// Probe implements ports.FileProbe over the host filesystem.
type Probe struct{}

// NewProbe creates a new Probe.
func NewProbe() *Probe {
	return &Probe{}
}

// Exists reports whether the path currently exists.
func (p *Probe) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Mtime returns the path's modification time. A path that does not exist or
// cannot be stat'd yields the zero time; the caller treats that as "before
// everything".
func (p *Probe) Mtime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// SetMtime sets the path's access and modification times to mtime.
func (p *Probe) SetMtime(path string, mtime time.Time) error {
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to set modification time"), "path", path)
	}
	return nil
}
