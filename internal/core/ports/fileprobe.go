package ports

import "time"

// FileProbe queries and manipulates the filesystem state the prober reasons
// about.
//
//go:generate go run go.uber.org/mock/mockgen -source=fileprobe.go -destination=mocks/mock_fileprobe.go -package=mocks
type FileProbe interface {
	// Exists reports whether the path currently exists.
	Exists(path string) bool

	// Mtime returns the path's modification time, or the zero time when the
	// path does not exist or is inaccessible. It never fails the caller.
	Mtime(path string) time.Time

	// SetMtime sets the path's modification time.
	SetMtime(path string, mtime time.Time) error
}
