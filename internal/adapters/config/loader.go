// Package config provides the session configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/Smattr/scrutineer/internal/core/domain"
	"github.com/Smattr/scrutineer/internal/core/ports"
	shellwords "github.com/mattn/go-shellwords"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the session file looked up in the working directory.
const DefaultFilename = "scrutineer.yaml"

var (
	defaultBuild = []string{"make"}
	defaultClean = []string{"make", "clean"}
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader. It merges an optional YAML session
// file with command-line overrides; the command line wins field by field.
type Loader struct {
	Filename string
}

// NewLoader creates a Loader for the default session file name.
func NewLoader() *Loader {
	return &Loader{Filename: DefaultFilename}
}

// Load assembles the probing session. A missing session file is not an
// error; the session is then built from overrides and defaults alone.
func (l *Loader) Load(overrides domain.Overrides) (*domain.Session, error) {
	var file Sessionfile

	data, err := os.ReadFile(l.Filename) //nolint:gosec // path is a fixed well-known name
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only.
	case err != nil:
		return nil, zerr.Wrap(err, "failed to read session file")
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, zerr.Wrap(err, "failed to parse session file")
		}
	}

	sess := &domain.Session{
		Targets:       pick(overrides.Targets, file.Targets),
		Candidates:    pick(overrides.Candidates, file.Deps),
		WorkingDir:    pickString(overrides.WorkingDir, file.Chdir),
		ReportPhony:   overrides.ReportPhony || file.Phony,
		VerifyContent: overrides.VerifyContent || file.VerifyContent,
	}

	if sess.BuildArgv, err = splitCommand(pickString(overrides.Build, file.Build), defaultBuild); err != nil {
		return nil, zerr.Wrap(err, "invalid build command")
	}
	if sess.CleanArgv, err = splitCommand(pickString(overrides.Clean, file.Clean), defaultClean); err != nil {
		return nil, zerr.Wrap(err, "invalid clean command")
	}

	sess.MtimeResolution = overrides.MtimeResolution
	if sess.MtimeResolution <= 0 && file.MtimeResolution != "" {
		d, err := time.ParseDuration(file.MtimeResolution)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid mtime_resolution"), "value", file.MtimeResolution)
		}
		sess.MtimeResolution = d
	}

	return sess, nil
}

// splitCommand turns a single command string into an argv sequence, honoring
// single- and double-quoted segments.
func splitCommand(command string, fallback []string) ([]string, error) {
	if command == "" {
		return fallback, nil
	}
	argv, err := shellwords.Parse(command)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "cannot split command string"), "command", command)
	}
	if len(argv) == 0 {
		return nil, zerr.With(zerr.New("command string is blank"), "command", command)
	}
	return argv, nil
}

func pick(override, fromFile []string) []string {
	if len(override) > 0 {
		return override
	}
	return fromFile
}

func pickString(override, fromFile string) string {
	if override != "" {
		return override
	}
	return fromFile
}
