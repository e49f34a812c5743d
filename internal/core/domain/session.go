package domain

import "time"

// DefaultMtimeResolution is the timestamp granularity assumed when the
// operator does not override it. One second is the portable worst case for
// filesystem mtime fields.
const DefaultMtimeResolution = time.Second

// Session describes one probing session: which targets to assess, which
// files might be their dependencies, and how to build and clean.
type Session struct {
	// Targets are the build artifacts to assess, in the order the operator
	// gave them.
	Targets []string

	// Candidates are the file paths hypothesized to influence some target's
	// build, in the order the operator gave them. Probing never reorders
	// them.
	Candidates []string

	// BuildArgv is the build command template. The target name is appended
	// as the final argument when building a specific target.
	BuildArgv []string

	// CleanArgv resets the working tree to a pristine, pre-build state.
	CleanArgv []string

	// WorkingDir, when non-empty, is applied once before any action runs.
	WorkingDir string

	// ReportPhony enables the trailing ".PHONY:" summary line.
	ReportPhony bool

	// VerifyContent enables the advisory content fingerprint comparison on
	// each detected rebuild.
	VerifyContent bool

	// MtimeResolution is the granularity at which the host filesystem
	// preserves modification times.
	MtimeResolution time.Duration
}

// Validate checks that the session is probeable at all. Both lists are
// required; an empty one is a configuration error, not a degenerate run.
func (s *Session) Validate() error {
	if len(s.Targets) == 0 {
		return ErrNoTargets
	}
	if len(s.Candidates) == 0 {
		return ErrNoCandidates
	}
	if len(s.BuildArgv) == 0 {
		return ErrNoBuildCommand
	}
	if len(s.CleanArgv) == 0 {
		return ErrNoCleanCommand
	}
	return nil
}

// BuildCommand returns the argv that builds exactly the named target.
func (s *Session) BuildCommand(target string) []string {
	argv := make([]string, 0, len(s.BuildArgv)+1)
	argv = append(argv, s.BuildArgv...)
	return append(argv, target)
}

// Resolution returns the configured mtime resolution, falling back to the
// default when unset.
func (s *Session) Resolution() time.Duration {
	if s.MtimeResolution <= 0 {
		return DefaultMtimeResolution
	}
	return s.MtimeResolution
}

// Overrides carries the operator's command-line settings into the config
// loader, where they take precedence over the session file.
type Overrides struct {
	Targets         []string
	Candidates      []string
	Build           string
	Clean           string
	WorkingDir      string
	ReportPhony     bool
	VerifyContent   bool
	MtimeResolution time.Duration
}
