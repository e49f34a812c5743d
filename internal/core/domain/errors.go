package domain

import "go.trai.ch/zerr"

// Fatal errors. Any of these aborts the whole session with a non-zero exit:
// the probing protocol's assumptions have been violated and further results
// would be untrustworthy.
var (
	// ErrNoTargets is returned when the session names no targets.
	ErrNoTargets = zerr.New("no targets to assess")

	// ErrNoCandidates is returned when the session names no candidate
	// dependencies.
	ErrNoCandidates = zerr.New("no candidate dependencies to probe")

	// ErrNoBuildCommand is returned when the build command is empty.
	ErrNoBuildCommand = zerr.New("no build command configured")

	// ErrNoCleanCommand is returned when the clean command is empty.
	ErrNoCleanCommand = zerr.New("no clean command configured")

	// ErrCandidateIsArtifact is returned when a candidate dependency is
	// absent immediately after the initial clean. A source input must survive
	// a clean; one that does not is a build artifact, and the premise of the
	// probe is invalid.
	ErrCandidateIsArtifact = zerr.New("candidate dependency missing after clean")

	// ErrCleanFailed is returned when the clean action fails at session start
	// or between targets. Subsequent targets cannot be probed from an unknown
	// tree state.
	ErrCleanFailed = zerr.New("clean action failed")

	// ErrRigTouchFailed is returned when a file's modification time cannot be
	// set during baseline setup or perturbation. The test rig itself is
	// broken.
	ErrRigTouchFailed = zerr.New("cannot set modification time")

	// ErrBuildBroke is returned when a build that succeeded from scratch
	// fails after a candidate touch. A touch that breaks a previously-working
	// build indicates a recipe defect severe enough to invalidate further
	// results.
	ErrBuildBroke = zerr.New("rebuild failed after candidate touch")

	// ErrTargetVanished is returned when a non-phony target no longer exists
	// after a rebuild.
	ErrTargetVanished = zerr.New("target vanished during probing")

	// ErrMtimeRegressed is returned when the target's observed mtime moved
	// backward relative to the live baseline. The clock or filesystem went
	// backward and timestamp causality is lost.
	ErrMtimeRegressed = zerr.New("target modification time regressed")
)
