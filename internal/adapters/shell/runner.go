// Package shell provides the subprocess runner adapter.
package shell

import (
	"context"
	"io"
	"os/exec"

	"github.com/Smattr/scrutineer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec.
//
// The child's stdout and stderr go to configurable sinks that default to a
// discard target, so recipe chatter cannot pollute the report lines the
// session driver writes. Stdin is never connected.
type Runner struct {
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdout redirects the children's standard output.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr redirects the children's standard error.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// NewRunner creates a Runner that discards child output.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		stdout: io.Discard,
		stderr: io.Discard,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run spawns the command and blocks until it has fully terminated. The next
// thing the caller does is inspect the filesystem state the child left
// behind, so there is nothing useful to overlap with.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return zerr.New("empty command")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // operator provided command
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "command", argv[0]), "exit_code", exitCode)
	}

	return nil
}
