// Package app implements the application layer for scrutineer.
package app

import (
	"context"
	"io"
	"os"

	"github.com/Smattr/scrutineer/internal/adapters/clock" //nolint:depguard // Wired in app layer
	"github.com/Smattr/scrutineer/internal/core/domain"
	"github.com/Smattr/scrutineer/internal/core/ports"
	"github.com/Smattr/scrutineer/internal/engine/session"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader        ports.ConfigLoader
	runner        ports.Runner
	files         ports.FileProbe
	fingerprinter ports.Fingerprinter
	log           ports.Logger
	out           io.Writer
}

// New creates a new App instance. Report lines go to stdout.
func New(
	loader ports.ConfigLoader,
	runner ports.Runner,
	files ports.FileProbe,
	fingerprinter ports.Fingerprinter,
	log ports.Logger,
) *App {
	return &App{
		loader:        loader,
		runner:        runner,
		files:         files,
		fingerprinter: fingerprinter,
		log:           log,
		out:           os.Stdout,
	}
}

// SetOutput redirects the report lines. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run executes one probing session from the merged configuration.
func (a *App) Run(ctx context.Context, overrides domain.Overrides) error {
	sess, err := a.loader.Load(overrides)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	if err := sess.Validate(); err != nil {
		return err
	}

	// The working directory override is applied exactly once, before any
	// build or clean action runs.
	if sess.WorkingDir != "" {
		if err := os.Chdir(sess.WorkingDir); err != nil {
			return zerr.With(zerr.Wrap(err, "cannot change working directory"), "dir", sess.WorkingDir)
		}
	}

	stepper := clock.NewStepper(clock.WithResolution(sess.Resolution()))
	driver := session.NewDriver(a.runner, a.files, stepper, a.log, a.fingerprinter, a.out)

	if err := driver.Run(ctx, sess); err != nil {
		return zerr.Wrap(err, "probing session failed")
	}
	return nil
}
