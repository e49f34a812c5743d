// Package session drives the dependency probe across all requested targets.
package session

import (
	"context"
	"fmt"
	"io"

	"github.com/Smattr/scrutineer/internal/core/domain"
	"github.com/Smattr/scrutineer/internal/core/ports"
	"github.com/Smattr/scrutineer/internal/engine/prober"
	"go.trai.ch/zerr"
)

// Driver iterates the prober over every requested target, strictly in order,
// and formats the operator-facing report.
type Driver struct {
	runner        ports.Runner
	files         ports.FileProbe
	clock         ports.Clock
	log           ports.Logger
	fingerprinter ports.Fingerprinter
	out           io.Writer
}

// NewDriver creates a Driver writing report lines to out.
func NewDriver(
	runner ports.Runner,
	files ports.FileProbe,
	clock ports.Clock,
	log ports.Logger,
	fingerprinter ports.Fingerprinter,
	out io.Writer,
) *Driver {
	return &Driver{
		runner:        runner,
		files:         files,
		clock:         clock,
		log:           log,
		fingerprinter: fingerprinter,
		out:           out,
	}
}

// Run probes every target of the session. It returns nil when the session
// completed, even if individual targets were abandoned with warnings; any
// non-nil error is fatal and the caller should terminate with it.
func (d *Driver) Run(ctx context.Context, sess *domain.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	// Start from a pristine tree.
	if err := d.clean(ctx, sess); err != nil {
		return err
	}

	// Every candidate must survive the clean. One that does not is a build
	// artifact masquerading as a source input, and probing it would measure
	// the recipe's own output.
	for _, candidate := range sess.Candidates {
		if !d.files.Exists(candidate) {
			return zerr.With(domain.ErrCandidateIsArtifact, "candidate", candidate)
		}
	}

	p := prober.New(d.runner, d.files, d.clock, d.log, d.fingerprinter, sess)

	var phony []string
	for _, name := range sess.Targets {
		target := domain.NewTarget(name)

		res, err := p.Probe(ctx, target, sess.Candidates)
		if err != nil {
			// Fatal mid-probe: no partial report line for this target.
			return err
		}

		switch res.Outcome {
		case prober.OutcomeProbed:
			if _, err := fmt.Fprintln(d.out, res.Report.String()); err != nil {
				return zerr.Wrap(err, "failed to write report")
			}
		case prober.OutcomePhony:
			phony = append(phony, name)
		case prober.OutcomeBrokenRecipe, prober.OutcomeNoBaseline:
			// Already warned; nothing to report.
		}

		// Reset the tree so the next target starts from a known state.
		if err := d.clean(ctx, sess); err != nil {
			return err
		}
	}

	if sess.ReportPhony && len(phony) > 0 {
		if _, err := fmt.Fprintln(d.out, domain.PhonyLine(phony)); err != nil {
			return zerr.Wrap(err, "failed to write report")
		}
	}

	return nil
}

func (d *Driver) clean(ctx context.Context, sess *domain.Session) error {
	if err := d.runner.Run(ctx, sess.CleanArgv); err != nil {
		return zerr.With(domain.ErrCleanFailed, "cause", err.Error())
	}
	return nil
}
