// Package prober implements the empirical dependency probe for one target.
//
// A probe drives repeated build cycles interleaved with modification-time
// perturbation: after a baseline build, each candidate file is touched in
// turn and the target rebuilt; if the target's mtime advances, that candidate
// provoked the rebuild. Probing is strictly serial — the whole deduction
// rests on a single linear ordering of timestamps, so no two subprocesses
// are ever in flight and no other writer may mutate the files under test.
package prober

import (
	"context"
	"fmt"
	"time"

	"github.com/Smattr/scrutineer/internal/core/domain"
	"github.com/Smattr/scrutineer/internal/core/ports"
	"go.trai.ch/zerr"
)

// Outcome classifies how the probe of one target ended, short of a fatal
// error.
type Outcome int

const (
	// OutcomeProbed means the full protocol ran and the result carries a
	// dependency report.
	OutcomeProbed Outcome = iota
	// OutcomeBrokenRecipe means the very first build-from-scratch failed and
	// the target was abandoned.
	OutcomeBrokenRecipe
	// OutcomePhony means the build succeeded but produced no file of the
	// target's name; mtime probing is inapplicable.
	OutcomePhony
	// OutcomeNoBaseline means the target's baseline mtime could not be set
	// and no trustworthy observation was possible.
	OutcomeNoBaseline
)

// Result is the outcome of probing a single target. Report is meaningful
// only when Outcome is OutcomeProbed.
type Result struct {
	Outcome Outcome
	Report  domain.Report
}

// Prober probes one target at a time against an ordered candidate list.
type Prober struct {
	runner ports.Runner
	files  ports.FileProbe
	clock  ports.Clock
	log    ports.Logger

	session *domain.Session

	// fingerprinter is optional; when present, detected rebuilds are checked
	// for byte-identical rewrites and an advisory is logged.
	fingerprinter ports.Fingerprinter
}

// New creates a Prober for the given session. fingerprinter may be nil to
// disable the content advisory.
func New(
	runner ports.Runner,
	files ports.FileProbe,
	clock ports.Clock,
	log ports.Logger,
	fingerprinter ports.Fingerprinter,
	session *domain.Session,
) *Prober {
	p := &Prober{
		runner:  runner,
		files:   files,
		clock:   clock,
		log:     log,
		session: session,
	}
	if session.VerifyContent {
		p.fingerprinter = fingerprinter
	}
	return p
}

// Probe runs the full protocol for one target. A nil error with a non-Probed
// outcome is a recoverable per-target condition; the session moves on to the
// next target. A non-nil error is fatal to the whole run.
func (p *Prober) Probe(ctx context.Context, target *domain.Target, candidates []string) (Result, error) {
	// Step 1: baseline build from a pristine tree.
	if err := p.runner.Run(ctx, p.session.BuildCommand(target.Name)); err != nil {
		p.log.Warn(fmt.Sprintf("skipping %s: building it from scratch failed (broken recipe)", target.Name))
		return Result{Outcome: OutcomeBrokenRecipe}, nil
	}

	// Step 2: a successful build that left no file of the target's name
	// means the target is phony. There is no mtime to perturb.
	if !p.files.Exists(target.Name) {
		target.MarkPhony()
		p.log.Warn(fmt.Sprintf("%s appears to be a phony target; skipping its dependency probe", target.Name))
		return Result{Outcome: OutcomePhony}, nil
	}

	// Step 3: stamp every present candidate with a common baseline.
	base := p.clock.AdvancePast(time.Time{})
	present, err := p.stampCandidates(target, candidates, base)
	if err != nil {
		return Result{}, err
	}

	// Step 4: anchor the target at the same baseline.
	if err := p.files.SetMtime(target.Name, base); err != nil {
		p.log.Warn(fmt.Sprintf("cannot anchor a baseline timestamp on %s; skipping it: %v", target.Name, err))
		return Result{Outcome: OutcomeNoBaseline}, nil
	}

	report, err := p.perturb(ctx, target, present, base)
	if err != nil {
		return Result{}, err
	}
	return Result{Outcome: OutcomeProbed, Report: report}, nil
}

// stampCandidates sets every existing candidate's mtime to base, returning
// the candidates that were actually present, in input order. A candidate
// missing at this point has likely been removed by the recipe itself; that is
// worth a warning but only disqualifies the candidate, not the target.
func (p *Prober) stampCandidates(target *domain.Target, candidates []string, base time.Time) ([]string, error) {
	present := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if !p.files.Exists(candidate) {
			p.log.Warn(fmt.Sprintf("candidate %s vanished before probing %s (destructive recipe?); skipping it", candidate, target.Name))
			continue
		}
		if err := p.files.SetMtime(candidate, base); err != nil {
			return nil, zerr.With(zerr.With(domain.ErrRigTouchFailed, "candidate", candidate), "cause", err.Error())
		}
		present = append(present, candidate)
	}
	return present, nil
}

// perturb is step 5: touch one candidate at a time, rebuild, and compare the
// target's observed mtime against the live baseline.
func (p *Prober) perturb(ctx context.Context, target *domain.Target, candidates []string, base time.Time) (domain.Report, error) {
	report := domain.Report{Target: target.Name}
	old := base

	for _, candidate := range candidates {
		now := p.clock.AdvancePast(old)
		if err := p.files.SetMtime(candidate, now); err != nil {
			return domain.Report{}, zerr.With(zerr.With(domain.ErrRigTouchFailed, "candidate", candidate), "cause", err.Error())
		}

		before := p.fingerprint(target.Name)

		// A build that worked from scratch but breaks after a touch means
		// the recipe is defective in a way that invalidates everything that
		// would follow.
		if err := p.runner.Run(ctx, p.session.BuildCommand(target.Name)); err != nil {
			return domain.Report{}, zerr.With(zerr.With(zerr.With(domain.ErrBuildBroke,
				"target", target.Name), "candidate", candidate), "cause", err.Error())
		}

		if !p.files.Exists(target.Name) {
			return domain.Report{}, zerr.With(zerr.With(domain.ErrTargetVanished,
				"target", target.Name), "candidate", candidate)
		}

		observed := p.files.Mtime(target.Name)
		switch {
		case observed.Equal(old):
			// Nothing happened; this candidate is not a dependency at this
			// step and the baseline stays put.
		case observed.After(old):
			report.Dependencies = append(report.Dependencies, candidate)
			// Advancing the baseline to the freshest observation is what
			// makes cascading rebuilds attribute to the real trigger instead
			// of re-reporting stale diffs.
			old = observed
			p.adviseIdenticalRewrite(target.Name, candidate, before)
		default:
			return domain.Report{}, zerr.With(zerr.With(zerr.With(domain.ErrMtimeRegressed,
				"target", target.Name), "observed", observed.String()), "baseline", old.String())
		}
	}

	return report, nil
}

// fingerprint returns the target's content hash, or zero when the advisory
// is disabled or the file cannot be read. The advisory never affects the
// probe's verdicts.
func (p *Prober) fingerprint(path string) uint64 {
	if p.fingerprinter == nil {
		return 0
	}
	sum, err := p.fingerprinter.Fingerprint(path)
	if err != nil {
		return 0
	}
	return sum
}

func (p *Prober) adviseIdenticalRewrite(path, candidate string, before uint64) {
	if p.fingerprinter == nil || before == 0 {
		return
	}
	after, err := p.fingerprinter.Fingerprint(path)
	if err != nil || after != before {
		return
	}
	p.log.Info(fmt.Sprintf("%s was rebuilt with identical content after touching %s", path, candidate))
}
