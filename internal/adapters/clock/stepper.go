// Package clock provides the wall-clock stepper adapter.
package clock

import (
	"time"

	"github.com/Smattr/scrutineer/internal/core/ports"
	"github.com/jonboulle/clockwork"
)

var _ ports.Clock = (*Stepper)(nil)

const (
	minPollInterval = time.Millisecond
	maxPollInterval = 100 * time.Millisecond
)

// Stepper implements ports.Clock by polling a wall clock until its value,
// truncated to the filesystem's mtime resolution, has moved past a reference
// timestamp.
//
// The polling is what makes the probe sound: mtime granularity is coarse, and
// naively taking "now" right after a previous touch can collide with the same
// truncated timestamp, turning a real rebuild into an undetectable change.
type Stepper struct {
	clock      clockwork.Clock
	resolution time.Duration
	poll       time.Duration
}

// Option configures a Stepper.
type Option func(*Stepper)

// WithResolution sets the mtime granularity the stepper assumes. Values <= 0
// fall back to one second.
func WithResolution(d time.Duration) Option {
	return func(s *Stepper) {
		if d > 0 {
			s.resolution = d
		}
	}
}

// WithClock substitutes the underlying clock. Tests use a fake.
func WithClock(c clockwork.Clock) Option {
	return func(s *Stepper) {
		s.clock = c
	}
}

// NewStepper creates a Stepper over the real wall clock with a one-second
// default resolution.
func NewStepper(opts ...Option) *Stepper {
	s := &Stepper{
		clock:      clockwork.NewRealClock(),
		resolution: time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.poll = min(max(s.resolution/10, minPollInterval), maxPollInterval)
	return s
}

// Resolution returns the mtime granularity the stepper assumes.
func (s *Stepper) Resolution() time.Duration {
	return s.resolution
}

// AdvancePast returns the current wall-clock time, truncated to the
// configured resolution, strictly after ref. It sleeps in short increments
// between clock reads rather than spinning.
//
// The zero reference is special: it asks for "whatever time it is now" and
// returns immediately, establishing the very first baseline.
func (s *Stepper) AdvancePast(ref time.Time) time.Time {
	now := s.clock.Now().Truncate(s.resolution)
	if ref.IsZero() {
		return now
	}
	for !now.After(ref) {
		s.clock.Sleep(s.poll)
		now = s.clock.Now().Truncate(s.resolution)
	}
	return now
}
