package clock_test

import (
	"testing"
	"time"

	"github.com/Smattr/scrutineer/internal/adapters/clock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_AdvancePast_ZeroReturnsNow(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 750_000_000, time.UTC)
	fc := clockwork.NewFakeClockAt(start)

	s := clock.NewStepper(clock.WithClock(fc))

	got := s.AdvancePast(time.Time{})
	assert.Equal(t, start.Truncate(time.Second), got)
}

func TestStepper_AdvancePast_BlocksUntilClockMoves(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fc := clockwork.NewFakeClockAt(start)

	s := clock.NewStepper(clock.WithClock(fc))
	ref := start.Truncate(time.Second)

	results := make(chan time.Time, 1)
	go func() {
		results <- s.AdvancePast(ref)
	}()

	// The stepper must be sleeping, not returning a stale timestamp.
	fc.BlockUntil(1)
	select {
	case got := <-results:
		t.Fatalf("AdvancePast returned %v before the clock moved", got)
	default:
	}

	fc.Advance(time.Second)

	got := <-results
	require.True(t, got.After(ref), "AdvancePast returned %v, want > %v", got, ref)
	assert.Equal(t, start.Add(time.Second), got)
}

func TestStepper_AdvancePast_SurvivesMultipleResolutionSteps(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fc := clockwork.NewFakeClockAt(start)

	s := clock.NewStepper(clock.WithClock(fc))
	// A reference in the future: the stepper has to poll through several
	// resolution steps before it can return.
	ref := start.Add(3 * time.Second)

	results := make(chan time.Time, 1)
	go func() {
		results <- s.AdvancePast(ref)
	}()

	// Four whole-second advances are needed before now > ref.
	for range 4 {
		fc.BlockUntil(1)
		fc.Advance(time.Second)
	}

	got := <-results
	require.True(t, got.After(ref))
	assert.Equal(t, start.Add(4*time.Second), got)
}

func TestStepper_AdvancePast_StrictlyIncreasingSequence(t *testing.T) {
	// Real clock with a tiny resolution keeps this fast while exercising the
	// actual polling loop.
	s := clock.NewStepper(clock.WithResolution(time.Millisecond))

	prev := s.AdvancePast(time.Time{})
	for range 10 {
		next := s.AdvancePast(prev)
		require.True(t, next.After(prev), "sequence not strictly increasing: %v then %v", prev, next)
		prev = next
	}
}

func TestStepper_Resolution_Defaults(t *testing.T) {
	assert.Equal(t, time.Second, clock.NewStepper().Resolution())
	assert.Equal(t, 10*time.Millisecond, clock.NewStepper(clock.WithResolution(10*time.Millisecond)).Resolution())
	assert.Equal(t, time.Second, clock.NewStepper(clock.WithResolution(-1)).Resolution())
}
