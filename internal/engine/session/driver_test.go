package session_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/Smattr/scrutineer/internal/core/domain"
	"github.com/Smattr/scrutineer/internal/core/ports/mocks"
	"github.com/Smattr/scrutineer/internal/engine/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	runner *mocks.MockRunner
	files  *mocks.MockFileProbe
	clock  *mocks.MockClock
	log    *mocks.MockLogger
	out    bytes.Buffer

	now    time.Time
	mtimes map[string]time.Time
	exists map[string]bool

	// onBuild is the scripted recipe; onClean resets the tree. Defaults do
	// nothing and succeed.
	onBuild func(target string) error
	onClean func() error
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		runner:  mocks.NewMockRunner(ctrl),
		files:   mocks.NewMockFileProbe(ctrl),
		clock:   mocks.NewMockClock(ctrl),
		log:     mocks.NewMockLogger(ctrl),
		now:     time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		mtimes:  make(map[string]time.Time),
		exists:  make(map[string]bool),
		onBuild: func(string) error { return nil },
		onClean: func() error { return nil },
	}

	h.log.EXPECT().Warn(gomock.Any()).AnyTimes()
	h.log.EXPECT().Info(gomock.Any()).AnyTimes()

	h.clock.EXPECT().AdvancePast(gomock.Any()).DoAndReturn(func(ref time.Time) time.Time {
		if ref.IsZero() {
			return h.now
		}
		h.now = ref.Add(time.Second)
		return h.now
	}).AnyTimes()

	h.files.EXPECT().Exists(gomock.Any()).DoAndReturn(func(path string) bool {
		return h.exists[path]
	}).AnyTimes()
	h.files.EXPECT().Mtime(gomock.Any()).DoAndReturn(func(path string) time.Time {
		return h.mtimes[path]
	}).AnyTimes()
	h.files.EXPECT().SetMtime(gomock.Any(), gomock.Any()).DoAndReturn(func(path string, mtime time.Time) error {
		h.mtimes[path] = mtime
		return nil
	}).AnyTimes()

	h.runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, argv []string) error {
		if slices.Equal(argv, []string{"make", "clean"}) {
			return h.onClean()
		}
		return h.onBuild(argv[len(argv)-1])
	}).AnyTimes()

	return h
}

func (h *harness) addFile(path string) {
	h.exists[path] = true
	h.mtimes[path] = h.now.Add(-time.Hour)
}

func (h *harness) driver() *session.Driver {
	return session.NewDriver(h.runner, h.files, h.clock, h.log, nil, &h.out)
}

func makeSession(targets, candidates []string) *domain.Session {
	return &domain.Session{
		Targets:    targets,
		Candidates: candidates,
		BuildArgv:  []string{"make"},
		CleanArgv:  []string{"make", "clean"},
	}
}

func TestDriver_Run_EmptyConfigurationIsFatal(t *testing.T) {
	h := newHarness(t)

	err := h.driver().Run(context.Background(), makeSession(nil, []string{"a.c"}))
	assert.ErrorIs(t, err, domain.ErrNoTargets)

	err = h.driver().Run(context.Background(), makeSession([]string{"out"}, nil))
	assert.ErrorIs(t, err, domain.ErrNoCandidates)
}

func TestDriver_Run_InitialCleanFailureIsFatal(t *testing.T) {
	h := newHarness(t)
	h.onClean = func() error { return errors.New("no clean rule") }

	err := h.driver().Run(context.Background(), makeSession([]string{"out"}, []string{"a.c"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCleanFailed)
	assert.Empty(t, h.out.String())
}

func TestDriver_Run_CandidateMissingAfterCleanIsFatal(t *testing.T) {
	// a.c exists, generated.c does not survive the clean: it is an artifact,
	// not a source input.
	h := newHarness(t)
	h.addFile("a.c")

	err := h.driver().Run(context.Background(), makeSession([]string{"out"}, []string{"a.c", "generated.c"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCandidateIsArtifact)
	assert.Empty(t, h.out.String())
}

func TestDriver_Run_ReportsPerTargetInOrder(t *testing.T) {
	h := newHarness(t)
	h.addFile("a.c")
	h.addFile("b.c")
	// Both targets rebuild whenever a.c is newer; b.c is read by neither.
	h.onBuild = func(target string) error {
		if !h.exists[target] || h.mtimes["a.c"].After(h.mtimes[target]) {
			h.exists[target] = true
			h.mtimes[target] = h.now
		}
		return nil
	}

	err := h.driver().Run(context.Background(), makeSession([]string{"first", "second"}, []string{"a.c", "b.c"}))
	require.NoError(t, err)

	assert.Equal(t, "first: a.c\nsecond: a.c\n", h.out.String())
}

func TestDriver_Run_BrokenRecipeContinuesSession(t *testing.T) {
	h := newHarness(t)
	h.addFile("a.c")
	h.onBuild = func(target string) error {
		if target == "broken" {
			return errors.New("no rule to make target")
		}
		if !h.exists[target] || h.mtimes["a.c"].After(h.mtimes[target]) {
			h.exists[target] = true
			h.mtimes[target] = h.now
		}
		return nil
	}

	err := h.driver().Run(context.Background(), makeSession([]string{"broken", "ok"}, []string{"a.c"}))
	require.NoError(t, err)

	// The broken target contributes no line; the session still probes "ok".
	assert.Equal(t, "ok: a.c\n", h.out.String())
}

func TestDriver_Run_PhonySummary(t *testing.T) {
	h := newHarness(t)
	h.addFile("a.c")
	// "all" and "check" never materialize; "out" does.
	h.onBuild = func(target string) error {
		if target == "out" && !h.exists[target] {
			h.exists[target] = true
			h.mtimes[target] = h.now
		}
		return nil
	}

	sess := makeSession([]string{"all", "out", "check"}, []string{"a.c"})
	sess.ReportPhony = true
	err := h.driver().Run(context.Background(), sess)
	require.NoError(t, err)

	assert.Equal(t, "out:\n.PHONY: all check\n", h.out.String())
}

func TestDriver_Run_PhonySummaryDisabledByDefault(t *testing.T) {
	h := newHarness(t)
	h.addFile("a.c")

	err := h.driver().Run(context.Background(), makeSession([]string{"check"}, []string{"a.c"}))
	require.NoError(t, err)
	assert.Empty(t, h.out.String())
}

func TestDriver_Run_FatalMidProbePrintsNothingForThatTarget(t *testing.T) {
	h := newHarness(t)
	h.addFile("a.c")
	builds := 0
	h.onBuild = func(target string) error {
		builds++
		if builds == 1 {
			h.exists[target] = true
			h.mtimes[target] = h.now
			return nil
		}
		// The rebuild removes the target: protocol violation.
		delete(h.exists, target)
		return nil
	}

	err := h.driver().Run(context.Background(), makeSession([]string{"out"}, []string{"a.c"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTargetVanished)
	assert.Empty(t, h.out.String())
}

func TestDriver_Run_CleanFailureBetweenTargetsIsFatal(t *testing.T) {
	h := newHarness(t)
	h.addFile("a.c")
	cleans := 0
	h.onClean = func() error {
		cleans++
		if cleans > 1 {
			return errors.New("clean broke")
		}
		return nil
	}
	h.onBuild = func(target string) error {
		if !h.exists[target] {
			h.exists[target] = true
			h.mtimes[target] = h.now
		}
		return nil
	}

	err := h.driver().Run(context.Background(), makeSession([]string{"one", "two"}, []string{"a.c"}))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCleanFailed)
}
