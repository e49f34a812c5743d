package ports

import "time"

// Clock produces strictly-increasing timestamps at the host filesystem's
// mtime resolution.
//
//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	// AdvancePast returns a wall-clock timestamp strictly greater than ref,
	// truncated to the filesystem's mtime resolution. It blocks until the
	// wall clock has observably moved past ref.
	//
	// AdvancePast of the zero time returns the current truncated time
	// immediately; it is used to establish the very first baseline.
	AdvancePast(ref time.Time) time.Time
}
