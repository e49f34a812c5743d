// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner executes an external command synchronously.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run spawns argv[0] with the remaining arguments, suppresses the child's
	// output, and blocks until the child has fully terminated.
	//
	// It returns nil only when the child both launched and exited with status
	// zero. Any non-zero exit, failure to launch, or termination by signal is
	// an error; callers only rely on the success/failure distinction.
	Run(ctx context.Context, argv []string) error
}
