package ports

// Logger defines the interface for logging. Report lines do not go through
// the logger; they are written directly to the session driver's output.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
}
