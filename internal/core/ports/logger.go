package ports

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	// Debug logs a progress message. It is hidden unless debug output is enabled.
	Debug(msg string)
	// Info logs an informational message.
	Info(msg string)
	// Warn logs a warning that does not stop the current command.
	Warn(msg string)
	// Error reports the error that ends the current command.
	Error(err error)
	// SetProgram sets the program name printed in front of warnings and errors.
	SetProgram(name string)
}
