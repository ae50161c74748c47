package core

// Logger is the logging surface used by the renderer.
// pkg/log provides a go-logging backed implementation.
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards all output
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
