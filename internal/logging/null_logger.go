package logging

import "github.com/vvka-141/vfsh/pkg/vfsh"

// NullLogger discards everything. Sessions and interpreters fall back to it
// when no logger is configured, which keeps library use and tests quiet.
type NullLogger struct{}

func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (l *NullLogger) Verbose(string, ...interface{}) {}

func (l *NullLogger) Info(string, ...interface{}) {}

func (l *NullLogger) Error(string, ...interface{}) {}

// OrNull returns logger, or a NullLogger when logger is nil.
func OrNull(logger vfsh.Logger) vfsh.Logger {
	if logger == nil {
		return NewNullLogger()
	}
	return logger
}

var _ vfsh.Logger = (*NullLogger)(nil)
