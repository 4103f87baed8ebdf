package session

import (
	"log"
	"os"
)

// Logger is the pluggable diagnostic sink for a Session, in the spirit of
// the teacher's api.Client-style injected logger rather than a new logging
// dependency: callers that already have a structured logger can adapt it
// to this interface, and those that don't get defaultLogger for free.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
}

// defaultLogger backs every Session until SetLogger is called. It logs
// warnings to the standard logger and discards debug output, matching the
// teacher's habit of defaulting ErrorLogger to a no-op/minimal callback
// rather than silently panicking on a nil logger.
type defaultLogger struct {
	*log.Logger
}

func newDefaultLogger() Logger {
	return defaultLogger{log.New(os.Stderr, "atemkit: ", log.LstdFlags)}
}

func (defaultLogger) Debugf(format string, args ...interface{}) {}

func (l defaultLogger) Warnf(format string, args ...interface{}) {
	l.Printf(format, args...)
}

// SetLogger replaces the Session's diagnostic sink. It is safe to call
// before Connect but is not itself goroutine-safe against a concurrent
// Connect/Disconnect; set it once, up front.
func (s *Session) SetLogger(logger Logger) {
	if logger == nil {
		logger = newDefaultLogger()
	}
	s.logger = logger
}
