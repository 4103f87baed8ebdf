package session

import (
	"testing"
	"time"
)

// captureLogger records every Warnf/Debugf call for assertions.
type captureLogger struct {
	warns  []string
	debugs []string
}

func (c *captureLogger) Warnf(format string, args ...interface{}) {
	c.warns = append(c.warns, format)
}

func (c *captureLogger) Debugf(format string, args ...interface{}) {
	c.debugs = append(c.debugs, format)
}

func TestDefaultOptionsMatchesZeroValue(t *testing.T) {
	o := DefaultOptions()
	if o != (Options{}) {
		t.Fatalf("DefaultOptions() = %+v, want zero value", o)
	}
}

func TestWithTimeoutSetsField(t *testing.T) {
	var o Options
	WithTimeout(5 * time.Second)(&o)
	if o.Timeout != 5*time.Second {
		t.Fatalf("Timeout = %v, want 5s", o.Timeout)
	}
}

func TestWithPingModeSetsField(t *testing.T) {
	var o Options
	WithPingMode(true)(&o)
	if !o.PingMode {
		t.Fatalf("PingMode = false, want true")
	}
}

func TestWithLoggerSetsField(t *testing.T) {
	logger := &captureLogger{}
	var o Options
	WithLogger(logger)(&o)
	if o.Logger != logger {
		t.Fatalf("Logger not set by WithLogger")
	}
}

func TestConnectWithOptionsAppliesLoggerAndRejectsBadAddress(t *testing.T) {
	s := New()
	defer s.Close()

	logger := &captureLogger{}
	err := s.ConnectWithOptions("not a valid host\x00", WithLogger(logger), WithTimeout(50*time.Millisecond))
	if err == nil {
		t.Fatalf("ConnectWithOptions with a malformed address returned nil error")
	}
	if s.logger != logger {
		t.Fatalf("ConnectWithOptions did not apply WithLogger before dialing")
	}
}

func TestSetLoggerNilFallsBackToDefault(t *testing.T) {
	s := New()
	s.SetLogger(nil)
	if s.logger == nil {
		t.Fatalf("SetLogger(nil) left logger nil")
	}
	if _, ok := s.logger.(defaultLogger); !ok {
		t.Fatalf("SetLogger(nil) did not fall back to defaultLogger, got %T", s.logger)
	}
}

func TestDefaultLoggerDebugfIsANoop(t *testing.T) {
	// Only asserts it doesn't panic; defaultLogger.Debugf is intentionally
	// a discard.
	newDefaultLogger().Debugf("%s", "anything")
}
