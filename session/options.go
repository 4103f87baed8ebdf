package session

import "time"

// Options configures a Connect call. The zero value is DefaultOptions, the
// same layout the teacher's gateway.NewWithIntents/DefaultGatewayOpts pair
// uses: a plain options struct built up by functional-option constructors
// rather than a dedicated flags/config library.
type Options struct {
	Timeout  time.Duration
	PingMode bool
	Logger   Logger
}

// Option mutates an Options under construction.
type Option func(*Options)

// DefaultOptions is Connect's behavior when called with no options: the
// protocol's default connection timeout, full handshake (not ping mode),
// and the default stderr-backed Logger.
func DefaultOptions() Options {
	return Options{}
}

// WithTimeout overrides the connection/handshake timeout. Zero (the
// default) means protocol.DefaultConnectionTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithPingMode puts the session in ping mode: it dials, sends hello, and
// reports IsAlive on any reply, but never completes the handshake.
func WithPingMode(pingMode bool) Option {
	return func(o *Options) { o.PingMode = pingMode }
}

// WithLogger overrides the session's diagnostic sink, equivalent to
// calling SetLogger before ConnectWithOptions.
func WithLogger(logger Logger) Option {
	return func(o *Options) { o.Logger = logger }
}

// ConnectWithOptions is Connect expressed through the functional-options
// pattern described in SPEC_FULL.md §7, for callers who want named,
// composable configuration instead of Connect's positional arguments.
// Connect itself is unchanged and remains the minimal entry point.
func (s *Session) ConnectWithOptions(addr string, opts ...Option) error {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	if o.Logger != nil {
		s.SetLogger(o.Logger)
	}
	return s.Connect(addr, o.Timeout, o.PingMode)
}
