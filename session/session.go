// Package session implements the session engine (component H): the
// connect / handshake / initial-sync / steady-state state machine that
// drives one connection to a switcher, built on top of the datagram
// endpoint (package transport), the frame codec and buffer accessor
// (package wire), the state mirror and command decoders/encoders
// (packages state and command), and the event fan-out (package event).
//
// The engine owns exactly one goroutine of its own: the I/O loop
// implemented in loop.go. Callers invoke setters and actions from their
// own goroutine(s); the event dispatcher delivers on a third, decoupled
// goroutine. This is the three-thread model from SPEC_FULL.md §5.
package session

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"golang.org/x/time/rate"

	"github.com/go-atem/atemkit/command"
	"github.com/go-atem/atemkit/event"
	"github.com/go-atem/atemkit/internal/backoff"
	"github.com/go-atem/atemkit/internal/heart"
	"github.com/go-atem/atemkit/internal/moreatomic"
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/transport"
	"github.com/go-atem/atemkit/wire"
)

// Phase is one state of the connection state machine described in
// SPEC_FULL.md §4.6.
type Phase int

const (
	Disconnected Phase = iota
	HelloSent
	HelloAcked
	Syncing
	Connected
)

func (p Phase) String() string {
	switch p {
	case Disconnected:
		return "disconnected"
	case HelloSent:
		return "helloSent"
	case HelloAcked:
		return "helloAcked"
	case Syncing:
		return "syncing"
	case Connected:
		return "connected"
	default:
		return "unknown"
	}
}

// ErrAlreadyConnecting is returned by Connect/Ping when the engine is
// already mid-handshake or connected; call Disconnect first.
var ErrAlreadyConnecting = errors.New("session: already connecting or connected")

// ErrNotConnected is returned by a setter or action helper invoked before
// the handshake has at least started.
var ErrNotConnected = errors.New("session: not connected")

// watermarkUnset is the sentinel stored in Session.watermark before the
// initial-payload-complete packet has been seen.
const watermarkUnset = -1

// retryMin and retryMax bound the backoff applied to repeated hello
// retransmission when a reconnect attempt itself goes unanswered; the
// original source simply re-tries once per fixed connection_timeout
// interval forever. internal/backoff paces that instead so a switcher
// that never comes back doesn't turn the I/O loop into a fixed-rate
// hello flood (see DESIGN.md).
const (
	retryMin = 250 * time.Millisecond
	retryMax = 30 * time.Second
)

// tickInterval bounds how often the I/O loop re-checks the socket and
// timers when idle, the same role voice/udp.Connection's rate.Limiter
// plays for its send cadence.
const tickInterval = time.Millisecond

// resendRequestInterval bounds how often advanceSync may ask the peer to
// retransmit a missing initial-payload packet, so a long run of missing
// ids doesn't turn into a burst of requestNextAfter packets.
const resendRequestInterval = 50 * time.Millisecond

// Session is one client connection to a switcher. It owns its own socket
// and I/O loop; multiple Sessions may coexist in one process.
type Session struct {
	State *state.State

	// Events is the event fan-out for this session (component I). Use
	// Events.On to subscribe.
	Events *event.Dispatcher

	bundler  *command.Bundler
	bundleMu *moreatomic.CtxMutex

	logger Logger

	conn *transport.Endpoint

	addr        string
	pingMode    bool
	connTimeout time.Duration

	localID moreatomic.PacketIDCounter
	missed  *moreatomic.MissedBitmap
	contact *heart.ContactWatch
	retry   backoff.Timer
	retryCh <-chan time.Time

	ticker        *rate.Limiter
	resendLimiter *rate.Limiter

	sessionID          atomic.Uint32
	phase              atomic.Uint32
	switcherAlive      atomic.Bool
	handshakeStarted   atomic.Bool
	initPayloadSent    atomic.Bool
	waitingForIncoming atomic.Bool
	watermark          atomic.Int64

	lifecycle sync.Mutex // guards Connect/Disconnect transitions

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New returns an idle Session, not yet connected to anything.
func New() *Session {
	s := &Session{
		State:         state.New(),
		Events:        event.NewDispatcher(),
		bundler:       command.NewBundler(),
		bundleMu:      moreatomic.NewCtxMutex(),
		missed:        moreatomic.NewMissedBitmap(protocol.MaxInitPacketCount),
		retry:         backoff.NewTimer(retryMin, retryMax),
		ticker:        rate.NewLimiter(rate.Every(tickInterval), 1),
		resendLimiter: rate.NewLimiter(rate.Every(resendRequestInterval), 1),
		logger:        newDefaultLogger(),
	}
	s.watermark.Store(watermarkUnset)
	return s
}

// Bundler returns the Bundler setters must be called against between
// BundleBegin and BundleEnd.
func (s *Session) Bundler() *command.Bundler { return s.bundler }

// Phase reports the engine's current state.
func (s *Session) Phase() Phase { return Phase(s.phase.Load()) }

// IsConnected reports whether the engine has completed the handshake and
// initial sync.
func (s *Session) IsConnected() bool { return s.Phase() == Connected }

// IsAlive reports whether any datagram has ever been received from the
// peer, independent of whether the handshake has completed. This is
// weaker than IsConnected and is what "ping mode" uses to answer
// "does a switcher exist at this address".
func (s *Session) IsAlive() bool { return s.switcherAlive.Load() }

func normalizeAddr(addr string) (string, error) {
	if _, _, err := net.SplitHostPort(addr); err == nil {
		return addr, nil
	}
	return net.JoinHostPort(addr, strconv.Itoa(protocol.UDPPort)), nil
}

// Connect dials addr (a bare host or host:port; port defaults to 9910)
// and starts the handshake. It returns once the hello packet has been
// sent; use WaitForConnection to block for the handshake to complete.
// timeout, if zero, defaults to protocol.DefaultConnectionTimeout.
func (s *Session) Connect(addr string, timeout time.Duration, pingMode bool) error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.Phase() != Disconnected {
		return ErrAlreadyConnecting
	}
	if timeout <= 0 {
		timeout = protocol.DefaultConnectionTimeout
	}

	full, err := normalizeAddr(addr)
	if err != nil {
		return errors.Wrap(err, "session: normalize address")
	}

	conn, err := transport.Dial(full)
	if err != nil {
		return errors.Wrap(err, "session: dial")
	}

	s.conn = conn
	s.addr = full
	s.pingMode = pingMode
	s.connTimeout = timeout
	s.contact = heart.NewContactWatch(timeout)
	s.retry.Stop()
	s.retry = backoff.NewTimer(retryMin, retryMax)
	s.retryCh = nil

	s.localID.Reset()
	s.missed.Reset()
	s.sessionID.Store(0)
	s.switcherAlive.Store(false)
	s.handshakeStarted.Store(false)
	s.initPayloadSent.Store(false)
	s.waitingForIncoming.Store(false)
	s.watermark.Store(watermarkUnset)

	s.stopCh = make(chan struct{})

	now := time.Now()
	s.Events.Post(event.Event{Kind: event.ConnectAttempt})
	if err := s.sendHello(now); err != nil {
		conn.Close()
		return errors.Wrap(err, "session: send hello")
	}
	s.phase.Store(uint32(HelloSent))

	s.wg.Add(1)
	go s.runLoop()

	return nil
}

// Ping is Connect with ping_mode=true: it drains and discards every
// reply, ACKs nothing, and never advances past HelloSent. Callers check
// IsAlive afterward to learn whether anything answered.
func (s *Session) Ping(addr string, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return s.Connect(addr, timeout, true)
}

// Disconnect stops the I/O loop and releases the socket. It is
// idempotent. A disconnected Session may be reconnected with Connect.
func (s *Session) Disconnect() error {
	s.lifecycle.Lock()
	defer s.lifecycle.Unlock()

	if s.Phase() == Disconnected {
		return nil
	}

	close(s.stopCh)
	s.wg.Wait()
	s.retry.Stop()

	var err error
	if s.conn != nil {
		err = s.conn.Close()
	}
	s.phase.Store(uint32(Disconnected))
	return err
}

// Close disconnects (if connected) and stops the event dispatcher. A
// closed Session must not be reused.
func (s *Session) Close() error {
	err := s.Disconnect()
	s.Events.Close()
	return err
}

// WaitForConnection polls the state machine and reports whether it
// reached the requested milestone before timeout elapses. If infinite is
// true, timeout is ignored and the call blocks until the milestone is
// reached. If waitFullHandshake is false, the milestone is
// "handshake_started" (HelloAcked reached); if true, the milestone is
// full Connected. Both phases of a full-handshake wait share one
// deadline rather than each getting their own timeout budget.
func (s *Session) WaitForConnection(infinite bool, timeout time.Duration, waitFullHandshake bool) bool {
	var deadline time.Time
	if !infinite {
		deadline = time.Now().Add(timeout)
	}

	poll := func(reached func() bool) bool {
		for {
			if reached() {
				return true
			}
			if !infinite && time.Now().After(deadline) {
				return false
			}
			time.Sleep(5 * time.Millisecond)
		}
	}

	if !poll(s.handshakeStarted.Load) {
		return false
	}
	if !waitFullHandshake {
		return true
	}
	return poll(s.IsConnected)
}

// BundleBegin acquires the bundling cursor and starts a new bundle.
// Setters must only be called against s.Bundler() between BundleBegin
// and BundleEnd; bundling sequences must not interleave across
// goroutines (SPEC_FULL.md §5).
func (s *Session) BundleBegin(ctx context.Context) error {
	if err := s.bundleMu.Lock(ctx); err != nil {
		return errors.Wrap(err, "session: acquire bundle")
	}
	s.bundler.Begin()
	return nil
}

// BundleEnd stamps and sends the accumulated bundle, then releases the
// bundling cursor. A standalone setter call is just BundleBegin, one
// setter, BundleEnd.
func (s *Session) BundleEnd() error {
	defer s.bundleMu.Unlock()

	payload, err := s.bundler.End()
	if err != nil {
		return errors.Wrap(err, "session: end bundle")
	}

	buf := wire.WrapBuffer(payload)
	header := wire.DecodeHeader(buf)
	header.SessionID = uint16(s.sessionID.Load())
	header.PacketID = s.localID.Next()
	header.Encode(buf)

	if s.conn == nil {
		return ErrNotConnected
	}
	return s.conn.Send(payload)
}
