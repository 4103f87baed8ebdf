// Package transport implements the non-blocking UDP datagram endpoint
// (component A): a socket "connected" in kernel terms to one peer, with
// Send never blocking on read and Poll never blocking on write.
package transport

import (
	"net"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// Datagram is one received UDP payload.
type Datagram struct {
	Data []byte
}

// Endpoint is a non-blocking UDP datagram endpoint bound to an ephemeral
// local port and connected to one peer address. A background goroutine
// drains the kernel socket into an internal FIFO queue so that Poll never
// blocks; Close stops that goroutine and releases the socket.
type Endpoint struct {
	conn   *net.UDPConn
	queue  chan Datagram
	closed atomic.Bool
	sent   atomic.Uint64
	recv   atomic.Uint64

	closeOnce sync.Once
	done      chan struct{}
}

// queueDepth bounds how many undrained datagrams the read loop will
// buffer before it starts dropping the oldest one; this keeps a stalled
// I/O thread from growing memory without bound.
const queueDepth = 256

// Dial opens a UDP socket connected to addr (host:port form, e.g.
// "10.0.0.2:9910") and starts the background receive loop.
func Dial(addr string) (*Endpoint, error) {
	raddr, err := net.ResolveUDPAddr("udp4", addr)
	if err != nil {
		return nil, errors.Wrap(err, "resolve peer address")
	}

	conn, err := net.DialUDP("udp4", nil, raddr)
	if err != nil {
		return nil, errors.Wrap(err, "dial udp")
	}

	e := &Endpoint{
		conn:  conn,
		queue: make(chan Datagram, queueDepth),
		done:  make(chan struct{}),
	}

	go e.readLoop()

	return e, nil
}

func (e *Endpoint) readLoop() {
	buf := make([]byte, 65536)

	for {
		n, err := e.conn.Read(buf)
		if err != nil {
			if e.closed.Load() {
				return
			}
			// Fatal OS error: stop reading. The session engine notices via
			// Poll returning ok=false forever and treats it as a disconnect.
			close(e.done)
			return
		}

		e.recv.Inc()

		cp := make([]byte, n)
		copy(cp, buf[:n])

		select {
		case e.queue <- Datagram{Data: cp}:
		default:
			// Queue full: drop the oldest datagram to make room, matching
			// "buffers unread datagrams in FIFO order" without unbounded
			// growth under a sustained flood.
			select {
			case <-e.queue:
			default:
			}
			select {
			case e.queue <- Datagram{Data: cp}:
			default:
			}
		}
	}
}

// Send writes payload to the connected peer. It may briefly block on the
// kernel send buffer but never on incoming data.
func (e *Endpoint) Send(payload []byte) error {
	if e.closed.Load() {
		return errors.New("transport: endpoint closed")
	}
	_, err := e.conn.Write(payload)
	if err != nil {
		return errors.Wrap(err, "udp write")
	}
	e.sent.Inc()
	return nil
}

// Poll returns one queued datagram without blocking. ok is false when the
// queue is empty right now.
func (e *Endpoint) Poll() (dg Datagram, ok bool) {
	select {
	case dg = <-e.queue:
		return dg, true
	default:
		return Datagram{}, false
	}
}

// Dead reports whether the background read loop has stopped because of a
// fatal OS error (as opposed to Close being called).
func (e *Endpoint) Dead() bool {
	select {
	case <-e.done:
		return !e.closed.Load()
	default:
		return false
	}
}

// Flush discards any buffered, unread datagrams.
func (e *Endpoint) Flush() {
	for {
		select {
		case <-e.queue:
		default:
			return
		}
	}
}

// Close releases the socket. It is idempotent.
func (e *Endpoint) Close() error {
	var err error
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		err = e.conn.Close()
	})
	return err
}

// Stats returns the number of datagrams sent and received so far.
func (e *Endpoint) Stats() (sent, received uint64) {
	return e.sent.Load(), e.recv.Load()
}
