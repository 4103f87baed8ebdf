// Package event fans connect/disconnect/receive/warning notifications out
// to subscribers on a single dedicated goroutine (component I), decoupled
// from the session engine's I/O loop so a slow subscriber cannot stall
// acks.
//
// The original source dispatched to subscribers by reflecting over
// registered handler functions; SPEC_FULL.md's Design Notes call for a
// static, variant-tagged table instead (see the teacher's own
// internal/handler package for the reflection style being replaced). Event
// here is a closed, five-variant struct rather than an open type switch.
package event

import "github.com/go-atem/atemkit/protocol"

// Kind identifies which of the five observable events an Event carries.
type Kind int

const (
	ConnectAttempt Kind = iota
	Connect
	Disconnect
	Receive
	Warning
)

func (k Kind) String() string {
	switch k {
	case ConnectAttempt:
		return "connectAttempt"
	case Connect:
		return "connect"
	case Disconnect:
		return "disconnect"
	case Receive:
		return "receive"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Event is one notification posted to the fan-out queue. Only the fields
// relevant to Kind are populated.
type Event struct {
	Kind Kind

	// SessionID is the wire session id this event pertains to; it is zero
	// before the handshake completes.
	SessionID uint16

	// Tag and Name are set for Receive events.
	Tag  protocol.Tag
	Name string

	// Text is set for Warning events.
	Text string
}
