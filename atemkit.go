// Package atemkit contains a set of modular packages implementing a client
// for the UDP control protocol used by ATEM-family broadcast video
// switchers.
//
// Protocol
//
// Package protocol holds the static tables: command tags, enumerations,
// header flags, buffer sizes and timeouts, and the fixed-point scalar
// conversions used throughout the codec.
//
// Wire
//
// Package wire implements the 12-byte packet header codec and the typed
// buffer accessor, including the relocatable view used while encoding
// command payloads.
//
// Transport
//
// Package transport is the non-blocking UDP datagram endpoint.
//
// State
//
// Package state is the typed mirror of switcher state. It is mutated only
// by the decoders in package command, and is safe to read concurrently
// with those mutations applying.
//
// Command
//
// Package command holds the inbound decoders and outbound encoders, one
// per protocol tag, plus the bundling facility used to pack several
// setters into one datagram.
//
// Session
//
// Package session drives the connection state machine on top of
// transport, command and state, handling handshake, initial-payload
// tracking, ACK/resend policy and reconnection.
//
// Event
//
// Package event fans connect/disconnect/receive/warning notifications out
// to subscribers on a dedicated goroutine, decoupled from the session's
// I/O loop.
package atemkit

import (
	// Packages that most callers should use directly.
	_ "github.com/go-atem/atemkit/session"
	_ "github.com/go-atem/atemkit/state"

	// Low level packages.
	_ "github.com/go-atem/atemkit/command"
	_ "github.com/go-atem/atemkit/protocol"
	_ "github.com/go-atem/atemkit/transport"
	_ "github.com/go-atem/atemkit/wire"
)
