// Package protocol holds the static, closed-world tables that describe the
// ATEM wire protocol: buffer sizes and timeouts, header flags, command
// tags, value enumerations, and the fixed-point scalar conversions shared
// by the decoders and encoders in package command.
package protocol

import "time"

// Wire-level sizes and timing, fixed by the protocol.
const (
	// UDPPort is the well-known port switchers listen on.
	UDPPort = 9910

	// DefaultConnectionTimeout is how long the session engine waits for
	// contact before declaring the session dead and reconnecting.
	DefaultConnectionTimeout = 1 * time.Second

	// DefaultHandshakeTimeout bounds how long ping mode waits for a hello
	// reply before giving up.
	DefaultHandshakeTimeout = 100 * time.Millisecond

	// InputBufferSize is the capacity of the receive-side byte buffer.
	InputBufferSize = 10240

	// OutputBufferSize is the capacity of the send-side byte buffer; it
	// bounds how much a bundle can accumulate before bundle_end must flush.
	OutputBufferSize = 250

	// MaxInitPacketCount bounds the tracked window of the initial-payload
	// bitmap.
	MaxInitPacketCount = 500

	// HeaderLen is the size in bytes of the packet header.
	HeaderLen = 12

	// CmdHeaderLen is the size in bytes of a command sub-packet header
	// (2-byte length + 2 bytes reserved + 4-byte tag).
	CmdHeaderLen = 8

	// CmdTagLen is the width in bytes of a command tag.
	CmdTagLen = 4

	// CmdTagOffset is the byte offset of the tag within a command
	// sub-packet header.
	CmdTagOffset = 4
)

// Distinguished bytes identifying client capability in the hello packet,
// written at fixed byte offsets within the 20-byte hello packet (12-byte
// header plus 8 more bytes).
const (
	HelloCapabilityOffset = 9
	HelloCapabilityByte   = 0x3A
	HelloVersionOffset    = 12
	HelloVersionByte      = 0x01
)

// HelloBookedStatus is the value the switcher echoes at logical offset 0 of
// its hello reply when it has no free client session slots left.
const HelloBookedStatus = 3

// HelloAckReservedByte is written to the low byte of the header's Reserved
// field (logical offset 9) on the ack that completes the hello handshake.
const HelloAckReservedByte = 0x03
