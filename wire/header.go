package wire

import "github.com/go-atem/atemkit/protocol"

// Header is the decoded form of the 12-byte packet header. All fields are
// plain big-endian integers at fixed offsets, except Flags and Length,
// which share the first two bytes: the top 5 bits of byte 0 are the flag
// mask, and the low 3 bits of byte 0 together with byte 1 form the 11-bit
// total packet length.
type Header struct {
	Flags     protocol.HeaderFlags
	Length    uint16
	SessionID uint16
	AckID     uint16
	ResendID  uint16
	Reserved  uint16
	PacketID  uint16
}

// DecodeHeader reads a Header from the first 12 bytes of buf.
func DecodeHeader(buf *Buffer) Header {
	word0 := buf.U16(0)
	return Header{
		Flags:     protocol.HeaderFlags(word0 >> 11),
		Length:    word0 & 0x07FF,
		SessionID: buf.U16(2),
		AckID:     buf.U16(4),
		ResendID:  buf.U16(6),
		Reserved:  buf.U16(8),
		PacketID:  buf.U16(10),
	}
}

// Encode writes h into the first 12 bytes of buf.
func (h Header) Encode(buf *Buffer) {
	buf.SetU16(0, uint16(h.Flags)<<11|(h.Length&0x07FF))
	buf.SetU16(2, h.SessionID)
	buf.SetU16(4, h.AckID)
	buf.SetU16(6, h.ResendID)
	buf.SetU16(8, h.Reserved)
	buf.SetU16(10, h.PacketID)
}
