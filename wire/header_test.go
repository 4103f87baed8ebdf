package wire

import (
	"testing"

	"github.com/go-atem/atemkit/protocol"
)

func TestHeaderRoundTrip(t *testing.T) {
	want := Header{
		Flags:     protocol.FlagAckRequest | protocol.FlagResend,
		Length:    1234,
		SessionID: 0xBEEF,
		AckID:     7,
		ResendID:  8,
		Reserved:  0x0100,
		PacketID:  42,
	}

	buf := NewBuffer(protocol.HeaderLen)
	want.Encode(buf)
	got := DecodeHeader(buf)

	if got != want {
		t.Fatalf("header round trip = %+v, want %+v", got, want)
	}
}

func TestHeaderLengthIsElevenBits(t *testing.T) {
	h := Header{Flags: protocol.FlagHello, Length: 0x07FF}
	buf := NewBuffer(protocol.HeaderLen)
	h.Encode(buf)

	got := DecodeHeader(buf)
	if got.Length != 0x07FF {
		t.Fatalf("Length = %#x, want %#x", got.Length, 0x07FF)
	}
	if got.Flags != protocol.FlagHello {
		t.Fatalf("Flags = %s, want %s", got.Flags, protocol.FlagHello)
	}
}

func TestHeaderFlagsShareFirstWordWithLength(t *testing.T) {
	h := Header{Flags: protocol.FlagAck, Length: 12}
	buf := NewBuffer(protocol.HeaderLen)
	h.Encode(buf)

	word0 := buf.U16(0)
	if word0>>11 != uint16(protocol.FlagAck) {
		t.Fatalf("flags nibble = %#x, want %#x", word0>>11, protocol.FlagAck)
	}
	if word0&0x07FF != 12 {
		t.Fatalf("length bits = %d, want 12", word0&0x07FF)
	}
}
