package command

import (
	"testing"

	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func TestBundlerCutEncodesExpectedSubPacket(t *testing.T) {
	b := NewBundler()
	b.Begin()

	if err := Cut(b, 1); err != nil {
		t.Fatalf("Cut: %v", err)
	}

	payload, err := b.End()
	if err != nil {
		t.Fatalf("End: %v", err)
	}

	buf := wire.WrapBuffer(payload)
	header := wire.DecodeHeader(buf)
	if !header.Flags.Has(protocol.FlagAckRequest) {
		t.Fatalf("bundled packet missing ackRequest flag: %s", header.Flags)
	}
	if int(header.Length) != len(payload) {
		t.Fatalf("header.Length = %d, want %d", header.Length, len(payload))
	}

	wantTotal := protocol.HeaderLen + protocol.CmdHeaderLen + 4 // 4-byte payload, already a multiple of 4
	if len(payload) != wantTotal {
		t.Fatalf("bundle length = %d, want %d", len(payload), wantTotal)
	}

	subLen := buf.U16(protocol.HeaderLen)
	if int(subLen) != protocol.CmdHeaderLen+4 {
		t.Fatalf("sub-packet length = %d, want %d", subLen, protocol.CmdHeaderLen+4)
	}

	tag := buf.String(protocol.HeaderLen+protocol.CmdTagOffset, protocol.CmdTagLen)
	if protocol.Tag(tag) != protocol.OutCut {
		t.Fatalf("sub-packet tag = %q, want %q", tag, protocol.OutCut)
	}

	mE := buf.U8(protocol.HeaderLen + protocol.CmdHeaderLen)
	if mE != 1 {
		t.Fatalf("encoded mix-effect index = %d, want 1", mE)
	}
}

func TestBundlerMergesRepeatedSetterOnSameKeys(t *testing.T) {
	b := NewBundler()
	b.Begin()

	if err := Cut(b, 2); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	lenAfterFirst := b.Len()

	if err := Cut(b, 2); err != nil {
		t.Fatalf("second Cut: %v", err)
	}
	if b.Len() != lenAfterFirst {
		t.Fatalf("Len() grew from %d to %d after a same-key repeat, want no growth", lenAfterFirst, b.Len())
	}
}

func TestBundlerDoesNotMergeDifferentKeys(t *testing.T) {
	b := NewBundler()
	b.Begin()

	if err := Cut(b, 0); err != nil {
		t.Fatalf("Cut(0): %v", err)
	}
	lenAfterFirst := b.Len()

	if err := Cut(b, 1); err != nil {
		t.Fatalf("Cut(1): %v", err)
	}
	if b.Len() == lenAfterFirst {
		t.Fatalf("Len() did not grow for a different mix-effect index")
	}
}

func TestBundlerEndWithoutBeginFails(t *testing.T) {
	b := NewBundler()
	if _, err := b.End(); err != ErrNoOpenBundle {
		t.Fatalf("End() without Begin = %v, want ErrNoOpenBundle", err)
	}
}

func TestBundlerSetterOutsideBundleFails(t *testing.T) {
	b := NewBundler()
	if err := Cut(b, 0); err != ErrNoOpenBundle {
		t.Fatalf("Cut() without Begin = %v, want ErrNoOpenBundle", err)
	}
}

func TestBundlerOverflow(t *testing.T) {
	b := NewBundler()
	b.Begin()

	var lastErr error
	for i := 0; i < 255; i++ {
		if lastErr = Auto(b, uint8(i)); lastErr != nil {
			break
		}
	}

	if lastErr == nil {
		t.Fatalf("expected the bundle to overflow before 255 distinct setters")
	}
}

func TestBundlerBeginDiscardsUnflushedBundle(t *testing.T) {
	b := NewBundler()
	b.Begin()
	if err := Cut(b, 5); err != nil {
		t.Fatalf("Cut: %v", err)
	}

	b.Begin() // discard without End
	if b.Len() != protocol.HeaderLen {
		t.Fatalf("Len() after re-Begin = %d, want %d (header only)", b.Len(), protocol.HeaderLen)
	}
}

func TestDecodeUnknownTagIsNotFatal(t *testing.T) {
	st := state.New()
	ok, err := Decode(st, protocol.Tag("ZZZZ"), wire.NewBuffer(4))
	if ok {
		t.Fatalf("Decode reported an unknown tag as recognized")
	}
	if err == nil {
		t.Fatalf("Decode returned no error for an unknown tag")
	}
}
