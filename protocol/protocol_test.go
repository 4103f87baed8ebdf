package protocol

import (
	"math"
	"testing"
)

func TestHeaderFlagsHasAndAny(t *testing.T) {
	f := FlagAckRequest | FlagHello

	if !f.Has(FlagAckRequest) {
		t.Fatalf("Has(FlagAckRequest) = false, want true")
	}
	if f.Has(FlagAckRequest | FlagResend) {
		t.Fatalf("Has(ackRequest|resend) = true, want false")
	}
	if !f.Any(FlagResend | FlagHello) {
		t.Fatalf("Any(resend|hello) = false, want true")
	}
	if f.Any(FlagResend | FlagRequestNextAfter) {
		t.Fatalf("Any(resend|requestNextAfter) = true, want false")
	}
}

func TestHeaderFlagsString(t *testing.T) {
	if got := HeaderFlags(0).String(); got != "none" {
		t.Fatalf("String() for zero flags = %q, want %q", got, "none")
	}

	got := (FlagAckRequest | FlagAck).String()
	if got != "ackRequest|ack" {
		t.Fatalf("String() = %q, want %q", got, "ackRequest|ack")
	}
}

func TestNameLooksUpKnownOutboundTags(t *testing.T) {
	name, ok := Name(OutCut)
	if !ok || name != "cut" {
		t.Fatalf("Name(OutCut) = (%q, %v), want (\"cut\", true)", name, ok)
	}

	if _, ok := Name(Tag("ZZZZ")); ok {
		t.Fatalf("Name(unknown tag) reported found")
	}
}

func TestMapValueRoundTrip(t *testing.T) {
	mapped := MapValue(0.5, 0, 1, 0, 1000)
	if mapped != 500 {
		t.Fatalf("MapValue(0.5, 0,1, 0,1000) = %v, want 500", mapped)
	}

	back := MapValue(mapped, 0, 1000, 0, 1)
	if math.Abs(back-0.5) > 1e-9 {
		t.Fatalf("MapValue inverse = %v, want 0.5", back)
	}
}

func TestBoolBit(t *testing.T) {
	var v uint32 = 1<<2 | 1<<5
	if !BoolBit(v, 2) || !BoolBit(v, 5) {
		t.Fatalf("BoolBit missed a set bit in %032b", v)
	}
	if BoolBit(v, 0) || BoolBit(v, 31) {
		t.Fatalf("BoolBit reported an unset bit as set in %032b", v)
	}
}

func TestAudioWordToDBFloor(t *testing.T) {
	if got := AudioWordToDB(0); got != -60.0 {
		t.Fatalf("AudioWordToDB(0) = %v, want -60", got)
	}
	if got := AudioWordToDB(32); got != -60.0 {
		t.Fatalf("AudioWordToDB(32) = %v, want -60", got)
	}
}

func TestAudioDBToWordRoundTrip(t *testing.T) {
	word := AudioDBToWord(0) // unity gain
	if word != 32768 {
		t.Fatalf("AudioDBToWord(0) = %d, want 32768", word)
	}

	db := AudioWordToDB(word)
	if math.Abs(db-0) > 1e-9 {
		t.Fatalf("AudioWordToDB(AudioDBToWord(0)) = %v, want 0", db)
	}
}

func TestAudioDBToWordClampsToUint16Range(t *testing.T) {
	if got := AudioDBToWord(-1000); got != 0 {
		t.Fatalf("AudioDBToWord(-1000) = %d, want 0", got)
	}
	if got := AudioDBToWord(1000); got != 65535 {
		t.Fatalf("AudioDBToWord(1000) = %d, want 65535", got)
	}
}
