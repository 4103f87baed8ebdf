package wire

import "testing"

func TestBufferIntegerRoundTrip(t *testing.T) {
	buf := NewBuffer(32)

	buf.SetU8(0, 0xAB)
	if got := buf.U8(0); got != 0xAB {
		t.Fatalf("U8 = %#x, want %#x", got, 0xAB)
	}

	buf.SetS8(1, -5)
	if got := buf.S8(1); got != -5 {
		t.Fatalf("S8 = %d, want -5", got)
	}

	buf.SetU16(2, 0xBEEF)
	if got := buf.U16(2); got != 0xBEEF {
		t.Fatalf("U16 = %#x, want %#x", got, 0xBEEF)
	}

	buf.SetS16(4, -1234)
	if got := buf.S16(4); got != -1234 {
		t.Fatalf("S16 = %d, want -1234", got)
	}

	buf.SetU32(6, 0xDEADBEEF)
	if got := buf.U32(6); got != 0xDEADBEEF {
		t.Fatalf("U32 = %#x, want %#x", got, 0xDEADBEEF)
	}

	buf.SetS32(10, -123456)
	if got := buf.S32(10); got != -123456 {
		t.Fatalf("S32 = %d, want -123456", got)
	}

	buf.SetU64(14, 0x0102030405060708)
	if got := buf.U64(14); got != 0x0102030405060708 {
		t.Fatalf("U64 = %#x, want %#x", got, 0x0102030405060708)
	}
}

func TestBufferBigEndianLayout(t *testing.T) {
	buf := NewBuffer(4)
	buf.SetU16(0, 0x0102)
	if got, want := buf.Bytes()[:2], []byte{0x01, 0x02}; got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("SetU16 wrote %v, want big-endian %v", got, want)
	}
}

func TestBufferOutOfRangeAccessorsAreNoops(t *testing.T) {
	buf := NewBuffer(4)

	if got := buf.U32(2); got != 0 {
		t.Fatalf("U32 past end = %d, want 0", got)
	}

	// SetU32 past the end must not panic and must not corrupt the buffer.
	buf.SetU32(2, 0xFFFFFFFF)
	for i, v := range buf.Bytes() {
		if v != 0 {
			t.Fatalf("byte %d = %#x after an out-of-range write, want untouched 0", i, v)
		}
	}
}

func TestBufferFlag8(t *testing.T) {
	buf := NewBuffer(1)
	buf.SetFlag8(0, 2)
	buf.SetFlag8(0, 5)

	if !buf.Flag8(0, 2) || !buf.Flag8(0, 5) {
		t.Fatalf("Flag8 bits not set: %08b", buf.U8(0))
	}
	if buf.Flag8(0, 0) || buf.Flag8(0, 7) {
		t.Fatalf("Flag8 reported an unset bit as set: %08b", buf.U8(0))
	}
}

func TestBufferFixedPointScalars(t *testing.T) {
	buf := NewBuffer(8)

	buf.SetFloat16(0, 100, 1.5)
	if got := buf.Float16(0, 100); got != 1.5 {
		t.Fatalf("Float16 round trip = %v, want 1.5", got)
	}

	buf.SetSignedFloat16(2, 10, -3.2)
	if got := buf.SignedFloat16(2, 10); got != -3.2 {
		t.Fatalf("SignedFloat16 round trip = %v, want -3.2", got)
	}

	buf.SetFloat8(4, 10, 2.5)
	if got := buf.Float8(4, 10); got != 2.5 {
		t.Fatalf("Float8 round trip = %v, want 2.5", got)
	}
}

func TestBufferStringRoundTrip(t *testing.T) {
	buf := NewBuffer(16)

	buf.SetString(0, 8, "ME1")
	if got := buf.String(0, 8); got != "ME1" {
		t.Fatalf("String round trip = %q, want %q", got, "ME1")
	}

	// Padding beyond the written value must be zero, not leftover bytes.
	for i := 3; i < 8; i++ {
		if buf.U8(i) != 0 {
			t.Fatalf("byte %d = %#x, want zero padding", i, buf.U8(i))
		}
	}

	buf.SetString(8, 4, "muchtoolong")
	if got := buf.String(8, 4); got != "much" {
		t.Fatalf("truncated String round trip = %q, want %q", got, "much")
	}
}

func TestBufferReset(t *testing.T) {
	buf := NewBuffer(4)
	buf.SetU32(0, 0xFFFFFFFF)
	buf.Reset()
	if got := buf.U32(0); got != 0 {
		t.Fatalf("U32 after Reset = %#x, want 0", got)
	}
}

func TestWrapBufferSharesStorage(t *testing.T) {
	raw := make([]byte, 4)
	buf := WrapBuffer(raw)
	buf.SetU32(0, 0x01020304)

	if raw[0] != 0x01 || raw[3] != 0x04 {
		t.Fatalf("WrapBuffer copied instead of sharing storage: %v", raw)
	}
}
