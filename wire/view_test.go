package wire

import "testing"

func TestViewAppliesBaseOffset(t *testing.T) {
	buf := NewBuffer(16)
	v := NewView(buf, 8)

	v.SetU16(0, 0xBEEF)
	if got := buf.U16(8); got != 0xBEEF {
		t.Fatalf("raw buffer at base+0 = %#x, want %#x", got, 0xBEEF)
	}
	if got := v.U16(0); got != 0xBEEF {
		t.Fatalf("view read-back = %#x, want %#x", got, 0xBEEF)
	}

	v.SetU8(2, 0x7A)
	if got := buf.U8(10); got != 0x7A {
		t.Fatalf("raw buffer at base+2 = %#x, want %#x", got, 0x7A)
	}
}

func TestIdentityViewHasZeroBase(t *testing.T) {
	buf := NewBuffer(4)
	v := Identity(buf)

	v.SetU32(0, 0x01020304)
	if got := buf.U32(0); got != 0x01020304 {
		t.Fatalf("Identity view did not write to offset 0: %#x", got)
	}
	if v.Buffer() != buf {
		t.Fatalf("View.Buffer() did not return the wrapped buffer")
	}
}

func TestViewsOverSameBufferAreIndependent(t *testing.T) {
	buf := NewBuffer(16)
	a := NewView(buf, 0)
	b := NewView(buf, 8)

	a.SetString(0, 4, "abcd")
	b.SetString(0, 4, "wxyz")

	if got := a.String(0, 4); got != "abcd" {
		t.Fatalf("view a = %q, want %q", got, "abcd")
	}
	if got := b.String(0, 4); got != "wxyz" {
		t.Fatalf("view b = %q, want %q", got, "wxyz")
	}
}
