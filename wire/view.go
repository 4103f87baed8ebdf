package wire

// View is a relocatable window onto a Buffer: every accessor call adds
// Base to the caller's logical offset before touching the underlying
// Buffer. Encoders are written against a View with logical, zero-based
// payload offsets; the command package's Bundler hands each setter a
// View whose Base is that sub-packet's payload start (packet header +
// earlier sub-packets + command header length).
//
// This replaces the original source's mutable "offset callback" closure
// installed on the buffer itself (see Design Notes in SPEC_FULL.md §4) with
// a small value type, so a View can be handed to an encoder without any
// shared mutable state between unrelated encodes.
type View struct {
	buf  *Buffer
	Base int
}

// NewView returns a View over buf with the given base offset.
func NewView(buf *Buffer, base int) View {
	return View{buf: buf, Base: base}
}

// Identity returns a View over buf with a zero base, i.e. logical offsets
// equal raw buffer offsets.
func Identity(buf *Buffer) View { return View{buf: buf} }

func (v View) U8(offset int) uint8             { return v.buf.U8(v.Base + offset) }
func (v View) SetU8(offset int, x uint8)        { v.buf.SetU8(v.Base+offset, x) }
func (v View) S8(offset int) int8               { return v.buf.S8(v.Base + offset) }
func (v View) SetS8(offset int, x int8)         { v.buf.SetS8(v.Base+offset, x) }
func (v View) U16(offset int) uint16            { return v.buf.U16(v.Base + offset) }
func (v View) SetU16(offset int, x uint16)      { v.buf.SetU16(v.Base+offset, x) }
func (v View) S16(offset int) int16             { return v.buf.S16(v.Base + offset) }
func (v View) SetS16(offset int, x int16)       { v.buf.SetS16(v.Base+offset, x) }
func (v View) U32(offset int) uint32            { return v.buf.U32(v.Base + offset) }
func (v View) SetU32(offset int, x uint32)      { v.buf.SetU32(v.Base+offset, x) }
func (v View) S32(offset int) int32             { return v.buf.S32(v.Base + offset) }
func (v View) SetS32(offset int, x int32)       { v.buf.SetS32(v.Base+offset, x) }
func (v View) U64(offset int) uint64            { return v.buf.U64(v.Base + offset) }
func (v View) SetU64(offset int, x uint64)      { v.buf.SetU64(v.Base+offset, x) }

func (v View) Flag8(offset int, bit uint) bool    { return v.buf.Flag8(v.Base+offset, bit) }
func (v View) SetFlag8(offset int, bit uint)       { v.buf.SetFlag8(v.Base+offset, bit) }

func (v View) Float16(offset int, factor float64) float64 {
	return v.buf.Float16(v.Base+offset, factor)
}
func (v View) SetFloat16(offset int, factor, value float64) {
	v.buf.SetFloat16(v.Base+offset, factor, value)
}
func (v View) SignedFloat16(offset int, factor float64) float64 {
	return v.buf.SignedFloat16(v.Base+offset, factor)
}
func (v View) SetSignedFloat16(offset int, factor, value float64) {
	v.buf.SetSignedFloat16(v.Base+offset, factor, value)
}
func (v View) Float8(offset int, factor float64) float64 {
	return v.buf.Float8(v.Base+offset, factor)
}
func (v View) SetFloat8(offset int, factor, value float64) {
	v.buf.SetFloat8(v.Base+offset, factor, value)
}
func (v View) Float32(offset int, factor float64) float64 {
	return v.buf.Float32(v.Base+offset, factor)
}
func (v View) SetFloat32(offset int, factor, value float64) {
	v.buf.SetFloat32(v.Base+offset, factor, value)
}
func (v View) SignedFloat32(offset int, factor float64) float64 {
	return v.buf.SignedFloat32(v.Base+offset, factor)
}
func (v View) SetSignedFloat32(offset int, factor, value float64) {
	v.buf.SetSignedFloat32(v.Base+offset, factor, value)
}

func (v View) String(offset, width int) string { return v.buf.String(v.Base+offset, width) }
func (v View) SetString(offset, width int, value string) {
	v.buf.SetString(v.Base+offset, width, value)
}

// Buffer returns the underlying Buffer this view windows onto.
func (v View) Buffer() *Buffer { return v.buf }
