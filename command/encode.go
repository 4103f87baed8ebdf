package command

import (
	"github.com/pkg/errors"

	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/wire"
)

// ErrBundleOverflow is returned by a setter when the output buffer has no
// room left for the sub-packet it needs to write.
var ErrBundleOverflow = errors.New("command: bundle output buffer overflow")

// ErrNoOpenBundle is returned by bundle-scoped calls made outside a
// Begin/End pair.
var ErrNoOpenBundle = errors.New("command: no open bundle")

// index identifies the (tag, index-tuple) a setter wrote to. Two
// back-to-back setters with an equal index coalesce into one sub-packet
// instead of each claiming their own, per the bundling rule: a repeated
// setter call on the same indices only needs to OR its field bit into the
// existing sub-packet and overwrite its own payload slots.
type index struct {
	tag  protocol.Tag
	keys [4]uint16
}

// Bundler accumulates setter sub-packets into a single output Buffer and
// flushes them as one packet. A caller not explicitly bundling still goes
// through a Bundler — Begin/End around exactly one setter — so the single
// send path is shared by both cases.
//
// Bundler is not safe for concurrent use; the session engine serializes
// access to one Bundler per connection with a CtxMutex (see
// internal/moreatomic.CtxMutex), matching the caller-thread model in
// SPEC_FULL.md §5 where setters compose and send without blocking the I/O
// loop.
type Bundler struct {
	buf    *wire.Buffer
	open   bool
	offset int // byte offset, within the payload region, of the next free sub-packet slot
	last   index
	lastAt int // byte offset of the most recently written sub-packet's header
	lastLen int
}

// NewBundler allocates a Bundler with room for one full output packet.
func NewBundler() *Bundler {
	return &Bundler{buf: wire.NewBuffer(protocol.OutputBufferSize)}
}

// Begin starts a new bundle, discarding anything left over from a prior
// one that was never flushed.
func (b *Bundler) Begin() {
	b.buf.Reset()
	b.open = true
	b.offset = protocol.HeaderLen
	b.last = index{}
	b.lastAt = 0
	b.lastLen = 0
}

// End stamps the accumulated sub-packets with a packet header carrying
// ackRequest and the bundle's total length, and returns the bytes ready to
// send. It is the caller's responsibility to actually send them and to
// install the session's id/ack fields into the returned header region
// before doing so — End only reserves the space and marks the flag.
func (b *Bundler) End() ([]byte, error) {
	if !b.open {
		return nil, ErrNoOpenBundle
	}
	total := b.offset
	header := wire.Header{
		Flags:  protocol.FlagAckRequest,
		Length: uint16(total),
	}
	header.Encode(b.buf)
	b.open = false
	return b.buf.Bytes()[:total], nil
}

// Len reports how many bytes of the output buffer are in use, including
// the not-yet-stamped packet header.
func (b *Bundler) Len() int { return b.offset }

// sub returns a View over the payload region of the sub-packet for
// (tag, keys), reusing the immediately-prior sub-packet if it was written
// for the same tag and indices, or appending a new one otherwise. length
// is the sub-packet's payload length before 4-byte rounding; a freshly
// appended sub-packet is zeroed so unset fields read as zero.
func (b *Bundler) sub(tag protocol.Tag, keys [4]uint16, length int) (wire.View, error) {
	return b.subMerge(tag, keys, length, true)
}

// subFresh is like sub but never coalesces into a prior sub-packet, even
// one with an identical tag and keys. CCmd is the only outbound tag that
// needs this: the switcher keys camera control writes by their
// domain/feature bytes at the moment each packet is parsed, not by an
// index the bundler can merge ahead of time, so two same-feature writes
// in one bundle must still occupy two sub-packets.
func (b *Bundler) subFresh(tag protocol.Tag, keys [4]uint16, length int) (wire.View, error) {
	return b.subMerge(tag, keys, length, false)
}

func (b *Bundler) subMerge(tag protocol.Tag, keys [4]uint16, length int, allowMerge bool) (wire.View, error) {
	if !b.open {
		return wire.View{}, ErrNoOpenBundle
	}

	want := index{tag: tag, keys: keys}
	if allowMerge && b.last == want && b.lastAt != 0 {
		return wire.NewView(b.buf, b.lastAt+protocol.CmdHeaderLen), nil
	}

	padded := (length + 3) &^ 3
	total := protocol.CmdHeaderLen + padded
	if b.offset+total > b.buf.Len() {
		return wire.View{}, errors.Wrapf(ErrBundleOverflow, "tag=%s need=%d have=%d", tag, total, b.buf.Len()-b.offset)
	}

	at := b.offset
	b.buf.SetU16(at, uint16(total))
	b.buf.SetU16(at+2, 0)
	b.buf.SetString(at+protocol.CmdTagOffset, protocol.CmdTagLen, string(tag))

	b.offset += total
	b.last = want
	b.lastAt = at
	b.lastLen = total

	return wire.NewView(b.buf, at+protocol.CmdHeaderLen), nil
}

// boolByte encodes a bool as the single byte the wire format uses for it.
func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func oneKey(a uint16) [4]uint16             { return [4]uint16{a} }
func twoKeys(a, b uint16) [4]uint16         { return [4]uint16{a, b} }
func threeKeys(a, b, c uint16) [4]uint16    { return [4]uint16{a, b, c} }
func fourKeys(a, b, c, d uint16) [4]uint16  { return [4]uint16{a, b, c, d} }
