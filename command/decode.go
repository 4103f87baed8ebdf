// Package command implements the inbound decoders and outbound encoders
// for every wire tag (components F and G): one function per tag, keyed
// into a dispatch table built at init time from static function values,
// the same "no reflection" shape SPEC_FULL.md's Design Notes ask for in
// place of the teacher's reflect.Type-keyed handler package.
package command

import (
	"github.com/pkg/errors"

	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

// Decoder applies one inbound command's payload to the state mirror. buf
// is a Buffer windowing exactly the sub-packet's payload bytes (the
// 8-byte sub-packet header has already been consumed).
type Decoder func(st *state.State, buf *wire.Buffer) error

var decoders = map[protocol.Tag]Decoder{}

func register(tag protocol.Tag, fn Decoder) {
	if _, exists := decoders[tag]; exists {
		panic("command: duplicate decoder registered for " + string(tag))
	}
	decoders[tag] = fn
}

// ErrUnknownTag is wrapped into the error Decode returns when asked to
// dispatch a tag with no registered decoder; session is expected to treat
// it as informational (log + continue), not as a fatal condition, since
// unknown tags are an expected consequence of talking to newer firmware.
var ErrUnknownTag = errors.New("command: no decoder registered for tag")

// Decode applies tag's payload to st. It reports whether tag was
// recognized; an unrecognized tag is not itself an error condition for
// the caller, but Decode still returns a wrapped ErrUnknownTag so a
// caller that wants to log it can do so uniformly with real decode
// failures.
func Decode(st *state.State, tag protocol.Tag, payload *wire.Buffer) (bool, error) {
	fn, ok := decoders[tag]
	if !ok {
		return false, errors.Wrapf(ErrUnknownTag, "%s", tag)
	}
	if err := fn(st, payload); err != nil {
		return true, errors.Wrapf(err, "decoding %s", tag)
	}
	return true, nil
}

func enumSource(buf *wire.Buffer, offset int) state.VideoSourceKey {
	return state.VideoSourceKey(buf.U16(offset))
}
