package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagDSKBase, decodeDSKBase)
	register(protocol.TagDSKProps, decodeDSKProps)
	register(protocol.TagDSKState, decodeDSKState)
	register(protocol.TagFadeToBlackProps, decodeFadeToBlackProps)
	register(protocol.TagFadeToBlackState, decodeFadeToBlackState)
	register(protocol.TagColorGenerator, decodeColorGenerator)
	register(protocol.TagAuxSource, decodeAuxSource)
}

func dsk(st *state.State, idx uint8) *state.DSKState {
	if int(idx) >= len(st.DSK) {
		return nil
	}
	return &st.DSK[idx]
}

func decodeDSKBase(st *state.State, buf *wire.Buffer) error {
	d := dsk(st, buf.U8(0))
	if d == nil {
		return nil
	}
	d.FillSource = enumSource(buf, 2)
	d.KeySource = enumSource(buf, 4)
	return nil
}

// decodeDSKProps mirrors DskP, including its aliasing quirk: offset 4 is
// read both as an unsigned clip percentage and, separately, reinterpreted
// as a signed word for the left-edge MapValue projection. Both reads are
// kept, matching the original firmware's own overlap rather than
// resolving it, per SPEC_FULL.md's Design Notes.
func decodeDSKProps(st *state.State, buf *wire.Buffer) error {
	d := dsk(st, buf.U8(0))
	if d == nil {
		return nil
	}
	d.Tie = buf.Flag8(1, 0)
	d.Rate = buf.U8(2)
	d.PreMultiplied = buf.Flag8(3, 0)
	d.Clip = buf.Float16(4, 10)
	d.Gain = buf.Float16(6, 10)
	d.InvertKey = buf.Flag8(8, 0)
	d.Masked = buf.Flag8(9, 0)
	d.Top = buf.SignedFloat16(10, 1000)
	d.Bottom = buf.SignedFloat16(12, 1000)
	d.Left = protocol.MapValue(float64(buf.S16(4)), -16000, 16000, -9.0, 9.0)
	d.Right = protocol.MapValue(float64(buf.S16(16)), -16000, 16000, -9.0, 9.0)
	return nil
}

func decodeDSKState(st *state.State, buf *wire.Buffer) error {
	d := dsk(st, buf.U8(0))
	if d == nil {
		return nil
	}
	d.OnAir = buf.Flag8(1, 0)
	d.InTransition = buf.Flag8(2, 0)
	d.IsAutoTransitioning = buf.Flag8(3, 0)
	d.FramesRemaining = buf.U8(4)
	return nil
}

func decodeFadeToBlackProps(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.FadeToBlack) {
		return nil
	}
	st.FadeToBlack[idx].Rate = buf.U8(1)
	return nil
}

func decodeFadeToBlackState(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.FadeToBlack) {
		return nil
	}
	f := &st.FadeToBlack[idx]
	f.FullyBlack = buf.Flag8(1, 0)
	f.InTransition = buf.Flag8(2, 0)
	f.FramesRemaining = buf.U8(3)
	return nil
}

func decodeColorGenerator(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.ColorGenerator) {
		return nil
	}
	c := &st.ColorGenerator[idx]
	c.Hue = buf.Float16(2, 10)
	c.Saturation = buf.Float16(4, 10)
	c.Luma = buf.Float16(6, 10)
	return nil
}

func decodeAuxSource(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.AuxSource) {
		return nil
	}
	st.AuxSource[idx] = enumSource(buf, 2)
	return nil
}
