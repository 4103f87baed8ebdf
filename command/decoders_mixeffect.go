package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagProgramInput, decodeProgramInput)
	register(protocol.TagPreviewInput, decodePreviewInput)
	register(protocol.TagTransitionStyle, decodeTransitionStyle)
	register(protocol.TagTransitionPrev, decodeTransitionPreview)
	register(protocol.TagTransitionPos, decodeTransitionPosition)
	register(protocol.TagTransitionMix, decodeTransitionMix)
	register(protocol.TagTransitionDip, decodeTransitionDip)
	register(protocol.TagTransitionWipe, decodeTransitionWipe)
	register(protocol.TagTransitionDVE, decodeTransitionDVE)
	register(protocol.TagTransitionSting, decodeTransitionSting)
	register(protocol.TagKeyerOnAir, decodeKeyerOnAir)
	register(protocol.TagKeyerBase, decodeKeyerBase)
	register(protocol.TagKeyerLuma, decodeKeyerLuma)
	register(protocol.TagKeyerChroma, decodeKeyerChroma)
	register(protocol.TagKeyerPattern, decodeKeyerPattern)
	register(protocol.TagKeyerDVE, decodeKeyerDVE)
	register(protocol.TagKeyerFly, decodeKeyerFly)
	register(protocol.TagKeyerFlyKeyframe, decodeKeyerFlyKeyframe)
}

func mixEffect(st *state.State, idx uint8) *state.MixEffectState {
	if int(idx) >= len(st.MixEffect) {
		return nil
	}
	return &st.MixEffect[idx]
}

func keyer(me *state.MixEffectState, idx uint8) *state.KeyerState {
	if me == nil || int(idx) >= len(me.Keyer) {
		return nil
	}
	return &me.Keyer[idx]
}

func decodeProgramInput(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	me.ProgramInput = enumSource(buf, 2)
	return nil
}

func decodePreviewInput(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	me.PreviewInput = enumSource(buf, 2)
	return nil
}

func decodeInclusion(buf *wire.Buffer, offset int) state.TransitionInclusion {
	var inc state.TransitionInclusion
	inc.Background = buf.Flag8(offset, 0)
	for i := range inc.Keyer {
		inc.Keyer[i] = buf.Flag8(offset, uint(i+1))
	}
	return inc
}

func decodeTransitionStyle(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	sel := &me.Transition.Selection
	sel.Style = protocol.TransitionStyle(buf.U8(1))
	sel.Next = decodeInclusion(buf, 2)
	sel.NextStyle = protocol.TransitionStyle(buf.U8(3))
	sel.AfterNext = decodeInclusion(buf, 4)
	return nil
}

func decodeTransitionPreview(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	me.Transition.Preview.Enabled = buf.Flag8(1, 0)
	return nil
}

func decodeTransitionPosition(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	pos := &me.Transition.Position
	pos.InTransition = buf.Flag8(1, 0)
	pos.FramesRemaining = buf.U8(2)
	pos.Position = buf.U16(4)
	return nil
}

func decodeTransitionMix(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	me.Transition.Mix.Rate = buf.U8(1)
	return nil
}

func decodeTransitionDip(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	me.Transition.Dip.Rate = buf.U8(1)
	me.Transition.Dip.Source = enumSource(buf, 2)
	return nil
}

func decodeTransitionWipe(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	w := &me.Transition.Wipe
	w.Rate = buf.U8(1)
	w.Pattern = protocol.PatternStyle(buf.U8(2))
	w.Width = buf.Float16(4, 100)
	w.Source = enumSource(buf, 6)
	w.Symmetry = buf.Float16(8, 100)
	w.Softness = buf.Float16(10, 100)
	w.Position.X = buf.Float16(12, 10000)
	w.Position.Y = buf.Float16(14, 10000)
	w.ReverseDirection = buf.Flag8(16, 0)
	w.FlipFlop = buf.Flag8(17, 0)
	return nil
}

func decodeTransitionDVE(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	d := &me.Transition.DVE
	d.Rate = buf.U8(1)
	d.Style = protocol.DVETransitionStyle(buf.U8(3))
	d.FillSource = enumSource(buf, 4)
	d.KeySource = enumSource(buf, 6)
	d.EnableKey = buf.Flag8(8, 0)
	d.PreMultiplied = buf.Flag8(9, 0)
	d.Clip = buf.Float16(10, 10)
	d.Gain = buf.Float16(12, 10)
	d.InvertKey = buf.Flag8(14, 0)
	d.ReverseDirection = buf.Flag8(15, 0)
	d.FlipFlop = buf.Flag8(16, 0)
	return nil
}

func decodeTransitionSting(st *state.State, buf *wire.Buffer) error {
	me := mixEffect(st, buf.U8(0))
	if me == nil {
		return nil
	}
	s := &me.Transition.Stinger
	s.Source = protocol.MediaPlayerSourceType(buf.U8(1))
	s.PreMultiplied = buf.Flag8(2, 0)
	s.Clip = buf.Float16(4, 10)
	s.Gain = buf.Float16(6, 10)
	s.InvertKey = buf.Flag8(8, 0)
	s.PreRoll = buf.U16(10)
	s.ClipDuration = buf.U16(12)
	s.TriggerPoint = buf.U16(14)
	s.MixRate = buf.U16(16)
	return nil
}

func decodeKeyerOnAir(st *state.State, buf *wire.Buffer) error {
	k := keyer(mixEffect(st, buf.U8(0)), buf.U8(1))
	if k == nil {
		return nil
	}
	k.OnAir = buf.Flag8(2, 0)
	return nil
}

func decodeKeyerBase(st *state.State, buf *wire.Buffer) error {
	k := keyer(mixEffect(st, buf.U8(0)), buf.U8(1))
	if k == nil {
		return nil
	}
	b := &k.Base
	b.Type = protocol.KeyerType(buf.U8(2))
	b.FlyEnabled = buf.Flag8(5, 0)
	b.FillSource = enumSource(buf, 6)
	b.KeySource = enumSource(buf, 8)
	b.Masked = buf.Flag8(10, 0)
	b.Top = buf.SignedFloat16(12, 1000)
	b.Bottom = buf.SignedFloat16(14, 1000)
	b.Left = protocol.MapValue(float64(buf.S16(16)), -16000, 16000, -9.0, 9.0)
	b.Right = protocol.MapValue(float64(buf.S16(18)), -16000, 16000, -9.0, 9.0)
	return nil
}

func decodeKeyerLuma(st *state.State, buf *wire.Buffer) error {
	k := keyer(mixEffect(st, buf.U8(0)), buf.U8(1))
	if k == nil {
		return nil
	}
	l := &k.Luma
	l.PreMultiplied = buf.Flag8(2, 0)
	l.Clip = buf.Float16(4, 10)
	l.Gain = buf.Float16(6, 10)
	l.InvertKey = buf.Flag8(8, 0)
	return nil
}

func decodeKeyerChroma(st *state.State, buf *wire.Buffer) error {
	k := keyer(mixEffect(st, buf.U8(0)), buf.U8(1))
	if k == nil {
		return nil
	}
	c := &k.Chroma
	c.Hue = buf.Float16(2, 10)
	c.Gain = buf.Float16(4, 10)
	c.YSuppress = buf.Float16(6, 10)
	c.Lift = buf.Float16(8, 10)
	c.Narrow = buf.Flag8(10, 0)
	return nil
}

func decodeKeyerPattern(st *state.State, buf *wire.Buffer) error {
	k := keyer(mixEffect(st, buf.U8(0)), buf.U8(1))
	if k == nil {
		return nil
	}
	p := &k.Pattern
	p.Style = protocol.PatternStyle(buf.U8(2))
	p.Size = buf.Float16(4, 100)
	p.Symmetry = buf.Float16(6, 100)
	p.Softness = buf.Float16(8, 100)
	p.Position.X = buf.Float16(10, 10000)
	p.Position.Y = buf.Float16(12, 10000)
	p.InvertPattern = buf.Flag8(14, 0)
	return nil
}

func decodeKeyerDVE(st *state.State, buf *wire.Buffer) error {
	k := keyer(mixEffect(st, buf.U8(0)), buf.U8(1))
	if k == nil {
		return nil
	}
	d := &k.DVE
	d.Size.X = buf.Float32(4, 1000)
	d.Size.Y = buf.Float32(8, 1000)
	d.Position.X = buf.SignedFloat32(12, 1000)
	d.Position.Y = buf.SignedFloat32(16, 1000)
	d.Rotation = buf.Float32(20, 10)
	d.BorderEnabled = buf.Flag8(24, 0)
	d.ShadowEnabled = buf.Flag8(25, 0)
	d.BorderBevel = protocol.BorderBevel(buf.U8(26))
	d.Border.Outer = buf.Float16(28, 100)
	d.Border.Inner = buf.Float16(30, 100)
	d.BorderSoft.Outer = float64(buf.U8(32))
	d.BorderSoft.Inner = float64(buf.U8(33))
	d.BorderSoft.Bevel = buf.Float8(34, 100)
	d.BorderOpacity = buf.U8(36)
	d.BorderHue = buf.Float16(38, 10)
	d.BorderSaturation = buf.Float16(40, 10)
	d.BorderLuma = buf.Float16(42, 10)
	d.LightSource.Direction = buf.Float16(44, 10)
	d.LightSource.Altitude = buf.U8(46)
	d.Masked = buf.Flag8(47, 0)
	d.Top = buf.SignedFloat16(48, 1000)
	d.Bottom = buf.SignedFloat16(50, 1000)
	d.Left = protocol.MapValue(float64(buf.S16(52)), -16000, 16000, -9.0, 9.0)
	d.Right = protocol.MapValue(float64(buf.S16(54)), -16000, 16000, -9.0, 9.0)
	d.Rate = buf.U8(56)
	return nil
}

func decodeKeyerFly(st *state.State, buf *wire.Buffer) error {
	k := keyer(mixEffect(st, buf.U8(0)), buf.U8(1))
	if k == nil {
		return nil
	}
	s := &k.Fly.Status
	s.IsASet = buf.Flag8(2, 0)
	s.IsBSet = buf.Flag8(3, 0)
	s.AtKeyFrameA = buf.Flag8(6, 0)
	s.AtKeyFrameB = buf.Flag8(6, 1)
	s.AtKeyFrameFull = buf.Flag8(6, 2)
	s.AtKeyFrameRunToInfinite = buf.Flag8(6, 3)
	s.RunToInfiniteIndex = buf.U8(7)
	return nil
}

func decodeKeyerFlyKeyframe(st *state.State, buf *wire.Buffer) error {
	k := keyer(mixEffect(st, buf.U8(0)), buf.U8(1))
	if k == nil {
		return nil
	}
	kf := buf.U8(2)
	if int(kf) >= len(k.Fly.KeyFrames) {
		return nil
	}
	f := &k.Fly.KeyFrames[kf]
	f.Size.X = buf.Float32(4, 1000)
	f.Size.Y = buf.Float32(8, 1000)
	f.Position.X = buf.SignedFloat32(12, 1000)
	f.Position.Y = buf.SignedFloat32(16, 1000)
	f.Rotation = buf.Float32(20, 10)
	f.Border.Outer = buf.Float16(24, 100)
	f.Border.Inner = buf.Float16(26, 100)
	f.BorderSoft.Outer = float64(buf.U8(28))
	f.BorderSoft.Inner = float64(buf.U8(29))
	f.BorderSoft.Bevel = buf.Float8(30, 100)
	f.BorderOpacity = buf.U8(32)
	f.BorderHue = buf.Float16(34, 10)
	f.BorderSaturation = buf.Float16(36, 10)
	f.BorderLuma = buf.Float16(38, 10)
	f.LightSource.Direction = buf.Float16(40, 10)
	f.LightSource.Altitude = buf.U8(42)
	f.Top = buf.SignedFloat16(44, 1000)
	f.Bottom = buf.SignedFloat16(46, 1000)
	f.Left = protocol.MapValue(float64(buf.S16(48)), -16000, 16000, -9.0, 9.0)
	f.Right = protocol.MapValue(float64(buf.S16(50)), -16000, 16000, -9.0, 9.0)
	return nil
}
