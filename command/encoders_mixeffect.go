package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

// SetProgramInput writes CPgI.
func SetProgramInput(b *Bundler, mE uint8, src state.VideoSourceKey) error {
	v, err := b.sub(protocol.OutProgramInput, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU16(2, uint16(src))
	return nil
}

// SetPreviewInput writes CPvI.
func SetPreviewInput(b *Bundler, mE uint8, src state.VideoSourceKey) error {
	v, err := b.sub(protocol.OutPreviewInput, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU16(2, uint16(src))
	return nil
}

// TransitionStyle carries the two optional fields CTTp can set for one
// mix effect block. The original client collides both fields onto mask
// bit 0 since it never composes them in the same bundled sub-packet;
// this client keeps them independently addressable so Style and
// NextStyle can be set together in one bundle without one clobbering the
// other's mask bit.
type TransitionStyle struct {
	Style     *uint8
	NextStyle *uint8
}

// SetTransitionStyle writes CTTp.
func SetTransitionStyle(b *Bundler, mE uint8, f TransitionStyle) error {
	v, err := b.sub(protocol.OutTransitionStyle, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(1, mE)
	if f.Style != nil {
		v.SetFlag8(0, 0)
		v.SetU8(2, *f.Style)
	}
	if f.NextStyle != nil {
		v.SetFlag8(0, 1)
		v.SetU8(3, *f.NextStyle)
	}
	return nil
}

// SetTransitionPreview writes CTPr.
func SetTransitionPreview(b *Bundler, mE uint8, enabled bool) error {
	v, err := b.sub(protocol.OutTransitionPreview, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU8(1, boolByte(enabled))
	return nil
}

// SetTransitionPosition writes CTPs.
func SetTransitionPosition(b *Bundler, mE uint8, position uint16) error {
	v, err := b.sub(protocol.OutTransitionPosition, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU16(2, position)
	return nil
}

// SetTransitionMix writes CTMx.
func SetTransitionMix(b *Bundler, mE uint8, rate uint8) error {
	v, err := b.sub(protocol.OutTransitionMix, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU8(1, rate)
	return nil
}

// TransitionDip carries CTDp's two optional fields.
type TransitionDip struct {
	Rate  *uint8
	Input *state.VideoSourceKey
}

// SetTransitionDip writes CTDp.
func SetTransitionDip(b *Bundler, mE uint8, f TransitionDip) error {
	v, err := b.sub(protocol.OutTransitionDip, oneKey(uint16(mE)), 8)
	if err != nil {
		return err
	}
	v.SetU8(1, mE)
	if f.Rate != nil {
		v.SetFlag8(0, 0)
		v.SetU8(2, *f.Rate)
	}
	if f.Input != nil {
		v.SetFlag8(0, 1)
		v.SetU16(4, uint16(*f.Input))
	}
	return nil
}

// TransitionWipe carries CTWp's ten optional fields.
type TransitionWipe struct {
	Rate       *uint8
	Pattern    *uint8
	Width      *float64 // 0.0-100.0 (%)
	FillSource *state.VideoSourceKey
	Symmetry   *float64 // 0.0-100.0 (%)
	Softness   *float64 // 0.0-100.0 (%)
	PositionX  *float64 // 0.0-1.0
	PositionY  *float64 // 0.0-1.0
	Reverse    *bool
	FlipFlop   *bool
}

// SetTransitionWipe writes CTWp. The mask is split across two bytes:
// byte1 carries bits for rate through positionY, byte0 carries reverse
// and flipFlop — the original client's own flag calls spill past bit 7
// of byte1 for these last two fields without wrapping back into it.
func SetTransitionWipe(b *Bundler, mE uint8, f TransitionWipe) error {
	v, err := b.sub(protocol.OutTransitionWipe, oneKey(uint16(mE)), 20)
	if err != nil {
		return err
	}
	v.SetU8(2, mE)
	if f.Rate != nil {
		v.SetFlag8(1, 0)
		v.SetU8(3, *f.Rate)
	}
	if f.Pattern != nil {
		v.SetFlag8(1, 1)
		v.SetU8(4, *f.Pattern)
	}
	if f.Width != nil {
		v.SetFlag8(1, 2)
		v.SetU16(6, uint16(*f.Width*100))
	}
	if f.FillSource != nil {
		v.SetFlag8(1, 3)
		v.SetU16(8, uint16(*f.FillSource))
	}
	if f.Symmetry != nil {
		v.SetFlag8(1, 4)
		v.SetU16(10, uint16(*f.Symmetry*100))
	}
	if f.Softness != nil {
		v.SetFlag8(1, 5)
		v.SetU16(12, uint16(*f.Softness*100))
	}
	if f.PositionX != nil {
		v.SetFlag8(1, 6)
		v.SetU16(14, uint16(*f.PositionX*10000))
	}
	if f.PositionY != nil {
		v.SetFlag8(1, 7)
		v.SetU16(16, uint16(*f.PositionY*10000))
	}
	if f.Reverse != nil {
		v.SetFlag8(0, 0)
		v.SetU8(18, boolByte(*f.Reverse))
	}
	if f.FlipFlop != nil {
		v.SetFlag8(0, 1)
		v.SetU8(19, boolByte(*f.FlipFlop))
	}
	return nil
}

// TransitionDVE carries CTDv's eleven optional fields.
type TransitionDVE struct {
	Rate          *uint8
	Style         *uint8
	FillSource    *state.VideoSourceKey
	KeySource     *state.VideoSourceKey
	EnableKey     *bool
	PreMultiplied *bool
	Clip          *float64 // 0.0-100.0 (%)
	Gain          *float64 // 0.0-100.0 (%)
	InvertKey     *bool
	Reverse       *bool
	FlipFlop      *bool
}

// SetTransitionDVE writes CTDv. gain/invertKey/reverse/flipFlop use bits
// 0-3 of byte 0, a new byte rather than a continuation of byte 1's bit
// count — the original client's own flag calls for these four fields
// pass a bit index that overflows a single byte, which would raise an
// error if ever actually exercised; this is the byte they clearly meant.
func SetTransitionDVE(b *Bundler, mE uint8, f TransitionDVE) error {
	v, err := b.sub(protocol.OutTransitionDVE, oneKey(uint16(mE)), 20)
	if err != nil {
		return err
	}
	v.SetU8(2, mE)
	if f.Rate != nil {
		v.SetFlag8(1, 0)
		v.SetU8(3, *f.Rate)
	}
	if f.Style != nil {
		v.SetFlag8(1, 2)
		v.SetU8(5, *f.Style)
	}
	if f.FillSource != nil {
		v.SetFlag8(1, 3)
		v.SetU16(6, uint16(*f.FillSource))
	}
	if f.KeySource != nil {
		v.SetFlag8(1, 4)
		v.SetU16(8, uint16(*f.KeySource))
	}
	if f.EnableKey != nil {
		v.SetFlag8(1, 5)
		v.SetU8(10, boolByte(*f.EnableKey))
	}
	if f.PreMultiplied != nil {
		v.SetFlag8(1, 6)
		v.SetU8(11, boolByte(*f.PreMultiplied))
	}
	if f.Clip != nil {
		v.SetFlag8(1, 7)
		v.SetU16(12, uint16(*f.Clip*10))
	}
	if f.Gain != nil {
		v.SetFlag8(0, 0)
		v.SetU16(14, uint16(*f.Gain*10))
	}
	if f.InvertKey != nil {
		v.SetFlag8(0, 1)
		v.SetU8(16, boolByte(*f.InvertKey))
	}
	if f.Reverse != nil {
		v.SetFlag8(0, 2)
		v.SetU8(17, boolByte(*f.Reverse))
	}
	if f.FlipFlop != nil {
		v.SetFlag8(0, 3)
		v.SetU8(18, boolByte(*f.FlipFlop))
	}
	return nil
}

// TransitionSting carries CTSt's nine optional fields.
type TransitionSting struct {
	Source        *uint8
	PreMultiplied *bool
	Clip          *float64 // 0.0-100.0 (%)
	Gain          *float64 // 0.0-100.0 (%)
	InvertKey     *bool
	PreRoll       *uint16
	ClipDuration  *uint16
	TriggerPoint  *uint16
	MixRate       *uint16
}

// SetTransitionSting writes CTSt. mixRate uses bit 0 of byte 0 rather
// than a continuation of byte 1's bit count, for the same reason noted
// on SetTransitionDVE.
func SetTransitionSting(b *Bundler, mE uint8, f TransitionSting) error {
	v, err := b.sub(protocol.OutTransitionSting, oneKey(uint16(mE)), 20)
	if err != nil {
		return err
	}
	v.SetU8(2, mE)
	if f.Source != nil {
		v.SetFlag8(1, 0)
		v.SetU8(3, *f.Source)
	}
	if f.PreMultiplied != nil {
		v.SetFlag8(1, 1)
		v.SetU8(4, boolByte(*f.PreMultiplied))
	}
	if f.Clip != nil {
		v.SetFlag8(1, 2)
		v.SetU16(6, uint16(*f.Clip*10))
	}
	if f.Gain != nil {
		v.SetFlag8(1, 3)
		v.SetU16(8, uint16(*f.Gain*10))
	}
	if f.InvertKey != nil {
		v.SetFlag8(1, 4)
		v.SetU8(10, boolByte(*f.InvertKey))
	}
	if f.PreRoll != nil {
		v.SetFlag8(1, 5)
		v.SetU16(12, *f.PreRoll)
	}
	if f.ClipDuration != nil {
		v.SetFlag8(1, 6)
		v.SetU16(14, *f.ClipDuration)
	}
	if f.TriggerPoint != nil {
		v.SetFlag8(1, 7)
		v.SetU16(16, *f.TriggerPoint)
	}
	if f.MixRate != nil {
		v.SetFlag8(0, 0)
		v.SetU16(18, *f.MixRate)
	}
	return nil
}

// SetKeyerOnAir writes CKOn.
func SetKeyerOnAir(b *Bundler, mE, keyer uint8, enabled bool) error {
	v, err := b.sub(protocol.OutKeyerOnAir, twoKeys(uint16(mE), uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU8(1, keyer)
	v.SetU8(2, boolByte(enabled))
	return nil
}

// KeyerType carries CKTp's two optional fields.
type KeyerType struct {
	Type       *uint8
	FlyEnabled *bool
}

// SetKeyerType writes CKTp.
func SetKeyerType(b *Bundler, mE, keyer uint8, f KeyerType) error {
	v, err := b.sub(protocol.OutKeyerType, twoKeys(uint16(mE), uint16(keyer)), 8)
	if err != nil {
		return err
	}
	v.SetU8(1, mE)
	v.SetU8(2, keyer)
	if f.Type != nil {
		v.SetFlag8(0, 0)
		v.SetU8(3, *f.Type)
	}
	if f.FlyEnabled != nil {
		v.SetFlag8(0, 1)
		v.SetU8(4, boolByte(*f.FlyEnabled))
	}
	return nil
}

// KeyerMask carries CKMs's five optional fields. Setting Top also
// implicitly forces Masked on, mirroring the original client's own
// behavior — a caller wanting Top without also enabling the mask must
// follow with an explicit SetKeyerMask call setting Masked false.
type KeyerMask struct {
	Masked *bool
	Top    *float64 // -9.0-9.0
	Bottom *float64 // -9.0-9.0
	Left   *float64 // -9.0-9.0, mapped to -16000..16000
	Right  *float64 // -9.0-9.0, mapped to -16000..16000
}

// SetKeyerMask writes CKMs.
func SetKeyerMask(b *Bundler, mE, keyer uint8, f KeyerMask) error {
	v, err := b.sub(protocol.OutKeyerMask, twoKeys(uint16(mE), uint16(keyer)), 12)
	if err != nil {
		return err
	}
	v.SetU8(1, mE)
	v.SetU8(2, keyer)
	if f.Masked != nil {
		v.SetFlag8(0, 0)
		v.SetU8(3, boolByte(*f.Masked))
	}
	if f.Top != nil {
		v.SetFlag8(0, 1)
		v.SetFlag8(3, 0)
		v.SetS16(4, int16(*f.Top*1000))
	}
	if f.Bottom != nil {
		v.SetFlag8(0, 2)
		v.SetS16(6, int16(*f.Bottom*1000))
	}
	if f.Left != nil {
		v.SetFlag8(0, 3)
		v.SetS16(8, int16(protocol.MapValue(*f.Left, -9.0, 9.0, -16000, 16000)))
	}
	if f.Right != nil {
		v.SetFlag8(0, 4)
		v.SetS16(10, int16(protocol.MapValue(*f.Right, -9.0, 9.0, -16000, 16000)))
	}
	return nil
}

// SetKeyerFill writes CKeF.
func SetKeyerFill(b *Bundler, mE, keyer uint8, src state.VideoSourceKey) error {
	v, err := b.sub(protocol.OutKeyerFill, twoKeys(uint16(mE), uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU8(1, keyer)
	v.SetU16(2, uint16(src))
	return nil
}

// SetKeyerKeySource writes CKeC.
func SetKeyerKeySource(b *Bundler, mE, keyer uint8, src state.VideoSourceKey) error {
	v, err := b.sub(protocol.OutKeyerKeySource, twoKeys(uint16(mE), uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU8(1, keyer)
	v.SetU16(2, uint16(src))
	return nil
}

// KeyerLuma carries CKLm's four optional fields.
type KeyerLuma struct {
	PreMultiplied *bool
	Clip          *float64 // 0.0-100.0 (%)
	Gain          *float64 // 0.0-100.0 (%)
	InvertKey     *bool
}

// SetKeyerLuma writes CKLm.
func SetKeyerLuma(b *Bundler, mE, keyer uint8, f KeyerLuma) error {
	v, err := b.sub(protocol.OutKeyerLuma, twoKeys(uint16(mE), uint16(keyer)), 12)
	if err != nil {
		return err
	}
	v.SetU8(1, mE)
	v.SetU8(2, keyer)
	if f.PreMultiplied != nil {
		v.SetFlag8(0, 0)
		v.SetU8(3, boolByte(*f.PreMultiplied))
	}
	if f.Clip != nil {
		v.SetFlag8(0, 1)
		v.SetU16(4, uint16(*f.Clip*10))
	}
	if f.Gain != nil {
		v.SetFlag8(0, 2)
		v.SetU16(6, uint16(*f.Gain*10))
	}
	if f.InvertKey != nil {
		v.SetFlag8(0, 3)
		v.SetU8(8, boolByte(*f.InvertKey))
	}
	return nil
}

// KeyerChromaKey carries CKCk's five optional fields.
type KeyerChromaKey struct {
	Hue       *float64 // 0.0-359.9 (degrees)
	Gain      *float64 // 0.0-100.0 (%)
	YSuppress *float64 // 0.0-100.0 (%)
	Lift      *float64 // 0.0-100.0 (%)
	Narrow    *bool
}

// SetKeyerChromaKey writes CKCk.
func SetKeyerChromaKey(b *Bundler, mE, keyer uint8, f KeyerChromaKey) error {
	v, err := b.sub(protocol.OutKeyerChromaKey, twoKeys(uint16(mE), uint16(keyer)), 16)
	if err != nil {
		return err
	}
	v.SetU8(1, mE)
	v.SetU8(2, keyer)
	if f.Hue != nil {
		v.SetFlag8(0, 0)
		v.SetU16(4, uint16(*f.Hue*10))
	}
	if f.Gain != nil {
		v.SetFlag8(0, 1)
		v.SetU16(6, uint16(*f.Gain*10))
	}
	if f.YSuppress != nil {
		v.SetFlag8(0, 2)
		v.SetU16(8, uint16(*f.YSuppress*10))
	}
	if f.Lift != nil {
		v.SetFlag8(0, 3)
		v.SetU16(10, uint16(*f.Lift*10))
	}
	if f.Narrow != nil {
		v.SetFlag8(0, 4)
		v.SetU8(12, boolByte(*f.Narrow))
	}
	return nil
}

// KeyerPattern carries CKPt's seven optional fields.
type KeyerPattern struct {
	Pattern       *uint8
	Size          *float64 // 0.0-100.0 (%)
	Symmetry      *float64 // 0.0-100.0 (%)
	Softness      *float64 // 0.0-100.0 (%)
	PositionX     *float64 // 0.0-1.0
	PositionY     *float64 // 0.0-1.0
	InvertPattern *bool
}

// SetKeyerPattern writes CKPt.
func SetKeyerPattern(b *Bundler, mE, keyer uint8, f KeyerPattern) error {
	v, err := b.sub(protocol.OutKeyerPattern, twoKeys(uint16(mE), uint16(keyer)), 16)
	if err != nil {
		return err
	}
	v.SetU8(1, mE)
	v.SetU8(2, keyer)
	if f.Pattern != nil {
		v.SetFlag8(0, 0)
		v.SetU8(3, *f.Pattern)
	}
	if f.Size != nil {
		v.SetFlag8(0, 1)
		v.SetU16(4, uint16(*f.Size*100))
	}
	if f.Symmetry != nil {
		v.SetFlag8(0, 2)
		v.SetU16(6, uint16(*f.Symmetry*100))
	}
	if f.Softness != nil {
		v.SetFlag8(0, 3)
		v.SetU16(8, uint16(*f.Softness*100))
	}
	if f.PositionX != nil {
		v.SetFlag8(0, 4)
		v.SetU16(10, uint16(*f.PositionX*10000))
	}
	if f.PositionY != nil {
		v.SetFlag8(0, 5)
		v.SetU16(12, uint16(*f.PositionY*10000))
	}
	if f.InvertPattern != nil {
		v.SetFlag8(0, 6)
		v.SetU8(14, boolByte(*f.InvertPattern))
	}
	return nil
}

// KeyerDVE carries CKDV's many optional fields. Unlike the other keyer
// tags, the switcher indexes this sub-packet by mE/keyer at offsets 4/5
// rather than 1/2, and its four geometric fields (size, position,
// rotation) are transmitted as fixed-point S32 values scaled by 1000.
type KeyerDVE struct {
	SizeX                *float64 // 0.0-1.0
	SizeY                *float64 // 0.0-1.0
	PositionX            *float64 // 0.0-1.0
	PositionY            *float64 // 0.0-1.0
	Rotation             *float64 // 0.0-359.9 (degrees)
	BorderEnabled        *bool
	Shadow               *bool
	BorderBevel          *uint8
	BorderOuterWidth     *float64 // 0.0-16.0
	BorderInnerWidth     *float64 // 0.0-16.0
	BorderOuterSoftness  *uint8   // 0-100 (%)
	BorderInnerSoftness  *uint8   // 0-100 (%)
	BorderBevelSoftness  *float64 // 0.0-1.0
	BorderBevelPosition  *float64 // 0.0-1.0
	BorderOpacity        *uint8   // 0-100 (%)
	BorderHue            *float64 // 0.0-359.9 (degrees)
	BorderSaturation     *float64 // 0.0-100.0 (%)
	BorderLuma           *float64 // 0.0-100.0 (%)
	LightSourceDirection *float64 // 0.0-359.9 (degrees)
	LightSourceAltitude  *uint8   // 10-100
	Masked               *bool
	Top                  *float64 // -9.0-9.0
	Bottom               *float64 // -9.0-9.0
	Left                 *float64 // -9.0-9.0, mapped to -16000..16000
	Right                *float64 // -9.0-9.0, mapped to -16000..16000
	Rate                 *uint8
}

func setFixed32(v wire.View, off int, scaled int32) {
	v.SetU8(off, uint8(scaled>>24))
	v.SetU8(off+1, uint8(scaled>>16))
	v.SetU8(off+2, uint8(scaled>>8))
	v.SetU8(off+3, uint8(scaled))
}

// SetKeyerDVE writes CKDV.
func SetKeyerDVE(b *Bundler, mE, keyer uint8, f KeyerDVE) error {
	v, err := b.sub(protocol.OutKeyerDVE, twoKeys(uint16(mE), uint16(keyer)), 64)
	if err != nil {
		return err
	}
	v.SetU8(4, mE)
	v.SetU8(5, keyer)
	if f.SizeX != nil {
		v.SetFlag8(3, 0)
		setFixed32(v, 8, int32(*f.SizeX*1000))
	}
	if f.SizeY != nil {
		v.SetFlag8(3, 1)
		setFixed32(v, 12, int32(*f.SizeY*1000))
	}
	if f.PositionX != nil {
		v.SetFlag8(3, 2)
		setFixed32(v, 16, int32(*f.PositionX*1000))
	}
	if f.PositionY != nil {
		v.SetFlag8(3, 3)
		setFixed32(v, 20, int32(*f.PositionY*1000))
	}
	if f.Rotation != nil {
		v.SetFlag8(3, 4)
		setFixed32(v, 24, int32(*f.Rotation*1000))
	}
	if f.BorderEnabled != nil {
		v.SetFlag8(3, 5)
		v.SetU8(28, boolByte(*f.BorderEnabled))
	}
	if f.Shadow != nil {
		v.SetFlag8(3, 6)
		v.SetU8(29, boolByte(*f.Shadow))
	}
	if f.BorderBevel != nil {
		v.SetFlag8(3, 7)
		v.SetU8(30, *f.BorderBevel)
	}
	if f.BorderOuterWidth != nil {
		v.SetFlag8(2, 0)
		v.SetU16(32, uint16(*f.BorderOuterWidth*100))
	}
	if f.BorderInnerWidth != nil {
		v.SetFlag8(2, 1)
		v.SetU16(34, uint16(*f.BorderInnerWidth*100))
	}
	if f.BorderOuterSoftness != nil {
		v.SetFlag8(2, 2)
		v.SetU8(36, *f.BorderOuterSoftness)
	}
	if f.BorderInnerSoftness != nil {
		v.SetFlag8(2, 3)
		v.SetU8(37, *f.BorderInnerSoftness)
	}
	if f.BorderBevelSoftness != nil {
		v.SetFlag8(2, 4)
		v.SetU8(38, uint8(*f.BorderBevelSoftness*100))
	}
	if f.BorderBevelPosition != nil {
		v.SetFlag8(2, 5)
		v.SetU8(39, uint8(*f.BorderBevelPosition*100))
	}
	if f.BorderOpacity != nil {
		v.SetFlag8(2, 6)
		v.SetU8(40, *f.BorderOpacity)
	}
	if f.BorderHue != nil {
		v.SetFlag8(2, 7)
		v.SetU16(42, uint16(*f.BorderHue*10))
	}
	if f.BorderSaturation != nil {
		v.SetFlag8(1, 0)
		v.SetU16(44, uint16(*f.BorderSaturation*10))
	}
	if f.BorderLuma != nil {
		v.SetFlag8(1, 1)
		v.SetU16(46, uint16(*f.BorderLuma*10))
	}
	if f.LightSourceDirection != nil {
		v.SetFlag8(1, 2)
		v.SetU16(48, uint16(*f.LightSourceDirection*10))
	}
	if f.LightSourceAltitude != nil {
		v.SetFlag8(1, 3)
		v.SetU8(50, *f.LightSourceAltitude)
	}
	if f.Masked != nil {
		v.SetFlag8(1, 4)
		v.SetU8(51, boolByte(*f.Masked))
	}
	if f.Top != nil {
		v.SetFlag8(1, 5)
		v.SetS16(52, int16(*f.Top*1000))
	}
	if f.Bottom != nil {
		v.SetFlag8(1, 6)
		v.SetS16(54, int16(*f.Bottom*1000))
	}
	if f.Left != nil {
		v.SetFlag8(1, 7)
		v.SetS16(56, int16(protocol.MapValue(*f.Left, -9.0, 9.0, -16000, 16000)))
	}
	if f.Right != nil {
		v.SetFlag8(0, 0)
		v.SetS16(58, int16(protocol.MapValue(*f.Right, -9.0, 9.0, -16000, 16000)))
	}
	if f.Rate != nil {
		v.SetFlag8(0, 1)
		v.SetU8(60, *f.Rate)
	}
	return nil
}

// SetKeyerFlyKeyframeSet writes SFKF, storing the keyer's current state
// into one of its fly keyframe slots.
func SetKeyerFlyKeyframeSet(b *Bundler, mE, keyer, keyFrame uint8) error {
	v, err := b.sub(protocol.OutKeyerFlyKeyframeSet, twoKeys(uint16(mE), uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU8(1, keyer)
	v.SetU8(2, keyFrame)
	return nil
}

// KeyerFlyRun carries RFlK's two optional fields: running to a stored
// keyframe, or running to the infinite-index endpoint.
type KeyerFlyRun struct {
	KeyFrame           *uint8
	RunToInfiniteIndex *uint8
}

// SetKeyerFlyRun writes RFlK.
func SetKeyerFlyRun(b *Bundler, mE, keyer uint8, f KeyerFlyRun) error {
	v, err := b.sub(protocol.OutKeyerFlyRun, twoKeys(uint16(mE), uint16(keyer)), 8)
	if err != nil {
		return err
	}
	v.SetU8(1, mE)
	v.SetU8(2, keyer)
	if f.KeyFrame != nil {
		v.SetU8(4, *f.KeyFrame)
	}
	if f.RunToInfiniteIndex != nil {
		v.SetFlag8(0, 1)
		v.SetU8(5, *f.RunToInfiniteIndex)
	}
	return nil
}
