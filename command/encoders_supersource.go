package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
)

// SuperSourceProps carries CSSc's optional fields. The switcher model this
// client targets has a single SuperSource, so the sub-packet is unindexed.
type SuperSourceProps struct {
	FillSource    *state.VideoSourceKey
	KeySource     *state.VideoSourceKey
	Foreground    *bool
	PreMultiplied *bool
	Clip          *float64 // 0.0-100.0 (%)
	Gain          *float64 // 0.0-100.0 (%)
	InvertKey     *bool
	BorderEnabled *bool

	BorderBevel          *uint8
	BorderOuterWidth     *float64 // 0.0-16.0
	BorderInnerWidth     *float64 // 0.0-16.0
	BorderOuterSoftness  *uint8   // 0-100
	BorderInnerSoftness  *uint8   // 0-100
	BorderBevelSoftness  *float64 // 0.0-100.0
	BorderBevelPosition  *float64 // 0.0-100.0
	BorderHue            *float64 // 0.0-359.9
	BorderSaturation     *float64 // 0.0-100.0
	BorderLuma           *float64 // 0.0-100.0
	LightSourceDirection *float64 // 0.0-359.9
	LightSourceAltitude  *uint8   // 10-100
}

// SetSuperSourceProps writes CSSc. Its mask spans three bytes, each field's
// bit tied to its position in the original property list rather than to
// any grouping by kind — byte 3 carries the first eight properties (fill
// source through border enabled), byte 2 the border geometry, byte 1 the
// border color and light source.
func SetSuperSourceProps(b *Bundler, f SuperSourceProps) error {
	v, err := b.sub(protocol.OutSuperSourceProps, [4]uint16{}, 36)
	if err != nil {
		return err
	}

	if f.FillSource != nil {
		v.SetFlag8(3, 0)
		v.SetU16(4, uint16(*f.FillSource))
	}
	if f.KeySource != nil {
		v.SetFlag8(3, 1)
		v.SetU16(6, uint16(*f.KeySource))
	}
	if f.Foreground != nil {
		v.SetFlag8(3, 2)
		v.SetU8(8, boolByte(*f.Foreground))
	}
	if f.PreMultiplied != nil {
		v.SetFlag8(3, 3)
		v.SetU8(9, boolByte(*f.PreMultiplied))
	}
	if f.Clip != nil {
		v.SetFlag8(3, 4)
		v.SetU16(10, uint16(*f.Clip*10))
	}
	if f.Gain != nil {
		v.SetFlag8(3, 5)
		v.SetU16(12, uint16(*f.Gain*10))
	}
	if f.InvertKey != nil {
		v.SetFlag8(3, 6)
		v.SetU8(14, boolByte(*f.InvertKey))
	}
	if f.BorderEnabled != nil {
		v.SetFlag8(3, 7)
		v.SetU8(15, boolByte(*f.BorderEnabled))
	}

	if f.BorderBevel != nil {
		v.SetFlag8(2, 0)
		v.SetU8(16, *f.BorderBevel)
	}
	if f.BorderOuterWidth != nil {
		v.SetFlag8(2, 1)
		v.SetU16(18, uint16(*f.BorderOuterWidth*100))
	}
	if f.BorderInnerWidth != nil {
		v.SetFlag8(2, 2)
		v.SetU16(20, uint16(*f.BorderInnerWidth*100))
	}
	if f.BorderOuterSoftness != nil {
		v.SetFlag8(2, 3)
		v.SetU8(22, *f.BorderOuterSoftness)
	}
	if f.BorderInnerSoftness != nil {
		v.SetFlag8(2, 4)
		v.SetU8(23, *f.BorderInnerSoftness)
	}
	if f.BorderBevelSoftness != nil {
		v.SetFlag8(2, 5)
		v.SetU8(24, uint8(*f.BorderBevelSoftness*100))
	}
	if f.BorderBevelPosition != nil {
		v.SetFlag8(2, 6)
		v.SetU8(25, uint8(*f.BorderBevelPosition*100))
	}
	if f.BorderHue != nil {
		v.SetFlag8(2, 7)
		v.SetU16(26, uint16(*f.BorderHue*10))
	}

	if f.BorderSaturation != nil {
		v.SetFlag8(1, 0)
		v.SetU16(28, uint16(*f.BorderSaturation*10))
	}
	if f.BorderLuma != nil {
		v.SetFlag8(1, 1)
		v.SetU16(30, uint16(*f.BorderLuma*10))
	}
	if f.LightSourceDirection != nil {
		v.SetFlag8(1, 2)
		v.SetU16(32, uint16(*f.LightSourceDirection*10))
	}
	if f.LightSourceAltitude != nil {
		v.SetFlag8(1, 3)
		v.SetU8(34, *f.LightSourceAltitude)
	}

	return nil
}

// SuperSourceBox carries CSBP's optional fields for one SuperSource box.
type SuperSourceBox struct {
	Enabled     *bool
	InputSource *state.VideoSourceKey
	PositionX   *float64 // -48.0-48.0
	PositionY   *float64 // -27.0-27.0
	Size        *float64 // 0.07-1.0
	Cropped     *bool
	CropTop     *float64 // 0.0-18.0
	CropBottom  *float64 // 0.0-18.0
	CropLeft    *float64 // 0.0-32.0
	CropRight   *float64 // 0.0-32.0
}

// SetSuperSourceBox writes CSBP for the given box (0-3). The mask spans
// two bytes, with the last two fields (CropLeft, CropRight) spilling into
// byte 0 once byte 1 filled up.
func SetSuperSourceBox(b *Bundler, box uint8, f SuperSourceBox) error {
	v, err := b.sub(protocol.OutSuperSourceBox, oneKey(uint16(box)), 24)
	if err != nil {
		return err
	}
	v.SetU8(2, box)

	if f.Enabled != nil {
		v.SetFlag8(1, 0)
		v.SetU8(3, boolByte(*f.Enabled))
	}
	if f.InputSource != nil {
		v.SetFlag8(1, 1)
		v.SetU16(4, uint16(*f.InputSource))
	}
	if f.PositionX != nil {
		v.SetFlag8(1, 2)
		v.SetU16(6, uint16(*f.PositionX*100))
	}
	if f.PositionY != nil {
		v.SetFlag8(1, 3)
		v.SetU16(8, uint16(*f.PositionY*100))
	}
	if f.Size != nil {
		v.SetFlag8(1, 4)
		v.SetU16(10, uint16(*f.Size*100))
	}
	if f.Cropped != nil {
		v.SetFlag8(1, 5)
		v.SetU8(12, boolByte(*f.Cropped))
	}
	if f.CropTop != nil {
		v.SetFlag8(1, 6)
		v.SetU16(14, uint16(*f.CropTop*1000))
	}
	if f.CropBottom != nil {
		v.SetFlag8(1, 7)
		v.SetU16(16, uint16(*f.CropBottom*1000))
	}
	if f.CropLeft != nil {
		v.SetFlag8(0, 0)
		v.SetU16(18, uint16(*f.CropLeft*1000))
	}
	if f.CropRight != nil {
		v.SetFlag8(0, 1)
		v.SetU16(20, uint16(*f.CropRight*1000))
	}

	return nil
}
