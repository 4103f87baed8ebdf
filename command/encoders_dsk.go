package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
)

// SetDSKFill writes CDsF.
func SetDSKFill(b *Bundler, keyer uint8, src state.VideoSourceKey) error {
	v, err := b.sub(protocol.OutDSKFill, oneKey(uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, keyer)
	v.SetU16(2, uint16(src))
	return nil
}

// SetDSKKeySource writes CDsC. The index byte is written explicitly even
// though the original client only set it as a side effect of a
// preceding CDsF sub-packet sharing the same bundle slot — a standalone
// CDsC otherwise merges into whatever sub-packet happened to precede it.
func SetDSKKeySource(b *Bundler, keyer uint8, src state.VideoSourceKey) error {
	v, err := b.sub(protocol.OutDSKKey, oneKey(uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, keyer)
	v.SetU16(2, uint16(src))
	return nil
}

// SetDSKTie writes CDsT.
func SetDSKTie(b *Bundler, keyer uint8, tie bool) error {
	v, err := b.sub(protocol.OutDSKTie, oneKey(uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, keyer)
	v.SetU8(1, boolByte(tie))
	return nil
}

// SetDSKRate writes CDsR.
func SetDSKRate(b *Bundler, keyer, rate uint8) error {
	v, err := b.sub(protocol.OutDSKRate, oneKey(uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, keyer)
	v.SetU8(1, rate)
	return nil
}

// DSKGeneral carries CDsG's four optional fields.
type DSKGeneral struct {
	PreMultiplied *bool
	Clip          *float64 // 0.0-100.0 (%)
	Gain          *float64 // 0.0-100.0 (%)
	InvertKey     *bool
}

// SetDSKGeneral writes CDsG.
func SetDSKGeneral(b *Bundler, keyer uint8, f DSKGeneral) error {
	v, err := b.sub(protocol.OutDSKGeneral, oneKey(uint16(keyer)), 12)
	if err != nil {
		return err
	}
	v.SetU8(1, keyer)
	if f.PreMultiplied != nil {
		v.SetFlag8(0, 0)
		v.SetU8(2, boolByte(*f.PreMultiplied))
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

// DSKMask carries CDsM's five optional fields.
type DSKMask struct {
	Masked *bool
	Top    *float64 // -9.0-9.0
	Bottom *float64 // -9.0-9.0
	Left   *float64 // -9.0-9.0, mapped to -16000..16000
	Right  *float64 // -9.0-9.0, mapped to -16000..16000
}

// SetDSKMask writes CDsM.
func SetDSKMask(b *Bundler, keyer uint8, f DSKMask) error {
	v, err := b.sub(protocol.OutDSKMask, oneKey(uint16(keyer)), 12)
	if err != nil {
		return err
	}
	v.SetU8(1, keyer)
	if f.Masked != nil {
		v.SetFlag8(0, 0)
		v.SetU8(2, boolByte(*f.Masked))
	}
	if f.Top != nil {
		v.SetFlag8(0, 1)
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

// SetDSKOnAir writes CDsL.
func SetDSKOnAir(b *Bundler, keyer uint8, onAir bool) error {
	v, err := b.sub(protocol.OutDSKOnAir, oneKey(uint16(keyer)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, keyer)
	v.SetU8(1, boolByte(onAir))
	return nil
}

// SetFadeToBlackRate writes FtbC.
func SetFadeToBlackRate(b *Bundler, mE, rate uint8) error {
	v, err := b.sub(protocol.OutFadeToBlack, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetFlag8(0, 0)
	v.SetU8(1, mE)
	v.SetU8(2, rate)
	return nil
}
