package command

import "github.com/go-atem/atemkit/protocol"

// Cut writes DCut, performing an immediate program/preview swap on mE.
func Cut(b *Bundler, mE uint8) error {
	v, err := b.sub(protocol.OutCut, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	return nil
}

// Auto writes DAut, starting the configured transition on mE.
func Auto(b *Bundler, mE uint8) error {
	v, err := b.sub(protocol.OutAuto, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	return nil
}

// DSKAuto writes DDsA, starting the downstream keyer's auto transition.
func DSKAuto(b *Bundler, dsk uint8) error {
	v, err := b.sub(protocol.OutDSKAuto, oneKey(uint16(dsk)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, dsk)
	return nil
}

// FadeToBlackAuto writes FtbA, starting the fade-to-black transition on mE.
// Byte 1 is always 0x02 — the original source sends this constant with no
// documented meaning beyond matching what the switcher expects.
func FadeToBlackAuto(b *Bundler, mE uint8) error {
	v, err := b.sub(protocol.OutFadeToBlackAuto, oneKey(uint16(mE)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mE)
	v.SetU8(1, 0x02)
	return nil
}
