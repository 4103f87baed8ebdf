package command

import (
	"github.com/go-atem/atemkit/protocol"
)

// ClipPlayback carries SCPS's four optional fields.
type ClipPlayback struct {
	Playing     *bool
	Loop        *bool
	AtBeginning *bool
	ClipFrame   *uint16
}

// SetClipPlayback writes SCPS.
func SetClipPlayback(b *Bundler, mediaPlayer uint8, f ClipPlayback) error {
	v, err := b.sub(protocol.OutClipPlayback, oneKey(uint16(mediaPlayer)), 8)
	if err != nil {
		return err
	}
	v.SetU8(1, mediaPlayer)
	if f.Playing != nil {
		v.SetFlag8(0, 0)
		v.SetU8(2, boolByte(*f.Playing))
	}
	if f.Loop != nil {
		v.SetFlag8(0, 1)
		v.SetU8(3, boolByte(*f.Loop))
	}
	if f.AtBeginning != nil {
		v.SetFlag8(0, 2)
		v.SetU8(4, boolByte(*f.AtBeginning))
	}
	if f.ClipFrame != nil {
		v.SetFlag8(0, 3)
		v.SetU16(6, *f.ClipFrame)
	}
	return nil
}

// MediaPlayerSource carries MPSS's three optional fields.
type MediaPlayerSource struct {
	Type       *uint8
	StillIndex *uint8
	ClipIndex  *uint8
}

// SetMediaPlayerSource writes MPSS.
func SetMediaPlayerSource(b *Bundler, mediaPlayer uint8, f MediaPlayerSource) error {
	v, err := b.sub(protocol.OutMediaPlayerSource, oneKey(uint16(mediaPlayer)), 8)
	if err != nil {
		return err
	}
	v.SetU8(1, mediaPlayer)
	if f.Type != nil {
		v.SetFlag8(0, 0)
		v.SetU8(2, *f.Type)
	}
	if f.StillIndex != nil {
		v.SetFlag8(0, 1)
		v.SetU8(3, *f.StillIndex)
	}
	if f.ClipIndex != nil {
		v.SetFlag8(0, 2)
		v.SetU8(4, *f.ClipIndex)
	}
	return nil
}

// SetMediaPoolStorage writes CMPS: a single unindexed field, always a
// full overwrite since the switcher has only one media pool.
func SetMediaPoolStorage(b *Bundler, clip1MaxLength uint16) error {
	v, err := b.sub(protocol.OutMediaPoolStorage, [4]uint16{}, 4)
	if err != nil {
		return err
	}
	v.SetU16(0, clip1MaxLength)
	return nil
}
