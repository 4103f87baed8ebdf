package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
)

// SetDownConvertMode writes CDcO: a single unindexed mode byte, always a
// full overwrite since the switcher has only one down converter.
func SetDownConvertMode(b *Bundler, mode uint8) error {
	v, err := b.sub(protocol.OutDownConvert, [4]uint16{}, 4)
	if err != nil {
		return err
	}
	v.SetU8(0, mode)
	return nil
}

// SetVideoMode writes CVdM.
func SetVideoMode(b *Bundler, format uint8) error {
	v, err := b.sub(protocol.OutVideoMode, [4]uint16{}, 4)
	if err != nil {
		return err
	}
	v.SetU8(0, format)
	return nil
}

// InputLongName carries the optional fields CInL can set for one video
// source; a nil pointer leaves that field untouched on the switcher.
type InputLongName struct {
	LongName        *string
	ShortName       *string
	ExternalPortType *uint16
}

// SetInputLongName writes CInL, indexed by video source.
func SetInputLongName(b *Bundler, src state.VideoSourceKey, f InputLongName) error {
	v, err := b.sub(protocol.OutInputLongName, oneKey(uint16(src)), 32)
	if err != nil {
		return err
	}
	v.SetU16(2, uint16(src))
	if f.LongName != nil {
		v.SetFlag8(0, 0)
		v.SetString(4, 20, *f.LongName)
	}
	if f.ShortName != nil {
		v.SetFlag8(0, 1)
		v.SetString(24, 4, *f.ShortName)
	}
	if f.ExternalPortType != nil {
		v.SetFlag8(0, 2)
		v.SetU16(28, *f.ExternalPortType)
	}
	return nil
}

// SetMultiViewerLayout writes CMvP.
func SetMultiViewerLayout(b *Bundler, multiViewer uint8, layout uint8) error {
	v, err := b.sub(protocol.OutMultiViewerProps, oneKey(uint16(multiViewer)), 4)
	if err != nil {
		return err
	}
	v.SetFlag8(0, 0)
	v.SetU8(1, multiViewer)
	v.SetU8(2, layout)
	return nil
}

// SetMultiViewerInput writes CMvI.
func SetMultiViewerInput(b *Bundler, multiViewer, window uint8, src state.VideoSourceKey) error {
	v, err := b.sub(protocol.OutMultiViewerInput, twoKeys(uint16(multiViewer), uint16(window)), 4)
	if err != nil {
		return err
	}
	v.SetU8(0, multiViewer)
	v.SetU8(1, window)
	v.SetU16(2, uint16(src))
	return nil
}
