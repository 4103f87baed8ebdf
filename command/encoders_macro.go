package command

import (
	"github.com/go-atem/atemkit/protocol"
)

// SetMacroAction writes MAct.
func SetMacroAction(b *Bundler, macro uint16, action uint8) error {
	v, err := b.sub(protocol.OutMacroAction, oneKey(macro), 4)
	if err != nil {
		return err
	}
	v.SetU16(0, macro)
	v.SetU8(2, action)
	return nil
}

// SetMacroRunLooping writes MRCP.
func SetMacroRunLooping(b *Bundler, looping bool) error {
	v, err := b.sub(protocol.OutMacroRunProperty, [4]uint16{}, 4)
	if err != nil {
		return err
	}
	v.SetFlag8(0, 0)
	v.SetU8(1, boolByte(looping))
	return nil
}

// SetMacroSleep writes MSlp, inserting a pause of the given number of
// frames into the macro currently being recorded.
func SetMacroSleep(b *Bundler, frames uint16) error {
	v, err := b.sub(protocol.OutMacroSleep, [4]uint16{}, 4)
	if err != nil {
		return err
	}
	v.SetU16(2, frames)
	return nil
}

// MacroRecord carries MSRc's start-recording fields. MacroIndex -1
// means "first free slot"; Name/Description may be empty, in which
// case the payload degenerates to the original firmware's plain
// 8-byte start/stop shape (see SPEC_FULL.md §6.3).
type MacroRecord struct {
	MacroIndex  int16
	Action      uint8
	Name        string
	Description string
}

// SetMacroRecord writes MSRc.
func SetMacroRecord(b *Bundler, f MacroRecord) error {
	nameBytes := []byte(f.Name)
	descBytes := []byte(f.Description)
	length := 8 + len(nameBytes) + len(descBytes)

	v, err := b.sub(protocol.OutMacroRecord, [4]uint16{}, length)
	if err != nil {
		return err
	}
	v.SetS16(0, f.MacroIndex)
	v.SetU8(2, f.Action)
	v.SetU8(3, uint8(len(nameBytes)))
	v.SetU8(4, uint8(len(descBytes)))
	v.SetString(8, len(nameBytes), f.Name)
	v.SetString(8+len(nameBytes), len(descBytes), f.Description)
	return nil
}
