package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
)

// SetTallyByIndex writes CTlP, overriding one input's program/preview tally
// lamps by its position in the switcher's source list rather than by
// protocol code-point. Some switcher firmwares accept this as a manual
// override independent of the mix-effect state that normally drives TlIn.
func SetTallyByIndex(b *Bundler, index int, program, preview bool) error {
	v, err := b.sub(protocol.OutTallyByIndex, oneKey(uint16(index)), 4)
	if err != nil {
		return err
	}
	v.SetU16(0, uint16(index))
	if program {
		v.SetFlag8(2, 0)
	}
	if preview {
		v.SetFlag8(2, 1)
	}
	return nil
}

// SetLock writes LOCK, requesting or releasing the exclusive lock on one
// lockable source. The resulting lock state comes back as an LKST update,
// which sets that source's Locked flag; LKOB sets its SupportsLock flag.
func SetLock(b *Bundler, src state.VideoSourceKey, locked bool) error {
	v, err := b.sub(protocol.OutLock, oneKey(uint16(src)), 4)
	if err != nil {
		return err
	}
	v.SetU16(0, uint16(src))
	v.SetU8(2, boolByte(locked))
	return nil
}
