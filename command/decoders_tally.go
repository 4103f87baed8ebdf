package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagTallyByIndex, decodeTallyByIndex)
	register(protocol.TagTallyBySource, decodeTallyBySource)
}

func decodeTallyByIndex(st *state.State, buf *wire.Buffer) error {
	n := int(buf.U16(0))
	if n >= state.MaxPhysicalInputs+16 {
		return nil
	}
	st.Tally.ByIndex.Sources = n
	for i := 0; i < n; i++ {
		st.Tally.ByIndex.Flags[i].Program = buf.Flag8(2+i, 0)
		st.Tally.ByIndex.Flags[i].Preview = buf.Flag8(2+i, 1)
	}
	return nil
}

// decodeTallyBySource mirrors TlSr: the same (program, preview) pair as
// TlIn but keyed by the source's protocol code-point, carried as a
// (source u16, flags u8) triple per entry.
func decodeTallyBySource(st *state.State, buf *wire.Buffer) error {
	n := int(buf.U16(0))
	st.Tally.BySource.Sources = n
	for i := 0; i < n; i++ {
		offset := 2 + 3*i
		src := state.VideoSourceKey(buf.U16(offset))
		flags := st.Tally.BySource.Flags[src]
		flags.Program = buf.Flag8(offset+2, 0)
		flags.Preview = buf.Flag8(offset+2, 1)
		st.Tally.BySource.Flags[src] = flags
	}
	return nil
}
