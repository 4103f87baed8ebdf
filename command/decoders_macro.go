package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagMacroRunStatus, decodeMacroRunStatus)
	register(protocol.TagMacroProperties, decodeMacroProperties)
	register(protocol.TagMacroRecordState, decodeMacroRecordState)
}

func decodeMacroRunStatus(st *state.State, buf *wire.Buffer) error {
	rs := &st.Macro.RunStatus
	rs.State.Running = buf.Flag8(0, 0)
	rs.State.Waiting = buf.Flag8(0, 1)
	rs.IsLooping = buf.Flag8(1, 0)
	rs.Index = buf.U16(2)
	return nil
}

func decodeMacroProperties(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(1)
	if int(idx) >= len(st.Macro.Properties) {
		return nil
	}
	p := &st.Macro.Properties[idx]
	p.IsUsed = buf.Flag8(2, 0)
	nameLen := buf.U8(5)
	p.Name = buf.String(8, int(nameLen))
	return nil
}

func decodeMacroRecordState(st *state.State, buf *wire.Buffer) error {
	rs := &st.Macro.RecordingStatus
	rs.IsRecording = buf.Flag8(0, 0)
	rs.Index = buf.U16(2)
	return nil
}
