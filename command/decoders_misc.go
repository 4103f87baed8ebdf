package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagLockState, decodeLockState)
	register(protocol.TagLockObtained, decodeLockObtained)
	register(protocol.TagRemoteStatus, decodeRemoteStatus)
	register(protocol.TagRemoteCapability, decodeRemoteStatus)
	register(protocol.TagRemoteConfig, decodeRemoteStatus)
	register(protocol.TagFileTransferData, decodeFileTransferData)
	register(protocol.TagFileTransferCont, decodeFileTransferCont)
	register(protocol.TagFileTransferAck, decodeFileTransferAck)
	register(protocol.TagFileTransferStat, decodeFileTransferStat)
	register(protocol.TagAudioExpansionBus, decodeAudioExpansionBus)
	register(protocol.TagAudioExpansionIn, decodeAudioExpansionIn)
	register(protocol.TagAudioExpansionOut, decodeAudioExpansionOut)
}

func decodeLockState(st *state.State, buf *wire.Buffer) error {
	src := state.VideoSourceKey(buf.U16(0))
	slot := st.Lock.Source[src]
	slot.Locked = buf.Flag8(2, 0)
	st.Lock.Source[src] = slot
	return nil
}

func decodeLockObtained(st *state.State, buf *wire.Buffer) error {
	src := state.VideoSourceKey(buf.U16(0))
	slot := st.Lock.Source[src]
	slot.SupportsLock = buf.Flag8(2, 0)
	st.Lock.Source[src] = slot
	return nil
}

// decodeRemoteStatus mirrors RXMS/RXCP/RXCC: the payload isn't decoded
// beyond the device-slot key and raw bytes, since its layout varies by
// remote device class (see SPEC_FULL.md §6.1).
func decodeRemoteStatus(st *state.State, buf *wire.Buffer) error {
	slot := buf.U8(0)
	raw := make([]byte, buf.Len())
	copy(raw, buf.Bytes())
	st.Remote.Status[slot] = state.RemoteStatus{Raw: raw}
	return nil
}

func decodeFileTransferData(st *state.State, buf *wire.Buffer) error {
	st.FileTransfer.Open = true
	return nil
}

func decodeFileTransferCont(st *state.State, buf *wire.Buffer) error {
	st.FileTransfer.Offset = buf.U32(0)
	return nil
}

func decodeFileTransferAck(st *state.State, buf *wire.Buffer) error {
	return nil
}

func decodeFileTransferStat(st *state.State, buf *wire.Buffer) error {
	st.FileTransfer.Open = false
	return nil
}

// decodeAudioExpansionBus, decodeAudioExpansionIn and decodeAudioExpansionOut
// mirror AEBP/_AEP/_AMP the same way decodeRemoteStatus mirrors
// RXMS/RXCP/RXCC: the Fairlight audio expansion descriptor layout isn't
// decoded beyond raw framing (see SPEC_FULL.md §6.1).
func decodeAudioExpansionBus(st *state.State, buf *wire.Buffer) error {
	raw := make([]byte, buf.Len())
	copy(raw, buf.Bytes())
	st.AudioExpansion.Bus = state.RemoteStatus{Raw: raw}
	return nil
}

func decodeAudioExpansionIn(st *state.State, buf *wire.Buffer) error {
	raw := make([]byte, buf.Len())
	copy(raw, buf.Bytes())
	st.AudioExpansion.In = state.RemoteStatus{Raw: raw}
	return nil
}

func decodeAudioExpansionOut(st *state.State, buf *wire.Buffer) error {
	raw := make([]byte, buf.Len())
	copy(raw, buf.Bytes())
	st.AudioExpansion.Out = state.RemoteStatus{Raw: raw}
	return nil
}
