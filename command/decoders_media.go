package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagClipPlayback, decodeClipPlayback)
	register(protocol.TagMediaPlayerState, decodeMediaPlayerState)
	register(protocol.TagMediaPlayerSplit, decodeMediaPoolSplit)
	register(protocol.TagMediaPoolClip, decodeMediaPoolClip)
	register(protocol.TagMediaPoolAudio, decodeMediaPoolAudio)
	register(protocol.TagMediaPoolFrame, decodeMediaPoolFrame)
}

// decodeClipPlayback mirrors RCPS, a clip player's transport status
// (playing/loop/at-beginning/frame), matching the original client's
// handler.
func decodeClipPlayback(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.MediaPlayer) {
		return nil
	}
	mp := &st.MediaPlayer[idx]
	mp.Playing = buf.Flag8(1, 0)
	mp.Loop = buf.Flag8(2, 0)
	mp.AtBeginning = buf.Flag8(3, 0)
	mp.ClipFrame = buf.U16(4)
	return nil
}

func decodeMediaPlayerState(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.MediaPlayer) {
		return nil
	}
	mp := &st.MediaPlayer[idx]
	mp.SourceType = protocol.MediaPlayerSourceType(buf.U8(1))
	mp.StillIndex = buf.U8(2)
	mp.ClipIndex = buf.U8(3)
	return nil
}

func decodeMediaPoolSplit(st *state.State, buf *wire.Buffer) error {
	st.MediaPool.Clip1MaxLength = buf.U16(0)
	st.MediaPool.Clip2MaxLength = buf.U16(2)
	return nil
}

func decodeMediaPoolClip(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.MediaPool.Clip) {
		return nil
	}
	c := &st.MediaPool.Clip[idx]
	c.IsUsed = buf.Flag8(1, 0)
	c.FileName = buf.String(2, 16)
	c.Frames = buf.U16(66)
	return nil
}

func decodeMediaPoolAudio(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.MediaPool.Clip) {
		return nil
	}
	c := &st.MediaPool.Clip[idx]
	c.AudioIsUsed = buf.Flag8(1, 0)
	c.AudioFile = buf.String(18, 16)
	return nil
}

// decodeMediaPoolFrame mirrors MPfe: only the packet whose leading byte
// is 0 carries a file name (subsequent frames of a multi-part name
// continuation do not), matching the original client's guard.
func decodeMediaPoolFrame(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(3)
	if int(idx) >= len(st.MediaPool.Still) {
		return nil
	}
	if buf.U8(0) != 0 {
		return nil
	}
	still := &st.MediaPool.Still[idx]
	still.IsUsed = buf.Flag8(4, 0)
	if nameLen := buf.U8(23); nameLen > 0 {
		still.FileName = buf.String(24, int(nameLen))
	}
	return nil
}
