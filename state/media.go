package state

import "github.com/go-atem/atemkit/protocol"

// MediaPlayerState mirrors one media player's clip-playback transport
// (RCPS) and its currently-selected source (MPCE).
type MediaPlayerState struct {
	SourceType protocol.MediaPlayerSourceType
	StillIndex uint8
	ClipIndex  uint8

	Playing     bool
	Loop        bool
	AtBeginning bool
	ClipFrame   uint16
}

// StillFile mirrors one still-bank slot (MPfe); only the first frame of a
// multi-frame MPfe sequence carries a file name, per the decoder's
// FrameIndex==0 guard in the original.
type StillFile struct {
	IsUsed   bool
	FileName string
}

// ClipSource mirrors one clip-bank slot's video (MPCS) and audio (MPAS)
// file assignment.
type ClipSource struct {
	IsUsed       bool
	FileName     string
	Frames       uint16
	AudioIsUsed  bool
	AudioFile    string
}

// MediaPoolState mirrors the media pool's storage-capacity report (MPSp)
// and its still/clip bank contents.
type MediaPoolState struct {
	Clip1MaxLength uint16
	Clip2MaxLength uint16

	Still [MaxStillBanks]StillFile
	Clip  [MaxClipBanks]ClipSource
}
