package state

import "github.com/go-atem/atemkit/protocol"

// AudioInputStrip mirrors one AMIP record: an audio source's mixer-facing
// configuration.
type AudioInputStrip struct {
	Type           protocol.AudioMixerInputType
	FromMediaPlayer bool
	PlugType       protocol.AudioMixerInputPlugType
	MixOption      protocol.AudioMixerInputMixOption
	Volume         float64 // dB, via protocol.AudioWordToDB
	Balance        float64
}

// AudioMaster mirrors AMMO.
type AudioMaster struct {
	Volume float64 // dB
}

// AudioMonitor mirrors AMmO.
type AudioMonitor struct {
	MonitorAudio bool
	Volume       float64 // dB
	Mute         bool
	Solo         bool
	SoloInput    protocol.AudioSource
	Dim          bool
}

// StereoLevel mirrors a left/right VU pair, used for both instantaneous
// and peak-hold readings in AMLv.
type StereoLevel struct {
	Left, Right uint16
}

// AudioSourceLevel mirrors one source's entry in AMLv.
type AudioSourceLevel struct {
	StereoLevel
	Peak StereoLevel
}

// AudioLevels mirrors AMLv, the streaming VU meter tag. NumSources records
// how many of Sources were populated by the last AMLv packet; the tag's
// payload length varies with it (see SPEC_FULL.md's AMLv note), so callers
// should range only up to NumSources.
type AudioLevels struct {
	NumSources int

	Master      StereoLevel
	MasterPeak  StereoLevel
	Monitor     uint16

	Sources map[protocol.AudioSource]AudioSourceLevel
}

// AudioSourceTally mirrors one source's entry in AMTl.
type AudioSourceTally struct {
	IsMixedIn bool
}

// AudioTally mirrors AMTl.
type AudioTally struct {
	NumSources int
	Sources    map[protocol.AudioSource]AudioSourceTally
}

// AudioMixerState mirrors the audio mixer: per-input strips, the master
// and monitor busses, and the two live-metering tags.
type AudioMixerState struct {
	Input map[protocol.AudioSource]AudioInputStrip

	Master  AudioMaster
	Monitor AudioMonitor

	Levels AudioLevels
	Tally  AudioTally
}
