package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagAudioMixerInput, decodeAudioMixerInput)
	register(protocol.TagAudioMixerMaster, decodeAudioMixerMaster)
	register(protocol.TagAudioMixerMonitor, decodeAudioMixerMonitor)
	register(protocol.TagAudioMixerTally, decodeAudioMixerTally)
	register(protocol.TagAudioMixerLevels, decodeAudioMixerLevels)
}

func decodeAudioMixerInput(st *state.State, buf *wire.Buffer) error {
	src := protocol.AudioSource(buf.U16(0))
	strip := st.AudioMixer.Input[src]
	strip.Type = protocol.AudioMixerInputType(buf.U8(2))
	strip.FromMediaPlayer = buf.Flag8(6, 0)
	strip.PlugType = protocol.AudioMixerInputPlugType(buf.U8(7))
	strip.MixOption = protocol.AudioMixerInputMixOption(buf.U8(8))
	strip.Volume = protocol.AudioWordToDB(buf.U16(10))
	strip.Balance = buf.SignedFloat16(12, 10000)
	st.AudioMixer.Input[src] = strip
	return nil
}

func decodeAudioMixerMaster(st *state.State, buf *wire.Buffer) error {
	st.AudioMixer.Master.Volume = protocol.AudioWordToDB(buf.U16(0))
	return nil
}

func decodeAudioMixerMonitor(st *state.State, buf *wire.Buffer) error {
	m := &st.AudioMixer.Monitor
	m.MonitorAudio = buf.Flag8(0, 0)
	m.Volume = protocol.AudioWordToDB(buf.U16(2))
	m.Mute = buf.Flag8(4, 0)
	m.Solo = buf.Flag8(5, 0)
	m.SoloInput = protocol.AudioSource(buf.U16(6))
	m.Dim = buf.Flag8(8, 0)
	return nil
}

// decodeAudioMixerTally mirrors AMTl: a variable-length list of (source,
// isMixedIn) triples, the count given by the leading u16. Every listed
// source is recorded as-is; neither the count nor the source codes are
// checked against the protocol's known source table.
func decodeAudioMixerTally(st *state.State, buf *wire.Buffer) error {
	n := int(buf.U16(0))
	st.AudioMixer.Tally.NumSources = n
	for i := 0; i < n; i++ {
		offset := 2 + 3*i
		src := protocol.AudioSource(buf.U16(offset))
		tally := st.AudioMixer.Tally.Sources[src]
		tally.IsMixedIn = buf.Flag8(offset+2, 0)
		st.AudioMixer.Tally.Sources[src] = tally
	}
	return nil
}

// decodeAudioMixerLevels mirrors AMLv, the streaming VU meter tag. Its
// wire layout is the one part of the original client's own command table
// its author flagged as uncertain (several field widths are marked "(?)"
// in the original source); this decoder keeps the original's relative
// offsets translated into one flat buffer, rather than resolving the
// ambiguity by guessing a cleaner layout.
func decodeAudioMixerLevels(st *state.State, buf *wire.Buffer) error {
	n := int(buf.U16(0))
	lv := &st.AudioMixer.Levels
	lv.NumSources = n

	lv.Master.Left = buf.U16(5)
	lv.Master.Right = buf.U16(9)
	lv.MasterPeak.Left = buf.U16(13)
	lv.MasterPeak.Right = buf.U16(17)
	lv.Monitor = buf.U16(21)

	sourcesOffset := 36
	sourcesBytes := n * 2
	if n&1 != 0 {
		sourcesBytes += 2
	}
	recordsOffset := sourcesOffset + sourcesBytes

	for i := 0; i < n; i++ {
		src := protocol.AudioSource(buf.U16(sourcesOffset + 2*i))
		record := recordsOffset + 16*i
		level := state.AudioSourceLevel{
			StereoLevel: state.StereoLevel{
				Left:  buf.U16(record + 1),
				Right: buf.U16(record + 5),
			},
			Peak: state.StereoLevel{
				Left:  buf.U16(record + 9),
				Right: buf.U16(record + 13),
			},
		}
		lv.Sources[src] = level
	}
	return nil
}
