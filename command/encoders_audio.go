package command

import (
	"github.com/go-atem/atemkit/protocol"
)

// AudioMixerInput carries CAMI's optional fields for one audio source.
type AudioMixerInput struct {
	MixOption *protocol.AudioMixerInputMixOption
	VolumeDB  *float64 // via protocol.AudioDBToWord
	Balance   *float64 // -1.0-1.0
}

// SetAudioMixerInput writes CAMI.
func SetAudioMixerInput(b *Bundler, src protocol.AudioSource, f AudioMixerInput) error {
	v, err := b.sub(protocol.OutAudioMixerInput, oneKey(uint16(src)), 12)
	if err != nil {
		return err
	}
	v.SetU16(2, uint16(src))
	if f.MixOption != nil {
		v.SetFlag8(0, 0)
		v.SetU8(4, uint8(*f.MixOption))
	}
	if f.VolumeDB != nil {
		v.SetFlag8(0, 1)
		v.SetU16(6, protocol.AudioDBToWord(*f.VolumeDB))
	}
	if f.Balance != nil {
		v.SetFlag8(0, 2)
		v.SetS16(8, int16(*f.Balance*10000))
	}
	return nil
}

// SetAudioMixerMasterVolume writes CAMM.
func SetAudioMixerMasterVolume(b *Bundler, db float64) error {
	v, err := b.sub(protocol.OutAudioMixerMaster, [4]uint16{}, 8)
	if err != nil {
		return err
	}
	v.SetFlag8(0, 0)
	v.SetU16(2, protocol.AudioDBToWord(db))
	return nil
}

// AudioMixerMonitor carries CAMm's optional fields for the engineering
// headphone/speaker monitor output.
type AudioMixerMonitor struct {
	MonitorAudio *bool
	VolumeDB     *float64
	Mute         *bool
	Solo         *bool
	SoloInput    *protocol.AudioSource
	Dim          *bool
}

// SetAudioMixerMonitor writes CAMm.
func SetAudioMixerMonitor(b *Bundler, f AudioMixerMonitor) error {
	v, err := b.sub(protocol.OutAudioMixerMonitor, [4]uint16{}, 12)
	if err != nil {
		return err
	}
	if f.MonitorAudio != nil {
		v.SetFlag8(0, 0)
		v.SetU8(1, boolByte(*f.MonitorAudio))
	}
	if f.VolumeDB != nil {
		v.SetFlag8(0, 1)
		v.SetU16(2, protocol.AudioDBToWord(*f.VolumeDB))
	}
	if f.Mute != nil {
		v.SetFlag8(0, 2)
		v.SetU8(4, boolByte(*f.Mute))
	}
	if f.Solo != nil {
		v.SetFlag8(0, 3)
		v.SetU8(5, boolByte(*f.Solo))
	}
	if f.SoloInput != nil {
		v.SetFlag8(0, 4)
		v.SetU16(6, uint16(*f.SoloInput))
	}
	if f.Dim != nil {
		v.SetFlag8(0, 5)
		v.SetU8(8, boolByte(*f.Dim))
	}
	return nil
}

// SetAudioLevelsEnable writes SALN, turning the streaming AMLv VU-meter
// tag on or off.
func SetAudioLevelsEnable(b *Bundler, enable bool) error {
	v, err := b.sub(protocol.OutAudioLevelsEnable, [4]uint16{}, 4)
	if err != nil {
		return err
	}
	v.SetU8(0, boolByte(enable))
	return nil
}

// ResetAudioMixerPeaks carries RAMP's two independent reset triggers: a
// single input source's peak, or the master peak. The original exposes
// them as two separate calls that both write the same sub-packet shape;
// this client keeps them as one call so both can be requested together.
type ResetAudioMixerPeaks struct {
	InputSource *protocol.AudioSource
	Master      *bool
}

// SetResetAudioMixerPeaks writes RAMP.
func SetResetAudioMixerPeaks(b *Bundler, f ResetAudioMixerPeaks) error {
	v, err := b.sub(protocol.OutAudioRamp, [4]uint16{}, 8)
	if err != nil {
		return err
	}
	if f.InputSource != nil {
		v.SetFlag8(0, 1)
		v.SetU16(2, uint16(*f.InputSource))
	}
	if f.Master != nil {
		v.SetFlag8(0, 2)
		v.SetU8(4, boolByte(*f.Master))
	}
	return nil
}
