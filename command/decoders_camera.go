package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagCameraControl, decodeCameraControl)
}

// Camera control adjustment domains (undocumented outside CCdP's own
// payload layout; named here after the original client's constants).
const (
	ccDomainLens      = 0
	ccDomainCamera    = 1
	ccDomainColorBars = 4
	ccDomainChip      = 8
)

const (
	ccLensFocus          = 0
	ccLensIris           = 3
	ccLensZoomNormalized = 8
	ccLensZoom           = 9

	ccCameraGain         = 1
	ccCameraWhiteBalance = 2
	ccCameraShutter      = 5
	ccCameraDetail       = 8

	ccColorBars = 4

	ccChipLift          = 0
	ccChipGamma         = 1
	ccChipGain          = 2
	ccChipContrast      = 4
	ccChipLumMix        = 5
	ccChipHueSaturation = 6
)

// decodeCameraControl mirrors CCdP: camera index, then an adjustment
// domain and a feature selector that together pick which of the flat
// fields at offset 16+ this packet carries. Only one feature is ever
// populated per packet.
func decodeCameraControl(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(0)
	if int(idx) >= len(st.Camera) {
		return nil
	}
	c := &st.Camera[idx]

	domain := buf.U8(1)
	feature := buf.U8(2)

	switch domain {
	case ccDomainLens:
		switch feature {
		case ccLensIris:
			c.Iris = buf.S16(16)
		case ccLensFocus:
			c.Focus = buf.S16(16)
		case ccLensZoomNormalized:
			c.Zoom.Normalized = buf.SignedFloat16(16, 10)
		case ccLensZoom:
			c.Zoom.Speed = protocol.MapValue(float64(buf.S16(16)), -2048, 2048, 0.0, 1.0)
		}

	case ccDomainCamera:
		switch feature {
		case ccCameraGain:
			c.GainValue = buf.S16(16)
		case ccCameraWhiteBalance:
			c.WhiteBalance = buf.S16(16)
		case ccCameraShutter:
			c.Shutter = buf.SignedFloat16(18, 1000000)
		case ccCameraDetail:
			c.SharpeningLevel = buf.S16(16)
		}

	case ccDomainColorBars:
		if feature == ccColorBars {
			c.ColorBars = buf.S16(16)
		}

	case ccDomainChip:
		switch feature {
		case ccChipLift:
			c.Lift.R = protocol.MapValue(float64(buf.S16(16)), -4096, 4096, -1.0, 1.0)
			c.Lift.G = protocol.MapValue(float64(buf.S16(18)), -4096, 4096, -1.0, 1.0)
			c.Lift.B = protocol.MapValue(float64(buf.S16(20)), -4096, 4096, -1.0, 1.0)
			c.Lift.Y = protocol.MapValue(float64(buf.S16(22)), -4096, 4096, -1.0, 1.0)
		case ccChipGamma:
			c.Gamma.R = protocol.MapValue(float64(buf.S16(16)), -8192, 8192, -1.0, 1.0)
			c.Gamma.G = protocol.MapValue(float64(buf.S16(18)), -8192, 8192, -1.0, 1.0)
			c.Gamma.B = protocol.MapValue(float64(buf.S16(20)), -8192, 8192, -1.0, 1.0)
			c.Gamma.Y = protocol.MapValue(float64(buf.S16(22)), -8192, 8192, -1.0, 1.0)
		case ccChipGain:
			c.Gain.R = protocol.MapValue(float64(buf.S16(16)), 0, 32767, 0.0, 16.0)
			c.Gain.G = protocol.MapValue(float64(buf.S16(18)), 0, 32767, 0.0, 16.0)
			c.Gain.B = protocol.MapValue(float64(buf.S16(20)), 0, 32767, 0.0, 16.0)
			c.Gain.Y = protocol.MapValue(float64(buf.S16(22)), 0, 32767, 0.0, 16.0)
		case ccChipContrast:
			c.Contrast = buf.S16(18)
		case ccChipLumMix:
			c.LumaMix = protocol.MapValue(float64(buf.S16(16)), 0, 2048, 0, 100)
		case ccChipHueSaturation:
			c.Hue = protocol.MapValue(float64(buf.S16(16)), -2048, 2048, 0, 360)
			c.Saturation = protocol.MapValue(float64(buf.S16(18)), 0, 4096, 0, 100)
		}
	}
	return nil
}
