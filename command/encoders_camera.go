package command

import (
	"github.com/go-atem/atemkit/protocol"
)

// cameraControlDataType identifies how CCmd's value bytes are encoded.
type cameraControlDataType uint8

const (
	cameraControlVoid    cameraControlDataType = 0x00
	cameraControlInt8    cameraControlDataType = 0x01
	cameraControlInt16   cameraControlDataType = 0x02
	cameraControlInt16x2 cameraControlDataType = 0x03
	cameraControlFixed   cameraControlDataType = 0x80 // 5.11 fixed-point
)

// cameraControl writes one CCmd sub-packet. Unlike the other outbound
// tags, CCmd sub-packets never merge by index — every call claims a
// fresh 24-byte slot, because the switcher keys camera control purely
// by (camera, domain, feature) at send time rather than by any
// index-match the bundler can detect ahead of the write.
func cameraControl(b *Bundler, camera, domain, feature uint8, dataType cameraControlDataType, redundancy uint8, redundancyOffset int, values []int16, valueOffset int) error {
	v, err := b.subFresh(protocol.OutCameraControl, fourKeys(uint16(camera), uint16(domain), uint16(feature), uint16(len(values))), 24)
	if err != nil {
		return err
	}
	v.SetU8(0, camera)
	v.SetU8(1, domain)
	v.SetU8(2, feature)
	v.SetU8(4, uint8(dataType))
	if redundancy != 0 {
		v.SetU8(redundancyOffset, redundancy)
	}
	for i, val := range values {
		v.SetS16(valueOffset+i*2, val)
	}
	return nil
}

// SetCameraControlIris writes CCmd for the lens iris (0-2048).
func SetCameraControlIris(b *Bundler, camera uint8, iris int16) error {
	return cameraControl(b, camera, 0, 3, cameraControlFixed, 1, 9, []int16{iris}, 16)
}

// SetCameraControlFocus writes CCmd for the lens focus (0-65535).
func SetCameraControlFocus(b *Bundler, camera uint8, focus int16) error {
	return cameraControl(b, camera, 0, 0, cameraControlFixed, 1, 9, []int16{focus}, 16)
}

// SetCameraControlAutoFocus writes CCmd to trigger a one-shot autofocus.
func SetCameraControlAutoFocus(b *Bundler, camera uint8) error {
	return cameraControl(b, camera, 0, 1, cameraControlVoid, 0, 0, nil, 0)
}

// SetCameraControlAutoIris writes CCmd to trigger a one-shot auto-iris.
func SetCameraControlAutoIris(b *Bundler, camera uint8) error {
	return cameraControl(b, camera, 0, 5, cameraControlVoid, 0, 0, nil, 0)
}

// SetCameraControlWhiteBalance writes CCmd for the color temperature, in
// Kelvin (3200/4500/5000/5600/6500/7500).
func SetCameraControlWhiteBalance(b *Bundler, camera uint8, whiteBalance int16) error {
	return cameraControl(b, camera, 1, 2, cameraControlInt16, 1, 9, []int16{whiteBalance}, 16)
}

// SetCameraControlSharpeningLevel writes CCmd for the detail/sharpening
// preset.
func SetCameraControlSharpeningLevel(b *Bundler, camera, level uint8) error {
	v, err := b.subFresh(protocol.OutCameraControl, fourKeys(uint16(camera), 1, 8, 0), 20)
	if err != nil {
		return err
	}
	v.SetU8(0, camera)
	v.SetU8(1, 1)
	v.SetU8(2, 8)
	v.SetU8(4, uint8(cameraControlInt8))
	v.SetU8(7, 0x01) // redundant byte kept for ATEM proxy compatibility
	v.SetU8(9, 0x01)
	v.SetU8(16, level)
	return nil
}

// SetCameraControlZoomNormalized writes CCmd for a 0.0-1.0 absolute zoom.
func SetCameraControlZoomNormalized(b *Bundler, camera uint8, zoomNormalized float64) error {
	return cameraControl(b, camera, 0, 8, cameraControlFixed, 1, 9, []int16{int16(zoomNormalized * 10)}, 16)
}

// SetCameraControlZoomSpeed writes CCmd for a continuous zoom rate
// (0.0-1.0, mapped to -2048..2048, so 0.5 is stationary).
func SetCameraControlZoomSpeed(b *Bundler, camera uint8, zoomSpeed float64) error {
	value := int16(protocol.MapValue(zoomSpeed, 0.0, 1.0, -2048, 2048))
	return cameraControl(b, camera, 0, 9, cameraControlFixed, 1, 9, []int16{value}, 16)
}

// SetCameraControlColorbars writes CCmd to enable test color bars for the
// given duration in seconds (0 disables them).
func SetCameraControlColorbars(b *Bundler, camera uint8, durationSeconds uint8) error {
	v, err := b.subFresh(protocol.OutCameraControl, fourKeys(uint16(camera), 4, 4, 0), 20)
	if err != nil {
		return err
	}
	v.SetU8(0, camera)
	v.SetU8(1, 4)
	v.SetU8(2, 4)
	v.SetU8(4, uint8(cameraControlInt8))
	v.SetU8(7, 0x01)
	v.SetU8(9, 0x01)
	v.SetU8(16, durationSeconds)
	return nil
}

// CameraRGBY carries the four per-channel values shared by Lift, Gamma,
// and ComponentGain — each channel -1.0-1.0 unless noted otherwise.
type CameraRGBY struct {
	R, G, B, Y float64
}

// SetCameraControlLift writes CCmd for lift (-1.0-1.0 per channel,
// mapped to -4096..4096).
func SetCameraControlLift(b *Bundler, camera uint8, f CameraRGBY) error {
	values := []int16{
		int16(protocol.MapValue(f.R, -1.0, 1.0, -4096, 4096)),
		int16(protocol.MapValue(f.G, -1.0, 1.0, -4096, 4096)),
		int16(protocol.MapValue(f.B, -1.0, 1.0, -4096, 4096)),
		int16(protocol.MapValue(f.Y, -1.0, 1.0, -4096, 4096)),
	}
	return cameraControl(b, camera, 8, 0, cameraControlFixed, 4, 9, values, 16)
}

// SetCameraControlGamma writes CCmd for gamma (-1.0-1.0 per channel,
// mapped to -8192..8192).
func SetCameraControlGamma(b *Bundler, camera uint8, f CameraRGBY) error {
	values := []int16{
		int16(protocol.MapValue(f.R, -1.0, 1.0, -8192, 8192)),
		int16(protocol.MapValue(f.G, -1.0, 1.0, -8192, 8192)),
		int16(protocol.MapValue(f.B, -1.0, 1.0, -8192, 8192)),
		int16(protocol.MapValue(f.Y, -1.0, 1.0, -8192, 8192)),
	}
	return cameraControl(b, camera, 8, 1, cameraControlFixed, 4, 9, values, 16)
}

// SetCameraControlGain writes CCmd for the master gain register
// (512=0dB, 1024=6dB, 2048=12dB, 4096=18dB).
func SetCameraControlGain(b *Bundler, camera uint8, gain int16) error {
	v, err := b.subFresh(protocol.OutCameraControl, fourKeys(uint16(camera), 1, 1, 0), 24)
	if err != nil {
		return err
	}
	v.SetU8(0, camera)
	v.SetU8(1, 1)
	v.SetU8(2, 1)
	v.SetU8(4, uint8(cameraControlInt8))
	v.SetU8(7, 0x01)
	v.SetU8(9, 0x01)
	v.SetS16(16, gain)
	return nil
}

// SetCameraControlComponentGain writes CCmd for per-channel gain
// (0.0-16.0 per channel, mapped to 0..32767).
func SetCameraControlComponentGain(b *Bundler, camera uint8, f CameraRGBY) error {
	values := []int16{
		int16(protocol.MapValue(f.R, 0.0, 16.0, 0, 32767)),
		int16(protocol.MapValue(f.G, 0.0, 16.0, 0, 32767)),
		int16(protocol.MapValue(f.B, 0.0, 16.0, 0, 32767)),
		int16(protocol.MapValue(f.Y, 0.0, 16.0, 0, 32767)),
	}
	return cameraControl(b, camera, 8, 2, cameraControlFixed, 4, 9, values, 16)
}

// SetCameraControlLumMix writes CCmd for the luminance mix (0.0-100.0%,
// mapped to 0..2048).
func SetCameraControlLumMix(b *Bundler, camera uint8, lumMix float64) error {
	value := int16(protocol.MapValue(lumMix, 0, 100, 0, 2048))
	return cameraControl(b, camera, 8, 5, cameraControlFixed, 1, 9, []int16{value}, 16)
}

// SetCameraControlResetAll writes CCmd to reset lift/gamma/gain/contrast/
// hue/saturation to their defaults.
func SetCameraControlResetAll(b *Bundler, camera uint8) error {
	return cameraControl(b, camera, 8, 7, cameraControlVoid, 0, 0, nil, 0)
}

// SetCameraControlShutter writes CCmd for the shutter speed, expressed
// as an exposure time in seconds (e.g. 1.0/50 for 1/50s).
func SetCameraControlShutter(b *Bundler, camera uint8, shutterSeconds float64) error {
	v, err := b.subFresh(protocol.OutCameraControl, fourKeys(uint16(camera), 1, 5, 0), 24)
	if err != nil {
		return err
	}
	v.SetU8(0, camera)
	v.SetU8(1, 1)
	v.SetU8(2, 5)
	v.SetU8(4, 0x03) // Data type: two packed int16 values
	v.SetU8(11, 0x01)
	v.SetS16(18, int16(shutterSeconds*1000000))
	return nil
}

// SetCameraControlContrast writes CCmd for contrast (0.0-100.0%, mapped
// to 0..4096, pivoted at the camera's fixed 0.5 midpoint).
func SetCameraControlContrast(b *Bundler, camera uint8, contrast float64) error {
	value := int16(protocol.MapValue(contrast, 0, 100, 0, 4096))
	v, err := b.subFresh(protocol.OutCameraControl, fourKeys(uint16(camera), 8, 4, 0), 24)
	if err != nil {
		return err
	}
	v.SetU8(0, camera)
	v.SetU8(1, 8)
	v.SetU8(2, 4)
	v.SetU8(4, uint8(cameraControlFixed))
	v.SetU8(9, 0x02)
	v.SetU8(16, 4) // pivot = 0.5, fixed-point 1024
	v.SetU8(17, 0)
	v.SetS16(18, value)
	return nil
}

// SetCameraControlHueSaturation writes CCmd for hue (0.0-359.9 degrees,
// mapped to -2048..2048) and saturation (0.0-100.0%, mapped to
// 0..4096) together — the switcher only accepts this pair jointly.
func SetCameraControlHueSaturation(b *Bundler, camera uint8, hue, saturation float64) error {
	hueVal := int16(protocol.MapValue(hue, 0, 360, -2048, 2048))
	satVal := int16(protocol.MapValue(saturation, 0, 100, 0, 4096))
	return cameraControl(b, camera, 8, 6, cameraControlFixed, 2, 9, []int16{hueVal, satVal}, 16)
}
