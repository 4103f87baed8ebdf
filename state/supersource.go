package state

import "github.com/go-atem/atemkit/protocol"

// SuperSourceBorder mirrors the SuperSource art's border geometry and
// bevel, decoded from the tail of SSrc.
type SuperSourceBorder struct {
	Enabled bool
	Bevel   protocol.BorderBevel

	Width      BorderWidth
	Softness   BorderSoftness
	Hue        float64
	Saturation float64
	Luma       float64
}

// SuperSourceState mirrors SSrc: the SuperSource art layer's own fill/key
// bus assignment and border, plus its box parameters from SSBP.
type SuperSourceState struct {
	FillSource VideoSourceKey
	KeySource  VideoSourceKey

	Foreground    bool
	PreMultiplied bool
	Clip, Gain    float64
	InvertKey     bool

	Border      SuperSourceBorder
	LightSource LightSource

	Box [MaxSuperSourceBoxes]SuperSourceBox
}

// SuperSourceCrop mirrors a box's four independent crop edges.
type SuperSourceCrop struct {
	Top, Bottom, Left, Right float64
}

// SuperSourceBox mirrors one SSBP record.
type SuperSourceBox struct {
	Enabled     bool
	InputSource VideoSourceKey
	Position    Position
	Size        float64
	Cropped     bool
	Crop        SuperSourceCrop
}
