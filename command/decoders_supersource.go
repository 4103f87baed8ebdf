package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagSuperSourceProps, decodeSuperSourceProps)
	register(protocol.TagSuperSourceBox, decodeSuperSourceBox)
}

func decodeSuperSourceProps(st *state.State, buf *wire.Buffer) error {
	s := &st.SuperSource
	s.FillSource = enumSource(buf, 0)
	s.KeySource = enumSource(buf, 2)
	s.Foreground = buf.Flag8(4, 0)
	s.PreMultiplied = buf.Flag8(5, 0)
	s.Clip = buf.Float16(6, 10)
	s.Gain = buf.Float16(8, 10)
	s.InvertKey = buf.Flag8(10, 0)

	b := &s.Border
	b.Enabled = buf.Flag8(11, 0)
	b.Bevel = protocol.BorderBevel(buf.U8(12))
	b.Width.Outer = buf.Float16(14, 100)
	b.Width.Inner = buf.Float16(16, 100)
	b.Softness.Outer = float64(buf.U8(18))
	b.Softness.Inner = float64(buf.U8(19))
	b.Softness.Bevel = buf.Float8(20, 100)
	b.Hue = buf.Float16(22, 10)
	b.Saturation = buf.Float16(24, 10)
	b.Luma = buf.Float16(26, 10)

	s.LightSource.Direction = buf.Float16(28, 10)
	s.LightSource.Altitude = buf.U8(30)
	return nil
}

func decodeSuperSourceBox(st *state.State, buf *wire.Buffer) error {
	idx := buf.U8(3)
	if int(idx) >= len(st.SuperSource.Box) {
		return nil
	}
	b := &st.SuperSource.Box[idx]
	b.Enabled = buf.Flag8(1, 0)
	b.InputSource = enumSource(buf, 2)
	b.Position.X = buf.SignedFloat16(4, 100)
	b.Position.Y = buf.SignedFloat16(6, 100)
	b.Size = buf.Float16(8, 100)
	b.Cropped = buf.Flag8(10, 0)
	b.Crop.Top = buf.Float16(12, 1000)
	b.Crop.Bottom = buf.Float16(14, 1000)
	b.Crop.Left = buf.Float16(16, 1000)
	b.Crop.Right = buf.Float16(18, 1000)
	return nil
}
