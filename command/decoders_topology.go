package command

import (
	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func init() {
	register(protocol.TagProtocolVersion, decodeProtocolVersion)
	register(protocol.TagProductID, decodeProductID)
	register(protocol.TagWarning, decodeWarning)
	register(protocol.TagTopology, decodeTopology)
	register(protocol.TagMixEffectConfig, decodeMixEffectConfig)
	register(protocol.TagMediaPlayerCount, decodeMediaPlayerCount)
	register(protocol.TagMultiViewerCount, decodeMultiViewerCount)
	register(protocol.TagSuperSourceCount, decodeSuperSourceCount)
	register(protocol.TagTallyCount, decodeTallyCount)
	register(protocol.TagAudioMixerCount, decodeAudioMixerCount)
	register(protocol.TagVideoModeCaps, decodeVideoModeCaps)
	register(protocol.TagMacroPoolCount, decodeMacroPoolCount)
	register(protocol.TagPower, decodePower)
	register(protocol.TagDownConvert, decodeDownConvert)
	register(protocol.TagVideoMode, decodeVideoMode)
	register(protocol.TagInputProperties, decodeInputProperties)
	register(protocol.TagMultiViewerProps, decodeMultiViewerProps)
	register(protocol.TagMultiViewerInput, decodeMultiViewerInput)
	register(protocol.TagTimeCode, decodeTimeCode)
}

func decodeProtocolVersion(st *state.State, buf *wire.Buffer) error {
	st.ProtocolVersion.Major = buf.U16(0)
	st.ProtocolVersion.Minor = buf.U16(2)
	return nil
}

func decodeProductID(st *state.State, buf *wire.Buffer) error {
	st.ProductModel = buf.String(0, 44)
	return nil
}

func decodeWarning(st *state.State, buf *wire.Buffer) error {
	st.WarningText = buf.String(0, 44)
	return nil
}

func decodeTopology(st *state.State, buf *wire.Buffer) error {
	t := &st.Topology
	t.MixEffects = buf.U8(0)
	t.Sources = buf.U8(1)
	t.ColorGenerators = buf.U8(2)
	t.AuxBusses = buf.U8(3)
	t.DownstreamKeyers = buf.U8(4)
	t.Stingers = buf.U8(5)
	t.DVEs = buf.U8(6)
	t.SuperSources = buf.U8(7)
	t.HasSDOutput = buf.Flag8(9, 0)
	return nil
}

func decodeMixEffectConfig(st *state.State, buf *wire.Buffer) error {
	me := buf.U8(0)
	if int(me) >= len(st.Topology.KeyersPerME) {
		return nil
	}
	st.Topology.KeyersPerME[me] = buf.U8(1)
	return nil
}

func decodeMediaPlayerCount(st *state.State, buf *wire.Buffer) error {
	st.Topology.MediaPlayerStillBanks = buf.U8(0)
	st.Topology.MediaPlayerClipBanks = buf.U8(1)
	return nil
}

func decodeMultiViewerCount(st *state.State, buf *wire.Buffer) error {
	st.Topology.MultiViewers = buf.U8(0)
	return nil
}

func decodeSuperSourceCount(st *state.State, buf *wire.Buffer) error {
	st.Topology.SuperSourceBoxes = buf.U8(0)
	return nil
}

func decodeTallyCount(st *state.State, buf *wire.Buffer) error {
	st.Topology.TallyChannels = buf.U8(4)
	return nil
}

func decodeAudioMixerCount(st *state.State, buf *wire.Buffer) error {
	st.Topology.AudioChannels = buf.U8(0)
	st.Topology.HasAudioMonitor = buf.Flag8(1, 0)
	return nil
}

func decodeVideoModeCaps(st *state.State, buf *wire.Buffer) error {
	flags := buf.U32(0) & 0x00FFFFFF
	c := &st.VideoModeCaps
	c.F525i5994NTSC = protocol.BoolBit(flags, 0)
	c.F625i50PAL = protocol.BoolBit(flags, 1)
	c.F525i5994NTSC169 = protocol.BoolBit(flags, 2)
	c.F625i50PAL169 = protocol.BoolBit(flags, 3)
	c.F720p50 = protocol.BoolBit(flags, 4)
	c.F720p5994 = protocol.BoolBit(flags, 5)
	c.F1080i50 = protocol.BoolBit(flags, 6)
	c.F1080i5994 = protocol.BoolBit(flags, 7)
	c.F1080p2398 = protocol.BoolBit(flags, 8)
	c.F1080p24 = protocol.BoolBit(flags, 9)
	c.F1080p25 = protocol.BoolBit(flags, 10)
	c.F1080p2997 = protocol.BoolBit(flags, 11)
	c.F1080p50 = protocol.BoolBit(flags, 12)
	c.F1080p5994 = protocol.BoolBit(flags, 13)
	c.F2160p2398 = protocol.BoolBit(flags, 14)
	c.F2160p24 = protocol.BoolBit(flags, 15)
	c.F2160p25 = protocol.BoolBit(flags, 16)
	c.F2160p2997 = protocol.BoolBit(flags, 17)
	return nil
}

func decodeMacroPoolCount(st *state.State, buf *wire.Buffer) error {
	st.Topology.MacroBanks = buf.U8(0)
	return nil
}

func decodePower(st *state.State, buf *wire.Buffer) error {
	st.Power.Main = buf.Flag8(0, 0)
	st.Power.Backup = buf.Flag8(0, 1)
	return nil
}

func decodeDownConvert(st *state.State, buf *wire.Buffer) error {
	st.DownConverter = protocol.DownConverterMode(buf.U8(0))
	return nil
}

func decodeVideoMode(st *state.State, buf *wire.Buffer) error {
	st.VideoMode = protocol.VideoModeFormat(buf.U8(0))
	return nil
}

func decodeInputProperties(st *state.State, buf *wire.Buffer) error {
	src := enumSource(buf, 0)

	var props state.InputProperties
	if src >= 1 && int(src) <= state.MaxPhysicalInputs {
		props = st.Input[src]
	} else {
		props = st.SpecialInputs[src]
	}

	props.LongName = buf.String(2, 20)
	props.ShortName = buf.String(22, 4)

	props.AvailableExternalPortTypes.SDI = buf.Flag8(27, 0)
	props.AvailableExternalPortTypes.HDMI = buf.Flag8(27, 1)
	props.AvailableExternalPortTypes.Component = buf.Flag8(27, 2)
	props.AvailableExternalPortTypes.Composite = buf.Flag8(27, 3)
	props.AvailableExternalPortTypes.SVideo = buf.Flag8(27, 4)

	props.ExternalPortType = protocol.ExternalPortType(buf.U8(29))
	props.PortType = protocol.SwitcherPortType(buf.U8(30))

	props.Availability.Auxiliary = buf.Flag8(34, 0)
	props.Availability.Multiviewer = buf.Flag8(34, 1)
	props.Availability.SuperSourceArt = buf.Flag8(34, 2)
	props.Availability.SuperSourceBox = buf.Flag8(34, 3)
	props.Availability.KeySourcesEverywhere = buf.Flag8(34, 4)

	props.MEAvailability.ME1FillSources = buf.Flag8(35, 0)
	props.MEAvailability.ME2FillSources = buf.Flag8(35, 1)

	if src >= 1 && int(src) <= state.MaxPhysicalInputs {
		st.Input[src] = props
	} else {
		st.SpecialInputs[src] = props
	}
	return nil
}

func decodeMultiViewerProps(st *state.State, buf *wire.Buffer) error {
	mv := buf.U8(0)
	if int(mv) >= len(st.MultiViewer) {
		return nil
	}
	st.MultiViewer[mv].Layout = protocol.MultiViewerLayout(buf.U8(1))
	return nil
}

func decodeMultiViewerInput(st *state.State, buf *wire.Buffer) error {
	mv := buf.U8(0)
	win := buf.U8(1)
	if int(mv) >= len(st.MultiViewer) || int(win) >= len(st.MultiViewer[mv].Window) {
		return nil
	}
	st.MultiViewer[mv].Window[win].VideoSource = enumSource(buf, 2)
	return nil
}

func decodeTimeCode(st *state.State, buf *wire.Buffer) error {
	st.TimeCode.Hours = buf.U8(0)
	st.TimeCode.Minutes = buf.U8(1)
	st.TimeCode.Seconds = buf.U8(2)
	st.TimeCode.Frames = buf.U8(3)
	return nil
}
