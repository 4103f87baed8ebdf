// Package state is the typed mirror of switcher state (component E). It
// is a fixed tree: leaves are primitive values, interior nodes are
// fixed-size arrays indexed by protocol code-point for dense ranges and
// maps for sparse ones (special inputs, audio sources, locks, remote
// devices, tally by source), per SPEC_FULL.md's Design Notes. The mirror is created empty by New,
// mutated only by the decoders in package command, and read freely by
// callers as an eventually-consistent snapshot — no field here is ever
// locked, because the session engine is documented as the mirror's sole
// writer (spec.md §5).
package state

import "github.com/go-atem/atemkit/protocol"

// Upper bounds on the protocol's fixed-size collections. These match the
// largest configuration any known switcher model reports through the
// topology tags (_top, _MeC, _mpl, _MvC, _SSC, _TlC, _AMC, _MAC); a given
// switcher's live Topology fields say how much of each array is actually
// meaningful.
const (
	MaxMixEffects       = 4
	MaxKeyersPerME      = 4
	MaxDSKs             = 2
	MaxAuxChannels      = 6
	MaxMediaPlayers     = 4
	MaxStillBanks       = 20
	MaxClipBanks        = 2
	MaxMultiViewers     = 2
	MaxWindowsPerMV     = 10
	MaxColorGenerators  = 2
	MaxSuperSourceBoxes = 4
	MaxMacros           = 100
	MaxAudioInputs      = 20
	MaxPhysicalInputs   = 40
	MaxCameras          = 20
)

// Topology describes how many of each resource this switcher model has;
// it is populated from _top and the related _MeC/_mpl/_MvC/_SSC/_TlC/_AMC/
// _MAC tags.
type Topology struct {
	MixEffects       uint8
	Sources          uint8
	ColorGenerators  uint8
	AuxBusses        uint8
	DownstreamKeyers uint8
	Stingers         uint8
	DVEs             uint8
	SuperSources     uint8
	HasSDOutput      bool

	KeyersPerME [MaxMixEffects]uint8

	MediaPlayerStillBanks uint8
	MediaPlayerClipBanks  uint8

	MultiViewers uint8

	SuperSourceBoxes uint8

	TallyChannels uint8

	AudioChannels   uint8
	HasAudioMonitor bool

	MacroBanks uint8
}

// ProtocolVersion is the switcher's reported control-protocol version.
type ProtocolVersion struct {
	Major uint16
	Minor uint16
}

// Power mirrors the switcher's PSU status.
type Power struct {
	Main   bool
	Backup bool
}

// VideoModeCaps is the set of output video standards this switcher
// supports, decoded from the 24-bit flag field in _VMC.
type VideoModeCaps struct {
	F525i5994NTSC    bool
	F625i50PAL       bool
	F525i5994NTSC169 bool
	F625i50PAL169    bool
	F720p50          bool
	F720p5994        bool
	F1080i50         bool
	F1080i5994       bool
	F1080p2398       bool
	F1080p24         bool
	F1080p25         bool
	F1080p2997       bool
	F1080p50         bool
	F1080p5994       bool
	F2160p2398       bool
	F2160p24         bool
	F2160p25         bool
	F2160p2997       bool
}

// TimeCode is the switcher's current internal clock, from Time.
type TimeCode struct {
	Hours, Minutes, Seconds, Frames uint8
	DropFrame                       bool
}

// VideoSourceKey is the raw protocol code-point for a video source, used
// wherever a source must be keyed generically rather than through the
// topology-bounded arrays.
type VideoSourceKey uint16

// State is the root of the switcher state mirror.
type State struct {
	ProtocolVersion ProtocolVersion
	ProductModel    string
	WarningText     string

	Topology      Topology
	VideoModeCaps VideoModeCaps
	Power         Power
	DownConverter protocol.DownConverterMode
	VideoMode     protocol.VideoModeFormat
	TimeCode      TimeCode

	Input [MaxPhysicalInputs + 1]InputProperties // index 0 unused

	// SpecialInputs holds properties for non-physical sources (color
	// generators, media players, super source, aux feedback, ...), which
	// are sparse over a very large code-point range; a map trades the
	// array-per-code-point convention for avoiding tens of thousands of
	// unused slots, the same trade-off package protocol makes for its
	// video/audio source name tables.
	SpecialInputs map[VideoSourceKey]InputProperties

	MultiViewer [MaxMultiViewers]MultiViewerState

	MixEffect [MaxMixEffects]MixEffectState

	DSK [MaxDSKs]DSKState

	FadeToBlack [MaxMixEffects]FadeToBlackState

	ColorGenerator [MaxColorGenerators]ColorGeneratorState

	AuxSource [MaxAuxChannels]VideoSourceKey

	SuperSource SuperSourceState

	MediaPlayer [MaxMediaPlayers]MediaPlayerState
	MediaPool   MediaPoolState

	Macro MacroPoolState

	AudioMixer AudioMixerState

	Tally TallyState

	Camera         [MaxCameras]CameraControlState
	Lock           LockState
	Remote         RemoteDeviceState
	FileTransfer   FileTransferState
	AudioExpansion AudioExpansionState
}

// New returns an empty state mirror ready to be populated by decoders.
func New() *State {
	return &State{
		SpecialInputs: make(map[VideoSourceKey]InputProperties),
		Lock:          LockState{Source: make(map[VideoSourceKey]LockSlot)},
		Remote:        RemoteDeviceState{Status: make(map[uint8]RemoteStatus)},
		AudioMixer: AudioMixerState{
			Input: make(map[protocol.AudioSource]AudioInputStrip),
			Levels: AudioLevels{
				Sources: make(map[protocol.AudioSource]AudioSourceLevel),
			},
			Tally: AudioTally{
				Sources: make(map[protocol.AudioSource]AudioSourceTally),
			},
		},
		Tally: TallyState{
			BySource: TallyBySource{Flags: make(map[VideoSourceKey]TallyFlags)},
		},
	}
}
