package state

import "github.com/go-atem/atemkit/protocol"

// Position is a normalized x/y pair used by wipe, DVE transitions, and DVE
// keyer geometry.
type Position struct {
	X, Y float64
}

// BorderWidth mirrors a border's independently-adjustable outer and inner
// widths.
type BorderWidth struct {
	Outer float64
	Inner float64
}

// BorderSoftness mirrors a border's outer, inner, and bevel softness.
type BorderSoftness struct {
	Outer float64
	Inner float64
	Bevel float64
}

// LightSource mirrors a DVE border's simulated lighting angle.
type LightSource struct {
	Direction float64
	Altitude  uint8
}

// MixTransition mirrors TMxP, the mix-style transition's sole parameter.
type MixTransition struct {
	Rate uint8
}

// DipTransition mirrors TDpP.
type DipTransition struct {
	Rate   uint8
	Source VideoSourceKey
}

// WipeTransition mirrors TWpP.
type WipeTransition struct {
	Rate      uint8
	Pattern   protocol.PatternStyle
	Width     float64
	Source    VideoSourceKey
	Symmetry  float64
	Softness  float64
	Position  Position
	ReverseDirection bool
	FlipFlop  bool
}

// DVETransition mirrors TDvP.
type DVETransition struct {
	Rate          uint8
	Style         protocol.DVETransitionStyle
	FillSource    VideoSourceKey
	KeySource     VideoSourceKey
	EnableKey     bool
	PreMultiplied bool
	Clip          float64
	Gain          float64
	InvertKey     bool
	ReverseDirection bool
	FlipFlop      bool
}

// StingerTransition mirrors TStP.
type StingerTransition struct {
	Source               protocol.MediaPlayerSourceType
	PreMultiplied         bool
	Clip                  float64
	Gain                  float64
	InvertKey             bool
	PreRoll               uint16
	ClipDuration          uint16
	TriggerPoint          uint16
	MixRate               uint16
}

// TransitionInclusion mirrors which bus and keyers a transition covers:
// bit 0 is the background, bits 1..4 are keyers 1..4.
type TransitionInclusion struct {
	Background bool
	Keyer      [MaxKeyersPerME]bool
}

// TransitionSelection mirrors TrSS: the style and inclusion set armed for
// the next transition, and the style/inclusion set queued after that one
// (the wire record carries both in the same packet).
type TransitionSelection struct {
	Style     protocol.TransitionStyle
	Next      TransitionInclusion
	NextStyle protocol.TransitionStyle
	AfterNext TransitionInclusion
}

// TransitionPreview mirrors TrPr.
type TransitionPreview struct {
	Enabled bool
}

// TransitionPosition mirrors TrPs, the live position of a manual
// transition. Position is the raw 0..~10000 handle reading the protocol
// sends; the original source does not rescale it and neither do we.
type TransitionPosition struct {
	InTransition    bool
	FramesRemaining uint8
	Position        uint16
}

// Transition is one mix effect's transition engine: which style is next,
// its per-style parameters, and the live position while one is underway.
type Transition struct {
	Selection TransitionSelection
	Preview   TransitionPreview
	Position  TransitionPosition

	Mix     MixTransition
	Dip     DipTransition
	Wipe    WipeTransition
	DVE     DVETransition
	Stinger StingerTransition
}

// KeyFrame mirrors one of a flying key's stored key frames (KKFP), indexed
// by protocol.KeyFrame.
type KeyFrame struct {
	Size     struct{ X, Y float64 }
	Position Position
	Rotation float64

	Border      BorderWidth
	BorderSoft  BorderSoftness
	BorderHue, BorderSaturation, BorderLuma float64
	BorderOpacity uint8

	LightSource LightSource

	Top, Bottom, Left, Right float64
}

// FlyKeyFrameStatus mirrors KeFS: whether key frames A/B are populated and
// whether the fly is currently parked at one of them.
type FlyKeyFrameStatus struct {
	IsASet bool
	IsBSet bool

	AtKeyFrameA             bool
	AtKeyFrameB             bool
	AtKeyFrameFull          bool
	AtKeyFrameRunToInfinite bool

	RunToInfiniteIndex uint8
}

// FlyKeyer mirrors a keyer's flying-key state: the stored key frames and
// where the fly currently sits between them.
type FlyKeyer struct {
	Status    FlyKeyFrameStatus
	KeyFrames [5]KeyFrame // indexed by protocol.KeyFrame (1..4); 0 unused
}

// LumaKeyer mirrors KeLm.
type LumaKeyer struct {
	PreMultiplied bool
	Clip, Gain    float64
	InvertKey     bool
}

// ChromaKeyer mirrors KeCk.
type ChromaKeyer struct {
	Hue, Gain, YSuppress, Lift float64
	Narrow                     bool
}

// PatternKeyer mirrors KePt.
type PatternKeyer struct {
	Style                    protocol.PatternStyle
	Size, Symmetry, Softness float64
	Position                 Position
	InvertPattern            bool
}

// DVEKeyer mirrors the fixed (non-flying) DVE keyer geometry and border
// decoded from KeDV.
type DVEKeyer struct {
	Size     struct{ X, Y float64 }
	Position Position
	Rotation float64

	BorderEnabled bool
	ShadowEnabled bool
	BorderBevel   protocol.BorderBevel

	Border     BorderWidth
	BorderSoft BorderSoftness
	BorderHue, BorderSaturation, BorderLuma float64
	BorderOpacity                            uint8

	LightSource LightSource

	Masked       bool
	Top, Bottom  float64
	Left, Right  float64
	Rate         uint8
}

// KeyerBase mirrors KeBP, the keyer properties common to every keyer type.
type KeyerBase struct {
	Type       protocol.KeyerType
	FlyEnabled bool
	FillSource VideoSourceKey
	KeySource  VideoSourceKey
	Masked     bool
	Top, Bottom float64
	Left, Right float64
}

// KeyerState mirrors one upstream keyer's full decoded state: on-air status
// (KeOn) plus its base properties and every mode-specific parameter block,
// regardless of which Type is currently selected.
type KeyerState struct {
	OnAir bool

	Base    KeyerBase
	Luma    LumaKeyer
	Chroma  ChromaKeyer
	Pattern PatternKeyer
	DVE     DVEKeyer
	Fly     FlyKeyer
}

// MixEffectState mirrors one mix effect's program/preview busses, its
// transition engine, and its keyers.
type MixEffectState struct {
	ProgramInput VideoSourceKey
	PreviewInput VideoSourceKey
	PreviewBlackedOut bool

	Transition Transition

	Keyer [MaxKeyersPerME]KeyerState
}

// DSKState mirrors a downstream keyer's bus assignment, transition
// properties (DskP), and live on-air status (DskS).
//
// DskP has a known aliasing quirk in the wire format: the clip field at
// offset 4 overlaps the same bytes the left-side MapValue read also uses.
// Both decodes run against the same offsets so DSKState.Left and
// DSKState.Clip always reflect the same two wire bytes reinterpreted two
// ways, matching the original firmware behavior rather than "fixing" it.
type DSKState struct {
	FillSource VideoSourceKey
	KeySource  VideoSourceKey

	Tie           bool
	Rate          uint8
	PreMultiplied bool
	Clip, Gain    float64
	InvertKey     bool
	Masked        bool
	Top, Bottom   float64
	Left, Right   float64

	OnAir               bool
	InTransition        bool
	IsAutoTransitioning bool
	FramesRemaining     uint8
}

// FadeToBlackState mirrors FtbP (configured rate) and FtbS (live status)
// for one mix effect.
type FadeToBlackState struct {
	Rate uint8

	FullyBlack      bool
	InTransition    bool
	FramesRemaining uint8
}

// ColorGeneratorState mirrors ColV.
type ColorGeneratorState struct {
	Hue, Saturation, Luma float64
}
