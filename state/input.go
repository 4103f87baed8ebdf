package state

import "github.com/go-atem/atemkit/protocol"

// ExternalPortTypes is a bitmask of the physical connectors an input is
// actually wired through, decoded from InPr's byte-27 flag field.
type ExternalPortTypes struct {
	SDI       bool
	HDMI      bool
	Component bool
	Composite bool
	SVideo    bool
}

// InputAvailability mirrors where an input is allowed to be routed.
type InputAvailability struct {
	Auxiliary            bool
	Multiviewer          bool
	SuperSourceArt       bool
	SuperSourceBox       bool
	KeySourcesEverywhere bool
}

// MixEffectAvailability mirrors which mix effects may use an input as a
// fill source.
type MixEffectAvailability struct {
	ME1FillSources bool
	ME2FillSources bool
}

// InputProperties mirrors one InPr record.
type InputProperties struct {
	LongName  string
	ShortName string

	AvailableExternalPortTypes ExternalPortTypes
	ExternalPortType           protocol.ExternalPortType
	PortType                   protocol.SwitcherPortType

	Availability   InputAvailability
	MEAvailability MixEffectAvailability
}

// MultiViewerState mirrors one multi viewer's layout and per-window
// routing (MvPr, MvIn).
type MultiViewerState struct {
	Layout protocol.MultiViewerLayout
	Window [MaxWindowsPerMV]MultiViewerWindow
}

// MultiViewerWindow mirrors one window slot within a multi viewer.
type MultiViewerWindow struct {
	VideoSource VideoSourceKey
}
