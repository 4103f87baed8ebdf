package state

// CameraZoom mirrors the lens domain's two zoom representations: a
// normalized absolute position and, separately, a live rocker speed.
type CameraZoom struct {
	Normalized float64
	Speed      float64
}

// CameraRGBY mirrors a lift/gamma/gain adjustment's four channels.
type CameraRGBY struct {
	R, G, B, Y float64
}

// CameraControlState mirrors one camera's CCdP record. CCdP multiplexes
// an adjustment domain (lens/camera/color bars/color chip) and a feature
// index over the same tag; every feature this client decodes lands here
// as one flat leaf rather than a per-domain sub-struct, since a single
// CCdP packet only ever touches one feature at a time.
type CameraControlState struct {
	Iris  int16
	Focus int16
	Zoom  CameraZoom

	Gain            CameraRGBY
	GainValue       int16
	WhiteBalance    int16
	Shutter         float64
	SharpeningLevel int16
	ColorBars       int16

	Lift     CameraRGBY
	Gamma    CameraRGBY
	Contrast int16
	LumaMix  float64
	Hue      float64
	Saturation float64
}

// LockSlot mirrors one source's entry in LKST/LKOB: whether it supports
// being locked, and whether it is currently locked.
type LockSlot struct {
	SupportsLock bool
	Locked       bool
}

// LockState mirrors the input-lock workflow (LKST, LKOB), keyed by
// VideoSourceKey since lockable sources are a sparse subset of all
// sources.
type LockState struct {
	Source map[VideoSourceKey]LockSlot
}

// RemoteStatus is a generic leaf for RXMS/RXCP/RXCC HyperDeck-class
// remote-device status reports; the wire layout for these varies by
// device class and is not decoded further than framing.
type RemoteStatus struct {
	Raw []byte
}

// RemoteDeviceState mirrors the remote-device status tags, keyed by the
// device slot the packet names.
type RemoteDeviceState struct {
	Status map[uint8]RemoteStatus
}

// FileTransferState mirrors the FTDE/FTDC/FTDA/FTDS file-transfer
// handshake; the payload is not interpreted beyond framing (see
// SPEC_FULL.md §6.1), so this just tracks whether a transfer is open and
// its last-reported byte offset.
type FileTransferState struct {
	Open   bool
	Offset uint32
}

// AudioExpansionState mirrors AEBP/_AEP/_AMP, the audio expansion bus and
// input/output descriptors reported by switchers with a Fairlight audio
// expansion fitted. Like RemoteStatus, the payload layout isn't decoded
// beyond framing (see SPEC_FULL.md §6.1).
type AudioExpansionState struct {
	Bus RemoteStatus
	In  RemoteStatus
	Out RemoteStatus
}
