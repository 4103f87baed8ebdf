package state

// MacroRunState mirrors the running/waiting flags packed into MRPr's first
// byte.
type MacroRunState struct {
	Running bool
	Waiting bool
}

// MacroRunStatus mirrors MRPr.
type MacroRunStatus struct {
	State     MacroRunState
	IsLooping bool
	Index     uint16
}

// MacroRecordingStatus mirrors MRcS.
type MacroRecordingStatus struct {
	IsRecording bool
	Index       uint16
}

// MacroProperties mirrors one macro slot's usage flag and name (MPrp).
type MacroProperties struct {
	IsUsed bool
	Name   string
}

// MacroPoolState mirrors the macro pool's run/record status and the
// per-slot properties table.
type MacroPoolState struct {
	RunStatus       MacroRunStatus
	RecordingStatus MacroRecordingStatus
	Properties      [MaxMacros]MacroProperties
}
