package state

// TallyFlags mirrors one source's program/preview lamp state.
type TallyFlags struct {
	Program bool
	Preview bool
}

// TallyByIndex mirrors TlIn: tally flags keyed by the input's position in
// the switcher's source list rather than by protocol code-point.
type TallyByIndex struct {
	Sources int
	Flags   [MaxPhysicalInputs + 16]TallyFlags
}

// TallyBySource mirrors TlSr: the same flags, keyed by VideoSourceKey so
// sparse special sources (color generators, media players, ...) can carry
// tally too.
type TallyBySource struct {
	Sources int
	Flags   map[VideoSourceKey]TallyFlags
}

// TallyState mirrors both tally representations the switcher reports; they
// carry the same information indexed two different ways.
type TallyState struct {
	ByIndex  TallyByIndex
	BySource TallyBySource
}
