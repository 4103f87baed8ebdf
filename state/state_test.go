package state

import "testing"

func TestNewInitializesNestedMaps(t *testing.T) {
	st := New()

	if st.SpecialInputs == nil {
		t.Fatalf("SpecialInputs map is nil")
	}
	if st.Lock.Source == nil {
		t.Fatalf("Lock.Source map is nil")
	}
	if st.Remote.Status == nil {
		t.Fatalf("Remote.Status map is nil")
	}
	if st.AudioMixer.Input == nil {
		t.Fatalf("AudioMixer.Input map is nil")
	}
	if st.AudioMixer.Levels.Sources == nil {
		t.Fatalf("AudioMixer.Levels.Sources map is nil")
	}
	if st.AudioMixer.Tally.Sources == nil {
		t.Fatalf("AudioMixer.Tally.Sources map is nil")
	}
	if st.Tally.BySource.Flags == nil {
		t.Fatalf("Tally.BySource.Flags map is nil")
	}
}

func TestNewStateHasZeroedFixedArrays(t *testing.T) {
	st := New()

	for i, me := range st.MixEffect {
		if me != (MixEffectState{}) {
			t.Fatalf("MixEffect[%d] not zero-valued on a fresh state", i)
		}
	}
	if st.Topology.MixEffects != 0 {
		t.Fatalf("Topology.MixEffects = %d, want 0 on a fresh state", st.Topology.MixEffects)
	}
}

func TestSpecialInputsIsWritable(t *testing.T) {
	st := New()
	st.SpecialInputs[VideoSourceKey(2001)] = InputProperties{LongName: "Color Bars"}

	got, ok := st.SpecialInputs[VideoSourceKey(2001)]
	if !ok {
		t.Fatalf("SpecialInputs did not retain the written entry")
	}
	if got.LongName != "Color Bars" {
		t.Fatalf("LongName = %q, want %q", got.LongName, "Color Bars")
	}
}
