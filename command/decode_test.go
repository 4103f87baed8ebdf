package command

import (
	"testing"

	"github.com/davecgh/go-spew/spew"

	"github.com/go-atem/atemkit/protocol"
	"github.com/go-atem/atemkit/state"
	"github.com/go-atem/atemkit/wire"
)

func TestDecodeTallyByIndex(t *testing.T) {
	buf := wire.NewBuffer(8)
	buf.SetU16(0, 3) // 3 sources
	buf.SetU8(2, 0x01)
	buf.SetU8(3, 0x02)
	buf.SetU8(4, 0x03)

	st := state.New()
	ok, err := Decode(st, protocol.TagTallyByIndex, buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !ok {
		t.Fatalf("Decode reported TagTallyByIndex as unrecognized")
	}

	if st.Tally.ByIndex.Sources != 3 {
		t.Fatalf("Sources = %d, want 3", st.Tally.ByIndex.Sources)
	}
	if !st.Tally.ByIndex.Flags[0].Program || st.Tally.ByIndex.Flags[0].Preview {
		t.Fatalf("index 0 flags = %+v, want program-only", st.Tally.ByIndex.Flags[0])
	}
	if !st.Tally.ByIndex.Flags[1].Preview || st.Tally.ByIndex.Flags[1].Program {
		t.Fatalf("index 1 flags = %+v, want preview-only", st.Tally.ByIndex.Flags[1])
	}
	if !st.Tally.ByIndex.Flags[2].Program || !st.Tally.ByIndex.Flags[2].Preview {
		t.Fatalf("index 2 flags = %+v, want both set", st.Tally.ByIndex.Flags[2])
	}
}

func TestDecodeTallyBySource(t *testing.T) {
	buf := wire.NewBuffer(8)
	buf.SetU16(0, 1) // 1 entry
	buf.SetU16(2, 1000)
	buf.SetU8(4, 0x02) // preview only

	st := state.New()
	if _, err := Decode(st, protocol.TagTallyBySource, buf); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	flags := st.Tally.BySource.Flags[state.VideoSourceKey(1000)]
	if flags.Program || !flags.Preview {
		t.Fatalf("flags for source 1000 = %+v, want preview-only", flags)
	}
}

// TestDecodeProgramAndPreviewInputAreIndependent decodes PrgI and PrvI for
// the same mix effect and confirms they land in separate fields, dumping
// the mix effect's full state via spew on failure so a mismatch shows
// exactly which field diverged instead of one opaque struct value.
func TestDecodeProgramAndPreviewInputAreIndependent(t *testing.T) {
	st := state.New()

	prgBuf := wire.NewBuffer(4)
	prgBuf.SetU8(0, 0)
	prgBuf.SetU16(2, 1)
	if _, err := Decode(st, protocol.TagProgramInput, prgBuf); err != nil {
		t.Fatalf("Decode PrgI: %v", err)
	}

	prvBuf := wire.NewBuffer(4)
	prvBuf.SetU8(0, 0)
	prvBuf.SetU16(2, 2)
	if _, err := Decode(st, protocol.TagPreviewInput, prvBuf); err != nil {
		t.Fatalf("Decode PrvI: %v", err)
	}

	me := st.MixEffect[0]
	if me.ProgramInput != 1 || me.PreviewInput != 2 {
		t.Fatalf("mix effect 0 state diverged from expected:\n%s", spew.Sdump(me))
	}
}

func TestDecodeAudioExpansionDescriptorsAreFramedNotParsed(t *testing.T) {
	st := state.New()

	bus := wire.NewBuffer(4)
	bus.SetU8(0, 0x11)
	if _, err := Decode(st, protocol.TagAudioExpansionBus, bus); err != nil {
		t.Fatalf("Decode AEBP: %v", err)
	}

	in := wire.NewBuffer(4)
	in.SetU8(0, 0x22)
	if _, err := Decode(st, protocol.TagAudioExpansionIn, in); err != nil {
		t.Fatalf("Decode _AEP: %v", err)
	}

	out := wire.NewBuffer(4)
	out.SetU8(0, 0x33)
	if _, err := Decode(st, protocol.TagAudioExpansionOut, out); err != nil {
		t.Fatalf("Decode _AMP: %v", err)
	}

	if len(st.AudioExpansion.Bus.Raw) != 4 || st.AudioExpansion.Bus.Raw[0] != 0x11 {
		t.Fatalf("AudioExpansion.Bus = %+v, want raw framing of AEBP", st.AudioExpansion.Bus)
	}
	if len(st.AudioExpansion.In.Raw) != 4 || st.AudioExpansion.In.Raw[0] != 0x22 {
		t.Fatalf("AudioExpansion.In = %+v, want raw framing of _AEP", st.AudioExpansion.In)
	}
	if len(st.AudioExpansion.Out.Raw) != 4 || st.AudioExpansion.Out.Raw[0] != 0x33 {
		t.Fatalf("AudioExpansion.Out = %+v, want raw framing of _AMP", st.AudioExpansion.Out)
	}
}

func TestRegisterPanicsOnDuplicateTag(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("register did not panic on a duplicate tag")
		}
	}()
	register(protocol.TagTallyByIndex, decodeTallyByIndex)
}
