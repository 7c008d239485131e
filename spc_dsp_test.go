package main

import "testing"

// Scenario 6: with EON=0 and no voice ever keyed on, the echo path carries
// nothing and the mixed output stays silent no matter how long it runs.
func TestEchoPathNullStaysSilent(t *testing.T) {
	dsp := NewDSP()
	ram := NewRAM()
	dsp.WriteRegister(0x0C, 0x7F) // master vol L
	dsp.WriteRegister(0x1C, 0x7F) // master vol R
	dsp.WriteRegister(0x2C, 0x7F) // echo vol L
	dsp.WriteRegister(0x3C, 0x7F) // echo vol R
	dsp.WriteRegister(0x4D, 0x00) // EON = 0

	for i := 0; i < 50; i++ {
		l, r := dsp.Tick(ram)
		if l != 0 || r != 0 {
			t.Fatalf("tick %d: got (%d,%d), want silence with EON=0 and no KON", i, l, r)
		}
	}
}

// Invariant: the echo cursor always stays within [0, echoLen) and, since
// echo samples are 4 bytes (L+R 16-bit words), a multiple of 4.
func TestEchoCursorInvariant(t *testing.T) {
	dsp := NewDSP()
	ram := NewRAM()
	dsp.WriteRegister(0x6D, 0x00) // ESA = page 0
	dsp.WriteRegister(0x7D, 0x01) // EDL = 1 -> echoLen = 1<<11 = 2048

	for i := 0; i < 5000; i++ {
		dsp.Tick(ram)
		if dsp.echoCursor >= dsp.echoLen {
			t.Fatalf("tick %d: echoCursor = %d >= echoLen %d", i, dsp.echoCursor, dsp.echoLen)
		}
		if dsp.echoCursor%4 != 0 {
			t.Fatalf("tick %d: echoCursor = %d not a multiple of 4", i, dsp.echoCursor)
		}
	}
}

// Invariant: the FIR ring cursor always stays in 0..7 and advances by
// exactly 1 (mod 8) every tick.
func TestFIRRingCursorInvariant(t *testing.T) {
	dsp := NewDSP()
	ram := NewRAM()

	prev := dsp.firCursor
	for i := 0; i < 64; i++ {
		dsp.Tick(ram)
		if dsp.firCursor < 0 || dsp.firCursor > 7 {
			t.Fatalf("tick %d: firCursor = %d out of 0..7", i, dsp.firCursor)
		}
		want := (prev + 1) % 8
		if dsp.firCursor != want {
			t.Fatalf("tick %d: firCursor = %d, want %d", i, dsp.firCursor, want)
		}
		prev = dsp.firCursor
	}
}

// Writing to ENDX (0x7C) always clears every flag, regardless of the value
// written, per the S-DSP's documented hardware behavior.
func TestENDXWriteClearsUnconditionally(t *testing.T) {
	dsp := NewDSP()
	for i := range dsp.voices {
		dsp.voices[i].endxFlag = true
	}
	dsp.WriteRegister(0x7C, 0xFF)
	if dsp.endxByte() != 0 {
		t.Errorf("ENDX after write-clear = 0x%02X, want 0x00", dsp.endxByte())
	}

	dsp.voices[3].endxFlag = true
	dsp.WriteRegister(0x7C, 0x00) // even writing zero clears
	if dsp.endxByte() != 0 {
		t.Errorf("ENDX after second write-clear = 0x%02X, want 0x00", dsp.endxByte())
	}
}

// PMON bit 0 (channel 0) is always ignored: channel 0 cannot pitch-modulate
// since there is no channel -1 to read from.
func TestPMONChannelZeroIgnored(t *testing.T) {
	dsp := NewDSP()
	dsp.WriteRegister(0x2D, 0xFF)
	if dsp.pmon&0x01 != 0 {
		t.Errorf("pmon bit0 = set, want masked off")
	}
	if dsp.pmon != 0xFE {
		t.Errorf("pmon = 0x%02X, want 0xFE", dsp.pmon)
	}
}

// KON/KOFF writes are latched and applied at the start of the next Tick,
// not synchronously.
func TestKeyOnIsLatchedNotImmediate(t *testing.T) {
	dsp := NewDSP()
	ram := NewRAM()
	dsp.WriteRegister(0x4C, 0x01) // KON voice 0
	if dsp.voices[0].env.state == envStateAttack {
		t.Fatal("KON must not take effect before the next Tick")
	}
	dsp.Tick(ram)
	if dsp.voices[0].env.state != envStateAttack {
		t.Fatal("KON must take effect on the following Tick")
	}
}

// EDL writes recompute echo geometry but must not reset the running cursor
// (a documented Open Question resolution).
func TestEDLWriteDoesNotResetCursor(t *testing.T) {
	dsp := NewDSP()
	ram := NewRAM()
	dsp.WriteRegister(0x6D, 0x00)
	dsp.WriteRegister(0x7D, 0x02) // EDL -> echoLen = 4096
	for i := 0; i < 10; i++ {
		dsp.Tick(ram)
	}
	cursorBefore := dsp.echoCursor
	if cursorBefore == 0 {
		t.Fatal("test setup: cursor should have advanced past 0 after 10 ticks")
	}
	dsp.WriteRegister(0x7D, 0x02) // same EDL value rewritten
	if dsp.echoCursor != cursorBefore {
		t.Errorf("echoCursor after EDL rewrite = %d, want unchanged %d", dsp.echoCursor, cursorBefore)
	}
}

func TestDSPRegisterAddrMasksBit7(t *testing.T) {
	dsp := NewDSP()
	dsp.WriteRegister(0x8C, 0x55) // 0x8C & 0x7F == 0x0C -> master vol L
	if dsp.masterVolL != 0x55 {
		t.Errorf("masterVolL = 0x%02X, want 0x55 via aliased high-bit address", byte(dsp.masterVolL))
	}
}

// spec.md §4.2 step 2: pitch modulation only applies when NON is clear for
// the voice, even if PMON is set. A voice with both bits set must decode at
// its unmodulated base pitch.
func TestPitchModulationDisabledWhenNoiseOn(t *testing.T) {
	ram := NewRAM()
	const prevOutput = int32(0x7FF) // large enough to shift pitch noticeably if applied

	base := newVoice()
	base.pitch = 0x100
	base.pitchMod = true
	base.noiseOn = true
	base.tick(ram, 0, prevOutput, 1, 0x77FF)
	if base.brr.counter != 0x100 {
		t.Errorf("counter after tick = 0x%X, want base pitch 0x100 unmodulated while NON is set", base.brr.counter)
	}

	modulated := newVoice()
	modulated.pitch = 0x100
	modulated.pitchMod = true
	modulated.noiseOn = false
	modulated.tick(ram, 0, prevOutput, 1, 0x77FF)
	if modulated.brr.counter == 0x100 {
		t.Errorf("counter after tick = 0x%X, want pitch modulated away from base when NON is clear", modulated.brr.counter)
	}
}
