package main

import "testing"

// With a freshly zeroed RAM, every fetched opcode is 0x00 (NOP, 2 cycles),
// so Advance must consume exactly masterCyclesPerSample/2 instructions per
// sample without faulting.
func TestCoreAdvanceRunsNOPsWithoutError(t *testing.T) {
	core := NewCore()
	l, r, err := core.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if l != 0 || r != 0 {
		t.Errorf("output from a silent DSP = (%d,%d), want (0,0)", l, r)
	}
	wantPC := uint16(masterCyclesPerSample / 2)
	if core.CPU.PC != wantPC {
		t.Errorf("PC after one sample of NOPs = 0x%04X, want 0x%04X", core.CPU.PC, wantPC)
	}
}

func TestCoreAdvanceNCollectsRequestedFrames(t *testing.T) {
	core := NewCore()
	frames, err := core.AdvanceN(10)
	if err != nil {
		t.Fatalf("AdvanceN: %v", err)
	}
	if len(frames) != 10 {
		t.Fatalf("len(frames) = %d, want 10", len(frames))
	}
}

func TestCoreSubTickFiresEveryHalfSample(t *testing.T) {
	core := NewCore()
	ticks := 0
	core.SubTick = func() { ticks++ }
	core.Advance()
	want := masterCyclesPerSample / masterCyclesPerSubTick
	if ticks != want {
		t.Errorf("SubTick fired %d times, want %d", ticks, want)
	}
}

func TestCoreAdvanceStopsOnHaltedCPU(t *testing.T) {
	core := NewCore()
	core.CPU.Halted = true
	l, r, err := core.Advance()
	if err != nil {
		t.Fatalf("Advance with halted CPU: %v", err)
	}
	if l != 0 || r != 0 {
		t.Errorf("output with halted CPU and silent DSP = (%d,%d), want (0,0)", l, r)
	}
	if core.CPU.PC != 0 {
		t.Errorf("PC should not advance while halted, got 0x%04X", core.CPU.PC)
	}
}

func TestCoreAdvanceSurfacesFault(t *testing.T) {
	core := NewCore()
	core.RAM.Write8(0, 0xFF) // STOP, fatal under default StrictFatal
	_, _, err := core.Advance()
	if err == nil {
		t.Fatal("want error from an unsupported opcode under StrictFatal")
	}
}
