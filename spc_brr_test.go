package main

import "testing"

// Scenario 4: an all-zero BRR block (header 0x00: shift 0, filter 0, no
// loop/end) decodes to sixteen zero samples.
func TestBRRZeroBlockDecodesToZeros(t *testing.T) {
	ram := NewRAM()
	// Header byte already zero; the 8 data bytes default to zero too.
	b := newBRRDecoder()
	b.start(0)

	for i := 0; i < 16; i++ {
		b.decodeNext(ram, 0)
		if got := b.history[3]; got != 0 {
			t.Fatalf("nibble %d decoded to %d, want 0", i, got)
		}
	}
	if b.blockAddr != brrBlockBytes {
		t.Errorf("blockAddr after 16 nibbles = %d, want %d", b.blockAddr, brrBlockBytes)
	}
	if b.loopFlag || b.endFlag {
		t.Error("zero header must not set loop or end flags")
	}
}

func TestBRREndWithoutLoopStopsAtLoopAddr(t *testing.T) {
	ram := NewRAM()
	ram.Write8(0, 0x01) // shift=0 filter=0, end bit set, loop bit clear
	b := newBRRDecoder()
	b.start(0)

	for i := 0; i < 16; i++ {
		b.decodeNext(ram, 0x200)
	}
	if !b.endFlag {
		t.Fatal("want endFlag set")
	}
	if b.loopFlag {
		t.Fatal("want loopFlag clear")
	}
	if b.blockAddr != 0x200 {
		t.Errorf("blockAddr after block end = 0x%04X, want 0x0200 (loop address)", b.blockAddr)
	}
}

// Invariant: decoded/filtered BRR samples are always clipped into
// [-16378, 16376].
func TestBRRDecodeNibbleClipsToRange(t *testing.T) {
	b := newBRRDecoder()
	// Maximum positive nibble (0x7) at maximum shift (12) with filter 0
	// would overflow the 16-bit range without clipping.
	for i := 0; i < 20; i++ {
		sample := b.decodeNibble(0x7, 12, 0)
		if sample < -16378 || sample > 16376 {
			t.Fatalf("iteration %d: sample = %d out of clip range", i, sample)
		}
	}
}

func TestClipBRRBounds(t *testing.T) {
	cases := []struct {
		in, want int32
	}{
		{-20000, -16378},
		{20000, 16376},
		{0, 0},
		{-16378, -16378},
		{16376, 16376},
	}
	for _, c := range cases {
		if got := clipBRR(c.in); got != c.want {
			t.Errorf("clipBRR(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestBRRAdvanceConsumesWholeCounterOverflow(t *testing.T) {
	ram := NewRAM()
	b := newBRRDecoder()
	b.start(0)

	// A pitch of 0x1000 overflows the 12-bit fractional counter exactly once per call.
	b.advance(ram, 0x1000, 0)
	if b.nibble != 1 {
		t.Errorf("nibble after one 0x1000 advance = %d, want 1", b.nibble)
	}

	b2 := newBRRDecoder()
	b2.start(0)
	b2.advance(ram, 0x2000, 0)
	if b2.nibble != 2 {
		t.Errorf("nibble after one 0x2000 advance = %d, want 2", b2.nibble)
	}
}
