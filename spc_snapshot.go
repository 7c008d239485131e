// spc_snapshot.go - SPC snapshot loading
//
// CPU registers and RAM are restored from their documented offsets, the DSP
// register file is copied in with DIR applied first (so any key-on
// processed on the first tick sees the right sample directory), ENDX is
// then re-applied directly from the snapshot bytes, and the echo buffer is
// cleared.

package main

const (
	snapPCOffset  = 0x25
	snapAOffset   = 0x27
	snapXOffset   = 0x28
	snapYOffset   = 0x29
	snapPSWOffset = 0x2A
	snapSPOffset  = 0x2B

	snapRAMOffset = 0x100
	snapRAMSize   = 65536
	snapDSPOffset = 0x10100
	snapDSPSize   = 128
)

// LoadSnapshot parses a raw SPC snapshot image into the given CPU, RAM and
// DSP.
func LoadSnapshot(data []byte, cpu *CPU, ram *RAM, dsp *DSP) error {
	if len(data) < snapDSPOffset+snapDSPSize {
		return &SPCError{Kind: KindMalformedSnapshot, Detail: "snapshot too short"}
	}

	cpu.PC = uint16(data[snapPCOffset]) | uint16(data[snapPCOffset+1])<<8
	cpu.A = data[snapAOffset]
	cpu.X = data[snapXOffset]
	cpu.Y = data[snapYOffset]
	cpu.PSW = data[snapPSWOffset]
	cpu.SP = data[snapSPOffset]

	copy(ram.Slice(), data[snapRAMOffset:snapRAMOffset+snapRAMSize])

	dspRegs := data[snapDSPOffset : snapDSPOffset+snapDSPSize]

	// DIR first: any KON already latched in the snapshot must resolve its
	// sample directory entry against the right page once playback resumes.
	dsp.WriteRegister(0x5D, dspRegs[0x5D])
	for addr, v := range dspRegs {
		if addr == 0x5D || addr == 0x7C {
			continue
		}
		dsp.WriteRegister(byte(addr), v)
	}
	// ENDX is not "write-clears" from a snapshot's point of view: the
	// snapshot's own ENDX byte is the ground truth for flags already
	// latched before the dump was taken.
	for i, v := range dsp.voices {
		v.endxFlag = dspRegs[0x7C]&(1<<uint(i)) != 0
	}

	dsp.echoCursor = 0
	dsp.clearEchoBuffer(ram)

	return nil
}
