// spc_core.go - bundles the CPU, RAM and DSP into the single unit a host
// advances one sample at a time.
//
// The CPU and DSP each know only their own step/tick contract; Core is the
// render-driver glue that interleaves them, following the same split
// between chip state and the thing that advances it used elsewhere in this
// codebase (a Player owning a Core, much like a Core owning a CPU/DSP).

package main

const (
	masterCyclesPerSample = 32
	masterCyclesPerSubTick = 16
)

// Core owns one loaded snapshot's worth of emulation state: CPU registers,
// sound RAM, and the S-DSP. It is the only thing LoadSnapshot touches.
type Core struct {
	CPU *CPU
	RAM *RAM
	DSP *DSP

	cycleAcc    uint32
	subCycleAcc uint32

	// SubTick is invoked every 16 master cycles, the SPC700's 64 kHz timer
	// tick rate. Core implements no timers itself; a host that needs them
	// can set this hook without touching Core.
	SubTick func()
}

// NewCore builds an unloaded core; call LoadSnapshot before stepping it.
func NewCore() *Core {
	return &Core{CPU: NewCPU(), RAM: NewRAM(), DSP: NewDSP()}
}

// NextFrame advances the core by exactly one DSP sample period (32 master
// cycles of interleaved CPU execution) and returns the resulting stereo
// frame. It satisfies the frameSource interface so a Core can be wired
// directly into the oto-backed audio sink.
func (c *Core) NextFrame() (left, right int16) {
	l, r, _ := c.Advance()
	return l, r
}

// Advance runs the strict CPU/DSP interleave for one output sample and
// returns it, surfacing any CPU fault the host should stop playback on.
func (c *Core) Advance() (left, right int16, err error) {
	for c.cycleAcc < masterCyclesPerSample {
		if c.CPU.Halted {
			c.cycleAcc += masterCyclesPerSample
			break
		}
		cycles, stepErr := c.CPU.Step(c.RAM)
		if stepErr != nil {
			return 0, 0, stepErr
		}
		c.cycleAcc += cycles
		c.subCycleAcc += cycles
		for c.subCycleAcc >= masterCyclesPerSubTick {
			c.subCycleAcc -= masterCyclesPerSubTick
			if c.SubTick != nil {
				c.SubTick()
			}
		}
	}
	c.cycleAcc -= masterCyclesPerSample

	left, right = c.DSP.Tick(c.RAM)
	return left, right, nil
}

// AdvanceN renders n consecutive stereo frames, stopping early (with the
// frames rendered so far) if the CPU faults.
func (c *Core) AdvanceN(n int) ([][2]int16, error) {
	frames := make([][2]int16, 0, n)
	for i := 0; i < n; i++ {
		l, r, err := c.Advance()
		if err != nil {
			return frames, err
		}
		frames = append(frames, [2]int16{l, r})
	}
	return frames, nil
}
