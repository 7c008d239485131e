// spc_player.go - render-to-completion driver around a loaded Core
//
// A thin stateful wrapper that owns the decoded chip state, exposes the
// MusicPlayer surface (Load/LoadData/Play/Stop/IsPlaying/DurationSeconds/
// DurationText), and lets a host either pull frames live (via NextFrame,
// for the oto backend) or render a fixed span up front (for WAV export).

package main

import (
	"fmt"
	"os"
	"sync"
)

const (
	DefaultSampleRate = 32000

	// defaultRenderSeconds is used when a .spc's ID666 block carries no
	// usable duration.
	defaultRenderSeconds = 180
)

var _ MusicPlayer = (*Player)(nil)

// Player loads one .spc snapshot and drives its Core, matching the
// MusicPlayer interface every format player in this family implements.
type Player struct {
	mu      sync.Mutex
	core    *Core
	file    *SPCFile
	playing bool

	strictness Strictness
}

// NewPlayer constructs an unloaded player. Strictness governs how the
// underlying CPU reacts to SLEEP/STOP/BRK/RETI.
func NewPlayer(strictness Strictness) *Player {
	return &Player{strictness: strictness}
}

func (p *Player) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read spc file: %w", err)
	}
	return p.LoadData(data)
}

func (p *Player) LoadData(data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	file, err := ParseSPCFile(data)
	if err != nil {
		return fmt.Errorf("parse spc file: %w", err)
	}

	core := NewCore()
	core.CPU.Strictness = p.strictness
	if err := LoadSnapshot(file.Raw, core.CPU, core.RAM, core.DSP); err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	p.file = file
	p.core = core
	p.playing = false
	return nil
}

// Play marks the player as actively advancing; it does not itself start a
// goroutine or an audio sink, leaving that to the host (main.go wires an
// OtoPlayer against the Player itself, which pulls frames via NextFrame).
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = true
}

func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.playing = false
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// NextFrame satisfies frameSource, letting a host wire a Player directly
// into OtoPlayer for live output.
func (p *Player) NextFrame() (left, right int16) {
	p.mu.Lock()
	core := p.core
	playing := p.playing
	p.mu.Unlock()
	if core == nil || !playing {
		return 0, 0
	}
	return core.NextFrame()
}

// Render produces n consecutive stereo frames from the currently loaded
// snapshot without requiring Play()/Stop(), for non-interactive uses like
// WAV export or golden-output tests.
func (p *Player) Render(n int) ([][2]int16, error) {
	p.mu.Lock()
	core := p.core
	p.mu.Unlock()
	if core == nil {
		return nil, fmt.Errorf("spc player: no snapshot loaded")
	}
	return core.AdvanceN(n)
}

func (p *Player) Metadata() MusicMetadata {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.file == nil {
		return MusicMetadata{}
	}
	return p.file.GetMetadata()
}

func (p *Player) DurationSeconds() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.file == nil || p.file.Tags.DurationSecs == 0 {
		return defaultRenderSeconds
	}
	return float64(p.file.Tags.DurationSecs) + float64(p.file.Tags.FadeMillis)/1000
}

func (p *Player) DurationText() string {
	dur := p.DurationSeconds()
	minutes := int(dur) / 60
	seconds := int(dur) % 60
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// SampleRate is fixed at the S-DSP's native 32 kHz; there is no provision
// for resampling.
func (p *Player) SampleRate() int { return DefaultSampleRate }
