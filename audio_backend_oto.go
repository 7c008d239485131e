//go:build !headless

// audio_backend_oto.go - pull-based stereo PCM output via oto
//
// Uses an atomic pointer to swap the active frame source and a pull-based
// Read callback, streaming the DSP's discrete stereo int16 frames straight
// into oto's output buffer.

package main

import (
	"encoding/binary"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// frameSource is anything that can produce the next stereo PCM frame; the
// Player satisfies it by ticking the DSP once per call.
type frameSource interface {
	NextFrame() (left, right int16)
}

type OtoPlayer struct {
	ctx     *oto.Context
	player  *oto.Player
	source  atomic.Pointer[frameSource] // atomic for a lock-free Read() hot path
	started bool
	mutex   sync.Mutex // only for setup/control operations
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   4,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	return &OtoPlayer{
		ctx:     ctx,
		started: false,
	}, nil
}

func (op *OtoPlayer) SetupPlayer(source frameSource) {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	op.source.Store(&source)
	op.player = op.ctx.NewPlayer(op)
}

// Read implements io.Reader for oto's pull-based playback model: each call
// fills p with interleaved little-endian stereo int16 frames.
func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	srcPtr := op.source.Load()
	if srcPtr == nil {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}
	src := *srcPtr

	frameBytes := 4 // 2 channels * 2 bytes
	numFrames := len(p) / frameBytes
	for i := 0; i < numFrames; i++ {
		l, r := src.NextFrame()
		off := i * frameBytes
		binary.LittleEndian.PutUint16(p[off:], uint16(l))
		binary.LittleEndian.PutUint16(p[off+2:], uint16(r))
	}
	return numFrames * frameBytes, nil
}

func (op *OtoPlayer) Start() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if !op.started && op.player != nil {
		op.player.Play()
		op.started = true
	}
}

func (op *OtoPlayer) Stop() {
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.started && op.player != nil {
		op.player.Close()
		op.started = false
	}
}

func (op *OtoPlayer) Close() {
	op.Stop()
	op.mutex.Lock()
	defer op.mutex.Unlock()

	if op.player != nil {
		op.player.Close()
		op.player = nil
	}
}

func (op *OtoPlayer) IsStarted() bool {
	op.mutex.Lock()
	defer op.mutex.Unlock()
	return op.started
}
