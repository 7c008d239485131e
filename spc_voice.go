// spc_voice.go - per-channel voice state and tick pipeline
//
// Each voice owns one BRR decoder and one envelope generator; the DSP
// drives all eight through Tick in channel order since pitch modulation
// on channel n reads the previous channel's raw output.

package main

// voice holds one S-DSP channel's live register state and decode/envelope
// machinery.
type voice struct {
	volL, volR int8
	pitch      uint16 // 14-bit
	sampleSrc  byte

	pitchMod bool // PMON bit for this channel (ignored on channel 0)
	noiseOn  bool // NON bit for this channel
	echoOn   bool // EON bit for this channel

	brr *brrDecoder
	env *envelopeGenerator

	lastOutput int32 // raw decoded/enveloped sample before volume scaling, feeds pitch modulation on the next channel
	endxFlag   bool
}

func newVoice() *voice {
	return &voice{brr: newBRRDecoder(), env: newEnvelopeGenerator()}
}

// sampleDirEntry reads a voice's 4-byte directory entry (start/loop
// addresses) from dirPage:sampleSrc*4.
func sampleDirEntry(ram *RAM, dirPage byte, sampleSrc byte) (start, loop uint16) {
	base := uint16(dirPage)<<8 + uint16(sampleSrc)*4
	start = ram.Read16(base)
	loop = ram.Read16(base + 2)
	return
}

// keyOn latches a fresh sample start from the voice's directory entry.
func (v *voice) keyOn(ram *RAM, dirPage byte) {
	start, _ := sampleDirEntry(ram, dirPage, v.sampleSrc)
	v.brr.start(start)
	v.env.keyon()
	v.endxFlag = false
}

func (v *voice) keyOff() {
	v.env.keyoff()
}

// tick runs one 32 kHz DSP sample for this voice, returning the
// volume-scaled, saturated L/R output pair. prevOutput is the previous
// channel's raw output, used for pitch modulation on channels 1..7.
func (v *voice) tick(ram *RAM, dirPage byte, prevOutput int32, lfsr uint16, globalCounter uint16) (left, right int16) {
	pitch := v.pitch
	if v.pitchMod && !v.noiseOn {
		factor := int32(prevOutput>>4) + 0x400
		pitch = uint16(clampPitch(int32(pitch) * factor >> 10))
	}

	_, loopAddr := sampleDirEntry(ram, dirPage, v.sampleSrc)
	v.brr.advance(ram, pitch&0x3FFF, loopAddr)

	var sample int32
	if v.noiseOn {
		sample = noiseSample(lfsr)
	} else {
		sample = v.brr.interpolate()
	}

	if v.brr.endFlag && !v.brr.loopFlag {
		v.endxFlag = true
		v.env.mute()
	}

	alive := v.env.update(globalCounter)
	gain := v.env.level
	if !alive {
		gain = 0
	}
	out := (sample * gain) >> 11
	v.lastOutput = out

	lout := saturate16((out * int32(v.volL)) >> 7)
	rout := saturate16((out * int32(v.volR)) >> 7)
	return int16(lout), int16(rout)
}

func clampPitch(p int32) int32 {
	if p < 0 {
		return 0
	}
	if p > 0x3FFF {
		return 0x3FFF
	}
	return p
}

// noiseSample converts the DSP's 15-bit LFSR state into a signed 15-bit
// sample, substituted for the decoded BRR sample when NON is set.
func noiseSample(lfsr uint16) int32 {
	v := int32(lfsr & 0x7FFF)
	if v >= 0x4000 {
		v -= 0x8000
	}
	return v
}

func saturate16(v int32) int32 {
	if v < -32768 {
		return -32768
	}
	if v > 32767 {
		return 32767
	}
	return v
}
