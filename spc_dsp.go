// spc_dsp.go - S-DSP: 8-voice mixer, echo/FIR unit and register file
//
// The 128-byte register file is addressed exactly as real hardware exposes
// it (address bit 7 ignored, ENDX cleared unconditionally on any write to
// it). Because of that ENDX rule, a snapshot load writes DIR first and sets
// the ENDX flags directly instead of copying the registers byte for byte.

package main

const numVoices = 8

// DSP holds the S-DSP's global mixer/echo state and the eight voices it
// drives. RAM is supplied to each tick call rather than held by reference,
// since the DSP and CPU share the same underlying memory.
type DSP struct {
	voices [numVoices]*voice

	masterVolL, masterVolR int8
	echoVolL, echoVolR      int8
	efb                     int8 // echo feedback
	noiseClock              byte
	flgReset                bool
	flgMute                 bool
	flgEchoWriteDisable     bool

	pmon byte // pitch modulation enable bitmap
	non  byte // noise enable bitmap
	eon  byte // echo enable bitmap
	dir  byte // sample directory page
	esa  byte // echo buffer start page
	edl  byte // echo delay length

	fir [8]int8

	echoBase   uint32
	echoLen    uint32
	echoCursor uint32
	firDelay   [8][2]int32 // per-tap ring: [L, R] one sample deep per tap position
	firCursor  int

	lfsr          uint16
	globalCounter uint16

	kon, koff byte // latched KON/KOFF bitmaps, applied at the start of the next tick

	echoAccumL, echoAccumR int32 // running sum of echo-enabled voice outputs this sample
}

func NewDSP() *DSP {
	d := &DSP{lfsr: 1, globalCounter: 0x77FF}
	for i := range d.voices {
		d.voices[i] = newVoice()
	}
	return d
}

// Tick runs one 32 kHz sample period across all eight voices plus the echo
// unit, returning the final stereo output pair.
func (d *DSP) Tick(ram *RAM) (left, right int16) {
	d.applyLatchedKeys(ram)

	if d.flgReset {
		return 0, 0
	}

	var mixL, mixR int32
	var prevOutput int32
	for i, v := range d.voices {
		bit := byte(1) << uint(i)
		v.pitchMod = d.pmon&bit != 0 && i != 0
		v.noiseOn = d.non&bit != 0
		v.echoOn = d.eon&bit != 0

		l, r := v.tick(ram, d.dir, prevOutput, d.lfsr, d.globalCounter)
		prevOutput = v.lastOutput
		mixL += int32(l)
		mixR += int32(r)

		if v.echoOn {
			d.echoAccumL += int32(l)
			d.echoAccumR += int32(r)
		}
	}

	d.advanceNoise()

	firOutL, firOutR := d.readFIR(ram)

	outL := saturate16((mixL*int32(d.masterVolL))>>7 + (firOutL*int32(d.echoVolL))>>7)
	outR := saturate16((mixR*int32(d.masterVolR))>>7 + (firOutR*int32(d.echoVolR))>>7)

	d.writeEcho(ram, firOutL, firOutR)

	d.echoAccumL, d.echoAccumR = 0, 0

	if d.globalCounter == 0 {
		d.globalCounter = 0x77FF
	} else {
		d.globalCounter--
	}

	if d.flgMute {
		return 0, 0
	}
	return int16(outL), int16(outR)
}

// applyLatchedKeys applies the KON/KOFF bitmaps latched since the previous
// tick to each voice, then clears both latches.
func (d *DSP) applyLatchedKeys(ram *RAM) {
	for i, v := range d.voices {
		bit := byte(1) << uint(i)
		if d.kon&bit != 0 {
			v.keyOn(ram, d.dir)
		}
		if d.koff&bit != 0 {
			v.keyOff()
		}
	}
	d.kon = 0
	d.koff = 0
}

func (d *DSP) advanceNoise() {
	period := noiseClockPeriod(d.noiseClock)
	if period == 0 || d.globalCounter%period != 0 {
		return
	}
	bit := (d.lfsr ^ (d.lfsr >> 1)) & 1
	d.lfsr = (d.lfsr >> 1) | (bit << 14)
}

// noiseClockPeriod maps the 5-bit FLG noise-clock field to a global-counter
// divisor; it shares the same rate table shape as the envelope generator.
func noiseClockPeriod(clock byte) uint16 {
	if clock == 0 {
		return 0
	}
	return counterRates[clock&0x1F]
}

// echoGeometry recomputes the echo buffer's base address and length from
// ESA/EDL.
func (d *DSP) echoGeometry() {
	d.echoBase = uint32(d.esa) << 8
	field := d.edl & 0xF
	if field == 0 {
		d.echoLen = 4
	} else {
		d.echoLen = uint32(field) << 11
	}
}

// clearEchoBuffer zeroes the current ESA/EDL-defined echo region in RAM.
// Called once from LoadSnapshot: host RAM may contain noise at boot, and
// spec.md's external interface lists this as part of the one-shot
// initializer regardless of what the snapshot's own RAM image carried.
func (d *DSP) clearEchoBuffer(ram *RAM) {
	for i := uint32(0); i < d.echoLen; i++ {
		ram.Write8(uint16(d.echoBase+i), 0)
	}
}

// readFIR applies the 8-tap FIR filter to the echo ring buffer.
func (d *DSP) readFIR(ram *RAM) (l, r int32) {
	cursor := d.echoBase + d.echoCursor
	sl := int32(int16(ram.Read16(uint16(cursor)))) >> 1
	sr := int32(int16(ram.Read16(uint16(cursor+2)))) >> 1

	d.firDelay[d.firCursor][0] = sl
	d.firDelay[d.firCursor][1] = sr

	for i := 0; i < 8; i++ {
		tap := (d.firCursor - i + 8) % 8
		l += (d.firDelay[tap][0] * int32(d.fir[i])) >> 6
		r += (d.firDelay[tap][1] * int32(d.fir[i])) >> 6
	}

	d.firCursor = (d.firCursor + 1) % 8
	return l, r
}

// writeEcho writes the echo feedback mix back into the ring buffer and
// advances the echo cursor, gated on FLG bit 5 (echo-write-disable).
func (d *DSP) writeEcho(ram *RAM, firOutL, firOutR int32) {
	if !d.flgEchoWriteDisable {
		cursor := d.echoBase + d.echoCursor
		wl := saturate16(d.echoAccumL + (firOutL*int32(d.efb))>>7)
		wr := saturate16(d.echoAccumR + (firOutR*int32(d.efb))>>7)
		ram.Write16(uint16(cursor), uint16(int16(wl)))
		ram.Write16(uint16(cursor+2), uint16(int16(wr)))
	}
	if d.echoLen == 0 {
		d.echoGeometry()
	}
	d.echoCursor += 4
	if d.echoCursor >= d.echoLen {
		d.echoCursor = 0
	}
}

// dspRegAddr masks off address bit 7: the register file only decodes 7
// address bits, so bit 7 aliases back onto the same 128-byte range.
func dspRegAddr(addr byte) byte { return addr & 0x7F }

// ReadRegister implements dsp_read_register: undefined addresses read 0.
func (d *DSP) ReadRegister(addr byte) byte {
	addr = dspRegAddr(addr)
	if addr < 0x80 && addr&0x0F <= 0x09 {
		v := d.voices[addr>>4]
		switch addr & 0x0F {
		case 0x00:
			return byte(v.volL)
		case 0x01:
			return byte(v.volR)
		case 0x02:
			return byte(v.pitch)
		case 0x03:
			return byte(v.pitch >> 8)
		case 0x04:
			return v.sampleSrc
		case 0x05:
			return v.env.getADSR1()
		case 0x06:
			return v.env.getADSR2()
		case 0x07:
			return v.env.getGain()
		case 0x08:
			return v.env.envx()
		case 0x09:
			return byte(v.lastOutput >> 8)
		}
	}

	switch addr {
	case 0x0C:
		return byte(d.masterVolL)
	case 0x1C:
		return byte(d.masterVolR)
	case 0x2C:
		return byte(d.echoVolL)
	case 0x3C:
		return byte(d.echoVolR)
	case 0x4C:
		return d.kon
	case 0x5C:
		return d.koff
	case 0x6C:
		return d.flagsByte()
	case 0x7C:
		return d.endxByte()
	case 0x0D:
		return byte(d.efb)
	case 0x2D:
		return d.pmon
	case 0x3D:
		return d.non
	case 0x4D:
		return d.eon
	case 0x5D:
		return d.dir
	case 0x6D:
		return d.esa
	case 0x7D:
		return d.edl
	}
	if addr&0x0F == 0x0F {
		return byte(d.fir[addr>>4])
	}
	return 0
}

func (d *DSP) flagsByte() byte {
	var b byte
	if d.flgReset {
		b |= 0x80
	}
	if d.flgMute {
		b |= 0x40
	}
	if d.flgEchoWriteDisable {
		b |= 0x20
	}
	b |= d.noiseClock & 0x1F
	return b
}

func (d *DSP) endxByte() byte {
	var b byte
	for i, v := range d.voices {
		if v.endxFlag {
			b |= 1 << uint(i)
		}
	}
	return b
}

// WriteRegister writes to ENDX always clear every ENDX flag, regardless of
// the value written.
func (d *DSP) WriteRegister(addr byte, value byte) {
	addr = dspRegAddr(addr)
	if addr < 0x80 && addr&0x0F <= 0x09 {
		v := d.voices[addr>>4]
		switch addr & 0x0F {
		case 0x00:
			v.volL = int8(value)
		case 0x01:
			v.volR = int8(value)
		case 0x02:
			v.pitch = (v.pitch &^ 0x00FF) | uint16(value)
		case 0x03:
			v.pitch = (v.pitch & 0x00FF) | uint16(value)<<8
		case 0x04:
			v.sampleSrc = value
		case 0x05:
			v.env.setADSR1(value)
		case 0x06:
			v.env.setADSR2(value)
		case 0x07:
			v.env.setGain(value)
		case 0x08, 0x09:
			// ENVX/OUTX are read-only mirrors; writes are ignored.
		}
		return
	}

	switch addr {
	case 0x0C:
		d.masterVolL = int8(value)
	case 0x1C:
		d.masterVolR = int8(value)
	case 0x2C:
		d.echoVolL = int8(value)
	case 0x3C:
		d.echoVolR = int8(value)
	case 0x4C:
		d.kon = value
	case 0x5C:
		d.koff = value
	case 0x6C:
		d.flgReset = value&0x80 != 0
		d.flgMute = value&0x40 != 0
		d.flgEchoWriteDisable = value&0x20 != 0
		d.noiseClock = value & 0x1F
	case 0x7C:
		for _, v := range d.voices {
			v.endxFlag = false
		}
	case 0x0D:
		d.efb = int8(value)
	case 0x2D:
		d.pmon = value &^ 0x01 // bit 0 (channel 0) is ignored: there's no prior channel to modulate from
	case 0x3D:
		d.non = value
	case 0x4D:
		d.eon = value
	case 0x5D:
		d.dir = value
	case 0x6D:
		d.esa = value
		d.echoGeometry()
	case 0x7D:
		d.edl = value
		d.echoGeometry() // cursor is deliberately left untouched; see DESIGN.md
	default:
		if addr&0x0F == 0x0F {
			d.fir[addr>>4] = int8(value)
		}
	}
}
