// spc_brr.go - Bit Rate Reduction (BRR) sample decoder
//
// 9-byte blocks (1 header + 16 nibbles), four fixed prediction filters, a
// rolling 4-sample output history and Gaussian-interpolated playback driven
// by a 14-bit pitch stepping a 12-bit fractional sample counter.

package main

const brrBlockBytes = 9

// brrDecoder holds one voice's BRR playback state: the source cursor in
// RAM, the current block's unpacked nibbles, prediction history and the
// fractional pitch counter that drives Gaussian interpolation.
type brrDecoder struct {
	blockAddr uint16 // address of the current 9-byte block
	nibble    int    // next nibble to decode within the block, 0..15
	loopFlag  bool
	endFlag   bool

	h1, h2 int32 // most-recent and second-most-recent decoded samples

	// history holds the last four decoded output samples, oldest first,
	// feeding the Gaussian interpolator.
	history [4]int32

	counter uint16 // 12-bit fractional sample position, 0..0xFFF between advances
}

func newBRRDecoder() *brrDecoder {
	return &brrDecoder{}
}

// start begins playback at the given block address, clearing prediction
// and interpolation history the way a fresh key-on does.
func (b *brrDecoder) start(addr uint16) {
	b.blockAddr = addr
	b.nibble = 0
	b.endFlag = false
	b.loopFlag = false
	b.h1, b.h2 = 0, 0
	b.history = [4]int32{}
	b.counter = 0
}

func (b *brrDecoder) header(ram *RAM) (shift byte, filter byte) {
	h := ram.Read8(b.blockAddr)
	return (h >> 4) & 0xF, (h >> 2) & 0x3
}

// decodeNext unpacks the next nibble of the current block, pushes the
// result onto the history ring, and advances to the following block or
// loop point once all 16 nibbles have been consumed.
func (b *brrDecoder) decodeNext(ram *RAM, loopAddr uint16) {
	if b.nibble == 0 {
		header := ram.Read8(b.blockAddr)
		b.loopFlag = header&0x2 != 0
		b.endFlag = header&0x1 != 0
	}

	shift, filter := b.header(ram)
	raw := ram.Read8(b.blockAddr + 1 + uint16(b.nibble/2))
	var nib byte
	if b.nibble%2 == 0 {
		nib = raw >> 4
	} else {
		nib = raw & 0xF
	}

	sample := b.decodeNibble(nib, shift, filter)
	b.pushHistory(sample)

	b.nibble++
	if b.nibble == 16 {
		b.nibble = 0
		if b.endFlag {
			b.blockAddr = loopAddr
		} else {
			b.blockAddr += brrBlockBytes
		}
	}
}

func (b *brrDecoder) pushHistory(sample int32) {
	b.history[0] = b.history[1]
	b.history[1] = b.history[2]
	b.history[2] = b.history[3]
	b.history[3] = sample
}

// decodeNibble sign-extends a 4-bit BRR sample, applies the block shift and
// the selected prediction filter, and clips to the hardware's output range.
func (b *brrDecoder) decodeNibble(nibble byte, shift byte, filter byte) int32 {
	s := int32(int8(nibble<<4)) >> 4 // sign-extend 4-bit value
	s <<= shift

	var pred int32
	switch filter {
	case 0:
		pred = 0
	case 1:
		pred = b.h1 + ((-b.h1) >> 4)
	case 2:
		pred = b.h1*2 + ((-(b.h1 * 3)) >> 5) - b.h2 + (b.h2 >> 4)
	case 3:
		pred = b.h1*2 + ((-(b.h1 * 13)) >> 6) - b.h2 + ((b.h2 * 3) >> 4)
	}

	sample := clipBRR(s + pred)
	b.h2 = b.h1
	b.h1 = sample
	return sample
}

func clipBRR(v int32) int32 {
	if v < -16378 {
		return -16378
	}
	if v > 16376 {
		return 16376
	}
	return v
}

// advance steps the fractional counter by pitch (14-bit) and decodes as
// many new samples as the counter overflow demands, honoring the end/loop
// flags latched from the most recent block header. loopAddr is the
// loop-start address from the sample directory entry.
func (b *brrDecoder) advance(ram *RAM, pitch uint16, loopAddr uint16) {
	b.counter += pitch
	for b.counter >= 0x1000 {
		b.counter -= 0x1000
		b.decodeNext(ram, loopAddr)
	}
}

// interpolate produces one output sample via the 4-tap Gaussian filter
// indexed by the fractional counter's top byte.
func (b *brrDecoder) interpolate() int32 {
	f := int(b.counter>>4) & 0xFF
	out := (gauss(0x0FF-f)*b.history[0])>>10 +
		(gauss(0x1FF-f)*b.history[1])>>10 +
		(gauss(0x100+f)*b.history[2])>>10 +
		(gauss(0x000+f)*b.history[3])>>10
	return out >> 1
}
