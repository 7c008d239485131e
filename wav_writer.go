// wav_writer.go - minimal stereo 16-bit PCM WAV writer
//
// A natural complement to Render() for the -wav flag. Uses encoding/binary
// directly to build the RIFF/WAVE header and interleaved PCM body.

package main

import (
	"encoding/binary"
	"fmt"
	"io"
)

const (
	wavBitsPerSample = 16
	wavChannels      = 2
)

// WriteWAV writes frames as a canonical 44-byte-header PCM WAV file at the
// given sample rate.
func WriteWAV(w io.Writer, frames [][2]int16, sampleRate int) error {
	dataSize := uint32(len(frames) * wavChannels * (wavBitsPerSample / 8))
	byteRate := uint32(sampleRate * wavChannels * (wavBitsPerSample / 8))
	blockAlign := uint16(wavChannels * (wavBitsPerSample / 8))

	header := struct {
		RIFFID        [4]byte
		RIFFSize      uint32
		WaveID        [4]byte
		FmtID         [4]byte
		FmtSize       uint32
		AudioFormat   uint16
		NumChannels   uint16
		SampleRate    uint32
		ByteRate      uint32
		BlockAlign    uint16
		BitsPerSample uint16
		DataID        [4]byte
		DataSize      uint32
	}{
		RIFFID:        [4]byte{'R', 'I', 'F', 'F'},
		RIFFSize:      36 + dataSize,
		WaveID:        [4]byte{'W', 'A', 'V', 'E'},
		FmtID:         [4]byte{'f', 'm', 't', ' '},
		FmtSize:       16,
		AudioFormat:   1, // PCM
		NumChannels:   wavChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      byteRate,
		BlockAlign:    blockAlign,
		BitsPerSample: wavBitsPerSample,
		DataID:        [4]byte{'d', 'a', 't', 'a'},
		DataSize:      dataSize,
	}

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}

	buf := make([]byte, len(frames)*4)
	for i, f := range frames {
		off := i * 4
		binary.LittleEndian.PutUint16(buf[off:], uint16(f[0]))
		binary.LittleEndian.PutUint16(buf[off+2:], uint16(f[1]))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("write wav data: %w", err)
	}
	return nil
}
