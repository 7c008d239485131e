package main

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestWriteWAVHeaderFields(t *testing.T) {
	frames := [][2]int16{{100, -100}, {200, -200}, {300, -300}}
	var buf bytes.Buffer
	if err := WriteWAV(&buf, frames, 32000); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}

	data := buf.Bytes()
	if len(data) != 44+len(frames)*4 {
		t.Fatalf("len(data) = %d, want %d", len(data), 44+len(frames)*4)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE markers")
	}
	if string(data[12:16]) != "fmt " {
		t.Fatalf("missing fmt chunk id")
	}
	numChannels := binary.LittleEndian.Uint16(data[22:24])
	if numChannels != 2 {
		t.Errorf("NumChannels = %d, want 2", numChannels)
	}
	sampleRate := binary.LittleEndian.Uint32(data[24:28])
	if sampleRate != 32000 {
		t.Errorf("SampleRate = %d, want 32000", sampleRate)
	}
	bitsPerSample := binary.LittleEndian.Uint16(data[34:36])
	if bitsPerSample != 16 {
		t.Errorf("BitsPerSample = %d, want 16", bitsPerSample)
	}
	if string(data[36:40]) != "data" {
		t.Fatalf("missing data chunk id")
	}
	dataSize := binary.LittleEndian.Uint32(data[40:44])
	if dataSize != uint32(len(frames)*4) {
		t.Errorf("DataSize = %d, want %d", dataSize, len(frames)*4)
	}
}

func TestWriteWAVSampleBytesInterleaved(t *testing.T) {
	frames := [][2]int16{{1, -1}}
	var buf bytes.Buffer
	if err := WriteWAV(&buf, frames, 32000); err != nil {
		t.Fatalf("WriteWAV: %v", err)
	}
	sampleData := buf.Bytes()[44:]
	left := int16(binary.LittleEndian.Uint16(sampleData[0:2]))
	right := int16(binary.LittleEndian.Uint16(sampleData[2:4]))
	if left != 1 || right != -1 {
		t.Errorf("decoded samples = (%d,%d), want (1,-1)", left, right)
	}
}

func TestWriteWAVEmptyFrames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWAV(&buf, nil, 32000); err != nil {
		t.Fatalf("WriteWAV with no frames: %v", err)
	}
	if buf.Len() != 44 {
		t.Errorf("len = %d, want 44 (header only)", buf.Len())
	}
}
