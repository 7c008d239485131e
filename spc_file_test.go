package main

import (
	"bytes"
	"testing"
)

func newMinimalSPCBytes(t *testing.T) []byte {
	t.Helper()
	data := make([]byte, snapDSPOffset+snapDSPSize)
	copy(data, spcMagic)

	putPadded := func(offset int, s string, width int) {
		copy(data[offset:offset+width], s)
	}
	putPadded(idSongTitleOffset, "Tower Rave", id666FieldLen)
	putPadded(idArtistOffset, "The Composer", id666FieldLen)
	copy(data[idDurationOffset:], []byte("123"))
	copy(data[idFadeOffset:], []byte("02000"))
	return data
}

func TestParseSPCFileRejectsBadMagic(t *testing.T) {
	data := newMinimalSPCBytes(t)
	copy(data, []byte("not an spc file"))
	_, err := ParseSPCFile(data)
	if err == nil {
		t.Fatal("want error for bad magic")
	}
}

func TestParseSPCFileRejectsShortData(t *testing.T) {
	_, err := ParseSPCFile(make([]byte, 10))
	if err == nil {
		t.Fatal("want error for undersized file")
	}
}

func TestParseSPCFileExtractsID666Tags(t *testing.T) {
	data := newMinimalSPCBytes(t)
	f, err := ParseSPCFile(data)
	if err != nil {
		t.Fatalf("ParseSPCFile: %v", err)
	}
	if f.Tags.SongTitle != "Tower Rave" {
		t.Errorf("SongTitle = %q, want %q", f.Tags.SongTitle, "Tower Rave")
	}
	if f.Tags.Artist != "The Composer" {
		t.Errorf("Artist = %q, want %q", f.Tags.Artist, "The Composer")
	}
	if f.Tags.DurationSecs != 123 {
		t.Errorf("DurationSecs = %d, want 123", f.Tags.DurationSecs)
	}
	if f.Tags.FadeMillis != 2000 {
		t.Errorf("FadeMillis = %d, want 2000", f.Tags.FadeMillis)
	}
}

func TestSPCFileGetMetadataAndGetData(t *testing.T) {
	data := newMinimalSPCBytes(t)
	f, err := ParseSPCFile(data)
	if err != nil {
		t.Fatalf("ParseSPCFile: %v", err)
	}
	meta := f.GetMetadata()
	if meta.Title != "Tower Rave" || meta.Author != "The Composer" {
		t.Errorf("metadata = %+v, want title/author from ID666 tags", meta)
	}
	if meta.System != "SNES" {
		t.Errorf("System = %q, want SNES", meta.System)
	}
	if meta.Duration != 125 {
		t.Errorf("Duration = %v, want 125 (123s + 2000ms fade)", meta.Duration)
	}
	if !bytes.Equal(f.GetData(), data) {
		t.Error("GetData must return the raw snapshot bytes unchanged")
	}
}
