// spc_file.go - .spc container parsing
//
// Reads the fixed 0x10200-byte SPC snapshot container: a magic-prefix
// check, then the ID666 metadata block read as fixed-width padded string
// fields and ASCII-digit duration fields (song/game title, artist, duration)
// a real player surfaces to a user alongside the raw CPU/DSP snapshot.

package main

import (
	"bytes"
	"fmt"
)

var spcMagic = []byte("SNES-SPC700 Sound File Data")

var _ MusicFile = (*SPCFile)(nil)

// ID666Tags holds the human-readable metadata block that follows the
// register/RAM/DSP dump in a .spc file.
type ID666Tags struct {
	SongTitle    string
	GameTitle    string
	DumperName   string
	Comments     string
	Artist       string
	DurationSecs int
	FadeMillis   int
}

const (
	idSongTitleOffset  = 0x2E
	idGameTitleOffset  = 0x4E
	idDumperOffset     = 0x6E
	idCommentsOffset   = 0x7E
	idDurationOffset   = 0x9E
	idFadeOffset       = 0xA1
	idArtistOffset     = 0xB1
	id666FieldLen      = 32
	id666DumperFieldLen = 16
)

// SPCFile is a fully parsed .spc container: the raw snapshot bytes plus
// its ID666 metadata.
type SPCFile struct {
	Raw  []byte
	Tags ID666Tags
}

// ParseSPCFile validates the magic header and extracts the ID666 block.
// The raw bytes are kept as-is for LoadSnapshot to consume.
func ParseSPCFile(data []byte) (*SPCFile, error) {
	if len(data) < snapDSPOffset+snapDSPSize {
		return nil, fmt.Errorf("spc file too short: %d bytes", len(data))
	}
	if !bytes.HasPrefix(data, spcMagic) {
		return nil, &SPCError{Kind: KindMalformedSnapshot, Detail: "missing SNES-SPC700 magic"}
	}

	f := &SPCFile{Raw: data}
	f.Tags = ID666Tags{
		SongTitle:  parsePaddedString(data[idSongTitleOffset : idSongTitleOffset+id666FieldLen]),
		GameTitle:  parsePaddedString(data[idGameTitleOffset : idGameTitleOffset+id666FieldLen]),
		DumperName: parsePaddedString(data[idDumperOffset : idDumperOffset+id666DumperFieldLen]),
		Comments:   parsePaddedString(data[idCommentsOffset : idCommentsOffset+id666FieldLen]),
		Artist:     parsePaddedString(data[idArtistOffset : idArtistOffset+id666FieldLen]),
	}
	f.Tags.DurationSecs = parseAsciiDigits(data, idDurationOffset, 3)
	f.Tags.FadeMillis = parseAsciiDigits(data, idFadeOffset, 5)
	return f, nil
}

// GetMetadata implements MusicFile, surfacing the ID666 tags in the shape a
// host UI expects regardless of which format it loaded.
func (f *SPCFile) GetMetadata() MusicMetadata {
	return MusicMetadata{
		Title:    f.Tags.SongTitle,
		Author:   f.Tags.Artist,
		System:   "SNES",
		Duration: float64(f.Tags.DurationSecs) + float64(f.Tags.FadeMillis)/1000,
	}
}

// GetData implements MusicFile, returning the raw snapshot bytes LoadSnapshot consumes.
func (f *SPCFile) GetData() []byte { return f.Raw }

// parseAsciiDigits reads up to n ASCII digit bytes starting at offset,
// stopping at the first non-digit; ID666's text variant stores durations
// this way rather than as binary integers.
func parseAsciiDigits(data []byte, offset int, n int) int {
	if offset+n > len(data) {
		return 0
	}
	v := 0
	for i := 0; i < n; i++ {
		b := data[offset+i]
		if b < '0' || b > '9' {
			break
		}
		v = v*10 + int(b-'0')
	}
	return v
}
