// music_interfaces.go - common interfaces for music file parsers and players

package main

// MusicFile is implemented by all parsed music file types.
type MusicFile interface {
	GetMetadata() MusicMetadata
	GetData() []byte
}

// MusicPlayer is implemented by all music players, giving a host a uniform
// load/play/stop surface regardless of the underlying format.
type MusicPlayer interface {
	Load(path string) error
	LoadData(data []byte) error
	Play()
	Stop()
	IsPlaying() bool
	DurationSeconds() float64
	DurationText() string
}
