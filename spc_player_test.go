package main

import "testing"

func newLoadedPlayer(t *testing.T) *Player {
	t.Helper()
	data := make([]byte, snapDSPOffset+snapDSPSize)
	copy(data, spcMagic)
	copy(data[idSongTitleOffset:], []byte("Test Song"))
	copy(data[idArtistOffset:], []byte("Test Artist"))
	copy(data[idDurationOffset:], []byte("002"))

	p := NewPlayer(StrictFatal)
	if err := p.LoadData(data); err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	return p
}

func TestPlayerRenderProducesRequestedFrames(t *testing.T) {
	p := newLoadedPlayer(t)
	frames, err := p.Render(100)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if len(frames) != 100 {
		t.Fatalf("len(frames) = %d, want 100", len(frames))
	}
}

func TestPlayerRenderWithoutLoadErrors(t *testing.T) {
	p := NewPlayer(StrictFatal)
	if _, err := p.Render(10); err == nil {
		t.Fatal("want error rendering an unloaded player")
	}
}

func TestPlayerPlayStopIsPlaying(t *testing.T) {
	p := newLoadedPlayer(t)
	if p.IsPlaying() {
		t.Fatal("a freshly loaded player must not be playing")
	}
	p.Play()
	if !p.IsPlaying() {
		t.Fatal("IsPlaying must be true after Play")
	}
	p.Stop()
	if p.IsPlaying() {
		t.Fatal("IsPlaying must be false after Stop")
	}
}

func TestPlayerNextFrameSilentUntilPlaying(t *testing.T) {
	p := newLoadedPlayer(t)
	l, r := p.NextFrame()
	if l != 0 || r != 0 {
		t.Errorf("NextFrame before Play = (%d,%d), want (0,0)", l, r)
	}
}

func TestPlayerMetadataSurfacesID666Tags(t *testing.T) {
	p := newLoadedPlayer(t)
	meta := p.Metadata()
	if meta.Title != "Test Song" {
		t.Errorf("Title = %q, want %q", meta.Title, "Test Song")
	}
	if meta.Author != "Test Artist" {
		t.Errorf("Author = %q, want %q", meta.Author, "Test Artist")
	}
}

func TestPlayerDurationTextFormat(t *testing.T) {
	p := newLoadedPlayer(t)
	if got := p.DurationText(); got != "0:02" {
		t.Errorf("DurationText = %q, want %q", got, "0:02")
	}
}

func TestPlayerSampleRateIsFixed(t *testing.T) {
	p := newLoadedPlayer(t)
	if p.SampleRate() != DefaultSampleRate {
		t.Errorf("SampleRate = %d, want %d", p.SampleRate(), DefaultSampleRate)
	}
}

func TestPlayerDurationFallsBackWhenUntagged(t *testing.T) {
	data := make([]byte, snapDSPOffset+snapDSPSize)
	copy(data, spcMagic)
	p := NewPlayer(StrictFatal)
	if err := p.LoadData(data); err != nil {
		t.Fatalf("LoadData: %v", err)
	}
	if p.DurationSeconds() != defaultRenderSeconds {
		t.Errorf("DurationSeconds = %v, want fallback %v", p.DurationSeconds(), defaultRenderSeconds)
	}
}
