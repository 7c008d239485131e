// main.go - spcplay: render or play a .spc snapshot
//
// Parses flags with github.com/spf13/pflag and wires the SPC file parser,
// the render driver and an audio sink together. The CLI surface, the file
// parser's caller and the audio sink live here, outside the CPU/DSP core
// itself.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
)

func boilerPlate() {
	fmt.Println("spcplay - SPC700/S-DSP snapshot player")
	fmt.Println("Renders or plays back SNES .spc sound snapshots.")
}

func main() {
	var (
		wavOut      = pflag.StringP("wav", "w", "", "render to this WAV file instead of playing live")
		seconds     = pflag.Float64P("duration", "d", 0, "seconds to render/play (default: the file's own ID666 duration)")
		permissive  = pflag.BoolP("permissive", "p", false, "let SLEEP/STOP halt and BRK/RETI act as no-ops instead of fatal errors")
		interactive = pflag.BoolP("interactive", "i", false, "enable 'q' to quit during live playback")
		quiet       = pflag.BoolP("quiet", "q", false, "suppress the banner and metadata print")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spcplay [options] file.spc\n\nOptions:\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(1)
	}

	if !*quiet {
		boilerPlate()
	}

	strictness := StrictFatal
	if *permissive {
		strictness = StrictPermissive
	}

	player := NewPlayer(strictness)
	if err := player.Load(pflag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "spcplay: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		meta := player.Metadata()
		fmt.Printf("Title:  %s\n", meta.Title)
		fmt.Printf("Artist: %s\n", meta.Author)
		fmt.Printf("Length: %s\n", player.DurationText())
	}

	dur := *seconds
	if dur <= 0 {
		dur = player.DurationSeconds()
	}
	frameCount := int(dur * float64(player.SampleRate()))

	if *wavOut != "" {
		renderToWAV(player, *wavOut, frameCount)
		return
	}
	playLive(player, frameCount, *interactive, *quiet)
}

func renderToWAV(player *Player, path string, frameCount int) {
	frames, err := player.Render(frameCount)
	if err != nil && len(frames) == 0 {
		fmt.Fprintf(os.Stderr, "spcplay: render: %v\n", err)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "spcplay: render stopped early: %v\n", err)
	}

	f, ferr := os.Create(path)
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "spcplay: create %s: %v\n", path, ferr)
		os.Exit(1)
	}
	defer f.Close()

	if werr := WriteWAV(f, frames, player.SampleRate()); werr != nil {
		fmt.Fprintf(os.Stderr, "spcplay: write wav: %v\n", werr)
		os.Exit(1)
	}
	fmt.Printf("wrote %s (%d frames)\n", path, len(frames))
}

func playLive(player *Player, frameCount int, interactive bool, quiet bool) {
	sink, err := NewOtoPlayer(player.SampleRate())
	if err != nil {
		fmt.Fprintf(os.Stderr, "spcplay: audio init: %v\n", err)
		os.Exit(1)
	}
	defer sink.Close()

	sink.SetupPlayer(player)
	player.Play()
	sink.Start()

	var host *TerminalHost
	if interactive {
		host = NewTerminalHost()
		host.Start()
		if !quiet {
			fmt.Println("press 'q' to stop")
		}
	}

	framesPerTick := player.SampleRate() / 10
	tickDuration := time.Second / 10
	played := 0
	for played < frameCount {
		if host != nil {
			select {
			case <-host.Quit:
				played = frameCount
				continue
			default:
			}
		}
		step := framesPerTick
		if frameCount-played < step {
			step = frameCount - played
		}
		played += step
		time.Sleep(tickDuration)
	}

	player.Stop()
	sink.Stop()
	if host != nil {
		host.Stop()
	}
}
