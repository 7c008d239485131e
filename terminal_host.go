// terminal_host.go - interactive keypress control for live playback
//
// A non-blocking raw-mode read loop routed to a single stop signal: playback
// here has nothing resembling a terminal peripheral to feed, just a quit
// keypress to watch for.

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalHost watches stdin for a quit keypress while audio plays in the
// background. Only instantiated by main.go for interactive runs.
type TerminalHost struct {
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
	oldTermState *term.State

	// Quit is closed once a quit key is observed.
	Quit chan struct{}
}

// NewTerminalHost creates a host adapter that reads stdin for interactive
// playback control.
func NewTerminalHost() *TerminalHost {
	return &TerminalHost{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
		Quit:   make(chan struct{}),
	}
}

// Start puts stdin into raw, non-blocking mode and begins watching for the
// quit key ('q' or Ctrl-C) in a background goroutine. Call Stop() to
// restore stdin.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "terminal_host: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)
		quitClosed := false

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 && !quitClosed {
				b := buf[0]
				if b == 'q' || b == 'Q' || b == 0x03 { // Ctrl-C
					close(h.Quit)
					quitClosed = true
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// Stop terminates the stdin-watching goroutine and restores stdin to
// blocking, cooked mode.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
