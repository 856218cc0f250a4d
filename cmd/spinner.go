package cmd

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	consts "github.com/khanhnv2901/arch-health/internal/shared/constants"
)

var spinnerFrames = []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏")

// spinner displays an animated braille spinner on the status stream while an
// external check runs.
type spinner struct {
	mu      sync.Mutex
	w       io.Writer
	message string
	done    chan struct{}
	exited  chan struct{}
	running bool
}

func newSpinner(w io.Writer) *spinner {
	return &spinner{w: w}
}

// Start begins the animation with the given message.
func (s *spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		s.message = message
		return
	}
	s.message = message
	s.done = make(chan struct{})
	s.exited = make(chan struct{})
	s.running = true

	go s.loop(s.done, s.exited)
}

// Stop halts the spinner, clears its line, and prints final when non-empty.
// Stopping a spinner that is not running is a no-op.
func (s *spinner) Stop(final string) {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	done, exited := s.done, s.exited
	width := len(s.message) + 4
	s.mu.Unlock()

	close(done)
	<-exited

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "\r%s\r", strings.Repeat(" ", width))
	if final != "" {
		fmt.Fprintln(s.w, final)
	}
}

func (s *spinner) loop(done <-chan struct{}, exited chan<- struct{}) {
	defer close(exited)
	tick := time.NewTicker(consts.SpinnerInterval)
	defer tick.Stop()

	i := 0
	for {
		select {
		case <-done:
			return
		case <-tick.C:
			s.mu.Lock()
			fmt.Fprintf(s.w, "\r%c %s", spinnerFrames[i%len(spinnerFrames)], s.message)
			s.mu.Unlock()
			i++
		}
	}
}
