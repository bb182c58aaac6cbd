package commands

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a single status line while a command waits on the API.
type spinner struct {
	label    string
	interval time.Duration
	writer   io.Writer
	stop     chan struct{}
	wg       sync.WaitGroup
	once     sync.Once
}

// startSpinner draws on w until the returned spinner is stopped. Writers that
// are not terminals get a no-op spinner so piped output stays clean.
func startSpinner(w io.Writer, label string) *spinner {
	s := &spinner{label: label, interval: 80 * time.Millisecond, writer: w, stop: make(chan struct{})}
	if !isTerminal(w) {
		return s
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for idx := 0; ; idx++ {
			fmt.Fprintf(s.writer, "\r%s %s", spinnerFrames[idx%len(spinnerFrames)], s.label)
			select {
			case <-s.stop:
				fmt.Fprint(s.writer, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
	return s
}

// Stop clears the line and waits for the animation to exit. Safe to call twice.
func (s *spinner) Stop() {
	s.once.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
