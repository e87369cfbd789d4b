package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// spinnerFrames is the braille animation cycle shared by every spinner.
var spinnerFrames = [...]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a terminal progress indicator for operations long enough to
// feel slow, like Graphviz layout of a big target graph. It animates on
// stderr, keeping stdout clean for command output, and stops on Stop or
// when its context is cancelled.
type Spinner struct {
	message string
	out     io.Writer
	ctx     context.Context
	cancel  context.CancelFunc
	stop    sync.Once
	done    chan struct{}
}

// newSpinnerWithContext creates a spinner bound to ctx. Cancelling ctx stops
// the animation without a Stop call.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	sctx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		out:     os.Stderr,
		ctx:     sctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Start begins the animation and returns immediately. Only the animation
// goroutine writes to the terminal; it erases its own line before exiting,
// so no locking is needed.
func (s *Spinner) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		for i := 0; ; i++ {
			select {
			case <-s.ctx.Done():
				fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Fprintf(s.out, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
			}
		}
	}()
}

// Stop halts the animation and blocks until the line is erased. Safe to
// call more than once; must follow Start.
func (s *Spinner) Stop() {
	s.stop.Do(func() {
		s.cancel()
		<-s.done
	})
}

// StopWithSuccess stops the spinner and prints a success line.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and prints an error line.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled reports whether the spinner's context is done. After Stop this
// is always true; callers that care about an external cancellation check it
// before stopping.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}
