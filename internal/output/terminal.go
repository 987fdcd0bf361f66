package output

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	escClear      = "\033[2J\033[H"
	escHideCursor = "\033[?25l"
	escShowCursor = "\033[?25h"
)

// Screen redraws a full-terminal view for watch mode
type Screen struct {
	w      io.Writer
	colors *Colors
}

// NewScreen creates a screen writing to w. A nil colors renders plain text.
func NewScreen(w io.Writer, colors *Colors) *Screen {
	if colors == nil {
		colors = NewColors(ColorNever)
	}
	return &Screen{w: w, colors: colors}
}

// Begin hides the cursor for the duration of the watch
func (s *Screen) Begin() {
	_, _ = fmt.Fprint(s.w, escHideCursor)
}

// Frame clears the screen and writes the refresh status line
func (s *Screen) Frame(updated time.Time, every time.Duration) {
	_, _ = fmt.Fprint(s.w, escClear)
	_, _ = fmt.Fprintln(s.w, s.colors.Muted("Last update: %s | Next refresh in %s | Press Ctrl+C to exit",
		updated.Format("15:04:05"), every))
	_, _ = fmt.Fprintln(s.w)
}

// End clears the screen and restores the cursor
func (s *Screen) End() {
	_, _ = fmt.Fprint(s.w, escClear)
	_, _ = fmt.Fprint(s.w, escShowCursor)
	_, _ = fmt.Fprintln(s.w, "Watch mode ended.")
}

// InterruptContext returns a context cancelled on Ctrl+C or SIGTERM
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
