package term

import (
	"fmt"
	"io"
)

// ANSI escape sequences for the plain render loop. The live TUI goes
// through Bubble Tea instead and never touches these.
const (
	clearSeq      = "\x1b[2J\x1b[H"
	hideCursorSeq = "\x1b[?25l"
	showCursorSeq = "\x1b[?25h"
)

// Display receives one serialized frame per cycle. A failure of either
// operation is fatal to the render loop: there is nothing useful to do
// with frames that cannot reach the terminal.
type Display interface {
	Clear() error
	WriteFrame(frame string) error
}

// ANSI is a Display over any io.Writer, normally stdout. Clearing is an
// escape sequence, so redirecting the stream to a file keeps every
// frame intact.
type ANSI struct {
	w io.Writer
}

func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: w}
}

func (d *ANSI) Clear() error {
	if _, err := io.WriteString(d.w, clearSeq); err != nil {
		return fmt.Errorf("clear display: %w", err)
	}
	return nil
}

func (d *ANSI) WriteFrame(frame string) error {
	if _, err := io.WriteString(d.w, frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// HideCursor and ShowCursor bracket the render loop. Write errors are
// ignored; frame writes report the stream state.
func (d *ANSI) HideCursor() { _, _ = io.WriteString(d.w, hideCursorSeq) }
func (d *ANSI) ShowCursor() { _, _ = io.WriteString(d.w, showCursorSeq) }
