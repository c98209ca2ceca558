// Package term is the terminal abstraction layer: it owns the session
// output buffer, the canonical pen state, cursor and size bookkeeping,
// and delegates sequence encoding to a protocol driver selected by
// probing the terminal type.
package term

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/termdrive/internal/term/core"
	"github.com/dshills/termdrive/internal/term/driver"

	// Register the default output driver.
	_ "github.com/dshills/termdrive/internal/term/driver/xterm"
)

// Fallback size when neither the capability source nor the caller
// knows better.
const (
	defaultLines = 24
	defaultCols  = 80
)

// Options configures a terminal session.
type Options struct {
	// Output receives flushed escape sequences. Required.
	Output io.Writer

	// TermType selects the driver; defaults to $TERM.
	TermType string

	// Lines and Cols set the initial size guess; a driver's
	// capability source may override it during construction.
	Lines, Cols int

	// BufferLimit caps the output buffer between flushes; 0 means
	// DefaultBufferLimit, negative means unlimited.
	BufferLimit int

	// OnRepaint is called with the affected rectangle when a scroll
	// request is declined by the driver and must be repainted.
	OnRepaint func(core.Rect)

	// Logger receives debug events; nil discards them.
	Logger *slog.Logger
}

// Terminal is one terminal session. All methods must be called from a
// single goroutine; the terminal introduces no internal locking.
type Terminal struct {
	id     string
	logger *slog.Logger
	out    io.Writer
	buf    outputBuffer

	lines, cols           int
	cursorLine, cursorCol int
	pen                   core.Pen

	drv       driver.Driver
	drvName   string
	onRepaint func(core.Rect)
}

// New creates a terminal session and constructs its driver by probing
// the terminal type.
func New(opts Options) (*Terminal, error) {
	if opts.Output == nil {
		return nil, ErrNoOutput
	}

	termType := opts.TermType
	if termType == "" {
		termType = os.Getenv("TERM")
	}
	if termType == "" {
		return nil, ErrNoTermType
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	t := &Terminal{
		id:        uuid.NewString(),
		logger:    logger,
		out:       opts.Output,
		lines:     opts.Lines,
		cols:      opts.Cols,
		pen:       core.NewPen(),
		onRepaint: opts.OnRepaint,
	}
	if t.lines <= 0 {
		t.lines = defaultLines
	}
	if t.cols <= 0 {
		t.cols = defaultCols
	}

	t.buf.limit = opts.BufferLimit
	if t.buf.limit == 0 {
		t.buf.limit = DefaultBufferLimit
	}

	drv, name, err := driver.New(t, termType)
	if err != nil {
		return nil, fmt.Errorf("creating terminal: %w", err)
	}
	t.drv = drv
	t.drvName = name

	t.logger.Debug("terminal driver selected",
		"session", t.id, "driver", name, "term", termType,
		"lines", t.lines, "cols", t.cols)

	return t, nil
}

// ID returns the session's unique identifier.
func (t *Terminal) ID() string { return t.id }

// DriverName returns the name the active driver was registered under.
func (t *Terminal) DriverName() string { return t.drvName }

// Write implements driver.Surface.
func (t *Terminal) Write(p []byte) { t.buf.Write(p) }

// WriteString implements driver.Surface.
func (t *Terminal) WriteString(s string) { t.buf.WriteString(s) }

// Size returns the terminal size in lines and columns.
func (t *Terminal) Size() (lines, cols int) { return t.lines, t.cols }

// SetSize overrides the terminal's size bookkeeping.
func (t *Terminal) SetSize(lines, cols int) {
	if lines > 0 {
		t.lines = lines
	}
	if cols > 0 {
		t.cols = cols
	}
}

// CurrentPen returns the last pen state actually applied.
func (t *Terminal) CurrentPen() core.Pen { return t.pen }

// Cursor returns the terminal layer's cursor bookkeeping.
func (t *Terminal) Cursor() (line, col int) { return t.cursorLine, t.cursorCol }

// Start emits the driver's startup and capability-probe sequences.
func (t *Terminal) Start() { t.drv.Start() }

// Stop restores terminal modes changed during the session.
func (t *Terminal) Stop() { t.drv.Stop() }

// Destroy releases the driver instance. The terminal must not be used
// afterwards.
func (t *Terminal) Destroy() {
	t.drv.Destroy()
	t.drv = nil
}

// Print emits literal text and advances the cursor column by its
// display width.
func (t *Terminal) Print(text string) {
	t.drv.Print(text)
	t.cursorCol += runewidth.StringWidth(text)
}

// GotoAbs moves the cursor absolutely. Either coordinate may be
// core.Unspecified.
func (t *Terminal) GotoAbs(line, col int) {
	t.drv.GotoAbs(line, col)
	if line != core.Unspecified {
		t.cursorLine = line
	}
	if col != core.Unspecified {
		t.cursorCol = col
	}
}

// MoveRel moves the cursor relative to its position.
func (t *Terminal) MoveRel(down, right int) {
	t.drv.MoveRel(down, right)
	t.cursorLine = max(0, t.cursorLine+down)
	t.cursorCol = max(0, t.cursorCol+right)
}

// ScrollRect shifts the contents of a rectangle. If the driver
// declines, the repaint callback is invoked and false is returned.
func (t *Terminal) ScrollRect(r core.Rect, down, right int) bool {
	if t.drv.ScrollRect(r, down, right) {
		return true
	}
	t.logger.Debug("scroll declined, repainting",
		"session", t.id, "rect", r, "down", down, "right", right)
	if t.onRepaint != nil {
		t.onRepaint(r)
	}
	return false
}

// EraseCh erases count cells at the cursor.
func (t *Terminal) EraseCh(count int, moveEnd bool) {
	t.drv.EraseCh(count, moveEnd)
	if count > 0 && moveEnd {
		t.cursorCol += count
	}
}

// Clear erases the whole screen.
func (t *Terminal) Clear() { t.drv.Clear() }

// SetPen transitions the rendering attributes to next, emitting only
// the minimal delta from the current pen.
func (t *Terminal) SetPen(next core.Pen) {
	delta := t.pen.Diff(next)
	if delta.Empty() {
		return
	}
	t.drv.ChPen(delta, next)
	t.pen = next
}

// SetCtlInt applies an integer-valued control through the driver.
func (t *Terminal) SetCtlInt(ctl driver.Ctl, value int) bool {
	return t.drv.SetCtlInt(ctl, value)
}

// SetCtlStr applies a string-valued control through the driver.
func (t *Terminal) SetCtlStr(ctl driver.StrCtl, value string) bool {
	return t.drv.SetCtlStr(ctl, value)
}

// Feed delivers one decoded input event. Resize events update the
// size bookkeeping; every event is also handed to the driver so it
// can observe capability-negotiation replies.
func (t *Terminal) Feed(ev core.Event) {
	switch ev.Type {
	case core.EventResize:
		t.SetSize(ev.Lines, ev.Cols)
	case core.EventModeReport:
		t.logger.Debug("mode report received",
			"session", t.id, "mode", ev.Mode, "status", ev.Status)
	}
	t.drv.GotKey(ev)
}

// Buffered returns the number of bytes waiting to be flushed.
func (t *Terminal) Buffered() int { return t.buf.len() }

// Flush writes the buffered sequences to the session output. A
// recorded buffer overflow is reported even when the surviving bytes
// were transmitted successfully.
func (t *Terminal) Flush() error {
	overflow := t.buf.takeErr()

	if t.buf.len() > 0 {
		if _, err := t.out.Write(t.buf.bytes()); err != nil {
			t.buf.reset()
			return fmt.Errorf("flushing terminal output: %w", err)
		}
		t.buf.reset()
	}

	return overflow
}
