// Package driver defines the contract between the terminal layer and
// its output drivers. A driver translates backend-neutral requests
// into the byte sequences of one terminal protocol family; the
// terminal layer owns the output buffer, the canonical pen state, and
// size bookkeeping.
package driver

import "github.com/dshills/termdrive/internal/term/core"

// Ctl identifies an integer-valued terminal control.
type Ctl int

// Integer-valued controls.
const (
	CtlAltScreen Ctl = iota
	CtlCursorVisible
	CtlCursorBlink
	CtlCursorShape
	CtlMouse
	CtlKeypadApp
)

// Cursor shapes for CtlCursorShape.
const (
	CursorShapeBlock     = 1
	CursorShapeUnderline = 2
	CursorShapeBar       = 3
)

// StrCtl identifies a string-valued terminal control.
type StrCtl int

// String-valued controls.
const (
	StrCtlIconText StrCtl = iota
	StrCtlTitleText
	StrCtlIconTitleText
)

// Surface is what a driver may ask of its host terminal: append bytes
// to the session's output buffer, read and adjust the terminal size,
// and read the currently applied pen. Writes never block and never
// fail from the driver's point of view; the host records overflow and
// surfaces it on flush.
type Surface interface {
	// Write appends raw bytes to the output buffer.
	Write(p []byte)

	// WriteString appends a string to the output buffer.
	WriteString(s string)

	// Size returns the current terminal size in lines and columns.
	Size() (lines, cols int)

	// SetSize overrides the terminal layer's size bookkeeping, for
	// drivers that learn the size from a capability source.
	SetSize(lines, cols int)

	// CurrentPen returns the last pen state actually applied.
	CurrentPen() core.Pen
}

// Driver is one terminal output driver instance. All methods are
// synchronous, non-blocking pure computation over driver state that
// appends bytes to the host Surface. Calls against one instance must
// be serialized by the caller; after Destroy no further calls are
// permitted.
type Driver interface {
	// Start emits the driver's startup sequences, including any
	// capability probes.
	Start()

	// Stop restores terminal modes the driver changed, in an order
	// that is part of the driver's contract.
	Stop()

	// Destroy releases the instance.
	Destroy()

	// Print emits literal text at the current cursor position.
	Print(text string)

	// GotoAbs moves the cursor. Either coordinate may be
	// core.Unspecified to leave that axis unchanged.
	GotoAbs(line, col int)

	// MoveRel moves the cursor relative to its position. Zero
	// magnitude on an axis emits nothing for that axis.
	MoveRel(down, right int)

	// ScrollRect shifts the contents of a rectangle by the given
	// displacement. It returns false, emitting nothing, when it
	// cannot safely optimize the request; the caller then falls back
	// to repainting the region.
	ScrollRect(r core.Rect, down, right int) bool

	// EraseCh erases count cells at the cursor. If moveEnd is true
	// the cursor ends just past the erased cells, otherwise it keeps
	// its column.
	EraseCh(count int, moveEnd bool)

	// Clear erases the whole screen.
	Clear()

	// ChPen emits the minimal attribute sequence for the given delta.
	// The final pen is the complete state after the transition, used
	// to pick shorter equivalent encodings.
	ChPen(delta, final core.Pen)

	// SetCtlInt applies an integer-valued control. It returns false
	// if the control is not recognized; redundant requests return
	// true without emitting.
	SetCtlInt(ctl Ctl, value int) bool

	// SetCtlStr applies a string-valued control. It returns false if
	// the control is not recognized.
	SetCtlStr(ctl StrCtl, value string) bool

	// GotKey observes every decoded input event, so drivers can
	// consume capability-negotiation replies.
	GotKey(ev core.Event)
}
