// Package xterm implements the output driver for xterm-compatible
// terminal emulators. It encodes cursor movement, scrolling, erasing,
// attribute changes and mode toggles into escape sequences, and
// negotiates DECSLRM (left/right scroll margin) support at runtime.
package xterm

import (
	"fmt"

	"github.com/dshills/termdrive/internal/term/core"
	"github.com/dshills/termdrive/internal/term/driver"
	"github.com/dshills/termdrive/internal/term/termcap"
)

// decVSSM is the DEC private mode number for vertical split screen
// mode, which also enables DECSLRM margins.
const decVSSM = 69

// capState tracks one negotiated capability.
type capState int

const (
	// capUnknown: no probe sent yet.
	capUnknown capState = iota
	// capProbed: probe sent, no reply observed.
	capProbed
	// capConfirmed: the terminal reported the mode as recognized.
	// This state is a one-way latch for the rest of the session.
	capConfirmed
)

// Driver is the xterm output driver. One instance per terminal
// session; calls must be serialized by the caller.
type Driver struct {
	surface driver.Surface

	// mode holds the last known-applied value of each toggle, used to
	// suppress redundant re-emission. cursorBlink is recorded but
	// never used for deduplication: its initial state is unknowable.
	mode struct {
		altScreen     bool
		cursorVisible bool
		cursorBlink   bool
		mouse         bool
		keypadApp     bool
	}

	// cap holds capability flags. bce is seeded at construction and
	// never changes; slrm may only be upgraded, never reverted.
	cap struct {
		bce  bool
		slrm capState
	}
}

type probe struct{}

// New constructs the driver for any terminal type: xterm is the
// family's fallback driver. It seeds the background-color-erase guess
// and an initial size guess from the terminfo-like capability source
// when one matches the terminal type.
func (probe) New(s driver.Surface, termType string) (driver.Driver, bool) {
	d := &Driver{surface: s}
	d.mode.cursorVisible = true
	d.cap.bce = true

	if caps, ok := termcap.Lookup(termType); ok {
		d.cap.bce = caps.BackColorErase
		if caps.Lines > 0 && caps.Columns > 0 {
			s.SetSize(caps.Lines, caps.Columns)
		}
	}

	return d, true
}

func init() {
	driver.Register("xterm", probe{})
}

// write appends a literal sequence to the host's output buffer.
func (d *Driver) write(s string) {
	d.surface.WriteString(s)
}

// writef appends a formatted sequence to the host's output buffer.
func (d *Driver) writef(format string, args ...any) {
	d.surface.WriteString(fmt.Sprintf(format, args...))
}

// Start enables DECVSSM, then queries whether the terminal actually
// supports it (DECRQM). Fire-and-forget: the reply, if any, arrives
// later as a mode-report event through GotKey.
func (d *Driver) Start() {
	d.write("\x1b[?69h")
	d.write("\x1b[?69$p")

	if d.cap.slrm == capUnknown {
		d.cap.slrm = capProbed
	}
}

// GotKey observes decoded input events. A DEC mode report for DECVSSM
// with a set or reset status confirms margin support; any other
// status, or no reply at all, leaves the capability unconfirmed for
// the session.
func (d *Driver) GotKey(ev core.Event) {
	if ev.Type != core.EventModeReport || ev.Initial != core.DECModeIntro {
		return
	}
	if ev.Mode != decVSSM {
		return
	}
	if ev.Status == core.ModeReportSet || ev.Status == core.ModeReportReset {
		d.cap.slrm = capConfirmed
	}
}

// slrmSupported reports whether DECSLRM margins may be used.
func (d *Driver) slrmSupported() bool {
	return d.cap.slrm == capConfirmed
}

// Stop restores the toggles that differ from their defaults. The
// order is a contract: mouse reporting first, then cursor visibility,
// then the alternate screen, then the keypad, since later restores
// may depend on earlier ones taking effect first.
func (d *Driver) Stop() {
	if d.mode.mouse {
		d.SetCtlInt(driver.CtlMouse, 0)
	}
	if !d.mode.cursorVisible {
		d.SetCtlInt(driver.CtlCursorVisible, 1)
	}
	if d.mode.altScreen {
		d.SetCtlInt(driver.CtlAltScreen, 0)
	}
	if d.mode.keypadApp {
		d.SetCtlInt(driver.CtlKeypadApp, 0)
	}
}

// Destroy releases the instance. No further calls are permitted.
func (d *Driver) Destroy() {
	d.surface = nil
}

// Print emits literal text at the current cursor position.
func (d *Driver) Print(text string) {
	d.write(text)
}

// Clear erases the whole screen.
func (d *Driver) Clear() {
	d.write("\x1b[2J")
}
