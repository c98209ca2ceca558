package xterm

import (
	"strings"

	"github.com/dshills/termdrive/internal/term/driver"
)

// SetCtlInt applies an integer-valued control. Toggles are
// deduplicated against the last known-applied value, except
// cursor-blink (initial state unknowable) and cursor-shape (no
// readback), which always emit. Unrecognized controls return false.
func (d *Driver) SetCtlInt(ctl driver.Ctl, value int) bool {
	on := value != 0

	switch ctl {
	case driver.CtlAltScreen:
		if d.mode.altScreen == on {
			return true
		}
		if on {
			d.write("\x1b[?1049h")
		} else {
			d.write("\x1b[?1049l")
		}
		d.mode.altScreen = on
		return true

	case driver.CtlCursorVisible:
		if d.mode.cursorVisible == on {
			return true
		}
		if on {
			d.write("\x1b[?25h")
		} else {
			d.write("\x1b[?25l")
		}
		d.mode.cursorVisible = on
		return true

	case driver.CtlCursorBlink:
		if on {
			d.write("\x1b[?12h")
		} else {
			d.write("\x1b[?12l")
		}
		d.mode.cursorBlink = on
		return true

	case driver.CtlMouse:
		if d.mode.mouse == on {
			return true
		}
		if on {
			d.write("\x1b[?1002h\x1b[?1006h")
		} else {
			d.write("\x1b[?1002l\x1b[?1006l")
		}
		d.mode.mouse = on
		return true

	case driver.CtlCursorShape:
		// DECSCUSR: odd codes blink, even codes are steady.
		code := value * 2
		if d.mode.cursorBlink {
			code--
		}
		d.writef("\x1b[%d q", code)
		return true

	case driver.CtlKeypadApp:
		if d.mode.keypadApp == on {
			return true
		}
		if on {
			d.write("\x1b=")
		} else {
			d.write("\x1b>")
		}
		d.mode.keypadApp = on
		return true

	default:
		return false
	}
}

// SetCtlStr applies a string-valued control by wrapping the payload in
// an OSC sequence. Always emits; there is no state to deduplicate
// against. Unrecognized controls return false.
func (d *Driver) SetCtlStr(ctl driver.StrCtl, value string) bool {
	var prefix string
	switch ctl {
	case driver.StrCtlIconText:
		prefix = "\x1b]1;"
	case driver.StrCtlTitleText:
		prefix = "\x1b]2;"
	case driver.StrCtlIconTitleText:
		prefix = "\x1b]0;"
	default:
		return false
	}

	d.write(prefix)
	d.write(sanitizeOSC(value))
	d.write("\x1b\\")
	return true
}

// sanitizeOSC strips C0 control bytes and DEL from an OSC payload so
// it cannot terminate the sequence early or smuggle in control
// sequences of its own. Printable text passes through verbatim.
func sanitizeOSC(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if b := s[i]; b >= 0x20 && b != 0x7f {
			sb.WriteByte(b)
		}
	}
	return sb.String()
}
