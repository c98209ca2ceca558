package xterm

import "github.com/dshills/termdrive/internal/term/core"

// GotoAbs moves the cursor to an absolute position, picking the
// shortest sequence the combination of specified coordinates allows.
// Either coordinate may be core.Unspecified to leave that axis alone;
// if both are unspecified nothing is emitted.
func (d *Driver) GotoAbs(line, col int) {
	switch {
	case line != core.Unspecified && col > 0:
		d.writef("\x1b[%d;%dH", line+1, col+1)
	case line != core.Unspecified && col == 0:
		// CUP with an omitted column already means column 1.
		d.writef("\x1b[%dH", line+1)
	case line != core.Unspecified:
		d.writef("\x1b[%dd", line+1)
	case col > 0:
		d.writef("\x1b[%dG", col+1)
	case col != core.Unspecified:
		d.write("\x1b[G")
	}
}

// MoveRel moves the cursor relative to its position, vertical axis
// first. Magnitude 1 uses the parameterless short form; magnitude 0
// emits nothing for that axis.
func (d *Driver) MoveRel(down, right int) {
	switch {
	case down > 1:
		d.writef("\x1b[%dB", down)
	case down == 1:
		d.write("\x1b[B")
	case down == -1:
		d.write("\x1b[A")
	case down < -1:
		d.writef("\x1b[%dA", -down)
	}

	switch {
	case right > 1:
		d.writef("\x1b[%dC", right)
	case right == 1:
		d.write("\x1b[C")
	case right == -1:
		d.write("\x1b[D")
	case right < -1:
		d.writef("\x1b[%dD", -right)
	}
}
