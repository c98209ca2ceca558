package xterm

import "strings"

// eraseChunk is the write granularity of the manual-overwrite path.
const eraseChunk = 64

var blanks = strings.Repeat(" ", eraseChunk)

// EraseCh erases count cells at the cursor. With background-color
// erase available it emits ECH; otherwise it overwrites with blanks.
// If moveEnd is false the cursor keeps its column. count < 1 is a
// no-op.
func (d *Driver) EraseCh(count int, moveEnd bool) {
	if count < 1 {
		return
	}

	// Even with bce, avoid ECH in reverse video; most terminals get
	// reverse+ECH wrong.
	if d.cap.bce && !d.surface.CurrentPen().Reverse() {
		if count == 1 {
			d.write("\x1b[X")
		} else {
			d.writef("\x1b[%dX", count)
		}

		if moveEnd {
			d.MoveRel(0, count)
		}
		return
	}

	remaining := count
	for remaining > eraseChunk {
		d.write(blanks)
		remaining -= eraseChunk
	}
	d.write(blanks[:remaining])

	// Overwriting advanced the cursor; undo that unless the caller
	// asked to end past the erased cells.
	if !moveEnd {
		d.MoveRel(0, -count)
	}
}
