package xterm

import "github.com/dshills/termdrive/internal/term/core"

// ScrollRect shifts the contents of r by down lines and right columns,
// choosing among three strategies:
//
//  1. a pure horizontal shift done row by row with character
//     insert/delete, preferred when eligible because it leaves the
//     terminal's scroll-region state untouched;
//  2. a region scroll using a vertical scroll region (plus DECSLRM
//     margins for partial-width rectangles) with line and column
//     insert/delete;
//  3. declining, when the terminal has no margin support and the
//     rectangle cannot be expressed without it.
//
// It returns false and emits nothing in case 3; the caller repaints.
func (d *Driver) ScrollRect(r core.Rect, down, right int) bool {
	if down == 0 && right == 0 {
		return true
	}

	_, termCols := d.surface.Size()

	// Row-by-row ICH/DCH is worthwhile for a single margin-bounded
	// line, or whenever the rectangle already touches the right edge.
	if ((d.slrmSupported() && r.Lines == 1) || r.Right() == termCols) && down == 0 {
		narrowed := r.Right() < termCols
		if narrowed {
			d.writef("\x1b[;%ds", r.Right())
		}

		for line := r.Top; line < r.Bottom(); line++ {
			d.GotoAbs(line, r.Left)
			switch {
			case right > 1:
				d.writef("\x1b[%d@", right)
			case right == 1:
				d.write("\x1b[@")
			case right == -1:
				d.write("\x1b[P")
			case right < -1:
				d.writef("\x1b[%dP", -right)
			}
		}

		if narrowed {
			d.write("\x1b[s")
		}
		return true
	}

	if d.slrmSupported() || (r.Left == 0 && r.Cols == termCols && right == 0) {
		d.writef("\x1b[%d;%dr", r.Top+1, r.Bottom())

		narrowed := r.Left > 0 || r.Right() < termCols
		if narrowed {
			d.writef("\x1b[%d;%ds", r.Left+1, r.Right())
		}

		d.GotoAbs(r.Top, r.Left)

		switch {
		case down > 1:
			d.writef("\x1b[%dM", down)
		case down == 1:
			d.write("\x1b[M")
		case down == -1:
			d.write("\x1b[L")
		case down < -1:
			d.writef("\x1b[%dL", -down)
		}

		// DECDC/DECIC shift columns across the whole scroll region,
		// unlike the per-row forms above.
		switch {
		case right > 1:
			d.writef("\x1b[%d'~", right)
		case right == 1:
			d.write("\x1b['~")
		case right == -1:
			d.write("\x1b['}")
		case right < -1:
			d.writef("\x1b[%d'}", -right)
		}

		d.write("\x1b[r")
		if narrowed {
			d.write("\x1b[s")
		}
		return true
	}

	return false
}
