package xterm

import (
	"strconv"
	"strings"

	"github.com/dshills/termdrive/internal/term/core"
)

// sgrCodes is the (on, off) SGR parameter pair for one attribute kind.
type sgrCodes struct {
	on, off int
}

// sgrFor maps each attribute kind to its SGR code pair. The switch is
// exhaustive over core.Attr so adding a kind without a pair is a
// visible gap, not a silent table desync.
func sgrFor(a core.Attr) sgrCodes {
	switch a {
	case core.AttrForeground:
		return sgrCodes{on: 30, off: 39}
	case core.AttrBackground:
		return sgrCodes{on: 40, off: 49}
	case core.AttrBold:
		return sgrCodes{on: 1, off: 22}
	case core.AttrUnderline:
		return sgrCodes{on: 4, off: 24}
	case core.AttrItalic:
		return sgrCodes{on: 3, off: 23}
	case core.AttrReverse:
		return sgrCodes{on: 7, off: 27}
	case core.AttrStrike:
		return sgrCodes{on: 9, off: 29}
	case core.AttrAltFont:
		// On and off share code 10+n / 10.
		return sgrCodes{on: 10, off: 10}
	default:
		return sgrCodes{}
	}
}

// maxSGRParams bounds one SGR command: 3 parameters from each of two
// extended colors plus 6 single-parameter attributes.
const maxSGRParams = 12

// ChPen emits the minimal SGR command for the transition described by
// delta. Kinds are encoded in declaration order. If the final state
// has no non-default attributes at all, the bare reset form replaces
// whatever was computed, being shorter and equivalent.
func (d *Driver) ChPen(delta, final core.Pen) {
	params := make([]int, 0, maxSGRParams)

	for a := core.Attr(0); a < core.NumAttrs; a++ {
		if !delta.Has(a) {
			continue
		}

		codes := sgrFor(a)
		switch a {
		case core.AttrForeground, core.AttrBackground:
			params = appendColor(params, codes, delta.ColorValue(a))
		case core.AttrAltFont:
			if n := delta.AltFont(); n == core.AltFontDefault {
				params = append(params, codes.off)
			} else {
				params = append(params, codes.on+n)
			}
		default:
			if delta.BoolValue(a) {
				params = append(params, codes.on)
			} else {
				params = append(params, codes.off)
			}
		}
	}

	if len(params) == 0 {
		return
	}
	if !final.IsNonDefault() {
		params = params[:0]
	}

	var sb strings.Builder
	sb.WriteString("\x1b[")
	for i, p := range params {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p))
	}
	sb.WriteByte('m')
	d.write(sb.String())
}

// appendColor encodes one color value: the off code for default, the
// base range for 0-7, the bright range for 8-15, and the
// three-parameter extended form for 16-255. The extended form's three
// fields travel as consecutive parameters.
func appendColor(params []int, codes sgrCodes, c core.Color) []int {
	switch {
	case c.IsDefault():
		return append(params, codes.off)
	case c < 8:
		return append(params, codes.on+int(c))
	case c < 16:
		return append(params, codes.on+60+int(c)-8)
	default:
		return append(params, codes.on+8, 5, int(c))
	}
}
