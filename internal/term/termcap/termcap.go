// Package termcap seeds driver capability guesses from a terminfo
// database keyed by the terminal type, with an ioctl window-size
// fallback on Unix. It is a best-effort source: every lookup can
// fail, and callers keep their built-in defaults when it does.
package termcap

import (
	"strings"

	"github.com/gdamore/tcell/v2/terminfo"

	// Register the extended terminfo database.
	_ "github.com/gdamore/tcell/v2/terminfo/extended"
)

// Caps is the subset of terminal capabilities consulted at driver
// construction.
type Caps struct {
	// Name is the canonical terminfo entry name.
	Name string

	// BackColorErase reports whether erase operations fill with the
	// current background color.
	BackColorErase bool

	// Lines and Columns are the database's size guess; zero when the
	// entry does not carry one.
	Lines, Columns int
}

// Lookup resolves a terminal type against the terminfo database.
// It returns false when the type is unknown, leaving the caller's
// defaults in place.
func Lookup(termType string) (Caps, bool) {
	if termType == "" {
		return Caps{}, false
	}

	ti, err := terminfo.LookupTerminfo(termType)
	if err != nil {
		return Caps{}, false
	}

	return Caps{
		Name:           ti.Name,
		BackColorErase: guessBCE(termType),
		Lines:          ti.Lines,
		Columns:        ti.Columns,
	}, true
}

// guessBCE guesses the back_color_erase flag for a terminal type. The
// database in use does not carry the flag, so this keeps the xterm
// family's default (true) and excepts the multiplexers that ship with
// bce disabled.
func guessBCE(termType string) bool {
	base, _, _ := strings.Cut(termType, "-")
	switch base {
	case "screen", "tmux":
		return false
	default:
		return true
	}
}
