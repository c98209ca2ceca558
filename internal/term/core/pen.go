// Package core provides shared types for the terminal subsystem.
// This package breaks import cycles between the terminal layer and
// its output drivers.
package core

// Attr identifies one rendering-attribute kind.
// The declaration order is the order attribute parameters are encoded
// in; drivers switch exhaustively over it.
type Attr int

// Rendering-attribute kinds.
const (
	AttrForeground Attr = iota
	AttrBackground
	AttrBold
	AttrUnderline
	AttrItalic
	AttrReverse
	AttrStrike
	AttrAltFont

	// NumAttrs is the number of attribute kinds; keep it last.
	NumAttrs
)

// String returns the attribute kind's name.
func (a Attr) String() string {
	switch a {
	case AttrForeground:
		return "foreground"
	case AttrBackground:
		return "background"
	case AttrBold:
		return "bold"
	case AttrUnderline:
		return "underline"
	case AttrItalic:
		return "italic"
	case AttrReverse:
		return "reverse"
	case AttrStrike:
		return "strike"
	case AttrAltFont:
		return "altfont"
	default:
		return "unknown"
	}
}

// IsColor returns true for the two color-valued attribute kinds.
func (a Attr) IsColor() bool {
	return a == AttrForeground || a == AttrBackground
}

// IsBool returns true for the boolean attribute kinds.
func (a Attr) IsBool() bool {
	switch a {
	case AttrBold, AttrUnderline, AttrItalic, AttrReverse, AttrStrike:
		return true
	default:
		return false
	}
}

// AltFontDefault is the alternate-font value selecting the primary font.
const AltFontDefault = -1

// Pen is a set of rendering attributes. Each attribute kind is either
// absent or carries an explicit value, so the same type serves both as
// a full attribute state and as a delta (the set of kinds that changed,
// each with its new effective value).
//
// The zero Pen has no attributes set.
type Pen struct {
	set uint16

	fg, bg  Color
	altFont int

	bold, underline, italic, reverse, strike bool
}

// NewPen returns a pen with every attribute explicitly set to its
// default value.
func NewPen() Pen {
	var p Pen
	p.SetForeground(ColorDefault)
	p.SetBackground(ColorDefault)
	p.SetBold(false)
	p.SetUnderline(false)
	p.SetItalic(false)
	p.SetReverse(false)
	p.SetStrike(false)
	p.SetAltFont(AltFontDefault)
	return p
}

// Has returns true if the attribute kind is present in the pen.
func (p Pen) Has(a Attr) bool {
	return p.set&(1<<uint(a)) != 0
}

// SetForeground sets the foreground color.
func (p *Pen) SetForeground(c Color) {
	p.fg = c
	p.set |= 1 << uint(AttrForeground)
}

// SetBackground sets the background color.
func (p *Pen) SetBackground(c Color) {
	p.bg = c
	p.set |= 1 << uint(AttrBackground)
}

// SetBold sets the bold attribute.
func (p *Pen) SetBold(on bool) { p.bold = on; p.set |= 1 << uint(AttrBold) }

// SetUnderline sets the underline attribute.
func (p *Pen) SetUnderline(on bool) { p.underline = on; p.set |= 1 << uint(AttrUnderline) }

// SetItalic sets the italic attribute.
func (p *Pen) SetItalic(on bool) { p.italic = on; p.set |= 1 << uint(AttrItalic) }

// SetReverse sets the reverse-video attribute.
func (p *Pen) SetReverse(on bool) { p.reverse = on; p.set |= 1 << uint(AttrReverse) }

// SetStrike sets the strikethrough attribute.
func (p *Pen) SetStrike(on bool) { p.strike = on; p.set |= 1 << uint(AttrStrike) }

// SetAltFont selects an alternate font 0-9; any other value selects
// the primary font.
func (p *Pen) SetAltFont(n int) {
	if n < 0 || n > 9 {
		n = AltFontDefault
	}
	p.altFont = n
	p.set |= 1 << uint(AttrAltFont)
}

// Foreground returns the foreground color, or the default color if
// the attribute is absent.
func (p Pen) Foreground() Color {
	if !p.Has(AttrForeground) {
		return ColorDefault
	}
	return p.fg
}

// Background returns the background color, or the default color if
// the attribute is absent.
func (p Pen) Background() Color {
	if !p.Has(AttrBackground) {
		return ColorDefault
	}
	return p.bg
}

// Bold returns the bold attribute.
func (p Pen) Bold() bool { return p.bold && p.Has(AttrBold) }

// Underline returns the underline attribute.
func (p Pen) Underline() bool { return p.underline && p.Has(AttrUnderline) }

// Italic returns the italic attribute.
func (p Pen) Italic() bool { return p.italic && p.Has(AttrItalic) }

// Reverse returns the reverse-video attribute.
func (p Pen) Reverse() bool { return p.reverse && p.Has(AttrReverse) }

// Strike returns the strikethrough attribute.
func (p Pen) Strike() bool { return p.strike && p.Has(AttrStrike) }

// AltFont returns the alternate-font index, or AltFontDefault.
func (p Pen) AltFont() int {
	if !p.Has(AttrAltFont) {
		return AltFontDefault
	}
	return p.altFont
}

// ColorValue returns the value of a color-valued attribute kind.
func (p Pen) ColorValue(a Attr) Color {
	switch a {
	case AttrForeground:
		return p.Foreground()
	case AttrBackground:
		return p.Background()
	default:
		return ColorDefault
	}
}

// BoolValue returns the value of a boolean attribute kind.
func (p Pen) BoolValue(a Attr) bool {
	switch a {
	case AttrBold:
		return p.Bold()
	case AttrUnderline:
		return p.Underline()
	case AttrItalic:
		return p.Italic()
	case AttrReverse:
		return p.Reverse()
	case AttrStrike:
		return p.Strike()
	default:
		return false
	}
}

// isDefault reports whether the attribute's effective value equals its
// default. Absent attributes are at their default by definition.
func (p Pen) isDefault(a Attr) bool {
	switch a {
	case AttrForeground, AttrBackground:
		return p.ColorValue(a).IsDefault()
	case AttrAltFont:
		return p.AltFont() == AltFontDefault
	default:
		return !p.BoolValue(a)
	}
}

// IsNonDefault returns true if any attribute carries a non-default
// value.
func (p Pen) IsNonDefault() bool {
	for a := Attr(0); a < NumAttrs; a++ {
		if !p.isDefault(a) {
			return true
		}
	}
	return false
}

// setFrom copies one attribute's value from src into p, marking it set.
func (p *Pen) setFrom(src Pen, a Attr) {
	switch a {
	case AttrForeground:
		p.SetForeground(src.Foreground())
	case AttrBackground:
		p.SetBackground(src.Background())
	case AttrBold:
		p.SetBold(src.Bold())
	case AttrUnderline:
		p.SetUnderline(src.Underline())
	case AttrItalic:
		p.SetItalic(src.Italic())
	case AttrReverse:
		p.SetReverse(src.Reverse())
	case AttrStrike:
		p.SetStrike(src.Strike())
	case AttrAltFont:
		p.SetAltFont(src.AltFont())
	}
}

// sameValue reports whether the attribute's effective value is equal in
// both pens. Absent attributes compare as their defaults.
func (p Pen) sameValue(o Pen, a Attr) bool {
	switch a {
	case AttrForeground, AttrBackground:
		return p.ColorValue(a).Equals(o.ColorValue(a))
	case AttrAltFont:
		return p.AltFont() == o.AltFont()
	default:
		return p.BoolValue(a) == o.BoolValue(a)
	}
}

// Diff returns the delta pen describing the transition from p to next:
// every attribute kind whose effective value differs is present, with
// next's value.
func (p Pen) Diff(next Pen) Pen {
	var delta Pen
	for a := Attr(0); a < NumAttrs; a++ {
		if !p.sameValue(next, a) {
			delta.setFrom(next, a)
		}
	}
	return delta
}

// Empty returns true if no attribute kinds are present.
func (p Pen) Empty() bool { return p.set == 0 }

// Equals returns true if both pens have the same effective value for
// every attribute kind.
func (p Pen) Equals(o Pen) bool {
	for a := Attr(0); a < NumAttrs; a++ {
		if !p.sameValue(o, a) {
			return false
		}
	}
	return true
}
