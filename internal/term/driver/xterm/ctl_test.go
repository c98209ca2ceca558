package xterm

import (
	"testing"

	"github.com/dshills/termdrive/internal/term/driver"
)

func TestSetCtlIntAltScreenDeduplicated(t *testing.T) {
	d, s := newTestDriver(24, 80)

	if !d.SetCtlInt(driver.CtlAltScreen, 1) {
		t.Fatal("altscreen should be handled")
	}
	if got := s.out.String(); got != "\x1b[?1049h" {
		t.Fatalf("got %q", got)
	}

	s.out.Reset()
	if !d.SetCtlInt(driver.CtlAltScreen, 1) {
		t.Fatal("redundant request is still handled")
	}
	if s.out.Len() != 0 {
		t.Errorf("redundant request emitted %q", s.out.String())
	}

	d.SetCtlInt(driver.CtlAltScreen, 0)
	if got := s.out.String(); got != "\x1b[?1049l" {
		t.Errorf("got %q", got)
	}
}

func TestSetCtlIntCursorVisibleInitialState(t *testing.T) {
	// The cursor starts visible; requesting visible again emits
	// nothing, hiding emits the disable sequence.
	d, s := newTestDriver(24, 80)

	d.SetCtlInt(driver.CtlCursorVisible, 1)
	if s.out.Len() != 0 {
		t.Errorf("re-showing the cursor emitted %q", s.out.String())
	}

	d.SetCtlInt(driver.CtlCursorVisible, 0)
	if got := s.out.String(); got != "\x1b[?25l" {
		t.Errorf("got %q", got)
	}
}

func TestSetCtlIntCursorBlinkAlwaysEmits(t *testing.T) {
	d, s := newTestDriver(24, 80)

	d.SetCtlInt(driver.CtlCursorBlink, 0)
	d.SetCtlInt(driver.CtlCursorBlink, 0)

	if got := s.out.String(); got != "\x1b[?12l\x1b[?12l" {
		t.Errorf("blink must never be deduplicated, got %q", got)
	}
}

func TestSetCtlIntMousePair(t *testing.T) {
	d, s := newTestDriver(24, 80)

	d.SetCtlInt(driver.CtlMouse, 1)
	if got := s.out.String(); got != "\x1b[?1002h\x1b[?1006h" {
		t.Errorf("got %q", got)
	}

	s.out.Reset()
	d.SetCtlInt(driver.CtlMouse, 0)
	if got := s.out.String(); got != "\x1b[?1002l\x1b[?1006l" {
		t.Errorf("got %q", got)
	}
}

func TestSetCtlIntCursorShape(t *testing.T) {
	d, s := newTestDriver(24, 80)

	d.SetCtlInt(driver.CtlCursorShape, driver.CursorShapeBlock)
	if got := s.out.String(); got != "\x1b[2 q" {
		t.Errorf("steady block = %q, want \\x1b[2 q", got)
	}

	// With blink active the code shifts down by one.
	d.SetCtlInt(driver.CtlCursorBlink, 1)
	s.out.Reset()
	d.SetCtlInt(driver.CtlCursorShape, driver.CursorShapeBar)
	if got := s.out.String(); got != "\x1b[5 q" {
		t.Errorf("blinking bar = %q, want \\x1b[5 q", got)
	}
}

func TestSetCtlIntKeypad(t *testing.T) {
	d, s := newTestDriver(24, 80)

	d.SetCtlInt(driver.CtlKeypadApp, 1)
	if got := s.out.String(); got != "\x1b=" {
		t.Errorf("got %q", got)
	}

	s.out.Reset()
	d.SetCtlInt(driver.CtlKeypadApp, 1)
	if s.out.Len() != 0 {
		t.Errorf("redundant keypad request emitted %q", s.out.String())
	}

	d.SetCtlInt(driver.CtlKeypadApp, 0)
	if got := s.out.String(); got != "\x1b>" {
		t.Errorf("got %q", got)
	}
}

func TestSetCtlIntUnknown(t *testing.T) {
	d, s := newTestDriver(24, 80)
	if d.SetCtlInt(driver.Ctl(99), 1) {
		t.Error("unknown control should be declined")
	}
	if s.out.Len() != 0 {
		t.Errorf("declined control emitted %q", s.out.String())
	}
}

func TestSetCtlStr(t *testing.T) {
	tests := []struct {
		name string
		ctl  driver.StrCtl
		text string
		want string
	}{
		{"title", driver.StrCtlTitleText, "hello", "\x1b]2;hello\x1b\\"},
		{"icon", driver.StrCtlIconText, "app", "\x1b]1;app\x1b\\"},
		{"icon and title", driver.StrCtlIconTitleText, "both", "\x1b]0;both\x1b\\"},
		{"empty payload", driver.StrCtlTitleText, "", "\x1b]2;\x1b\\"},
		{"utf-8 payload", driver.StrCtlTitleText, "héllo", "\x1b]2;héllo\x1b\\"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, s := newTestDriver(24, 80)
			if !d.SetCtlStr(tt.ctl, tt.text) {
				t.Fatal("control should be handled")
			}
			if got := s.out.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetCtlStrAlwaysEmits(t *testing.T) {
	d, s := newTestDriver(24, 80)
	d.SetCtlStr(driver.StrCtlTitleText, "same")
	d.SetCtlStr(driver.StrCtlTitleText, "same")
	if got := s.out.String(); got != "\x1b]2;same\x1b\\\x1b]2;same\x1b\\" {
		t.Errorf("string controls are never deduplicated, got %q", got)
	}
}

func TestSetCtlStrSanitizesControlBytes(t *testing.T) {
	d, s := newTestDriver(24, 80)
	d.SetCtlStr(driver.StrCtlTitleText, "a\x1b]0;evil\x07b\x7fc")
	if got := s.out.String(); got != "\x1b]2;a]0;evilbc\x1b\\" {
		t.Errorf("got %q, want control bytes stripped from the payload", got)
	}
}

func TestSetCtlStrUnknown(t *testing.T) {
	d, s := newTestDriver(24, 80)
	if d.SetCtlStr(driver.StrCtl(42), "x") {
		t.Error("unknown control should be declined")
	}
	if s.out.Len() != 0 {
		t.Errorf("declined control emitted %q", s.out.String())
	}
}

func TestSanitizeOSCPassthrough(t *testing.T) {
	// The common case allocates nothing and returns the input as-is.
	in := "plain title 123"
	if got := sanitizeOSC(in); got != in {
		t.Errorf("got %q, want unchanged", got)
	}
}
