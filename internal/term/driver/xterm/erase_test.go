package xterm

import (
	"strings"
	"testing"
)

func TestEraseChHardware(t *testing.T) {
	d, s := newTestDriver(24, 80)

	d.EraseCh(5, false)
	if got := s.out.String(); got != "\x1b[5X" {
		t.Errorf("got %q, want \\x1b[5X", got)
	}

	s.out.Reset()
	d.EraseCh(5, true)
	if got := s.out.String(); got != "\x1b[5X\x1b[5C" {
		t.Errorf("got %q, want erase then cursor advance", got)
	}
}

func TestEraseChHardwareShortForm(t *testing.T) {
	d, s := newTestDriver(24, 80)
	d.EraseCh(1, false)
	if got := s.out.String(); got != "\x1b[X" {
		t.Errorf("got %q, want \\x1b[X", got)
	}
}

func TestEraseChNoOp(t *testing.T) {
	d, s := newTestDriver(24, 80)
	d.EraseCh(0, true)
	d.EraseCh(-3, false)
	if s.out.Len() != 0 {
		t.Errorf("count < 1 should emit nothing, got %q", s.out.String())
	}
}

func TestEraseChManualOverwrite(t *testing.T) {
	d, s := newTestDriver(24, 80)
	d.cap.bce = false

	d.EraseCh(70, false)

	want := strings.Repeat(" ", 64) + strings.Repeat(" ", 6) + "\x1b[70D"
	if got := s.out.String(); got != want {
		t.Errorf("got %q, want 64+6 blanks and a 70-column return", got)
	}
}

func TestEraseChManualOverwriteMoveEnd(t *testing.T) {
	d, s := newTestDriver(24, 80)
	d.cap.bce = false

	d.EraseCh(70, true)

	if got := s.out.String(); got != strings.Repeat(" ", 70) {
		t.Errorf("got %q, want exactly 70 blanks", got)
	}
}

func TestEraseChManualExactChunk(t *testing.T) {
	d, s := newTestDriver(24, 80)
	d.cap.bce = false

	d.EraseCh(64, true)
	if got := s.out.String(); got != strings.Repeat(" ", 64) {
		t.Errorf("got %q, want one full chunk", got)
	}
}

func TestEraseChReverseVideoAvoidsECH(t *testing.T) {
	d, s := newTestDriver(24, 80)
	s.pen.SetReverse(true)

	d.EraseCh(3, true)
	if got := s.out.String(); got != "   " {
		t.Errorf("reverse video must overwrite manually, got %q", got)
	}
}
