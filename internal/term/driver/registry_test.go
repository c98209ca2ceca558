package driver

import (
	"errors"
	"testing"

	"github.com/dshills/termdrive/internal/term/core"
)

// resetRegistry clears registered probes between tests.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = nil
}

type fakeDriver struct{ Driver }

type fakeProbe struct {
	accept string
}

func (p fakeProbe) New(_ Surface, termType string) (Driver, bool) {
	if p.accept != "" && termType != p.accept {
		return nil, false
	}
	return fakeDriver{}, true
}

type nopSurface struct{}

func (nopSurface) Write([]byte)         {}
func (nopSurface) WriteString(string)   {}
func (nopSurface) Size() (int, int)     { return 24, 80 }
func (nopSurface) SetSize(int, int)     {}
func (nopSurface) CurrentPen() core.Pen { return core.Pen{} }

func TestNewNoDriver(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	_, _, err := New(nopSurface{}, "dumb")
	if !errors.Is(err, ErrNoDriver) {
		t.Fatalf("err = %v, want ErrNoDriver", err)
	}
}

func TestNewWalksInRegistrationOrder(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("picky", fakeProbe{accept: "special"})
	Register("fallback", fakeProbe{})

	_, name, err := New(nopSurface{}, "special")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if name != "picky" {
		t.Errorf("selected %q, want earlier registration to win", name)
	}

	_, name, err = New(nopSurface{}, "xterm")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if name != "fallback" {
		t.Errorf("selected %q, want \"fallback\"", name)
	}
}
