package core

import "testing"

func TestColorDefault(t *testing.T) {
	if !ColorDefault.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if Color(3).IsDefault() {
		t.Error("index 3 is not default")
	}
	if !ColorDefault.Equals(Color(-5)) {
		t.Error("all negative values denote the default color")
	}
	if ColorDefault.Equals(ColorBlack) {
		t.Error("default should not equal black")
	}
}

func TestColorBright(t *testing.T) {
	if got := ColorBright(ColorRed); got != Color(9) {
		t.Errorf("bright red = %v, want idx(9)", got)
	}
	if got := ColorBright(Color(42)); got != Color(42) {
		t.Errorf("bright of non-base color should be unchanged, got %v", got)
	}
}

func TestColorRGBExactCubeHit(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    Color
	}{
		{0, 0, 0, 16},        // cube origin
		{255, 0, 0, 196},     // pure red corner
		{0, 255, 0, 46},      // pure green corner
		{255, 255, 255, 231}, // cube white
		{95, 135, 175, 67},   // interior cube entry 16 + 36*1 + 6*2 + 3
	}
	for _, tt := range tests {
		if got := ColorRGB(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("ColorRGB(%d,%d,%d) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestColorRGBGrayRamp(t *testing.T) {
	// 128 sits exactly on grayscale entry 232 + 12 (value 8 + 10*12).
	if got := ColorRGB(128, 128, 128); got != Color(244) {
		t.Errorf("ColorRGB(128,128,128) = %v, want idx(244)", got)
	}
}

func TestColorRGBRange(t *testing.T) {
	for _, c := range []Color{ColorRGB(1, 2, 3), ColorRGB(200, 30, 90), ColorRGB(250, 250, 250)} {
		if c < 16 || c > 255 {
			t.Errorf("quantized color %v outside 16-255", c)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String() = %q, want \"default\"", got)
	}
	if got := Color(7).String(); got != "idx(7)" {
		t.Errorf("String() = %q, want \"idx(7)\"", got)
	}
}
