package utils

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestColourValidate(t *testing.T) {
	cases := map[string]bool{
		"#000000ff":   true,
		"#A0b1C2d3":   true,
		"#000000":     false,
		"000000ff":    false,
		"#000000ffff": false,
		"#gg0000ff":   false,
		"":            false,
	}
	for in, want := range cases {
		if got := ColourValidate(in); got != want {
			t.Errorf("ColourValidate(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestColourVec4(t *testing.T) {
	got := ColourVec4("#ff000080")
	want := mgl32.Vec4{1, 0, 0, 128.0 / 255}
	if !got.ApproxEqual(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	black := ColourVec4("#000000ff")
	if !black.ApproxEqual(mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("opaque black parsed as %v", black)
	}
}

func TestDeltaTimer(t *testing.T) {
	var d DeltaTimer
	if dt := d.Next(); dt != 0 {
		t.Fatalf("first delta should be zero, got %s", dt)
	}
	d.Set(time.Now().Add(-50 * time.Millisecond))
	if dt := d.Next(); dt < 50*time.Millisecond {
		t.Errorf("expected at least 50ms, got %s", dt)
	}
}
