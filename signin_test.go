package signin

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0, A: 0.5}
	got := c.RGBA(0.5)
	want := color.NRGBA{R: 255, G: 128, B: 0, A: 64}
	if got != want {
		t.Errorf("RGBA = %+v, want %+v", got, want)
	}
	if a := ColorWhite.RGBA(2).A; a != 255 {
		t.Errorf("opacity above 1 should clamp, alpha = %d", a)
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := Rect{10, 10, 20, 20}
	if !r.Contains(10, 10) || !r.Contains(30, 30) {
		t.Error("edges should be inside")
	}
	if r.Contains(9.9, 15) || r.Contains(15, 30.1) {
		t.Error("points past the edge should be outside")
	}
	if c := r.Center(); c != (Vec2{20, 20}) {
		t.Errorf("Center = %v", c)
	}
}

func TestRangeBounds(t *testing.T) {
	r := Range{100, 0}
	if r.Lo() != 0 || r.Hi() != 100 {
		t.Errorf("Lo/Hi = %v/%v", r.Lo(), r.Hi())
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{TriggerNone.String(), "none"},
		{TriggerOpen.String(), "open"},
		{TriggerClose.String(), "close"},
		{PhaseUndetermined.String(), "undetermined"},
		{PhaseFailed.String(), "failed"},
		{PhaseBegan.String(), "began"},
		{PhaseCancelled.String(), "cancelled"},
		{PhaseActive.String(), "active"},
		{PhaseEnd.String(), "end"},
		{GesturePhase(42).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}
