package signin

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default panel and button fill.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts the color to a non-premultiplied color.RGBA, scaling Alpha by
// the given opacity. Opacity is clamped to [0, 1].
func (c Color) RGBA(opacity float64) color.NRGBA {
	opacity = clamp(opacity, 0, 1)
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A*opacity, 0, 1)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Offset returns a copy of r translated by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Range is a closed interval used for interpolation input and output ranges.
// Min need not be less than Max: a descending output range inverts the
// mapping.
type Range struct {
	Min, Max float64
}

// Lo returns the smaller bound.
func (r Range) Lo() float64 {
	if r.Min < r.Max {
		return r.Min
	}
	return r.Max
}

// Hi returns the larger bound.
func (r Range) Hi() float64 {
	if r.Min > r.Max {
		return r.Min
	}
	return r.Max
}

// Trigger identifies a tap region that drives the screen.
type Trigger uint8

const (
	TriggerNone  Trigger = iota // no region
	TriggerOpen                 // the "Sign In" button; opens the form
	TriggerClose                // the close glyph above the form
)

func (t Trigger) String() string {
	switch t {
	case TriggerOpen:
		return "open"
	case TriggerClose:
		return "close"
	default:
		return "none"
	}
}

// GesturePhase is the state reported by the tap recognizer for a region.
// The values follow the usual tap-handler lifecycle; only PhaseEnd moves the
// driver.
type GesturePhase uint8

const (
	PhaseUndetermined GesturePhase = iota // no touch seen yet
	PhaseFailed                           // released outside or moved too far
	PhaseBegan                            // pointer went down inside the region
	PhaseCancelled                        // interaction aborted by the host
	PhaseActive                           // recognized, not yet ended
	PhaseEnd                              // released inside the region
)

func (p GesturePhase) String() string {
	switch p {
	case PhaseUndetermined:
		return "undetermined"
	case PhaseFailed:
		return "failed"
	case PhaseBegan:
		return "began"
	case PhaseCancelled:
		return "cancelled"
	case PhaseActive:
		return "active"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of interaction event forwarded to an EntityStore.
type EventType uint8

const (
	EventGesture    EventType = iota // a gesture phase change on a trigger region
	EventClockStart                  // a new animation run started
	EventClockStop                   // the running animation finished
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
