package signin

import "math"

// --- Constants ---

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// --- Built-in HitShape types ---

// HitShape is a tappable area in region-local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Regions ---

// Region is a tappable area of the screen. Regions with TriggerNone still
// take part in hit testing, so a panel can shield the regions stacked below
// it.
type Region struct {
	Trigger Trigger
	Shape   HitShape
	X, Y    float64 // origin of Shape's local space
	ZIndex  float64
	Enabled bool
}

func (r *Region) contains(x, y float64) bool {
	return r.Enabled && r.Shape != nil && r.Shape.Contains(x-r.X, y-r.Y)
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	startX float64
	startY float64
	lastX  float64
	lastY  float64
	hit    *Region // region captured at press time
	failed bool
}

// --- Handler registry ---

// GestureContext carries one gesture phase change.
type GestureContext struct {
	Event     GestureEvent
	PointerID int
	X, Y      float64
}

type gestureHandler struct {
	id uint32
	fn func(GestureContext)
}

type handlerRegistry struct {
	gesture []gestureHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.gesture
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			h.reg.gesture = s[:len(s)-1]
			return
		}
	}
}

// --- Tap recognizer ---

// TapRecognizer turns raw pointer samples into tap gesture phases on
// regions. A press inside a region reports PhaseBegan and captures the
// pointer; a release inside the same region reports PhaseActive then
// PhaseEnd; a release elsewhere, or travel beyond MaxDistance, reports
// PhaseFailed.
type TapRecognizer struct {
	MaxDistance float64

	regions  []*Region
	pointers [maxPointers]pointerState
	handlers handlerRegistry
}

// NewTapRecognizer creates a recognizer with the given tap travel limit.
func NewTapRecognizer(maxDistance float64) *TapRecognizer {
	return &TapRecognizer{MaxDistance: maxDistance}
}

// AddRegion registers r. Regions added later sit above earlier ones with
// the same ZIndex.
func (t *TapRecognizer) AddRegion(r *Region) {
	t.regions = append(t.regions, r)
}

// Regions returns the registered regions. The returned slice MUST NOT be mutated.
func (t *TapRecognizer) Regions() []*Region {
	return t.regions
}

// OnGesture registers a callback for every gesture phase change.
func (t *TapRecognizer) OnGesture(fn func(GestureContext)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.gesture = append(t.handlers.gesture, gestureHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers}
}

// hitTest finds the topmost enabled region at (x, y), or nil.
func (t *TapRecognizer) hitTest(x, y float64) *Region {
	var top *Region
	for _, r := range t.regions {
		if !r.contains(x, y) {
			continue
		}
		if top == nil || r.ZIndex >= top.ZIndex {
			top = r
		}
	}
	return top
}

// ProcessPointer runs the tap state machine for a single pointer sample.
// Out-of-range pointer IDs are ignored.
func (t *TapRecognizer) ProcessPointer(pointerID int, x, y float64, pressed bool) {
	if pointerID < 0 || pointerID >= maxPointers {
		return
	}
	ps := &t.pointers[pointerID]

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y
		ps.failed = false
		ps.hit = t.hitTest(x, y)
		if ps.hit != nil && ps.hit.Trigger != TriggerNone {
			t.fire(ps.hit.Trigger, PhaseBegan, pointerID, x, y)
		}

	case pressed && ps.down:
		ps.lastX, ps.lastY = x, y
		if ps.hit == nil || ps.failed || ps.hit.Trigger == TriggerNone {
			return
		}
		dx := x - ps.startX
		dy := y - ps.startY
		if math.Sqrt(dx*dx+dy*dy) > t.MaxDistance {
			ps.failed = true
			t.fire(ps.hit.Trigger, PhaseFailed, pointerID, x, y)
		}

	case !pressed && ps.down:
		hit := ps.hit
		failed := ps.failed
		*ps = pointerState{lastX: x, lastY: y}
		if hit == nil || failed || hit.Trigger == TriggerNone {
			return
		}
		if t.hitTest(x, y) == hit {
			t.fire(hit.Trigger, PhaseActive, pointerID, x, y)
			t.fire(hit.Trigger, PhaseEnd, pointerID, x, y)
		} else {
			t.fire(hit.Trigger, PhaseFailed, pointerID, x, y)
		}

	default:
		ps.lastX, ps.lastY = x, y
	}
}

// CancelAll aborts every pointer that is down, reporting PhaseCancelled for
// taps still in progress.
func (t *TapRecognizer) CancelAll() {
	for i := range t.pointers {
		ps := &t.pointers[i]
		if !ps.down {
			continue
		}
		hit, failed := ps.hit, ps.failed
		x, y := ps.lastX, ps.lastY
		*ps = pointerState{lastX: x, lastY: y}
		if hit != nil && !failed && hit.Trigger != TriggerNone {
			t.fire(hit.Trigger, PhaseCancelled, i, x, y)
		}
	}
}

// Down reports whether the given pointer is currently pressed.
func (t *TapRecognizer) Down(pointerID int) bool {
	if pointerID < 0 || pointerID >= maxPointers {
		return false
	}
	return t.pointers[pointerID].down
}

func (t *TapRecognizer) fire(trigger Trigger, phase GesturePhase, pointerID int, x, y float64) {
	ctx := GestureContext{
		Event:     GestureEvent{Trigger: trigger, Phase: phase},
		PointerID: pointerID,
		X:         x,
		Y:         y,
	}
	for _, h := range t.handlers.gesture {
		h.fn(ctx)
	}
}
