package signin

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, gesture and clock events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries gesture and clock data for the ECS bridge.
type InteractionEvent struct {
	Type EventType

	// Gesture fields (valid for EventGesture)
	Trigger   Trigger
	Phase     GesturePhase
	PointerID int
	X, Y      float64

	// Driver state at the time of the event
	Driver float64
	Target float64
}

// Scene is the top-level object that owns the driver, its derived outputs,
// the tap regions, and the input queue. Hosts call ProcessPointer with raw
// input and Update once per frame, then read Frame or Outputs to draw.
type Scene struct {
	config     Config
	layout     Layout
	graph      *Graph
	dispatcher *Dispatcher
	input      *TapRecognizer

	openRegion  Region
	formRegion  Region
	closeRegion Region

	store EntityStore

	debug    bool
	debugOut io.Writer

	injectQueue    []syntheticPointerEvent
	testRunner     *TestRunner
	screenshotHook func(label string)

	frames  uint64
	elapsed float64 // milliseconds
}

// NewScene creates a scene from cfg. The driver starts at cfg.InitialDriver.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	s := &Scene{
		config:     cfg,
		layout:     NewLayout(cfg.ViewportWidth, cfg.ViewportHeight),
		graph:      NewGraph(cfg.ViewportHeight),
		dispatcher: NewDispatcher(cfg.InitialDriver, cfg.Duration, cfg.Easing),
		input:      NewTapRecognizer(cfg.MaxTapDistance),
		debugOut:   os.Stderr,
	}

	// Registration order is stacking order for equal z: the close glyph is a
	// child of the form panel and sits above it.
	s.openRegion = Region{Trigger: TriggerOpen, Enabled: true}
	s.formRegion = Region{Trigger: TriggerNone, Enabled: true}
	s.closeRegion = Region{Trigger: TriggerClose, Enabled: true}
	s.input.AddRegion(&s.openRegion)
	s.input.AddRegion(&s.formRegion)
	s.input.AddRegion(&s.closeRegion)
	s.syncRegions()

	s.input.OnGesture(s.handleGesture)

	sched := s.dispatcher.Scheduler()
	sched.OnStart = func(from, to float64) {
		s.debugf("clock start: %.4f -> %.0f", from, to)
		s.emit(InteractionEvent{Type: EventClockStart})
	}
	sched.OnRetarget = func(position, to float64) {
		s.debugf("clock retarget: at %.4f -> %.0f", position, to)
	}
	sched.OnStop = func(position float64) {
		s.debugf("stop clock: %.4f", position)
		s.emit(InteractionEvent{Type: EventClockStop})
	}
	return s, nil
}

// Update advances the scene by dt milliseconds: scripted steps run, one
// queued synthetic pointer event is consumed, the animation steps, and the
// tap regions follow the new outputs.
func (s *Scene) Update(dt float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	injected := s.processInjectedInput()

	animating := s.dispatcher.Animating()
	s.dispatcher.Tick(dt)
	s.syncRegions()

	s.frames++
	if dt > 0 {
		s.elapsed += dt
	}

	if s.debug && (animating || injected) {
		s.debugLog(debugStats{
			frame:      s.frames,
			updateTime: time.Since(t0),
			driver:     s.dispatcher.Driver(),
			state:      s.dispatcher.Scheduler().State(),
			target:     s.dispatcher.Scheduler().Target(),
			injected:   injected,
		})
	}
}

// ProcessPointer feeds one raw pointer sample to the tap recognizer.
// Pointer 0 is the mouse; 1-9 are touches. Coordinates are in viewport
// pixels.
func (s *Scene) ProcessPointer(pointerID int, x, y float64, pressed bool) {
	s.input.ProcessPointer(pointerID, x, y, pressed)
}

// CancelPointers aborts any taps in progress, e.g. when the host window
// loses focus.
func (s *Scene) CancelPointers() {
	s.input.CancelAll()
}

// HandleGesture applies a gesture event directly, bypassing hit testing.
// Hosts without pointer input (keyboard shortcuts) use this.
func (s *Scene) HandleGesture(ev GestureEvent) {
	s.handleGesture(GestureContext{Event: ev, PointerID: -1})
}

func (s *Scene) handleGesture(ctx GestureContext) {
	if s.dispatcher.HandleGesture(ctx.Event) {
		s.debugf("gesture %s %s -> target %.0f", ctx.Event.Trigger, ctx.Event.Phase, s.dispatcher.Scheduler().Target())
	}
	s.emit(InteractionEvent{
		Type:      EventGesture,
		Trigger:   ctx.Event.Trigger,
		Phase:     ctx.Event.Phase,
		PointerID: ctx.PointerID,
		X:         ctx.X,
		Y:         ctx.Y,
	})
}

// OnGesture registers a scene-level callback for gesture phase changes
// recognized from pointer input.
func (s *Scene) OnGesture(fn func(GestureContext)) CallbackHandle {
	return s.input.OnGesture(fn)
}

// syncRegions moves the tap regions to where the current frame draws them.
func (s *Scene) syncRegions() {
	f := s.Frame()
	placeRegion(&s.openRegion, f.SignInButton, HitRect{Width: f.SignInButton.Width, Height: f.SignInButton.Height}, f.ButtonZIndex)
	placeRegion(&s.formRegion, f.Form, HitRect{Width: f.Form.Width, Height: f.Form.Height}, f.FormZIndex)
	placeRegion(&s.closeRegion, f.CloseButton, circleIn(f.CloseButton), f.FormZIndex)
}

func placeRegion(r *Region, rect Rect, shape HitShape, z float64) {
	r.X, r.Y = rect.X, rect.Y
	r.Shape = shape
	r.ZIndex = z
}

// circleIn returns the largest circle that fits rect, in rect-local space.
func circleIn(rect Rect) HitCircle {
	return HitCircle{
		CenterX: rect.Width / 2,
		CenterY: rect.Height / 2,
		Radius:  math.Min(rect.Width, rect.Height) / 2,
	}
}

// Outputs evaluates the derived graph at the current driver value.
func (s *Scene) Outputs() Outputs {
	return s.graph.Outputs(s.dispatcher.Driver())
}

// Frame returns the resolved geometry for drawing the current state.
func (s *Scene) Frame() Frame {
	return s.layout.Resolve(s.Outputs())
}

// Layout returns the resting geometry.
func (s *Scene) Layout() Layout {
	return s.layout
}

// Graph returns the derived value graph.
func (s *Scene) Graph() *Graph {
	return s.graph
}

// Dispatcher returns the gesture dispatcher that owns the driver.
func (s *Scene) Dispatcher() *Dispatcher {
	return s.dispatcher
}

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config {
	return s.config
}

// Frames returns how many times Update has run.
func (s *Scene) Frames() uint64 {
	return s.frames
}

// Elapsed returns the total time passed to Update, in milliseconds.
func (s *Scene) Elapsed() float64 {
	return s.elapsed
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, clock
// lifecycle, recognized gestures, and per-frame timing while animating are
// logged to the debug writer (stderr by default).
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetDebugWriter redirects debug output. A nil writer restores stderr.
func (s *Scene) SetDebugWriter(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	s.debugOut = w
}

func (s *Scene) emit(ev InteractionEvent) {
	if s.store == nil {
		return
	}
	ev.Driver = s.dispatcher.Driver()
	ev.Target = s.dispatcher.Scheduler().Target()
	s.store.EmitEvent(ev)
}
