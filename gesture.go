package signin

// Driver targets for the two settled states. The numeric sense is inverted
// relative to "expanded": 1 shows the buttons, 0 shows the form.
const (
	TargetCollapsed = 1.0
	TargetExpanded  = 0.0
)

// ScreenState is the logical state the screen is settled in or heading to.
type ScreenState uint8

const (
	StateCollapsed ScreenState = iota // buttons visible, driver settles at 1
	StateExpanded                     // form visible, driver settles at 0
)

func (s ScreenState) String() string {
	if s == StateExpanded {
		return "expanded"
	}
	return "collapsed"
}

// GestureEvent is one phase change reported for a trigger region.
type GestureEvent struct {
	Trigger Trigger
	Phase   GesturePhase
}

// Dispatcher turns gesture-end events into driver targets. It owns the
// driver and its scheduler.
type Dispatcher struct {
	driver    Driver
	scheduler *Scheduler
}

// NewDispatcher creates a dispatcher whose driver starts at initial (clamped
// to [0, 1]) and animates with the given duration and easing.
func NewDispatcher(initial, duration float64, easing Easing) *Dispatcher {
	d := &Dispatcher{}
	d.driver.set(initial)
	d.scheduler = NewScheduler(&d.driver, duration, easing)
	return d
}

// HandleGesture applies ev and reports whether it requested a target.
// Only PhaseEnd is acted on: open requests 0, close requests 1. Repeating a
// request for the target already in flight is allowed and changes nothing.
func (d *Dispatcher) HandleGesture(ev GestureEvent) bool {
	if ev.Phase != PhaseEnd {
		return false
	}
	switch ev.Trigger {
	case TriggerOpen:
		d.scheduler.RequestTarget(TargetExpanded)
	case TriggerClose:
		d.scheduler.RequestTarget(TargetCollapsed)
	default:
		return false
	}
	return true
}

// Tick advances the animation by dt milliseconds.
func (d *Dispatcher) Tick(dt float64) {
	d.scheduler.Step(dt)
}

// Driver returns the current driver value.
func (d *Dispatcher) Driver() float64 {
	return d.driver.Value()
}

// State returns the state the screen is settled in or animating toward.
func (d *Dispatcher) State() ScreenState {
	if d.scheduler.Target() < 0.5 {
		return StateExpanded
	}
	return StateCollapsed
}

// Animating reports whether a run is in progress.
func (d *Dispatcher) Animating() bool {
	return d.scheduler.Running()
}

// Scheduler exposes the underlying scheduler for hooks and inspection.
func (d *Dispatcher) Scheduler() *Scheduler {
	return d.scheduler
}
