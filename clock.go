package signin

import "math"

// DefaultDuration is the length of an open or close run, in milliseconds.
const DefaultDuration = 1000.0

// Driver is the single animated scalar of the screen: 1 when the buttons are
// showing, 0 when the form is. It is written only by its Scheduler and read by
// the derived graph.
type Driver struct {
	value float64
}

// Value returns the current driver value.
func (d *Driver) Value() float64 {
	return d.value
}

func (d *Driver) set(v float64) {
	d.value = clamp(v, 0, 1)
}

// Clock marks whether an animation run is in progress.
type Clock struct {
	running bool
}

// Running reports whether the clock is started.
func (c *Clock) Running() bool {
	return c.running
}

// Scheduler advances one Driver toward a target once per frame. At most one
// run is active at a time; a request made while running retargets the active
// run instead of starting a second one.
//
// There is no global animation manager. The owner calls Step each frame.
type Scheduler struct {
	driver   *Driver
	clock    Clock
	state    TimingState
	config   TimingConfig
	duration float64
	easing   Easing

	// Lifecycle hooks (nil by default).
	OnStart    func(from, to float64)
	OnRetarget func(position, to float64)
	OnStop     func(position float64)
}

// NewScheduler creates a scheduler for driver. Runs last duration
// milliseconds and follow easing; a nil easing selects DefaultEasing.
func NewScheduler(driver *Driver, duration float64, easing Easing) *Scheduler {
	if easing == nil {
		easing = DefaultEasing
	}
	return &Scheduler{driver: driver, duration: duration, easing: easing}
}

// RequestTarget animates the driver toward to, which is clamped to [0, 1].
//
// When idle, a fresh run starts from the current driver value. When a run is
// active only its target changes: elapsed time and position carry over. A
// scheduler whose duration is not positive snaps the driver to the target and
// never starts the clock. NaN targets are ignored.
func (s *Scheduler) RequestTarget(to float64) {
	if math.IsNaN(to) {
		return
	}
	to = clamp(to, 0, 1)

	if s.clock.running {
		s.config.ToValue = to
		if s.OnRetarget != nil {
			s.OnRetarget(s.state.Position, to)
		}
		return
	}

	if s.duration <= 0 {
		s.driver.set(to)
		return
	}

	from := s.driver.Value()
	s.state = TimingState{Position: from}
	s.config = TimingConfig{Duration: s.duration, ToValue: to, Easing: s.easing}
	s.clock.running = true
	if s.OnStart != nil {
		s.OnStart(from, to)
	}
}

// Step advances the active run by dt milliseconds and writes the new position
// into the driver. It does nothing while the clock is stopped.
func (s *Scheduler) Step(dt float64) {
	if !s.clock.running {
		return
	}
	s.state = Step(s.state, s.config, dt)
	s.driver.set(s.state.Position)
	if s.state.Finished {
		s.finish()
	}
}

// finish stops the clock. Calling it on a stopped clock is a no-op.
func (s *Scheduler) finish() {
	if !s.clock.running {
		return
	}
	s.clock.running = false
	if s.OnStop != nil {
		s.OnStop(s.state.Position)
	}
}

// Running reports whether a run is in progress.
func (s *Scheduler) Running() bool {
	return s.clock.Running()
}

// State returns a copy of the current run's timing state.
func (s *Scheduler) State() TimingState {
	return s.state
}

// Config returns a copy of the current run's configuration.
func (s *Scheduler) Config() TimingConfig {
	return s.config
}

// Target returns the value the driver is heading to, or its current value
// when idle.
func (s *Scheduler) Target() float64 {
	if s.clock.running {
		return s.config.ToValue
	}
	return s.driver.Value()
}

// Duration returns the run length in milliseconds.
func (s *Scheduler) Duration() float64 {
	return s.duration
}

// SetDuration changes the run length. An active run keeps its own duration.
func (s *Scheduler) SetDuration(ms float64) {
	s.duration = ms
}

// SetEasing changes the curve used by subsequent runs. Nil selects
// DefaultEasing.
func (s *Scheduler) SetEasing(e Easing) {
	if e == nil {
		e = DefaultEasing
	}
	s.easing = e
}
