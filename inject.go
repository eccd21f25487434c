package signin

// syntheticPointerEvent represents a single injected pointer event in
// viewport coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on the
// next Update.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a pointer move with the button held down.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: false})
}

// InjectTap is a convenience that queues a press followed by a release at
// the same point. Consumes two frames.
func (s *Scene) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectTapTrigger queues a tap at the centre of the trigger's region as it
// is currently placed. The tap is dropped when another region covers that
// point, since it would land there instead. Unknown triggers are ignored.
func (s *Scene) InjectTapTrigger(trigger Trigger) {
	var (
		r    *Region
		rect Rect
	)
	f := s.Frame()
	switch trigger {
	case TriggerOpen:
		r, rect = &s.openRegion, f.SignInButton
	case TriggerClose:
		r, rect = &s.closeRegion, f.CloseButton
	default:
		return
	}
	c := rect.Center()
	if top := s.input.hitTest(c.X, c.Y); top != r {
		s.debugf("tap %s skipped: region covered at (%.0f, %.0f)", trigger, c.X, c.Y)
		return
	}
	s.InjectTap(c.X, c.Y)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the tap recognizer as pointer 0. Returns true if an event was
// consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.input.ProcessPointer(0, evt.x, evt.y, evt.pressed)
	return true
}
