package signin

import "testing"

func newTestScene(t *testing.T) *Scene {
	t.Helper()
	s, err := NewScene(DefaultConfig())
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestInjectTap(t *testing.T) {
	s := newTestScene(t)
	s.InjectTap(100, 200)

	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}
	if !s.injectQueue[0].pressed || s.injectQueue[1].pressed {
		t.Error("tap should queue a press then a release")
	}
	for i, ev := range s.injectQueue {
		if ev.x != 100 || ev.y != 200 {
			t.Errorf("event %d at (%v,%v), want (100,200)", i, ev.x, ev.y)
		}
	}
}

func TestInjectQueueOrder(t *testing.T) {
	s := newTestScene(t)
	s.InjectPress(10, 20)
	s.InjectMove(30, 40)
	s.InjectRelease(50, 60)

	want := []syntheticPointerEvent{
		{10, 20, true},
		{30, 40, true},
		{50, 60, false},
	}
	if len(s.injectQueue) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(s.injectQueue))
	}
	for i, w := range want {
		if s.injectQueue[i] != w {
			t.Errorf("event %d: got %+v, want %+v", i, s.injectQueue[i], w)
		}
	}
}

func TestInjectTapTrigger(t *testing.T) {
	s := newTestScene(t)
	s.InjectTapTrigger(TriggerOpen)

	c := s.Frame().SignInButton.Center()
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}
	if s.injectQueue[0].x != c.X || s.injectQueue[0].y != c.Y {
		t.Errorf("tap at (%v,%v), want button centre (%v,%v)", s.injectQueue[0].x, s.injectQueue[0].y, c.X, c.Y)
	}

	s.InjectTapTrigger(TriggerNone)
	if len(s.injectQueue) != 2 {
		t.Errorf("TriggerNone should queue nothing, queue has %d", len(s.injectQueue))
	}
}

func TestProcessInjectedInput(t *testing.T) {
	s := newTestScene(t)

	var began bool
	s.OnGesture(func(ctx GestureContext) {
		if ctx.Event.Phase == PhaseBegan {
			began = true
			if ctx.PointerID != 0 {
				t.Errorf("injected events use pointer 0, got %d", ctx.PointerID)
			}
		}
	})

	c := s.Frame().SignInButton.Center()
	s.InjectPress(c.X, c.Y)
	if !s.processInjectedInput() {
		t.Error("expected processInjectedInput to consume an event")
	}
	if !began {
		t.Error("began should have fired")
	}
	if len(s.injectQueue) != 0 {
		t.Errorf("queue should be empty, got %d", len(s.injectQueue))
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	s := newTestScene(t)
	if s.processInjectedInput() {
		t.Error("should not consume when queue is empty")
	}
}
