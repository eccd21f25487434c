// Package termhost runs a signin.Scene in a terminal with tcell. Terminal
// cells are mapped onto the scene's viewport so mouse clicks land on the
// same regions a touch would.
package termhost

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/signin"
)

// DefaultTickInterval is ~60 FPS.
const DefaultTickInterval = 16 * time.Millisecond

// RunConfig configures Run.
type RunConfig struct {
	// TickInterval is the frame period. Zero selects DefaultTickInterval.
	TickInterval time.Duration
	// Sound plays short tones when a tap lands and when the screen settles.
	Sound bool
}

// host couples a tcell screen to a scene.
type host struct {
	screen tcell.Screen
	scene  *signin.Scene
	tones  toner

	cols, rows int
	mouseDown  bool
	animating  bool
}

// Run takes over the terminal and drives scene until Esc, Ctrl-C, or q.
func Run(scene *signin.Scene, cfg RunConfig) error {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("termhost: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("termhost: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	var tones toner = nopToner{}
	if cfg.Sound {
		bt, err := newBeepToner()
		if err != nil {
			// Non-fatal, the screen works without sound
			log.Printf("termhost: audio initialization failed: %v", err)
		} else {
			tones = bt
		}
	}

	h := newHost(screen, scene, tones)
	h.loop(cfg.TickInterval)
	return nil
}

func newHost(screen tcell.Screen, scene *signin.Scene, tones toner) *host {
	h := &host{screen: screen, scene: scene, tones: tones}
	h.cols, h.rows = screen.Size()
	scene.OnGesture(func(ctx signin.GestureContext) {
		if ctx.Event.Phase == signin.PhaseEnd {
			h.tones.tone(toneTap)
		}
	})
	return h
}

func (h *host) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go h.pollEvents(eventChan, done)

	last := time.Now()
	h.draw()
	for {
		select {
		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			h.tick(dt)
			h.draw()
		}
	}
}

// pollEvents forwards terminal events to events until the screen is
// finalized or done is closed.
func (h *host) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// tick advances the scene by dt milliseconds.
func (h *host) tick(dt float64) {
	h.scene.Update(dt)
	animating := h.scene.Dispatcher().Animating()
	if h.animating && !animating {
		h.tones.tone(toneSettle)
	}
	h.animating = animating
}

// handleEvent applies one terminal event. It returns false when the user
// asked to quit.
func (h *host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'o':
				h.scene.HandleGesture(signin.GestureEvent{Trigger: signin.TriggerOpen, Phase: signin.PhaseEnd})
			case 'c':
				h.scene.HandleGesture(signin.GestureEvent{Trigger: signin.TriggerClose, Phase: signin.PhaseEnd})
			}
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		x, y := h.cellToViewport(cx, cy)
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed || h.mouseDown {
			h.scene.ProcessPointer(0, x, y, pressed)
		}
		h.mouseDown = pressed

	case *tcell.EventResize:
		h.cols, h.rows = h.screen.Size()
		h.screen.Sync()

	case *tcell.EventFocus:
		if !ev.Focused {
			h.scene.CancelPointers()
			h.mouseDown = false
		}
	}
	return true
}

// cellToViewport returns the viewport point at the centre of a cell.
func (h *host) cellToViewport(col, row int) (float64, float64) {
	vp := h.scene.Layout().Viewport
	cw, ch := h.cellSize(vp)
	return (float64(col) + 0.5) * cw, (float64(row) + 0.5) * ch
}

func (h *host) cellSize(vp signin.Rect) (float64, float64) {
	cols, rows := h.cols, h.rows
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	return vp.Width / float64(cols), vp.Height / float64(rows)
}
