// Package ebitenhost runs a signin.Scene in an Ebitengine window, feeding it
// mouse and touch input and drawing each frame with vector shapes and TTF
// text.
package ebitenhost

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/signin"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title string
	// Window size in device-independent pixels. Zero uses the scene's
	// viewport size.
	Width, Height int
	ShowFPS       bool
	// Keys enables keyboard shortcuts: O opens the form, Escape closes it,
	// F12 saves a screenshot.
	Keys bool
	// ScreenshotDir receives PNG captures. Empty selects
	// DefaultScreenshotDir.
	ScreenshotDir string
}

// game implements ebiten.Game around a scene.
type game struct {
	scene    *signin.Scene
	cfg      RunConfig
	pointers pointerTracker
	painter  *painter
	fps      *fpsWidget

	screenshotQueue []string
}

// Run opens a window and drives scene until the window is closed.
func Run(scene *signin.Scene, cfg RunConfig) error {
	vp := scene.Layout().Viewport
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = int(vp.Width), int(vp.Height)
	}

	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = DefaultScreenshotDir
	}

	p, err := newPainter()
	if err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}

	g := &game{scene: scene, cfg: cfg, painter: p}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	scene.OnGesture(g.painter.onGesture)
	scene.OnScreenshot(g.queueScreenshot)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}

// frameMillis is the fixed frame delta at the current tick rate.
func frameMillis() float64 {
	return 1000.0 / float64(ebiten.TPS())
}

func (g *game) Update() error {
	if !ebiten.IsFocused() {
		g.scene.CancelPointers()
	} else {
		g.pointers.poll(g.scene)
	}

	if g.cfg.Keys {
		if inpututil.IsKeyJustPressed(ebiten.KeyO) {
			g.scene.HandleGesture(signin.GestureEvent{Trigger: signin.TriggerOpen, Phase: signin.PhaseEnd})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.scene.HandleGesture(signin.GestureEvent{Trigger: signin.TriggerClose, Phase: signin.PhaseEnd})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
			g.scene.Screenshot(g.scene.Dispatcher().State().String())
		}
	}

	dt := frameMillis()
	g.scene.Update(dt)
	g.painter.update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.painter.draw(screen, g.scene.Frame())
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := g.scene.Layout().Viewport
	return int(vp.Width), int(vp.Height)
}
