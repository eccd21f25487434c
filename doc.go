// Package signin drives a two-state sign-in screen (collapsed buttons vs.
// expanded form) from a single animated scalar.
//
// One driver value in [0, 1] says how far the screen is toward showing its
// buttons (1) or its form (0). Taps on the "Sign In" button and on the close
// glyph retarget the driver; a clock-driven scheduler eases it toward the
// target once per frame; a fixed table of clamped linear mappings turns it
// into the opacity, offset, stacking order, and rotation of every element.
//
// # Quick start
//
// Hosts own the frame loop. Feed pointer samples, advance time, then draw:
//
//	scene, err := signin.NewScene(signin.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	// each frame:
//	scene.ProcessPointer(0, mouseX, mouseY, pressed)
//	scene.Update(16) // milliseconds
//	frame := scene.Frame()
//
// Ready-made hosts live in [github.com/phanxgames/signin/ebitenhost]
// (window, mouse and touch) and [github.com/phanxgames/signin/termhost]
// (terminal, mouse).
//
// # Engine pieces
//
// [Easing] shapes progress. [Step] is the pure timing function. [Scheduler]
// runs one driver, starting a run when idle and retargeting it when busy.
// [Graph] holds the [DerivedNode] table and evaluates it on demand.
// [Dispatcher] maps gesture-end events to targets. [TapRecognizer] turns
// pointer samples into gesture phases over z-ordered [Region] values.
//
// Everything is single-threaded and deterministic: tests drive
// [Scene.Update] with fixed deltas and queue taps with [Scene.InjectTap] or
// JSON scripts via [LoadTestScript].
package signin
