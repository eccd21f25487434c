package signin

import (
	"fmt"
	"time"
)

// debugStats holds per-frame timing and animation state.
// Only populated when Scene.debug is true.
type debugStats struct {
	frame      uint64
	updateTime time.Duration
	driver     float64
	state      TimingState
	target     float64
	injected   bool
}

// debugLog prints one frame's stats to the debug writer.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut,
		"[signin] frame %d | driver: %.4f | target: %.0f | elapsed: %.0fms | update: %v\n",
		stats.frame, stats.driver, stats.target, stats.state.ElapsedTime, stats.updateTime)
	if stats.injected {
		_, _ = fmt.Fprintf(s.debugOut, "[signin] frame %d | injected pointer event (%d queued)\n",
			stats.frame, len(s.injectQueue))
	}
}

// debugf prints a single prefixed line when debug mode is on.
func (s *Scene) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.debugOut, "[signin] "+format+"\n", args...)
}
