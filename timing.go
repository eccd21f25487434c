package signin

import "math"

// TimingState is the mutable record of one animation run.
type TimingState struct {
	Finished    bool
	Position    float64
	ElapsedTime float64 // milliseconds since the run started
	FrameTime   float64 // delta consumed by the most recent step, milliseconds
}

// TimingConfig parameterizes a run. ToValue may change while the run is in
// flight; the other fields are fixed when the run starts.
type TimingConfig struct {
	Duration float64 // milliseconds
	ToValue  float64
	Easing   Easing
}

// Step advances state by dt milliseconds and returns the new state. It is a
// pure function: cfg is read once, so a retarget that lands between two steps
// is seen whole by the next one.
//
// Position follows the eased path from wherever the previous step left it to
// cfg.ToValue, arriving exactly when ElapsedTime reaches Duration. Without a
// retarget this is start + (ToValue-start)*ease(progress). After a retarget
// the remaining eased distance is re-aimed at the new ToValue, so position is
// continuous and only the velocity jumps. Elapsed time is never reset.
//
// A negative or NaN dt is treated as zero. A finished state is returned as is.
func Step(state TimingState, cfg TimingConfig, dt float64) TimingState {
	if state.Finished {
		return state
	}
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}

	next := state
	next.FrameTime = dt
	next.ElapsedTime = state.ElapsedTime + dt

	if cfg.Duration <= 0 {
		next.Finished = true
		next.Position = cfg.ToValue
		return next
	}

	easing := cfg.Easing
	if easing == nil {
		easing = DefaultEasing
	}

	progress := clamp(next.ElapsedTime/cfg.Duration, 0, 1)
	if progress >= 1 {
		next.Finished = true
		next.Position = cfg.ToValue
		return next
	}

	prevEased := easing(clamp(state.ElapsedTime/cfg.Duration, 0, 1))
	remaining := 1 - prevEased
	if remaining <= 0 {
		next.Position = cfg.ToValue
		return next
	}

	// Fraction of the remaining distance still left after this step.
	left := clamp((1-easing(progress))/remaining, 0, 1)
	next.Position = cfg.ToValue + (state.Position-cfg.ToValue)*left
	return next
}
