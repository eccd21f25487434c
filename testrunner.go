package signin

import (
	"encoding/json"
	"fmt"
	"math"
)

// defaultExpectTolerance is used by "expect" steps that give no tolerance.
const defaultExpectTolerance = 1e-6

// testStep represents a single action in a test script.
type testStep struct {
	Action    string  `json:"action"`
	Label     string  `json:"label,omitempty"`
	Trigger   string  `json:"trigger,omitempty"`
	X         float64 `json:"x,omitempty"`
	Y         float64 `json:"y,omitempty"`
	Frames    int     `json:"frames,omitempty"`
	Output    string  `json:"output,omitempty"`
	Value     float64 `json:"value,omitempty"`
	Tolerance float64 `json:"tolerance,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected taps, waits, and output checks across
// frames. Attach to a Scene via SetTestRunner.
//
// Supported actions: "tap" (x, y), "tapTrigger" (trigger: "open" or
// "close"), "wait" (frames), "screenshot" (label), and "expect" (output,
// value, tolerance).
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

func (st testStep) validate() error {
	switch st.Action {
	case "tap", "wait", "screenshot":
		return nil
	case "tapTrigger":
		if parseTrigger(st.Trigger) == TriggerNone {
			return fmt.Errorf("unknown trigger %q", st.Trigger)
		}
		return nil
	case "expect":
		if _, ok := (Outputs{}).Lookup(st.Output); !ok {
			return fmt.Errorf("unknown output %q", st.Output)
		}
		return nil
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
}

func parseTrigger(name string) Trigger {
	switch name {
	case "open":
		return TriggerOpen
	case "close":
		return TriggerClose
	default:
		return TriggerNone
	}
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input and animation each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns a description of every "expect" step that did not hold.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
	} else {
		r.advance(s)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

// advance runs steps up to and including the next action. Expectations are
// free: they run back to back with the action that follows them.
func (r *TestRunner) advance(s *Scene) {
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++

		switch st.Action {
		case "expect":
			r.check(s, st)
			continue
		case "tap":
			s.InjectTap(st.X, st.Y)
		case "tapTrigger":
			s.InjectTapTrigger(parseTrigger(st.Trigger))
		case "screenshot":
			s.Screenshot(st.Label)
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
		}
		return
	}
}

func (r *TestRunner) check(s *Scene, st testStep) {
	got, _ := s.Outputs().Lookup(st.Output)
	tol := st.Tolerance
	if tol <= 0 {
		tol = defaultExpectTolerance
	}
	if math.Abs(got-st.Value) > tol {
		r.failures = append(r.failures, fmt.Sprintf("frame %d: %s = %v, want %v ± %v",
			s.frames, st.Output, got, st.Value, tol))
	}
}
