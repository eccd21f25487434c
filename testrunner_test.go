package signin

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "tapTrigger", "trigger": "open"},
			{"action": "tap", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "expect", "output": "formOpacity", "value": 1, "tolerance": 0.01}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "tapTrigger" || runner.steps[0].Trigger != "open" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "tap" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Output != "formOpacity" || runner.steps[3].Value != 1 || runner.steps[3].Tolerance != 0.01 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "jump"}]}`},
		{"bad trigger", `{"steps": [{"action": "tapTrigger", "trigger": "sideways"}]}`},
		{"unknown output", `{"steps": [{"action": "expect", "output": "shadow"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.HasPrefix(err.Error(), "parse test script:") {
				t.Errorf("error %q lacks prefix", err)
			}
		})
	}
}

func runScript(t *testing.T, s *Scene, script string) *TestRunner {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	for i := 0; !runner.Done(); i++ {
		if i > 1000 {
			t.Fatal("script never finished")
		}
		s.Update(16)
	}
	return runner
}

func TestRunnerOpenThenClose(t *testing.T) {
	s := newTestScene(t)
	runner := runScript(t, s, `{"steps": [
		{"action": "tapTrigger", "trigger": "open"},
		{"action": "wait", "frames": 70},
		{"action": "expect", "output": "driver", "value": 0},
		{"action": "expect", "output": "formOpacity", "value": 1},
		{"action": "expect", "output": "buttonZIndex", "value": -1},
		{"action": "tapTrigger", "trigger": "close"},
		{"action": "wait", "frames": 70},
		{"action": "expect", "output": "driver", "value": 1},
		{"action": "expect", "output": "closeButtonRotationDeg", "value": 360}
	]}`)

	if f := runner.Failures(); len(f) != 0 {
		t.Errorf("unexpected failures: %v", f)
	}
}

func TestRunnerRecordsFailure(t *testing.T) {
	s := newTestScene(t)
	runner := runScript(t, s, `{"steps": [
		{"action": "expect", "output": "driver", "value": 0}
	]}`)

	f := runner.Failures()
	if len(f) != 1 {
		t.Fatalf("expected 1 failure, got %v", f)
	}
	if !strings.Contains(f[0], "driver") {
		t.Errorf("failure %q should name the output", f[0])
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	s := newTestScene(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 2; i++ {
		s.Update(16)
		if runner.Done() {
			t.Fatalf("done after %d frames, want 3", i+1)
		}
	}
	s.Update(16)
	if !runner.Done() {
		t.Error("runner should be done after 3 frames")
	}
}

func TestRunnerWaitsForInjectQueue(t *testing.T) {
	s := newTestScene(t)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "tap", "x": 10, "y": 10},
		{"action": "tap", "x": 20, "y": 20}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	s.Update(16) // queues first tap, consumes its press
	if runner.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", runner.cursor)
	}
	s.Update(16) // release still queued: runner holds
	if runner.cursor != 1 {
		t.Errorf("runner advanced while the inject queue was busy")
	}
	s.Update(16)
	if runner.cursor != 2 {
		t.Errorf("cursor = %d, want 2", runner.cursor)
	}
}
