package signin

import (
	"bytes"
	"strings"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"expanded", "expanded"},
		{"after-open", "after-open"},
		{"frame.01", "frame.01"},
		{"form open", "form_open"},
		{"path/to/thing", "path_to_thing"},
		{"special!@#", "special___"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
	}
	for _, tt := range tests {
		if got := SanitizeLabel(tt.in); got != tt.want {
			t.Errorf("SanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScreenshotHook(t *testing.T) {
	s := newTestScene(t)
	var labels []string
	s.OnScreenshot(func(label string) { labels = append(labels, label) })

	runScript(t, s, `{"steps": [
		{"action": "screenshot", "label": "collapsed"},
		{"action": "tapTrigger", "trigger": "open"},
		{"action": "wait", "frames": 70},
		{"action": "screenshot", "label": "form open"}
	]}`)

	if len(labels) != 2 || labels[0] != "collapsed" || labels[1] != "form_open" {
		t.Errorf("labels = %v, want [collapsed form_open]", labels)
	}
}

func TestScreenshotWithoutHook(t *testing.T) {
	s := newTestScene(t)
	var buf bytes.Buffer
	s.SetDebugWriter(&buf)
	s.SetDebugMode(true)

	s.Screenshot("x")
	if !strings.Contains(buf.String(), "screenshot x skipped") {
		t.Errorf("debug output = %q", buf.String())
	}
}
