package signin

import "strings"

// OnScreenshot registers the host's capture function. Scripted "screenshot"
// steps call it with their label; a host that cannot capture leaves it unset
// and the steps are skipped.
func (s *Scene) OnScreenshot(fn func(label string)) {
	s.screenshotHook = fn
}

// Screenshot asks the host to capture the next rendered frame under label.
func (s *Scene) Screenshot(label string) {
	label = SanitizeLabel(label)
	if s.screenshotHook == nil {
		s.debugf("screenshot %s skipped: no capture hook", label)
		return
	}
	s.debugf("screenshot %s", label)
	s.screenshotHook(label)
}

// SanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func SanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
