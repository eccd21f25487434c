package signin

import (
	"errors"
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// ErrUnknownEasing is returned by EasingByName for names it does not know.
var ErrUnknownEasing = errors.New("unknown easing")

// Easing maps normalized progress in [0, 1] to eased progress. Curves used to
// drive the screen must be monotonic with Easing(0) == 0 and Easing(1) == 1.
type Easing func(t float64) float64

// FromTween adapts a gween easing curve (begin, change, duration form) to a
// normalized Easing. The endpoints are pinned so that float32 rounding inside
// the curve can never move them.
func FromTween(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return float64(fn(float32(t), 0, 1, 1))
	}
}

var (
	// Linear is the identity curve.
	Linear = FromTween(ease.Linear)

	// InOutCubic accelerates through the first half and decelerates through
	// the second.
	InOutCubic = FromTween(ease.InOutCubic)

	// DefaultEasing is the curve used for open/close runs.
	DefaultEasing = InOutCubic
)

var easings = map[string]ease.TweenFunc{
	"linear":     ease.Linear,
	"inQuad":     ease.InQuad,
	"outQuad":    ease.OutQuad,
	"inOutQuad":  ease.InOutQuad,
	"inCubic":    ease.InCubic,
	"outCubic":   ease.OutCubic,
	"inOutCubic": ease.InOutCubic,
	"inSine":     ease.InSine,
	"outSine":    ease.OutSine,
	"inOutSine":  ease.InOutSine,
}

// EasingByName looks up one of the monotonic curves by name, e.g.
// "inOutCubic". Overshooting curves (elastic, back, bounce) leave [0, 1] and
// are not offered.
func EasingByName(name string) (Easing, error) {
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("easing %q: %w", name, ErrUnknownEasing)
	}
	return FromTween(fn), nil
}

// EasingNames returns the names accepted by EasingByName, sorted.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
