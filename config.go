package signin

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Default values used by DefaultConfig.
const (
	DefaultViewportWidth  = 360.0
	DefaultViewportHeight = 640.0
	DefaultMaxTapDistance = 10.0 // pixels
)

// Config holds the externally supplied parameters of a sign-in screen.
type Config struct {
	// Viewport size in pixels. The height also sets the background parallax
	// distance.
	ViewportWidth  float64
	ViewportHeight float64

	// Duration of an open or close run in milliseconds. A non-positive
	// duration makes every request snap straight to its target.
	Duration float64

	// Easing curve for runs. Nil selects DefaultEasing.
	Easing Easing

	// InitialDriver is the driver value at start-up; 1 shows the buttons.
	InitialDriver float64

	// MaxTapDistance is how far a pointer may travel between press and
	// release and still count as a tap.
	MaxTapDistance float64
}

// DefaultConfig returns a phone-sized, collapsed screen with one-second
// in-out cubic runs.
func DefaultConfig() Config {
	return Config{
		ViewportWidth:  DefaultViewportWidth,
		ViewportHeight: DefaultViewportHeight,
		Duration:       DefaultDuration,
		Easing:         DefaultEasing,
		InitialDriver:  TargetCollapsed,
		MaxTapDistance: DefaultMaxTapDistance,
	}
}

// Validate checks the config for values the screen cannot lay out.
func (c Config) Validate() error {
	if !positiveFinite(c.ViewportWidth) || !positiveFinite(c.ViewportHeight) {
		return fmt.Errorf("viewport %vx%v: %w", c.ViewportWidth, c.ViewportHeight, ErrInvalidConfig)
	}
	if math.IsNaN(c.InitialDriver) || c.InitialDriver < 0 || c.InitialDriver > 1 {
		return fmt.Errorf("initial driver %v outside [0, 1]: %w", c.InitialDriver, ErrInvalidConfig)
	}
	if math.IsNaN(c.Duration) || math.IsInf(c.Duration, 0) {
		return fmt.Errorf("duration %v: %w", c.Duration, ErrInvalidConfig)
	}
	if math.IsNaN(c.MaxTapDistance) || c.MaxTapDistance < 0 {
		return fmt.Errorf("max tap distance %v: %w", c.MaxTapDistance, ErrInvalidConfig)
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
