package termhost

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Tone frequencies in Hz.
const (
	toneTap    = 880.0
	toneSettle = 660.0
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 50 * time.Millisecond
)

// toner plays short feedback tones.
type toner interface {
	tone(freq float64)
}

type nopToner struct{}

func (nopToner) tone(float64) {}

// beepToner plays sine tones through the default audio device.
type beepToner struct{}

func newBeepToner() (beepToner, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return beepToner{}, err
	}
	return beepToner{}, nil
}

func (beepToner) tone(freq float64) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(toneDuration), sine))
}
