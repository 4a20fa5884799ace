// Package audio plays short tones as turn feedback.
package audio

import (
	"time"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"gridsnake/game/types"
)

const (
	sampleRate   = beep.SampleRate(44100)
	blipDuration = 40 * time.Millisecond
)

var pitches = map[types.Direction]float64{
	types.Up:    880,
	types.Right: 784,
	types.Down:  660,
	types.Left:  587,
}

// Blipper plays one tone per direction. A zero Blipper is silent.
type Blipper struct {
	ready bool
}

// NewBlipper opens the speaker. On failure the returned Blipper is silent
// and the error says why.
func NewBlipper() (*Blipper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Blipper{}, errors.Wrap(err, "initialising speaker")
	}
	return &Blipper{ready: true}, nil
}

// Pitch returns the tone frequency for d, or 0 for None.
func Pitch(d types.Direction) float64 {
	return pitches[d]
}

// Blip plays the tone for d without blocking.
func (b *Blipper) Blip(d types.Direction) {
	if b == nil || !b.ready {
		return
	}
	freq := Pitch(d)
	if freq == 0 {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		glog.V(1).Infof("audio: %v", err)
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipDuration), sine))
}

func (b *Blipper) Close() {
	if b == nil || !b.ready {
		return
	}
	speaker.Close()
	b.ready = false
}
