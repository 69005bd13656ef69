package main

import (
	"time"

	"github.com/automoto/verlet-chains/termview"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type sound struct{}

func newSound() (*sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &sound{}, nil
}

// chime plays the reset tone. A nil sound is silent.
func (s *sound) chime() {
	if s == nil {
		return
	}
	speaker.Play(termview.NewChime(sampleRate, 660, 120*time.Millisecond))
}
