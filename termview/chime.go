package termview

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// chime is a sine tone with a linear fade out.
type chime struct {
	freq     float64
	phase    float64
	position int
	duration int
	rate     beep.SampleRate
}

// NewChime returns a streamer that plays a fading sine at freq for d.
func NewChime(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	return &chime{
		freq:     freq,
		duration: rate.N(d),
		rate:     rate,
	}
}

func (c *chime) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if c.position >= c.duration {
			return i, i > 0
		}

		gain := 1 - float64(c.position)/float64(c.duration)
		val := math.Sin(2*math.Pi*c.phase) * gain * 0.3
		samples[i][0] = val
		samples[i][1] = val

		c.phase += c.freq / float64(c.rate)
		c.phase -= math.Floor(c.phase)
		c.position++
	}
	return len(samples), true
}

func (c *chime) Err() error { return nil }
