package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/saucer/constants"
)

// effectStreamer builds a finite streamer for e, nil when unknown
func effectStreamer(e Effect) beep.Streamer {
	switch e {
	case EffectFire:
		return tone(constants.FireToneHz, constants.FireDuration)
	case EffectHit:
		return tone(constants.HitToneHz, constants.HitDuration)
	case EffectEscape:
		return NewSweepGenerator(sampleRate, constants.EscapeToneHz, constants.EscapeDuration)
	}
	return nil
}

// tone is a sine at freq for d, silent on generator error
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return beep.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}

// SweepGenerator is a falling tone that fades out, used for escapes
type SweepGenerator struct {
	sr      beep.SampleRate
	freq    float64
	pos     int
	samples int
}

// NewSweepGenerator creates a sweep from freq down to half of it over d
func NewSweepGenerator(sr beep.SampleRate, freq float64, d time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		freq:    freq,
		samples: sr.N(d),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		t := float64(g.pos) / float64(g.sr)

		freq := g.freq * (1 - progress/2)
		sample := 0.2 * (1 - progress) * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
