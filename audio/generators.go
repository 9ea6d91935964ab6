package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChimeGenerator is a decaying two-partial bell tone.
type ChimeGenerator struct {
	sr    beep.SampleRate
	pos   int
	base  float64
	upper float64
}

func NewChimeGenerator(sr beep.SampleRate, base, upper float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, base: base, upper: upper}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)
		v := 0.2 * envelope * (math.Sin(2*math.Pi*g.base*t) + 0.5*math.Sin(2*math.Pi*g.upper*t))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}
