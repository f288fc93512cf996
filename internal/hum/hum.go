// Package hum plays a quiet ambient drone under the scene and reports its
// loudness, which the renderer uses to pulse the bloom.
package hum

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	ringSize   = 8192
	// levelWindow is how many samples Level averages over, about 1/20 s.
	levelWindow = 2048

	detune  = 1.006
	lfoRate = 0.07
)

// Drone is an endless pair of slightly detuned sines with a slow swell.
type Drone struct {
	Frequency float64
	Volume    float64
	Rate      beep.SampleRate

	pos int
}

func NewDrone(frequency, volume float64) *Drone {
	return &Drone{Frequency: frequency, Volume: volume, Rate: SampleRate}
}

func (d *Drone) Stream(samples [][2]float64) (int, bool) {
	rate := float64(d.Rate)
	for i := range samples {
		t := float64(d.pos) / rate
		swell := 0.75 + 0.25*math.Sin(2*math.Pi*lfoRate*t)
		l := math.Sin(2 * math.Pi * d.Frequency * t)
		r := math.Sin(2 * math.Pi * d.Frequency * detune * t)
		samples[i][0] = d.Volume * swell * l
		samples[i][1] = d.Volume * swell * r
		d.pos++
	}
	return len(samples), true
}

func (d *Drone) Err() error { return nil }

// Player owns the speaker output of the drone.
type Player struct {
	tap *Tap
}

// Start initialises the speaker and plays the drone.
func Start(frequency, volume float64) (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initialising speaker: %w", err)
	}
	p := &Player{tap: NewTap(NewDrone(frequency, volume), ringSize)}
	speaker.Play(p.tap)
	return p, nil
}

// Level is the current loudness in [0, 1].
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	return p.tap.Level(levelWindow)
}

// Stop silences the speaker. speaker.Clear takes the speaker lock itself.
func (p *Player) Stop() {
	speaker.Clear()
}
