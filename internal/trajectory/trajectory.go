// Package trajectory moves the camera around the planet as a function of
// elapsed time.
package trajectory

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/planet-field/internal/geom"
)

const (
	DefaultDistance  = 40
	DefaultTimeScale = 15000
)

var up = r3.Vec{Y: 1}

// CameraState is where the camera is for one frame.
type CameraState struct {
	Position r3.Vec
	Target   r3.Vec
	// Orbit places the camera: Position = Orbit.Apply((0, 0, Distance)).
	Orbit geom.Euler
	// Rotation is the look-at orientation with Roll added to X.
	Rotation geom.Euler
	Roll     float64
	Wobble   float64
}

// Trajectory carries the accumulated roll between frames. The zero value
// orbits at distance 0; use New.
type Trajectory struct {
	Distance float64
	Roll     float64
	// ResetRoll drops the carried roll so each frame tilts by its own
	// wobble only.
	ResetRoll bool
}

func New(distance float64) *Trajectory {
	return &Trajectory{Distance: distance}
}

// Wobble is the small oscillating tilt for trajectory time t.
func Wobble(t float64) float64 {
	return (math.Sin(t) + math.Sin(2*t+1) + math.Sin(3*t)) / 20
}

// Step computes the camera for trajectory time t and returns the trajectory
// with its roll advanced by the wobble.
func (tr Trajectory) Step(t float64) (Trajectory, CameraState) {
	x := Wobble(t)
	orbit := geom.Euler{X: x, Y: t / 2}
	pos := orbit.Apply(r3.Vec{Z: tr.Distance})

	if tr.ResetRoll {
		tr.Roll = 0
	}
	tr.Roll += x
	rot := geom.LookAt(pos, r3.Vec{}, up)
	rot.X += tr.Roll

	return tr, CameraState{
		Position: pos,
		Orbit:    orbit,
		Rotation: rot,
		Roll:     tr.Roll,
		Wobble:   x,
	}
}

// PositionAt steps the trajectory in place.
func (tr *Trajectory) PositionAt(t float64) CameraState {
	next, cam := tr.Step(t)
	*tr = next
	return cam
}

// Scaled converts wall-clock elapsed time into trajectory time: milliseconds
// divided by scale.
func Scaled(elapsed time.Duration, scale float64) float64 {
	return float64(elapsed) / float64(time.Millisecond) / scale
}
