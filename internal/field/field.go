// Package field samples the star positions of the planet and links the ones
// that sit close to each other.
package field

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/planet-field/internal/geom"
)

// ErrInvalidArgument is returned for a non-positive count or radius.
var ErrInvalidArgument = errors.New("invalid argument")

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Connection links two points by index, A < B.
type Connection struct {
	A int `yaml:"a"`
	B int `yaml:"b"`
}

// ParameterSet is the generator output. It is built once and not mutated.
type ParameterSet struct {
	Count       int
	Radius      float64
	Points      []r3.Vec
	Rotations   []geom.Euler
	Scales      []float64
	Connections []Connection
}

// Generator places points on a spherical shell.
type Generator struct {
	src Source
}

func NewGenerator(src Source) *Generator {
	return &Generator{src: src}
}

// Generate samples count points whose distance from the origin lies in
// [2/3·radius, radius] and connects every pair closer than radius/6.
func (g *Generator) Generate(count int, radius float64) (*ParameterSet, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrInvalidArgument, count)
	}
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: radius must be a positive finite number, got %v", ErrInvalidArgument, radius)
	}

	ps := &ParameterSet{
		Count:     count,
		Radius:    radius,
		Points:    make([]r3.Vec, count),
		Rotations: make([]geom.Euler, count),
		Scales:    make([]float64, count),
	}
	for i := 0; i < count; i++ {
		e := geom.Euler{
			X: 2 * math.Pi * g.src.Float64(),
			Y: 2 * math.Pi * g.src.Float64(),
			Z: 2 * math.Pi * g.src.Float64(),
		}
		r := radius - g.src.Float64()*radius/3

		ps.Points[i] = e.Apply(r3.Vec{X: r})
		ps.Rotations[i] = e
		ps.Scales[i] = 1
	}
	ps.Connections = Connect(ps.Points, Threshold(radius))
	return ps, nil
}

// Threshold is the link distance for a shell of the given radius.
func Threshold(radius float64) float64 { return radius / 6 }

// Connect returns every pair i < j with distance below threshold. Self-pairs
// are never emitted.
func Connect(points []r3.Vec, threshold float64) []Connection {
	var out []Connection
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if geom.Distance(points[i], points[j]) < threshold {
				out = append(out, Connection{A: i, B: j})
			}
		}
	}
	return out
}
