package field

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Stats summarises a ParameterSet.
type Stats struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	Threshold   float64 `yaml:"threshold"`
	Connections int     `yaml:"connections"`
	MinRadius   float64 `yaml:"min_radius"`
	MaxRadius   float64 `yaml:"max_radius"`
	MeanDegree  float64 `yaml:"mean_degree"`
	Isolated    int     `yaml:"isolated"`
}

func (ps *ParameterSet) Stats() Stats {
	s := Stats{
		Count:       ps.Count,
		Radius:      ps.Radius,
		Threshold:   Threshold(ps.Radius),
		Connections: len(ps.Connections),
		MinRadius:   math.Inf(1),
	}
	for _, p := range ps.Points {
		r := r3.Norm(p)
		s.MinRadius = math.Min(s.MinRadius, r)
		s.MaxRadius = math.Max(s.MaxRadius, r)
	}
	if len(ps.Points) == 0 {
		s.MinRadius = 0
		return s
	}

	degree := make([]int, ps.Count)
	for _, c := range ps.Connections {
		degree[c.A]++
		degree[c.B]++
	}
	for _, d := range degree {
		if d == 0 {
			s.Isolated++
		}
	}
	s.MeanDegree = 2 * float64(len(ps.Connections)) / float64(ps.Count)
	return s
}
