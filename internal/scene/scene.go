// Package scene builds the drawable objects of the planet from a generated
// parameter set.
package scene

import (
	"image/color"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/planet-field/internal/field"
	"github.com/iburimskiy/planet-field/internal/geom"
)

const (
	// CubeSize is the edge length of a star at scale 1.
	CubeSize = 0.1

	planetFactor    = 0.4
	satelliteFactor = 0.1
	satelliteOrbit  = 1.2
)

// Palette holds the scene colours.
type Palette struct {
	Background color.RGBA
	Planet     color.RGBA
	Satellite  color.RGBA
	Stars      color.RGBA
	Lines      color.RGBA
}

var DefaultPalette = Palette{
	Background: Hex(0x41294e),
	Planet:     Hex(0xbc6c25),
	Satellite:  Hex(0x282728),
	Stars:      Hex(0xfefae0),
	Lines:      Hex(0xffffff),
}

// Hex converts 0xRRGGBB to an opaque colour.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// CubeEdges lists the corner pairs of the 12 cube edges, indexing Cube.Corners.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Cube is one star.
type Cube struct {
	Position r3.Vec
	Rotation geom.Euler
	Scale    float64
	// Corners are in world space; bit 0 of the index picks +x, bit 1 +y,
	// bit 2 +z.
	Corners [8]r3.Vec
}

func NewCube(pos r3.Vec, rot geom.Euler, scale float64) Cube {
	c := Cube{Position: pos, Rotation: rot, Scale: scale}
	h := CubeSize * scale / 2
	for i := range c.Corners {
		local := r3.Vec{X: -h, Y: -h, Z: -h}
		if i&1 != 0 {
			local.X = h
		}
		if i&2 != 0 {
			local.Y = h
		}
		if i&4 != 0 {
			local.Z = h
		}
		c.Corners[i] = r3.Add(pos, rot.Apply(local))
	}
	return c
}

// Segment is one connection line.
type Segment struct {
	A, B r3.Vec
}

// Sphere is a planet or satellite.
type Sphere struct {
	Center r3.Vec
	Radius float64
	Color  color.RGBA
}

// Scene is everything the renderer draws.
type Scene struct {
	Stars   []Cube
	Lines   []Segment
	Spheres []Sphere
	Palette Palette
}

// Assembler turns generated parameters into a scene.
type Assembler interface {
	Assemble(ps *field.ParameterSet) *Scene
}

// Builder is the default Assembler.
type Builder struct {
	Palette Palette
	// ShowPlanet adds the central planet and its two satellites.
	ShowPlanet bool
}

func (b Builder) Assemble(ps *field.ParameterSet) *Scene {
	s := &Scene{
		Stars:   make([]Cube, 0, ps.Count),
		Lines:   make([]Segment, 0, len(ps.Connections)),
		Palette: b.Palette,
	}
	for i := 0; i < ps.Count; i++ {
		s.Stars = append(s.Stars, NewCube(ps.Points[i], ps.Rotations[i], ps.Scales[i]))
	}
	for _, c := range ps.Connections {
		s.Lines = append(s.Lines, Segment{A: ps.Points[c.A], B: ps.Points[c.B]})
	}
	if b.ShowPlanet {
		r := ps.Radius
		s.Spheres = []Sphere{
			{Radius: planetFactor * r, Color: b.Palette.Planet},
			{Center: r3.Vec{X: satelliteOrbit * r}, Radius: satelliteFactor * r, Color: b.Palette.Satellite},
			{Center: r3.Vec{X: -satelliteOrbit * r}, Radius: satelliteFactor * r, Color: b.Palette.Satellite},
		}
	}
	return s
}
