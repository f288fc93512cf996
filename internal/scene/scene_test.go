package scene

import (
	"image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/planet-field/internal/field"
	"github.com/iburimskiy/planet-field/internal/geom"
)

func TestHex(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 0x41, G: 0x29, B: 0x4e, A: 0xff}, Hex(0x41294e))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, DefaultPalette.Lines)
}

func TestNewCube_Corners(t *testing.T) {
	pos := r3.Vec{X: 10, Y: -2, Z: 4}
	c := NewCube(pos, geom.Euler{X: 0.4, Y: 1.1, Z: -0.7}, 2)

	var centre r3.Vec
	for _, p := range c.Corners {
		centre = r3.Add(centre, p)
		// Half the body diagonal of a cube with edge 0.2.
		assert.InDelta(t, 0.1*math.Sqrt(3), geom.Distance(pos, p), 1e-12)
	}
	centre = r3.Scale(1.0/8, centre)
	assert.InDelta(t, pos.X, centre.X, 1e-12)
	assert.InDelta(t, pos.Y, centre.Y, 1e-12)
	assert.InDelta(t, pos.Z, centre.Z, 1e-12)

	for _, e := range CubeEdges {
		assert.InDelta(t, 0.2, geom.Distance(c.Corners[e[0]], c.Corners[e[1]]), 1e-12, "edge %v", e)
	}
}

func TestBuilder_Assemble(t *testing.T) {
	ps, err := field.NewGenerator(rand.New(rand.NewSource(7))).Generate(200, 30)
	require.NoError(t, err)

	s := Builder{Palette: DefaultPalette}.Assemble(ps)
	require.Len(t, s.Stars, ps.Count)
	require.Len(t, s.Lines, len(ps.Connections))
	assert.Empty(t, s.Spheres)
	assert.Equal(t, DefaultPalette, s.Palette)

	for i, star := range s.Stars {
		assert.Equal(t, ps.Points[i], star.Position)
		assert.Equal(t, ps.Rotations[i], star.Rotation)
	}
	for i, c := range ps.Connections {
		assert.Equal(t, ps.Points[c.A], s.Lines[i].A)
		assert.Equal(t, ps.Points[c.B], s.Lines[i].B)
	}
}

func TestBuilder_Planet(t *testing.T) {
	ps, err := field.NewGenerator(rand.New(rand.NewSource(1))).Generate(3, 30)
	require.NoError(t, err)

	s := Builder{Palette: DefaultPalette, ShowPlanet: true}.Assemble(ps)
	require.Len(t, s.Spheres, 3)
	assert.Equal(t, 12.0, s.Spheres[0].Radius)
	assert.Equal(t, DefaultPalette.Planet, s.Spheres[0].Color)
	assert.Equal(t, r3.Vec{X: 36}, s.Spheres[1].Center)
	assert.Equal(t, r3.Vec{X: -36}, s.Spheres[2].Center)
	assert.Equal(t, 3.0, s.Spheres[2].Radius)
}
