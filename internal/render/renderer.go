// Package render draws the planet scene with ebiten: a software perspective
// projection of stars and connection lines followed by a bloom pass.
package render

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/planet-field/internal/scene"
	"github.com/iburimskiy/planet-field/internal/trajectory"
)

const (
	lineWidth = 1
	edgeWidth = 1
)

// Renderer draws a scene from a camera and keeps its offscreen buffers in
// step with the window size.
type Renderer struct {
	Lens  Projector
	Bloom *Bloom

	layer *ebiten.Image
	// camera-space corners of the star being drawn
	corners [8]r3.Vec
}

func NewRenderer(lens Projector, bloom *Bloom) *Renderer {
	return &Renderer{Lens: lens, Bloom: bloom}
}

// Resize updates the aspect ratio and the offscreen buffers. Empty sizes are
// ignored.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == r.Lens.Width && height == r.Lens.Height && r.layer != nil {
		return
	}
	r.Lens.Width, r.Lens.Height = width, height
	if r.layer != nil {
		r.layer.Deallocate()
	}
	r.layer = ebiten.NewImage(width, height)
	if r.Bloom != nil {
		r.Bloom.Resize(width, height)
	}
}

// SetPulse sets the transient bloom boost.
func (r *Renderer) SetPulse(v float64) {
	if r.Bloom != nil {
		r.Bloom.Pulse = v
	}
}

// Render draws s seen from cam onto dst.
func (r *Renderer) Render(dst *ebiten.Image, s *scene.Scene, cam trajectory.CameraState) {
	if r.layer == nil {
		r.Resize(dst.Bounds().Dx(), dst.Bounds().Dy())
		if r.layer == nil {
			return
		}
	}

	dst.Fill(s.Palette.Background)
	r.layer.Clear()

	r.drawSpheres(s, cam)
	r.drawLines(s, cam)
	r.drawStars(s, cam)

	dst.DrawImage(r.layer, nil)
	if r.Bloom != nil {
		r.Bloom.Apply(dst, r.layer)
	}
}

func (r *Renderer) drawSpheres(s *scene.Scene, cam trajectory.CameraState) {
	if len(s.Spheres) == 0 {
		return
	}
	type disc struct {
		s     scene.Sphere
		depth float64
		v     r3.Vec
	}
	discs := make([]disc, 0, len(s.Spheres))
	for _, sp := range s.Spheres {
		v := View(cam, sp.Center)
		discs = append(discs, disc{s: sp, depth: -v.Z, v: v})
	}
	// Far to near.
	sort.Slice(discs, func(i, j int) bool { return discs[i].depth > discs[j].depth })
	for _, d := range discs {
		x, y, ok := r.Lens.Project(d.v)
		if !ok {
			continue
		}
		vector.DrawFilledCircle(r.layer, x, y, r.Lens.ScreenRadius(d.s.Radius, d.depth), d.s.Color, true)
	}
}

func (r *Renderer) drawLines(s *scene.Scene, cam trajectory.CameraState) {
	for _, seg := range s.Lines {
		x0, y0, x1, y1, ok := r.Lens.ProjectSegment(View(cam, seg.A), View(cam, seg.B))
		if !ok {
			continue
		}
		vector.StrokeLine(r.layer, x0, y0, x1, y1, lineWidth, s.Palette.Lines, true)
	}
}

func (r *Renderer) drawStars(s *scene.Scene, cam trajectory.CameraState) {
	for i := range s.Stars {
		star := &s.Stars[i]
		for j, c := range star.Corners {
			r.corners[j] = View(cam, c)
		}
		for _, e := range scene.CubeEdges {
			x0, y0, x1, y1, ok := r.Lens.ProjectSegment(r.corners[e[0]], r.corners[e[1]])
			if !ok {
				continue
			}
			vector.StrokeLine(r.layer, x0, y0, x1, y1, edgeWidth, s.Palette.Stars, true)
		}
	}
}
