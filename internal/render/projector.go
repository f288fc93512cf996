package render

import (
	"github.com/chewxy/math32"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/iburimskiy/planet-field/internal/trajectory"
)

// Projector is a perspective camera lens mapping world points to pixels.
type Projector struct {
	FOV       float64 // vertical, degrees
	Near, Far float64
	Width     int
	Height    int
}

// Aspect returns width / height, or 1 before the first resize.
func (p Projector) Aspect() float32 {
	if p.Width <= 0 || p.Height <= 0 {
		return 1
	}
	return float32(p.Width) / float32(p.Height)
}

// View moves a world point into camera space, where the camera looks down -Z.
func View(cam trajectory.CameraState, v r3.Vec) r3.Vec {
	return cam.Rotation.Invert(r3.Sub(v, cam.Position))
}

// Project maps a camera-space point to screen pixels. ok is false outside
// the near/far range.
func (p Projector) Project(v r3.Vec) (x, y float32, ok bool) {
	depth := -v.Z
	if depth < p.Near || depth > p.Far {
		return 0, 0, false
	}
	f := p.focal()
	nx := f / p.Aspect() * float32(v.X) / float32(depth)
	ny := f * float32(v.Y) / float32(depth)
	x = (nx + 1) / 2 * float32(p.Width)
	y = (1 - ny) / 2 * float32(p.Height)
	return x, y, true
}

// ProjectSegment clips a camera-space segment against the near plane and
// projects it.
func (p Projector) ProjectSegment(a, b r3.Vec) (x0, y0, x1, y1 float32, ok bool) {
	za, zb := -a.Z, -b.Z
	if za < p.Near && zb < p.Near {
		return 0, 0, 0, 0, false
	}
	if za < p.Near {
		a = clipNear(a, b, p.Near)
	} else if zb < p.Near {
		b = clipNear(b, a, p.Near)
	}
	var okA, okB bool
	x0, y0, okA = p.Project(a)
	x1, y1, okB = p.Project(b)
	return x0, y0, x1, y1, okA && okB
}

// clipNear moves the hidden end of a segment onto the near plane.
func clipNear(hidden, visible r3.Vec, near float64) r3.Vec {
	t := (-near - hidden.Z) / (visible.Z - hidden.Z)
	return r3.Add(hidden, r3.Scale(t, r3.Sub(visible, hidden)))
}

// ScreenRadius is the projected pixel radius of a sphere of the given radius
// at depth.
func (p Projector) ScreenRadius(radius, depth float64) float32 {
	if depth <= 0 {
		return 0
	}
	return p.focal() * float32(radius/depth) * float32(p.Height) / 2
}

func (p Projector) focal() float32 {
	half := float32(p.FOV) * math32.Pi / 360
	return 1 / math32.Tan(half)
}
