package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	AxisX = r3.Vec{X: 1}
	AxisY = r3.Vec{Y: 1}
	AxisZ = r3.Vec{Z: 1}
)

// Euler is an orientation given as three angles in radians, applied in the
// fixed order X, Y, Z: the rotation matrix is Rx·Ry·Rz, so a vector is
// turned about Z first and about X last.
type Euler struct {
	X, Y, Z float64
}

// Apply rotates v by the orientation.
func (e Euler) Apply(v r3.Vec) r3.Vec {
	v = r3.NewRotation(e.Z, AxisZ).Rotate(v)
	v = r3.NewRotation(e.Y, AxisY).Rotate(v)
	return r3.NewRotation(e.X, AxisX).Rotate(v)
}

// Invert undoes Apply.
func (e Euler) Invert(v r3.Vec) r3.Vec {
	v = r3.NewRotation(-e.X, AxisX).Rotate(v)
	v = r3.NewRotation(-e.Y, AxisY).Rotate(v)
	return r3.NewRotation(-e.Z, AxisZ).Rotate(v)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b r3.Vec) float64 {
	return r3.Norm(r3.Sub(a, b))
}

// LookAt returns the orientation of a camera at eye whose -Z axis points at
// target, with up used to fix the roll.
func LookAt(eye, target, up r3.Vec) Euler {
	z := r3.Sub(eye, target)
	if r3.Norm2(z) == 0 {
		z.Z = 1
	}
	z = r3.Unit(z)

	x := r3.Cross(up, z)
	if r3.Norm2(x) == 0 {
		// forward is parallel to up
		if math.Abs(up.Z) == 1 {
			z.X += 1e-4
		} else {
			z.Z += 1e-4
		}
		z = r3.Unit(z)
		x = r3.Cross(up, z)
	}
	x = r3.Unit(x)
	y := r3.Cross(z, x)

	// Columns of the rotation matrix are x, y, z.
	return fromBasis(x, y, z)
}

// fromBasis decomposes the rotation matrix with columns x, y, z into XYZ
// angles.
func fromBasis(x, y, z r3.Vec) Euler {
	m11, m12, m13 := x.X, y.X, z.X
	m22, m23 := y.Y, z.Y
	m32, m33 := y.Z, z.Z

	var e Euler
	e.Y = math.Asin(clamp(m13, -1, 1))
	if math.Abs(m13) < 0.9999999 {
		e.X = math.Atan2(-m23, m33)
		e.Z = math.Atan2(-m12, m11)
	} else {
		e.X = math.Atan2(m32, m22)
		e.Z = 0
	}
	return e
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
