// Package vector2 provides 2D point/vector arithmetic shared by every
// downstream stage of the depixelization pipeline: raster coordinates,
// grid-box node offsets, and Bézier control points are all Vectors.
//
// Vector doubles as both a position and a displacement, added,
// subtracted, and scaled interchangeably. Keeping one type avoids a
// Point/Vec split that this domain has no use for.
package vector2

import (
	"errors"
	"math"
)

// ErrDivideByZero is returned by Div when the scalar divisor is zero.
var ErrDivideByZero = errors.New("vector2: division by zero")

// Vector is a 2D coordinate or displacement, x rightward and y downward
// (screen/raster convention, not math convention).
type Vector struct {
	X, Y float64
}

// New constructs a Vector from its components.
func New(x, y float64) Vector { return Vector{X: x, Y: y} }

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector { return Vector{X: v.X + w.X, Y: v.Y + w.Y} }

// Sub returns the component-wise difference v - w.
func (v Vector) Sub(w Vector) Vector { return Vector{X: v.X - w.X, Y: v.Y - w.Y} }

// Mul returns v scaled by s.
func (v Vector) Mul(s float64) Vector { return Vector{X: v.X * s, Y: v.Y * s} }

// Div returns v divided by s. Returns ErrDivideByZero if s == 0.
func (v Vector) Div(s float64) (Vector, error) {
	if s == 0 {
		return Vector{}, ErrDivideByZero
	}
	return Vector{X: v.X / s, Y: v.Y / s}, nil
}

// Midpoint returns the point halfway between v and w.
func (v Vector) Midpoint(w Vector) Vector {
	return Vector{X: (v.X + w.X) / 2, Y: (v.Y + w.Y) / 2}
}

// Length returns the Euclidean norm of v.
func (v Vector) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Equal reports whether v and w are exactly equal component-wise.
func (v Vector) Equal(w Vector) bool { return v.X == w.X && v.Y == w.Y }

// Angle returns the direction of v as measured by Atan2, with y inverted
// so that "up" (negative Y in raster coordinates) is a positive angle,
// then normalized into [0, 2π). Used for T-junction gap computation,
// where a direct Atan2 call avoids ad hoc quadrant comparisons.
func (v Vector) Angle() float64 {
	a := math.Atan2(-v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// AngularGap returns the size of the shorter arc between two angles in
// [0, 2π), i.e. min(|a-b|, 2π-|a-b|).
func AngularGap(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// LineIntersection returns the intersection of the infinite line through
// p1,p2 with the infinite line through p3,p4. ok is false when the lines
// are parallel (or nearly so); callers fall back to a named endpoint in
// that case.
func LineIntersection(p1, p2, p3, p4 Vector) (point Vector, ok bool) {
	d1 := p2.Sub(p1)
	d2 := p4.Sub(p3)
	denom := d1.X*d2.Y - d1.Y*d2.X
	if math.Abs(denom) < 1e-9 {
		return Vector{}, false
	}
	t := ((p3.X-p1.X)*d2.Y - (p3.Y-p1.Y)*d2.X) / denom
	return p1.Add(d1.Mul(t)), true
}
