package clipshape

import (
	"math/rand/v2"
)

// A Shape produces a closed boundary fitted to a rectangle. Shapes are
// immutable: calling Path twice with the same rectangle yields the same
// boundary, and it is safe to call Path concurrently.
//
// Built-in shapes, combinators such as [Shrinkable], and imported outlines
// all implement Shape and are interchangeable.
type Shape interface {
	Path(r Rect) BezPath
}

// ShapeFunc adapts an ordinary function to the [Shape] interface.
type ShapeFunc func(r Rect) BezPath

// Path implements Shape.
func (f ShapeFunc) Path(r Rect) BezPath { return f(r) }

// CircleShape is the largest circle centred in the rectangle.
type CircleShape struct{}

// Path implements Shape.
func (CircleShape) Path(r Rect) BezPath {
	r = r.Abs()
	return Circle{Center: r.Center(), Radius: r.MinSide() / 2}.Path()
}

// EllipseShape is the ellipse inscribed in the rectangle.
type EllipseShape struct{}

// Path implements Shape.
func (EllipseShape) Path(r Rect) BezPath {
	return NewEllipseFromRect(r).Path()
}

// CapsuleShape is the rectangle with fully rounded short ends.
type CapsuleShape struct{}

// Path implements Shape.
func (CapsuleShape) Path(r Rect) BezPath {
	r = r.Abs()
	return r.RoundedRect(r.MinSide() / 2).Path()
}

// RectangleShape is the rectangle with its corners rounded by a sixth of its
// longer side.
type RectangleShape struct{}

// Path implements Shape.
func (RectangleShape) Path(r Rect) BezPath {
	r = r.Abs()
	return r.RoundedRect(r.MaxSide() / 6).Path()
}

// uniform returns a number in [lo, hi). A nil rng uses the package-level
// source of math/rand/v2.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	var f float64
	if rng == nil {
		f = rand.Float64()
	} else {
		f = rng.Float64()
	}
	return lo + (hi-lo)*f
}
