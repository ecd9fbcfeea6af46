package clipshape

import (
	"math"
)

// Heart is a heart built from two semicircular lobes and two straight edges
// meeting at the bottom point. Its size follows min(width, height) and its
// bounding box is centred in the rectangle.
type Heart struct{}

// Path implements Shape.
func (Heart) Path(r Rect) BezPath {
	r = r.Abs()
	l := r.MinSide()
	radius := math.Hypot(0.4*l, 0.3*l) / 2

	left := Arc{
		Center:     Pt(0.3*l, 0.35*l),
		Radii:      Vec(radius, radius),
		StartAngle: 3 * math.Pi / 4,
		SweepAngle: math.Pi,
	}
	right := Arc{
		Center:     Pt(0.7*l, 0.35*l),
		Radii:      Vec(radius, radius),
		StartAngle: 5 * math.Pi / 4,
		SweepAngle: math.Pi,
	}

	var p BezPath
	for el := range left.PathElements(DefaultTolerance) {
		p.Push(el)
	}
	p.LineTo(Pt(0.5*l, 0.2*l))
	p.LineTo(right.Start())
	for el := range dropFirst(right.PathElements(DefaultTolerance)) {
		p.Push(el)
	}
	p.LineTo(Pt(0.5*l, 0.95*l))
	p.ClosePath()

	// The construction is not centred on its own bounding box; shift it so
	// that it is.
	return p.Translate(r.Center().Sub(p.BoundingBox().Center()))
}
