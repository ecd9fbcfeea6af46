package clipshape

import (
	"math"
)

// Polygon is a regular polygon inscribed in the circle of diameter
// min(width, height) centred in the rectangle.
type Polygon struct {
	// Sides is the number of vertices. Values below 3 are treated as 3.
	Sides int
	// Rotation is the angle, in radians, of the first vertex. Zero places it
	// to the right of the centre.
	Rotation float64
}

// Path implements Shape. Vertex k lies at angle Rotation + 2πk/Sides.
func (pg Polygon) Path(r Rect) BezPath {
	r = r.Abs()
	n := max(pg.Sides, 3)
	center := r.Center()
	radius := r.MinSide() / 2
	at := func(th float64) Point {
		return center.Translate(VecFromAngle(th).Mul(radius))
	}

	knots := make([]Knot, n)
	for k := 1; k <= n; k++ {
		knots[k-1] = Line(at(pg.Rotation + 2*math.Pi*float64(k)/float64(n)))
	}
	return Closed(at(pg.Rotation), knots)
}
