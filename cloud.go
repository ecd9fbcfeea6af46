package clipshape

import (
	"math"
	"math/rand/v2"
	"slices"
)

// DefaultCloudPoints is the number of lobes of a cloud.
const DefaultCloudPoints = 10

// Cloud is a lumpy closed outline made of quadratic Béziers. Its control
// points are chosen at random when the cloud is created and never change.
type Cloud struct {
	// k+1 points near a circle of radius 0.8, in increasing angle.
	points []Point
}

// NewCloud returns a cloud with k lobes, using rng to place them. Values of k
// below 3 are treated as 3. A nil rng uses the package-level source.
func NewCloud(k int, rng *rand.Rand) Cloud {
	k = max(k, 3)
	sigma := 2 * math.Pi / float64(k)
	points := make([]Point, k+1)
	for i := range points {
		th := uniform(rng, 0.95, 1.05) * float64(i) * sigma
		d := 0.8 * uniform(rng, 0.95, 1)
		points[i] = Point(VecFromAngle(th).Mul(d))
	}
	return Cloud{points: points}
}

// Points returns a copy of the cloud's control points, in unit coordinates
// relative to the centre of the rectangle.
func (c Cloud) Points() []Point {
	return slices.Clone(c.points)
}

// Path implements Shape.
//
// Point i is joined to point i+1 (modulo k) by a quadratic Bézier whose
// control point is point i stretched by 2 horizontally and 1.5 vertically.
// The extra (k+1)th point only steers a final segment that retraces the
// first lobe.
func (c Cloud) Path(r Rect) BezPath {
	r = r.Abs()
	center := r.Center()
	side := r.MinSide() / 2
	remap := func(p Point, sx, sy float64) Point {
		return Pt(center.X+sx*side*p.X, center.Y+sy*side*p.Y)
	}

	if len(c.points) == 0 {
		panic("clipshape: Cloud must be created with NewCloud")
	}
	k := len(c.points) - 1
	knots := make([]Knot, len(c.points))
	for i, pt := range c.points {
		knots[i] = Quad(remap(pt, 2, 1.5), remap(c.points[(i+1)%k], 1, 1))
	}
	return Closed(remap(c.points[0], 1, 1), knots)
}
