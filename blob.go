package clipshape

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

// DefaultBlobPoints is the number of anchors of a blob.
const DefaultBlobPoints = 7

// blobWobble is the amplitude, in unit coordinates, of a blob's anchor motion
// over time.
const blobWobble = 0.03

var ErrInsufficientPoints = errors.New("too few points")

// Blob is a smooth organic outline made of cubic Béziers through randomly
// placed anchors. The anchors are chosen when the blob is created and never
// change; Time only moves them along a small circle.
type Blob struct {
	points []Point

	// Time is the animation phase in radians. Anchor i is displaced by
	// 0.03·(sin(Time+i), cos(Time+i)) in unit coordinates.
	Time float64
}

// NewBlob returns a blob with k anchors, using rng to place them. A nil rng
// uses the package-level source. It returns an error wrapping
// [ErrInsufficientPoints] if k is less than 3.
func NewBlob(k int, rng *rand.Rand) (Blob, error) {
	if k <= 2 {
		return Blob{}, fmt.Errorf("blob with %d points: %w", k, ErrInsufficientPoints)
	}
	sigma := 2 * math.Pi / float64(k)
	points := make([]Point, k)
	for i := range points {
		th := uniform(rng, 0.95, 1.05) * float64(i) * sigma
		d := uniform(rng, 0.75, 0.9)
		points[i] = Point(VecFromAngle(th).Mul(d))
	}
	return Blob{points: points}, nil
}

// Points returns a copy of the blob's anchors at time zero, in unit
// coordinates relative to the centre of the rectangle.
func (b Blob) Points() []Point {
	return slices.Clone(b.points)
}

// WithTime returns a blob sharing b's anchors with its phase set to t.
func (b Blob) WithTime(t float64) Blob {
	b.Time = t
	return b
}

// Path implements Shape. The blob is stretched to fill the rectangle.
//
// Only the anchors move with Time. Control points are always derived from the
// anchors at rest, which gives the outline its slightly uneven wobble.
func (b Blob) Path(r Rect) BezPath {
	r = r.Abs()
	center := r.Center()
	w2, h2 := r.Width()/2, r.Height()/2
	remap := func(p Point) Point {
		return Pt(center.X+w2*p.X, center.Y+h2*p.Y)
	}

	n := len(b.points)
	if n == 0 {
		panic("clipshape: Blob must be created with NewBlob")
	}
	anchors := make([]Point, n)
	for i, p := range b.points {
		sin, cos := math.Sincos(b.Time + float64(i))
		anchors[i] = Pt(p.X+blobWobble*sin, p.Y+blobWobble*cos)
	}

	knots := make([]Knot, n)
	for i := range n {
		c1, c2 := b.controls(i)
		knots[i] = Cubic(remap(c1), remap(c2), remap(anchors[i]))
	}
	return Closed(remap(anchors[n-1]), knots)
}

// controls returns the control points of the segment ending at anchor i.
func (b Blob) controls(i int) (Point, Point) {
	n := len(b.points)
	pa := b.points[(i+n-2)%n]
	pb := b.points[(i+n-1)%n]
	pc := b.points[i]
	pd := b.points[(i+1)%n]
	return leavingControl(pa, pb, pc), arrivingControl(pb, pc, pd)
}

// leavingControl returns the control point that steers a curve out of b
// towards c, given b's predecessor a. The tangent at b is perpendicular to
// the average of the vectors from a and c to b, and the arm is half as long as
// the chord from c to b.
//
// If a, b and c are arranged so that the average is the zero vector, the
// result is NaN.
func leavingControl(a, b, c Point) Point {
	m := b.Sub(a).Add(b.Sub(c)).Mul(0.5)
	return b.Translate(m.Turn().Rescale(b.Sub(c), 0.5))
}

// arrivingControl returns the control point that steers a curve from a into
// b, given b's successor c. It mirrors [leavingControl], with the arm as
// long as half the chord from a to b.
func arrivingControl(a, b, c Point) Point {
	m := b.Sub(a).Add(b.Sub(c)).Mul(0.5)
	return b.Translate(m.Turn().Negate().Rescale(b.Sub(a), 0.5))
}
