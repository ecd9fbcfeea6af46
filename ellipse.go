package clipshape

import (
	"math"
)

// quadrantArm is the control arm length, relative to the radius, of a cubic
// Bézier approximating a quarter circle.
//
// See http://spencermortensen.com/articles/bezier-circle/
const quadrantArm = 0.551915024494

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center Point
	Radii  Vec2
}

// NewEllipseFromRect returns the largest ellipse that fits in r.
func NewEllipseFromRect(r Rect) Ellipse {
	return Ellipse{
		Center: r.Center(),
		Radii:  Vec(math.Abs(r.Width())/2, math.Abs(r.Height())/2),
	}
}

// Path approximates the ellipse with four cubic Béziers, one per quadrant,
// starting at the rightmost point and running clockwise in a y-down space.
func (e Ellipse) Path() BezPath {
	x, y := e.Center.Splat()
	rx, ry := e.Radii.Splat()
	ax, ay := quadrantArm*rx, quadrantArm*ry

	var p BezPath
	p.MoveTo(Pt(x+rx, y))
	p.CubicTo(Pt(x+rx, y+ay), Pt(x+ax, y+ry), Pt(x, y+ry))
	p.CubicTo(Pt(x-ax, y+ry), Pt(x-rx, y+ay), Pt(x-rx, y))
	p.CubicTo(Pt(x-rx, y-ay), Pt(x-ax, y-ry), Pt(x, y-ry))
	p.CubicTo(Pt(x+ax, y-ry), Pt(x+rx, y-ay), Pt(x+rx, y))
	p.ClosePath()
	return p
}

type Circle struct {
	Center Point
	Radius float64
}

// Path approximates the circle with four cubic Béziers.
func (c Circle) Path() BezPath {
	r := math.Abs(c.Radius)
	return Ellipse{Center: c.Center, Radii: Vec(r, r)}.Path()
}
