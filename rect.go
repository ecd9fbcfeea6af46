package clipshape

import (
	"math"
)

// Rect is an axis-aligned rectangle. Shapes are fitted to a Rect supplied by
// the caller at evaluation time.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect returns the rectangle with origin (x, y), width w and height h.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// MinSide returns the smaller of width and height.
func (r Rect) MinSide() float64 {
	return min(r.Width(), r.Height())
}

// MaxSide returns the larger of width and height.
func (r Rect) MaxSide() float64 {
	return max(r.Width(), r.Height())
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inset moves every edge of the rectangle inward by d. Negative values of d
// grow the rectangle. Insetting by more than half a side produces a
// rectangle with negative width or height.
func (r Rect) Inset(d float64) Rect {
	return Rect{
		X0: r.X0 + d,
		Y0: r.Y0 + d,
		X1: r.X1 - d,
		Y1: r.Y1 - d,
	}
}

func (r Rect) Translate(v Vec2) Rect {
	return Rect{
		X0: r.X0 + v.X,
		Y0: r.Y0 + v.Y,
		X1: r.X1 + v.X,
		Y1: r.Y1 + v.Y,
	}
}

func (r Rect) IsInf() bool {
	return math.IsInf(r.X0, 0) ||
		math.IsInf(r.X1, 0) ||
		math.IsInf(r.Y0, 0) ||
		math.IsInf(r.Y1, 0)
}

func (r Rect) IsNaN() bool {
	return math.IsNaN(r.X0) ||
		math.IsNaN(r.X1) ||
		math.IsNaN(r.Y0) ||
		math.IsNaN(r.Y1)
}

// Path returns the outline of the rectangle, clockwise in a y-down space.
func (r Rect) Path() BezPath {
	return BezPath{
		MoveTo(Pt(r.X0, r.Y0)),
		LineTo(Pt(r.X1, r.Y0)),
		LineTo(Pt(r.X1, r.Y1)),
		LineTo(Pt(r.X0, r.Y1)),
		ClosePath(),
	}
}

// RoundedRect creates a new [RoundedRect] from this rectangle and the provided
// corner radius. The radius is clamped to half the shortest side.
func (r Rect) RoundedRect(radius float64) RoundedRect {
	r = r.Abs()
	return RoundedRect{
		Rect:   r,
		Radius: min(math.Abs(radius), r.MinSide()/2),
	}
}

// RoundedRect is a rectangle whose four corners are replaced by quarter
// circles of the same radius.
type RoundedRect struct {
	Rect
	Radius float64
}

// Path returns the outline of the rounded rectangle. It starts at the bottom
// of the top left corner and runs clockwise in a y-down space.
func (rr RoundedRect) Path() BezPath {
	r := rr.Radius
	x0, y0, x1, y1 := rr.X0, rr.Y0, rr.X1, rr.Y1
	corner := func(p *BezPath, quadrant int, center Point) {
		a := Arc{
			Center:     center,
			Radii:      Vec(r, r),
			StartAngle: math.Pi / 2 * float64(quadrant),
			SweepAngle: math.Pi / 2,
		}
		for el := range dropFirst(a.PathElements(DefaultTolerance)) {
			p.Push(el)
		}
	}

	var p BezPath
	p.MoveTo(Pt(x0, y0+r))
	corner(&p, 2, Pt(x0+r, y0+r))
	p.LineTo(Pt(x1-r, y0))
	corner(&p, 3, Pt(x1-r, y0+r))
	p.LineTo(Pt(x1, y1-r))
	corner(&p, 0, Pt(x1-r, y1-r))
	p.LineTo(Pt(x0+r, y1))
	corner(&p, 1, Pt(x0+r, y1-r))
	p.ClosePath()
	return p
}
