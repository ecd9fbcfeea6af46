package clipshape

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a quadratic Bézier using the current location and the two points.
	QuadToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case LineToKind:
		return "LineTo"
	case QuadToKind:
		return "QuadTo"
	case CubicToKind:
		return "CubicTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		return "InvalidPathElement"
	}
}

// PathElement is one drawing command of a [BezPath].
//
// For MoveTo and LineTo, P0 is the target point. For QuadTo, P0 is the
// control point and P1 the end point. For CubicTo, P0 and P1 are the control
// points and P2 the end point.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

// End returns the point at which the element leaves the pen. It returns false
// for ClosePath, whose end depends on the start of the subpath.
func (el PathElement) End() (Point, bool) {
	switch el.Kind {
	case MoveToKind, LineToKind:
		return el.P0, true
	case QuadToKind:
		return el.P1, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	switch el.Kind {
	case MoveToKind:
		return MoveTo(el.P0.Transform(aff))
	case LineToKind:
		return LineTo(el.P0.Transform(aff))
	case QuadToKind:
		return QuadTo(el.P0.Transform(aff), el.P1.Transform(aff))
	case CubicToKind:
		return CubicTo(el.P0.Transform(aff), el.P1.Transform(aff), el.P2.Transform(aff))
	case ClosePathKind:
		return ClosePath()
	default:
		return PathElement{}
	}
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func QuadTo(p0, p1 Point) PathElement {
	return PathElement{Kind: QuadToKind, P0: p0, P1: p1}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a sequence of path elements. Every shape in this package
// produces a BezPath holding exactly one closed contour: a MoveTo, one or
// more drawing elements, and a final ClosePath.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// QuadTo pushes a "quad to" element onto the path.
func (p *BezPath) QuadTo(p1, p2 Point) { p.Push(QuadTo(p1, p2)) }

// CubicTo pushes a "cubic to" element onto the path.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Transform returns a new path with an affine transformation applied to every
// element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make(BezPath, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// Translate returns a new path moved by v.
func (p BezPath) Translate(v Vec2) BezPath {
	return p.Transform(Translate(v))
}

// Anchors returns the points the path passes through exactly: the end point
// of every drawing element, in order. MoveTo and ClosePath contribute no
// anchors.
func (p BezPath) Anchors() []Point {
	out := make([]Point, 0, len(p))
	for _, el := range p {
		if el.Kind == MoveToKind {
			continue
		}
		if pt, ok := el.End(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// Start returns the point of the path's first element, which for a valid
// contour is its initial MoveTo.
func (p BezPath) Start() (Point, bool) {
	if len(p) == 0 {
		return Point{}, false
	}
	return p[0].End()
}

// BoundingBox returns the smallest rectangle enclosing the path. Curves
// contribute their extrema, not their control points. The empty path has a
// zero bounding box.
func (p BezPath) BoundingBox() Rect {
	var bbox Rect
	first := true
	add := func(r Rect) {
		if first {
			bbox = r
			first = false
		} else {
			bbox = bbox.Union(r)
		}
	}
	var start, last Point
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			start, last = el.P0, el.P0
			add(NewRectFromPoints(el.P0, el.P0))
		case LineToKind:
			add(NewRectFromPoints(last, el.P0))
			last = el.P0
		case QuadToKind:
			add(QuadBez{last, el.P0, el.P1}.BoundingBox())
			last = el.P1
		case CubicToKind:
			add(CubicBez{last, el.P0, el.P1, el.P2}.BoundingBox())
			last = el.P2
		case ClosePathKind:
			last = start
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	return bbox
}

func (p BezPath) IsInf() bool {
	return slices.ContainsFunc(p, PathElement.IsInf)
}

func (p BezPath) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}

var (
	ErrEmptyContour     = errors.New("contour has no drawing elements")
	ErrOpenContour      = errors.New("contour is not closed")
	ErrMultipleSubpaths = errors.New("path has more than one subpath")
	ErrNonFinite        = errors.New("path has non-finite coordinates")
)

// Validate reports whether p is a single, well-formed closed contour: a
// MoveTo, at least one drawing element, and a final ClosePath, with no other
// MoveTo or ClosePath in between and only finite coordinates.
func (p BezPath) Validate() error {
	if len(p) == 0 {
		return ErrEmptyContour
	}
	if p[0].Kind != MoveToKind {
		return fmt.Errorf("contour starts with %s: %w", p[0].Kind, ErrOpenContour)
	}
	if p[len(p)-1].Kind != ClosePathKind {
		return ErrOpenContour
	}
	body := p[1 : len(p)-1]
	if len(body) == 0 {
		return ErrEmptyContour
	}
	for i, el := range body {
		switch el.Kind {
		case LineToKind, QuadToKind, CubicToKind:
		case MoveToKind, ClosePathKind:
			return fmt.Errorf("%s at element %d: %w", el.Kind, i+1, ErrMultipleSubpaths)
		default:
			return fmt.Errorf("invalid element kind %d at element %d", el.Kind, i+1)
		}
	}
	if p.IsNaN() || p.IsInf() {
		return ErrNonFinite
	}
	return nil
}
