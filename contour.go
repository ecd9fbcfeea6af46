package clipshape

// Knot describes one segment of a closed contour: the anchor it ends at and
// the control points steering it. Kind selects how many control points are
// used; LineToKind uses none, QuadToKind uses C1, CubicToKind uses C1 and C2.
type Knot struct {
	Kind   PathElementKind
	Anchor Point
	C1, C2 Point
}

// Line returns a knot reaching pt with a straight line.
func Line(pt Point) Knot {
	return Knot{Kind: LineToKind, Anchor: pt}
}

// Quad returns a knot reaching pt with a quadratic Bézier controlled by c.
func Quad(c, pt Point) Knot {
	return Knot{Kind: QuadToKind, Anchor: pt, C1: c}
}

// Cubic returns a knot reaching pt with a cubic Bézier controlled by c1 and c2.
func Cubic(c1, c2, pt Point) Knot {
	return Knot{Kind: CubicToKind, Anchor: pt, C1: c1, C2: c2}
}

func (k Knot) element() PathElement {
	switch k.Kind {
	case LineToKind:
		return LineTo(k.Anchor)
	case QuadToKind:
		return QuadTo(k.C1, k.Anchor)
	case CubicToKind:
		return CubicTo(k.C1, k.C2, k.Anchor)
	default:
		panic("invalid knot kind " + k.Kind.String())
	}
}

// Closed builds a closed contour that starts at start, visits the anchor of
// every knot in order, and closes back to start. The result has exactly one
// drawing element per knot.
func Closed(start Point, knots []Knot) BezPath {
	p := make(BezPath, 0, len(knots)+2)
	p.MoveTo(start)
	for _, k := range knots {
		p.Push(k.element())
	}
	p.ClosePath()
	return p
}
