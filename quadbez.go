package clipshape

// QuadBez is a quadratic Bézier segment.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t ∈ [0, 1].
func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	return Point(a.Add(b.Add(c).Mul(t)))
}

// Extrema returns the parameters, in (0, 1), at which the curve's x or y
// derivative is zero.
func (q QuadBez) Extrema() ([2]float64, int) {
	// The derivative of a quadratic is a line, with at most one root per
	// coordinate.
	var out [2]float64
	var outN int
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	dd := d1.Sub(d0)
	if dd.X != 0.0 {
		if t := -d0.X / dd.X; t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	if dd.Y != 0.0 {
		if t := -d0.Y / dd.Y; t > 0.0 && t < 1.0 {
			out[outN] = t
			outN++
		}
	}
	return out, outN
}

// BoundingBox returns the smallest rectangle enclosing the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(q.P0, q.P2)
	ex, n := q.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(q.Eval(t))
	}
	return bbox
}
