package clipshape

// CubicBez is a cubic Bézier segment.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	v := Vec2(c.P0).Mul(mt * mt * mt).
		Add(Vec2(c.P1).Mul(3 * mt * mt * t)).
		Add(Vec2(c.P2).Mul(3 * mt * t * t)).
		Add(Vec2(c.P3).Mul(t * t * t))
	return Point(v)
}

// Extrema returns the parameters, in (0, 1), at which the curve's x or y
// derivative is zero. There are at most two per coordinate.
func (c CubicBez) Extrema() ([4]float64, int) {
	var out [4]float64
	var outN int
	oneCoord := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, n := SolveQuadratic(d0, b, a)
		for _, t := range roots[:n] {
			if t > 0.0 && t < 1.0 {
				out[outN] = t
				outN++
			}
		}
	}

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	oneCoord(d0.X, d1.X, d2.X)
	oneCoord(d0.Y, d1.Y, d2.Y)
	return out, outN
}

// BoundingBox returns the smallest rectangle enclosing the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRectFromPoints(c.P0, c.P3)
	ex, n := c.Extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}
