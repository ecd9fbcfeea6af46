package clipshape

import (
	"math"
	"testing"
)

func assertRectNear(t *testing.T, got, want Rect, epsilon float64) {
	t.Helper()
	if !approxEqual(got.X0, want.X0, epsilon) || !approxEqual(got.Y0, want.Y0, epsilon) ||
		!approxEqual(got.X1, want.X1, epsilon) || !approxEqual(got.Y1, want.Y1, epsilon) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestEllipseFromRect(t *testing.T) {
	e := NewEllipseFromRect(NewRect(10, 20, 200, 100))
	diff(t, Ellipse{Center: Pt(110, 70), Radii: Vec(100, 50)}, e)
}

func TestEllipsePath(t *testing.T) {
	r := NewRect(10, 20, 200, 100)
	p := NewEllipseFromRect(r).Path()
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	assertRectNear(t, p.BoundingBox(), r, 1e-9)
	if n := len(p.Anchors()); n != 4 {
		t.Errorf("got %d segments, want 4", n)
	}
}

func TestCirclePath(t *testing.T) {
	const epsilon = 1e-9
	p := Circle{Center: Pt(0, 0), Radius: -10}.Path()
	assertRectNear(t, p.BoundingBox(), Rect{-10, -10, 10, 10}, epsilon)
	for _, pt := range p.Anchors() {
		if d := pt.Distance(Pt(0, 0)); !approxEqual(d, 10, epsilon) {
			t.Errorf("anchor %v at distance %v, want 10", pt, d)
		}
	}
}

func TestArcEndpoints(t *testing.T) {
	const epsilon = 1e-9
	a := Arc{Center: Pt(5, 5), Radii: Vec(2, 2), StartAngle: 0, SweepAngle: 3 * math.Pi / 2}
	var p BezPath
	for el := range a.PathElements(DefaultTolerance) {
		p.Push(el)
	}
	start, _ := p.Start()
	assertNear(t, start, a.Start(), epsilon)
	anchors := p.Anchors()
	assertNear(t, anchors[len(anchors)-1], a.End(), epsilon)
	assertNear(t, a.End(), Pt(5, 3), epsilon)
}
