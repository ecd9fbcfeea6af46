package clipshape

import (
	"testing"
)

var testRects = []Rect{
	NewRect(0, 0, 100, 100),
	NewRect(10, 20, 300, 120),
	NewRect(-50, -50, 40, 90),
	// Inverted extents are normalised.
	{X0: 100, Y0: 80, X1: 0, Y1: 0},
}

func testFactory(t *testing.T) Factory {
	t.Helper()
	outline, err := NewOutline(Polygon{Sides: 5}.Path(NewRect(0, 0, 10, 10)))
	if err != nil {
		t.Fatal(err)
	}
	return Factory{Rand: testRand(), Outline: outline}
}

func TestShapesAreClosedContours(t *testing.T) {
	f := testFactory(t)
	for _, k := range Kinds() {
		s, err := f.New(k)
		if err != nil {
			t.Fatalf("%s: %s", k, err)
		}
		for _, r := range testRects {
			p := s.Path(r)
			if err := p.Validate(); err != nil {
				t.Errorf("%s in %v: %s", k, r, err)
				continue
			}
			if got, want := len(p.Anchors()), len(p)-2; got != want {
				t.Errorf("%s in %v: got %d anchors, want %d", k, r, got, want)
			}
		}
	}
}

func TestShapesFitRect(t *testing.T) {
	// Only shapes that stay inside their rectangle; clouds overshoot by
	// construction.
	const epsilon = 1e-6
	shapes := map[string]Shape{
		"circle":    CircleShape{},
		"rectangle": RectangleShape{},
		"capsule":   CapsuleShape{},
		"ellipse":   EllipseShape{},
		"polygon":   Polygon{Sides: 7, Rotation: 0.3},
		"heart":     Heart{},
	}
	for name, s := range shapes {
		for _, r := range testRects {
			r := r.Abs()
			bbox := s.Path(r).BoundingBox()
			if bbox.X0 < r.X0-epsilon || bbox.Y0 < r.Y0-epsilon ||
				bbox.X1 > r.X1+epsilon || bbox.Y1 > r.Y1+epsilon {
				t.Errorf("%s: bounding box %v exceeds %v", name, bbox, r)
			}
		}
	}
}

func TestShapesDegenerateRect(t *testing.T) {
	f := testFactory(t)
	rects := []Rect{
		{5, 5, 5, 5},
		NewRect(0, 0, 100, 0),
	}
	for _, k := range Kinds() {
		s, err := f.New(k)
		if err != nil {
			t.Fatalf("%s: %s", k, err)
		}
		for _, r := range rects {
			if err := s.Path(r).Validate(); err != nil {
				t.Errorf("%s in %v: %s", k, r, err)
			}
		}
	}
}

func TestShapesAreDeterministic(t *testing.T) {
	f := testFactory(t)
	r := NewRect(0, 0, 160, 90)
	for _, k := range Kinds() {
		s, err := f.New(k)
		if err != nil {
			t.Fatalf("%s: %s", k, err)
		}
		diff(t, s.Path(r), s.Path(r))
	}
}

func TestCircleShape(t *testing.T) {
	r := NewRect(0, 0, 200, 100)
	assertRectNear(t, CircleShape{}.Path(r).BoundingBox(), Rect{50, 0, 150, 100}, 1e-9)
}

func TestRectangleShape(t *testing.T) {
	// The corner radius follows the longer side.
	r := NewRect(0, 0, 120, 100)
	want := r.RoundedRect(20).Path()
	diff(t, want, RectangleShape{}.Path(r))
}

func TestCapsuleShape(t *testing.T) {
	const epsilon = 1e-9
	r := NewRect(0, 0, 200, 100)
	p := CapsuleShape{}.Path(r)
	assertRectNear(t, p.BoundingBox(), r, epsilon)
	// The short ends are semicircles of radius 50.
	for _, pt := range p.Anchors() {
		if pt.X < 50 {
			if d := pt.Distance(Pt(50, 50)); !approxEqual(d, 50, epsilon) {
				t.Errorf("anchor %v at distance %v from left centre, want 50", pt, d)
			}
		}
	}
}
