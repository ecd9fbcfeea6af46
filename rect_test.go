package clipshape

import (
	"testing"
)

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 200, 100)
	diff(t, Rect{5, 5, 195, 95}, r.Inset(5))
	diff(t, Rect{-5, -5, 205, 105}, r.Inset(-5))
	diff(t, r, r.Inset(0))
}

func TestRectAbs(t *testing.T) {
	diff(t, Rect{0, 0, 10, 20}, Rect{10, 20, 0, 0}.Abs())
	diff(t, Rect{1, 2, 3, 4}, NewRectFromPoints(Pt(3, 2), Pt(1, 4)))
}

func TestRectSides(t *testing.T) {
	r := NewRect(10, 20, 200, 100)
	if got := r.MinSide(); got != 100 {
		t.Errorf("got MinSide %v, want 100", got)
	}
	if got := r.MaxSide(); got != 200 {
		t.Errorf("got MaxSide %v, want 200", got)
	}
	diff(t, Pt(110, 70), r.Center())
}

func TestRoundedRectClamp(t *testing.T) {
	r := NewRect(0, 0, 100, 40)
	if got := r.RoundedRect(100).Radius; got != 20 {
		t.Errorf("got radius %v, want 20", got)
	}
	if got := r.RoundedRect(5).Radius; got != 5 {
		t.Errorf("got radius %v, want 5", got)
	}
}

func TestRoundedRectPath(t *testing.T) {
	const epsilon = 1e-9
	for _, radius := range []float64{0, 5, 20} {
		r := NewRect(10, 10, 100, 40)
		p := r.RoundedRect(radius).Path()
		if err := p.Validate(); err != nil {
			t.Fatalf("radius %v: %s", radius, err)
		}
		bbox := p.BoundingBox()
		if !approxEqual(bbox.X0, r.X0, epsilon) || !approxEqual(bbox.Y0, r.Y0, epsilon) ||
			!approxEqual(bbox.X1, r.X1, epsilon) || !approxEqual(bbox.Y1, r.Y1, epsilon) {
			t.Errorf("radius %v: got bounding box %v, want %v", radius, bbox, r)
		}
		// The path ends where it started.
		start, _ := p.Start()
		anchors := p.Anchors()
		assertNear(t, anchors[len(anchors)-1], start, epsilon)
	}
}
