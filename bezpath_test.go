package clipshape

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		path BezPath
		want error
	}{
		{"empty", BezPath{}, ErrEmptyContour},
		{"move only", BezPath{MoveTo(Pt(0, 0)), ClosePath()}, ErrEmptyContour},
		{"no move", BezPath{LineTo(Pt(1, 1)), ClosePath()}, ErrOpenContour},
		{"not closed", BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(1, 1))}, ErrOpenContour},
		{"two subpaths", BezPath{
			MoveTo(Pt(0, 0)), LineTo(Pt(1, 1)), ClosePath(),
			MoveTo(Pt(2, 2)), LineTo(Pt(3, 3)), ClosePath(),
		}, ErrMultipleSubpaths},
		{"nan", BezPath{MoveTo(Pt(0, 0)), LineTo(Pt(math.NaN(), 1)), ClosePath()}, ErrNonFinite},
		{"inf", BezPath{MoveTo(Pt(math.Inf(1), 0)), LineTo(Pt(1, 1)), ClosePath()}, ErrNonFinite},
		{"valid", BezPath{MoveTo(Pt(0, 0)), QuadTo(Pt(1, 1), Pt(2, 0)), ClosePath()}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.path.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("unexpected error: %s", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestBezPathBoundingBox(t *testing.T) {
	var p BezPath
	p.MoveTo(Pt(0, 0))
	p.QuadTo(Pt(1, 2), Pt(2, 0))
	p.LineTo(Pt(2, -1))
	p.ClosePath()

	// The control point at (1, 2) lies outside of the curve.
	diff(t, Rect{0, -1, 2, 1}, p.BoundingBox())
	diff(t, Rect{}, BezPath{}.BoundingBox())
}

func TestBezPathAnchors(t *testing.T) {
	p := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0)),
		QuadTo(Pt(2, 0), Pt(2, 1)),
		CubicTo(Pt(2, 2), Pt(1, 2), Pt(0, 2)),
		ClosePath(),
	}
	diff(t, []Point{Pt(1, 0), Pt(2, 1), Pt(0, 2)}, p.Anchors())

	start, ok := p.Start()
	if !ok {
		t.Fatal("path has no start")
	}
	diff(t, Pt(0, 0), start)

	if _, ok := (BezPath{}).Start(); ok {
		t.Error("empty path has a start")
	}
}

func TestBezPathTransform(t *testing.T) {
	p := BezPath{MoveTo(Pt(0, 0)), CubicTo(Pt(1, 0), Pt(1, 1), Pt(0, 1)), ClosePath()}
	want := BezPath{MoveTo(Pt(5, 5)), CubicTo(Pt(6, 5), Pt(6, 6), Pt(5, 6)), ClosePath()}
	diff(t, want, p.Translate(Vec(5, 5)))
	// The receiver is unchanged.
	diff(t, Pt(0, 0), p[0].P0)
}

func TestClosed(t *testing.T) {
	p := Closed(Pt(0, 0), []Knot{
		Line(Pt(1, 0)),
		Quad(Pt(2, 0), Pt(2, 1)),
		Cubic(Pt(2, 2), Pt(1, 2), Pt(0, 0)),
	})
	want := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1, 0)),
		QuadTo(Pt(2, 0), Pt(2, 1)),
		CubicTo(Pt(2, 2), Pt(1, 2), Pt(0, 0)),
		ClosePath(),
	}
	diff(t, want, p)
	if err := p.Validate(); err != nil {
		t.Error(err)
	}
}

func TestSVG(t *testing.T) {
	p := BezPath{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(1.5, 0)),
		QuadTo(Pt(2, 0), Pt(2, 1)),
		CubicTo(Pt(2, 2), Pt(1, 2), Pt(-0.25, 2)),
		ClosePath(),
	}
	want := "M0,0 L1.5,0 Q2,0 2,1 C2,2 1,2 -0.25,2 Z"
	if got := p.SVG(SVGOptions{}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	var sb strings.Builder
	if err := p.WriteSVG(&sb, SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSVGPrecision(t *testing.T) {
	p := BezPath{MoveTo(Pt(1.23456, 2)), LineTo(Pt(10, 0.1)), ClosePath()}
	want := "M1.23,2 L10,0.1 Z"
	if got := p.SVG(SVGOptions{MaxPrecision: 2}); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
