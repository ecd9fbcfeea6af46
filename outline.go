package clipshape

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

var ErrDegenerateOutline = errors.New("outline has zero size")

// Outline is an externally supplied contour, such as one imported from a
// vector file. It is scaled uniformly to fit the rectangle and centred in it.
type Outline struct {
	path   BezPath
	bounds Rect
}

var _ Shape = (*Outline)(nil)

// NewOutline returns an outline for p. It fails if p is not a single closed
// contour (see [BezPath.Validate]) or if its bounding box is a single point.
// The outline keeps its own copy of p.
func NewOutline(p BezPath) (*Outline, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid outline: %w", err)
	}
	bounds := p.BoundingBox()
	if bounds.Width() == 0 && bounds.Height() == 0 {
		return nil, ErrDegenerateOutline
	}
	return &Outline{path: slices.Clone(p), bounds: bounds}, nil
}

// Bounds returns the bounding box of the outline as it was supplied.
func (o *Outline) Bounds() Rect {
	return o.bounds
}

// Path implements Shape.
func (o *Outline) Path(r Rect) BezPath {
	r = r.Abs()
	ratio := func(want, have float64) float64 {
		if have == 0 {
			return math.Inf(1)
		}
		return want / have
	}
	s := min(ratio(r.Width(), o.bounds.Width()), ratio(r.Height(), o.bounds.Height()))
	aff := Translate(Vec2(o.bounds.Center()).Negate()).
		ThenScale(s, s).
		ThenTranslate(Vec2(r.Center()))
	return o.path.Transform(aff)
}
