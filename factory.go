package clipshape

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// DefaultPolygonSides is the number of sides of the polygon kind.
const DefaultPolygonSides = 6

var ErrNoOutline = errors.New("no outline has been imported")

// Factory turns a [Kind] into a shape or an animation. The zero Factory uses
// the defaults documented on each field.
type Factory struct {
	// PolygonSides is the number of sides of KindPolygon. Zero means
	// DefaultPolygonSides.
	PolygonSides int
	// CloudPoints is the number of lobes of KindCloud. Zero means
	// DefaultCloudPoints.
	CloudPoints int
	// BlobPoints is the number of anchors of KindBlob. Zero means
	// DefaultBlobPoints; other values below 3 make New fail.
	BlobPoints int
	// Outline is the shape used for KindExternal, typically an [*Outline]
	// produced by an importer.
	Outline Shape
	// Rand places the control points of clouds and blobs. Nil uses the
	// package-level source of math/rand/v2.
	Rand *rand.Rand
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// New constructs a fresh shape of kind k. Clouds and blobs get new random
// control points on every call.
func (f Factory) New(k Kind) (Shape, error) {
	switch k {
	case KindCircle:
		return CircleShape{}, nil
	case KindRectangle:
		return RectangleShape{}, nil
	case KindCapsule:
		return CapsuleShape{}, nil
	case KindEllipse:
		return EllipseShape{}, nil
	case KindPolygon:
		return Polygon{Sides: orDefault(f.PolygonSides, DefaultPolygonSides)}, nil
	case KindHeart:
		return Heart{}, nil
	case KindCloud:
		return NewCloud(orDefault(f.CloudPoints, DefaultCloudPoints), f.Rand), nil
	case KindBlob:
		b, err := NewBlob(orDefault(f.BlobPoints, DefaultBlobPoints), f.Rand)
		if err != nil {
			return nil, err
		}
		return b, nil
	case KindExternal:
		if f.Outline == nil {
			return nil, ErrNoOutline
		}
		return f.Outline, nil
	default:
		return nil, fmt.Errorf("%w %s", ErrUnknownKind, k)
	}
}

// Animate constructs a fresh shape of kind k, like [Factory.New], and
// returns its default animation (see [Animate]).
func (f Factory) Animate(k Kind) (Animation, error) {
	s, err := f.New(k)
	if err != nil {
		return nil, err
	}
	return Animate(s), nil
}
