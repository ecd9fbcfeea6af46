package clipshape

import (
	"math"
)

// An Animation produces the shape to show at time t, in seconds. Animations
// are pure: the same t always yields the same shape.
type Animation interface {
	At(t float64) Shape
}

// AnimationFunc adapts an ordinary function to the [Animation] interface.
type AnimationFunc func(t float64) Shape

// At implements Animation.
func (f AnimationFunc) At(t float64) Shape { return f(t) }

// Shrinkable evaluates Shape in a rectangle whose edges are moved inward by
// Offset·min(width, height)/20. Offset is normally in [0, 1].
type Shrinkable struct {
	Shape  Shape
	Offset float64
}

// Path implements Shape.
func (s Shrinkable) Path(r Rect) BezPath {
	r = r.Abs()
	return s.Shape.Path(r.Inset(s.Offset * r.MinSide() / 20))
}

// Rotated evaluates Shape and rotates the result by Angle radians about the
// centre of the rectangle.
type Rotated struct {
	Shape Shape
	Angle float64
}

// Path implements Shape.
func (s Rotated) Path(r Rect) BezPath {
	return s.Shape.Path(r).Transform(RotateAbout(s.Angle, r.Center()))
}

// Pulse returns an animation that shrinks s with an offset of
// (1+sin(freq·t))/2, so it breathes in and out with period 2π/freq.
func Pulse(s Shape, freq float64) Animation {
	return AnimationFunc(func(t float64) Shape {
		return Shrinkable{Shape: s, Offset: (1 + math.Sin(freq*t)) / 2}
	})
}

// Spin returns an animation that turns s by t/10 radians. Polygons are turned
// by advancing their Rotation; other shapes are wrapped in [Rotated].
func Spin(s Shape) Animation {
	if pg, ok := s.(Polygon); ok {
		return AnimationFunc(func(t float64) Shape {
			spun := pg
			spun.Rotation += t / 10
			return spun
		})
	}
	return AnimationFunc(func(t float64) Shape {
		return Rotated{Shape: s, Angle: t / 10}
	})
}

// Evolve returns an animation that keeps b's anchors and sets its phase to t.
func Evolve(b Blob) Animation {
	return AnimationFunc(func(t float64) Shape {
		return b.WithTime(t)
	})
}

// Animate returns the default animation for s: polygons spin, hearts pulse
// at three times the normal rate, blobs evolve, and everything else pulses.
func Animate(s Shape) Animation {
	switch s := s.(type) {
	case Polygon:
		return Spin(s)
	case Heart:
		return Pulse(s, 3)
	case Blob:
		return Evolve(s)
	default:
		return Pulse(s, 1)
	}
}
