package clipshape

import (
	"iter"
	"math"
)

// DefaultTolerance is the maximum distance between an arc and the cubic
// Béziers approximating it. It is suitable for on-screen clip regions.
const DefaultTolerance = 0.1

// Arc is an elliptical arc. Angles are in radians; in a y-down space a
// positive sweep runs clockwise.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
}

// Start returns the point at which the arc begins.
func (a Arc) Start() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.StartAngle))
}

// End returns the point at which the arc ends.
func (a Arc) End() Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.StartAngle+a.SweepAngle))
}

// PathElements returns a "move to" the start of the arc, followed by the
// cubic Béziers approximating it within tolerance.
func (a Arc) PathElements(tolerance float64) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if !yield(MoveTo(a.Start())) {
			return
		}

		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Subdivisions per full turn, based on the error tolerance.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := math.Ceil(nError * math.Abs(a.SweepAngle) * (1.0 / (2.0 * math.Pi)))
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, angle1+math.Pi/2).Mul(armLen))

			angle0 = angle1
			p0 = p3

			if !yield(CubicTo(
				a.Center.Translate(p1),
				a.Center.Translate(p2),
				a.Center.Translate(p3),
			)) {
				return
			}
		}
	}
}

func sampleEllipse(radii Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{radii.X * cos, radii.Y * sin}
}

func dropFirst[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		first := true
		for el := range seq {
			if first {
				first = false
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}
