package clipshape

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Errorf("got %s, expected %s", got, want)
	}
}

func approxEqual(x, y, epsilon float64) bool {
	return math.Abs(x-y) <= epsilon
}

// testRand returns a deterministic source so that random control points are
// reproducible across runs.
func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}
