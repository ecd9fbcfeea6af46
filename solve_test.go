package clipshape

import (
	"testing"
)

func TestSolveQuadratic(t *testing.T) {
	tests := []struct {
		c0, c1, c2 float64
		want       []float64
	}{
		{-1, 0, 1, []float64{-1, 1}},
		{6, -5, 1, []float64{2, 3}},
		{1, 0, 1, []float64{}},
		{-4, 4, -1, []float64{2}},
		// linear
		{2, -1, 0, []float64{2}},
		{1, 0, 0, []float64{}},
		{0, 0, 0, []float64{0}},
	}
	for _, tt := range tests {
		roots, n := SolveQuadratic(tt.c0, tt.c1, tt.c2)
		if n != len(tt.want) {
			t.Errorf("SolveQuadratic(%v, %v, %v): got %v, want %v", tt.c0, tt.c1, tt.c2, roots[:n], tt.want)
			continue
		}
		for i, want := range tt.want {
			if !approxEqual(roots[i], want, 1e-12) {
				t.Errorf("SolveQuadratic(%v, %v, %v): got %v, want %v", tt.c0, tt.c1, tt.c2, roots[:n], tt.want)
				break
			}
		}
	}
}
