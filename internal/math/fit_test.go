package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {

	type test struct {
		x      []float64
		y      []float64
		degree int
		cc     []float64
		err    bool
	}

	tests := map[string]test{
		"linear": {
			x:      Series(1, 5),
			y:      []float64{1, 3, 5, 7, 9},
			degree: 1,
			cc:     []float64{1, 2},
		},
		"flat": {
			x:      Series(1, 4),
			y:      []float64{5, 5, 5, 5},
			degree: 1,
			cc:     []float64{5, 0},
		},
		"quadratic": {
			x:      Series(1, 5),
			y:      []float64{0, 1, 4, 9, 16},
			degree: 2,
			cc:     []float64{0, 0, 1},
		},
		"inconsistent": {
			x:      Series(1, 3),
			y:      []float64{1, 2},
			degree: 1,
			err:    true,
		},
		"underdetermined": {
			x:      Series(1, 2),
			y:      []float64{1, 2},
			degree: 2,
			err:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cc, err := Fit(tt.x, tt.y, tt.degree)
			if tt.err {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, len(tt.cc), len(cc))
			for i := range tt.cc {
				assert.True(t, math.Abs(tt.cc[i]-cc[i]) < 1e-6, "coefficient %d : %f vs %f", i, tt.cc[i], cc[i])
			}
		})
	}

}
