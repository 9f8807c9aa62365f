package math

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {

	type test struct {
		k   int
		m   int
		err error
	}

	tests := map[string]test{
		"empty": {
			k: 0,
			m: 100,
		},
		"single": {
			k: 1,
			m: 100,
		},
		"partial": {
			k: 10,
			m: 100,
		},
		"full": {
			k: 100,
			m: 100,
		},
		"empty-population": {
			k:   1,
			m:   0,
			err: InsufficientPopulationErr,
		},
		"overdraw": {
			k:   101,
			m:   100,
			err: InsufficientPopulationErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			rnd := rand.New(rand.NewSource(11))
			ii, err := Sample(rnd, tt.k, tt.m)
			if tt.err != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.k, len(ii))
			seen := make(map[int]struct{})
			for _, i := range ii {
				assert.True(t, i >= 0 && i < tt.m)
				_, ok := seen[i]
				assert.False(t, ok, "duplicate index %d", i)
				seen[i] = struct{}{}
			}
		})
	}

}

func TestSample_Deterministic(t *testing.T) {

	first, err := Sample(rand.New(rand.NewSource(42)), 10, 1000)
	assert.NoError(t, err)

	second, err := Sample(rand.New(rand.NewSource(42)), 10, 1000)
	assert.NoError(t, err)

	assert.Equal(t, first, second)

	other, err := Sample(rand.New(rand.NewSource(43)), 10, 1000)
	assert.NoError(t, err)
	assert.NotEqual(t, first, other)

}

func TestSample_Negative(t *testing.T) {

	_, err := Sample(rand.New(rand.NewSource(1)), -1, 100)
	assert.Error(t, err)

}
