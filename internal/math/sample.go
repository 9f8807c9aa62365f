package math

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// InsufficientPopulationErr marks a draw that asks for more elements than the population holds.
	InsufficientPopulationErr = errors.New("insufficient population")
)

// Sample draws k distinct indices from the range [0,m) using the given source.
// It applies a partial Fisher-Yates shuffle, so it stays cheap for k << m.
func Sample(rnd *rand.Rand, k, m int) ([]int, error) {
	if k < 0 {
		return nil, fmt.Errorf("cannot draw negative sample size %d", k)
	}
	if k > m {
		return nil, fmt.Errorf("cannot draw %d from population of %d: %w", k, m, InsufficientPopulationErr)
	}

	swap := make(map[int]int)
	ii := make([]int, k)
	for i := 0; i < k; i++ {
		j := i + rnd.Intn(m-i)
		vi, ok := swap[i]
		if !ok {
			vi = i
		}
		vj, ok := swap[j]
		if !ok {
			vj = j
		}
		ii[i] = vj
		swap[j] = vi
	}
	return ii, nil
}
