package model

import "math/rand"

// Generate builds a synthetic pool of the given size and fingerprint width.
// Bits are set with probability 0.5 and labels with the given hit rate.
func Generate(rnd *rand.Rand, size, width int, hitRate float64) *Pool {
	vectors := make([][]float64, size)
	labels := make([]float64, size)
	for i := 0; i < size; i++ {
		v := make([]float64, width)
		for j := 0; j < width; j++ {
			if rnd.Float64() < 0.5 {
				v[j] = 1
			}
		}
		vectors[i] = v
		if rnd.Float64() < hitRate {
			labels[i] = 1
		}
	}
	pool, _ := NewPool(vectors, labels)
	return pool
}
