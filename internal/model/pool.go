package model

import (
	"errors"
	"fmt"
)

var (
	// OutOfRangeErr marks an index lookup outside the pool population.
	OutOfRangeErr = errors.New("out of range")
)

// Pool is an immutable screening library of fingerprint vectors.
// The activity labels are hidden from the feature accessors,
// only the oracle reads them.
type Pool struct {
	vectors [][]float64
	labels  []float64
}

// NewPool creates a new pool from the given vectors and labels.
// All vectors must have the same width and the labels must be binary.
func NewPool(vectors [][]float64, labels []float64) (*Pool, error) {
	if len(vectors) != len(labels) {
		return nil, fmt.Errorf("inconsistent pool size [ %d | %d ]", len(vectors), len(labels))
	}
	width := 0
	if len(vectors) > 0 {
		width = len(vectors[0])
	}
	for i, v := range vectors {
		if len(v) != width {
			return nil, fmt.Errorf("inconsistent vector width at %d [ %d | %d ]", i, len(v), width)
		}
	}
	for i, l := range labels {
		if l != 0 && l != 1 {
			return nil, fmt.Errorf("label at %d is not binary: %f", i, l)
		}
	}
	return &Pool{
		vectors: vectors,
		labels:  labels,
	}, nil
}

// Size returns the number of compounds in the pool.
func (p *Pool) Size() int {
	return len(p.vectors)
}

// Width returns the fingerprint width.
func (p *Pool) Width() int {
	if len(p.vectors) == 0 {
		return 0
	}
	return len(p.vectors[0])
}

// Vector returns the fingerprint for the given index.
func (p *Pool) Vector(i int) ([]float64, error) {
	if i < 0 || i >= len(p.vectors) {
		return nil, fmt.Errorf("no vector at %d of %d: %w", i, len(p.vectors), OutOfRangeErr)
	}
	return p.vectors[i], nil
}

// Vectors returns the fingerprints for the given indices.
func (p *Pool) Vectors(ii []int) ([][]float64, error) {
	xx := make([][]float64, len(ii))
	for n, i := range ii {
		x, err := p.Vector(i)
		if err != nil {
			return nil, err
		}
		xx[n] = x
	}
	return xx, nil
}

// Positives returns the total number of active compounds in the pool.
func (p *Pool) Positives() int {
	c := 0
	for _, l := range p.labels {
		if l == 1 {
			c++
		}
	}
	return c
}

func (p *Pool) label(i int) (float64, error) {
	if i < 0 || i >= len(p.labels) {
		return 0, fmt.Errorf("no label at %d of %d: %w", i, len(p.labels), OutOfRangeErr)
	}
	return p.labels[i], nil
}
