package model

import (
	"fmt"

	"github.com/drakos74/free-screen/internal/metrics"
)

// Oracle answers activity lookups for a pool.
// Repeated lookups for the same index return the same label.
type Oracle struct {
	pool *Pool
}

// NewOracle creates a new oracle over the given pool.
func NewOracle(pool *Pool) *Oracle {
	return &Oracle{pool: pool}
}

// Label returns the activity label for the given index.
func (o *Oracle) Label(i int) (float64, error) {
	l, err := o.pool.label(i)
	if err != nil {
		return 0, fmt.Errorf("could not label %d: %w", i, err)
	}
	metrics.Observer.AddLookups(1)
	return l, nil
}

// Labels returns the activity labels for the given indices.
func (o *Oracle) Labels(ii []int) ([]float64, error) {
	ll := make([]float64, len(ii))
	for n, i := range ii {
		l, err := o.Label(i)
		if err != nil {
			return nil, err
		}
		ll[n] = l
	}
	return ll, nil
}
