package learn

import (
	"fmt"
	"io"

	"github.com/cdipaolo/goml/base"
	"github.com/cdipaolo/goml/linear"
)

// Logistic scores candidates with a regularized logistic regression.
type Logistic struct {
	data           dataset
	rate           float64
	regularization float64
	iterations     int
	model          *linear.Logistic
}

func NewLogistic(cfg Config) *Logistic {
	return &Logistic{
		data:           newDataset(),
		rate:           cfg.Rate,
		regularization: cfg.Regularization,
		iterations:     cfg.Iterations,
	}
}

func (l *Logistic) Fit(x [][]float64, y []float64) error {
	l.data.reset()
	return l.Update(x, y)
}

// Update refits on the full accumulated set,
// gradient ascent does not converge well on the increment alone.
func (l *Logistic) Update(x [][]float64, y []float64) error {
	xx, yy, err := l.data.absorb(x, y)
	if err != nil {
		return fmt.Errorf("could not absorb batch: %w", err)
	}
	if len(xx) == 0 {
		return fmt.Errorf("cannot train regression on empty set")
	}
	model := linear.NewLogistic(base.BatchGA, l.rate, l.regularization, l.iterations, xx, yy)
	model.Output = io.Discard
	if err := model.Learn(); err != nil {
		return fmt.Errorf("could not learn regression: %w", err)
	}
	l.model = model
	return nil
}

func (l *Logistic) Predict(x []float64) (float64, error) {
	if l.model == nil {
		return 0, NotFittedErr
	}
	p, err := l.model.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("could not predict: %w", err)
	}
	return p[0], nil
}
