package learn

import (
	"fmt"

	randomforest "github.com/malaschitz/randomForest"
)

// Forest scores candidates with a random forest ensemble.
// The positive class score is the fraction of trees voting active.
type Forest struct {
	dataset
	trees  int
	forest *randomforest.Forest
}

func NewForest(cfg Config) *Forest {
	return &Forest{
		dataset: newDataset(),
		trees:   cfg.Trees,
	}
}

func (f *Forest) Fit(x [][]float64, y []float64) error {
	f.reset()
	return f.Update(x, y)
}

func (f *Forest) Update(x [][]float64, y []float64) error {
	xx, yy, err := f.absorb(x, y)
	if err != nil {
		return fmt.Errorf("could not absorb batch: %w", err)
	}
	return f.train(xx, yy)
}

func (f *Forest) train(xx [][]float64, yy []float64) error {
	if len(xx) == 0 {
		return fmt.Errorf("cannot train forest on empty set")
	}
	classes := make([]int, len(yy))
	for i, y := range yy {
		classes[i] = int(y)
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: xx, Class: classes}
	forest.Train(f.trees)
	f.forest = forest
	return nil
}

func (f *Forest) Predict(x []float64) (float64, error) {
	if f.forest == nil {
		return 0, NotFittedErr
	}
	vv := f.forest.Vote(x)
	// a single-class forest has no vote slot for the active class
	if len(vv) < 2 {
		return 0, nil
	}
	return vv[1], nil
}
