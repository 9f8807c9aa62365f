package screen

import (
	"math/rand"

	"github.com/drakos74/free-screen/internal/model"
)

// Model fits a scoring function to labelled fingerprint vectors.
// Predict returns the positive class score in [0,1].
// Update must leave the model reflecting all previously taught data
// plus the new batch.
type Model interface {
	Fit(x [][]float64, y []float64) error
	Update(x [][]float64, y []float64) error
	Predict(x []float64) (float64, error)
}

// Strategy selects the next batch of pool indices to screen.
// Strategies keep no memory of prior selections,
// the same index can come up again in a later cycle.
type Strategy interface {
	Select(m Model, pool *model.Pool, n int) ([]int, error)
}

// Oracle labels pool indices.
type Oracle interface {
	Label(i int) (float64, error)
	Labels(ii []int) ([]float64, error)
}

// ConstructModel creates a fresh model for a trial.
type ConstructModel func() Model

// ConstructStrategy creates a fresh strategy for a trial.
// Strategies draw any randomness from the given source.
type ConstructStrategy func(rnd *rand.Rand) Strategy
