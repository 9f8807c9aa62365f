package query

import (
	"fmt"
	"sort"

	"github.com/drakos74/free-screen/internal/buffer"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/screen"
)

// scorers exposes the individual votes of an ensemble model.
type scorers interface {
	Scores(x []float64) ([]float64, error)
}

// Disagreement picks the candidates an ensemble disputes most.
// A model without member votes degrades to the margin ranking.
type Disagreement struct {
}

func NewDisagreement() *Disagreement {
	return &Disagreement{}
}

func (d *Disagreement) Select(m screen.Model, pool *model.Pool, n int) ([]int, error) {
	if err := validate(n, pool.Size()); err != nil {
		return nil, err
	}
	sc, ok := m.(scorers)
	if !ok {
		ss, err := scoreAll(m, pool)
		if err != nil {
			return nil, err
		}
		sort.Sort(byMargin(ss))
		return top(ss, n), nil
	}

	ss := make([]scored, pool.Size())
	for i := 0; i < pool.Size(); i++ {
		x, err := pool.Vector(i)
		if err != nil {
			return nil, fmt.Errorf("could not resolve vector %d: %w", i, err)
		}
		votes, err := sc.Scores(x)
		if err != nil {
			return nil, fmt.Errorf("could not score candidate %d: %w", i, err)
		}
		stats := buffer.NewStats()
		for _, vote := range votes {
			stats.Push(vote)
		}
		ss[i] = scored{index: i, score: stats.Variance()}
	}
	sort.Sort(byScore(ss))
	return top(ss, n), nil
}
