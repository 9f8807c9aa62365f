package query

import (
	"sort"

	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/screen"
)

// Greedy picks the candidates the model scores highest.
type Greedy struct {
}

func NewGreedy() *Greedy {
	return &Greedy{}
}

func (g *Greedy) Select(m screen.Model, pool *model.Pool, n int) ([]int, error) {
	if err := validate(n, pool.Size()); err != nil {
		return nil, err
	}
	ss, err := scoreAll(m, pool)
	if err != nil {
		return nil, err
	}
	sort.Sort(byScore(ss))
	return top(ss, n), nil
}
