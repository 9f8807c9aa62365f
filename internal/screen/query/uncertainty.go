package query

import (
	"sort"

	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/screen"
)

// Uncertainty picks the candidates the model is least sure about.
type Uncertainty struct {
}

func NewUncertainty() *Uncertainty {
	return &Uncertainty{}
}

func (u *Uncertainty) Select(m screen.Model, pool *model.Pool, n int) ([]int, error) {
	if err := validate(n, pool.Size()); err != nil {
		return nil, err
	}
	ss, err := scoreAll(m, pool)
	if err != nil {
		return nil, err
	}
	sort.Sort(byMargin(ss))
	return top(ss, n), nil
}
