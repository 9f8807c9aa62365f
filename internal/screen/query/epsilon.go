package query

import (
	"math/rand"
	"sort"

	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/screen"
)

// EpsilonGreedy mostly exploits the model ranking
// and explores a uniform pick with probability epsilon.
type EpsilonGreedy struct {
	epsilon float64
	rnd     *rand.Rand
}

func NewEpsilonGreedy(epsilon float64, rnd *rand.Rand) *EpsilonGreedy {
	return &EpsilonGreedy{
		epsilon: epsilon,
		rnd:     rnd,
	}
}

func (e *EpsilonGreedy) Select(m screen.Model, pool *model.Pool, n int) ([]int, error) {
	if err := validate(n, pool.Size()); err != nil {
		return nil, err
	}
	ss, err := scoreAll(m, pool)
	if err != nil {
		return nil, err
	}
	sort.Sort(byScore(ss))
	perm := e.rnd.Perm(pool.Size())

	used := make(map[int]bool, n)
	ii := make([]int, 0, n)
	pp := 0
	rr := 0
	for len(ii) < n {
		var next int
		if e.rnd.Float64() < e.epsilon {
			for used[perm[pp]] {
				pp++
			}
			next = perm[pp]
		} else {
			for used[ss[rr].index] {
				rr++
			}
			next = ss[rr].index
		}
		used[next] = true
		ii = append(ii, next)
	}
	return ii, nil
}
