package query

import (
	"fmt"
	"sort"

	"github.com/cdipaolo/goml/cluster"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/screen"
	"github.com/rs/zerolog/log"
)

// Diversity spreads the batch over the pool by clustering it
// and picking the best scoring member of each cluster.
type Diversity struct {
	iterations int
}

func NewDiversity(iterations int) *Diversity {
	return &Diversity{iterations: iterations}
}

func (d *Diversity) Select(m screen.Model, pool *model.Pool, n int) ([]int, error) {
	if err := validate(n, pool.Size()); err != nil {
		return nil, err
	}
	if n == 0 {
		return []int{}, nil
	}
	ss, err := scoreAll(m, pool)
	if err != nil {
		return nil, err
	}
	ranking := make([]scored, len(ss))
	copy(ranking, ss)
	sort.Sort(byScore(ranking))

	guesses, err := d.cluster(pool, n)
	if err != nil {
		// an unstable clustering falls back to the plain ranking
		log.Warn().Err(err).Int("batch", n).Msg("could not cluster pool")
		return top(ranking, n), nil
	}

	// best scoring member per cluster
	best := make(map[int]scored, n)
	for i, g := range guesses {
		current, ok := best[g]
		if !ok || ss[i].score > current.score {
			best[g] = ss[i]
		}
	}
	picks := make([]scored, 0, len(best))
	for _, pick := range best {
		picks = append(picks, pick)
	}
	sort.Sort(byScore(picks))

	used := make(map[int]bool, n)
	ii := make([]int, 0, n)
	for _, pick := range picks {
		used[pick.index] = true
		ii = append(ii, pick.index)
	}
	// empty clusters leave gaps, fill from the ranking
	for rr := 0; len(ii) < n; rr++ {
		if used[ranking[rr].index] {
			continue
		}
		used[ranking[rr].index] = true
		ii = append(ii, ranking[rr].index)
	}
	return ii, nil
}

func (d *Diversity) cluster(pool *model.Pool, n int) ([]int, error) {
	vectors := make([][]float64, pool.Size())
	for i := 0; i < pool.Size(); i++ {
		x, err := pool.Vector(i)
		if err != nil {
			return nil, fmt.Errorf("could not resolve vector %d: %w", i, err)
		}
		vectors[i] = x
	}
	km := cluster.NewKMeans(n, d.iterations, vectors)
	if err := km.Learn(); err != nil {
		return nil, fmt.Errorf("could not learn clusters: %w", err)
	}
	guesses := km.Guesses()
	if len(guesses) != len(vectors) {
		return nil, fmt.Errorf("could not align clusters with pool [ %d | %d ]", len(guesses), len(vectors))
	}
	return guesses, nil
}
