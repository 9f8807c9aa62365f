package screen

import (
	"fmt"
	"math/rand"
	"time"

	screenmath "github.com/drakos74/free-screen/internal/math"
	"github.com/drakos74/free-screen/internal/metrics"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/google/uuid"
)

// Baseline draws a uniform random selection from the pool for comparison.
// The draws are distinct within the trial.
type Baseline struct {
	key    model.Key
	pool   *model.Pool
	oracle Oracle
	draws  int
	rnd    *rand.Rand
}

// NewBaseline creates a new baseline trial.
func NewBaseline(key model.Key, pool *model.Pool, oracle Oracle, draws int, rnd *rand.Rand) *Baseline {
	return &Baseline{
		key:    key,
		pool:   pool,
		oracle: oracle,
		draws:  draws,
		rnd:    rnd,
	}
}

// Run draws the selection and tallies the hits.
// Zero draws yield an empty selection and no hits.
func (b *Baseline) Run() (Result, error) {
	if b.pool == nil {
		return Result{}, fmt.Errorf("no pool for baseline %s", b.key.ToString())
	}
	if b.oracle == nil {
		return Result{}, fmt.Errorf("no oracle for baseline %s", b.key.ToString())
	}

	start := time.Now()

	ii, err := screenmath.Sample(b.rnd, b.draws, b.pool.Size())
	if err != nil {
		metrics.Observer.IncrementErrors("baseline")
		return Result{}, fmt.Errorf("could not draw baseline selection: %w", err)
	}

	yy, err := b.oracle.Labels(ii)
	if err != nil {
		metrics.Observer.IncrementErrors("oracle")
		return Result{}, fmt.Errorf("could not label baseline selection: %w", err)
	}
	hits := 0
	for _, y := range yy {
		if y == 1 {
			hits++
		}
	}

	result := Result{
		ID:         uuid.New().String(),
		Key:        b.key,
		Batches:    [][]int{ii},
		Hits:       []int{hits},
		Cumulative: []int{hits},
		Duration:   time.Since(start),
	}

	metrics.Observer.IncrementTrials(b.key.Model, b.key.Strategy)
	metrics.Observer.AddHits(hits, b.key.Model, b.key.Strategy)

	return result, nil
}
