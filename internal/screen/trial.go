package screen

import (
	"fmt"
	"math/rand"
	"time"

	screenmath "github.com/drakos74/free-screen/internal/math"
	"github.com/drakos74/free-screen/internal/metrics"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Result carries the selections and hit counts of a single trial.
// Batches holds the selected index sets in order, the seed batch first.
// The tally counts positives over the concatenation of all batches,
// an index selected twice contributes twice.
type Result struct {
	ID         string        `json:"id"`
	Key        model.Key     `json:"key"`
	Batches    [][]int       `json:"batches"`
	Hits       []int         `json:"hits"`
	Cumulative []int         `json:"cumulative"`
	Duration   time.Duration `json:"duration"`
}

// Selection returns all selected indices in selection order.
func (r Result) Selection() []int {
	ii := make([]int, 0)
	for _, batch := range r.Batches {
		ii = append(ii, batch...)
	}
	return ii
}

// Total returns the full hit tally of the trial.
func (r Result) Total() int {
	if len(r.Cumulative) == 0 {
		return 0
	}
	return r.Cumulative[len(r.Cumulative)-1]
}

// Format returns a readable representation of the result.
func (r Result) Format() string {
	return fmt.Sprintf("%s [selected:%d|hits:%d|%s]",
		r.Key.ToString(),
		len(r.Selection()),
		r.Total(),
		r.Duration.Round(time.Millisecond))
}

// Trial runs a single active learning screen against a pool.
type Trial struct {
	key      model.Key
	pool     *model.Pool
	oracle   Oracle
	learner  Model
	strategy Strategy
	cfg      Config
	rnd      *rand.Rand
}

// NewTrial creates a new trial.
func NewTrial(key model.Key, pool *model.Pool, oracle Oracle, learner Model, strategy Strategy, cfg Config, rnd *rand.Rand) *Trial {
	return &Trial{
		key:      key,
		pool:     pool,
		oracle:   oracle,
		learner:  learner,
		strategy: strategy,
		cfg:      cfg,
		rnd:      rnd,
	}
}

func (t *Trial) validate() error {
	if t.pool == nil {
		return fmt.Errorf("no pool for trial %s", t.key.ToString())
	}
	if t.oracle == nil {
		return fmt.Errorf("no oracle for trial %s", t.key.ToString())
	}
	if t.learner == nil {
		return fmt.Errorf("no model for trial %s", t.key.ToString())
	}
	if t.strategy == nil {
		return fmt.Errorf("no strategy for trial %s", t.key.ToString())
	}
	if err := t.cfg.validate(t.pool.Size()); err != nil {
		return fmt.Errorf("invalid trial %s: %w", t.key.ToString(), err)
	}
	return nil
}

// Run seeds the model and iterates the query cycles.
func (t *Trial) Run() (Result, error) {
	if err := t.validate(); err != nil {
		metrics.Observer.IncrementErrors("trial")
		return Result{}, err
	}

	start := time.Now()
	result := Result{
		ID:         uuid.New().String(),
		Key:        t.key,
		Batches:    make([][]int, 0, t.cfg.Cycles+1),
		Hits:       make([]int, 0, t.cfg.Cycles+1),
		Cumulative: make([]int, 0, t.cfg.Cycles+1),
	}

	seed, err := screenmath.Sample(t.rnd, t.cfg.Init, t.pool.Size())
	if err != nil {
		return Result{}, fmt.Errorf("could not draw seed batch: %w", err)
	}
	yy, err := t.absorb(&result, seed)
	if err != nil {
		return Result{}, err
	}
	xx, err := t.pool.Vectors(seed)
	if err != nil {
		return Result{}, fmt.Errorf("could not resolve seed vectors: %w", err)
	}
	if err := t.learner.Fit(xx, yy); err != nil {
		metrics.Observer.IncrementErrors("fit")
		return Result{}, fmt.Errorf("could not fit model on seed batch: %w", err)
	}

	for c := 0; c < t.cfg.Cycles; c++ {
		ii, err := t.strategy.Select(t.learner, t.pool, t.cfg.Batch)
		if err != nil {
			metrics.Observer.IncrementErrors("select")
			return Result{}, fmt.Errorf("could not select batch at cycle %d: %w", c, err)
		}
		yy, err := t.absorb(&result, ii)
		if err != nil {
			return Result{}, err
		}
		xx, err := t.pool.Vectors(ii)
		if err != nil {
			return Result{}, fmt.Errorf("could not resolve vectors at cycle %d: %w", c, err)
		}
		if err := t.learner.Update(xx, yy); err != nil {
			metrics.Observer.IncrementErrors("update")
			return Result{}, fmt.Errorf("could not update model at cycle %d: %w", c, err)
		}
		log.Debug().
			Str("key", t.key.ToString()).
			Int("cycle", c).
			Int("hits", result.Hits[len(result.Hits)-1]).
			Int("total", result.Total()).
			Msg("cycle done")
	}

	result.Duration = time.Since(start)

	metrics.Observer.IncrementTrials(t.key.Model, t.key.Strategy)
	metrics.Observer.AddHits(result.Total(), t.key.Model, t.key.Strategy)

	return result, nil
}

// absorb labels the batch and tracks it on the result.
func (t *Trial) absorb(result *Result, ii []int) ([]float64, error) {
	yy, err := t.oracle.Labels(ii)
	if err != nil {
		metrics.Observer.IncrementErrors("oracle")
		return nil, fmt.Errorf("could not label batch: %w", err)
	}
	hits := 0
	for _, y := range yy {
		if y == 1 {
			hits++
		}
	}
	result.Batches = append(result.Batches, ii)
	result.Hits = append(result.Hits, hits)
	result.Cumulative = append(result.Cumulative, result.Total()+hits)
	return yy, nil
}
