package screen

import (
	"errors"
	"math/rand"
	"testing"

	screenmath "github.com/drakos74/free-screen/internal/math"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTrial_Run(t *testing.T) {

	type test struct {
		cfg     Config
		size    int
		hitRate float64
		hits    int
	}

	tests := map[string]test{
		"no-actives": {
			cfg:     Config{Init: 10, Batch: 10, Cycles: 3, Seed: 42},
			size:    1000,
			hitRate: 0,
			hits:    0,
		},
		"all-actives": {
			cfg:     Config{Init: 10, Batch: 10, Cycles: 3, Seed: 42},
			size:    1000,
			hitRate: 1,
			hits:    40,
		},
		"no-cycles": {
			cfg:     Config{Init: 5, Batch: 5, Cycles: 0, Seed: 42},
			size:    100,
			hitRate: 1,
			hits:    5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			pool := model.Generate(rand.New(rand.NewSource(tt.cfg.Seed)), tt.size, 16, tt.hitRate)
			trial := NewTrial(testKey(0), pool, model.NewOracle(pool), newStubModel(), newWalkStrategy(), tt.cfg, rand.New(rand.NewSource(tt.cfg.Seed)))

			result, err := trial.Run()
			assert.NoError(t, err)

			assert.Equal(t, tt.hits, result.Total())
			assert.Equal(t, tt.cfg.Cycles+1, len(result.Batches))
			assert.Equal(t, tt.cfg.Depth(), len(result.Selection()))
			for _, i := range result.Selection() {
				assert.True(t, i >= 0 && i < tt.size)
			}
		})
	}
}

func TestTrial_Bounds(t *testing.T) {

	cfg := Config{Init: 20, Batch: 10, Cycles: 5, Seed: 11}
	pool := model.Generate(rand.New(rand.NewSource(3)), 500, 32, 0.1)

	trial := NewTrial(testKey(0), pool, model.NewOracle(pool), newStubModel(), newWalkStrategy(), cfg, rand.New(rand.NewSource(cfg.Seed)))
	result, err := trial.Run()
	assert.NoError(t, err)

	assert.True(t, result.Total() >= 0)
	assert.True(t, result.Total() <= cfg.Depth())

	// the tally only ever grows
	for i := 1; i < len(result.Cumulative); i++ {
		assert.True(t, result.Cumulative[i] >= result.Cumulative[i-1])
		assert.Equal(t, result.Cumulative[i], result.Cumulative[i-1]+result.Hits[i])
	}
}

func TestTrial_Deterministic(t *testing.T) {

	cfg := Config{Init: 10, Batch: 5, Cycles: 4, Seed: 42}
	pool := model.Generate(rand.New(rand.NewSource(1)), 200, 16, 0.2)
	oracle := model.NewOracle(pool)

	run := func(seed int64) Result {
		trial := NewTrial(testKey(0), pool, oracle, newStubModel(), newWalkStrategy(), cfg, rand.New(rand.NewSource(seed)))
		result, err := trial.Run()
		assert.NoError(t, err)
		return result
	}

	first := run(cfg.Seed)
	second := run(cfg.Seed)
	other := run(cfg.Seed + 1)

	assert.Equal(t, first.Selection(), second.Selection())
	assert.Equal(t, first.Cumulative, second.Cumulative)
	assert.NotEqual(t, first.Selection(), other.Selection())
}

func TestTrial_ModelSchedule(t *testing.T) {

	cfg := Config{Init: 8, Batch: 4, Cycles: 3, Seed: 7}
	pool := model.Generate(rand.New(rand.NewSource(7)), 100, 16, 0.3)

	learner := newStubModel()
	trial := NewTrial(testKey(0), pool, model.NewOracle(pool), learner, newWalkStrategy(), cfg, rand.New(rand.NewSource(cfg.Seed)))
	_, err := trial.Run()
	assert.NoError(t, err)

	// one fit on the seed batch, one update per cycle
	assert.Equal(t, []int{cfg.Init}, learner.fits)
	assert.Equal(t, []int{cfg.Batch, cfg.Batch, cfg.Batch}, learner.updates)
}

func TestTrial_Error(t *testing.T) {

	pool := model.Generate(rand.New(rand.NewSource(1)), 50, 8, 0.5)
	oracle := model.NewOracle(pool)
	cfg := Config{Init: 5, Batch: 5, Cycles: 2, Seed: 42}

	type test struct {
		cfg      Config
		learner  Model
		strategy Strategy
		match    error
	}

	tests := map[string]test{
		"seed-overdraw": {
			cfg:      Config{Init: 51, Batch: 5, Cycles: 1, Seed: 42},
			learner:  newStubModel(),
			strategy: newWalkStrategy(),
			match:    screenmath.InsufficientPopulationErr,
		},
		"batch-overdraw": {
			cfg:      Config{Init: 5, Batch: 51, Cycles: 1, Seed: 42},
			learner:  newStubModel(),
			strategy: newWalkStrategy(),
			match:    screenmath.InsufficientPopulationErr,
		},
		"empty-seed": {
			cfg:      Config{Init: 0, Batch: 5, Cycles: 1, Seed: 42},
			learner:  newStubModel(),
			strategy: newWalkStrategy(),
		},
		"strategy-failure": {
			cfg:      cfg,
			learner:  newStubModel(),
			strategy: errStrategy{},
		},
		"strategy-out-of-range": {
			cfg:      cfg,
			learner:  newStubModel(),
			strategy: overdrawStrategy{},
			match:    model.OutOfRangeErr,
		},
		"fit-failure": {
			cfg:      cfg,
			learner:  errModel{},
			strategy: newWalkStrategy(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			trial := NewTrial(testKey(0), pool, oracle, tt.learner, tt.strategy, tt.cfg, rand.New(rand.NewSource(tt.cfg.Seed)))
			_, err := trial.Run()
			assert.Error(t, err)
			if tt.match != nil {
				assert.True(t, errors.Is(err, tt.match), "expected %v in %v", tt.match, err)
			}
		})
	}
}

func testKey(index int) model.Key {
	return model.Key{
		Deck:     "test",
		Model:    "stub",
		Strategy: "walk",
		Index:    index,
	}
}

// stubModel tracks the batch sizes it was taught with.
type stubModel struct {
	fits    []int
	updates []int
}

func newStubModel() *stubModel {
	return &stubModel{
		fits:    make([]int, 0),
		updates: make([]int, 0),
	}
}

func (s *stubModel) Fit(x [][]float64, y []float64) error {
	s.fits = append(s.fits, len(x))
	return nil
}

func (s *stubModel) Update(x [][]float64, y []float64) error {
	s.updates = append(s.updates, len(x))
	return nil
}

func (s *stubModel) Predict(x []float64) (float64, error) {
	return x[0], nil
}

// walkStrategy walks the pool in index order, one batch at a time.
type walkStrategy struct {
	cursor int
}

func newWalkStrategy() *walkStrategy {
	return &walkStrategy{}
}

func (w *walkStrategy) Select(m Model, pool *model.Pool, n int) ([]int, error) {
	if n > pool.Size() {
		return nil, screenmath.InsufficientPopulationErr
	}
	ii := make([]int, n)
	for j := 0; j < n; j++ {
		ii[j] = (w.cursor + j) % pool.Size()
	}
	w.cursor += n
	return ii, nil
}

type errStrategy struct{}

func (e errStrategy) Select(m Model, pool *model.Pool, n int) ([]int, error) {
	return nil, errors.New("strategy gone wrong")
}

// overdrawStrategy points past the end of the pool.
type overdrawStrategy struct{}

func (o overdrawStrategy) Select(m Model, pool *model.Pool, n int) ([]int, error) {
	ii := make([]int, n)
	for j := 0; j < n; j++ {
		ii[j] = pool.Size() + j
	}
	return ii, nil
}

type errModel struct{}

func (e errModel) Fit(x [][]float64, y []float64) error {
	return errors.New("model gone wrong")
}

func (e errModel) Update(x [][]float64, y []float64) error {
	return errors.New("model gone wrong")
}

func (e errModel) Predict(x []float64) (float64, error) {
	return 0, errors.New("model gone wrong")
}
