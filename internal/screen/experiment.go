package screen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/drakos74/free-screen/internal/buffer"
	"github.com/drakos74/free-screen/internal/concurrent"
	"github.com/drakos74/free-screen/internal/emoji"
	screenmath "github.com/drakos74/free-screen/internal/math"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/stat"
)

// PoolInfo describes the screened pool.
type PoolInfo struct {
	Size      int `json:"size"`
	Width     int `json:"width"`
	Positives int `json:"positives"`
}

// Arm aggregates the hit tallies of one experiment arm.
// Draws is the number of oracle submissions per trial in this arm,
// the two arms are not normalised against each other.
type Arm struct {
	Draws int     `json:"draws"`
	Hits  []int   `json:"hits"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	StDev float64 `json:"st_dev"`
}

// Report carries the aggregated outcome of an experiment.
// Progress is the mean cumulative hit count per screening step,
// Trend the first degree slope fitted through it.
type Report struct {
	ID         string    `json:"id"`
	Stamp      time.Time `json:"stamp"`
	Key        model.Key `json:"key"`
	Pool       PoolInfo  `json:"pool"`
	Screen     Arm       `json:"screen"`
	Random     Arm       `json:"random"`
	Enrichment float64   `json:"enrichment"`
	Progress   []float64 `json:"progress"`
	Trend      float64   `json:"trend"`
}

// Format returns a readable representation of the report.
func (r Report) Format() string {
	return fmt.Sprintf("%s\n"+
		"pool     [size:%d|width:%d|positives:%d]\n"+
		"screen   [draws:%d|mean:%s|min:%s|max:%s|stdev:%s]\n"+
		"random   [draws:%d|mean:%s|min:%s|max:%s|stdev:%s]\n"+
		"progress %s\n"+
		"trend    %s %s\n"+
		"enrichment %s %s",
		r.Key.ToString(),
		r.Pool.Size, r.Pool.Width, r.Pool.Positives,
		r.Screen.Draws, screenmath.Format(r.Screen.Mean), screenmath.Format(r.Screen.Min), screenmath.Format(r.Screen.Max), screenmath.Format(r.Screen.StDev),
		r.Random.Draws, screenmath.Format(r.Random.Mean), screenmath.Format(r.Random.Min), screenmath.Format(r.Random.Max), screenmath.Format(r.Random.StDev),
		emoji.Progress(r.Progress),
		screenmath.Format(r.Trend), emoji.MapToSentiment(r.Trend),
		screenmath.Format(r.Enrichment), emoji.MapDeca(r.Enrichment-1))
}

// Experiment runs repeated screening and baseline trials over the same pool
// and compares their hit yields.
type Experiment struct {
	key      model.Key
	cfg      Config
	pool     *model.Pool
	oracle   Oracle
	learner  ConstructModel
	strategy ConstructStrategy
	store    storage.Persistence
	registry storage.Registry
}

// NewExperiment creates a new experiment.
func NewExperiment(key model.Key, cfg Config, pool *model.Pool, oracle Oracle, learner ConstructModel, strategy ConstructStrategy) *Experiment {
	return &Experiment{
		key:      key,
		cfg:      cfg,
		pool:     pool,
		oracle:   oracle,
		learner:  learner,
		strategy: strategy,
		store:    storage.NewVoidStorage(),
		registry: storage.NewVoidRegistry(),
	}
}

// WithStorage sets up the report persistence.
func (e *Experiment) WithStorage(shard storage.Shard) *Experiment {
	store, err := shard("experiments")
	if err != nil {
		log.Error().Err(err).Msg("could not create experiment storage")
		store = storage.NewVoidStorage()
	}
	e.store = store
	return e
}

// WithRegistry sets up the trial event registry.
func (e *Experiment) WithRegistry(eventRegistry storage.EventRegistry) *Experiment {
	registry, err := eventRegistry("trials")
	if err != nil {
		log.Error().Err(err).Msg("could not create trial registry")
		registry = storage.NewVoidRegistry()
	}
	e.registry = registry
	return e
}

// Run executes both arms and aggregates the outcome.
// Trial r derives its sampling source from the master seed and r,
// so the outcome does not depend on the number of workers.
func (e *Experiment) Run() (Report, error) {
	if e.cfg.Trials < 1 {
		return Report{}, fmt.Errorf("cannot run %d trials", e.cfg.Trials)
	}
	if e.learner == nil || e.strategy == nil {
		return Report{}, fmt.Errorf("no model or strategy for experiment %s", e.key.ToString())
	}

	log.Info().
		Str("key", e.key.ToString()).
		Int("size", e.pool.Size()).
		Int("positives", e.pool.Positives()).
		Int("trials", e.cfg.Trials).
		Int("depth", e.cfg.Depth()).
		Int("draws", e.cfg.Draws).
		Msg("running experiment")

	screenResults, err := e.screen()
	if err != nil {
		return Report{}, err
	}
	randomResults, err := e.random()
	if err != nil {
		return Report{}, err
	}

	report := e.aggregate(screenResults, randomResults)

	for _, result := range screenResults {
		if err := e.registry.Add(storage.K{Deck: e.key.Deck, Label: "screen"}, result); err != nil {
			log.Error().Err(err).Str("id", result.ID).Msg("could not register trial result")
		}
	}
	for _, result := range randomResults {
		if err := e.registry.Add(storage.K{Deck: e.key.Deck, Label: "random"}, result); err != nil {
			log.Error().Err(err).Str("id", result.ID).Msg("could not register trial result")
		}
	}
	if err := e.store.Store(storage.Key{
		Hash:  report.Stamp.Unix(),
		Deck:  e.key.Deck,
		Label: "report",
	}, report); err != nil {
		log.Error().Err(err).Str("id", report.ID).Msg("could not store report")
	}

	log.Info().
		Str("key", e.key.ToString()).
		Float64("screen", report.Screen.Mean).
		Float64("random", report.Random.Mean).
		Float64("enrichment", report.Enrichment).
		Msg("experiment done")

	return report, nil
}

func (e *Experiment) screen() ([]Result, error) {
	results := make([]Result, e.cfg.Trials)
	errs := make([]error, e.cfg.Trials)

	tasks := make([]func(), e.cfg.Trials)
	for i := 0; i < e.cfg.Trials; i++ {
		index := i
		tasks[index] = func() {
			key := model.Key{
				Deck:     e.key.Deck,
				Model:    e.key.Model,
				Strategy: e.key.Strategy,
				Index:    index,
			}
			rnd := rand.New(rand.NewSource(e.cfg.Seed + int64(index)))
			trial := NewTrial(key, e.pool, e.oracle, e.learner(), e.strategy(rnd), e.cfg, rnd)
			results[index], errs[index] = trial.Run()
		}
	}
	concurrent.Pool(e.cfg.Workers, tasks...)

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("screening trial %d failed: %w", i, err)
		}
	}
	return results, nil
}

func (e *Experiment) random() ([]Result, error) {
	results := make([]Result, e.cfg.Trials)
	errs := make([]error, e.cfg.Trials)

	tasks := make([]func(), e.cfg.Trials)
	for i := 0; i < e.cfg.Trials; i++ {
		index := i
		tasks[index] = func() {
			key := model.Key{
				Deck:     e.key.Deck,
				Model:    "random",
				Strategy: "uniform",
				Index:    index,
			}
			rnd := rand.New(rand.NewSource(e.cfg.Seed + int64(e.cfg.Trials) + int64(index)))
			baseline := NewBaseline(key, e.pool, e.oracle, e.cfg.Draws, rnd)
			results[index], errs[index] = baseline.Run()
		}
	}
	concurrent.Pool(e.cfg.Workers, tasks...)

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("baseline trial %d failed: %w", i, err)
		}
	}
	return results, nil
}

func (e *Experiment) aggregate(screenResults, randomResults []Result) Report {
	screenHits := make([]int, len(screenResults))
	progression := buffer.NewStatsCollector(e.cfg.Cycles + 1)
	for i, result := range screenResults {
		screenHits[i] = result.Total()
		progression.Push(screenmath.ToFloat(result.Cumulative)...)
	}
	randomHits := make([]int, len(randomResults))
	for i, result := range randomResults {
		randomHits[i] = result.Total()
	}

	progress := make([]float64, e.cfg.Cycles+1)
	for i, stats := range progression.Stats() {
		progress[i] = stats.Avg()
	}
	trend := 0.0
	if len(progress) > 1 {
		if cc, err := screenmath.Fit(screenmath.Series(1, len(progress)), progress, 1); err == nil {
			trend = cc[1]
		} else {
			log.Error().Err(err).Floats64("progress", progress).Msg("could not fit hit trend")
		}
	}

	screenArm := newArm(e.cfg.Depth(), screenHits)
	randomArm := newArm(e.cfg.Draws, randomHits)

	enrichment := 1.0
	if randomArm.Mean > 0 {
		enrichment = screenArm.Mean / randomArm.Mean
	} else if screenArm.Mean > 0 {
		enrichment = math.Inf(1)
	}

	return Report{
		ID:    uuid.New().String(),
		Stamp: time.Now(),
		Key:   e.key,
		Pool: PoolInfo{
			Size:      e.pool.Size(),
			Width:     e.pool.Width(),
			Positives: e.pool.Positives(),
		},
		Screen:     screenArm,
		Random:     randomArm,
		Enrichment: enrichment,
		Progress:   progress,
		Trend:      trend,
	}
}

func newArm(draws int, hits []int) Arm {
	stats := buffer.NewStats()
	for _, h := range hits {
		stats.Push(float64(h))
	}
	stDev := 0.0
	if stats.Count() > 1 {
		stDev = stats.SampleStDev()
	}
	return Arm{
		Draws: draws,
		Hits:  hits,
		Mean:  stat.Mean(screenmath.ToFloat(hits), nil),
		Min:   stats.Min(),
		Max:   stats.Max(),
		StDev: stDev,
	}
}
