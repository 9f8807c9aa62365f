package query

import (
	"fmt"
	"math"
	"math/rand"

	screenmath "github.com/drakos74/free-screen/internal/math"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/screen"
)

const (
	GreedyKey       = "greedy"
	UncertaintyKey  = "uncertainty"
	RandomKey       = "random"
	EpsilonKey      = "epsilon"
	DiversityKey    = "diversity"
	DisagreementKey = "disagreement"
)

// Config carries the tuning knobs shared by all strategy types.
type Config struct {
	Epsilon    float64 `json:"epsilon"`
	Iterations int     `json:"iterations"`
}

func (cfg Config) withDefaults() Config {
	if cfg.Epsilon == 0 {
		cfg.Epsilon = 0.1
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = 20
	}
	return cfg
}

var makers = map[string]func(cfg Config, rnd *rand.Rand) screen.Strategy{
	GreedyKey: func(cfg Config, rnd *rand.Rand) screen.Strategy {
		return NewGreedy()
	},
	UncertaintyKey: func(cfg Config, rnd *rand.Rand) screen.Strategy {
		return NewUncertainty()
	},
	RandomKey: func(cfg Config, rnd *rand.Rand) screen.Strategy {
		return NewRandom(rnd)
	},
	EpsilonKey: func(cfg Config, rnd *rand.Rand) screen.Strategy {
		return NewEpsilonGreedy(cfg.Epsilon, rnd)
	},
	DiversityKey: func(cfg Config, rnd *rand.Rand) screen.Strategy {
		return NewDiversity(cfg.Iterations)
	},
	DisagreementKey: func(cfg Config, rnd *rand.Rand) screen.Strategy {
		return NewDisagreement()
	},
}

// Construct returns a constructor for the named strategy type.
func Construct(name string, cfg Config) (screen.ConstructStrategy, error) {
	maker, ok := makers[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %s", name)
	}
	cfg = cfg.withDefaults()
	return func(rnd *rand.Rand) screen.Strategy {
		return maker(cfg, rnd)
	}, nil
}

func validate(n, size int) error {
	if n < 0 {
		return fmt.Errorf("cannot select %d", n)
	}
	if n > size {
		return fmt.Errorf("cannot select %d from pool of %d: %w", n, size, screenmath.InsufficientPopulationErr)
	}
	return nil
}

type scored struct {
	index int
	score float64
}

// scoreAll runs the model over the full pool.
func scoreAll(m screen.Model, pool *model.Pool) ([]scored, error) {
	ss := make([]scored, pool.Size())
	for i := 0; i < pool.Size(); i++ {
		x, err := pool.Vector(i)
		if err != nil {
			return nil, fmt.Errorf("could not resolve vector %d: %w", i, err)
		}
		score, err := m.Predict(x)
		if err != nil {
			return nil, fmt.Errorf("could not score candidate %d: %w", i, err)
		}
		ss[i] = scored{index: i, score: score}
	}
	return ss, nil
}

func top(ss []scored, n int) []int {
	ii := make([]int, n)
	for i := 0; i < n; i++ {
		ii[i] = ss[i].index
	}
	return ii
}

// byScore ranks high scores first, the index breaks ties.
type byScore []scored

func (ss byScore) Len() int { return len(ss) }
func (ss byScore) Less(i, j int) bool {
	if ss[i].score == ss[j].score {
		return ss[i].index < ss[j].index
	}
	return ss[i].score > ss[j].score
}
func (ss byScore) Swap(i, j int) { ss[i], ss[j] = ss[j], ss[i] }

// byMargin ranks scores closest to the decision boundary first.
type byMargin []scored

func (ss byMargin) Len() int { return len(ss) }
func (ss byMargin) Less(i, j int) bool {
	di := math.Abs(ss[i].score - 0.5)
	dj := math.Abs(ss[j].score - 0.5)
	if di == dj {
		return ss[i].index < ss[j].index
	}
	return di < dj
}
func (ss byMargin) Swap(i, j int) { ss[i], ss[j] = ss[j], ss[i] }
