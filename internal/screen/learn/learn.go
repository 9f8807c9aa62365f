package learn

import (
	"errors"
	"fmt"
	"reflect"

	screenmath "github.com/drakos74/free-screen/internal/math"
	"github.com/drakos74/free-screen/internal/screen"
)

const (
	ForestKey    = "forest"
	LogisticKey  = "logistic"
	NetKey       = "net"
	KnnKey       = "knn"
	CommitteeKey = "committee"
)

var NotFittedErr = errors.New("model not fitted")

// Config carries the tuning knobs shared by all model types.
// Zero values fall back to the defaults of the corresponding model.
type Config struct {
	Trees          int     `json:"trees"`
	Rate           float64 `json:"rate"`
	Regularization float64 `json:"regularization"`
	Iterations     int     `json:"iterations"`
	Epochs         int     `json:"epochs"`
	Layers         []int   `json:"layers"`
	Neighbours     int     `json:"neighbours"`
}

func (cfg Config) withDefaults() Config {
	if cfg.Trees == 0 {
		cfg.Trees = 100
	}
	if cfg.Rate == 0 {
		cfg.Rate = 0.1
	}
	if cfg.Iterations == 0 {
		cfg.Iterations = 1000
	}
	if cfg.Epochs == 0 {
		cfg.Epochs = 10
	}
	if len(cfg.Layers) == 0 {
		cfg.Layers = []int{32, 9}
	}
	if cfg.Neighbours == 0 {
		cfg.Neighbours = 5
	}
	return cfg
}

// Detail identifies a model instance.
type Detail struct {
	Type  string `json:"type"`
	Hash  string `json:"hash"`
	Index int    `json:"index"`
}

func newDetail(m interface{}, index int) Detail {
	return Detail{
		Type:  reflect.TypeOf(m).Elem().String(),
		Hash:  screenmath.String(5),
		Index: index,
	}
}

var makers = map[string]func(cfg Config) screen.Model{
	ForestKey: func(cfg Config) screen.Model {
		return NewForest(cfg)
	},
	LogisticKey: func(cfg Config) screen.Model {
		return NewLogistic(cfg)
	},
	NetKey: func(cfg Config) screen.Model {
		return NewNet(cfg)
	},
	KnnKey: func(cfg Config) screen.Model {
		return NewKnn(cfg)
	},
	CommitteeKey: func(cfg Config) screen.Model {
		return NewCommittee(NewForest(cfg), NewLogistic(cfg), NewNet(cfg))
	},
}

// Construct returns a constructor for the named model type.
func Construct(name string, cfg Config) (screen.ConstructModel, error) {
	maker, ok := makers[name]
	if !ok {
		return nil, fmt.Errorf("unknown model: %s", name)
	}
	cfg = cfg.withDefaults()
	return func() screen.Model {
		return maker(cfg)
	}, nil
}

// dataset accumulates the taught data across batches.
type dataset struct {
	x [][]float64
	y []float64
}

func newDataset() dataset {
	return dataset{
		x: make([][]float64, 0),
		y: make([]float64, 0),
	}
}

func (d *dataset) reset() {
	d.x = make([][]float64, 0)
	d.y = make([]float64, 0)
}

// absorb appends the batch and returns the full accumulated set.
func (d *dataset) absorb(x [][]float64, y []float64) ([][]float64, []float64, error) {
	if len(x) != len(y) {
		return nil, nil, fmt.Errorf("cannot absorb %d vectors with %d labels", len(x), len(y))
	}
	d.x = append(d.x, x...)
	d.y = append(d.y, y...)
	return d.x, d.y, nil
}

func (d *dataset) size() int {
	return len(d.x)
}
