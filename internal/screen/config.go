package screen

import (
	"fmt"

	screenmath "github.com/drakos74/free-screen/internal/math"
)

// Config defines the screening loop dimensions.
// Init is the size of the seed batch the first model is fitted on.
// Batch is the number of compounds the strategy picks per cycle.
// Cycles is the number of query cycles after the seed batch.
// Draws is the number of distinct compounds a random baseline trial picks.
// Trials is the number of repetitions per arm.
// Seed feeds the deterministic samplers, trial r derives its own source from Seed and r.
// Workers caps the number of concurrently running trials.
type Config struct {
	Init    int   `json:"init"`
	Batch   int   `json:"batch"`
	Cycles  int   `json:"cycles"`
	Draws   int   `json:"draws"`
	Trials  int   `json:"trials"`
	Seed    int64 `json:"seed"`
	Workers int   `json:"workers"`
}

// Depth returns the total number of selections a screening trial makes.
func (c Config) Depth() int {
	return c.Init + c.Cycles*c.Batch
}

func (c Config) validate(size int) error {
	if c.Init < 1 {
		return fmt.Errorf("cannot seed with %d compounds", c.Init)
	}
	if c.Batch < 1 {
		return fmt.Errorf("cannot query batches of %d", c.Batch)
	}
	if c.Cycles < 0 {
		return fmt.Errorf("cannot run %d cycles", c.Cycles)
	}
	if c.Init > size {
		return fmt.Errorf("cannot seed %d from pool of %d: %w", c.Init, size, screenmath.InsufficientPopulationErr)
	}
	if c.Batch > size {
		return fmt.Errorf("cannot query %d from pool of %d: %w", c.Batch, size, screenmath.InsufficientPopulationErr)
	}
	return nil
}
