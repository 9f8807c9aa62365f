package query

import (
	"math/rand"

	screenmath "github.com/drakos74/free-screen/internal/math"
	"github.com/drakos74/free-screen/internal/model"
	"github.com/drakos74/free-screen/internal/screen"
)

// Random picks uniformly and ignores the model.
type Random struct {
	rnd *rand.Rand
}

func NewRandom(rnd *rand.Rand) *Random {
	return &Random{rnd: rnd}
}

func (r *Random) Select(m screen.Model, pool *model.Pool, n int) ([]int, error) {
	return screenmath.Sample(r.rnd, n, pool.Size())
}
