package local

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/drakos74/free-screen/internal/model"
	"github.com/rs/zerolog/log"
)

var fragments = []string{
	"C", "CC", "CCC", "N", "O", "CO", "Cl", "F", "S",
	"c1ccccc1", "C1CCCCC1", "c1ccncc1", "C(=O)O", "C(C)C",
}

// motif is the substructure all synthetic actives share.
const motif = "C(=O)Nc1ccccc1"

// Source generates a synthetic compound library.
// Actives carry a common substructure, so their fingerprints correlate.
// The same seed yields the same library.
type Source struct {
	size    int
	hitRate float64
	rnd     *rand.Rand
}

func NewSource(size int, hitRate float64, seed int64) *Source {
	return &Source{
		size:    size,
		hitRate: hitRate,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

func (s *Source) Library() ([]model.Molecule, error) {
	if s.size < 1 {
		return nil, fmt.Errorf("cannot generate library of %d", s.size)
	}

	mm := make([]model.Molecule, s.size)
	actives := 0
	for i := 0; i < s.size; i++ {
		sb := new(strings.Builder)
		parts := 3 + s.rnd.Intn(4)
		for p := 0; p < parts; p++ {
			sb.WriteString(fragments[s.rnd.Intn(len(fragments))])
		}
		active := 0.0
		if s.rnd.Float64() < s.hitRate {
			sb.WriteString(motif)
			active = 1
			actives++
		}
		mm[i] = model.Molecule{
			ID:        fmt.Sprintf("syn-%06d", i),
			Structure: sb.String(),
			Active:    active,
		}
	}

	log.Info().
		Int("molecules", len(mm)).
		Int("actives", actives).
		Msg("generated library")

	return mm, nil
}
