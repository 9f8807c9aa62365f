package csv

import (
	"fmt"
	"os"

	"github.com/drakos74/free-screen/internal/model"
	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

type record struct {
	ID     string  `csv:"id"`
	Smiles string  `csv:"smiles"`
	Active float64 `csv:"active"`
}

// Source loads a compound library from a csv file
// with an id, smiles and active column.
type Source struct {
	path string
}

func NewSource(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Library() ([]model.Molecule, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("could not open library %s: %w", s.path, err)
	}
	defer file.Close()

	records := make([]*record, 0)
	if err := gocsv.UnmarshalFile(file, &records); err != nil {
		return nil, fmt.Errorf("could not parse library %s: %w", s.path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("library %s is empty", s.path)
	}

	mm := make([]model.Molecule, len(records))
	actives := 0
	for i, r := range records {
		if r.Active != 0 && r.Active != 1 {
			return nil, fmt.Errorf("invalid activity %f for %s", r.Active, r.ID)
		}
		if r.Active == 1 {
			actives++
		}
		mm[i] = model.Molecule{
			ID:        r.ID,
			Structure: r.Smiles,
			Active:    r.Active,
		}
	}

	log.Info().
		Str("file", s.path).
		Int("molecules", len(mm)).
		Int("actives", actives).
		Msg("loaded library")

	return mm, nil
}
