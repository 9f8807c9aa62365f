package fingerprint

import (
	"fmt"

	spooky "github.com/dgryski/go-spooky"
	"github.com/drakos74/free-screen/internal/model"
)

// Fingerprinter encodes a structure notation into a fixed width binary vector.
type Fingerprinter interface {
	Vector(s string) []float64
	Width() int
}

// NGram folds hashed overlapping substrings into a binary vector.
// Collisions are accepted, they only blur the encoding.
type NGram struct {
	width int
	size  int
}

// NewNGram creates a new n-gram fingerprinter with the given vector width and gram size.
func NewNGram(width, size int) *NGram {
	if width <= 0 {
		width = 1024
	}
	if size <= 0 {
		size = 3
	}
	return &NGram{
		width: width,
		size:  size,
	}
}

// Width returns the fingerprint width.
func (ng *NGram) Width() int {
	return ng.width
}

// Vector encodes the given structure notation.
func (ng *NGram) Vector(s string) []float64 {
	vv := make([]float64, ng.width)
	if len(s) == 0 {
		return vv
	}
	if len(s) < ng.size {
		id := spooky.Hash64([]byte(s))
		vv[id%uint64(ng.width)] = 1
		return vv
	}
	for i := 0; i+ng.size <= len(s); i++ {
		id := spooky.Hash64([]byte(s[i : i+ng.size]))
		vv[id%uint64(ng.width)] = 1
	}
	return vv
}

// Pool encodes the given library into a screening pool.
func Pool(mm []model.Molecule, fp Fingerprinter) (*model.Pool, error) {
	vectors := make([][]float64, len(mm))
	labels := make([]float64, len(mm))
	for i, m := range mm {
		vectors[i] = fp.Vector(m.Structure)
		labels[i] = m.Active
	}
	pool, err := model.NewPool(vectors, labels)
	if err != nil {
		return nil, fmt.Errorf("could not build pool: %w", err)
	}
	return pool, nil
}
