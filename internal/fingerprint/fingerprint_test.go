package fingerprint

import (
	"testing"

	"github.com/drakos74/free-screen/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNGram_Vector(t *testing.T) {

	ng := NewNGram(256, 3)

	type test struct {
		input string
	}

	tests := map[string]test{
		"empty":      {input: ""},
		"short":      {input: "CO"},
		"aspirin":    {input: "CC(=O)OC1=CC=CC=C1C(=O)O"},
		"caffeine":   {input: "CN1C=NC2=C1C(=O)N(C(=O)N2C)C"},
		"ibuprofen":  {input: "CC(C)CC1=CC=C(C=C1)C(C)C(=O)O"},
		"long-chain": {input: "CCCCCCCCCCCCCCCCCCCCCCCCCCCCCC"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v := ng.Vector(tt.input)
			assert.Equal(t, 256, len(v))
			for _, b := range v {
				assert.True(t, b == 0 || b == 1)
			}
			// encoding is a pure function of the input
			assert.Equal(t, v, ng.Vector(tt.input))
		})
	}

}

func TestNGram_Distinct(t *testing.T) {

	ng := NewNGram(1024, 3)

	a := ng.Vector("CC(=O)OC1=CC=CC=C1C(=O)O")
	b := ng.Vector("CN1C=NC2=C1C(=O)N(C(=O)N2C)C")

	assert.NotEqual(t, a, b)

	// empty input carries no bits
	assert.Equal(t, make([]float64, 1024), ng.Vector(""))

}

func TestNGram_Defaults(t *testing.T) {

	ng := NewNGram(0, 0)
	assert.Equal(t, 1024, ng.Width())
	assert.Equal(t, 1024, len(ng.Vector("CCO")))

}

func TestPool(t *testing.T) {

	mm := []model.Molecule{
		{ID: "m-1", Structure: "CC(=O)OC1=CC=CC=C1C(=O)O", Active: 1},
		{ID: "m-2", Structure: "CN1C=NC2=C1C(=O)N(C(=O)N2C)C", Active: 0},
		{ID: "m-3", Structure: "CC(C)CC1=CC=C(C=C1)C(C)C(=O)O", Active: 0},
	}

	pool, err := Pool(mm, NewNGram(128, 3))
	assert.NoError(t, err)
	assert.Equal(t, 3, pool.Size())
	assert.Equal(t, 128, pool.Width())
	assert.Equal(t, 1, pool.Positives())

	// malformed labels surface as pool construction errors
	mm[1].Active = 0.7
	_, err = Pool(mm, NewNGram(128, 3))
	assert.Error(t, err)

}
