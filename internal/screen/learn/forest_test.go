package learn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForest_Predict(t *testing.T) {

	forest := NewForest(Config{}.withDefaults())
	assertNotFitted(t, forest)

	x, y := separable(10)
	assert.NoError(t, forest.Fit(x, y))
	assertRanking(t, forest)
}

func TestForest_Update(t *testing.T) {

	forest := NewForest(Config{}.withDefaults())

	x, y := separable(5)
	assert.NoError(t, forest.Fit(x, y))
	assert.Equal(t, 10, forest.size())

	x, y = separable(3)
	assert.NoError(t, forest.Update(x, y))
	assert.Equal(t, 16, forest.size())
	assertRanking(t, forest)

	// a fresh fit drops the accumulated set
	x, y = separable(2)
	assert.NoError(t, forest.Fit(x, y))
	assert.Equal(t, 4, forest.size())
}

func TestForest_SingleClass(t *testing.T) {

	forest := NewForest(Config{}.withDefaults())

	// nothing active was ever taught, nothing scores active
	x := [][]float64{{0, 0, 1, 1}, {0, 1, 0, 1}, {1, 0, 1, 0}, {0, 0, 1, 0}}
	y := []float64{0, 0, 0, 0}
	assert.NoError(t, forest.Fit(x, y))

	score, err := forest.Predict(activeProbe)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, score)
}
