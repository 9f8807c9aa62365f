package learn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNet_Predict(t *testing.T) {

	net := NewNet(Config{Epochs: 50, Layers: []int{8}}.withDefaults())
	assertNotFitted(t, net)

	x, y := separable(10)
	assert.NoError(t, net.Fit(x, y))
	assertRanking(t, net)

	score, err := net.Predict(activeProbe)
	assert.NoError(t, err)
	// softmax output
	assert.True(t, score >= 0 && score <= 1)
}

func TestNet_Update(t *testing.T) {

	net := NewNet(Config{Epochs: 20, Layers: []int{8}}.withDefaults())

	// update without a constructed network has nothing to train
	assert.Error(t, net.Update([][]float64{{1, 1, 0, 0}}, []float64{1}))

	x, y := separable(5)
	assert.NoError(t, net.Fit(x, y))

	x, y = separable(5)
	assert.NoError(t, net.Update(x, y))
	assert.Equal(t, 20, net.data.size())
	assertRanking(t, net)
}
