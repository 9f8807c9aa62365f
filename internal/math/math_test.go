package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {

	type test struct {
		input  float64
		output string
	}

	tests := map[string]test{
		"0": {
			input:  0,
			output: "0.00",
		},
		"-1": {
			input:  -1,
			output: "-1.00",
		},
		"+1": {
			input:  1,
			output: "1.00",
		},
		"5": {
			input:  1.5555,
			output: "1.56",
		},
		"4": {
			input:  1.4444,
			output: "1.44",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Format(tt.input)
			assert.Equal(t, tt.output, s)
		})
	}

}

func TestToFloat(t *testing.T) {

	ff := ToFloat([]int{0, 1, 5, -3})
	assert.Equal(t, []float64{0, 1, 5, -3}, ff)

	ii := ToInt([]float64{0.0, 1.2, 5.9, -3.1})
	assert.Equal(t, []int{0, 1, 5, -3}, ii)

}

func TestString(t *testing.T) {

	s := String(10)
	assert.Equal(t, 10, len(s))

	o := String(10)
	assert.NotEqual(t, s, o)

}
