package math

import (
	"math"
	"math/rand"
	"strconv"
)

// Format formats a float based on the given precision
func Format(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// O10 returns the order of the value on a decimal basis
// NOTE : this does not differentiate between values bigger or smaller than 1
func O10(f float64) int {
	log10 := math.Log10(math.Abs(f))
	return int(math.Abs(log10))
}

// ToInt converts a float slice to an int slice.
func ToInt(ff []float64) []int {
	ii := make([]int, len(ff))
	for i, f := range ff {
		ii[i] = int(f)
	}
	return ii
}

// ToFloat converts an int slice to a float slice.
func ToFloat(ii []int) []float64 {
	ff := make([]float64, len(ii))
	for f, i := range ii {
		ff[f] = float64(i)
	}
	return ff
}

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// String generates a random string of the given length.
func String(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}
