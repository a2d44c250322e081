package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSumAndMean(t *testing.T) {
	assert.Equal(t, 6.0, Sum([]float64{1, 2, 3}))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestStdDev(t *testing.T) {
	numbers := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	mean := Mean(numbers)
	assert.InDelta(t, 2.138, StdDev(numbers, mean), 0.001)
	assert.Equal(t, 0.0, StdDev([]float64{5}, 5))
}

func TestMinMax(t *testing.T) {
	min, max := MinMax([]float64{4, -1, 7, 2})
	assert.Equal(t, -1.0, min)
	assert.Equal(t, 7.0, max)

	min, max = MinMax(nil)
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 0.0, max)
}
