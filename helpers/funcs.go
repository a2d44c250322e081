package helpers

import "math"

func Sum(numbers []float64) (total float64) {
	for _, x := range numbers {
		total += x
	}
	return total
}

func Mean(numbers []float64) float64 {
	if len(numbers) == 0 {
		return 0
	}
	return Sum(numbers) / float64(len(numbers))
}

func StdDev(numbers []float64, mean float64) float64 {
	if len(numbers) < 2 {
		return 0
	}
	total := 0.0
	for _, number := range numbers {
		total += math.Pow(number-mean, 2)
	}
	variance := total / float64(len(numbers)-1)
	return math.Sqrt(variance)
}

// MinMax returns the lowest and highest value of the list, or (0, 0) for an
// empty list
func MinMax(numbers []float64) (float64, float64) {
	if len(numbers) == 0 {
		return 0.0, 0.0
	}
	min := numbers[0]
	max := numbers[0]
	for _, x := range numbers {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	return min, max
}
