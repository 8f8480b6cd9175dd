package util

import (
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/stat"
)

type Number interface {
	constraints.Integer | constraints.Float
}

func Sum[T Number](list []T) T {
	var sum T
	for _, val := range list {
		sum += val
	}
	return sum
}

// Average returns the arithmetic mean of list, or 0 when list is empty.
func Average[T Number](list []T) float64 {
	if len(list) == 0 {
		return 0
	}
	values := make([]float64, len(list))
	for i, val := range list {
		values[i] = float64(val)
	}
	return stat.Mean(values, nil)
}
