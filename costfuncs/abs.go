package costfuncs

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type abs int8

// Abs returns the Absolute Value cost function: for each example, the average over the outputs of
// |y - t|.
func Abs() abs {
	return abs(0)
}

// L1 is a proxy for Abs
func L1() abs {
	return Abs()
}

func (a abs) TypeString() string {
	return "abs"
}

func (a abs) Cost(targets, outputs *mat.Dense) []float64 {
	n := width(outputs)
	return perRow(targets, outputs, func(ts, ys []float64) float64 {
		var sum float64
		for i := range ys {
			sum += math.Abs(ys[i] - ts[i])
		}

		return sum / n
	})
}

func (a abs) Deriv(targets, outputs *mat.Dense) *mat.Dense {
	n := width(outputs)
	return perElem(targets, outputs, func(t, y float64) float64 {
		if y == t {
			return 0
		}
		return math.Copysign(1, y-t) / n
	})
}
