package costfuncs

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type euclidean int8

// Euclidean returns half the squared euclidean distance between the outputs and the targets of
// each example, 0.5 * |y - t|^2. Its derivative is simply y - t. It is the default CostFunction.
func Euclidean() euclidean {
	return euclidean(0)
}

func (e euclidean) TypeString() string {
	return "euclidean"
}

func (e euclidean) Cost(targets, outputs *mat.Dense) []float64 {
	return perRow(targets, outputs, func(ts, ys []float64) float64 {
		d := floats.Distance(ys, ts, 2)
		return 0.5 * d * d
	})
}

func (e euclidean) Deriv(targets, outputs *mat.Dense) *mat.Dense {
	d := new(mat.Dense)
	d.Sub(outputs, targets)
	return d
}
