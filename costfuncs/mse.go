package costfuncs

import (
	"gonum.org/v1/gonum/mat"
)

type mse int8

// MSE returns the mean squared error cost function: for each example, the average over the outputs
// of 0.5 * (y - t)^2.
func MSE() mse {
	return mse(0)
}

// L2 is a proxy for MSE
func L2() mse {
	return MSE()
}

func (m mse) TypeString() string {
	return "mse"
}

func (m mse) Cost(targets, outputs *mat.Dense) []float64 {
	n := width(outputs)
	return perRow(targets, outputs, func(ts, ys []float64) float64 {
		var sum float64
		for i := range ys {
			d := ys[i] - ts[i]
			sum += 0.5 * d * d
		}

		return sum / n
	})
}

func (m mse) Deriv(targets, outputs *mat.Dense) *mat.Dense {
	n := width(outputs)
	return perElem(targets, outputs, func(t, y float64) float64 {
		return (y - t) / n
	})
}
