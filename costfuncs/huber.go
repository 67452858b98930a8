package costfuncs

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type huber struct {
	δ float64
}

// Huber returns the Huber Loss Function. δ controls the bounds of the transition between MSE and
// Absolute Value; it is "huber-delta" (see SetDefault) unless changed by Delta. Like MSE, the
// cost of each example is averaged over its outputs.
func Huber() *huber {
	return &huber{defaultValue["huber-delta"]}
}

// Delta sets δ, returning the same CostFunction.
func (h *huber) Delta(δ float64) *huber {
	h.δ = δ
	return h
}

func (h *huber) TypeString() string {
	return "huber"
}

func (h *huber) Cost(targets, outputs *mat.Dense) []float64 {
	n := width(outputs)
	return perRow(targets, outputs, func(ts, ys []float64) float64 {
		var sum float64
		for i := range ys {
			d := math.Abs(ys[i] - ts[i])
			if d <= h.δ {
				sum += 0.5 * d * d // faster than math.Pow
			} else {
				sum += h.δ*d - 0.5*h.δ*h.δ
			}
		}

		return sum / n
	})
}

func (h *huber) Deriv(targets, outputs *mat.Dense) *mat.Dense {
	n := width(outputs)
	return perElem(targets, outputs, func(t, y float64) float64 {
		d := y - t
		if !(d < -h.δ || d > h.δ) { // d >= -h.δ && d <= h.δ
			return d / n
		}
		return h.δ * math.Copysign(1, d) / n
	})
}
