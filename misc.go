package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// withBias returns a copy of m with a column of ones prepended.
func withBias(m mat.Matrix) *mat.Dense {
	r, c := m.Dims()
	out := mat.NewDense(r, c+1, nil)
	for i := 0; i < r; i++ {
		out.Set(i, 0, 1)
	}

	out.Slice(0, r, 1, c+1).(*mat.Dense).Copy(m)
	return out
}

// rows returns a new matrix made of the given rows of m, in order.
func rows(m *mat.Dense, idx []int) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(idx), c, nil)
	for k, i := range idx {
		out.SetRow(k, m.RawRowView(i))
	}

	return out
}

// assumes len(outs) == len(targets)
func CorrectRound(outs, targets []float64) bool {
	for i := range outs {
		if math.Round(outs[i]) != targets[i] {
			return false
		}
	}

	return true
}

// just returns whether or not the largest value in each is the same
func CorrectHighest(outs, targets []float64) bool {
	return floats.MaxIdx(outs) == floats.MaxIdx(targets)
}

// Accuracy returns the fraction of rows of outs that isCorrect accepts, given the matching rows
// of targets. Both matrices must have the same shape.
func Accuracy(outs, targets *mat.Dense, isCorrect func([]float64, []float64) bool) float64 {
	r, _ := outs.Dims()
	hits := make([]float64, r)
	for i := range hits {
		if isCorrect(outs.RawRowView(i), targets.RawRowView(i)) {
			hits[i] = 1
		}
	}

	return stat.Mean(hits, nil)
}
