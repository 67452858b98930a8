package costfuncs

import "gonum.org/v1/gonum/mat"

// perRow applies cost to each pair of rows of targets and outputs
func perRow(targets, outputs *mat.Dense, cost func(ts, ys []float64) float64) []float64 {
	r, _ := outputs.Dims()
	cs := make([]float64, r)
	for i := range cs {
		cs[i] = cost(targets.RawRowView(i), outputs.RawRowView(i))
	}

	return cs
}

// perElem returns the matrix of deriv applied to each pair of elements of targets and outputs
func perElem(targets, outputs *mat.Dense, deriv func(t, y float64) float64) *mat.Dense {
	d := new(mat.Dense)
	d.Apply(func(i, j int, y float64) float64 {
		return deriv(targets.At(i, j), y)
	}, outputs)
	return d
}

// width returns the number of outputs per example, as a float64
func width(m *mat.Dense) float64 {
	_, c := m.Dims()
	return float64(c)
}
