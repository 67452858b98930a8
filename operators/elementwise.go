package operators

import "gonum.org/v1/gonum/mat"

// elementwise returns a new matrix with f applied to every element of z
func elementwise(z *mat.Dense, f func(float64) float64) *mat.Dense {
	out := new(mat.Dense)
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, z)
	return out
}
