package operators

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type softmax int8

// Softmax returns the softmax function, which is applied to each row (example) separately so that
// every row of the result sums to 1.
//
// Softmax is intended for the output layer together with costfuncs.CrossEntropy and
// nn.Residual(). Its Deriv gives only the diagonal of the Jacobian, s * (1 - s).
func Softmax() softmax {
	return softmax(0)
}

func (t softmax) TypeString() string {
	return "softmax"
}

func (t softmax) Apply(z *mat.Dense) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		row := out.RawRowView(i)
		mat.Row(row, i, z)

		// subtracting the max doesn't change the result, but keeps Exp from overflowing
		max := floats.Max(row)
		for j := range row {
			row[j] = math.Exp(row[j] - max)
		}

		floats.Scale(1/floats.Sum(row), row)
	}

	return out
}

func (t softmax) Deriv(z *mat.Dense) *mat.Dense {
	s := t.Apply(z)
	s.Apply(func(_, _ int, v float64) float64 { return v * (1 - v) }, s)
	return s
}
