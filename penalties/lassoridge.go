package penalties

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// **********************************************
// L1 (Lasso)
// **********************************************

type l1 int8

// L1 returns the L1 norm of the weights, Σ|w|. Its derivative is sign(w).
//
// The strength of the penalty is set by nn.TrainArgs.RegularizationRate.
func L1() l1 {
	return l1(0)
}

// Lasso is a proxy for L1
func Lasso() l1 {
	return L1()
}

func (p l1) TypeString() string {
	return "l1-lasso"
}

func (p l1) Norm(w *mat.Dense) float64 {
	var sum float64
	r, c := w.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			sum += math.Abs(w.At(i, j))
		}
	}

	return sum
}

func (p l1) Deriv(w *mat.Dense) *mat.Dense {
	d := new(mat.Dense)
	d.Apply(func(_, _ int, v float64) float64 {
		if v == 0 {
			return 0
		}
		return math.Copysign(1, v)
	}, w)
	return d
}

// **********************************************
// L2 (Ridge)
// **********************************************

type l2 int8

// L2 returns the squared L2 norm of the weights, Σw². Its derivative is 2w.
//
// The strength of the penalty is set by nn.TrainArgs.RegularizationRate.
func L2() l2 {
	return l2(0)
}

// Ridge is a proxy for L2
func Ridge() l2 {
	return L2()
}

func (p l2) TypeString() string {
	return "l2-ridge"
}

func (p l2) Norm(w *mat.Dense) float64 {
	n := mat.Norm(w, 2)
	return n * n
}

func (p l2) Deriv(w *mat.Dense) *mat.Dense {
	d := new(mat.Dense)
	d.Scale(2, w)
	return d
}
