package costfuncs

import (
	"gonum.org/v1/gonum/mat"
)

// ****************************************
// Cross-entropy
// ****************************************

type crossEntropy int8

// CrossEntropy returns the categorical cross-entropy, -Σ t * ln(y), for outputs that are
// probability distributions (i.e. from a softmax layer).
//
// Its Deriv is y - t: the derivative w.r.t. the pre-activation values of a softmax output layer,
// not w.r.t. the outputs. It must be used with nn.Residual() as the OutputError, so that the
// derivative of the activation is not applied a second time.
func CrossEntropy() crossEntropy {
	return crossEntropy(0)
}

// NegativeLog is a proxy for CrossEntropy
func NegativeLog() crossEntropy {
	return CrossEntropy()
}

func (c crossEntropy) TypeString() string {
	return "cross-entropy"
}

func (c crossEntropy) Cost(targets, outputs *mat.Dense) []float64 {
	return perRow(targets, outputs, func(ts, ys []float64) float64 {
		var sum float64
		for i := range ys {
			sum -= ts[i] * safeLog(ys[i])
		}

		return sum
	})
}

func (c crossEntropy) Deriv(targets, outputs *mat.Dense) *mat.Dense {
	return residual(targets, outputs)
}

// ****************************************
// Binary cross-entropy
// ****************************************

type binaryCrossEntropy int8

// BinaryCrossEntropy returns the cross-entropy of independent binary outputs,
// -Σ t * ln(y) + (1 - t) * ln(1 - y), for logistic output layers.
//
// As with CrossEntropy, its Deriv is y - t, w.r.t. the pre-activation values of a logistic
// output layer, and it must be used with nn.Residual().
func BinaryCrossEntropy() binaryCrossEntropy {
	return binaryCrossEntropy(0)
}

func (c binaryCrossEntropy) TypeString() string {
	return "binary-cross-entropy"
}

func (c binaryCrossEntropy) Cost(targets, outputs *mat.Dense) []float64 {
	return perRow(targets, outputs, func(ts, ys []float64) float64 {
		var sum float64
		for i := range ys {
			sum -= ts[i]*safeLog(ys[i]) + (1-ts[i])*safeLog(1-ys[i])
		}

		return sum
	})
}

func (c binaryCrossEntropy) Deriv(targets, outputs *mat.Dense) *mat.Dense {
	return residual(targets, outputs)
}

func residual(targets, outputs *mat.Dense) *mat.Dense {
	d := new(mat.Dense)
	d.Sub(outputs, targets)
	return d
}
