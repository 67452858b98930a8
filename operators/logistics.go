package operators

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ****************************************
// Logistic
// ****************************************

type logistic int8

// Logistic returns an element-wise application of the logistic (or sigmoid) function. It is the
// default Activation.
func Logistic() logistic {
	return logistic(0)
}

func (t logistic) TypeString() string {
	return "logistic"
}

// the logistic function can be rephrased as 0.5 + 0.5*tanh(0.5*x), which doesn't overflow
func sigmoid(x float64) float64 {
	return 0.5 + 0.5*math.Tanh(0.5*x)
}

func (t logistic) Apply(z *mat.Dense) *mat.Dense {
	return elementwise(z, sigmoid)
}

func (t logistic) Deriv(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		s := sigmoid(x)
		return s * (1 - s)
	})
}

// ****************************************
// Tanh
// ****************************************

type tanh int8

// Tanh returns an element-wise application of the tanh() function.
func Tanh() tanh {
	return tanh(0)
}

func (t tanh) TypeString() string {
	return "tanh"
}

func (t tanh) Apply(z *mat.Dense) *mat.Dense {
	return elementwise(z, math.Tanh)
}

func (t tanh) Deriv(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		// it's cheaper to multiply it by itself than to use math.Pow()
		th := math.Tanh(x)
		return 1 - th*th
	})
}

// ****************************************
// Softsign
// ****************************************

type softsign int8

// Softsign (not to be confused with softplus) returns the Softsign activation function. It is
// similar in shape to Tanh and Logistic.
func Softsign() softsign {
	return softsign(0)
}

func (t softsign) TypeString() string {
	return "softsign"
}

func (t softsign) Apply(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		return x / (math.Abs(x) + 1)
	})
}

func (t softsign) Deriv(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		// 1 / (|x| + 1)^2
		d := math.Abs(x) + 1
		return 1 / (d * d)
	})
}

// ****************************************
// Softplus
// ****************************************

type softplus int8

// Softplus returns the smooth approximation of ReLU, ln(1 + e^x).
func Softplus() softplus {
	return softplus(0)
}

func (t softplus) TypeString() string {
	return "softplus"
}

func (t softplus) Apply(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		// ln(1 + e^x) = max(x, 0) + ln(1 + e^-|x|)
		return math.Max(x, 0) + math.Log1p(math.Exp(-math.Abs(x)))
	})
}

// the derivative of softplus is the logistic function
func (t softplus) Deriv(z *mat.Dense) *mat.Dense {
	return elementwise(z, sigmoid)
}
