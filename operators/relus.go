package operators

import (
	"gonum.org/v1/gonum/mat"
)

// ****************************************
// ReLU
// ****************************************

type relu int8

// ReLU returns the rectified linear unit, max(0, x).
func ReLU() relu {
	return relu(0)
}

func (t relu) TypeString() string {
	return "relu"
}

func (t relu) Apply(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	})
}

func (t relu) Deriv(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		if x > 0 {
			return 1
		}
		return 0
	})
}

// ****************************************
// Leaky ReLU
// ****************************************

type leakyReLU struct {
	α float64
}

// LeakyReLU returns a leaky ReLU, with the slope for negative inputs given by the default
// "leaky-relu-alpha" (see SetDefault). The slope can be changed with Alpha.
func LeakyReLU() *leakyReLU {
	return &leakyReLU{defaultValue["leaky-relu-alpha"]}
}

// Alpha sets the slope of the function for negative inputs, returning the same Activation.
func (t *leakyReLU) Alpha(α float64) *leakyReLU {
	t.α = α
	return t
}

func (t *leakyReLU) TypeString() string {
	return "leaky-relu"
}

func (t *leakyReLU) Apply(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		if x > 0 {
			return x
		}
		return t.α * x
	})
}

func (t *leakyReLU) Deriv(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(x float64) float64 {
		if x > 0 {
			return 1
		}
		return t.α
	})
}
