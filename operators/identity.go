package operators

import (
	"gonum.org/v1/gonum/mat"
)

type identity int8

// Identity returns an Activation that returns its inputs
func Identity() identity {
	return identity(0)
}

func (t identity) TypeString() string {
	return "identity"
}

func (t identity) Apply(z *mat.Dense) *mat.Dense {
	return mat.DenseCopyOf(z)
}

func (t identity) Deriv(z *mat.Dense) *mat.Dense {
	return elementwise(z, func(float64) float64 { return 1 })
}
