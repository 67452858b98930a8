package nn

import (
	"gonum.org/v1/gonum/mat"
)

// ComputeOutput returns the outputs of the Network for the given inputs, which have one example
// per row. If addBias is true, a column of ones is prepended to the inputs first; otherwise the
// inputs must already contain it as column 0.
//
// If the number of columns (with the bias) is not what the first layer expects, type
// DimensionMismatchError is returned. The result has one row per example and OutputSize()
// columns. ComputeOutput does not change the Network.
func (net *Network) ComputeOutput(inputs *mat.Dense, addBias bool) (*mat.Dense, error) {
	if inputs == nil || inputs.IsEmpty() {
		return nil, ErrNoData
	}

	x := inputs
	if addBias {
		x = withBias(inputs)
	}

	if err := net.checkInputs(x); err != nil {
		return nil, err
	}

	return net.evaluate(x), nil
}

// checkInputs checks that x (which includes the bias column) fits the first layer.
func (net *Network) checkInputs(x mat.Matrix) error {
	_, want := net.weights[0].Dims()
	if _, c := x.Dims(); c != want {
		return DimensionMismatchError{want, c, "input columns (including bias)"}
	}
	return nil
}

// evaluate assumes that x has already been checked
func (net *Network) evaluate(x *mat.Dense) *mat.Dense {
	for i, w := range net.weights {
		var z mat.Dense
		z.Mul(x, w.T())
		x = net.acts[i].Apply(&z)

		if i != len(net.weights)-1 {
			x = withBias(x)
		}
	}

	return x
}

// forward is evaluate, but it keeps the pre-activation values (zs) and the activations (fzs, without
// bias) of every layer.
func (net *Network) forward(x *mat.Dense) (zs, fzs []*mat.Dense) {
	zs = make([]*mat.Dense, len(net.weights))
	fzs = make([]*mat.Dense, len(net.weights))

	for i, w := range net.weights {
		z := new(mat.Dense)
		z.Mul(x, w.T())
		zs[i] = z
		fzs[i] = net.acts[i].Apply(z)

		if i != len(net.weights)-1 {
			x = withBias(fzs[i])
		}
	}

	return
}

// gradients runs the forward and backward passes over one batch and returns the gradient of the
// cost w.r.t. the weights of each layer. x includes the bias column. Gradients are divided by
// size, the configured batch size.
func (net *Network) gradients(x, y *mat.Dense, size int, goal CostFunction, outErr OutputError, derivs []Derivative) []*mat.Dense {
	zs, fzs := net.forward(x)
	last := len(net.weights) - 1

	grads := make([]*mat.Dense, len(net.weights))

	// dE/dz of the layer after the current one
	var delta *mat.Dense

	for i := last; i >= 0; i-- {
		if i == last {
			delta = outErr.Delta(goal.Deriv(y, fzs[last]), zs[last], derivs[last])
		} else {
			// bias activations are not propagated back, so the bias column of the next layer is
			// skipped
			r, c := net.weights[i+1].Dims()
			next := net.weights[i+1].Slice(0, r, 1, c)

			back := new(mat.Dense)
			back.Mul(delta, next)
			back.MulElem(back, derivs[i](zs[i]))
			delta = back
		}

		in := x
		if i != 0 {
			in = withBias(fzs[i-1])
		}

		g := new(mat.Dense)
		g.Mul(delta.T(), in)
		g.Scale(1/float64(size), g)
		grads[i] = g
	}

	return grads
}

type chainRule int8

// ChainRule returns the standard OutputError: the derivative of the cost w.r.t. the outputs,
// multiplied element-wise by the derivative of the output activation. It is the default.
func ChainRule() OutputError {
	return chainRule(0)
}

func (e chainRule) TypeString() string {
	return "chain-rule"
}

func (e chainRule) Delta(dCost, z *mat.Dense, deriv Derivative) *mat.Dense {
	d := new(mat.Dense)
	d.MulElem(dCost, deriv(z))
	return d
}

type residual int8

// Residual returns the OutputError for cost functions whose derivative is already given w.r.t.
// the pre-activation values of the output layer, such as cross-entropy combined with a softmax
// (or logistic) output. The derivative of the output activation is not applied.
func Residual() OutputError {
	return residual(0)
}

func (e residual) TypeString() string {
	return "residual"
}

func (e residual) Delta(dCost, z *mat.Dense, deriv Derivative) *mat.Dense {
	return mat.DenseCopyOf(dCost)
}
