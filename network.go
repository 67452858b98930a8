package nn

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// InputSize returns the number of values per example the Network expects, without the bias.
func (net *Network) InputSize() int {
	_, c := net.weights[0].Dims()
	return c - 1
}

// OutputSize returns the number of values per example the Network produces.
func (net *Network) OutputSize() int {
	r, _ := net.weights[len(net.weights)-1].Dims()
	return r
}

// NumLayers returns the number of layers in the Network.
func (net *Network) NumLayers() int {
	return len(net.weights)
}

// Weights returns a copy of the weights of the given layer. Column 0 holds the bias weights.
// Weights will panic if the layer is out of range.
func (net *Network) Weights(layer int) *mat.Dense {
	return mat.DenseCopyOf(net.weights[layer])
}

// SetWeights replaces the weights of the given layer with a copy of w. If w does not have the
// same shape as the current weights, type DimensionMismatchError is returned and nothing is
// changed.
func (net *Network) SetWeights(layer int, w mat.Matrix) error {
	if layer < 0 || layer >= len(net.weights) {
		return configErrorf("layer %d out of range [0, %d)", layer, len(net.weights))
	}

	r, c := net.weights[layer].Dims()
	wr, wc := w.Dims()
	if wr != r {
		return DimensionMismatchError{r, wr, "rows of layer " + strconv.Itoa(layer) + " weights"}
	} else if wc != c {
		return DimensionMismatchError{c, wc, "columns of layer " + strconv.Itoa(layer) + " weights"}
	}

	net.weights[layer].Copy(w)
	return nil
}

// Activations returns the Activation of each layer. The returned slice is a copy.
func (net *Network) Activations() []Activation {
	return append([]Activation(nil), net.acts...)
}

// String gives the shape of the Network, e.g. "MLP: 2 -> 3 -> 1"
func (net *Network) String() string {
	sizes := make([]string, len(net.weights))
	for i, w := range net.weights {
		r, _ := w.Dims()
		sizes[i] = strconv.Itoa(r)
	}

	return "MLP: " + strconv.Itoa(net.InputSize()) + " -> " + strings.Join(sizes, " -> ")
}
