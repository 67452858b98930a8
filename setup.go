package nn

import "gonum.org/v1/gonum/mat"

// New creates a Network that takes inputDim values per example and has len(layers) layers, the
// i'th of which has layers[i] neurons.
//
// acts gives the Activation of each layer. If acts is nil, every layer uses the default
// Activation (see SetDefaultActivation). Otherwise it must have exactly one non-nil entry per
// layer.
//
// The weights are filled, row by row, with numbers from rng; for each layer, rng is asked for
// neurons * (1 + width of the layer's input) values. If rng is nil, the default RNG is used
// (see SetDefaultRNG).
//
// All argument errors are of type ConfigurationError.
func New(inputDim int, layers []int, acts []Activation, rng RNG) (*Network, error) {
	if inputDim < 1 {
		return nil, configErrorf("input dimension must be >= 1 (%d)", inputDim)
	} else if len(layers) == 0 {
		return nil, configErrorf("network must have at least one layer")
	} else if acts != nil && len(acts) != len(layers) {
		return nil, configErrorf("number of activations does not match number of layers (%d != %d)", len(acts), len(layers))
	}

	for i, size := range layers {
		if size < 1 {
			return nil, configErrorf("layer %d must have >= 1 neurons (%d)", i, size)
		}
	}

	if acts == nil {
		if defaultAct == nil {
			return nil, configErrorf("no activations given: %v", ErrNoDefault)
		}

		acts = make([]Activation, len(layers))
		for i := range acts {
			acts[i] = defaultAct
		}
	} else {
		for i, a := range acts {
			if a == nil {
				return nil, configErrorf("activation of layer %d is nil", i)
			}
		}

		acts = append([]Activation(nil), acts...)
	}

	if rng == nil {
		if defaultRNG == nil {
			return nil, configErrorf("no RNG given: %v", ErrNoDefault)
		}
		rng = defaultRNG
	}

	net := &Network{
		weights: make([]*mat.Dense, len(layers)),
		acts:    acts,
	}

	for i, neurons := range layers {
		// weights for biases are included
		dim := 1 + inputDim
		if i > 0 {
			dim = 1 + layers[i-1]
		}

		ws := rng.Gen(neurons * dim)
		if len(ws) < neurons*dim {
			return nil, configErrorf("RNG returned %d values for layer %d, wanted %d", len(ws), i, neurons*dim)
		}

		net.weights[i] = mat.NewDense(neurons, dim, append([]float64(nil), ws[:neurons*dim]...))
	}

	return net, nil
}
