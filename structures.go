package nn

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

// Network is a feed-forward multilayer network. It owns one weight matrix per layer and the
// Activation of each layer.
//
// A Network is not safe for concurrent use while it is being trained; ComputeOutput on its own
// does not modify the Network.
type Network struct {
	// weights[i] has one row per neuron of layer i. Column 0 of each row is the bias weight; the
	// remaining columns correspond to the outputs of layer i-1 (or the inputs, for i == 0), so
	// that weights[i].Cols == 1 + weights[i-1].Rows.
	weights []*mat.Dense

	acts []Activation
}

// NeuralLocalGain enables per-weight adaptive learning rates. Every weight has its own gain,
// starting at 1, which multiplies the learning rate. After each batch, the gains are changed by
// Rule: they grow (by Bonus, up to Max) for weights whose update kept the same sign as the
// previous one, and shrink (by Penalty, down to Min) otherwise.
type NeuralLocalGain struct {
	Bonus, Penalty float64
	Min, Max       float64

	// Rule is the GainUpdate to use. If nil, the default set by the package "gains" is used.
	Rule GainUpdate
}

// StopReason indicates which criterion ended a training run.
type StopReason int8

const (
	// StopNone means that training has not stopped; it is never found in a returned History
	StopNone StopReason = iota
	StopMaxIter
	StopStagnation
	StopMinTrainCost
	StopMinCVCost
	StopTolerance
)

func (r StopReason) String() string {
	switch r {
	case StopMaxIter:
		return "max-iter"
	case StopStagnation:
		return "stagnation"
	case StopMinTrainCost:
		return "min-train-cost"
	case StopMinCVCost:
		return "min-cv-cost"
	case StopTolerance:
		return "tolerance"
	}

	return "none"
}

// History is the result of a training run.
type History struct {
	// Cost is the training cost after each epoch
	Cost []float64

	// CVCost is the cross-validation cost after each epoch. It has the same length as Cost if
	// cross-validation data were given to Train, and is nil otherwise.
	CVCost []float64

	Stop StopReason
}

// A wrapper for sending back the progress of training after each epoch
type Result struct {
	// The (zero-based) epoch the Result was produced after
	Iteration int

	Cost float64

	// Only meaningful if HasCV is true
	CVCost float64
	HasCV  bool

	// Time taken by the epoch, including cost evaluation
	Elapsed time.Duration
}
