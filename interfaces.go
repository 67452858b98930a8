package nn

import "gonum.org/v1/gonum/mat"

// Activation is applied to the pre-activation values of a layer, given as a matrix with one row
// per example and one column per neuron. Both methods must return a new matrix of the same shape
// and must not modify z.
//
// Most Activations act element-wise; some (such as softmax) act on each row as a whole.
type Activation interface {
	// TypeString returns the name the Activation is registered under, e.g. "logistic".
	TypeString() string

	// Apply returns f(z).
	Apply(z *mat.Dense) *mat.Dense

	// Deriv returns f'(z), used in the chain rule during training.
	Deriv(z *mat.Dense) *mat.Dense
}

// Derivative is the derivative of an Activation, w.r.t. its pre-activation values. The Deriv
// method of any Activation can be used as a Derivative.
type Derivative func(z *mat.Dense) *mat.Dense

// CostFunction is the goal that training minimizes. targets and outputs always have the same
// shape: one row per example.
type CostFunction interface {
	TypeString() string

	// Cost returns the cost of each example (row).
	Cost(targets, outputs *mat.Dense) []float64

	// Deriv returns the partial derivative of the cost of each example w.r.t. each of the
	// outputs. The result has the same shape as outputs.
	Deriv(targets, outputs *mat.Dense) *mat.Dense
}

// Penalty is a regularization norm over the weights of a single layer. Column 0 of the result
// of Deriv (the bias weights) is ignored by the trainer.
type Penalty interface {
	TypeString() string

	// Norm returns the value of the penalty for the given weights.
	Norm(w *mat.Dense) float64

	// Deriv returns the gradient of Norm, in the same shape as w.
	Deriv(w *mat.Dense) *mat.Dense
}

// GainUpdate is the rule by which the neural local gains (per-weight multipliers of the
// learning rate) change after each batch.
type GainUpdate interface {
	TypeString() string

	// Update returns the new gains, given the current ones and whether each weight's update
	// agreed in sign with its previous update. agree is stored row-major, with the same number
	// of elements as gain. Agreement should increase the gain by bonus up to max; disagreement
	// should decrease it by penalty down to min.
	Update(gain *mat.Dense, agree []bool, bonus, penalty, min, max float64) *mat.Dense
}

// OutputError determines the error of the output layer w.r.t. its pre-activation values, given
// the derivative of the cost w.r.t. the outputs, the pre-activation values and the derivative of
// the output activation.
type OutputError interface {
	TypeString() string
	Delta(dCost, z *mat.Dense, deriv Derivative) *mat.Dense
}

// Schedule gives the value of a hyperparameter for each epoch of training. The package
// "hyperparams" provides some.
type Schedule interface {
	TypeString() string
	Value(epoch int) float64
}

// RNG supplies the random numbers used to initialize the weights of a Network.
type RNG interface {
	// Gen returns n random numbers.
	Gen(n int) []float64
}

// RNGFunc allows a plain function to be used as an RNG.
type RNGFunc func(n int) []float64

// Gen is the implementation of RNG for RNGFunc
func (f RNGFunc) Gen(n int) []float64 {
	return f(n)
}
