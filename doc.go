// Package nn provides a feed-forward multilayer network together with a mini-batch gradient
// descent trainer. The trainer supports momentum, regularization penalties, per-weight adaptive
// learning rates (neural local gain) and several early-stopping criteria.
//
// Creating Networks
//
// A Network is built from the dimension of its input and the number of neurons in each layer:
//
//		net, err := nn.New(2, []int{3, 1}, nil, nil)
//
// Passing nil activations gives every layer the default Activation, and a nil RNG uses the
// default weight initializer. Both defaults are set by importing the subpackages "operators"
// (logistic activation) and "initializers" (normal distribution, mean 0, sd 0.1):
//
//		import (
//			_ "github.com/mephistopheies/nn/initializers"
//			"github.com/mephistopheies/nn/operators"
//		)
//
// Each layer owns a weight matrix with one row per neuron. Column 0 of every row is the bias
// weight of that neuron; the remaining columns match the outputs of the previous layer (or the
// network inputs, for the first layer). The layout is validated by New, SetWeights,
// ComputeOutput and Train.
//
// Inference
//
// Inputs are gonum matrices with one example per row:
//
//		outs, err := net.ComputeOutput(inputs, true)
//
// The second argument prepends the column of ones that feeds the bias weights.
//
// Training
//
// Training uses TrainArgs as a proxy for optional arguments. Defaults returns the usual
// values, which can then be changed field by field:
//
//		args := nn.Defaults()
//		args.Goal = costfuncs.Euclidean()
//		args.BatchSize = 4
//		args.Penalty = penalties.L2()
//
//		hist, err := net.Train(inputs, targets, args)
//
// Train mutates the weights of the Network in place and returns the history of the training
// cost (and of the cross-validation cost, if cross-validation data were given). Stopping early
// is the normal way for training to end; History.Stop records the reason.
//
// Softmax output layers must be trained with TrainArgs.OutputError set to nn.Residual() and a
// cross-entropy Goal. The Deriv of operators.Softmax is only the diagonal of its Jacobian, so
// under the default ChainRule, or with any other Goal, the gradients are wrong.
//
// The learning rate can change over the course of training by setting
// TrainArgs.LearningRateSchedule, for example to a step schedule from "hyperparams".
//
// Strategies
//
// Activations, cost functions, penalties and gain update rules are small interface types.
// The subpackages "operators", "costfuncs", "penalties" and "gains" register their members by
// TypeString, so that they can also be looked up by name with GetActivation, GetCostFunction,
// GetPenalty and GetGainUpdate.
package nn
