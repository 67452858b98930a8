package nn

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// the difference between 1 and the next representable float64
var machineEpsilon = math.Nextafter(1, 2) - 1

// TrainArgs is used as a proxy for the optional arguments of Train. Defaults returns a TrainArgs
// with the usual values; Train uses every numeric field as it is given, because zero is a valid
// momentum, regularization rate, threshold and so on.
type TrainArgs struct {
	LearningRate float64

	// LearningRateSchedule, if not nil, replaces LearningRate: the rate of each (zero-based) epoch
	// is LearningRateSchedule.Value(epoch).
	LearningRateSchedule Schedule

	// MomentumRate is the fraction of the previous update to each weight that is added to the
	// current one.
	MomentumRate float64

	// RegularizationRate multiplies the derivative of Penalty in each update. It has no effect if
	// Penalty is nil.
	RegularizationRate float64

	// Penalty regularizes the weights. Its value is added to the cost of each epoch, and its
	// derivative (without the bias column) to each update. May be nil.
	Penalty Penalty

	// Gain enables neural local gains: adaptive learning rates for each weight. May be nil.
	Gain *NeuralLocalGain

	// BatchSize is the number of examples per update. 1 is online learning; any value <= 0, or
	// larger than the number of examples, uses the full dataset for every update.
	BatchSize int

	// MaxIter is the maximum number of epochs. It must be at least 1.
	MaxIter int

	// Training stops when the training (or cross-validation) cost falls to or below these.
	MinTrainCost, MinCVCost float64

	// SkipStopChecks is the number of epochs after which the stopping criteria are checked; the
	// first SkipStopChecks+1 epochs are always run.
	SkipStopChecks int

	// Training stops once (1 - StopThreshold) times the latest cost exceeds the lowest cost so
	// far. The cross-validation cost is used if there is cross-validation data, and the training
	// cost otherwise.
	StopThreshold float64

	// Training stops when the training cost changes by less than Tolerance in one epoch.
	Tolerance float64

	// Goal is the cost being minimized. If nil, the default (see SetDefaultCostFunction) is used.
	Goal CostFunction

	// OutputError determines the error of the output layer. If nil, ChainRule() is used.
	OutputError OutputError

	// Derivs can replace the derivatives of each layer's Activation. If not nil, it must have
	// one entry per layer; nil entries use the Activation's own Deriv.
	Derivs []Derivative

	// CVInputs and CVTargets are the cross-validation data. Either both or neither should be
	// given. The cross-validation cost is computed with CVGoal, or Goal if CVGoal is nil; it is
	// only used to decide when to stop.
	CVInputs, CVTargets *mat.Dense
	CVGoal              CostFunction

	// AddBias prepends a column of ones to the inputs (and cross-validation inputs). If false,
	// the inputs must already have it.
	AddBias bool

	// Shuffle is the source used to shuffle examples each epoch. If nil, the top-level functions
	// of math/rand are used.
	Shuffle *rand.Rand

	// If Verbose is true, a line is written to Logger after every epoch. A nil Logger uses
	// log.Default().
	Verbose bool
	Logger  *log.Logger

	// Update, if not nil, is called with the Result of every epoch.
	Update func(Result)
}

// Defaults returns the default TrainArgs:
//	LearningRate:       0.1
//	MomentumRate:       0.9
//	RegularizationRate: 0.1
//	MaxIter:            10000
//	MinTrainCost:       machine epsilon
//	MinCVCost:          machine epsilon
//	SkipStopChecks:     10
//	StopThreshold:      0.05
//	Tolerance:          machine epsilon
//	AddBias:            true
// and full-batch training with the default Goal.
func Defaults() TrainArgs {
	return TrainArgs{
		LearningRate:       0.1,
		MomentumRate:       0.9,
		RegularizationRate: 0.1,
		MaxIter:            10000,
		MinTrainCost:       machineEpsilon,
		MinCVCost:          machineEpsilon,
		SkipStopChecks:     10,
		StopThreshold:      0.05,
		Tolerance:          machineEpsilon,
		AddBias:            true,
	}
}

// trainer holds the state of a single call to Train
type trainer struct {
	net  *Network
	args TrainArgs

	// inputs include the bias column
	inputs, targets     *mat.Dense
	cvInputs, cvTargets *mat.Dense
	doCV                bool

	batchSize int
	derivs    []Derivative

	// the learning rate of the current epoch
	rate float64

	// the previous update applied to each layer
	lastDelta []*mat.Dense

	// neural local gains, nil if not enabled
	gain []*mat.Dense

	hist History
}

// Train trains the Network with mini-batch gradient descent, on inputs (one example per row) and
// the corresponding targets. The weights of the Network are changed in place.
//
// Each epoch, the examples are shuffled and split into batches of args.BatchSize. For each batch
// the gradients of the cost are found by backpropagation, and every weight w is updated by
//	delta = rate * (momentum * lastDelta + gradient + regRate * penalty'(w))
//	w -= delta
// where rate is the learning rate, multiplied by the weight's neural local gain if enabled. After
// all batches, the training cost (and cross-validation cost) is recorded and the stopping
// criteria are checked. Stopping early is not an error.
//
// Before anything is changed, the arguments are checked: mismatched dimensions give type
// DimensionMismatchError, inconsistent arguments give type ConfigurationError.
func (net *Network) Train(inputs, targets *mat.Dense, args TrainArgs) (History, error) {
	t, err := net.newTrainer(inputs, targets, args)
	if err != nil {
		return History{}, errors.Wrapf(err, "Can't train %v", net)
	}

	for epoch := 0; epoch < t.args.MaxIter; epoch++ {
		start := time.Now()

		t.rate = t.args.LearningRate
		if t.args.LearningRateSchedule != nil {
			t.rate = t.args.LearningRateSchedule.Value(epoch)
		}

		t.epoch()
		t.recordCosts()

		r := Result{
			Iteration: epoch,
			Cost:      t.hist.Cost[len(t.hist.Cost)-1],
			HasCV:     t.doCV,
			Elapsed:   time.Since(start),
		}
		if t.doCV {
			r.CVCost = t.hist.CVCost[len(t.hist.CVCost)-1]
		}

		t.report(r)

		if t.hist.Stop = t.stopReason(epoch); t.hist.Stop != StopNone {
			return t.hist, nil
		}
	}

	t.hist.Stop = StopMaxIter
	return t.hist, nil
}

func (net *Network) newTrainer(inputs, targets *mat.Dense, args TrainArgs) (*trainer, error) {
	if inputs == nil || inputs.IsEmpty() || targets == nil || targets.IsEmpty() {
		return nil, ErrNoData
	}

	if args.MaxIter < 1 {
		return nil, configErrorf("MaxIter must be >= 1 (%d)", args.MaxIter)
	}

	t := &trainer{net: net, args: args, rate: args.LearningRate}

	if t.args.Goal == nil {
		if defaultCost == nil {
			return nil, configErrorf("no Goal given: %v", ErrNoDefault)
		}
		t.args.Goal = defaultCost
	}
	if t.args.CVGoal == nil {
		t.args.CVGoal = t.args.Goal
	}
	if t.args.OutputError == nil {
		t.args.OutputError = ChainRule()
	}
	if t.args.Verbose && t.args.Logger == nil {
		t.args.Logger = log.Default()
	}

	if g := t.args.Gain; g != nil {
		if g.Min > g.Max {
			return nil, configErrorf("neural local gain min > max (%v > %v)", g.Min, g.Max)
		}
		if g.Rule == nil {
			if defaultGain == nil {
				return nil, configErrorf("no neural local gain Rule given: %v", ErrNoDefault)
			}

			gain := *g
			gain.Rule = defaultGain
			t.args.Gain = &gain
		}
	}

	t.derivs = make([]Derivative, len(net.weights))
	if args.Derivs != nil && len(args.Derivs) != len(net.weights) {
		return nil, configErrorf("number of derivatives does not match number of layers (%d != %d)", len(args.Derivs), len(net.weights))
	}
	for i := range t.derivs {
		if args.Derivs != nil && args.Derivs[i] != nil {
			t.derivs[i] = args.Derivs[i]
		} else {
			t.derivs[i] = net.acts[i].Deriv
		}
	}

	var err error
	if t.inputs, t.targets, err = net.prepareData(inputs, targets, t.args.AddBias, "training"); err != nil {
		return nil, err
	}

	if (args.CVInputs == nil) != (args.CVTargets == nil) {
		return nil, configErrorf("only one of CVInputs and CVTargets given")
	} else if args.CVInputs != nil {
		t.doCV = true
		if t.cvInputs, t.cvTargets, err = net.prepareData(args.CVInputs, args.CVTargets, t.args.AddBias, "cross-validation"); err != nil {
			return nil, err
		}
	}

	n, _ := t.inputs.Dims()
	t.batchSize = t.args.BatchSize
	if t.batchSize <= 0 || t.batchSize > n {
		t.batchSize = n
	}

	t.lastDelta = make([]*mat.Dense, len(net.weights))
	for i, w := range net.weights {
		r, c := w.Dims()
		t.lastDelta[i] = mat.NewDense(r, c, nil)
	}

	if t.args.Gain != nil {
		t.gain = make([]*mat.Dense, len(net.weights))
		for i, w := range net.weights {
			r, c := w.Dims()
			ones := make([]float64, r*c)
			for k := range ones {
				ones[k] = 1
			}
			t.gain[i] = mat.NewDense(r, c, ones)
		}
	}

	return t, nil
}

// prepareData checks the dimensions of a dataset against the Network, returning the inputs with
// the bias column if addBias is true.
func (net *Network) prepareData(inputs, targets *mat.Dense, addBias bool, what string) (*mat.Dense, *mat.Dense, error) {
	if inputs.IsEmpty() || targets.IsEmpty() {
		return nil, nil, errors.Wrapf(ErrNoData, "%s data", what)
	}

	ir, _ := inputs.Dims()
	tr, tc := targets.Dims()
	if ir != tr {
		return nil, nil, DimensionMismatchError{ir, tr, what + " target rows"}
	} else if tc != net.OutputSize() {
		return nil, nil, DimensionMismatchError{net.OutputSize(), tc, what + " target columns"}
	}

	x := inputs
	if addBias {
		x = withBias(inputs)
	}
	if err := net.checkInputs(x); err != nil {
		return nil, nil, errors.Wrapf(err, "%s data", what)
	}

	return x, targets, nil
}

// epoch runs a single pass over the shuffled training data
func (t *trainer) epoch() {
	n, _ := t.inputs.Dims()

	var idx []int
	if t.args.Shuffle != nil {
		idx = t.args.Shuffle.Perm(n)
	} else {
		idx = rand.Perm(n)
	}

	for start := 0; start < n; start += t.batchSize {
		end := start + t.batchSize
		if end > n {
			end = n
		}

		x := rows(t.inputs, idx[start:end])
		y := rows(t.targets, idx[start:end])

		grads := t.net.gradients(x, y, t.batchSize, t.args.Goal, t.args.OutputError, t.derivs)
		t.update(grads)
	}
}

// recordCosts appends the costs after an epoch to the history
func (t *trainer) recordCosts() {
	t.hist.Cost = append(t.hist.Cost, t.cost(t.args.Goal, t.inputs, t.targets))
	if t.doCV {
		t.hist.CVCost = append(t.hist.CVCost, t.cost(t.args.CVGoal, t.cvInputs, t.cvTargets))
	}
}

// cost is the average cost per example, plus the penalty of every layer. The penalty is not
// divided by the number of examples.
func (t *trainer) cost(goal CostFunction, x, y *mat.Dense) float64 {
	n, _ := x.Dims()
	c := floats.Sum(goal.Cost(y, t.net.evaluate(x))) / float64(n)

	if t.args.Penalty != nil {
		for _, w := range t.net.weights {
			c += t.args.Penalty.Norm(w)
		}
	}

	return c
}

func (t *trainer) report(r Result) {
	if t.args.Verbose {
		if r.HasCV {
			t.args.Logger.Printf("Iteration: %d (%v), train/cv cost: %v / %v", r.Iteration, r.Elapsed, r.Cost, r.CVCost)
		} else {
			t.args.Logger.Printf("Iteration: %d (%v), train cost = %v", r.Iteration, r.Elapsed, r.Cost)
		}
	}

	if t.args.Update != nil {
		t.args.Update(r)
	}
}
