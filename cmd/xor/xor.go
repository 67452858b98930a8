// Command xor trains a small network on the XOR problem and prints its outputs. The activations,
// cost function, penalty and gain rule are chosen by their registered names.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/mephistopheies/nn"
	_ "github.com/mephistopheies/nn/costfuncs"
	_ "github.com/mephistopheies/nn/gains"
	"github.com/mephistopheies/nn/hyperparams"
	"github.com/mephistopheies/nn/initializers"
	_ "github.com/mephistopheies/nn/operators"
	_ "github.com/mephistopheies/nn/penalties"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	hidden       = flag.String("hidden", "3", "comma-separated sizes of the hidden layers")
	hiddenAct    = flag.String("hidden-act", "tanh", "activation of the hidden layers")
	outputAct    = flag.String("output-act", "logistic", "activation of the output layer")
	goal         = flag.String("cost", "euclidean", "cost function")
	residual     = flag.Bool("residual", false, "skip the output activation derivative (for the cross-entropies)")
	penalty      = flag.String("penalty", "", "regularization penalty, empty for none")
	gain         = flag.String("gain", "", "neural local gain rule, empty for none")
	learningRate = flag.Float64("lr", 0.5, "learning rate")
	lrStep       = flag.Int("lr-step", 0, "epoch after which the learning rate is divided by 10; 0 for never")
	momentum     = flag.Float64("momentum", 0.9, "momentum rate")
	regRate      = flag.Float64("reg", 0.001, "regularization rate")
	batchSize    = flag.Int("batch", 4, "batch size; 1 is online, 4 is full batch")
	maxIter      = flag.Int("max-iter", 5000, "maximum number of epochs")
	seed         = flag.Int64("seed", 1, "seed for the weights and the shuffling")
	verbose      = flag.Bool("v", false, "log the cost of every epoch")
)

func main() {
	flag.Parse()

	logger := log.New(os.Stderr, "xor: ", log.LstdFlags)
	if err := run(logger); err != nil {
		logger.Fatal(err)
	}
}

func run(logger *log.Logger) error {
	if *maxIter < 1 {
		return errors.Errorf("-max-iter must be at least 1 (%d)", *maxIter)
	}

	sizes, err := layerSizes(*hidden)
	if err != nil {
		return err
	}

	acts := make([]nn.Activation, len(sizes))
	for i := range acts {
		name := *hiddenAct
		if i == len(acts)-1 {
			name = *outputAct
		}

		if acts[i], err = nn.GetActivation(name); err != nil {
			return err
		}
	}

	net, err := nn.New(2, sizes, acts, initializers.Normal().SD(0.5).Seed(*seed))
	if err != nil {
		return errors.Wrapf(err, "Failed to create network")
	}

	args := nn.Defaults()
	args.LearningRate = *learningRate
	if *lrStep > 0 {
		args.LearningRateSchedule = hyperparams.Step(*learningRate).Add(*lrStep, *learningRate/10)
	}
	args.MomentumRate = *momentum
	args.RegularizationRate = *regRate
	args.BatchSize = *batchSize
	args.MaxIter = *maxIter
	args.Shuffle = rand.New(rand.NewSource(*seed))
	args.Verbose = *verbose
	args.Logger = logger

	if args.Goal, err = nn.GetCostFunction(*goal); err != nil {
		return err
	}
	if *residual {
		args.OutputError = nn.Residual()
	}
	if *penalty != "" {
		if args.Penalty, err = nn.GetPenalty(*penalty); err != nil {
			return err
		}
	}
	if *gain != "" {
		rule, err := nn.GetGainUpdate(*gain)
		if err != nil {
			return err
		}
		args.Gain = &nn.NeuralLocalGain{Bonus: 0.05, Penalty: 0.95, Min: 0.1, Max: 10, Rule: rule}
	}

	inputs := mat.NewDense(4, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		1, 1,
	})
	targets := mat.NewDense(4, 1, []float64{0, 1, 1, 0})

	fmt.Printf("Training %v...\n", net)
	hist, err := net.Train(inputs, targets, args)
	if err != nil {
		return err
	}
	if n := len(hist.Cost); n > 0 {
		fmt.Printf("Stopped after %d epochs (%v), cost %v\n", n, hist.Stop, hist.Cost[n-1])
	}

	outs, err := net.ComputeOutput(inputs, true)
	if err != nil {
		return err
	}

	for i := 0; i < 4; i++ {
		fmt.Printf("%v XOR %v = %.4f\n", inputs.At(i, 0), inputs.At(i, 1), outs.At(i, 0))
	}
	fmt.Printf("Accuracy: %.2f\n", nn.Accuracy(outs, targets, nn.CorrectRound))

	return nil
}

// layerSizes parses the hidden layer sizes, adding the single output neuron
func layerSizes(s string) ([]int, error) {
	var sizes []int
	if s != "" {
		for _, f := range strings.Split(s, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, errors.Wrapf(err, "Bad hidden layer size %q", f)
			}
			sizes = append(sizes, n)
		}
	}

	return append(sizes, 1), nil
}
