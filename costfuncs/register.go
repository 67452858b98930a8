package costfuncs

import (
	"math"

	"github.com/mephistopheies/nn"
	"github.com/pkg/errors"
)

func init() {
	list := []interface{}{
		func() nn.CostFunction { return Euclidean() },
		func() nn.CostFunction { return MSE() },
		func() nn.CostFunction { return Abs() },
		func() nn.CostFunction { return Huber() },
		func() nn.CostFunction { return CrossEntropy() },
		func() nn.CostFunction { return BinaryCrossEntropy() },
	}

	if err := nn.RegisterAll(list); err != nil {
		panic(err)
	}

	nn.SetDefaultCostFunction(Euclidean())
}

// default values, because 'default' is a keyword
var defaultValue = map[string]float64{
	"huber-delta": 1,
}

// SetDefault sets the default values for certain CostFunctions. The only value that can be set
// is "huber-delta".
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// logFloor keeps the logarithms in the cross-entropies finite
const logFloor float64 = 1e-15

func safeLog(x float64) float64 {
	return math.Log(math.Max(x, logFloor))
}
