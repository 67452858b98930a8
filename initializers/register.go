package initializers

import (
	"math"

	"github.com/mephistopheies/nn"
	"github.com/pkg/errors"
)

// default values, because 'default' is a keyword
var defaultValue = map[string]float64{
	"uniform-lower": -1,
	"uniform-upper": 1,
	"normal-mean":   0,
	"normal-sd":     0.1,
}

func init() {
	nn.SetDefaultRNG(Normal())
}

// SetDefault sets the default parameters of the RNGs created afterwards. The values that can be
// set are: "uniform-lower", "uniform-upper", "normal-mean" and "normal-sd".
//
// SetDefault does not change the RNG already used by nn.New; for that, call nn.SetDefaultRNG.
func SetDefault(name string, value float64) error {
	if _, ok := defaultValue[name]; !ok {
		return errors.Errorf("Value with name %q does not exist", name)
	} else if math.IsNaN(value) || math.IsInf(value, 0) {
		return errors.Errorf("Value is invalid (%v)", value)
	}

	defaultValue[name] = value
	return nil
}

// SetDefault_Lazy simply calls SetDefault, but panics instead of returning an error
func SetDefault_Lazy(name string, value float64) {
	if err := SetDefault(name, value); err != nil {
		panic(err)
	}
}
