package operators

import (
	"math"

	"github.com/mephistopheies/nn"
	"github.com/pkg/errors"
)

func init() {
	list := []interface{}{
		func() nn.Activation { return LeakyReLU() },
		func() nn.Activation { return Identity() },
		func() nn.Activation { return Logistic() },
		func() nn.Activation { return Softplus() },
		func() nn.Activation { return Softsign() },
		func() nn.Activation { return Softmax() },
		func() nn.Activation { return Tanh() },
		func() nn.Activation { return ReLU() },
	}

	if err := nn.RegisterAll(list); err != nil {
		panic(err)
	}

	nn.SetDefaultActivation(Logistic())
}

// default values, because 'default' is a keyword
var defaultValue = map[string]float64{
	"leaky-relu-alpha": 0.01,
}

// SetDefault sets the default values for certain Activations. The only value that can be set is
// "leaky-relu-alpha".
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
