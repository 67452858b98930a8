package gains

import "github.com/mephistopheies/nn"

func init() {
	list := []interface{}{
		func() nn.GainUpdate { return Additive() },
		func() nn.GainUpdate { return Multiplicative() },
	}

	if err := nn.RegisterAll(list); err != nil {
		panic(err)
	}

	nn.SetDefaultGainUpdate(Additive())
}
