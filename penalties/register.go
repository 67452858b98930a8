package penalties

import "github.com/mephistopheies/nn"

func init() {
	list := []interface{}{
		func() nn.Penalty { return ElasticNet(0.5) },
		func() nn.Penalty { return L1() },
		func() nn.Penalty { return L2() },
	}

	if err := nn.RegisterAll(list); err != nil {
		panic(err)
	}
}
