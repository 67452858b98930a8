package penalties

import (
	"gonum.org/v1/gonum/mat"
)

type elasticNet struct {
	α float64
}

// ElasticNet returns a mix of L1 and L2 regularization, α * L1 + (1 - α) * L2, where 0 ≤ α ≤ 1.
// α = 1 is functionally identical to L1 and α = 0 is equivalent to L2.
func ElasticNet(α float64) *elasticNet {
	return &elasticNet{α}
}

func (p *elasticNet) TypeString() string {
	return "elastic-net"
}

func (p *elasticNet) Norm(w *mat.Dense) float64 {
	return p.α*L1().Norm(w) + (1-p.α)*L2().Norm(w)
}

func (p *elasticNet) Deriv(w *mat.Dense) *mat.Dense {
	d := L1().Deriv(w)
	d.Scale(p.α, d)

	ridge := L2().Deriv(w)
	ridge.Scale(1-p.α, ridge)

	d.Add(d, ridge)
	return d
}
