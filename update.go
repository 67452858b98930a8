package nn

import "gonum.org/v1/gonum/mat"

// update applies one step to the weights of every layer, given their gradients.
func (t *trainer) update(grads []*mat.Dense) {
	for i, w := range t.net.weights {
		delta := new(mat.Dense)
		delta.Scale(t.args.MomentumRate, t.lastDelta[i])
		delta.Add(delta, grads[i])

		if t.args.Penalty != nil {
			delta.Add(delta, t.penalty(w))
		}

		if t.gain != nil {
			delta.MulElem(delta, t.gain[i])
		}
		delta.Scale(t.rate, delta)

		if t.gain != nil {
			g := t.args.Gain
			agree := agreement(delta, t.lastDelta[i])
			t.gain[i] = g.Rule.Update(t.gain[i], agree, g.Bonus, g.Penalty, g.Min, g.Max)
		}

		w.Sub(w, delta)
		t.lastDelta[i] = delta
	}
}

// penalty returns the regularization term of an update: the derivative of the Penalty, scaled by
// the regularization rate, with the bias column set to zero.
func (t *trainer) penalty(w *mat.Dense) *mat.Dense {
	p := mat.DenseCopyOf(t.args.Penalty.Deriv(w))

	r, _ := p.Dims()
	for i := 0; i < r; i++ {
		p.Set(i, 0, 0)
	}

	p.Scale(t.args.RegularizationRate, p)
	return p
}

// agreement returns, row-major, whether each element of a has the same sign as the matching
// element of b. Zeros agree with everything.
func agreement(a, b *mat.Dense) []bool {
	r, c := a.Dims()
	agree := make([]bool, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			agree = append(agree, a.At(i, j)*b.At(i, j) >= 0)
		}
	}

	return agree
}
