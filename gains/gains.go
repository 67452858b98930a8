// Package gains provides update rules for neural local gains, the per-weight multipliers of the
// learning rate enabled by nn.TrainArgs.Gain.
//
// Each rule is given the current gains and whether each weight's latest update agreed in sign
// with the one before; agreeing gains grow, disagreeing gains shrink, and all are kept within
// [min, max].
package gains

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type additive int8

// Additive returns the rule from Hinton's lecture notes: gains that agree have bonus added, and
// gains that disagree are multiplied by penalty (e.g. bonus = 0.05, penalty = 0.95). It is the
// default GainUpdate.
func Additive() additive {
	return additive(0)
}

func (a additive) TypeString() string {
	return "additive"
}

func (a additive) Update(gain *mat.Dense, agree []bool, bonus, penalty, min, max float64) *mat.Dense {
	return apply(gain, agree, min, max, func(g float64) float64 { return g + bonus }, func(g float64) float64 { return g * penalty })
}

type multiplicative int8

// Multiplicative returns the rule where gains that agree are multiplied by bonus (> 1), and gains
// that disagree are multiplied by penalty (< 1).
func Multiplicative() multiplicative {
	return multiplicative(0)
}

func (m multiplicative) TypeString() string {
	return "multiplicative"
}

func (m multiplicative) Update(gain *mat.Dense, agree []bool, bonus, penalty, min, max float64) *mat.Dense {
	return apply(gain, agree, min, max, func(g float64) float64 { return g * bonus }, func(g float64) float64 { return g * penalty })
}

// apply returns the new gains, with up applied where agree is true and down elsewhere, clamped to
// [min, max]. agree is row-major.
func apply(gain *mat.Dense, agree []bool, min, max float64, up, down func(float64) float64) *mat.Dense {
	_, c := gain.Dims()

	out := new(mat.Dense)
	out.Apply(func(i, j int, g float64) float64 {
		if agree[i*c+j] {
			g = up(g)
		} else {
			g = down(g)
		}

		return math.Min(max, math.Max(min, g))
	}, gain)
	return out
}
