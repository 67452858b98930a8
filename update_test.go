package nn

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// adds bonus or multiplies by penalty, and remembers what it was given
type testGainRule struct {
	agree *[]bool
}

func (testGainRule) TypeString() string { return "test-gain" }

func (r testGainRule) Update(gain *mat.Dense, agree []bool, bonus, penalty, min, max float64) *mat.Dense {
	if r.agree != nil {
		*r.agree = append([]bool(nil), agree...)
	}

	_, c := gain.Dims()
	out := new(mat.Dense)
	out.Apply(func(i, j int, g float64) float64 {
		if agree[i*c+j] {
			g += bonus
		} else {
			g *= penalty
		}
		return math.Min(max, math.Max(min, g))
	}, gain)
	return out
}

// newTestTrainer sets up a trainer for a 1 -> 1 network with weights [0.1, -0.2]
func newTestTrainer(t *testing.T, args TrainArgs) *trainer {
	t.Helper()

	net := mustNew(t, 1, []int{1}, []Activation{testIdentity{}}, seqRNG())
	tr, err := net.newTrainer(mat.NewDense(1, 1, []float64{1}), mat.NewDense(1, 1, []float64{1}), args)
	if err != nil {
		t.Fatalf("newTrainer() failed: %v", err)
	}
	return tr
}

func checkWeights(t *testing.T, step int, tr *trainer, want ...float64) {
	t.Helper()

	if w := tr.net.weights[0]; !mat.EqualApprox(w, mat.NewDense(1, len(want), want), 1e-12) {
		t.Errorf("step %d: weights = %v, want %v", step, mat.Formatted(w), want)
	}
}

func TestUpdateMomentum(t *testing.T) {
	args := plainArgs(1)
	args.MomentumRate = 0.5
	tr := newTestTrainer(t, args)

	grad := []*mat.Dense{mat.NewDense(1, 2, []float64{1, 1})}

	tr.update(grad)
	checkWeights(t, 1, tr, 0.1-0.1, -0.2-0.1)

	// the previous delta already includes the learning rate: 0.1 * (0.5 * 0.1 + 1)
	tr.update(grad)
	checkWeights(t, 2, tr, 0.1-0.1-0.105, -0.2-0.1-0.105)
}

func TestUpdateLocalGain(t *testing.T) {
	var agree []bool

	args := plainArgs(1)
	args.Gain = &NeuralLocalGain{Bonus: 1, Penalty: 0.5, Min: 0.1, Max: 2.5, Rule: testGainRule{&agree}}
	tr := newTestTrainer(t, args)

	checkGain := func(step int, want ...float64) {
		t.Helper()
		if g := tr.gain[0]; !mat.EqualApprox(g, mat.NewDense(1, len(want), want), 1e-12) {
			t.Errorf("step %d: gains = %v, want %v", step, mat.Formatted(g), want)
		}
	}

	grad := []*mat.Dense{mat.NewDense(1, 2, []float64{1, -2})}

	// the first update agrees with the (zero) previous one everywhere
	tr.update(grad)
	checkWeights(t, 1, tr, 0, 0)
	checkGain(1, 2, 2)

	tr.update(grad)
	checkWeights(t, 2, tr, -0.2, 0.4)
	checkGain(2, 2.5, 2.5)

	tr.update([]*mat.Dense{mat.NewDense(1, 2, []float64{-1, -2})})
	checkWeights(t, 3, tr, 0.05, 0.9)
	checkGain(3, 1.25, 2.5)

	if len(agree) != 2 || agree[0] || !agree[1] {
		t.Errorf("agreement = %v, want [false true]", agree)
	}
}

func TestUpdatePenaltySkipsBias(t *testing.T) {
	args := plainArgs(1)
	args.Penalty = testRidge{}
	args.RegularizationRate = 0.5
	tr := newTestTrainer(t, args)

	w := mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})
	want := mat.NewDense(2, 3, []float64{0, 2, 3, 0, 5, 6})
	if p := tr.penalty(w); !mat.EqualApprox(p, want, 1e-12) {
		t.Errorf("penalty() = %v, want %v", mat.Formatted(p), mat.Formatted(want))
	}

	// the argument is left alone
	if w.At(0, 0) != 1 {
		t.Errorf("penalty() changed its argument")
	}
}

func TestTrainPenaltyInCost(t *testing.T) {
	args := plainArgs(1)
	args.LearningRate = 0
	args.Penalty = testRidge{}
	tr := newTestTrainer(t, args)

	// output 0.1 - 0.2 = -0.1 against a target of 1, plus 0.1^2 + 0.2^2
	want := 0.5*1.1*1.1 + 0.05
	if c := tr.cost(tr.args.Goal, tr.inputs, tr.targets); math.Abs(c-want) > 1e-12 {
		t.Errorf("cost() = %v, want %v", c, want)
	}
}

func TestAgreement(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, -1, 0, 2})
	b := mat.NewDense(2, 2, []float64{1, 1, -3, -1})

	want := []bool{true, false, true, false}
	got := agreement(a, b)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("agreement()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
