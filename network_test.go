package nn

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// strategies for the tests of this package; the real ones live in the subpackages, which import
// this one

type testSigmoid struct{}

func (testSigmoid) TypeString() string { return "test-sigmoid" }

func (testSigmoid) Apply(z *mat.Dense) *mat.Dense {
	out := new(mat.Dense)
	out.Apply(func(_, _ int, v float64) float64 { return 1 / (1 + math.Exp(-v)) }, z)
	return out
}

func (s testSigmoid) Deriv(z *mat.Dense) *mat.Dense {
	out := s.Apply(z)
	out.Apply(func(_, _ int, v float64) float64 { return v * (1 - v) }, out)
	return out
}

type testTanh struct{}

func (testTanh) TypeString() string { return "test-tanh" }

func (testTanh) Apply(z *mat.Dense) *mat.Dense {
	out := new(mat.Dense)
	out.Apply(func(_, _ int, v float64) float64 { return math.Tanh(v) }, z)
	return out
}

func (testTanh) Deriv(z *mat.Dense) *mat.Dense {
	out := new(mat.Dense)
	out.Apply(func(_, _ int, v float64) float64 {
		th := math.Tanh(v)
		return 1 - th*th
	}, z)
	return out
}

type testIdentity struct{}

func (testIdentity) TypeString() string { return "test-identity" }

func (testIdentity) Apply(z *mat.Dense) *mat.Dense { return mat.DenseCopyOf(z) }

func (testIdentity) Deriv(z *mat.Dense) *mat.Dense {
	r, c := z.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, _ float64) float64 { return 1 }, out)
	return out
}

// half the squared distance, per row
type testEuclidean struct{}

func (testEuclidean) TypeString() string { return "test-euclidean" }

func (testEuclidean) Cost(targets, outputs *mat.Dense) []float64 {
	r, c := outputs.Dims()
	cs := make([]float64, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d := outputs.At(i, j) - targets.At(i, j)
			cs[i] += 0.5 * d * d
		}
	}
	return cs
}

func (testEuclidean) Deriv(targets, outputs *mat.Dense) *mat.Dense {
	d := new(mat.Dense)
	d.Sub(outputs, targets)
	return d
}

// sum of squares, derivative 2w
type testRidge struct{}

func (testRidge) TypeString() string { return "test-ridge" }

func (testRidge) Norm(w *mat.Dense) float64 {
	return mat.Sum(elemSquare(w))
}

func (testRidge) Deriv(w *mat.Dense) *mat.Dense {
	d := new(mat.Dense)
	d.Scale(2, w)
	return d
}

func elemSquare(w *mat.Dense) *mat.Dense {
	sq := new(mat.Dense)
	sq.MulElem(w, w)
	return sq
}

// constRNG fills every weight with v
func constRNG(v float64) RNG {
	return RNGFunc(func(n int) []float64 {
		vs := make([]float64, n)
		for i := range vs {
			vs[i] = v
		}
		return vs
	})
}

// seqRNG gives a fixed, repeating sequence of small values
func seqRNG() RNG {
	seq := []float64{0.1, -0.2, 0.3, -0.15, 0.25, 0.05, -0.3, 0.2, -0.05, 0.15}
	var k int
	return RNGFunc(func(n int) []float64 {
		vs := make([]float64, n)
		for i := range vs {
			vs[i] = seq[k%len(seq)]
			k++
		}
		return vs
	})
}

func mustNew(t *testing.T, inputDim int, layers []int, acts []Activation, rng RNG) *Network {
	t.Helper()

	net, err := New(inputDim, layers, acts, rng)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return net
}

func TestNewShapes(t *testing.T) {
	acts := []Activation{testTanh{}, testTanh{}, testSigmoid{}}
	net := mustNew(t, 3, []int{4, 2, 5}, acts, seqRNG())

	want := [][2]int{{4, 4}, {2, 5}, {5, 3}}
	for i, w := range want {
		r, c := net.Weights(i).Dims()
		if r != w[0] || c != w[1] {
			t.Errorf("layer %d weights are %dx%d, want %dx%d", i, r, c, w[0], w[1])
		}
	}

	if net.InputSize() != 3 {
		t.Errorf("InputSize() = %d, want 3", net.InputSize())
	}
	if net.OutputSize() != 5 {
		t.Errorf("OutputSize() = %d, want 5", net.OutputSize())
	}
	if net.NumLayers() != 3 {
		t.Errorf("NumLayers() = %d, want 3", net.NumLayers())
	}
	if s := net.String(); s != "MLP: 3 -> 4 -> 2 -> 5" {
		t.Errorf("String() = %q, want %q", s, "MLP: 3 -> 4 -> 2 -> 5")
	}
}

func TestNewFillsRowByRow(t *testing.T) {
	net := mustNew(t, 1, []int{2}, []Activation{testIdentity{}}, seqRNG())

	want := mat.NewDense(2, 2, []float64{0.1, -0.2, 0.3, -0.15})
	if w := net.Weights(0); !mat.Equal(w, want) {
		t.Errorf("Weights(0) = %v, want %v", mat.Formatted(w), mat.Formatted(want))
	}
}

func TestNewConfigurationErrors(t *testing.T) {
	short := RNGFunc(func(n int) []float64 { return make([]float64, n-1) })

	cases := []struct {
		name     string
		inputDim int
		layers   []int
		acts     []Activation
		rng      RNG
	}{
		{"zero inputs", 0, []int{1}, []Activation{testIdentity{}}, seqRNG()},
		{"no layers", 2, nil, []Activation{}, seqRNG()},
		{"too few activations", 2, []int{3, 1}, []Activation{testIdentity{}}, seqRNG()},
		{"empty layer", 2, []int{3, 0}, []Activation{testIdentity{}, testIdentity{}}, seqRNG()},
		{"nil activation", 2, []int{3, 1}, []Activation{testIdentity{}, nil}, seqRNG()},
		{"short rng", 2, []int{3}, []Activation{testIdentity{}}, short},
	}

	for _, c := range cases {
		_, err := New(c.inputDim, c.layers, c.acts, c.rng)
		if _, ok := errors.Cause(err).(ConfigurationError); !ok {
			t.Errorf("%s: New() error = %v, want ConfigurationError", c.name, err)
		}
	}
}

func TestComputeOutputZeroWeights(t *testing.T) {
	inputs := mat.NewDense(3, 2, []float64{1, 2, -3, 0.5, 0, 7})

	sig := mustNew(t, 2, []int{3, 2}, []Activation{testTanh{}, testSigmoid{}}, constRNG(0))
	outs, err := sig.ComputeOutput(inputs, true)
	if err != nil {
		t.Fatalf("ComputeOutput() failed: %v", err)
	}
	if r, c := outs.Dims(); r != 3 || c != 2 {
		t.Fatalf("output is %dx%d, want 3x2", r, c)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			if v := outs.At(i, j); v != 0.5 {
				t.Errorf("output (%d, %d) = %v, want 0.5", i, j, v)
			}
		}
	}

	th := mustNew(t, 2, []int{4}, []Activation{testTanh{}}, constRNG(0))
	outs, err = th.ComputeOutput(inputs, true)
	if err != nil {
		t.Fatalf("ComputeOutput() failed: %v", err)
	}
	if !mat.Equal(outs, mat.NewDense(3, 4, nil)) {
		t.Errorf("tanh outputs = %v, want zeros", mat.Formatted(outs))
	}
}

func TestComputeOutputKnownValues(t *testing.T) {
	net := mustNew(t, 2, []int{1}, []Activation{testIdentity{}}, seqRNG())
	if err := net.SetWeights(0, mat.NewDense(1, 3, []float64{1, 2, -1})); err != nil {
		t.Fatal(err)
	}

	// with the bias already included
	inputs := mat.NewDense(2, 3, []float64{1, 3, 4, 1, -1, 0.5})
	outs, err := net.ComputeOutput(inputs, false)
	if err != nil {
		t.Fatalf("ComputeOutput() failed: %v", err)
	}

	want := mat.NewDense(2, 1, []float64{1 + 6 - 4, 1 - 2 - 0.5})
	if !mat.EqualApprox(outs, want, 1e-12) {
		t.Errorf("outputs = %v, want %v", mat.Formatted(outs), mat.Formatted(want))
	}
}

func TestComputeOutputDimensionMismatch(t *testing.T) {
	net := mustNew(t, 5, []int{2}, []Activation{testSigmoid{}}, seqRNG())

	_, err := net.ComputeOutput(mat.NewDense(4, 3, nil), true)
	dm, ok := errors.Cause(err).(DimensionMismatchError)
	if !ok {
		t.Fatalf("ComputeOutput() error = %v, want DimensionMismatchError", err)
	}
	if dm.Expected != 6 || dm.Got != 4 {
		t.Errorf("mismatch = %d/%d, want 6/4", dm.Expected, dm.Got)
	}

	if _, err := net.ComputeOutput(nil, true); errors.Cause(err) != ErrNoData {
		t.Errorf("ComputeOutput(nil) error = %v, want %v", err, ErrNoData)
	}
}

func TestSetWeights(t *testing.T) {
	net := mustNew(t, 2, []int{3, 1}, []Activation{testTanh{}, testIdentity{}}, seqRNG())

	w := mat.NewDense(1, 4, []float64{1, 2, 3, 4})
	if err := net.SetWeights(1, w); err != nil {
		t.Fatalf("SetWeights() failed: %v", err)
	}

	// the Network keeps its own copy
	w.Set(0, 0, 100)
	if got := net.Weights(1).At(0, 0); got != 1 {
		t.Errorf("weight (0, 0) = %v after changing the argument, want 1", got)
	}

	err := net.SetWeights(1, mat.NewDense(1, 3, nil))
	if _, ok := err.(DimensionMismatchError); !ok {
		t.Errorf("SetWeights() of the wrong shape gave %v, want DimensionMismatchError", err)
	}
	if _, ok := net.SetWeights(2, w).(ConfigurationError); !ok {
		t.Errorf("SetWeights() of a missing layer did not give a ConfigurationError")
	}
}

func TestAccuracy(t *testing.T) {
	outs := mat.NewDense(4, 2, []float64{0.9, 0.1, 0.2, 0.7, 0.6, 0.4, 0.3, 0.4})
	targets := mat.NewDense(4, 2, []float64{1, 0, 0, 1, 0, 1, 1, 0})

	if a := Accuracy(outs, targets, CorrectHighest); a != 0.5 {
		t.Errorf("Accuracy(CorrectHighest) = %v, want 0.5", a)
	}
	if a := Accuracy(outs, targets, CorrectRound); a != 0.5 {
		t.Errorf("Accuracy(CorrectRound) = %v, want 0.5", a)
	}
}
