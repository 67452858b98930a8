// Package initializers provides the random number generators used to set the initial weights of
// a Network. Importing it sets the default nn.RNG to Normal().
//
// Every RNG draws from the top-level functions of math/rand unless given its own seed with Seed,
// which makes the weights reproducible.
package initializers

import "math/rand"

// source is embedded in each RNG
type source struct {
	r *rand.Rand
}

func (s *source) float64() float64 {
	if s.r == nil {
		return rand.Float64()
	}
	return s.r.Float64()
}

func (s *source) normFloat64() float64 {
	if s.r == nil {
		return rand.NormFloat64()
	}
	return s.r.NormFloat64()
}

type uniform struct {
	source
	lower, upper float64
}

// Uniform returns RNG that gives values uniformly spread between its bounds, which
// can be set by Bounds. The default bounds are "uniform-lower" and "uniform-upper".
func Uniform() *uniform {
	return &uniform{lower: defaultValue["uniform-lower"], upper: defaultValue["uniform-upper"]}
}

// Bounds sets the range of a Uniform RNG, returning it.
func (u *uniform) Bounds(lower, upper float64) *uniform {
	if lower > upper {
		lower, upper = upper, lower
	}

	u.lower = lower
	u.upper = upper
	return u
}

// Seed gives the RNG its own source, seeded with the given value.
func (u *uniform) Seed(seed int64) *uniform {
	u.r = rand.New(rand.NewSource(seed))
	return u
}

// Gen is the implementation of nn.RNG for Uniform.
func (u *uniform) Gen(n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = u.float64()*(u.upper-u.lower) + u.lower
	}

	return vs
}

type normal struct {
	source
	µ, σ float64
}

// Normal returns an RNG that gives values within a normal distribution. The center
// and standard deviation can be set by Mean and SD, respectively.
//
// Default centers and standard deviations can be set by SetDefault for
// "normal-mean" and "normal-sd"; they are 0 and 0.1.
func Normal() *normal {
	return &normal{µ: defaultValue["normal-mean"], σ: defaultValue["normal-sd"]}
}

// SD sets the value of the standard deviation of the normal distribution.
func (n *normal) SD(sd float64) *normal {
	n.σ = sd
	return n
}

// Mean sets the center of the normal distribution.
func (n *normal) Mean(mean float64) *normal {
	n.µ = mean
	return n
}

// Seed gives the RNG its own source, seeded with the given value.
func (n *normal) Seed(seed int64) *normal {
	n.r = rand.New(rand.NewSource(seed))
	return n
}

// Gen is the implementation of nn.RNG for Normal.
func (n *normal) Gen(count int) []float64 {
	vs := make([]float64, count)
	for i := range vs {
		vs[i] = n.normFloat64()*n.σ + n.µ
	}

	return vs
}

type truncNormal struct {
	*normal
	trunc float64
}

const defaultTrunc float64 = 2.0

// TruncNormal returns an RNG that gives values within an truncated normal
// distribution. The distribution is truncated at 2 standard deviations. The center
// and standard deviation can be set in the same way as Normal.
//
// Additionally, the number of standard deviations to truncate at can be set by
// Trunc.
func TruncNormal() *truncNormal {
	return &truncNormal{Normal(), defaultTrunc}
}

// Trunc sets the number of standard deviations to keep on either side. Trunc will
// panic if given sds <= 0.
func (t *truncNormal) Trunc(sds float64) *truncNormal {
	if sds <= 0 {
		panic("given number of standard deviations to truncate after is <= 0")
	}

	t.trunc = sds
	return t
}

// Mean sets the center of the distribution, returning the TruncNormal.
func (t *truncNormal) Mean(mean float64) *truncNormal {
	t.normal.Mean(mean)
	return t
}

// SD sets the standard deviation of the distribution before truncation, returning the
// TruncNormal.
func (t *truncNormal) SD(sd float64) *truncNormal {
	t.normal.SD(sd)
	return t
}

// Seed gives the RNG its own source, seeded with the given value.
func (t *truncNormal) Seed(seed int64) *truncNormal {
	t.normal.Seed(seed)
	return t
}

// Gen is the implementation of nn.RNG for TruncNormal.
func (t *truncNormal) Gen(count int) []float64 {
	vs := make([]float64, count)
	for i := range vs {
		v := t.normFloat64()
		for v < -t.trunc || v > t.trunc {
			v = t.normFloat64()
		}

		vs[i] = v*t.σ + t.µ
	}

	return vs
}
