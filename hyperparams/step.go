package hyperparams

import "sort"

type step struct {
	epoch int
	val   float64
}

type stepper []step

// Step returns a piecewise-constant Schedule, starting at base. Further steps are added with
// Add.
func Step(base float64) *stepper {
	st := stepper{{0, base}}
	return &st
}

// Add makes the Schedule give value from the given epoch on, until the next step. Adding a step
// at an epoch that already has one replaces its value. Add will panic if epoch < 0.
func (s *stepper) Add(epoch int, value float64) *stepper {
	if epoch < 0 {
		panic("step added at a negative epoch")
	}

	sl := *s
	i := sort.Search(len(sl), func(i int) bool { return sl[i].epoch >= epoch })
	if i < len(sl) && sl[i].epoch == epoch {
		sl[i].val = value
		return s
	}

	sl = append(sl, step{})
	copy(sl[i+1:], sl[i:])
	sl[i] = step{epoch, value}

	*s = sl
	return s
}

func (s *stepper) TypeString() string {
	return "step"
}

func (s *stepper) Value(epoch int) float64 {
	sl := []step(*s)
	for i := 1; i < len(sl); i++ {
		if sl[i].epoch > epoch {
			return sl[i-1].val
		}
	}

	return sl[len(sl)-1].val
}
