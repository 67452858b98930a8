package nn

import (
	"sort"

	"github.com/pkg/errors"
)

// registries, keyed by TypeString. These are only written to during package initialization.
var (
	activations   = make(map[string]func() Activation)
	costFunctions = make(map[string]func() CostFunction)
	penalties     = make(map[string]func() Penalty)
	gainUpdates   = make(map[string]func() GainUpdate)
)

// defaults, set by the subpackages that provide them
var (
	defaultAct  Activation
	defaultCost CostFunction
	defaultRNG  RNG
	defaultGain GainUpdate
)

// SetDefaultActivation sets the Activation used by New when none are given. It is called by
// the package "operators". SetDefaultActivation will panic with type NilArgError if given nil.
func SetDefaultActivation(a Activation) {
	if a == nil {
		panic(NilArgError{"Activation"})
	}
	defaultAct = a
}

// SetDefaultCostFunction sets the CostFunction used by Train when TrainArgs.Goal is nil.
func SetDefaultCostFunction(cf CostFunction) {
	if cf == nil {
		panic(NilArgError{"CostFunction"})
	}
	defaultCost = cf
}

// SetDefaultRNG sets the RNG used by New when none is given.
func SetDefaultRNG(g RNG) {
	if g == nil {
		panic(NilArgError{"RNG"})
	}
	defaultRNG = g
}

// SetDefaultGainUpdate sets the GainUpdate used when NeuralLocalGain.Rule is nil.
func SetDefaultGainUpdate(g GainUpdate) {
	if g == nil {
		panic(NilArgError{"GainUpdate"})
	}
	defaultGain = g
}

// RegisterActivation registers the constructor of an Activation under the name given by its
// TypeString.
func RegisterActivation(f func() Activation) error {
	if f == nil {
		return NilArgError{"Constructor"}
	}
	a := f()
	if a == nil {
		return ErrRegisterNilReturn
	}
	if _, ok := activations[a.TypeString()]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register Activation %q", a.TypeString())
	}

	activations[a.TypeString()] = f
	return nil
}

// RegisterCostFunction registers the constructor of a CostFunction under the name given by its
// TypeString.
func RegisterCostFunction(f func() CostFunction) error {
	if f == nil {
		return NilArgError{"Constructor"}
	}
	cf := f()
	if cf == nil {
		return ErrRegisterNilReturn
	}
	if _, ok := costFunctions[cf.TypeString()]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register CostFunction %q", cf.TypeString())
	}

	costFunctions[cf.TypeString()] = f
	return nil
}

// RegisterPenalty registers the constructor of a Penalty under the name given by its TypeString.
func RegisterPenalty(f func() Penalty) error {
	if f == nil {
		return NilArgError{"Constructor"}
	}
	p := f()
	if p == nil {
		return ErrRegisterNilReturn
	}
	if _, ok := penalties[p.TypeString()]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register Penalty %q", p.TypeString())
	}

	penalties[p.TypeString()] = f
	return nil
}

// RegisterGainUpdate registers the constructor of a GainUpdate under the name given by its
// TypeString.
func RegisterGainUpdate(f func() GainUpdate) error {
	if f == nil {
		return NilArgError{"Constructor"}
	}
	g := f()
	if g == nil {
		return ErrRegisterNilReturn
	}
	if _, ok := gainUpdates[g.TypeString()]; ok {
		return errors.Wrapf(ErrRegisterDuplicate, "Can't register GainUpdate %q", g.TypeString())
	}

	gainUpdates[g.TypeString()] = f
	return nil
}

// RegisterAll registers every constructor in the list, which may be any of:
//	func() Activation
//	func() CostFunction
//	func() Penalty
//	func() GainUpdate
// Any other type gives ErrRegisterWrongType. RegisterAll stops at the first error.
func RegisterAll(list []interface{}) error {
	for i, f := range list {
		var err error
		switch c := f.(type) {
		case func() Activation:
			err = RegisterActivation(c)
		case func() CostFunction:
			err = RegisterCostFunction(c)
		case func() Penalty:
			err = RegisterPenalty(c)
		case func() GainUpdate:
			err = RegisterGainUpdate(c)
		default:
			err = ErrRegisterWrongType
		}

		if err != nil {
			return errors.Wrapf(err, "Failed to register item %d", i)
		}
	}

	return nil
}

// GetActivation returns a new Activation of the registered type with the given name.
func GetActivation(name string) (Activation, error) {
	f, ok := activations[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "Activation %q", name)
	}
	return f(), nil
}

// GetCostFunction returns a new CostFunction of the registered type with the given name.
func GetCostFunction(name string) (CostFunction, error) {
	f, ok := costFunctions[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "CostFunction %q", name)
	}
	return f(), nil
}

// GetPenalty returns a new Penalty of the registered type with the given name.
func GetPenalty(name string) (Penalty, error) {
	f, ok := penalties[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "Penalty %q", name)
	}
	return f(), nil
}

// GetGainUpdate returns a new GainUpdate of the registered type with the given name.
func GetGainUpdate(name string) (GainUpdate, error) {
	f, ok := gainUpdates[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotRegistered, "GainUpdate %q", name)
	}
	return f(), nil
}

// Registered returns the sorted names of every registered Activation, CostFunction, Penalty
// and GainUpdate, in that order.
func Registered() (acts, costs, pens, gains []string) {
	return sortedKeys(activations), sortedKeys(costFunctions), sortedKeys(penalties), sortedKeys(gainUpdates)
}

func sortedKeys[T any](m map[string]T) []string {
	s := make([]string, 0, len(m))
	for k := range m {
		s = append(s, k)
	}

	sort.Strings(s)
	return s
}
