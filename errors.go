package nn

import "fmt"

// Error is a wrapper for specific types of errors for which there is no additional information
// necessary. These errors are defined as global variables.
type Error struct{ string }

func (err Error) Error() string {
	return err.string
}

// These are the global errors that may be returned.
var (
	ErrRegisterWrongType = Error{"Type is not recognized"}
	ErrRegisterNilReturn = Error{"Function return is nil"}
	ErrRegisterDuplicate = Error{"TypeString is already registered"}
	ErrNotRegistered     = Error{"No strategy registered with that name"}
	ErrNoDefault         = Error{"No default is set; import the subpackage that provides it"}
	ErrNoData            = Error{"Data is nil or empty"}
)

// ConfigurationError is returned when a Network or a training run is set up with arguments that
// cannot work together, such as a number of activations that does not match the number of
// layers. The caller must fix the configuration; nothing has been changed.
type ConfigurationError struct {
	Reason string
}

func (err ConfigurationError) Error() string {
	return "Configuration error: " + err.Reason
}

func configErrorf(format string, args ...interface{}) ConfigurationError {
	return ConfigurationError{fmt.Sprintf(format, args...)}
}

// DimensionMismatchError is returned when a matrix given to the Network does not have the
// expected width (or height). What describes the value that did not fit.
type DimensionMismatchError struct {
	Expected, Got int
	What          string
}

func (err DimensionMismatchError) Error() string {
	return fmt.Sprintf("Dimension mismatch for %s: expected %d, got %d", err.What, err.Expected, err.Got)
}

// NilArgError documents errors resulting from certain arguments provided to a function being nil.
type NilArgError struct{ string }

func (err NilArgError) Error() string {
	return err.string + " is nil"
}
