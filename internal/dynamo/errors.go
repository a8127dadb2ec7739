package dynamo

import "errors"

// Domain errors for simulation operations.
var (
	// ErrNotInitialized indicates a simulation used before its body set was created.
	ErrNotInitialized = errors.New("dynamo: simulation not initialized")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")

	// ErrNonFinite indicates a NaN or Inf parameter value.
	ErrNonFinite = errors.New("dynamo: parameter is not a finite number")

	// ErrUnknownParam indicates a lookup of a parameter name that does not exist.
	ErrUnknownParam = errors.New("dynamo: unknown parameter")
)

// ParamError wraps an error with the name of the offending parameter.
type ParamError struct {
	Name    string
	Value   float64
	Wrapped error
}

func (e *ParamError) Error() string {
	return e.Name + ": " + e.Wrapped.Error()
}

func (e *ParamError) Unwrap() error {
	return e.Wrapped
}
