package common

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is matched by every *InvalidParameterError
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDiverged is matched by every *DivergenceError
	ErrDiverged = errors.New("solver diverged")
)

// InvalidParameterError reports a solve parameter rejected before
// any iteration took place.
type InvalidParameterError struct {
	Name   string
	Value  interface{}
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// DivergenceError reports an iteration that could not produce a finite
// estimate, because the derivative vanished or the function overflowed.
type DivergenceError struct {
	Iteration int
	X         float64 // location the failing step was taken from or evaluated at
	Reason    string
}

func (e *DivergenceError) Error() string {
	return fmt.Sprintf("diverged at iteration %d from x=%g: %s", e.Iteration, e.X, e.Reason)
}

func (e *DivergenceError) Is(target error) bool {
	return target == ErrDiverged
}
