package univariate

import (
	"errors"
	"fmt"

	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/write"
)

// ErrUnknownMethod is returned for a method tag that names no solver
var ErrUnknownMethod = errors.New("unknown method")

// Method names a root finding algorithm
type Method string

const (
	MethodBisection Method = "bisection"
	MethodNewton    Method = "newton"
)

// Methods lists the supported method tags
var Methods = []Method{MethodBisection, MethodNewton}

// Params holds the inputs of one solve as they arrive from a form, a
// configuration file or the command line. A and B are only used by
// bisection, X0 only by Newton's method.
type Params struct {
	Method        Method  `json:"method" yaml:"method" mapstructure:"method"`
	A             float64 `json:"a" yaml:"a" mapstructure:"a"`
	B             float64 `json:"b" yaml:"b" mapstructure:"b"`
	X0            float64 `json:"x0" yaml:"x0" mapstructure:"x0"`
	Epsilon       float64 `json:"epsilon" yaml:"epsilon" mapstructure:"epsilon"`
	MaxIterations int     `json:"max_iterations" yaml:"max_iterations" mapstructure:"max_iterations"`
}

// DefaultParams returns the classroom defaults: bisection over [-5, 5],
// Newton from 0, epsilon 0.001 and at most 50 iterations.
func DefaultParams() Params {
	return Params{
		Method:        MethodBisection,
		A:             -5,
		B:             5,
		X0:            0,
		Epsilon:       0.001,
		MaxIterations: 50,
	}
}

// Solver returns a new solver for the method named by p.
func (p Params) Solver() (Solver, error) {
	switch p.Method {
	case MethodBisection:
		return NewBisection(p.A, p.B), nil
	case MethodNewton:
		return NewNewton(p.X0), nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, p.Method)
	}
}

// Settings converts p into solver settings writing progress to ws, which
// may be nil.
func (p Params) Settings(ws *write.WriteSettings) *Settings {
	if ws == nil {
		ws = write.DefaultWriteSettings()
	}
	return &Settings{
		CommonSettings: &common.CommonSettings{
			Tol:               p.Epsilon,
			MaximumIterations: p.MaxIterations,
			WriteSettings:     ws,
		},
	}
}

// SolveParams runs the method named by p on f. See Solve for the error
// semantics.
func SolveParams(f Function, p Params, ws *write.WriteSettings) (*Result, error) {
	solver, err := p.Solver()
	if err != nil {
		return nil, err
	}
	return Solve(f, p.Settings(ws), solver)
}
