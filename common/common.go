package common

import (
	"math"
	"time"

	"github.com/btracey/rootfind/write"
)

// CommonSettings is a set of options available to all solvers
type CommonSettings struct {
	// Tol is the absolute tolerance shared by the stopping criteria. A
	// quantity whose magnitude is strictly below Tol is treated as zero.
	Tol float64
	// MaximumIterations caps the number of major iterations. Reaching it is a
	// normal termination.
	MaximumIterations int
	*write.WriteSettings
}

// DefaultCommonSettings returns the default settings for the common structure
func DefaultCommonSettings() *CommonSettings {
	return &CommonSettings{
		Tol:               1e-3,
		MaximumIterations: 50,
		WriteSettings:     write.DefaultWriteSettings(),
	}
}

// Validate rejects settings that would make a solve meaningless.
func (s *CommonSettings) Validate() error {
	if math.IsNaN(s.Tol) || math.IsInf(s.Tol, 0) || s.Tol <= 0 {
		return &InvalidParameterError{Name: "epsilon", Value: s.Tol, Reason: "must be positive and finite"}
	}
	if s.MaximumIterations <= 0 {
		return &InvalidParameterError{Name: "maxIterations", Value: s.MaximumIterations, Reason: "must be positive"}
	}
	return nil
}

// CommonResult is a list of results from the common structure
type CommonResult struct {
	Iterations          int           `json:"iterations"`           // Number of major iterations taken by the solver
	FunctionEvaluations int           `json:"function_evaluations"` // Number of function (and derivative) evaluations
	Runtime             time.Duration `json:"runtime_ns"`           // Wall-clock time elapsed during the solve
	Status              Status        `json:"status"`               // How did the solver end
}

// Common provides routines for controlling the settings provided by common.
type Common struct {
	iter      int
	funEvals  int
	startTime time.Time

	settings *CommonSettings

	*write.Display
}

// NewCommon creates a new Common structure, and adds itself to the display
func NewCommon() *Common {
	c := &Common{
		Display: write.NewDisplay(),
	}
	c.AddDataAdder(c)
	return c
}

// Init initializes all of the values in common at the start of the solve
func (c *Common) Init(settings *CommonSettings) error {
	c.iter = 0
	c.funEvals = 0
	c.startTime = time.Now()

	c.settings = settings

	ws := settings.WriteSettings
	if ws == nil {
		ws = &write.WriteSettings{}
	}
	return c.Display.Init(ws)
}

// AppendWriteData adds the components of common to the display structure
func (c *Common) AppendWriteData(d []*write.Value) []*write.Value {
	d = append(d, &write.Value{Heading: "Iter", Value: c.iter})
	d = append(d, &write.Value{Heading: "FnEval", Value: c.funEvals})
	return d
}

// Status reports MaximumIterations once the cap has been reached.
func (c *Common) Status() Status {
	if c.iter >= c.settings.MaximumIterations {
		return MaximumIterations
	}
	return Continue
}

// Result returns the results from the common structure
func (c *Common) Result(status Status) *CommonResult {
	return &CommonResult{
		Iterations:          c.iter,
		FunctionEvaluations: c.funEvals,
		Runtime:             time.Since(c.startTime),
		Status:              status,
	}
}

// AddFunctionEvaluations counts evaluations that happen outside of an
// iteration, such as seeding the initial estimate.
func (c *Common) AddFunctionEvaluations(n int) {
	c.funEvals += n
}

// Iterate performs an iteration of the common structure, incrementing
// the iteration, appending the number of function evaluations, and
// writing to the writers
func (c *Common) Iterate(nFunEvals int) error {
	c.iter++
	c.funEvals += nFunEvals
	return c.Display.Iterate()
}
