package univariate

import (
	"errors"
	"fmt"

	"github.com/btracey/rootfind/common"
)

// Solver represents an iterative root finding algorithm
type Solver interface {
	// Init prepares the solver for a new solve. Any estimates known before the
	// first iteration are returned as seed and become the start of the trace.
	Init(f Function, tol float64) (seed []Point, nFunEvals int, err error)
	Status() common.Status
	// Iterate performs one major iteration and returns the new estimate
	Iterate() (pt Point, nFunEvals int, err error)
}

// Wrapper is a convenience wrapper around a Solver that allows more
// fine-grained control over solve progress. See Solve for example usage
type Wrapper struct {
	solver Solver
	helper *Helper
}

func NewWrapper(solver Solver) *Wrapper {
	return &Wrapper{
		solver: solver,
		helper: NewHelper(),
	}
}

func (w *Wrapper) Init(settings *Settings, f Function) error {
	if err := w.helper.Init(settings); err != nil {
		return err
	}
	seed, nFunEvals, err := w.solver.Init(f, settings.Tol)
	if err != nil {
		return err
	}
	w.helper.Seed(seed, nFunEvals)
	return nil
}

// Status checks the solver before the iteration cap, so an estimate that
// meets tolerance on the final permitted iteration is reported as converged.
func (w *Wrapper) Status() common.Status {
	return common.CheckStatus(w.solver, w.helper)
}

func (w *Wrapper) Iterate() (Point, error) {
	pt, nFunEvals, err := w.solver.Iterate()
	if err != nil {
		w.helper.AddFunctionEvaluations(nFunEvals)
		return pt, err
	}
	if err := w.helper.Iterate(pt, nFunEvals); err != nil {
		return pt, fmt.Errorf("writing progress: %w", err)
	}
	return pt, nil
}

func (w *Wrapper) Result(status common.Status) *Result {
	return w.helper.Result(status)
}

// Solve runs solver on f until it meets the tolerance in settings or exhausts
// the iteration cap. Invalid settings are rejected before any evaluation with
// an error matching common.ErrInvalidParameter.
//
// If an iteration fails, the result holding the trace accumulated so far is
// returned together with the error. A *common.DivergenceError is returned
// when a solver cannot produce a finite estimate, so every point in a trace
// is finite.
func Solve(f Function, settings *Settings, solver Solver) (*Result, error) {
	if solver == nil {
		panic("no solver provided")
	}
	if f == nil {
		return nil, errors.New("function is nil")
	}
	if settings == nil {
		settings = DefaultSettings()
	}
	if settings.CommonSettings == nil {
		settings = &Settings{CommonSettings: common.DefaultCommonSettings()}
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	wrapper := NewWrapper(solver)
	if err := wrapper.Init(settings, f); err != nil {
		return nil, fmt.Errorf("error initializing: %w", err)
	}

	var status common.Status
	for {
		status = wrapper.Status()
		if status != common.Continue {
			break
		}

		if _, err := wrapper.Iterate(); err != nil {
			status = solver.Status()
			if status == common.Continue {
				status = common.SolverError
			}
			return wrapper.Result(status), err
		}
	}
	return wrapper.Result(status), nil
}
