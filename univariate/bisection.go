package univariate

import (
	"errors"
	"fmt"
	"math"

	"github.com/btracey/rootfind/common"
)

// Bisection finds a root by repeatedly halving the bracket [A, B]. It does
// not check that F changes sign over the bracket; when it does not, the
// bracket moves towards B and the trace still ends in a finite number of
// iterations.
//
// F(A) must be finite. A midpoint whose function value overflows stops the
// solve with status Diverged and a *common.DivergenceError, and is not added
// to the trace.
type Bisection struct {
	A, B float64 // initial bracket

	f   Function
	tol float64

	a, b float64
	fa   float64
	iter int

	fTol   common.UniToler
	status common.Status
}

func NewBisection(a, b float64) *Bisection {
	return &Bisection{A: a, B: b}
}

func (s *Bisection) Init(f Function, tol float64) ([]Point, int, error) {
	if !isFinite(s.A) || !isFinite(s.B) {
		return nil, 0, &common.InvalidParameterError{Name: "bracket", Value: [2]float64{s.A, s.B}, Reason: "bounds must be finite"}
	}
	if f == nil {
		return nil, 0, errors.New("bisection: nil function")
	}
	s.f = f
	s.tol = tol
	s.a, s.b = s.A, s.B
	s.fa = f.F(s.a)
	if !isFinite(s.fa) {
		return nil, 1, &common.InvalidParameterError{Name: "a", Value: s.A, Reason: fmt.Sprintf("f(a) = %g is not finite", s.fa)}
	}
	s.iter = 0
	s.fTol.Init(tol, math.Inf(1))
	s.status = common.Continue
	// The midpoint is the first estimate, so there is no seed
	return nil, 1, nil
}

// Bracket returns the current interval. It is the interval the next
// midpoint will be taken from.
func (s *Bisection) Bracket() (a, b float64) {
	return s.a, s.b
}

func (s *Bisection) Iterate() (Point, int, error) {
	s.iter++
	mid := (s.a + s.b) / 2
	fmid := s.f.F(mid)
	if !isFinite(fmid) {
		s.status = common.Diverged
		return Point{}, 1, &common.DivergenceError{Iteration: s.iter, X: mid, Reason: fmt.Sprintf("f(mid) = %g", fmid)}
	}
	s.fTol.Add(fmid)

	// Both stopping checks happen after the midpoint has been taken so the
	// estimate that meets a tolerance is always part of the trace
	switch {
	case s.fTol.AbsConverged():
		s.status = common.FunctionAbsTol
	case math.Abs(s.b-s.a) < s.tol:
		s.status = common.BoundsConverged
	case s.fa*fmid < 0:
		s.b = mid
	default:
		// Includes f(a)*f(mid) == 0, where the root is assumed to be in [mid, b]
		s.a = mid
		s.fa = fmid
	}
	return Point{X: mid, Y: fmid}, 1, nil
}

func (s *Bisection) Status() common.Status { return s.status }

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
