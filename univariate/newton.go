package univariate

import (
	"errors"
	"fmt"
	"math"

	"github.com/btracey/rootfind/common"
)

// Newton finds a root with Newton's method starting from X0.
//
// A step is refused when |F'(x)| <= DerivativeTol or when it would produce a
// non-finite estimate or function value. The solve then stops with status
// Diverged and a *common.DivergenceError; the refused estimate is not added
// to the trace. With the zero DerivativeTol only an exactly vanishing
// derivative or an overflowing step is refused. A starting estimate whose
// function value is not finite is an invalid parameter.
type Newton struct {
	X0            float64
	DerivativeTol float64

	f    Function
	iter int

	x    float64
	fTol common.UniToler

	status common.Status
}

func NewNewton(x0 float64) *Newton {
	return &Newton{X0: x0}
}

func (n *Newton) Init(f Function, tol float64) ([]Point, int, error) {
	if !isFinite(n.X0) {
		return nil, 0, &common.InvalidParameterError{Name: "x0", Value: n.X0, Reason: "must be finite"}
	}
	if n.DerivativeTol < 0 || math.IsNaN(n.DerivativeTol) {
		return nil, 0, &common.InvalidParameterError{Name: "derivativeTol", Value: n.DerivativeTol, Reason: "must not be negative"}
	}
	if f == nil {
		return nil, 0, errors.New("newton: nil function")
	}
	n.f = f
	n.iter = 0
	n.x = n.X0
	fx := f.F(n.x)
	if !isFinite(fx) {
		return nil, 1, &common.InvalidParameterError{Name: "x0", Value: n.X0, Reason: fmt.Sprintf("f(x0) = %g is not finite", fx)}
	}
	n.fTol.Init(tol, fx)
	n.status = common.Continue
	return []Point{{X: n.x, Y: fx}}, 1, nil
}

// Status reports convergence of the latest estimate. It is checked before
// each step, so a converged estimate stops the solve without a new point.
func (n *Newton) Status() common.Status {
	if n.status != common.Continue {
		return n.status
	}
	if n.fTol.AbsConverged() {
		return common.FunctionAbsTol
	}
	return common.Continue
}

func (n *Newton) Iterate() (Point, int, error) {
	n.iter++
	fx := n.fTol.Recent()
	fpx := n.f.Deriv(n.x)

	next := n.x - fx/fpx
	if math.Abs(fpx) <= n.DerivativeTol || !isFinite(next) {
		n.status = common.Diverged
		return Point{}, 1, &common.DivergenceError{Iteration: n.iter, X: n.x, Reason: fmt.Sprintf("derivative %g", fpx)}
	}
	fnext := n.f.F(next)
	if !isFinite(fnext) {
		n.status = common.Diverged
		return Point{}, 2, &common.DivergenceError{Iteration: n.iter, X: n.x, Reason: fmt.Sprintf("f(%g) = %g", next, fnext)}
	}

	n.x = next
	n.fTol.Add(fnext)
	return Point{X: n.x, Y: fnext}, 2, nil
}
