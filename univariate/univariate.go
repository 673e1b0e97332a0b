package univariate

import (
	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/write"
)

// Point is one estimate produced during a solve, with Y = F(X)
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Trace is the chronological sequence of estimates of a single solve. The
// first element is the solver's starting estimate.
type Trace []Point

// Last returns the final estimate. ok is false for an empty trace.
func (t Trace) Last() (p Point, ok bool) {
	if len(t) == 0 {
		return Point{}, false
	}
	return t[len(t)-1], true
}

// Xs returns the locations of the trace
func (t Trace) Xs() []float64 {
	xs := make([]float64, len(t))
	for i, p := range t {
		xs[i] = p.X
	}
	return xs
}

// Settings is a structure containing settings for univariate solvers
type Settings struct {
	*common.CommonSettings
}

// DefaultSettings returns the default settings for univariate solvers.
// The defaults match the classroom values: a tolerance of 1e-3 and at most
// 50 iterations.
func DefaultSettings() *Settings {
	return &Settings{
		CommonSettings: common.DefaultCommonSettings(),
	}
}

// Helper records the trace and the common bookkeeping for a solve. Not
// intended for use by callers of Solve, but exported to aid others who are
// building solvers.
//
// Solver implementers should call Init() at the beginning of a solve, Seed()
// for any estimate known before the first iteration, and Iterate() after
// every iteration.
type Helper struct {
	*common.Common

	trace Trace
	curr  Point
}

// NewHelper creates a new Helper and adds itself to the data adders
func NewHelper() *Helper {
	h := &Helper{
		Common: common.NewCommon(),
	}
	h.AddDataAdder(h)
	return h
}

func (h *Helper) AppendWriteData(v []*write.Value) []*write.Value {
	v = append(v, &write.Value{Heading: "X", Value: h.curr.X})
	v = append(v, &write.Value{Heading: "F", Value: h.curr.Y})
	return v
}

func (h *Helper) Init(s *Settings) error {
	h.trace = nil
	h.curr = Point{}
	return h.Common.Init(s.CommonSettings)
}

// Seed records estimates that precede the first iteration
func (h *Helper) Seed(pts []Point, nFunEvals int) {
	h.trace = append(h.trace, pts...)
	if len(pts) > 0 {
		h.curr = pts[len(pts)-1]
	}
	h.Common.AddFunctionEvaluations(nFunEvals)
}

func (h *Helper) Iterate(pt Point, nFunEvals int) error {
	h.trace = append(h.trace, pt)
	h.curr = pt
	return h.Common.Iterate(nFunEvals)
}

// Trace returns the estimates recorded so far
func (h *Helper) Trace() Trace {
	return h.trace
}

func (h *Helper) Result(status common.Status) *Result {
	return &Result{
		CommonResult: h.Common.Result(status),
		Trace:        h.trace,
	}
}

// Result is the outcome of a solve. The final estimate is the last point of
// Trace; a solve that ran out of iterations is reported through Status, not
// as an error.
type Result struct {
	*common.CommonResult
	Trace Trace `json:"trace"`
}

// Root returns the final estimate of the solve
func (r *Result) Root() Point {
	p, _ := r.Trace.Last()
	return p
}
