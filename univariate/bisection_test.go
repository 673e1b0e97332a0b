package univariate

import (
	"errors"
	"math"
	"testing"

	"github.com/btracey/rootfind/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestBisectionCubic(t *testing.T) {
	tol := 1e-3
	result, err := Solve(DefaultCubic(), testSettings(tol, 50), NewBisection(-5, 5))
	require.NoError(t, err)

	assert.Less(t, len(result.Trace), 50)
	assert.True(t, result.Status.Converged(), "status %v", result.Status)
	assert.Equal(t, len(result.Trace), result.Iterations)

	root := result.Root()
	assert.Less(t, math.Abs(root.Y), tol)
	assert.True(t, scalar.EqualWithinAbs(root.X, cubicRoot, 1e-3), "root %v", root.X)

	// first estimate is the midpoint of the initial bracket
	assert.Equal(t, Point{X: 0, Y: -2}, result.Trace[0])
	assert.Equal(t, 2.5, result.Trace[1].X)
	assert.Equal(t, 1.25, result.Trace[2].X)
}

func TestBisectionPointsStayInBracket(t *testing.T) {
	f := DefaultCubic()
	for _, test := range []struct {
		a, b float64
	}{
		{-5, 5},
		{5, -5},
		{0, 3},
		{1.5, 1.6},
		{2, 3}, // no sign change
	} {
		s := NewBisection(test.a, test.b)
		_, _, err := s.Init(f, 1e-9)
		require.NoError(t, err)
		width := math.Abs(test.b - test.a)
		for i := 0; i < 40 && s.Status() == common.Continue; i++ {
			a, b := s.Bracket()
			lo, hi := math.Min(a, b), math.Max(a, b)
			assert.LessOrEqual(t, hi-lo, width)
			width = hi - lo

			pt, n, err := s.Iterate()
			require.NoError(t, err)
			assert.Equal(t, 1, n)
			assert.GreaterOrEqual(t, pt.X, lo)
			assert.LessOrEqual(t, pt.X, hi)
			assert.Equal(t, f.F(pt.X), pt.Y)
		}
	}
}

func TestBisectionStoppingCriteria(t *testing.T) {
	f := DefaultCubic()

	// sign-changing brackets end with a small residual, a small bracket or
	// the iteration cap
	for _, test := range []struct {
		a, b    float64
		tol     float64
		maxIter int
	}{
		{-5, 5, 1e-3, 50},
		{-5, 5, 1e-3, 5},
		{0, 2, 1e-8, 100},
		{1, 2, 1e-12, 10},
		{-100, 100, 0.5, 50},
	} {
		s := NewBisection(test.a, test.b)
		result, err := Solve(f, testSettings(test.tol, test.maxIter), s)
		require.NoError(t, err)
		require.NotEmpty(t, result.Trace)
		assert.LessOrEqual(t, len(result.Trace), test.maxIter)

		switch result.Status {
		case common.FunctionAbsTol:
			assert.Less(t, math.Abs(result.Root().Y), test.tol)
		case common.BoundsConverged:
			// the bracket the final midpoint was taken from
			a, b := s.Bracket()
			assert.Less(t, math.Abs(b-a), test.tol)
		case common.MaximumIterations:
			assert.Len(t, result.Trace, test.maxIter)
		default:
			t.Errorf("unexpected status %v", result.Status)
		}
	}
}

func TestBisectionBoundsConverged(t *testing.T) {
	// Without a sign change the bracket collapses onto b
	s := NewBisection(2, 3)
	result, err := Solve(DefaultCubic(), testSettings(1e-3, 50), s)
	require.NoError(t, err)
	assert.Equal(t, common.BoundsConverged, result.Status)
	a, b := s.Bracket()
	assert.Less(t, math.Abs(b-a), 1e-3)
	assert.GreaterOrEqual(t, result.Root().X, math.Min(a, b))
	assert.LessOrEqual(t, result.Root().X, math.Max(a, b))
	assert.InDelta(t, 3, result.Root().X, 1e-3)
	assert.Greater(t, math.Abs(result.Root().Y), 1.0)
}

func TestBisectionMaximumIterations(t *testing.T) {
	result, err := Solve(DefaultCubic(), testSettings(1e-12, 10), NewBisection(1, 2))
	require.NoError(t, err)
	assert.Equal(t, common.MaximumIterations, result.Status)
	assert.False(t, result.Status.Converged())
	assert.Len(t, result.Trace, 10)
}

func TestBisectionSingleIteration(t *testing.T) {
	result, err := Solve(DefaultCubic(), testSettings(1e-3, 1), NewBisection(-5, 5))
	require.NoError(t, err)
	assert.Equal(t, Trace{{X: 0, Y: -2}}, result.Trace)
	assert.Equal(t, common.MaximumIterations, result.Status)
}

func TestBisectionExactRoot(t *testing.T) {
	// f(mid) == 0 on the first iteration
	result, err := Solve(quadratic{c: 4}, testSettings(1e-6, 50), NewBisection(0, 4))
	require.NoError(t, err)
	assert.Equal(t, Trace{{X: 2, Y: 0}}, result.Trace)
	assert.Equal(t, common.FunctionAbsTol, result.Status)
}

func TestBisectionFunctionEvaluations(t *testing.T) {
	f := &countingFunction{Function: DefaultCubic()}
	result, err := Solve(f, testSettings(1e-3, 50), NewBisection(-5, 5))
	require.NoError(t, err)
	// one evaluation for f(a) plus one per midpoint
	assert.Equal(t, len(result.Trace)+1, f.f)
	assert.Equal(t, f.f, result.FunctionEvaluations)
	assert.Zero(t, f.d)
}

func TestBisectionInvalidBracket(t *testing.T) {
	_, err := Solve(DefaultCubic(), nil, NewBisection(math.NaN(), 1))
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestBisectionNonFiniteEndpoint(t *testing.T) {
	// f(-1e200) overflows
	result, err := Solve(DefaultCubic(), nil, NewBisection(-1e200, 1e200))
	assert.Nil(t, result)
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestBisectionOverflowingMidpoint(t *testing.T) {
	// No sign change, so the bracket moves towards b until f(mid) overflows
	result, err := Solve(DefaultCubic(), nil, NewBisection(1e102, 1e103))
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDiverged)

	var derr *common.DivergenceError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, 2, derr.Iteration)
	assert.Equal(t, 7.75e102, derr.X)

	require.NotNil(t, result)
	assert.Equal(t, common.Diverged, result.Status)
	require.Len(t, result.Trace, 1)
	assert.Equal(t, 5.5e102, result.Trace[0].X)
	assert.True(t, isFinite(result.Trace[0].Y))
	assert.Equal(t, 1, result.Iterations)
}
