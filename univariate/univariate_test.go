package univariate

import "math"

// quadratic is x^2 - c, with roots at ±sqrt(c) when c > 0
type quadratic struct {
	c float64
}

func (q quadratic) F(x float64) float64 {
	return x*x - q.c
}

func (q quadratic) Deriv(x float64) float64 {
	return 2 * x
}

// cubicRoot is the single real root of x^3 - x - 2
const cubicRoot = 1.5213797068045676

// countingFunction records how often it is evaluated
type countingFunction struct {
	Function
	f, d int
}

func (c *countingFunction) F(x float64) float64 {
	c.f++
	return c.Function.F(x)
}

func (c *countingFunction) Deriv(x float64) float64 {
	c.d++
	return c.Function.Deriv(x)
}

func testSettings(tol float64, maxIter int) *Settings {
	s := DefaultSettings()
	s.Tol = tol
	s.MaximumIterations = maxIter
	return s
}

// exponential is e^x - c
type exponential struct {
	c float64
}

func (e exponential) F(x float64) float64 {
	return math.Exp(x) - e.c
}

func (e exponential) Deriv(x float64) float64 {
	return math.Exp(x)
}
