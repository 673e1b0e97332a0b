package univariate

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Function is a scalar function whose root is sought. Deriv must return the
// analytic derivative of F.
type Function interface {
	F(x float64) float64
	Deriv(x float64) float64
}

// Cubic is the polynomial A x^3 + B x^2 + C x + D. Terms are evaluated one
// at a time with math.Pow and summed from the highest power down, so the
// default cubic reproduces pow(x, 3) - x - 2 rather than a Horner scheme.
type Cubic struct {
	A, B, C, D float64
}

// DefaultCubic returns x^3 - x - 2, which has a single real root near 1.5214
func DefaultCubic() Cubic {
	return Cubic{A: 1, B: 0, C: -1, D: -2}
}

func (c Cubic) F(x float64) float64 {
	return c.A*math.Pow(x, 3) + c.B*math.Pow(x, 2) + c.C*x + c.D
}

func (c Cubic) Deriv(x float64) float64 {
	return 3*c.A*math.Pow(x, 2) + 2*c.B*x + c.C
}

// Sample evaluates f at n evenly spaced locations spanning [lo, hi], including
// both ends. It is intended for drawing the curve underneath a trace.
func Sample(f Function, lo, hi float64, n int) (Trace, error) {
	if n < 2 {
		return nil, errors.New("sample: need at least two points")
	}
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, errors.New("sample: bounds must be finite")
	}
	xs := floats.Span(make([]float64, n), lo, hi)
	tr := make(Trace, n)
	for i, x := range xs {
		y := f.F(x)
		if !isFinite(y) {
			return nil, fmt.Errorf("sample: f(%g) = %g is not finite", x, y)
		}
		tr[i] = Point{X: x, Y: y}
	}
	return tr, nil
}
