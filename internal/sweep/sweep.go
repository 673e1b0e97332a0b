// Package sweep runs many independent Newton solves over a range of
// starting estimates.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/univariate"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// Row is the outcome of the solve started from X0
type Row struct {
	X0         float64          `json:"x0"`
	Iterations int              `json:"iterations"`
	Status     common.Status    `json:"status"`
	Root       univariate.Point `json:"root"`
	Error      string           `json:"error,omitempty"`
}

// Seeds returns n evenly spaced starting estimates spanning [from, to]
func Seeds(from, to float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("sweep: need at least two seeds, got %d", n)
	}
	return floats.Span(make([]float64, n), from, to), nil
}

// Newton solves f from every seed using the epsilon and iteration cap of p.
// At most workers solves run at once; zero uses GOMAXPROCS. Rows are returned
// in seed order. A diverging seed is reported in its row; only invalid
// parameters or cancellation abort the sweep.
func Newton(ctx context.Context, f univariate.Function, seeds []float64, p univariate.Params, workers int) ([]Row, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	rows := make([]Row, len(seeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, x0 := range seeds {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := univariate.Solve(f, p.Settings(nil), univariate.NewNewton(x0))
			row := Row{X0: x0}
			switch {
			case err == nil:
			case errors.Is(err, common.ErrDiverged) && r != nil:
				row.Error = err.Error()
			default:
				return fmt.Errorf("seed %g: %w", x0, err)
			}
			row.Iterations = r.Iterations
			row.Status = r.Status
			row.Root = r.Root()
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}
