package main

import (
	"errors"
	"fmt"

	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/config"
	"github.com/btracey/rootfind/internal/report"
	"github.com/btracey/rootfind/univariate"
	"github.com/btracey/rootfind/write"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run one solve and print its trace",
		Long: `Runs the selected method with the given parameters. Values are taken from
the defaults, then the --config file, then flags given on the command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := solveParams(cmd)
			if err != nil {
				return err
			}
			format, err := outputFormat(cmd, report.Table)
			if err != nil {
				return err
			}

			solver, err := p.Solver()
			if err != nil {
				return err
			}
			if n, ok := solver.(*univariate.Newton); ok {
				n.DerivativeTol, _ = cmd.Flags().GetFloat64("derivative-tol")
			}

			var ws *write.WriteSettings
			if progress, _ := cmd.Flags().GetBool("progress"); progress {
				ws = &write.WriteSettings{
					DisplayWriters:  []write.Writer{{Writer: cmd.ErrOrStderr(), T: write.Displayer}},
					DisplayInterval: -1,
				}
			}

			a.logger.Debug("solving", "method", p.Method, "epsilon", p.Epsilon, "max_iterations", p.MaxIterations)
			result, solveErr := univariate.Solve(univariate.DefaultCubic(), p.Settings(ws), solver)
			if solveErr != nil && !(errors.Is(solveErr, common.ErrDiverged) && result != nil) {
				return solveErr
			}

			s := report.Solve{Params: p, Result: result}
			if solveErr != nil {
				s.Error = solveErr.Error()
				a.logger.Warn("solve diverged", "error", solveErr)
			}
			if err := report.Write(cmd.OutOrStdout(), format, s); err != nil {
				return fmt.Errorf("writing report: %w", err)
			}
			return solveErr
		},
	}

	d := univariate.DefaultParams()
	f := cmd.Flags()
	f.String("method", string(d.Method), "Method to run (bisection, newton)")
	f.Float64("a", d.A, "Left end of the bisection bracket")
	f.Float64("b", d.B, "Right end of the bisection bracket")
	f.Float64("x0", d.X0, "Initial estimate for Newton's method")
	f.Float64("epsilon", d.Epsilon, "Absolute tolerance")
	f.Int("max-iterations", d.MaxIterations, "Maximum number of iterations")
	f.Float64("derivative-tol", 0, "Newton refuses steps where |f'(x)| is at most this value")
	f.String("config", "", "YAML file with solve parameters")
	f.StringP("format", "o", "", "Output format (table, csv, json, markdown, report)")
	f.Bool("progress", false, "Write per-iteration progress to stderr")
	return cmd
}

// solveParams layers defaults, the config file and explicitly set flags
func solveParams(cmd *cobra.Command) (univariate.Params, error) {
	p := univariate.DefaultParams()
	f := cmd.Flags()
	if path, _ := f.GetString("config"); path != "" {
		var err error
		if p, err = config.Load(path, p); err != nil {
			return p, err
		}
	}
	if f.Changed("method") {
		m, _ := f.GetString("method")
		p.Method = univariate.Method(m)
	}
	if f.Changed("a") {
		p.A, _ = f.GetFloat64("a")
	}
	if f.Changed("b") {
		p.B, _ = f.GetFloat64("b")
	}
	if f.Changed("x0") {
		p.X0, _ = f.GetFloat64("x0")
	}
	if f.Changed("epsilon") {
		p.Epsilon, _ = f.GetFloat64("epsilon")
	}
	if f.Changed("max-iterations") {
		p.MaxIterations, _ = f.GetInt("max-iterations")
	}
	return p, nil
}

// outputFormat returns the --format flag, defaulting to def on a terminal
// and to json otherwise
func outputFormat(cmd *cobra.Command, def report.Format) (report.Format, error) {
	s, _ := cmd.Flags().GetString("format")
	if s == "" {
		if isTerminal(cmd.OutOrStdout()) {
			return def, nil
		}
		return report.JSON, nil
	}
	return report.ParseFormat(s)
}
