package main

import (
	"github.com/btracey/rootfind/internal/report"
	"github.com/btracey/rootfind/internal/sweep"
	"github.com/btracey/rootfind/univariate"
	"github.com/spf13/cobra"
)

func newSweepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run Newton's method from many starting estimates",
		Long: `Runs Newton's method from n evenly spaced starting estimates in [from, to]
concurrently and prints how each solve ended, in seed order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			from, _ := f.GetFloat64("from")
			to, _ := f.GetFloat64("to")
			n, _ := f.GetInt("n")
			workers, _ := f.GetInt("workers")

			p, err := solveParams(cmd)
			if err != nil {
				return err
			}
			p.Method = univariate.MethodNewton
			format, err := outputFormat(cmd, report.Table)
			if err != nil {
				return err
			}

			seeds, err := sweep.Seeds(from, to, n)
			if err != nil {
				return err
			}
			a.logger.Debug("sweeping", "from", from, "to", to, "n", n, "workers", workers)
			rows, err := sweep.Newton(cmd.Context(), univariate.DefaultCubic(), seeds, p, workers)
			if err != nil {
				return err
			}
			return report.WriteSweep(cmd.OutOrStdout(), format, rows)
		},
	}

	d := univariate.DefaultParams()
	f := cmd.Flags()
	f.Float64("from", -3, "First starting estimate")
	f.Float64("to", 3, "Last starting estimate")
	f.Int("n", 13, "Number of starting estimates")
	f.Int("workers", 0, "Concurrent solves (0 uses GOMAXPROCS)")
	f.Float64("epsilon", d.Epsilon, "Absolute tolerance")
	f.Int("max-iterations", d.MaxIterations, "Maximum number of iterations")
	f.String("config", "", "YAML file with solve parameters")
	f.StringP("format", "o", "", "Output format (table, csv, json)")
	return cmd
}
