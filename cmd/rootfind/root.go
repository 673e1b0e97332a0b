package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/btracey/rootfind/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

type app struct {
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}
	root := &cobra.Command{
		Use:   "rootfind",
		Short: "rootfind traces bisection and Newton's method on x^3 - x - 2",
		Long: `rootfind runs the bisection method or Newton's method on the cubic
f(x) = x^3 - x - 2 and prints every intermediate estimate.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, _ := cmd.Flags().GetString("log-level")
			level, err := logging.ParseLevel(lvl)
			if err != nil {
				return err
			}
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newSolveCmd(a),
		newSweepCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rootfind",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("rootfind version %s\n", version)
		},
	}
}

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
