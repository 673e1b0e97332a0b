package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/univariate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

type solveOutput struct {
	Params     univariate.Params `json:"params"`
	Iterations int               `json:"iterations"`
	Status     string            `json:"status"`
	Trace      univariate.Trace  `json:"trace"`
	Error      string            `json:"error"`
}

func decodeSolve(t *testing.T, s string) solveOutput {
	t.Helper()
	var o solveOutput
	require.NoError(t, json.Unmarshal([]byte(s), &o))
	return o
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "rootfind version "+version+"\n", out)
}

func TestSolveDefaultsToJSONWhenPiped(t *testing.T) {
	out, _, err := run(t, "solve")
	require.NoError(t, err)
	o := decodeSolve(t, out)
	assert.Equal(t, univariate.DefaultParams(), o.Params)
	assert.Equal(t, "FunctionAbsTol", o.Status)
	assert.InDelta(t, 1.5214, o.Trace[len(o.Trace)-1].X, 1e-3)
}

func TestSolveNewtonFlags(t *testing.T) {
	out, _, err := run(t, "solve", "--method", "newton", "--x0", "2", "--epsilon", "1e-9", "--max-iterations", "20", "-o", "json")
	require.NoError(t, err)
	o := decodeSolve(t, out)
	assert.Equal(t, univariate.MethodNewton, o.Params.Method)
	assert.Equal(t, 2.0, o.Trace[0].X)
	assert.Len(t, o.Trace, o.Iterations+1)
}

func TestSolveSingleIteration(t *testing.T) {
	out, _, err := run(t, "solve", "--max-iterations", "1", "-o", "csv")
	require.NoError(t, err)
	assert.Equal(t, "iteration,x,y\n0,0,-2\n", out)
}

func TestSolveConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rootfind.yaml")
	require.NoError(t, os.WriteFile(path, []byte("method: newton\nx0: 3\nmax_iterations: 4\n"), 0o644))

	// flags win over the file
	out, _, err := run(t, "solve", "--config", path, "--max-iterations", "2", "-o", "json")
	require.NoError(t, err)
	o := decodeSolve(t, out)
	assert.Equal(t, univariate.MethodNewton, o.Params.Method)
	assert.Equal(t, 3.0, o.Params.X0)
	assert.Equal(t, 2, o.Params.MaxIterations)
	assert.LessOrEqual(t, len(o.Trace), 3)
}

func TestSolveInvalid(t *testing.T) {
	_, _, err := run(t, "solve", "--epsilon", "0")
	assert.ErrorIs(t, err, common.ErrInvalidParameter)

	_, _, err = run(t, "solve", "--method", "secant")
	assert.ErrorIs(t, err, univariate.ErrUnknownMethod)

	_, _, err = run(t, "solve", "-o", "xml")
	assert.Error(t, err)

	_, _, err = run(t, "solve", "--log-level", "loud")
	assert.Error(t, err)
}

func TestSolveDiverged(t *testing.T) {
	out, stderr, err := run(t, "solve", "--method", "newton", "--x0", "0.5773502691896258",
		"--derivative-tol", "1e-9", "-o", "json", "--log-level", "warn")
	assert.ErrorIs(t, err, common.ErrDiverged)
	o := decodeSolve(t, out)
	assert.Equal(t, "Diverged", o.Status)
	assert.Len(t, o.Trace, 1)
	assert.NotEmpty(t, o.Error)
	assert.Contains(t, stderr, "solve diverged")
}

func TestSolveOverflowingBracket(t *testing.T) {
	out, _, err := run(t, "solve", "--a", "1e102", "--b", "1e103", "-o", "json")
	assert.ErrorIs(t, err, common.ErrDiverged)
	o := decodeSolve(t, out)
	assert.Equal(t, "Diverged", o.Status)
	require.Len(t, o.Trace, 1)
	assert.Equal(t, 5.5e102, o.Trace[0].X)

	_, _, err = run(t, "solve", "--method", "newton", "--x0", "1e103", "-o", "json")
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestSolveTable(t *testing.T) {
	out, _, err := run(t, "solve", "-o", "table")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "iter"))
	assert.Contains(t, out, "bisection: FunctionAbsTol")
}

func TestSolveProgress(t *testing.T) {
	_, stderr, err := run(t, "solve", "--progress", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, stderr, "FnEval")
}

func TestSweep(t *testing.T) {
	out, _, err := run(t, "sweep", "--from", "-1", "--to", "3", "--n", "5", "-o", "csv")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "x0,iterations,status,root,f_root", lines[0])
	for i, x0 := range []string{"-1", "0", "1", "2", "3"} {
		assert.True(t, strings.HasPrefix(lines[i+1], x0+","), lines[i+1])
	}

	_, _, err = run(t, "sweep", "--n", "1")
	assert.Error(t, err)
}
