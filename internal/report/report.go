// Package report renders finished solves for the terminal and for other
// programs.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/btracey/rootfind/common"
	"github.com/btracey/rootfind/univariate"
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Format selects how a solve is written
type Format string

const (
	Table    Format = "table"
	CSV      Format = "csv"
	JSON     Format = "json"
	Markdown Format = "markdown"
	Report   Format = "report" // markdown rendered for the terminal
)

// Formats lists the accepted formats
var Formats = []Format{Table, CSV, JSON, Markdown, Report}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Solve is one finished solve and the parameters that produced it
type Solve struct {
	Params univariate.Params `json:"params"`
	*univariate.Result
	Error string `json:"error,omitempty"`
}

// Write renders s to w in the given format
func Write(w io.Writer, format Format, s Solve) error {
	switch format {
	case Table:
		return writeTable(w, s)
	case CSV:
		return writeCSV(w, s.Result.Trace)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case Markdown:
		_, err := io.WriteString(w, markdown(s))
		return err
	case Report:
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(markdown(s))
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeTable(w io.Writer, s Solve) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "iter\tx\tf(x)")
	for i, p := range s.Trace {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, formatFloat(p.X), formatFloat(p.Y))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	status := out.String(s.Status.String()).Foreground(out.Color(statusColor(s.Status))).Bold()
	_, err := fmt.Fprintf(w, "\n%s: %s after %d iterations (%d evaluations) in %s\n",
		s.Params.Method, status, s.Iterations, s.FunctionEvaluations, s.Runtime)
	if err == nil && s.Error != "" {
		_, err = fmt.Fprintf(w, "%s\n", out.String(s.Error).Foreground(out.Color("1")))
	}
	return err
}

func statusColor(st common.Status) string {
	switch {
	case st.Converged():
		return "2"
	case st == common.MaximumIterations:
		return "3"
	default:
		return "1"
	}
}

func writeCSV(w io.Writer, tr univariate.Trace) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"iteration", "x", "y"}); err != nil {
		return err
	}
	for i, p := range tr {
		rec := []string{strconv.Itoa(i), formatFloat(p.X), formatFloat(p.Y)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

var explanations = map[univariate.Method]string{
	univariate.MethodBisection: "The bisection method keeps an interval [a, b] and evaluates f at its " +
		"midpoint. The half of the interval over which f changes sign is kept, so the " +
		"interval halves every iteration. It stops when |f(mid)| or the interval width " +
		"drops below epsilon.",
	univariate.MethodNewton: "Newton's method replaces f by its tangent line at the current estimate " +
		"and moves to where the tangent crosses zero: x = x - f(x)/f'(x). Close to a root " +
		"the number of correct digits roughly doubles per iteration, but a flat tangent " +
		"sends the next estimate far away.",
}

func markdown(s Solve) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title(s.Params.Method))
	if e, ok := explanations[s.Params.Method]; ok {
		fmt.Fprintf(&b, "%s\n\n", e)
	}
	fmt.Fprintf(&b, "Solving `f(x) = x^3 - x - 2` with epsilon `%s` and at most %d iterations.\n\n",
		formatFloat(s.Params.Epsilon), s.Params.MaxIterations)

	b.WriteString("| iter | x | f(x) |\n|---:|---:|---:|\n")
	for i, p := range s.Trace {
		fmt.Fprintf(&b, "| %d | %s | %s |\n", i, formatFloat(p.X), formatFloat(p.Y))
	}
	fmt.Fprintf(&b, "\n**%s** after %d iterations, %d evaluations, %s.\n",
		s.Status, s.Iterations, s.FunctionEvaluations, s.Runtime)
	if s.Error != "" {
		fmt.Fprintf(&b, "\n> %s\n", s.Error)
	}
	return b.String()
}

func title(m univariate.Method) string {
	switch m {
	case univariate.MethodBisection:
		return "Bisection method"
	case univariate.MethodNewton:
		return "Newton's method"
	}
	return string(m)
}
