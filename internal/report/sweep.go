package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/btracey/rootfind/internal/sweep"
)

// WriteSweep renders sweep rows. Markdown formats are not supported.
func WriteSweep(w io.Writer, format Format, rows []sweep.Row) error {
	switch format {
	case Table:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "x0\titer\tstatus\troot\tf(root)")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n",
				formatFloat(r.X0), r.Iterations, r.Status, formatFloat(r.Root.X), formatFloat(r.Root.Y))
		}
		return tw.Flush()
	case CSV:
		cw := csv.NewWriter(w)
		cw.Write([]string{"x0", "iterations", "status", "root", "f_root"})
		for _, r := range rows {
			cw.Write([]string{
				formatFloat(r.X0), strconv.Itoa(r.Iterations), r.Status.String(),
				formatFloat(r.Root.X), formatFloat(r.Root.Y),
			})
		}
		cw.Flush()
		return cw.Error()
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	return fmt.Errorf("format %q is not supported for sweeps", format)
}
