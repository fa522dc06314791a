package simplex

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTableau renders the tableau: one line per basic variable with its
// cost, its value and its row of coefficients, then the m+1 line with the
// ordinary reduced costs and, when present, the m+2 line with the penalty
// row.
func WriteTableau(out io.Writer, t *Tableau, ev Evaluation) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)

	header := []string{"base", "c_base", "plan"}
	for _, v := range t.Vars {
		header = append(header, v.Name)
	}
	writeLine(w, header)

	for r, b := range t.Basis {
		line := []string{b.Name, b.Cost.Format(t.sense), formatFloat(b.Value)}
		for j := range t.Vars {
			line = append(line, formatFloat(t.A.At(r, j)))
		}
		writeLine(w, line)
	}

	writeLine(w, objectiveLine("m+1", ev.Value, ev.Ordinary))
	if ev.HasPenalty() {
		writeLine(w, objectiveLine("m+2", ev.PenaltyValue, ev.Penalty))
	}

	return w.Flush()
}

func objectiveLine(label string, value float64, row []float64) []string {
	line := []string{"", label, formatFloat(value)}
	for _, v := range row {
		line = append(line, formatFloat(v))
	}
	return line
}

func writeLine(w io.Writer, cells []string) {
	fmt.Fprintf(w, "%s\t\n", strings.Join(cells, "\t"))
}
