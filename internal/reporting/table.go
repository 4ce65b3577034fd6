package reporting

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"

	"github.com/bxrne/launchrail/pkg/grid"
)

// SummaryTable renders an ASCII table of per-row min/max/mean values for
// a result grid, one row per latitude. It is printed to stderr by every
// CLI binary after a run and embedded in the HTML job report.
func SummaryTable(rg *grid.ResultGrid) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.Header([]string{"Latitude", "Min", "Max", "Mean"})

	for _, row := range rg.Rows() {
		if len(row) == 0 {
			continue
		}
		min, max, total := row[0].Value, row[0].Value, 0.0
		for _, p := range row {
			if p.Value < min {
				min = p.Value
			}
			if p.Value > max {
				max = p.Value
			}
			total += p.Value
		}
		mean := total / float64(len(row))
		_ = table.Append([]string{
			fmt.Sprintf("%.4f", row[0].Lat),
			fmt.Sprintf("%.6g", min),
			fmt.Sprintf("%.6g", max),
			fmt.Sprintf("%.6g", mean),
		})
	}
	_ = table.Render()
	return buf.String()
}
