// Package reporting renders a finished job's ResultGrid as an HTML page,
// an SVG longitude profile and an ASCII summary table, following the
// template/plot/funcMap pattern the rest of this repository's ambient
// stack uses for generated output.
package reporting

import "github.com/bxrne/launchrail/pkg/grid"

// JobReport is the data handed to the report template: identifying
// information about the job plus the computed grid's statistics. The
// grid's points are not passed directly to the template; the plot and
// table are pre-rendered and embedded as strings/HTML fragments.
type JobReport struct {
	JobID        string
	Component    string
	Algorithm    string
	OrderLon     int
	OrderLat     int
	OrderR       int
	Spec         grid.Spec
	Stats        grid.Stats
	GeneratedAt  string
	PlotFileName string
	SummaryTable string
	Extensions   map[string]interface{}
}
