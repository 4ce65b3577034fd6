package reporting_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerodha/logf"

	"github.com/bxrne/launchrail/internal/reporting"
	"github.com/bxrne/launchrail/pkg/grid"
)

func testGrid() *grid.ResultGrid {
	rg := grid.NewResultGrid(grid.Spec{West: -2, East: 2, South: -2, North: 2, NLon: 3, NLat: 3})
	for i := range rg.Points {
		rg.Points[i].Value = float64(i)
	}
	return rg
}

func TestSummaryTable(t *testing.T) {
	table := reporting.SummaryTable(testGrid())
	assert.Contains(t, table, "Latitude")
	assert.Contains(t, table, "Mean")
}

func TestGenerateLonProfilePlot(t *testing.T) {
	log := logf.New(logf.Opts{Writer: io.Discard})
	assetsDir := t.TempDir()
	renderer, err := reporting.NewTemplateRenderer(&log, "../../templates", assetsDir)
	require.NoError(t, err)

	err = renderer.GenerateLonProfilePlot(testGrid(), "profile.svg")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(assetsDir, "profile.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "<?xml")
}

func TestCreateReportBundle(t *testing.T) {
	log := logf.New(logf.Opts{Writer: io.Discard})
	outputDir := t.TempDir()
	renderer, err := reporting.NewTemplateRenderer(&log, "../../templates", outputDir)
	require.NoError(t, err)

	rg := testGrid()
	report := &reporting.JobReport{
		JobID:     "test-job",
		Component: "gz",
		Algorithm: "2D",
		OrderLon:  5, OrderLat: 5, OrderR: 5,
		Spec:  rg.Spec,
		Stats: rg.Summarize(),
	}
	require.NoError(t, renderer.CreateReportBundle(report, rg, outputDir))

	rendered, err := os.ReadFile(filepath.Join(outputDir, "test-job.html"))
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(rendered), "Gz"))
}
