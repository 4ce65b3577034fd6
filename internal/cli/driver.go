package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/bxrne/launchrail/internal/modelio"
	"github.com/bxrne/launchrail/internal/reporting"
	"github.com/bxrne/launchrail/pkg/field"
	"github.com/bxrne/launchrail/pkg/grid"
	"github.com/bxrne/launchrail/pkg/kernel"
)

// Params holds one component binary's fully parsed command line.
type Params struct {
	ModelPath string
	Grid      grid.Spec
	Orders    field.Orders
	Algorithm kernel.Algorithm
}

// Parse parses args (conventionally os.Args[1:]) against the shared
// -R/-B/-Z/-O/-A flags plus a single positional model-file argument. An
// empty args slice prints the usage block to stderr and returns
// (Params{}, false, nil), matching the no-flags-exits-0 contract; flag
// errors cause a non-nil error.
func Parse(programName string, args []string, out io.Writer) (Params, bool, error) {
	if len(args) == 0 {
		printUsage(programName, out)
		return Params{}, false, nil
	}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(out)

	var bounds Bounds
	var dims Dims
	var orders Orders
	var height float64
	var algorithm string
	var heightSet bool

	fs.Var(&bounds, "R", "grid bounds W/E/S/N in degrees (required)")
	fs.Var(&dims, "B", "grid dimensions nlon/nlat (required)")
	fs.Func("Z", "observation height in metres above the sphere (required)", func(s string) error {
		var v float64
		if _, err := fmt.Sscanf(s, "%g", &v); err != nil {
			return fmt.Errorf("-Z: %w", err)
		}
		height = v
		heightSet = true
		return nil
	})
	orders.Lon, orders.Lat, orders.R = 5, 5, 5
	fs.Var(&orders, "O", "GLQ orders lon/lat/r (default 5/5/5)")
	fs.StringVar(&algorithm, "A", "2D", "algorithm variant: 2D or 3D")

	if err := fs.Parse(args); err != nil {
		return Params{}, false, err
	}

	if fs.NArg() != 1 {
		return Params{}, false, fmt.Errorf("expected exactly one model file argument, got %d", fs.NArg())
	}
	if !bounds.IsSet() {
		return Params{}, false, fmt.Errorf("-R is required")
	}
	if !dims.IsSet() {
		return Params{}, false, fmt.Errorf("-B is required")
	}
	if !heightSet {
		return Params{}, false, fmt.Errorf("-Z is required")
	}

	var alg kernel.Algorithm
	switch algorithm {
	case "2D":
		alg = kernel.TwoD
	case "3D":
		alg = kernel.ThreeD
	default:
		return Params{}, false, fmt.Errorf("-A: expected 2D or 3D, got %q", algorithm)
	}

	return Params{
		ModelPath: fs.Arg(0),
		Grid: grid.Spec{
			West: bounds.West, East: bounds.East,
			South: bounds.South, North: bounds.North,
			Height: height,
			NLon:   dims.NLon, NLat: dims.NLat,
		},
		Orders:    field.Orders{Lon: orders.Lon, Lat: orders.Lat, R: orders.R},
		Algorithm: alg,
	}, true, nil
}

func printUsage(programName string, out io.Writer) {
	fmt.Fprintf(out, `usage: %s -R W/E/S/N -B nlon/nlat -Z height [-O lon/lat/r] [-A 2D|3D] model_file

  -R W/E/S/N     grid bounds in degrees (required)
  -B nlon/nlat   grid dimensions, positive integers (required)
  -Z height      observation height in metres above the sphere (required)
  -O lon/lat/r   GLQ orders, positive integers (default 5/5/5)
  -A 2D|3D       algorithm variant (default 2D)
`, programName)
}

// Run loads the model at params.ModelPath, evaluates component over the
// grid, and writes lon/lat/value rows in row-major order to out, with a
// blank line between latitude rows. Model-read warnings go to warn.
func Run(params Params, component kernel.Component, out io.Writer, warn io.Writer) error {
	f, err := os.Open(params.ModelPath)
	if err != nil {
		return fmt.Errorf("cli: open model file: %w", err)
	}
	defer f.Close()

	model, warnings, err := modelio.Read(f)
	if err != nil {
		return fmt.Errorf("cli: read model file: %w", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(warn, "warning: %s\n", w.String())
	}

	result, err := field.Evaluate(model, params.Grid, component, params.Algorithm, params.Orders)
	if err != nil {
		return fmt.Errorf("cli: evaluate: %w", err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(warn, "evaluated %d elements over %d grid points\n", model.Len(), len(result.Points))

	for _, row := range result.Rows() {
		for _, p := range row {
			fmt.Fprintf(out, "%g %g %g\n", p.Lon, p.Lat, p.Value)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintln(warn, reporting.SummaryTable(result))
	return nil
}
