// Command tesssubdivide reads a tesseroid model file and writes a
// subdivided model to standard output, splitting each tesseroid into
// n_lon*n_lat*n_r equal sub-tesseroids of the same density.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bxrne/launchrail/internal/cli"
	"github.com/bxrne/launchrail/internal/modelio"
	"github.com/bxrne/launchrail/internal/subdivide"
)

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintln(os.Stderr, "usage: tesssubdivide -O lon/lat/r model_file")
		return
	}

	fs := flag.NewFlagSet("tesssubdivide", flag.ContinueOnError)
	var counts cli.Orders
	counts.Set("1/1/1")
	fs.Var(&counts, "O", "division counts lon/lat/r (default 1/1/1)")
	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "tesssubdivide: expected exactly one model file argument")
		os.Exit(1)
	}
	modelPath := fs.Arg(0)

	f, err := os.Open(modelPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tesssubdivide:", err)
		os.Exit(1)
	}
	defer f.Close()

	model, warnings, err := modelio.Read(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tesssubdivide:", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w.String())
	}

	out, err := subdivide.Model(model, subdivide.Counts{Lon: counts.Lon, Lat: counts.Lat, R: counts.R})
	if err != nil {
		fmt.Fprintln(os.Stderr, "tesssubdivide:", err)
		os.Exit(1)
	}

	provenance := []string{
		fmt.Sprintf("input file: %s", modelPath),
		fmt.Sprintf("division counts: %d/%d/%d", counts.Lon, counts.Lat, counts.R),
		"generated by tesssubdivide",
	}
	if err := modelio.Write(os.Stdout, out, provenance...); err != nil {
		fmt.Fprintln(os.Stderr, "tesssubdivide:", err)
		os.Exit(1)
	}
}
