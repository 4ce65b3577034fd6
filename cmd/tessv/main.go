// Command tessv computes the gravitational potential V of a tesseroid
// model on a regular spherical grid.
package main

import (
	"fmt"
	"os"

	"github.com/bxrne/launchrail/internal/cli"
	"github.com/bxrne/launchrail/pkg/kernel"
)

func main() {
	params, ok, err := cli.Parse("tessv", os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tessv:", err)
		os.Exit(1)
	}
	if !ok {
		return
	}
	if err := cli.Run(params, kernel.V, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "tessv:", err)
		os.Exit(1)
	}
}
