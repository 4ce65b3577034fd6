// Command tessgy computes the gy gravity-vector component of a
// tesseroid model on a regular spherical grid.
package main

import (
	"fmt"
	"os"

	"github.com/bxrne/launchrail/internal/cli"
	"github.com/bxrne/launchrail/pkg/kernel"
)

func main() {
	params, ok, err := cli.Parse("tessgy", os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tessgy:", err)
		os.Exit(1)
	}
	if !ok {
		return
	}
	if err := cli.Run(params, kernel.Gy, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "tessgy:", err)
		os.Exit(1)
	}
}
