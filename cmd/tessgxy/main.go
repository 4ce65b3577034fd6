// Command tessgxy computes the gxy gravity-gradient component of a
// tesseroid model on a regular spherical grid.
package main

import (
	"fmt"
	"os"

	"github.com/bxrne/launchrail/internal/cli"
	"github.com/bxrne/launchrail/pkg/kernel"
)

func main() {
	params, ok, err := cli.Parse("tessgxy", os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tessgxy:", err)
		os.Exit(1)
	}
	if !ok {
		return
	}
	if err := cli.Run(params, kernel.Gxy, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "tessgxy:", err)
		os.Exit(1)
	}
}
