// Command tessgzz computes the gzz gravity-gradient component of a
// tesseroid model on a regular spherical grid.
package main

import (
	"fmt"
	"os"

	"github.com/bxrne/launchrail/internal/cli"
	"github.com/bxrne/launchrail/pkg/kernel"
)

func main() {
	params, ok, err := cli.Parse("tessgzz", os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tessgzz:", err)
		os.Exit(1)
	}
	if !ok {
		return
	}
	if err := cli.Run(params, kernel.Gzz, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "tessgzz:", err)
		os.Exit(1)
	}
}
