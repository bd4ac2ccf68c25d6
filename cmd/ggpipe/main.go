// ggpipe applies processor pipelines, band forks and print simulations to
// image files.
//
// Usage:
//
//	ggpipe modes
//	ggpipe filters
//	ggpipe recipes
//	ggpipe overprint IN OUT [--gcr 20] [--dither atkinson] [--parallel]
//	ggpipe fork IN OUT [--mode RGB] [--default NAME] [--band G=brightness:1.4]...
//	ggpipe run RECIPE IN OUT
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
