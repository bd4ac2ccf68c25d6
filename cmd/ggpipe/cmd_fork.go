package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpipe"
	"github.com/gogpu/ggpipe/recipe"
)

type forkFlags struct {
	mode     string
	def      string
	bands    []string
	parallel bool
}

func newForkCmd(g *globalFlags) *cobra.Command {
	flags := &forkFlags{}

	cmd := &cobra.Command{
		Use:   "fork IN OUT",
		Short: "Process the bands of a color mode separately",
		Example: "  ggpipe fork in.png out.png --band G=atkinson\n" +
			"  ggpipe fork in.jpg out.png --mode CMYK --default atkinson --band K=contrast:1.5",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := buildFork(flags)
			if err != nil {
				return err
			}
			return processFile(cmd, g, f, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.mode, "mode", "RGB", "Color mode to split by (see 'ggpipe modes')")
	f.StringVar(&flags.def, "default", "noop", "Filter spec for bands without --band")
	f.StringArrayVar(&flags.bands, "band", nil, "LABEL=FILTER[:ARG] assignment, repeatable")
	f.BoolVar(&flags.parallel, "parallel", false, "Process bands concurrently")
	return cmd
}

func buildFork(flags *forkFlags) (*ggpipe.BandFork, error) {
	factory, err := recipe.FactoryFromSpec(flags.def)
	if err != nil {
		return nil, fmt.Errorf("--default: %w", err)
	}

	opts := []ggpipe.ForkOption{
		ggpipe.WithModeName(flags.mode),
		ggpipe.WithParallel(flags.parallel),
	}
	for _, b := range flags.bands {
		label, spec, ok := strings.Cut(b, "=")
		if !ok || label == "" {
			return nil, fmt.Errorf("%w: --band %q is not LABEL=FILTER", ggpipe.ErrConfiguration, b)
		}
		p, err := recipe.FromSpec(spec)
		if err != nil {
			return nil, fmt.Errorf("--band %s: %w", label, err)
		}
		opts = append(opts, ggpipe.WithBand(strings.ToUpper(label), p))
	}
	return ggpipe.NewBandFork(factory, opts...)
}
