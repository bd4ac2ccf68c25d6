package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpipe"
	"github.com/gogpu/ggpipe/recipe"
)

type overprintFlags struct {
	gcr      float64
	dither   string
	parallel bool
}

func newOverprintCmd(g *globalFlags) *cobra.Command {
	flags := &overprintFlags{}

	cmd := &cobra.Command{
		Use:   "overprint IN OUT",
		Short: "Simulate CMYK printing with a processor on every plate",
		Long: "overprint separates IN into C, M, Y and K plates with gray-component\n" +
			"replacement, runs --dither over every plate, renders each plate in its\n" +
			"ink and multiplies the inks together.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			factory, err := ditherFactory(flags.dither)
			if err != nil {
				return err
			}
			f, err := ggpipe.NewOverprintFork(factory,
				ggpipe.WithGCR(flags.gcr),
				ggpipe.WithParallel(flags.parallel),
			)
			if err != nil {
				return err
			}
			return processFile(cmd, g, f, args[0], args[1])
		},
	}

	f := cmd.Flags()
	f.Float64Var(&flags.gcr, "gcr", ggpipe.DefaultGCRPercent, "Gray-component replacement percentage (0-100)")
	f.StringVar(&flags.dither, "dither", "atkinson", "Plate processor: a filter spec, or none")
	f.BoolVar(&flags.parallel, "parallel", false, "Process plates concurrently")
	return cmd
}

// ditherFactory maps the --dither value to a fork default.
func ditherFactory(spec string) (ggpipe.Factory, error) {
	switch strings.ToLower(spec) {
	case "", "none":
		return ggpipe.NoOpFactory, nil
	case "floyd":
		spec = "floyd-steinberg"
	}
	return recipe.FactoryFromSpec(spec)
}
