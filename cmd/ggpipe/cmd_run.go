package main

import (
	"github.com/spf13/cobra"

	"github.com/gogpu/ggpipe/recipe"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run RECIPE IN OUT",
		Short: "Run a YAML recipe (built-in name or file path)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.Load(args[0])
			if err != nil {
				return err
			}
			p, err := r.Build()
			if err != nil {
				return err
			}
			return processFile(cmd, g, p, args[1], args[2])
		},
	}
}
