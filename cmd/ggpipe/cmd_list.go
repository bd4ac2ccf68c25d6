package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpipe/mode"
	"github.com/gogpu/ggpipe/recipe"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List color modes and their bands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MODE\tBANDS\tALPHA")
			for _, m := range mode.Modes() {
				info := m.Info()
				fmt.Fprintf(w, "%s\t%s\t%v\n", info.Name, strings.Join(info.Bands, ","), info.HasAlpha)
			}
			return w.Flush()
		},
	}
}

func newFiltersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "List filters usable in --band, --default and recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FILTER\tARG\tDESCRIPTION")
			for _, e := range recipe.Entries() {
				arg := e.Primary
				if arg == "" {
					arg = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, arg, e.Doc)
			}
			return w.Flush()
		},
	}
}

func newRecipesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recipes",
		Short: "List built-in recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RECIPE\tDESCRIPTION")
			for _, name := range recipe.List() {
				r, err := recipe.Builtin(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%s\n", r.Name, r.Description)
			}
			return w.Flush()
		},
	}
}
