package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpipe"
	"github.com/gogpu/ggpipe/internal/imageio"
)

// version is set at build time via -ldflags.
var version = ggpipe.Version

// globalFlags are shared by every subcommand.
type globalFlags struct {
	verbose bool
	quality int
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "ggpipe",
		Short: "Compose image processors into pipelines and band forks",
		Long: "ggpipe runs image processors over files: single filters, pipelines,\n" +
			"per-band forks in any color mode and CMYK overprint simulation.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if g.verbose {
				ggpipe.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
	}

	f := root.PersistentFlags()
	f.BoolVarP(&g.verbose, "verbose", "v", false, "Log processing details to stderr")
	f.IntVar(&g.quality, "quality", imageio.DefaultJPEGQuality, "JPEG output quality (1-100)")

	root.AddCommand(
		newModesCmd(),
		newFiltersCmd(),
		newRecipesCmd(),
		newOverprintCmd(g),
		newForkCmd(g),
		newRunCmd(g),
	)
	return root
}
