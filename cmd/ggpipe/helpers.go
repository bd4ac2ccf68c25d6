package main

import (
	"fmt"
	"image"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggpipe"
	"github.com/gogpu/ggpipe/internal/imageio"
)

// processFile loads in, runs p over it and saves the result to out.
func processFile(cmd *cobra.Command, g *globalFlags, p ggpipe.Processor, in, out string) error {
	src, format, err := imageio.Load(in)
	if err != nil {
		return fmt.Errorf("load %s: %w", in, err)
	}
	ggpipe.Logger().Debug("cli: loaded", "path", in, "format", format, "bounds", src.Bounds())

	start := time.Now()
	dst, err := p.Process(src)
	if err != nil {
		return fmt.Errorf("process %s: %w", in, err)
	}
	elapsed := time.Since(start)

	if err := imageio.Save(out, dst, imageio.Options{Quality: g.quality}); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%s, %s)\n", in, out, describe(dst), elapsed.Round(time.Millisecond))
	return nil
}

// describe summarizes an image as "WxH type".
func describe(img image.Image) string {
	b := img.Bounds()
	return fmt.Sprintf("%dx%d %T", b.Dx(), b.Dy(), img)
}
