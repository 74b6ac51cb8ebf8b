package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"deedles.dev/xdiagram/geom"
	"deedles.dev/xdiagram/scene"
	"deedles.dev/xdiagram/svg"
)

type renderOpts struct {
	output string
	margin float64
	stroke string
	width  float64
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <scene.toml>",
		Short: "Render a scene file as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return runRender(cmd, args[0], cmd.OutOrStdout(), opts)
			}

			// The output file is only written once the whole document
			// has rendered.
			var buf bytes.Buffer
			if err := runRender(cmd, args[0], &buf, opts); err != nil {
				return err
			}
			return os.WriteFile(opts.output, buf.Bytes(), 0644)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&opts.margin, "margin", 10, "space around the diagram")
	cmd.Flags().StringVar(&opts.stroke, "stroke", "black", "default stroke color")
	cmd.Flags().Float64Var(&opts.width, "stroke-width", 1, "default stroke width")

	return cmd
}

func runRender(cmd *cobra.Command, path string, w io.Writer, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())

	s, err := scene.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded scene", "path", path, "items", len(s.Items), "method", s.Method)

	d, err := s.Build()
	if err != nil {
		return fmt.Errorf("build %q: %w", path, err)
	}

	b := d.Bounds()
	logger.Debug("built diagram",
		"shapes", d.Len(),
		"width", b.Extent(geom.X[float64]()),
		"height", b.Extent(geom.Y[float64]()),
	)

	err = svg.Render(w, d,
		svg.WithMargin(opts.margin),
		svg.WithStroke(opts.stroke, opts.width),
	)
	if err != nil {
		return fmt.Errorf("render %q: %w", path, err)
	}

	logger.Info("rendered scene", "path", path, "shapes", d.Len())
	return nil
}
