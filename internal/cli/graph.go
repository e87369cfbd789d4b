package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	xcerrors "github.com/opencollective/xcproj/pkg/errors"
	"github.com/opencollective/xcproj/pkg/targetgraph"
)

// graphCommand creates the graph command rendering target dependencies.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format    string
		direction string
		output    string
		detailed  bool
	)

	cmd := &cobra.Command{
		Use:   "graph <project>",
		Short: "Render the target dependency graph",
		Long: `Render the project's target dependency graph. Proxied dependencies, the
kind Xcode routes through a container item proxy, are drawn dashed.

Formats: dot (Graphviz source, default), svg, png. DOT output goes to stdout
unless --output is set; svg and png default to targets.<format>.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGraph(cmd.Context(), args[0], format, direction, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", c.cfg.Graph.Format, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&direction, "direction", "d", c.cfg.Graph.Direction, "rank direction: TB, LR")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include target kind and product type in labels")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, path, format, direction, output string, detailed bool) error {
	direction = strings.ToUpper(direction)
	if err := validateGraphFlags(format, direction); err != nil {
		return err
	}

	doc, err := c.loadDocument(path)
	if err != nil {
		return err
	}
	g, err := targetgraph.Build(doc)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		printWarning("%v", err)
	}

	dot := targetgraph.ToDOT(g, targetgraph.Options{Direction: direction, Detailed: detailed})

	if format == "dot" {
		out, err := openOutput(output)
		if err != nil {
			return err
		}
		defer out.Close()
		if _, err := io.WriteString(out, dot); err != nil {
			return err
		}
		if output != "" {
			printFile(output)
		}
		return nil
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()

	var data []byte
	if format == "svg" {
		data, err = targetgraph.RenderSVG(dot)
	} else {
		data, err = targetgraph.RenderPNG(dot)
	}
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	if spinner.Cancelled() {
		spinner.Stop()
		return context.Canceled
	}

	if output == "" {
		output = "targets." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}

	spinner.StopWithSuccess(fmt.Sprintf("Rendered %s", strings.ToUpper(format)))
	printStats(g.NodeCount(), g.EdgeCount())
	printFile(output)
	return nil
}

// validateGraphFlags rejects format and direction values the renderer does
// not understand.
func validateGraphFlags(format, direction string) error {
	if err := xcerrors.ValidateGraphFormat(format); err != nil {
		return err
	}
	return xcerrors.ValidateGraphDirection(direction)
}
