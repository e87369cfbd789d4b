package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/opencollective/xcproj/pkg/pbx"
)

// dumpCommand creates the dump command for exporting a project as JSON.
func (c *CLI) dumpCommand() *cobra.Command {
	var (
		output  string
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "dump <project>",
		Short: "Decode a project file and write it as JSON",
		Long: `Decode a project file and write it as JSON.

The output is a debug view of the object graph: the same keys and values the
pbxproj text carries, with comments dropped and map keys sorted. It is meant
for inspection and diffing, not for feeding back to Xcode.

<project> may be a project.pbxproj file, an .xcodeproj bundle, or a directory
containing one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDump(args[0], output, compact)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&compact, "compact", !c.cfg.Dump.Indent, "single-line output without indentation")

	return cmd
}

func (c *CLI) runDump(path, output string, compact bool) error {
	doc, err := c.loadDocument(path)
	if err != nil {
		return err
	}

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if compact {
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		data = append(data, '\n')
		if _, err := out.Write(data); err != nil {
			return err
		}
	} else if err := pbx.WriteJSON(doc, out); err != nil {
		return err
	}

	if output != "" {
		printFile(output)
	}
	return nil
}
