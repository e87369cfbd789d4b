package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/opencollective/xcproj/pkg/pbx"
)

// fmtCommand creates the fmt command for canonical reformatting.
func (c *CLI) fmtCommand() *cobra.Command {
	var (
		write bool
		check bool
	)

	cmd := &cobra.Command{
		Use:   "fmt <project>...",
		Short: "Rewrite project files in canonical form",
		Long: `Rewrite project files in canonical form: tab indentation, sections grouped
and bannered by object kind, comments regenerated, strings quoted the way
Xcode quotes them.

By default the formatted text is printed to stdout. With --write the files
are rewritten in place; with --check nothing is written and the command
fails listing the files that are not canonical.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && check {
				return fmt.Errorf("--write and --check are mutually exclusive")
			}
			return c.runFmt(args, write, check)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite files in place")
	cmd.Flags().BoolVar(&check, "check", false, "list non-canonical files and fail")

	return cmd
}

func (c *CLI) runFmt(paths []string, write, check bool) error {
	var dirty []string
	for _, path := range paths {
		resolved, err := pbx.ResolveProjectPath(path)
		if err != nil {
			return err
		}
		original, err := os.ReadFile(resolved)
		if err != nil {
			return err
		}
		doc, err := pbx.ReadFile(resolved)
		if err != nil {
			return err
		}
		formatted := doc.Marshal()

		if !bytes.Equal(original, formatted) {
			dirty = append(dirty, resolved)
			if write {
				if err := pbx.WriteFile(doc, resolved); err != nil {
					return err
				}
				printSuccess("Formatted %s", resolved)
			}
		}
		if !write && !check {
			if _, err := os.Stdout.Write(formatted); err != nil {
				return err
			}
		}
	}

	if check && len(dirty) > 0 {
		for _, path := range dirty {
			fmt.Println(path)
		}
		return fmt.Errorf("%d file(s) not in canonical form", len(dirty))
	}
	return nil
}
