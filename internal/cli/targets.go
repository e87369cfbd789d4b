package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/opencollective/xcproj/pkg/pbx"
	"github.com/opencollective/xcproj/pkg/targetgraph"
)

// targetsCommand creates the targets command listing a project's targets.
func (c *CLI) targetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets <project>",
		Short: "List the project's targets",
		Long: `List the project's targets in a table: name, kind, product type, build
configurations, and dependency count. Targets appear in reference order, the
same order the graph and serve commands use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTargets(args[0])
		},
	}

	return cmd
}

func (c *CLI) runTargets(path string) error {
	doc, err := c.loadDocument(path)
	if err != nil {
		return err
	}
	g, err := targetgraph.Build(doc)
	if err != nil {
		return err
	}
	if g.NodeCount() == 0 {
		printInfo("No targets")
		return nil
	}

	rows := make([][]string, 0, g.NodeCount())
	for _, n := range g.Nodes() {
		rows = append(rows, []string{
			n.Name,
			string(n.Kind),
			orDash(n.ProductType),
			orDash(strings.Join(configurationNames(doc, n.Ref), ", ")),
			fmt.Sprintf("%d", len(g.Children(n.Ref))),
		})
	}

	fmt.Println(targetTable(rows))
	printStats(g.NodeCount(), g.EdgeCount())
	return nil
}

// configurationNames resolves a target's configuration list to its
// configuration names, in list order. Unresolvable references are skipped.
func configurationNames(doc *pbx.Document, targetRef string) []string {
	obj, ok := doc.Lookup(targetRef)
	if !ok {
		return nil
	}

	var listRef string
	switch t := obj.(type) {
	case *pbx.PBXNativeTarget:
		listRef = t.BuildConfigurationList
	case *pbx.PBXAggregateTarget:
		listRef = t.BuildConfigurationList
	case *pbx.PBXLegacyTarget:
		listRef = t.BuildConfigurationList
	default:
		return nil
	}

	listObj, ok := doc.Lookup(listRef)
	if !ok {
		return nil
	}
	list, ok := listObj.(*pbx.XCConfigurationList)
	if !ok {
		return nil
	}

	var names []string
	for _, ref := range list.BuildConfigurations {
		confObj, ok := doc.Lookup(ref)
		if !ok {
			continue
		}
		if conf, ok := confObj.(*pbx.XCBuildConfiguration); ok {
			names = append(names, conf.Name)
		}
	}
	return names
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// targetTable renders target rows as a bordered table.
func targetTable(rows [][]string) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Target", "Kind", "Product Type", "Configurations", "Deps").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			switch col {
			case 0:
				return StyleHighlight
			case 4:
				return StyleNumber
			default:
				return StyleValue
			}
		})

	return t.Render()
}
