package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/opencollective/xcproj/pkg/pbx"
)

// treeCommand creates the tree command printing the group hierarchy.
func (c *CLI) treeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree <project>",
		Short: "Print the project's group hierarchy",
		Long: `Print the project's group hierarchy, starting at the main group. Groups end
with a slash, files are plain, and references that resolve to no object are
marked missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTree(args[0])
		},
	}

	return cmd
}

func (c *CLI) runTree(path string) error {
	doc, err := c.loadDocument(path)
	if err != nil {
		return err
	}
	project, err := doc.RootProject()
	if err != nil {
		return err
	}

	fmt.Print(renderGroupTree(doc, project))
	return nil
}

// renderGroupTree formats the whole hierarchy as one string, the project
// name on top and one child per line below.
func renderGroupTree(doc *pbx.Document, project *pbx.PBXProject) string {
	title := project.Name
	if title == "" {
		title = "(project)"
	}

	var b strings.Builder
	b.WriteString(StyleTitle.Render(title) + "\n")
	writeTreeLevel(&b, doc, project.MainGroup, "", map[string]bool{project.MainGroup: true})
	return b.String()
}

// writeTreeLevel walks one group's children depth-first. The seen map guards
// against reference cycles in malformed files: a ref is expanded at most
// once, later occurrences print without descending.
func writeTreeLevel(b *strings.Builder, doc *pbx.Document, ref, prefix string, seen map[string]bool) {
	children := childRefs(doc, ref)
	for i, child := range children {
		branch, cont := "├── ", "│   "
		if i == len(children)-1 {
			branch, cont = "└── ", "    "
		}
		b.WriteString(StyleDim.Render(prefix+branch) + treeLabel(doc, child) + "\n")

		if seen[child] {
			continue
		}
		seen[child] = true
		writeTreeLevel(b, doc, child, prefix+cont, seen)
	}
}

// childRefs returns the child references of a group-like object, nil for
// everything else.
func childRefs(doc *pbx.Document, ref string) []string {
	obj, ok := doc.Lookup(ref)
	if !ok {
		return nil
	}
	switch g := obj.(type) {
	case *pbx.PBXGroup:
		return g.Children
	case *pbx.PBXVariantGroup:
		return g.Children
	}
	return nil
}

// treeLabel formats one entry: groups highlighted with a trailing slash,
// files plain, other kinds tagged with their isa, unresolved references
// marked missing.
func treeLabel(doc *pbx.Document, ref string) string {
	obj, ok := doc.Lookup(ref)
	if !ok {
		return StyleDim.Render(ref + " (missing)")
	}

	name := obj.DisplayName(doc)
	if name == "" {
		name = obj.Reference()
	}

	switch obj.(type) {
	case *pbx.PBXGroup, *pbx.PBXVariantGroup:
		return StyleHighlight.Render(name + "/")
	case *pbx.PBXFileReference:
		return StyleValue.Render(name)
	}
	return StyleValue.Render(name) + " " + StyleDim.Render(string(obj.ISA()))
}
