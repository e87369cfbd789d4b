package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/opencollective/xcproj/pkg/pbx"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command, an interactive group tree.
func (c *CLI) browseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse <project>",
		Short: "Walk the project's group tree interactively",
		Long: `Walk the project's group tree interactively. Groups expand and collapse
with enter; the footer shows the selected entry's kind and path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(args[0])
		},
	}

	return cmd
}

func (c *CLI) runBrowse(path string) error {
	doc, err := c.loadDocument(path)
	if err != nil {
		return err
	}
	project, err := doc.RootProject()
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(newGroupTreeModel(doc, project)).Run()
	return err
}

// =============================================================================
// GroupTreeModel - Interactive group hierarchy
// =============================================================================

// treeEntry is one visible line of the tree.
type treeEntry struct {
	ref     string
	depth   int
	isGroup bool
	missing bool
	label   string
	detail  string
}

// GroupTreeModel is the bubbletea model for the interactive group tree.
type GroupTreeModel struct {
	Doc      *pbx.Document
	Root     string
	Title    string
	Expanded map[string]bool
	Entries  []treeEntry
	Cursor   int
	Offset   int
	Height   int
}

// newGroupTreeModel creates a tree model rooted at the project's main group,
// with the root expanded.
func newGroupTreeModel(doc *pbx.Document, project *pbx.PBXProject) GroupTreeModel {
	title := project.Name
	if title == "" {
		title = "(project)"
	}
	m := GroupTreeModel{
		Doc:      doc,
		Root:     project.MainGroup,
		Title:    title,
		Expanded: map[string]bool{project.MainGroup: true},
		Height:   15,
	}
	m.reflow()
	return m
}

// reflow rebuilds the visible entries from the expansion state and clamps
// the cursor.
func (m *GroupTreeModel) reflow() {
	m.Entries = m.Entries[:0]
	m.appendEntries(m.Root, 0, map[string]bool{m.Root: true})
	if m.Cursor >= len(m.Entries) {
		m.Cursor = len(m.Entries) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// appendEntries walks expanded groups depth-first. The seen map stops
// reference cycles from recursing forever.
func (m *GroupTreeModel) appendEntries(ref string, depth int, seen map[string]bool) {
	for _, child := range childRefs(m.Doc, ref) {
		entry := newTreeEntry(m.Doc, child, depth)
		m.Entries = append(m.Entries, entry)
		if entry.isGroup && m.Expanded[child] && !seen[child] {
			seen[child] = true
			m.appendEntries(child, depth+1, seen)
		}
	}
}

func newTreeEntry(doc *pbx.Document, ref string, depth int) treeEntry {
	obj, ok := doc.Lookup(ref)
	if !ok {
		return treeEntry{ref: ref, depth: depth, missing: true, label: ref, detail: "unresolved reference"}
	}

	label := obj.DisplayName(doc)
	if label == "" {
		label = obj.Reference()
	}
	entry := treeEntry{ref: ref, depth: depth, label: label, detail: string(obj.ISA())}

	switch o := obj.(type) {
	case *pbx.PBXGroup:
		entry.isGroup = true
		entry.detail = fmt.Sprintf("%s · %d children", obj.ISA(), len(o.Children))
	case *pbx.PBXVariantGroup:
		entry.isGroup = true
		entry.detail = fmt.Sprintf("%s · %d children", obj.ISA(), len(o.Children))
	case *pbx.PBXFileReference:
		entry.detail = fmt.Sprintf("%s · %s · %s", obj.ISA(), o.Path, o.SourceTree)
	}
	return entry
}

func (m GroupTreeModel) Init() tea.Cmd {
	return nil
}

func (m GroupTreeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Entries)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", "right", "l":
			if m.Cursor < len(m.Entries) {
				entry := m.Entries[m.Cursor]
				if entry.isGroup {
					m.Expanded[entry.ref] = !m.Expanded[entry.ref]
					m.reflow()
				}
			}
		case "left", "h":
			if m.Cursor < len(m.Entries) {
				entry := m.Entries[m.Cursor]
				if entry.isGroup && m.Expanded[entry.ref] {
					m.Expanded[entry.ref] = false
					m.reflow()
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m GroupTreeModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ expand/collapse  q quit"))
	b.WriteString("\n\n")

	end := m.Offset + m.Height
	if end > len(m.Entries) {
		end = len(m.Entries)
	}

	for i := m.Offset; i < end; i++ {
		entry := m.Entries[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		marker := "  "
		if entry.isGroup {
			if m.Expanded[entry.ref] {
				marker = "▾ "
			} else {
				marker = "▸ "
			}
		}

		label := entry.label
		if entry.isGroup {
			label += "/"
		}

		line := cursor + strings.Repeat("  ", entry.depth) + marker + label
		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case entry.missing:
			b.WriteString(listDimStyle.Render(line))
		case entry.isGroup:
			b.WriteString(StyleHighlight.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.Entries) > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %s", m.Cursor+1, len(m.Entries), m.Entries[m.Cursor].detail)))
	} else {
		b.WriteString(listDimStyle.Render("  (empty group tree)"))
	}

	return b.String()
}
