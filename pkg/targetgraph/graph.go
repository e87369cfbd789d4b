package targetgraph

import (
	"errors"
	"slices"

	"github.com/opencollective/xcproj/pkg/pbx"
)

var (
	// ErrInvalidRef is returned by [Graph.AddNode] when the node's reference
	// is empty. Every node carries the reference its target has in the
	// project file.
	ErrInvalidRef = errors.New("target reference must not be empty")

	// ErrDuplicateRef is returned by [Graph.AddNode] when a node with the
	// same reference already exists.
	ErrDuplicateRef = errors.New("duplicate target reference")

	// ErrUnknownEndpoint is returned by [Graph.AddEdge] when either end of
	// the edge has no node in the graph.
	ErrUnknownEndpoint = errors.New("unknown edge endpoint")

	// ErrDependencyCycle is returned by [Graph.Validate] when the dependency
	// relation is cyclic. Cycles are detected using depth-first search with
	// white/gray/black coloring.
	ErrDependencyCycle = errors.New("dependency cycle between targets")
)

// Node is one target of the project: native, aggregate, or legacy.
type Node struct {
	Ref         string  // object reference in the project file
	Name        string  // target name
	Kind        pbx.ISA // PBXNativeTarget, PBXAggregateTarget, or PBXLegacyTarget
	ProductType string  // native targets only, e.g. com.apple.product-type.application
}

// Edge records that From must build after To.
type Edge struct {
	From string // dependent target reference
	To   string // dependency target reference

	// Proxied marks a dependency declared through a PBXContainerItemProxy
	// instead of a direct target link.
	Proxied bool
}

// Graph is the target dependency graph of a single project. Nodes keep the
// order in which they were added, so graphs built by [Build] iterate
// deterministically. The zero value is not usable; use [New].
//
// Graph is not safe for concurrent mutation.
type Graph struct {
	nodes    map[string]*Node
	order    []string
	edges    []Edge
	outgoing map[string][]string // ref -> dependency refs
	incoming map[string][]string // ref -> dependent refs
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddNode adds a target node. The reference must be non-empty and unique.
func (g *Graph) AddNode(n Node) error {
	if n.Ref == "" {
		return ErrInvalidRef
	}
	if _, exists := g.nodes[n.Ref]; exists {
		return ErrDuplicateRef
	}
	node := &n
	g.nodes[node.Ref] = node
	g.order = append(g.order, node.Ref)
	return nil
}

// AddEdge adds a dependency edge between two existing nodes. Multiple edges
// between the same pair are allowed, though project files rarely produce them.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.nodes[e.From]; !ok {
		return ErrUnknownEndpoint
	}
	if _, ok := g.nodes[e.To]; !ok {
		return ErrUnknownEndpoint
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// Node returns the node with the given reference and true, or nil and false.
func (g *Graph) Node(ref string) (*Node, bool) {
	n, ok := g.nodes[ref]
	return n, ok
}

// Nodes returns all nodes in insertion order. The returned slice contains
// pointers to the actual node structs.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, ref := range g.order {
		out = append(out, g.nodes[ref])
	}
	return out
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of targets.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of dependency edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the references this target depends on, in edge insertion
// order. The returned slice is a read-only view.
func (g *Graph) Children(ref string) []string { return g.outgoing[ref] }

// Parents returns the references that depend on this target, in edge
// insertion order. The returned slice is a read-only view.
func (g *Graph) Parents(ref string) []string { return g.incoming[ref] }

// Sources returns targets nothing depends on, in insertion order. In a
// typical project these are the applications and top-level aggregates.
func (g *Graph) Sources() []*Node {
	var out []*Node
	for _, ref := range g.order {
		if len(g.incoming[ref]) == 0 {
			out = append(out, g.nodes[ref])
		}
	}
	return out
}

// Sinks returns targets that depend on nothing, in insertion order.
func (g *Graph) Sinks() []*Node {
	var out []*Node
	for _, ref := range g.order {
		if len(g.outgoing[ref]) == 0 {
			out = append(out, g.nodes[ref])
		}
	}
	return out
}

// Validate reports whether the dependency relation is acyclic. The graph
// stores cyclic edges like any others, so callers can still render what a
// broken project declares.
//
// Cycle detection runs in O(N+E) time.
func (g *Graph) Validate() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(ref string)
	dfs = func(ref string) {
		color[ref] = gray
		for _, child := range g.outgoing[ref] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
				return
			}
		}
		color[ref] = black
	}

	for _, ref := range g.order {
		if color[ref] == white {
			dfs(ref)
			if hasCycle {
				return ErrDependencyCycle
			}
		}
	}
	return nil
}
