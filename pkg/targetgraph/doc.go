// Package targetgraph derives the target dependency graph of an Xcode
// project and renders it.
//
// # Overview
//
// A project's targets declare build ordering through PBXTargetDependency
// objects: either a direct link to a target of the same project, or a
// PBXContainerItemProxy standing in for a target owned by another project
// file. This package flattens that indirection into a plain directed graph
// with one node per target and one edge per resolved dependency.
//
// # Usage
//
// Build a graph from a decoded document, then inspect or render it:
//
//	g, err := targetgraph.Build(doc)
//	if err != nil {
//		return err
//	}
//	dot := targetgraph.ToDOT(g, targetgraph.Options{})
//	svg, err := targetgraph.RenderSVG(dot)
//
// Query the structure with [Graph.Children], [Graph.Parents], [Graph.Sources],
// and [Graph.Sinks]. [Graph.Validate] reports dependency cycles, which Xcode
// itself refuses to build.
//
// # Dependencies
//
// SVG and PNG rendering use [github.com/goccy/go-graphviz] in process; the
// DOT text from [ToDOT] also works with external Graphviz tooling.
package targetgraph
