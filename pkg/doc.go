// Package pkg provides the core libraries for working with Xcode project files.
//
// # Overview
//
// An Xcode project is a bundle directory (MyApp.xcodeproj) whose project.pbxproj
// file stores the whole build description as an OpenStep property list: one flat
// table of objects addressed by 96-bit hex references. The pkg directory is
// organized into three main areas:
//
//  1. [plist] - OpenStep property-list values, decoding, and canonical encoding
//  2. [pbx] - The typed project object model built on top of plist
//  3. [targetgraph] - Target dependency graphs and Graphviz rendering
//
// # Architecture
//
// The typical data flow when reading and rewriting a project:
//
//	MyApp.xcodeproj/project.pbxproj
//	         ↓
//	    [plist] package (tokenize + parse OpenStep text)
//	         ↓
//	    [pbx] package (typed objects: targets, groups, build phases)
//	         ↓
//	    [targetgraph] package (dependency edges between targets)
//	         ↓
//	    canonical pbxproj / JSON / DOT / SVG / PNG output
//
// # Quick Start
//
// Read a project, inspect its targets, and write it back in canonical form:
//
//	import (
//	    "fmt"
//
//	    "github.com/opencollective/xcproj/pkg/pbx"
//	    "github.com/opencollective/xcproj/pkg/targetgraph"
//	)
//
//	// 1. Read the project bundle (or the pbxproj file directly)
//	doc, _ := pbx.ReadFile("MyApp.xcodeproj")
//
//	// 2. Walk the typed object table
//	project, _ := doc.RootProject()
//	for _, ref := range project.Targets {
//	    obj, _ := doc.Lookup(ref)
//	    fmt.Println(obj.DisplayName(doc))
//	}
//
//	// 3. Build the target dependency graph
//	g, _ := targetgraph.Build(doc)
//	dot := targetgraph.ToDOT(g, targetgraph.Options{Direction: "TB"})
//
//	// 4. Rewrite the file in canonical form
//	_ = pbx.WriteFile(doc, "MyApp.xcodeproj/project.pbxproj")
//
// # Main Packages
//
// [plist] - The OpenStep property-list layer. A small value model (String,
// Array, Dict) with a strict parser for reading and a writer that reproduces
// Xcode's own formatting: tab indentation, flow and block layouts, and inline
// annotation comments.
//
// [pbx] - The project object model. A [pbx.Document] holds the object table and
// top-level attributes; each of the known isa kinds (PBXProject,
// PBXNativeTarget, PBXGroup, PBXFileReference, build phases, and so on) decodes
// into its own struct, and unknown kinds survive round trips untouched. File
// I/O resolves .xcodeproj bundles, and JSON export mirrors what plutil
// produces.
//
// [targetgraph] - Derives the target dependency graph from a document, detects
// cycles, and renders node-link diagrams via Graphviz (DOT, SVG, PNG).
//
// [errors] - Shared error codes and helpers used across the libraries and the
// CLI, so callers can branch on what failed (file missing, malformed plist,
// dangling reference) without string matching.
//
// [buildinfo] - Version metadata stamped at build time via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/pbx/...      # Specific package
//	go test -run Example       # Examples only
//
// [plist]: https://pkg.go.dev/github.com/opencollective/xcproj/pkg/plist
// [pbx]: https://pkg.go.dev/github.com/opencollective/xcproj/pkg/pbx
// [targetgraph]: https://pkg.go.dev/github.com/opencollective/xcproj/pkg/targetgraph
// [errors]: https://pkg.go.dev/github.com/opencollective/xcproj/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/opencollective/xcproj/pkg/buildinfo
package pkg
