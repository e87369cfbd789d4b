package targetgraph

import "github.com/opencollective/xcproj/pkg/pbx"

// Build derives the dependency graph of doc's targets. Native, aggregate,
// and legacy targets become nodes in reference order. Each entry of a
// target's dependencies list becomes an edge when it resolves: either the
// PBXTargetDependency names a target of this document directly, or its
// proxy carries a remoteGlobalIDString that does. Entries that do not
// resolve are skipped; a project can legitimately depend on targets of
// other project files.
func Build(doc *pbx.Document) (*Graph, error) {
	g := New()
	var deps []pendingDeps
	for _, obj := range doc.Objects() {
		var n Node
		var list []string
		switch t := obj.(type) {
		case *pbx.PBXNativeTarget:
			n = Node{Ref: t.Ref, Name: t.Name, Kind: pbx.ISANativeTarget}
			if t.ProductType != nil {
				n.ProductType = *t.ProductType
			}
			list = t.Dependencies
		case *pbx.PBXAggregateTarget:
			n = Node{Ref: t.Ref, Name: t.Name, Kind: pbx.ISAAggregateTarget}
			list = t.Dependencies
		case *pbx.PBXLegacyTarget:
			n = Node{Ref: t.Ref, Name: t.Name, Kind: pbx.ISALegacyTarget}
			list = t.Dependencies
		default:
			continue
		}
		if err := g.AddNode(n); err != nil {
			return nil, err
		}
		deps = append(deps, pendingDeps{from: n.Ref, refs: list})
	}

	for _, p := range deps {
		for _, ref := range p.refs {
			to, proxied, ok := resolveDependency(doc, ref)
			if !ok {
				continue
			}
			if _, present := g.Node(to); !present {
				continue
			}
			if err := g.AddEdge(Edge{From: p.from, To: to, Proxied: proxied}); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

type pendingDeps struct {
	from string
	refs []string
}

// resolveDependency follows one dependencies entry to the target reference
// it names, directly or through a container item proxy.
func resolveDependency(doc *pbx.Document, ref string) (to string, proxied, ok bool) {
	obj, found := doc.Lookup(ref)
	if !found {
		return "", false, false
	}
	dep, isDep := obj.(*pbx.PBXTargetDependency)
	if !isDep {
		return "", false, false
	}
	if dep.Target != nil {
		return *dep.Target, false, true
	}
	if dep.TargetProxy == nil {
		return "", false, false
	}
	proxyObj, found := doc.Lookup(*dep.TargetProxy)
	if !found {
		return "", false, false
	}
	proxy, isProxy := proxyObj.(*pbx.PBXContainerItemProxy)
	if !isProxy || proxy.RemoteGlobalIDString == nil {
		return "", false, false
	}
	return *proxy.RemoteGlobalIDString, true, true
}
