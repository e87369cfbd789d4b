package pbx

import "github.com/opencollective/xcproj/pkg/plist"

// PBXTargetDependency makes one target build after another. The dependency
// points either directly at a target in the same document or, for
// cross-project dependencies, at a [PBXContainerItemProxy] standing in for
// the remote target. Every field is optional.
type PBXTargetDependency struct {
	Ref string

	Name           *string
	PlatformFilter *string
	Target         *string
	TargetProxy    *string
}

func decodePBXTargetDependency(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISATargetDependency, ref: ref, m: m}
	return &PBXTargetDependency{
		Ref:            ref,
		Name:           r.optStr("name"),
		PlatformFilter: r.optStr("platformFilter"),
		Target:         r.optStr("target"),
		TargetProxy:    r.optStr("targetProxy"),
	}, nil
}

func (t *PBXTargetDependency) Reference() string { return t.Ref }
func (t *PBXTargetDependency) ISA() ISA          { return ISATargetDependency }

// DisplayName is the fixed kind literal; references to dependencies are
// annotated with it rather than the dependency's own Name field.
func (t *PBXTargetDependency) DisplayName(ReferenceIndex) string { return "PBXTargetDependency" }

func (t *PBXTargetDependency) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISATargetDependency)})
	if t.Name != nil {
		d.Set("name", plist.String{Value: *t.Name})
	}
	if t.PlatformFilter != nil {
		d.Set("platformFilter", plist.String{Value: *t.PlatformFilter})
	}
	if t.Target != nil {
		d.Set("target", refString(idx, *t.Target))
	}
	if t.TargetProxy != nil {
		d.Set("targetProxy", refString(idx, *t.TargetProxy))
	}
	return plist.Entry{Key: t.Ref, KeyComment: "PBXTargetDependency", Value: d}
}

func (t *PBXTargetDependency) Equal(other Object) bool {
	o, ok := other.(*PBXTargetDependency)
	if !ok {
		return false
	}
	return t.Ref == o.Ref &&
		eqPtr(t.Name, o.Name) &&
		eqPtr(t.PlatformFilter, o.PlatformFilter) &&
		eqPtr(t.Target, o.Target) &&
		eqPtr(t.TargetProxy, o.TargetProxy)
}

// PBXContainerItemProxy is the document-local stand-in for an object owned by
// another container. ContainerPortal references the container (the root
// project, or a file reference to another .xcodeproj); RemoteGlobalIDString
// is the referenced object's id inside that container and is written without
// a comment, since it may not resolve locally at all.
type PBXContainerItemProxy struct {
	Ref string

	ContainerPortal string

	// ProxyType is 1 for a target reference, 2 for a product reference.
	ProxyType            int
	RemoteGlobalIDString *string
	RemoteInfo           *string
}

func decodePBXContainerItemProxy(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAContainerItemProxy, ref: ref, m: m}
	containerPortal, err := r.reqStr("containerPortal")
	if err != nil {
		return nil, err
	}
	proxyType, err := r.reqFlag("proxyType")
	if err != nil {
		return nil, err
	}
	return &PBXContainerItemProxy{
		Ref:                  ref,
		ContainerPortal:      containerPortal,
		ProxyType:            proxyType,
		RemoteGlobalIDString: r.optStr("remoteGlobalIDString"),
		RemoteInfo:           r.optStr("remoteInfo"),
	}, nil
}

func (p *PBXContainerItemProxy) Reference() string { return p.Ref }
func (p *PBXContainerItemProxy) ISA() ISA          { return ISAContainerItemProxy }

func (p *PBXContainerItemProxy) DisplayName(ReferenceIndex) string { return "PBXContainerItemProxy" }

func (p *PBXContainerItemProxy) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAContainerItemProxy)})
	d.Set("containerPortal", refString(idx, p.ContainerPortal))
	d.Set("proxyType", flagString(p.ProxyType))
	if p.RemoteGlobalIDString != nil {
		d.Set("remoteGlobalIDString", plist.String{Value: *p.RemoteGlobalIDString})
	}
	if p.RemoteInfo != nil {
		d.Set("remoteInfo", plist.String{Value: *p.RemoteInfo})
	}
	return plist.Entry{Key: p.Ref, KeyComment: "PBXContainerItemProxy", Value: d}
}

func (p *PBXContainerItemProxy) Equal(other Object) bool {
	o, ok := other.(*PBXContainerItemProxy)
	if !ok {
		return false
	}
	return p.Ref == o.Ref &&
		p.ContainerPortal == o.ContainerPortal &&
		p.ProxyType == o.ProxyType &&
		eqPtr(p.RemoteGlobalIDString, o.RemoteGlobalIDString) &&
		eqPtr(p.RemoteInfo, o.RemoteInfo)
}
