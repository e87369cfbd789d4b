package pbx

import (
	"slices"

	"github.com/opencollective/xcproj/pkg/plist"
)

// PBXGroup is a folder in the project navigator. Children reference file
// references and other groups, giving the document its tree structure on top
// of the flat objects table.
type PBXGroup struct {
	Ref string

	Children   []string
	Name       *string
	Path       *string
	SourceTree string
}

func decodePBXGroup(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAGroup, ref: ref, m: m}
	sourceTree, err := r.reqStr("sourceTree")
	if err != nil {
		return nil, err
	}
	return &PBXGroup{
		Ref:        ref,
		Children:   r.strs("children"),
		Name:       r.optStr("name"),
		Path:       r.optStr("path"),
		SourceTree: sourceTree,
	}, nil
}

func (g *PBXGroup) Reference() string { return g.Ref }
func (g *PBXGroup) ISA() ISA          { return ISAGroup }

// DisplayName returns Name, falling back to Path. The main group of most
// projects has neither and is referenced without a comment.
func (g *PBXGroup) DisplayName(ReferenceIndex) string {
	if g.Name != nil {
		return *g.Name
	}
	if g.Path != nil {
		return *g.Path
	}
	return ""
}

func (g *PBXGroup) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAGroup)})
	d.Set("children", refArray(idx, g.Children))
	if g.Name != nil {
		d.Set("name", plist.String{Value: *g.Name})
	}
	if g.Path != nil {
		d.Set("path", plist.String{Value: *g.Path})
	}
	d.Set("sourceTree", plist.String{Value: g.SourceTree})
	return plist.Entry{Key: g.Ref, KeyComment: g.DisplayName(idx), Value: d}
}

func (g *PBXGroup) Equal(other Object) bool {
	o, ok := other.(*PBXGroup)
	if !ok {
		return false
	}
	return g.Ref == o.Ref &&
		slices.Equal(g.Children, o.Children) &&
		eqPtr(g.Name, o.Name) &&
		eqPtr(g.Path, o.Path) &&
		g.SourceTree == o.SourceTree
}

// PBXVariantGroup groups the per-locale variants of one localized resource.
// It has the same shape as [PBXGroup] but is a distinct kind on the wire.
type PBXVariantGroup struct {
	Ref string

	Children   []string
	Name       *string
	Path       *string
	SourceTree string
}

func decodePBXVariantGroup(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAVariantGroup, ref: ref, m: m}
	sourceTree, err := r.reqStr("sourceTree")
	if err != nil {
		return nil, err
	}
	return &PBXVariantGroup{
		Ref:        ref,
		Children:   r.strs("children"),
		Name:       r.optStr("name"),
		Path:       r.optStr("path"),
		SourceTree: sourceTree,
	}, nil
}

func (g *PBXVariantGroup) Reference() string { return g.Ref }
func (g *PBXVariantGroup) ISA() ISA          { return ISAVariantGroup }

func (g *PBXVariantGroup) DisplayName(ReferenceIndex) string {
	if g.Name != nil {
		return *g.Name
	}
	if g.Path != nil {
		return *g.Path
	}
	return ""
}

func (g *PBXVariantGroup) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAVariantGroup)})
	d.Set("children", refArray(idx, g.Children))
	if g.Name != nil {
		d.Set("name", plist.String{Value: *g.Name})
	}
	if g.Path != nil {
		d.Set("path", plist.String{Value: *g.Path})
	}
	d.Set("sourceTree", plist.String{Value: g.SourceTree})
	return plist.Entry{Key: g.Ref, KeyComment: g.DisplayName(idx), Value: d}
}

func (g *PBXVariantGroup) Equal(other Object) bool {
	o, ok := other.(*PBXVariantGroup)
	if !ok {
		return false
	}
	return g.Ref == o.Ref &&
		slices.Equal(g.Children, o.Children) &&
		eqPtr(g.Name, o.Name) &&
		eqPtr(g.Path, o.Path) &&
		g.SourceTree == o.SourceTree
}
