package pbx

import (
	"path"

	"github.com/opencollective/xcproj/pkg/plist"
)

// PBXFileReference points at a file on disk (source, resource, framework,
// built product), located by Path relative to the SourceTree anchor.
type PBXFileReference struct {
	Ref string

	ExplicitFileType  *string
	FileEncoding      *int
	IncludeInIndex    *int
	LastKnownFileType *string
	Name              *string
	Path              string
	SourceTree        string
}

func decodePBXFileReference(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAFileReference, ref: ref, m: m}
	p, err := r.reqStr("path")
	if err != nil {
		return nil, err
	}
	sourceTree, err := r.reqStr("sourceTree")
	if err != nil {
		return nil, err
	}
	return &PBXFileReference{
		Ref:               ref,
		ExplicitFileType:  r.optStr("explicitFileType"),
		FileEncoding:      r.optFlag("fileEncoding"),
		IncludeInIndex:    r.optFlag("includeInIndex"),
		LastKnownFileType: r.optStr("lastKnownFileType"),
		Name:              r.optStr("name"),
		Path:              p,
		SourceTree:        sourceTree,
	}, nil
}

func (f *PBXFileReference) Reference() string { return f.Ref }
func (f *PBXFileReference) ISA() ISA          { return ISAFileReference }

// DisplayName returns Name when set, otherwise the last component of Path.
func (f *PBXFileReference) DisplayName(ReferenceIndex) string {
	if f.Name != nil {
		return *f.Name
	}
	if f.Path == "" {
		return ""
	}
	return path.Base(f.Path)
}

func (f *PBXFileReference) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAFileReference)})
	if f.ExplicitFileType != nil {
		d.Set("explicitFileType", plist.String{Value: *f.ExplicitFileType})
	}
	if f.FileEncoding != nil {
		d.Set("fileEncoding", flagString(*f.FileEncoding))
	}
	if f.IncludeInIndex != nil {
		d.Set("includeInIndex", flagString(*f.IncludeInIndex))
	}
	if f.LastKnownFileType != nil {
		d.Set("lastKnownFileType", plist.String{Value: *f.LastKnownFileType})
	}
	if f.Name != nil {
		d.Set("name", plist.String{Value: *f.Name})
	}
	d.Set("path", plist.String{Value: f.Path})
	d.Set("sourceTree", plist.String{Value: f.SourceTree})
	return plist.Entry{Key: f.Ref, KeyComment: f.DisplayName(idx), Value: d}
}

func (f *PBXFileReference) Equal(other Object) bool {
	o, ok := other.(*PBXFileReference)
	if !ok {
		return false
	}
	return f.Ref == o.Ref &&
		eqPtr(f.ExplicitFileType, o.ExplicitFileType) &&
		eqPtr(f.FileEncoding, o.FileEncoding) &&
		eqPtr(f.IncludeInIndex, o.IncludeInIndex) &&
		eqPtr(f.LastKnownFileType, o.LastKnownFileType) &&
		eqPtr(f.Name, o.Name) &&
		f.Path == o.Path &&
		f.SourceTree == o.SourceTree
}
