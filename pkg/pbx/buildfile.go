package pbx

import "github.com/opencollective/xcproj/pkg/plist"

// PBXBuildFile wires a file reference (or package product) into one build
// phase, optionally with per-phase settings such as header visibility or
// compiler flags. It has no required fields: an empty build file is valid,
// if useless.
type PBXBuildFile struct {
	Ref string

	FileRef        *string
	PlatformFilter *string
	ProductRef     *string
	Settings       map[string]any
}

func decodePBXBuildFile(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISABuildFile, ref: ref, m: m}
	return &PBXBuildFile{
		Ref:            ref,
		FileRef:        r.optStr("fileRef"),
		PlatformFilter: r.optStr("platformFilter"),
		ProductRef:     r.optStr("productRef"),
		Settings:       r.dict("settings"),
	}, nil
}

func (b *PBXBuildFile) Reference() string { return b.Ref }
func (b *PBXBuildFile) ISA() ISA          { return ISABuildFile }

// DisplayName returns the display name of the referenced file or package
// product. A build file whose reference does not resolve has no name; its
// objects-table comment depends on the containing phase and is synthesized
// during document encoding.
func (b *PBXBuildFile) DisplayName(idx ReferenceIndex) string {
	if b.FileRef != nil {
		if name := displayNameOf(idx, *b.FileRef); name != "" {
			return name
		}
	}
	if b.ProductRef != nil {
		return displayNameOf(idx, *b.ProductRef)
	}
	return ""
}

func (b *PBXBuildFile) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISABuildFile)})
	if b.FileRef != nil {
		d.Set("fileRef", refString(idx, *b.FileRef))
	}
	if b.PlatformFilter != nil {
		d.Set("platformFilter", plist.String{Value: *b.PlatformFilter})
	}
	if b.ProductRef != nil {
		d.Set("productRef", refString(idx, *b.ProductRef))
	}
	if b.Settings != nil {
		d.Set("settings", plist.FromRaw(b.Settings))
	}
	return plist.Entry{Key: b.Ref, KeyComment: b.DisplayName(idx), Value: d}
}

func (b *PBXBuildFile) Equal(other Object) bool {
	o, ok := other.(*PBXBuildFile)
	if !ok {
		return false
	}
	return b.Ref == o.Ref &&
		eqPtr(b.FileRef, o.FileRef) &&
		eqPtr(b.PlatformFilter, o.PlatformFilter) &&
		eqPtr(b.ProductRef, o.ProductRef) &&
		equalRawMap(b.Settings, o.Settings)
}
