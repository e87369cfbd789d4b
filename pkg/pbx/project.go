package pbx

import (
	"slices"

	"github.com/opencollective/xcproj/pkg/plist"
)

// PBXProject is the root object of a project document. It carries the
// project-wide settings and the references tying the graph together: the main
// group, the configuration list, and the target list. Exactly one exists per
// document, pointed at by the document's rootObject key.
//
// All cross-object fields (BuildConfigurationList, MainGroup,
// ProductRefGroup, Targets) hold references into the document's key space,
// resolved only through a [ReferenceIndex].
type PBXProject struct {
	Ref string

	// Name is the project's display name, used to synthesize the
	// configuration-list comment. It is never written back as a key of its
	// own.
	Name string

	BuildConfigurationList string
	CompatibilityVersion   string
	DevelopmentRegion      *string

	// HasScannedForEncodings is an integer flag (0/1), not a boolean: the
	// wire form is numeric and is preserved as such.
	HasScannedForEncodings *int

	KnownRegions      []string
	MainGroup         string
	ProductRefGroup   *string
	ProjectDirPath    *string
	ProjectReferences []any
	ProjectRoot       *string
	Targets           []string

	// Attributes holds free-form nested project metadata. It round-trips
	// without type coercion and compares order-insensitively.
	Attributes map[string]any
}

func decodePBXProject(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAProject, ref: ref, m: m}
	buildConfigurationList, err := r.reqStr("buildConfigurationList")
	if err != nil {
		return nil, err
	}
	compatibilityVersion, err := r.reqStr("compatibilityVersion")
	if err != nil {
		return nil, err
	}
	mainGroup, err := r.reqStr("mainGroup")
	if err != nil {
		return nil, err
	}
	return &PBXProject{
		Ref:                    ref,
		Name:                   r.str("name", ""),
		BuildConfigurationList: buildConfigurationList,
		CompatibilityVersion:   compatibilityVersion,
		DevelopmentRegion:      r.optStr("developmentRegion"),
		HasScannedForEncodings: r.optFlag("hasScannedForEncodings"),
		KnownRegions:           r.strs("knownRegions"),
		MainGroup:              mainGroup,
		ProductRefGroup:        r.optStr("productRefGroup"),
		ProjectDirPath:         r.optStr("projectDirPath"),
		ProjectReferences:      r.list("projectReferences"),
		ProjectRoot:            r.optStr("projectRoot"),
		Targets:                r.strs("targets"),
		Attributes:             r.dict("attributes"),
	}, nil
}

func (p *PBXProject) Reference() string { return p.Ref }
func (p *PBXProject) ISA() ISA          { return ISAProject }

// DisplayName returns the fixed annotation for the root object.
func (p *PBXProject) DisplayName(ReferenceIndex) string { return "Project object" }

// Encode renders the project in its fixed key order. Optional fields that
// are absent are omitted entirely, never written as empty placeholders, while
// knownRegions, targets, and attributes are always present, empty or not. projectReferences sits in its canonical slot and appears only when
// non-empty.
func (p *PBXProject) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAProject)})
	d.Set("buildConfigurationList", plist.String{
		Value:   p.BuildConfigurationList,
		Comment: configListComment(ISAProject, p.Name),
	})
	d.Set("compatibilityVersion", plist.String{Value: p.CompatibilityVersion})
	if p.DevelopmentRegion != nil {
		d.Set("developmentRegion", plist.String{Value: *p.DevelopmentRegion})
	}
	if p.HasScannedForEncodings != nil {
		d.Set("hasScannedForEncodings", flagString(*p.HasScannedForEncodings))
	}
	d.Set("knownRegions", plist.FromRaw(p.KnownRegions))
	d.Set("mainGroup", plist.String{Value: p.MainGroup})
	if p.ProductRefGroup != nil {
		d.Set("productRefGroup", plist.String{Value: *p.ProductRefGroup, Comment: "Products"})
	}
	if p.ProjectDirPath != nil {
		d.Set("projectDirPath", plist.String{Value: *p.ProjectDirPath})
	}
	if len(p.ProjectReferences) > 0 {
		d.Set("projectReferences", plist.FromRaw(p.ProjectReferences))
	}
	if p.ProjectRoot != nil {
		d.Set("projectRoot", plist.String{Value: *p.ProjectRoot})
	}
	d.Set("targets", refArray(idx, p.Targets))
	d.Set("attributes", plist.FromRaw(p.Attributes))
	return plist.Entry{Key: p.Ref, KeyComment: "Project object", Value: d}
}

func (p *PBXProject) Equal(other Object) bool {
	o, ok := other.(*PBXProject)
	if !ok {
		return false
	}
	return p.Ref == o.Ref &&
		p.Name == o.Name &&
		p.BuildConfigurationList == o.BuildConfigurationList &&
		p.CompatibilityVersion == o.CompatibilityVersion &&
		eqPtr(p.DevelopmentRegion, o.DevelopmentRegion) &&
		eqPtr(p.HasScannedForEncodings, o.HasScannedForEncodings) &&
		slices.Equal(p.KnownRegions, o.KnownRegions) &&
		p.MainGroup == o.MainGroup &&
		eqPtr(p.ProductRefGroup, o.ProductRefGroup) &&
		eqPtr(p.ProjectDirPath, o.ProjectDirPath) &&
		equalRawList(p.ProjectReferences, o.ProjectReferences) &&
		eqPtr(p.ProjectRoot, o.ProjectRoot) &&
		slices.Equal(p.Targets, o.Targets) &&
		equalRawMap(p.Attributes, o.Attributes)
}
