package pbx

import (
	"slices"

	"github.com/opencollective/xcproj/pkg/plist"
)

// PBXNativeTarget builds a product (application, library, test bundle)
// through an ordered list of build phases.
type PBXNativeTarget struct {
	Ref string

	BuildConfigurationList string
	BuildPhases            []string
	BuildRules             []string
	Dependencies           []string
	Name                   string
	ProductName            *string
	ProductReference       *string
	ProductType            *string
}

func decodePBXNativeTarget(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISANativeTarget, ref: ref, m: m}
	buildConfigurationList, err := r.reqStr("buildConfigurationList")
	if err != nil {
		return nil, err
	}
	name, err := r.reqStr("name")
	if err != nil {
		return nil, err
	}
	return &PBXNativeTarget{
		Ref:                    ref,
		BuildConfigurationList: buildConfigurationList,
		BuildPhases:            r.strs("buildPhases"),
		BuildRules:             r.strs("buildRules"),
		Dependencies:           r.strs("dependencies"),
		Name:                   name,
		ProductName:            r.optStr("productName"),
		ProductReference:       r.optStr("productReference"),
		ProductType:            r.optStr("productType"),
	}, nil
}

func (t *PBXNativeTarget) Reference() string { return t.Ref }
func (t *PBXNativeTarget) ISA() ISA          { return ISANativeTarget }

func (t *PBXNativeTarget) DisplayName(ReferenceIndex) string { return t.Name }

func (t *PBXNativeTarget) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISANativeTarget)})
	d.Set("buildConfigurationList", plist.String{
		Value:   t.BuildConfigurationList,
		Comment: configListComment(ISANativeTarget, t.Name),
	})
	d.Set("buildPhases", refArray(idx, t.BuildPhases))
	d.Set("buildRules", refArray(idx, t.BuildRules))
	d.Set("dependencies", refArray(idx, t.Dependencies))
	d.Set("name", plist.String{Value: t.Name})
	if t.ProductName != nil {
		d.Set("productName", plist.String{Value: *t.ProductName})
	}
	if t.ProductReference != nil {
		d.Set("productReference", refString(idx, *t.ProductReference))
	}
	if t.ProductType != nil {
		d.Set("productType", plist.String{Value: *t.ProductType})
	}
	return plist.Entry{Key: t.Ref, KeyComment: t.Name, Value: d}
}

func (t *PBXNativeTarget) Equal(other Object) bool {
	o, ok := other.(*PBXNativeTarget)
	if !ok {
		return false
	}
	return t.Ref == o.Ref &&
		t.BuildConfigurationList == o.BuildConfigurationList &&
		slices.Equal(t.BuildPhases, o.BuildPhases) &&
		slices.Equal(t.BuildRules, o.BuildRules) &&
		slices.Equal(t.Dependencies, o.Dependencies) &&
		t.Name == o.Name &&
		eqPtr(t.ProductName, o.ProductName) &&
		eqPtr(t.ProductReference, o.ProductReference) &&
		eqPtr(t.ProductType, o.ProductType)
}

// PBXAggregateTarget produces nothing itself; it exists to order other
// targets and script phases.
type PBXAggregateTarget struct {
	Ref string

	BuildConfigurationList string
	BuildPhases            []string
	Dependencies           []string
	Name                   string
	ProductName            *string
}

func decodePBXAggregateTarget(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAAggregateTarget, ref: ref, m: m}
	buildConfigurationList, err := r.reqStr("buildConfigurationList")
	if err != nil {
		return nil, err
	}
	name, err := r.reqStr("name")
	if err != nil {
		return nil, err
	}
	return &PBXAggregateTarget{
		Ref:                    ref,
		BuildConfigurationList: buildConfigurationList,
		BuildPhases:            r.strs("buildPhases"),
		Dependencies:           r.strs("dependencies"),
		Name:                   name,
		ProductName:            r.optStr("productName"),
	}, nil
}

func (t *PBXAggregateTarget) Reference() string { return t.Ref }
func (t *PBXAggregateTarget) ISA() ISA          { return ISAAggregateTarget }

func (t *PBXAggregateTarget) DisplayName(ReferenceIndex) string { return t.Name }

func (t *PBXAggregateTarget) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAAggregateTarget)})
	d.Set("buildConfigurationList", plist.String{
		Value:   t.BuildConfigurationList,
		Comment: configListComment(ISAAggregateTarget, t.Name),
	})
	d.Set("buildPhases", refArray(idx, t.BuildPhases))
	d.Set("dependencies", refArray(idx, t.Dependencies))
	d.Set("name", plist.String{Value: t.Name})
	if t.ProductName != nil {
		d.Set("productName", plist.String{Value: *t.ProductName})
	}
	return plist.Entry{Key: t.Ref, KeyComment: t.Name, Value: d}
}

func (t *PBXAggregateTarget) Equal(other Object) bool {
	o, ok := other.(*PBXAggregateTarget)
	if !ok {
		return false
	}
	return t.Ref == o.Ref &&
		t.BuildConfigurationList == o.BuildConfigurationList &&
		slices.Equal(t.BuildPhases, o.BuildPhases) &&
		slices.Equal(t.Dependencies, o.Dependencies) &&
		t.Name == o.Name &&
		eqPtr(t.ProductName, o.ProductName)
}

// PBXLegacyTarget shells out to an external build tool, make by default.
// Its defaults mirror what Xcode seeds for a new external build system
// target, and all of them are written even when untouched.
type PBXLegacyTarget struct {
	Ref string

	BuildArgumentsString   string
	BuildConfigurationList string
	BuildPhases            []string
	BuildToolPath          string
	BuildWorkingDirectory  string
	Dependencies           []string
	Name                   string

	// PassBuildSettingsInEnvironment is an integer flag, 1 by default.
	PassBuildSettingsInEnvironment int
	ProductName                    *string
}

func decodePBXLegacyTarget(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISALegacyTarget, ref: ref, m: m}
	buildConfigurationList, err := r.reqStr("buildConfigurationList")
	if err != nil {
		return nil, err
	}
	name, err := r.reqStr("name")
	if err != nil {
		return nil, err
	}
	return &PBXLegacyTarget{
		Ref:                            ref,
		BuildArgumentsString:           r.str("buildArgumentsString", "$(ACTION)"),
		BuildConfigurationList:         buildConfigurationList,
		BuildPhases:                    r.strs("buildPhases"),
		BuildToolPath:                  r.str("buildToolPath", "/usr/bin/make"),
		BuildWorkingDirectory:          r.str("buildWorkingDirectory", ""),
		Dependencies:                   r.strs("dependencies"),
		Name:                           name,
		PassBuildSettingsInEnvironment: r.flag("passBuildSettingsInEnvironment", 1),
		ProductName:                    r.optStr("productName"),
	}, nil
}

func (t *PBXLegacyTarget) Reference() string { return t.Ref }
func (t *PBXLegacyTarget) ISA() ISA          { return ISALegacyTarget }

func (t *PBXLegacyTarget) DisplayName(ReferenceIndex) string { return t.Name }

func (t *PBXLegacyTarget) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISALegacyTarget)})
	d.Set("buildArgumentsString", plist.String{Value: t.BuildArgumentsString})
	d.Set("buildConfigurationList", plist.String{
		Value:   t.BuildConfigurationList,
		Comment: configListComment(ISALegacyTarget, t.Name),
	})
	d.Set("buildPhases", refArray(idx, t.BuildPhases))
	d.Set("buildToolPath", plist.String{Value: t.BuildToolPath})
	d.Set("buildWorkingDirectory", plist.String{Value: t.BuildWorkingDirectory})
	d.Set("dependencies", refArray(idx, t.Dependencies))
	d.Set("name", plist.String{Value: t.Name})
	d.Set("passBuildSettingsInEnvironment", flagString(t.PassBuildSettingsInEnvironment))
	if t.ProductName != nil {
		d.Set("productName", plist.String{Value: *t.ProductName})
	}
	return plist.Entry{Key: t.Ref, KeyComment: t.Name, Value: d}
}

func (t *PBXLegacyTarget) Equal(other Object) bool {
	o, ok := other.(*PBXLegacyTarget)
	if !ok {
		return false
	}
	return t.Ref == o.Ref &&
		t.BuildArgumentsString == o.BuildArgumentsString &&
		t.BuildConfigurationList == o.BuildConfigurationList &&
		slices.Equal(t.BuildPhases, o.BuildPhases) &&
		t.BuildToolPath == o.BuildToolPath &&
		t.BuildWorkingDirectory == o.BuildWorkingDirectory &&
		slices.Equal(t.Dependencies, o.Dependencies) &&
		t.Name == o.Name &&
		t.PassBuildSettingsInEnvironment == o.PassBuildSettingsInEnvironment &&
		eqPtr(t.ProductName, o.ProductName)
}
