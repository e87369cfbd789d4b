package pbx

import (
	"fmt"
	"slices"

	"github.com/opencollective/xcproj/pkg/plist"
)

// configListComment builds the owner-based annotation placed on references to
// an [XCConfigurationList]: the owning object's kind and name.
func configListComment(isa ISA, name string) string {
	return fmt.Sprintf("Build configuration list for %s %q", isa, name)
}

// XCBuildConfiguration is one named set of build settings (Debug, Release).
type XCBuildConfiguration struct {
	Ref string

	BaseConfigurationReference *string

	// BuildSettings round-trips without type coercion; values may nest
	// arbitrarily (strings, sequences, mappings).
	BuildSettings map[string]any
	Name          string
}

func decodeXCBuildConfiguration(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISABuildConfiguration, ref: ref, m: m}
	name, err := r.reqStr("name")
	if err != nil {
		return nil, err
	}
	return &XCBuildConfiguration{
		Ref:                        ref,
		BaseConfigurationReference: r.optStr("baseConfigurationReference"),
		BuildSettings:              r.dict("buildSettings"),
		Name:                       name,
	}, nil
}

func (c *XCBuildConfiguration) Reference() string { return c.Ref }
func (c *XCBuildConfiguration) ISA() ISA          { return ISABuildConfiguration }

func (c *XCBuildConfiguration) DisplayName(ReferenceIndex) string { return c.Name }

func (c *XCBuildConfiguration) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISABuildConfiguration)})
	if c.BaseConfigurationReference != nil {
		d.Set("baseConfigurationReference", refString(idx, *c.BaseConfigurationReference))
	}
	d.Set("buildSettings", plist.FromRaw(c.BuildSettings))
	d.Set("name", plist.String{Value: c.Name})
	return plist.Entry{Key: c.Ref, KeyComment: c.Name, Value: d}
}

func (c *XCBuildConfiguration) Equal(other Object) bool {
	o, ok := other.(*XCBuildConfiguration)
	if !ok {
		return false
	}
	return c.Ref == o.Ref &&
		eqPtr(c.BaseConfigurationReference, o.BaseConfigurationReference) &&
		equalRawMap(c.BuildSettings, o.BuildSettings) &&
		c.Name == o.Name
}

// XCConfigurationList holds the ordered configurations of a project or
// target. Its own display name is empty: the annotation on a configuration
// list names its owner and is synthesized by the document encoder, which can
// see the whole graph.
type XCConfigurationList struct {
	Ref string

	BuildConfigurations []string

	// DefaultConfigurationIsVisible is an integer flag, 0 in practice,
	// always written.
	DefaultConfigurationIsVisible int
	DefaultConfigurationName      *string
}

func decodeXCConfigurationList(ref string, m map[string]any) (Object, error) {
	r := rawObject{isa: ISAConfigurationList, ref: ref, m: m}
	return &XCConfigurationList{
		Ref:                           ref,
		BuildConfigurations:           r.strs("buildConfigurations"),
		DefaultConfigurationIsVisible: r.flag("defaultConfigurationIsVisible", 0),
		DefaultConfigurationName:      r.optStr("defaultConfigurationName"),
	}, nil
}

func (l *XCConfigurationList) Reference() string { return l.Ref }
func (l *XCConfigurationList) ISA() ISA          { return ISAConfigurationList }

func (l *XCConfigurationList) DisplayName(ReferenceIndex) string { return "" }

func (l *XCConfigurationList) Encode(idx ReferenceIndex) plist.Entry {
	d := plist.NewDict()
	d.Set("isa", plist.String{Value: string(ISAConfigurationList)})
	d.Set("buildConfigurations", refArray(idx, l.BuildConfigurations))
	d.Set("defaultConfigurationIsVisible", flagString(l.DefaultConfigurationIsVisible))
	if l.DefaultConfigurationName != nil {
		d.Set("defaultConfigurationName", plist.String{Value: *l.DefaultConfigurationName})
	}
	return plist.Entry{Key: l.Ref, Value: d}
}

func (l *XCConfigurationList) Equal(other Object) bool {
	o, ok := other.(*XCConfigurationList)
	if !ok {
		return false
	}
	return l.Ref == o.Ref &&
		slices.Equal(l.BuildConfigurations, o.BuildConfigurations) &&
		l.DefaultConfigurationIsVisible == o.DefaultConfigurationIsVisible &&
		eqPtr(l.DefaultConfigurationName, o.DefaultConfigurationName)
}
