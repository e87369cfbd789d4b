package pbx

import (
	"errors"
	"slices"
	"testing"

	"github.com/opencollective/xcproj/pkg/plist"
)

func TestConfigListComment(t *testing.T) {
	tests := []struct {
		isa  ISA
		name string
		want string
	}{
		{ISAProject, "App", `Build configuration list for PBXProject "App"`},
		{ISANativeTarget, "AppTests", `Build configuration list for PBXNativeTarget "AppTests"`},
		{ISAProject, "", `Build configuration list for PBXProject ""`},
	}
	for _, tt := range tests {
		if got := configListComment(tt.isa, tt.name); got != tt.want {
			t.Errorf("configListComment(%s, %q) = %q, want %q", tt.isa, tt.name, got, tt.want)
		}
	}
}

func TestDecodeBuildConfiguration(t *testing.T) {
	obj, err := DecodeRaw("B1", map[string]any{
		"isa":  "XCBuildConfiguration",
		"name": "Debug",
		"buildSettings": map[string]any{
			"PRODUCT_NAME":  "$(TARGET_NAME)",
			"OTHER_LDFLAGS": []any{"-ObjC", "-lz"},
			"SWIFT_VERSION": "5.0",
		},
	})
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	c := obj.(*XCBuildConfiguration)
	if c.Name != "Debug" {
		t.Errorf("Name = %q, want Debug", c.Name)
	}
	if len(c.BuildSettings) != 3 {
		t.Errorf("BuildSettings = %v", c.BuildSettings)
	}
	if c.BaseConfigurationReference != nil {
		t.Error("absent baseConfigurationReference decoded non-nil")
	}

	_, err = DecodeRaw("B1", map[string]any{"isa": "XCBuildConfiguration"})
	var rfe *RequiredFieldError
	if !errors.As(err, &rfe) || rfe.Key != "name" {
		t.Errorf("DecodeRaw without name = %v, want required-field error on name", err)
	}
}

func TestBuildConfigurationEncode(t *testing.T) {
	idx := NewDocument()
	if err := idx.Add(&PBXFileReference{Ref: "X1", Path: "Config/Base.xcconfig", SourceTree: "<group>"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	c := &XCBuildConfiguration{
		Ref:                        "B1",
		BaseConfigurationReference: sp("X1"),
		BuildSettings:              map[string]any{"PRODUCT_NAME": "$(TARGET_NAME)"},
		Name:                       "Release",
	}
	e := c.Encode(idx)
	if e.KeyComment != "Release" {
		t.Errorf("KeyComment = %q, want Release", e.KeyComment)
	}
	want := []string{"isa", "baseConfigurationReference", "buildSettings", "name"}
	if got := entryKeys(t, e); !slices.Equal(got, want) {
		t.Errorf("key order = %v, want %v", got, want)
	}
	d := e.Value.(*plist.Dict)
	if got := fieldString(t, d, "baseConfigurationReference").Comment; got != "Base.xcconfig" {
		t.Errorf("baseConfigurationReference comment = %q, want Base.xcconfig", got)
	}

	// Settings serialize with sorted keys regardless of map iteration.
	c.BuildSettings = map[string]any{"ZB": "1", "AA": "2", "MM": []any{"x"}}
	settings, _ := c.Encode(EmptyIndex).Value.(*plist.Dict).Get("buildSettings")
	var keys []string
	for _, en := range settings.(*plist.Dict).Entries() {
		keys = append(keys, en.Key)
	}
	if want := []string{"AA", "MM", "ZB"}; !slices.Equal(keys, want) {
		t.Errorf("buildSettings keys = %v, want %v", keys, want)
	}
}

func TestBuildConfigurationEqual(t *testing.T) {
	mk := func(settings map[string]any) *XCBuildConfiguration {
		return &XCBuildConfiguration{Ref: "B1", BuildSettings: settings, Name: "Debug"}
	}
	a := mk(map[string]any{"FLAGS": []any{"-a", "-b"}, "NAME": "x"})
	b := mk(map[string]any{"NAME": "x", "FLAGS": []string{"-a", "-b"}})
	if !a.Equal(b) {
		t.Error("equivalent settings compared unequal")
	}
	if !mk(nil).Equal(mk(map[string]any{})) {
		t.Error("nil and empty settings compared unequal")
	}
	if a.Equal(mk(map[string]any{"NAME": "y"})) {
		t.Error("different settings compared equal")
	}
}

func TestDecodeConfigurationList(t *testing.T) {
	obj, err := DecodeRaw("C1", map[string]any{
		"isa":                      "XCConfigurationList",
		"buildConfigurations":      []any{"B1", "B2"},
		"defaultConfigurationName": "Release",
	})
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	l := obj.(*XCConfigurationList)
	if !slices.Equal(l.BuildConfigurations, []string{"B1", "B2"}) {
		t.Errorf("BuildConfigurations = %v", l.BuildConfigurations)
	}
	if l.DefaultConfigurationIsVisible != 0 {
		t.Errorf("DefaultConfigurationIsVisible = %d, want 0", l.DefaultConfigurationIsVisible)
	}
	if l.DefaultConfigurationName == nil || *l.DefaultConfigurationName != "Release" {
		t.Errorf("DefaultConfigurationName = %v, want Release", l.DefaultConfigurationName)
	}
}

// A configuration list cannot name itself; the owner-based annotation comes
// from the document encoder. Standalone encoding leaves the entry bare.
func TestConfigurationListEncode(t *testing.T) {
	idx := NewDocument()
	if err := idx.Add(&XCBuildConfiguration{Ref: "B1", Name: "Debug"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	l := &XCConfigurationList{
		Ref:                      "C1",
		BuildConfigurations:      []string{"B1"},
		DefaultConfigurationName: sp("Release"),
	}
	e := l.Encode(idx)
	if e.KeyComment != "" {
		t.Errorf("KeyComment = %q, want none", e.KeyComment)
	}
	if l.DisplayName(idx) != "" {
		t.Errorf("DisplayName() = %q, want empty", l.DisplayName(idx))
	}
	want := []string{"isa", "buildConfigurations", "defaultConfigurationIsVisible", "defaultConfigurationName"}
	if got := entryKeys(t, e); !slices.Equal(got, want) {
		t.Errorf("key order = %v, want %v", got, want)
	}

	configs, _ := e.Value.(*plist.Dict).Get("buildConfigurations")
	if got := configs.(plist.Array)[0].(plist.String); got.Comment != "Debug" {
		t.Errorf("buildConfigurations[0] comment = %q, want Debug", got.Comment)
	}
}
