package pbx

import (
	"errors"
	"slices"
	"testing"

	"github.com/opencollective/xcproj/pkg/plist"
)

func TestDecodeNativeTarget(t *testing.T) {
	obj, err := DecodeRaw("T1", map[string]any{
		"isa":                    "PBXNativeTarget",
		"buildConfigurationList": "C1",
		"buildPhases":            []any{"S1", "F1"},
		"name":                   "App",
		"productType":            "com.apple.product-type.application",
	})
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	tg := obj.(*PBXNativeTarget)
	if tg.Name != "App" || tg.BuildConfigurationList != "C1" {
		t.Errorf("decoded %+v", tg)
	}
	if !slices.Equal(tg.BuildPhases, []string{"S1", "F1"}) {
		t.Errorf("BuildPhases = %v", tg.BuildPhases)
	}
	if tg.ProductType == nil || *tg.ProductType != "com.apple.product-type.application" {
		t.Errorf("ProductType = %v", tg.ProductType)
	}
	if tg.ProductName != nil || tg.ProductReference != nil {
		t.Error("absent optional fields decoded non-nil")
	}

	for _, key := range []string{"buildConfigurationList", "name"} {
		m := map[string]any{
			"isa":                    "PBXNativeTarget",
			"buildConfigurationList": "C1",
			"name":                   "App",
		}
		delete(m, key)
		_, err := DecodeRaw("T1", m)
		var rfe *RequiredFieldError
		if !errors.As(err, &rfe) || rfe.Key != key {
			t.Errorf("DecodeRaw without %s = %v, want required-field error", key, err)
		}
	}
}

func TestNativeTargetEncode(t *testing.T) {
	idx := NewDocument()
	if err := idx.Add(&PBXFileReference{Ref: "F2", Path: "App.app", SourceTree: "BUILT_PRODUCTS_DIR"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tg := &PBXNativeTarget{
		Ref:                    "T1",
		BuildConfigurationList: "C1",
		BuildPhases:            []string{"S1"},
		Name:                   "App",
		ProductName:            sp("App"),
		ProductReference:       sp("F2"),
		ProductType:            sp("com.apple.product-type.application"),
	}
	e := tg.Encode(idx)

	if e.KeyComment != "App" {
		t.Errorf("KeyComment = %q, want App", e.KeyComment)
	}
	want := []string{"isa", "buildConfigurationList", "buildPhases", "buildRules", "dependencies", "name", "productName", "productReference", "productType"}
	if got := entryKeys(t, e); !slices.Equal(got, want) {
		t.Errorf("key order = %v, want %v", got, want)
	}

	d := e.Value.(*plist.Dict)
	if got := fieldString(t, d, "buildConfigurationList").Comment; got != `Build configuration list for PBXNativeTarget "App"` {
		t.Errorf("buildConfigurationList comment = %q", got)
	}
	if got := fieldString(t, d, "productReference").Comment; got != "App.app" {
		t.Errorf("productReference comment = %q, want App.app", got)
	}
}

func TestDecodeAggregateTarget(t *testing.T) {
	obj, err := DecodeRaw("T2", map[string]any{
		"isa":                    "PBXAggregateTarget",
		"buildConfigurationList": "C2",
		"name":                   "All",
		"dependencies":           []any{"D1"},
	})
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	tg := obj.(*PBXAggregateTarget)
	if tg.Name != "All" || !slices.Equal(tg.Dependencies, []string{"D1"}) {
		t.Errorf("decoded %+v", tg)
	}

	e := tg.Encode(EmptyIndex)
	want := []string{"isa", "buildConfigurationList", "buildPhases", "dependencies", "name"}
	if got := entryKeys(t, e); !slices.Equal(got, want) {
		t.Errorf("key order = %v, want %v", got, want)
	}
	d := e.Value.(*plist.Dict)
	if got := fieldString(t, d, "buildConfigurationList").Comment; got != `Build configuration list for PBXAggregateTarget "All"` {
		t.Errorf("buildConfigurationList comment = %q", got)
	}
}

// A legacy target carries the external-build-tool defaults Xcode seeds, and
// all of them are written even when untouched.
func TestDecodeLegacyTargetDefaults(t *testing.T) {
	obj, err := DecodeRaw("T3", map[string]any{
		"isa":                    "PBXLegacyTarget",
		"buildConfigurationList": "C3",
		"name":                   "Makefile",
	})
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	tg := obj.(*PBXLegacyTarget)
	if tg.BuildArgumentsString != "$(ACTION)" {
		t.Errorf("BuildArgumentsString = %q, want $(ACTION)", tg.BuildArgumentsString)
	}
	if tg.BuildToolPath != "/usr/bin/make" {
		t.Errorf("BuildToolPath = %q, want /usr/bin/make", tg.BuildToolPath)
	}
	if tg.BuildWorkingDirectory != "" {
		t.Errorf("BuildWorkingDirectory = %q, want empty", tg.BuildWorkingDirectory)
	}
	if tg.PassBuildSettingsInEnvironment != 1 {
		t.Errorf("PassBuildSettingsInEnvironment = %d, want 1", tg.PassBuildSettingsInEnvironment)
	}

	want := []string{
		"isa", "buildArgumentsString", "buildConfigurationList", "buildPhases",
		"buildToolPath", "buildWorkingDirectory", "dependencies", "name",
		"passBuildSettingsInEnvironment",
	}
	if got := entryKeys(t, tg.Encode(EmptyIndex)); !slices.Equal(got, want) {
		t.Errorf("key order = %v, want %v", got, want)
	}
}

func TestTargetEqual(t *testing.T) {
	mk := func() *PBXNativeTarget {
		return &PBXNativeTarget{
			Ref:                    "T1",
			BuildConfigurationList: "C1",
			BuildPhases:            []string{"S1"},
			Name:                   "App",
			ProductType:            sp("com.apple.product-type.application"),
		}
	}
	if !mk().Equal(mk()) {
		t.Error("identical targets compared unequal")
	}
	other := mk()
	other.BuildPhases = []string{"S1", "F1"}
	if mk().Equal(other) {
		t.Error("different phase lists compared equal")
	}
	agg := &PBXAggregateTarget{Ref: "T1", BuildConfigurationList: "C1", Name: "App"}
	if mk().Equal(agg) {
		t.Error("native target compared equal to aggregate target")
	}
}
