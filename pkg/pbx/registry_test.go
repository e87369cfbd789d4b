package pbx

import (
	"errors"
	"testing"

	"github.com/opencollective/xcproj/pkg/plist"
)

func TestModeled(t *testing.T) {
	modeled := []ISA{
		ISAProject, ISAGroup, ISAVariantGroup, ISAFileReference, ISABuildFile,
		ISANativeTarget, ISAAggregateTarget, ISALegacyTarget,
		ISASourcesBuildPhase, ISAFrameworksBuildPhase, ISAResourcesBuildPhase,
		ISAHeadersBuildPhase, ISAShellScriptBuildPhase, ISACopyFilesBuildPhase,
		ISABuildConfiguration, ISAConfigurationList,
		ISATargetDependency, ISAContainerItemProxy,
	}
	for _, isa := range modeled {
		if !Modeled(isa) {
			t.Errorf("Modeled(%s) = false, want true", isa)
		}
	}
	for _, isa := range []ISA{"PBXReferenceProxy", "XCRemoteSwiftPackageReference", ""} {
		if Modeled(isa) {
			t.Errorf("Modeled(%s) = true, want false", isa)
		}
	}
}

func TestDecodeRawIsa(t *testing.T) {
	_, err := DecodeRaw("R1", map[string]any{"fileRef": "F1"})
	var rfe *RequiredFieldError
	if !errors.As(err, &rfe) || rfe.Key != "isa" || rfe.Ref != "R1" {
		t.Errorf("DecodeRaw without isa = %v, want required-field error on isa", err)
	}

	_, err = DecodeRaw("R1", map[string]any{"isa": 12})
	if !errors.As(err, &rfe) || rfe.Key != "isa" || rfe.Got == nil {
		t.Errorf("DecodeRaw with numeric isa = %v, want mismatch error on isa", err)
	}

	obj, err := DecodeRaw("R1", map[string]any{"isa": "PBXBuildFile", "fileRef": "F1"})
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	if _, ok := obj.(*PBXBuildFile); !ok {
		t.Errorf("DecodeRaw returned %T, want *PBXBuildFile", obj)
	}
}

// Kinds outside the modeled set decode as UnknownObject rather than failing,
// so documents written by newer Xcodes still round-trip.
func TestDecodeRawUnknown(t *testing.T) {
	m := map[string]any{
		"isa":           "XCRemoteSwiftPackageReference",
		"repositoryURL": "https://github.com/pointfreeco/swift-snapshot-testing",
		"requirement":   map[string]any{"kind": "upToNextMajorVersion", "minimumVersion": "1.12.0"},
	}
	obj, err := DecodeRaw("PK01", m)
	if err != nil {
		t.Fatalf("DecodeRaw: %v", err)
	}
	u, ok := obj.(*UnknownObject)
	if !ok {
		t.Fatalf("DecodeRaw returned %T, want *UnknownObject", obj)
	}
	if u.Reference() != "PK01" || u.ISA() != "XCRemoteSwiftPackageReference" {
		t.Errorf("identity = %s/%s", u.Reference(), u.ISA())
	}
	if got := u.DisplayName(EmptyIndex); got != "" {
		t.Errorf("DisplayName() = %q, want empty", got)
	}

	// Raw maps carry no order, so the preserved dictionary is normalized to
	// sorted keys.
	var keys []string
	for _, e := range u.Dict.Entries() {
		keys = append(keys, e.Key)
	}
	if want := []string{"isa", "repositoryURL", "requirement"}; len(keys) != 3 || keys[0] != want[0] || keys[1] != want[1] || keys[2] != want[2] {
		t.Errorf("keys = %v, want %v", keys, want)
	}
}

func TestDecodeObjectUnknownKeepsOrder(t *testing.T) {
	d := plist.NewDict(
		plist.Entry{Key: "isa", Value: plist.String{Value: "PBXReferenceProxy"}},
		plist.Entry{Key: "sourceTree", Value: plist.String{Value: "BUILT_PRODUCTS_DIR"}},
		plist.Entry{Key: "fileType", Value: plist.String{Value: "wrapper.application"}},
	)
	obj, err := DecodeObject("RP1", d)
	if err != nil {
		t.Fatalf("DecodeObject: %v", err)
	}
	u, ok := obj.(*UnknownObject)
	if !ok {
		t.Fatalf("DecodeObject returned %T, want *UnknownObject", obj)
	}

	// Wire order survives verbatim for unmodeled kinds.
	entries := u.Dict.Entries()
	if len(entries) != 3 || entries[1].Key != "sourceTree" || entries[2].Key != "fileType" {
		t.Errorf("entry order not preserved: %v", entries)
	}

	e := u.Encode(EmptyIndex)
	if e.Key != "RP1" || e.KeyComment != "" {
		t.Errorf("Encode() entry = %q /* %s */", e.Key, e.KeyComment)
	}
	if !plist.Equal(e.Value, d) {
		t.Error("Encode() did not return the preserved dictionary")
	}
}

func TestDecodeObjectModeled(t *testing.T) {
	d := plist.NewDict(
		plist.Entry{Key: "isa", Value: plist.String{Value: "PBXBuildFile"}},
		plist.Entry{Key: "fileRef", Value: plist.String{Value: "F1", Comment: "main.swift"}},
	)
	obj, err := DecodeObject("B1", d)
	if err != nil {
		t.Fatalf("DecodeObject: %v", err)
	}
	bf, ok := obj.(*PBXBuildFile)
	if !ok {
		t.Fatalf("DecodeObject returned %T, want *PBXBuildFile", obj)
	}
	if bf.FileRef == nil || *bf.FileRef != "F1" {
		t.Errorf("FileRef = %v, want F1", bf.FileRef)
	}

	_, err = DecodeObject("B2", plist.NewDict(
		plist.Entry{Key: "fileRef", Value: plist.String{Value: "F1"}},
	))
	var rfe *RequiredFieldError
	if !errors.As(err, &rfe) || rfe.Key != "isa" {
		t.Errorf("DecodeObject without isa = %v, want required-field error on isa", err)
	}
}

func TestUnknownObjectEqual(t *testing.T) {
	mk := func(v string) *UnknownObject {
		return &UnknownObject{Ref: "R1", Kind: "PBXReferenceProxy", Dict: plist.NewDict(
			plist.Entry{Key: "isa", Value: plist.String{Value: "PBXReferenceProxy"}},
			plist.Entry{Key: "fileType", Value: plist.String{Value: v}},
		)}
	}
	if !mk("wrapper.application").Equal(mk("wrapper.application")) {
		t.Error("identical unknown objects compared unequal")
	}
	if mk("wrapper.application").Equal(mk("archive.ar")) {
		t.Error("different dictionaries compared equal")
	}
	other := mk("wrapper.application")
	other.Ref = "R2"
	if mk("wrapper.application").Equal(other) {
		t.Error("different references compared equal")
	}
	if mk("wrapper.application").Equal(&PBXGroup{Ref: "R1", SourceTree: "<group>"}) {
		t.Error("unknown object compared equal to a group")
	}
}
