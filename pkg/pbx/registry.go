package pbx

import "github.com/opencollective/xcproj/pkg/plist"

// decodeFunc builds a typed object from its reference and raw dictionary.
type decodeFunc func(ref string, m map[string]any) (Object, error)

// decoders maps each modeled kind to its constructor.
var decoders = map[ISA]decodeFunc{
	ISAProject:               decodePBXProject,
	ISAGroup:                 decodePBXGroup,
	ISAVariantGroup:          decodePBXVariantGroup,
	ISAFileReference:         decodePBXFileReference,
	ISABuildFile:             decodePBXBuildFile,
	ISANativeTarget:          decodePBXNativeTarget,
	ISAAggregateTarget:       decodePBXAggregateTarget,
	ISALegacyTarget:          decodePBXLegacyTarget,
	ISASourcesBuildPhase:     decodePBXSourcesBuildPhase,
	ISAFrameworksBuildPhase:  decodePBXFrameworksBuildPhase,
	ISAResourcesBuildPhase:   decodePBXResourcesBuildPhase,
	ISAHeadersBuildPhase:     decodePBXHeadersBuildPhase,
	ISAShellScriptBuildPhase: decodePBXShellScriptBuildPhase,
	ISACopyFilesBuildPhase:   decodePBXCopyFilesBuildPhase,
	ISABuildConfiguration:    decodeXCBuildConfiguration,
	ISAConfigurationList:     decodeXCConfigurationList,
	ISATargetDependency:      decodePBXTargetDependency,
	ISAContainerItemProxy:    decodePBXContainerItemProxy,
}

// Modeled reports whether the kind has a typed model. Objects of unmodeled
// kinds decode as [UnknownObject].
func Modeled(isa ISA) bool {
	_, ok := decoders[isa]
	return ok
}

// DecodeRaw decodes one object from its reference and raw unordered
// dictionary. The isa key selects the model; it is required for every kind.
// Modeled kinds decode field by field under the required/optional policy, so
// the result is independent of how the map was built. An unmodeled isa is not
// an error: the object is preserved as an [UnknownObject], with its
// dictionary normalized to sorted key order (raw maps carry no order to
// keep).
func DecodeRaw(ref string, m map[string]any) (Object, error) {
	v, ok := m["isa"]
	if !ok {
		return nil, &RequiredFieldError{Ref: ref, Key: "isa"}
	}
	s, ok := v.(string)
	if !ok {
		return nil, &RequiredFieldError{Ref: ref, Key: "isa", Got: v}
	}
	isa := ISA(s)
	decode, ok := decoders[isa]
	if !ok {
		return &UnknownObject{Ref: ref, Kind: isa, Dict: plist.FromRaw(m).(*plist.Dict)}, nil
	}
	return decode(ref, m)
}

// DecodeObject decodes one objects-table entry as parsed from the wire.
// Modeled kinds go through the unordered view, since input entry order
// carries no meaning for them, while unmodeled kinds keep the ordered
// dictionary verbatim.
func DecodeObject(ref string, d *plist.Dict) (Object, error) {
	v, ok := d.Get("isa")
	if !ok {
		return nil, &RequiredFieldError{Ref: ref, Key: "isa"}
	}
	s, ok := v.(plist.String)
	if !ok {
		return nil, &RequiredFieldError{Ref: ref, Key: "isa", Got: v.Raw()}
	}
	isa := ISA(s.Value)
	decode, ok := decoders[isa]
	if !ok {
		return &UnknownObject{Ref: ref, Kind: isa, Dict: d}, nil
	}
	m, _ := d.Raw().(map[string]any)
	return decode(ref, m)
}
