// Package pbx models the object graph stored in an Xcode project.pbxproj
// file: targets, groups, file references, build phases, configuration lists,
// and the single root project object, all keyed by opaque reference strings.
//
// Objects are plain values with identity. Links between objects are stored as
// reference strings, never as Go pointers, and are resolved only through a
// [ReferenceIndex]: the graph may contain cycles, and an object must be
// encodable knowing nothing beyond its own fields and that index. Decoding is
// strict about a small set of required fields per kind and deliberately
// lenient about everything else; see [RequiredFieldError].
package pbx

import "github.com/opencollective/xcproj/pkg/plist"

// ISA identifies an object kind. The value is the literal isa marker written
// to the wire.
type ISA string

const (
	ISAProject               ISA = "PBXProject"
	ISAGroup                 ISA = "PBXGroup"
	ISAVariantGroup          ISA = "PBXVariantGroup"
	ISAFileReference         ISA = "PBXFileReference"
	ISABuildFile             ISA = "PBXBuildFile"
	ISANativeTarget          ISA = "PBXNativeTarget"
	ISAAggregateTarget       ISA = "PBXAggregateTarget"
	ISALegacyTarget          ISA = "PBXLegacyTarget"
	ISASourcesBuildPhase     ISA = "PBXSourcesBuildPhase"
	ISAFrameworksBuildPhase  ISA = "PBXFrameworksBuildPhase"
	ISAResourcesBuildPhase   ISA = "PBXResourcesBuildPhase"
	ISAHeadersBuildPhase     ISA = "PBXHeadersBuildPhase"
	ISAShellScriptBuildPhase ISA = "PBXShellScriptBuildPhase"
	ISACopyFilesBuildPhase   ISA = "PBXCopyFilesBuildPhase"
	ISABuildConfiguration    ISA = "XCBuildConfiguration"
	ISAConfigurationList     ISA = "XCConfigurationList"
	ISATargetDependency      ISA = "PBXTargetDependency"
	ISAContainerItemProxy    ISA = "PBXContainerItemProxy"
)

// ReferenceIndex resolves a reference string to the object it identifies.
// It is consulted only while encoding, to synthesize comment annotations, and
// is assumed complete and immutable for the duration of the encode.
// [*Document] implements it.
type ReferenceIndex interface {
	Lookup(ref string) (Object, bool)
}

// Object is one node of the project graph.
type Object interface {
	// Reference returns the surrogate key identifying this object. It is
	// unique within a document and participates in equality.
	Reference() string

	// ISA returns the object's kind marker.
	ISA() ISA

	// DisplayName returns the human-readable name referrers use when they
	// annotate a reference to this object. Empty means the reference is
	// written without a comment.
	DisplayName(idx ReferenceIndex) string

	// Encode renders the object as one objects-table entry: the reference
	// (with its key comment where the object can synthesize it alone) and an
	// ordered dictionary with the kind's fixed key order. Encoding is total;
	// references that do not resolve in idx yield uncommented values.
	Encode(idx ReferenceIndex) plist.Entry

	// Equal reports structural equality over every field, the reference
	// included. Mapping-typed fields compare order-insensitively; sequences
	// stay ordered.
	Equal(other Object) bool
}

// emptyIndex resolves nothing. It lets objects be encoded standalone.
type emptyIndex struct{}

func (emptyIndex) Lookup(string) (Object, bool) { return nil, false }

// EmptyIndex is a [ReferenceIndex] with no entries. Encoding against it
// degrades every cross-reference comment to an uncommented value.
var EmptyIndex ReferenceIndex = emptyIndex{}

// displayNameOf resolves ref through idx and returns the target's display
// name, or "" when the reference is dangling. It never fails; a missing index
// entry just means no comment.
func displayNameOf(idx ReferenceIndex, ref string) string {
	if idx == nil {
		return ""
	}
	obj, ok := idx.Lookup(ref)
	if !ok || obj == nil {
		return ""
	}
	return obj.DisplayName(idx)
}

// refString builds the commented wire form of a reference: the target's
// display name when it resolves, bare otherwise.
func refString(idx ReferenceIndex, ref string) plist.String {
	return plist.String{Value: ref, Comment: displayNameOf(idx, ref)}
}

// refArray renders a sequence of references with per-element comments.
func refArray(idx ReferenceIndex, refs []string) plist.Array {
	out := make(plist.Array, len(refs))
	for i, r := range refs {
		out[i] = refString(idx, r)
	}
	return out
}
