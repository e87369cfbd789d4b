package pbx

import (
	"fmt"
	"slices"
	"strings"

	"github.com/opencollective/xcproj/pkg/plist"
)

// Document is the arena holding every object of one project.pbxproj file,
// keyed by reference. All inter-object links stay reference strings resolved
// through the document, never Go pointers, so cyclic graphs (a proxy whose
// containerPortal is the root project, say) cost nothing.
//
// Document implements [ReferenceIndex] and is the index every encode runs
// against. It must be fully populated before encoding starts; there is no
// partial-index path. A Document is not safe for concurrent mutation.
type Document struct {
	// ArchiveVersion and ObjectVersion are the format version markers. Xcode
	// has written archiveVersion 1 for two decades; objectVersion tracks the
	// feature level of the writing Xcode.
	ArchiveVersion string
	ObjectVersion  string

	// RootObject references the document's [PBXProject].
	RootObject string

	// Classes is carried opaque. It is an empty dictionary in every file
	// Xcode writes, but round-trips verbatim if something else put content
	// there.
	Classes *plist.Dict

	objects map[string]Object
}

// NewDocument creates an empty document with current version markers.
func NewDocument() *Document {
	return &Document{
		ArchiveVersion: "1",
		ObjectVersion:  "56",
		Classes:        plist.NewDict(),
		objects:        make(map[string]Object),
	}
}

// Add inserts an object into the arena. It returns [ErrNilObject],
// [ErrEmptyReference], or [ErrDuplicateReference] when the object cannot be
// keyed; references are unique within a document.
func (d *Document) Add(obj Object) error {
	if obj == nil {
		return ErrNilObject
	}
	ref := obj.Reference()
	if ref == "" {
		return ErrEmptyReference
	}
	if d.objects == nil {
		d.objects = make(map[string]Object)
	}
	if _, exists := d.objects[ref]; exists {
		return ErrDuplicateReference
	}
	d.objects[ref] = obj
	return nil
}

// Remove deletes the object with the given reference. Dangling references
// left behind in other objects are permitted by the format; encoding degrades
// their comments rather than failing.
func (d *Document) Remove(ref string) {
	delete(d.objects, ref)
}

// Lookup resolves a reference. It implements [ReferenceIndex].
func (d *Document) Lookup(ref string) (Object, bool) {
	obj, ok := d.objects[ref]
	return obj, ok
}

// Len returns the number of objects in the arena.
func (d *Document) Len() int { return len(d.objects) }

// Objects returns all objects sorted by reference.
func (d *Document) Objects() []Object {
	out := make([]Object, 0, len(d.objects))
	for _, obj := range d.objects {
		out = append(out, obj)
	}
	slices.SortFunc(out, func(a, b Object) int {
		return strings.Compare(a.Reference(), b.Reference())
	})
	return out
}

// ByISA returns the objects of one kind sorted by reference.
func (d *Document) ByISA(isa ISA) []Object {
	var out []Object
	for _, obj := range d.objects {
		if obj.ISA() == isa {
			out = append(out, obj)
		}
	}
	slices.SortFunc(out, func(a, b Object) int {
		return strings.Compare(a.Reference(), b.Reference())
	})
	return out
}

// RootProject resolves RootObject to the document's [PBXProject].
func (d *Document) RootProject() (*PBXProject, error) {
	obj, ok := d.objects[d.RootObject]
	if !ok {
		return nil, fmt.Errorf("%w: rootObject %q not in document", ErrNoRootProject, d.RootObject)
	}
	p, ok := obj.(*PBXProject)
	if !ok {
		return nil, fmt.Errorf("%w: rootObject %q is a %s", ErrNoRootProject, d.RootObject, obj.ISA())
	}
	return p, nil
}

// NewReference returns a fresh reference that is not yet used in this
// document.
func (d *Document) NewReference() string {
	for {
		ref := NewReference()
		if _, taken := d.objects[ref]; !taken {
			return ref
		}
	}
}

// isaDocument marks top-level required-field errors.
const isaDocument ISA = "document"

// DecodeDocument builds a document from a parsed plist value. The top level
// must be a dictionary with string rootObject and dictionary objects keys;
// either missing or mistyped fails with a [RequiredFieldError] carrying the
// pseudo-kind "document". archiveVersion and objectVersion degrade to their
// current defaults, classes rides along opaque.
//
// Every objects entry decodes through [DecodeObject]; the first failing
// object aborts the whole parse.
func DecodeDocument(v plist.Value) (*Document, error) {
	top, ok := v.(*plist.Dict)
	if !ok {
		var got any
		if v != nil {
			got = v.Raw()
		}
		return nil, &RequiredFieldError{ISA: isaDocument, Key: "objects", Got: got}
	}

	doc := NewDocument()
	doc.ArchiveVersion = dictStr(top, "archiveVersion", doc.ArchiveVersion)
	doc.ObjectVersion = dictStr(top, "objectVersion", doc.ObjectVersion)
	if c, ok := top.Get("classes"); ok {
		if cd, ok := c.(*plist.Dict); ok {
			doc.Classes = cd
		}
	}

	rootVal, ok := top.Get("rootObject")
	if !ok {
		return nil, &RequiredFieldError{ISA: isaDocument, Key: "rootObject"}
	}
	rootStr, ok := rootVal.(plist.String)
	if !ok {
		return nil, &RequiredFieldError{ISA: isaDocument, Key: "rootObject", Got: rootVal.Raw()}
	}
	doc.RootObject = rootStr.Value

	objsVal, ok := top.Get("objects")
	if !ok {
		return nil, &RequiredFieldError{ISA: isaDocument, Key: "objects"}
	}
	objs, ok := objsVal.(*plist.Dict)
	if !ok {
		return nil, &RequiredFieldError{ISA: isaDocument, Key: "objects", Got: objsVal.Raw()}
	}
	for _, e := range objs.Entries() {
		od, ok := e.Value.(*plist.Dict)
		if !ok {
			return nil, &RequiredFieldError{Ref: e.Key, Key: "isa", Got: e.Value.Raw()}
		}
		obj, err := DecodeObject(e.Key, od)
		if err != nil {
			return nil, err
		}
		if err := doc.Add(obj); err != nil {
			return nil, fmt.Errorf("object %s: %w", e.Key, err)
		}
	}
	return doc, nil
}

// ParseDocument parses pbxproj text and decodes the object graph.
func ParseDocument(data []byte) (*Document, error) {
	v, err := plist.Parse(data)
	if err != nil {
		return nil, err
	}
	return DecodeDocument(v)
}

func dictStr(d *plist.Dict, key, def string) string {
	if v, ok := d.Get(key); ok {
		if s, ok := v.(plist.String); ok {
			return s.Value
		}
	}
	return def
}
