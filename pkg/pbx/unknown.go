package pbx

import "github.com/opencollective/xcproj/pkg/plist"

// UnknownObject preserves an object whose isa has no typed model. The parsed
// dictionary is kept verbatim, isa entry and key order included, so documents
// using kinds outside the modeled set still round-trip. Unknown objects carry
// no annotation and are grouped under their isa string like any other kind.
type UnknownObject struct {
	Ref  string
	Kind ISA

	// Dict is the object's dictionary exactly as parsed.
	Dict *plist.Dict
}

func (u *UnknownObject) Reference() string { return u.Ref }
func (u *UnknownObject) ISA() ISA          { return u.Kind }

func (u *UnknownObject) DisplayName(ReferenceIndex) string { return "" }

func (u *UnknownObject) Encode(ReferenceIndex) plist.Entry {
	return plist.Entry{Key: u.Ref, Value: u.Dict}
}

func (u *UnknownObject) Equal(other Object) bool {
	o, ok := other.(*UnknownObject)
	if !ok {
		return false
	}
	return u.Ref == o.Ref && u.Kind == o.Kind && plist.Equal(u.Dict, o.Dict)
}
