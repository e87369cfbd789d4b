package pbx

import (
	"errors"
	"fmt"
)

var (
	// ErrRequiredField is the sentinel wrapped by every [RequiredFieldError].
	// Use errors.Is against it when the field identity does not matter.
	ErrRequiredField = errors.New("required field missing or mismatched")

	// ErrNilObject is returned by [Document.Add] for a nil object.
	ErrNilObject = errors.New("nil object")

	// ErrEmptyReference is returned by [Document.Add] when the object's
	// reference is empty. Every object must carry a non-empty surrogate key.
	ErrEmptyReference = errors.New("empty object reference")

	// ErrDuplicateReference is returned by [Document.Add] when another object
	// with the same reference is already present. References are unique
	// within a document.
	ErrDuplicateReference = errors.New("duplicate object reference")

	// ErrNoRootProject is returned by [Document.RootProject] when the
	// document's root reference does not resolve to a [PBXProject].
	ErrNoRootProject = errors.New("root object is not a project")
)

// RequiredFieldError reports the one fatal decode condition: a required key
// that is absent or holds a value of the wrong shape. It aborts construction
// of the entity and, propagated by the document decoder, the whole graph
// parse. Optional keys never produce it; they degrade silently to their
// documented defaults, and that asymmetry is part of the format contract.
type RequiredFieldError struct {
	ISA ISA    // kind being decoded ("document" for top-level keys)
	Ref string // reference of the entity, empty at document level
	Key string // the required key
	Got any    // the mistyped value, nil when the key was absent
}

func (e *RequiredFieldError) Error() string {
	where := string(e.ISA)
	if where == "" {
		where = "object"
	}
	if e.Ref != "" {
		where += " " + e.Ref
	}
	if e.Got == nil {
		return fmt.Sprintf("%s: missing required field %q", where, e.Key)
	}
	return fmt.Sprintf("%s: required field %q: unexpected %T", where, e.Key, e.Got)
}

func (e *RequiredFieldError) Unwrap() error { return ErrRequiredField }
