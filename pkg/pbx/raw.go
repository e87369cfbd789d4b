package pbx

import (
	"strconv"

	"github.com/opencollective/xcproj/pkg/plist"
)

// rawObject wraps the unordered raw dictionary an object is decoded from.
// Its accessors implement the format's field policy: required keys fail with
// a [RequiredFieldError] when absent or mistyped, optional keys fall back to
// their default on absence or mismatch and never fail. Decoding through these
// helpers is what makes the result independent of input key order.
type rawObject struct {
	isa ISA
	ref string
	m   map[string]any
}

// reqStr returns the string under key or a [RequiredFieldError].
func (r rawObject) reqStr(key string) (string, error) {
	v, ok := r.m[key]
	if !ok {
		return "", &RequiredFieldError{ISA: r.isa, Ref: r.ref, Key: key}
	}
	s, ok := v.(string)
	if !ok {
		return "", &RequiredFieldError{ISA: r.isa, Ref: r.ref, Key: key, Got: v}
	}
	return s, nil
}

// reqFlag returns the integer flag under key or a [RequiredFieldError].
func (r rawObject) reqFlag(key string) (int, error) {
	v, ok := r.m[key]
	if !ok {
		return 0, &RequiredFieldError{ISA: r.isa, Ref: r.ref, Key: key}
	}
	n, ok := parseFlag(v)
	if !ok {
		return 0, &RequiredFieldError{ISA: r.isa, Ref: r.ref, Key: key, Got: v}
	}
	return n, nil
}

// str returns the string under key, or def when absent or not a string.
func (r rawObject) str(key, def string) string {
	if s, ok := r.m[key].(string); ok {
		return s
	}
	return def
}

// optStr returns a pointer to the string under key, or nil when the key is
// absent or mistyped. Absent optional fields are omitted entirely on encode,
// so presence has to be representable.
func (r rawObject) optStr(key string) *string {
	if s, ok := r.m[key].(string); ok {
		return &s
	}
	return nil
}

// flag returns the integer flag under key, or def. Flags travel as numeric
// strings ("0", "1", "2147483647"), never booleans; hand-built raw maps may
// also carry Go ints.
func (r rawObject) flag(key string, def int) int {
	if n, ok := parseFlag(r.m[key]); ok {
		return n
	}
	return def
}

// optFlag is flag without a default: nil means the key stays off the wire.
func (r rawObject) optFlag(key string) *int {
	if n, ok := parseFlag(r.m[key]); ok {
		return &n
	}
	return nil
}

func parseFlag(v any) (int, bool) {
	switch v := v.(type) {
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return n, true
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// strs returns the sequence of strings under key; the default is empty.
// Non-string elements are dropped, a non-sequence value yields the default.
func (r rawObject) strs(key string) []string {
	switch v := r.m[key].(type) {
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	default:
		return nil
	}
}

// dict returns the nested mapping under key; the default is empty.
func (r rawObject) dict(key string) map[string]any {
	if m, ok := r.m[key].(map[string]any); ok {
		return m
	}
	return nil
}

// list returns the heterogeneous sequence under key; the default is empty.
func (r rawObject) list(key string) []any {
	if l, ok := r.m[key].([]any); ok {
		return l
	}
	return nil
}

// eqPtr compares two optional scalars: equal when both absent or both present
// with the same value.
func eqPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// eqStrsPresence compares string sequences whose presence is part of the
// model: a nil (absent) slice and an empty (present) one encode differently,
// so they compare unequal here, unlike under slices.Equal.
func eqStrsPresence(a, b []string) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// equalRaw compares two arbitrarily nested raw values by content, erasing the
// concrete Go types: both sides normalize through the value model, where map
// keys sort, so mapping comparison is insertion-order-insensitive while
// sequences stay ordered.
func equalRaw(a, b any) bool {
	return plist.Equal(plist.FromRaw(a), plist.FromRaw(b))
}

// equalRawMap is equalRaw for mapping fields; nil and empty are the same
// default.
func equalRawMap(a, b map[string]any) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return equalRaw(a, b)
}

// equalRawList is equalRaw for heterogeneous sequence fields.
func equalRawList(a, b []any) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	return equalRaw(a, b)
}

// flagString renders an integer flag in its wire form.
func flagString(n int) plist.String {
	return plist.String{Value: strconv.Itoa(n)}
}
