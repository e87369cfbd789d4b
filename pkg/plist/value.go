// Package plist implements the old-style ASCII property list dialect used by
// Xcode project files: dictionaries of `key = value;` entries, parenthesized
// arrays, and strings that may carry a trailing `/* comment */` annotation.
//
// Values are modeled as a closed variant: [String], [Array], and [Dict].
// Comments are rendering-only metadata. They are written adjacent to their
// value, skipped entirely on parse, and ignored by [Equal].
package plist

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
)

// Header is the encoding marker Xcode writes as the first line of a
// project.pbxproj file.
const Header = "// !$*UTF8*$!"

// Kind identifies the concrete type of a [Value].
type Kind uint8

const (
	KindString Kind = iota
	KindArray
	KindDict
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Value is one node of a property list: a [String], an [Array], or a [Dict].
// The set of implementations is closed; external packages cannot add kinds,
// so encoders may switch exhaustively.
type Value interface {
	// Kind reports the concrete kind of the value.
	Kind() Kind
	// Raw returns the untyped view of the value: string, []any, or
	// map[string]any. Comments and dictionary order are dropped.
	Raw() any

	value() // seals the interface
}

// String is a literal with an optional trailing comment annotation.
// The dialect has no numeric or boolean kind: numbers and flags are their
// literal string form ("0", "1", "2147483647").
type String struct {
	Value   string
	Comment string
}

func (s String) Kind() Kind { return KindString }
func (s String) Raw() any   { return s.Value }
func (s String) value()     {}

// Array is an ordered sequence of values.
type Array []Value

func (a Array) Kind() Kind { return KindArray }
func (a Array) value()     {}

func (a Array) Raw() any {
	out := make([]any, len(a))
	for i, v := range a {
		out[i] = v.Raw()
	}
	return out
}

// Entry is one key/value pair of a [Dict]. The key may carry its own comment,
// rendered between the key and the `=` separator.
type Entry struct {
	Key        string
	KeyComment string
	Value      Value
}

// Dict is an ordered mapping. Unlike a Go map it preserves entry order, which
// the target format is sensitive to, and permits per-key comments.
type Dict struct {
	entries []Entry
}

// NewDict creates a dictionary from entries, preserving their order.
func NewDict(entries ...Entry) *Dict {
	return &Dict{entries: entries}
}

func (d *Dict) Kind() Kind { return KindDict }
func (d *Dict) value()     {}

func (d *Dict) Raw() any {
	out := make(map[string]any, d.Len())
	for _, e := range d.Entries() {
		out[e.Key] = e.Value.Raw()
	}
	return out
}

// Len returns the number of entries.
func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns the entries in order. The slice is shared with the
// dictionary; treat it as read-only.
func (d *Dict) Entries() []Entry {
	if d == nil {
		return nil
	}
	return d.entries
}

// Get returns the value for key and whether it is present. For duplicate keys
// the first entry wins.
func (d *Dict) Get(key string) (Value, bool) {
	if d == nil {
		return nil, false
	}
	for _, e := range d.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of an existing key in place, or appends a new entry.
func (d *Dict) Set(key string, v Value) {
	d.SetEntry(Entry{Key: key, Value: v})
}

// SetEntry replaces the entry for e.Key in place, or appends it.
func (d *Dict) SetEntry(e Entry) {
	for i := range d.entries {
		if d.entries[i].Key == e.Key {
			d.entries[i] = e
			return
		}
	}
	d.append(e)
}

// append adds an entry without checking for duplicates. The parser uses it to
// keep malformed input with repeated keys verbatim.
func (d *Dict) append(e Entry) {
	d.entries = append(d.entries, e)
}

// Equal reports whether two values have the same structure and content.
// Comments are ignored. Dictionary comparison is order-sensitive; callers that
// need order-insensitive mapping comparison normalize through [FromRaw] first,
// which sorts keys.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case String:
		bv, ok := b.(String)
		return ok && av.Value == bv.Value
	case Array:
		bv, ok := b.(Array)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Dict:
		bv, ok := b.(*Dict)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for i, e := range av.Entries() {
			o := bv.Entries()[i]
			if e.Key != o.Key || !Equal(e.Value, o.Value) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}

// FromRaw converts an arbitrary nested Go value into the value model. Strings
// map to [String], slices to [Array], and maps to [Dict] with keys in sorted
// order, so the conversion is deterministic. Numbers and booleans become their
// literal string form (flags are numeric in this dialect, so true renders as
// "1"). Values of any other dynamic type degrade to their fmt rendering; the
// conversion is total.
func FromRaw(v any) Value {
	switch v := v.(type) {
	case nil:
		return String{}
	case Value:
		return v
	case string:
		return String{Value: v}
	case []any:
		out := make(Array, len(v))
		for i, e := range v {
			out[i] = FromRaw(e)
		}
		return out
	case []string:
		out := make(Array, len(v))
		for i, e := range v {
			out[i] = String{Value: e}
		}
		return out
	case map[string]any:
		d := &Dict{entries: make([]Entry, 0, len(v))}
		for _, k := range slices.Sorted(maps.Keys(v)) {
			d.append(Entry{Key: k, Value: FromRaw(v[k])})
		}
		return d
	case map[string]string:
		d := &Dict{entries: make([]Entry, 0, len(v))}
		for _, k := range slices.Sorted(maps.Keys(v)) {
			d.append(Entry{Key: k, Value: String{Value: v[k]}})
		}
		return d
	case bool:
		if v {
			return String{Value: "1"}
		}
		return String{Value: "0"}
	case int:
		return String{Value: strconv.Itoa(v)}
	case int64:
		return String{Value: strconv.FormatInt(v, 10)}
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1e15 {
			return String{Value: strconv.FormatInt(int64(v), 10)}
		}
		return String{Value: strconv.FormatFloat(v, 'g', -1, 64)}
	default:
		return String{Value: fmt.Sprint(v)}
	}
}
