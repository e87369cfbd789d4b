package pbx

import (
	"errors"
	"slices"
	"testing"
)

// sp and ip build the optional-field pointers tests need inline.
func sp(s string) *string { return &s }
func ip(n int) *int       { return &n }

func TestParseFlag(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   int
		wantOK bool
	}{
		{"numeric string", "2147483647", 2147483647, true},
		{"zero string", "0", 0, true},
		{"int", 7, 7, true},
		{"int64", int64(12), 12, true},
		{"float64", float64(3), 3, true},
		{"word", "yes", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseFlag(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("parseFlag(%v) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStrs(t *testing.T) {
	r := rawObject{m: map[string]any{
		"regions": []any{"en", "Base"},
		"typed":   []string{"a"},
		"mixed":   []any{"keep", 42, "also"},
		"present": []any{},
		"wrong":   "not a list",
	}}

	if got := r.strs("regions"); !slices.Equal(got, []string{"en", "Base"}) {
		t.Errorf("strs(regions) = %v", got)
	}
	if got := r.strs("typed"); !slices.Equal(got, []string{"a"}) {
		t.Errorf("strs(typed) = %v", got)
	}
	if got := r.strs("mixed"); !slices.Equal(got, []string{"keep", "also"}) {
		t.Errorf("strs(mixed) = %v, want non-strings dropped", got)
	}
	if got := r.strs("absent"); got != nil {
		t.Errorf("strs(absent) = %v, want nil", got)
	}
	if got := r.strs("wrong"); got != nil {
		t.Errorf("strs(wrong) = %v, want nil", got)
	}
	// A present-but-empty list must stay distinguishable from an absent key.
	if got := r.strs("present"); got == nil || len(got) != 0 {
		t.Errorf("strs(present) = %v, want empty non-nil", got)
	}
}

func TestEqPtr(t *testing.T) {
	if !eqPtr[string](nil, nil) {
		t.Error("eqPtr(nil, nil) = false")
	}
	if eqPtr(sp("a"), nil) || eqPtr(nil, sp("a")) {
		t.Error("present vs absent compared equal")
	}
	if !eqPtr(sp("a"), sp("a")) {
		t.Error("eqPtr(a, a) = false")
	}
	if eqPtr(sp("a"), sp("b")) {
		t.Error("eqPtr(a, b) = true")
	}
	if !eqPtr(ip(1), ip(1)) || eqPtr(ip(0), ip(1)) {
		t.Error("integer pointer comparison broken")
	}
}

func TestEqualRawMap(t *testing.T) {
	a := map[string]any{
		"TargetAttributes": map[string]any{"T1": map[string]any{"CreatedOnToolsVersion": "9.2"}},
		"regions":          []any{"en", "Base"},
	}
	b := map[string]any{
		"regions":          []string{"en", "Base"},
		"TargetAttributes": map[string]any{"T1": map[string]any{"CreatedOnToolsVersion": "9.2"}},
	}
	if !equalRawMap(a, b) {
		t.Error("equivalent nested maps compared unequal")
	}
	if !equalRawMap(nil, map[string]any{}) {
		t.Error("nil and empty map compared unequal")
	}
	if equalRawMap(map[string]any{"k": "a"}, map[string]any{"k": "b"}) {
		t.Error("different values compared equal")
	}
	// Sequences stay ordered even inside the type-erased comparison.
	if equalRawMap(map[string]any{"r": []any{"en", "Base"}}, map[string]any{"r": []any{"Base", "en"}}) {
		t.Error("reordered sequence compared equal")
	}
}

func TestRequiredFieldErrorMessage(t *testing.T) {
	missing := &RequiredFieldError{ISA: ISAProject, Ref: "AA01", Key: "mainGroup"}
	if got, want := missing.Error(), `PBXProject AA01: missing required field "mainGroup"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	mismatched := &RequiredFieldError{ISA: ISAProject, Ref: "AA01", Key: "mainGroup", Got: 42}
	if got, want := mismatched.Error(), `PBXProject AA01: required field "mainGroup": unexpected int`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	docLevel := &RequiredFieldError{ISA: isaDocument, Key: "rootObject"}
	if got, want := docLevel.Error(), `document: missing required field "rootObject"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !errors.Is(missing, ErrRequiredField) {
		t.Error("errors.Is(missing, ErrRequiredField) = false")
	}
}
