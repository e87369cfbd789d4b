package pbx

import "testing"

func TestAnnotations(t *testing.T) {
	doc := demoDocument(t)
	ann := doc.annotations()

	want := map[string]string{
		"7C70": `Build configuration list for PBXProject "Demo"`,
		"7C71": `Build configuration list for PBXNativeTarget "App"`,
		"1A10": "main.swift in Sources",
	}
	for ref, comment := range want {
		if got := ann[ref]; got != comment {
			t.Errorf("annotations[%s] = %q, want %q", ref, got, comment)
		}
	}
	if len(ann) != len(want) {
		t.Errorf("annotations = %v, want exactly %d entries", ann, len(want))
	}
}

// Owner references that resolve to an object of the wrong kind contribute
// nothing: a configuration-list comment may only land on a configuration
// list, an in-phase comment only on a build file.
func TestAnnotationsTypeGuard(t *testing.T) {
	doc := NewDocument()
	for _, obj := range []Object{
		&PBXProject{Ref: "P1", Name: "App", BuildConfigurationList: "G1", CompatibilityVersion: "Xcode 3.2", MainGroup: "G1"},
		&PBXGroup{Ref: "G1", SourceTree: "<group>"},
		&PBXSourcesBuildPhase{Ref: "S1", Files: []string{"G1", "B9"}},
	} {
		if err := doc.Add(obj); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	if ann := doc.annotations(); len(ann) != 0 {
		t.Errorf("annotations = %v, want none", ann)
	}
}

// When two owners point at the same configuration list, the owner with the
// smaller reference claims it and the result stays deterministic.
func TestAnnotationsFirstClaimWins(t *testing.T) {
	doc := NewDocument()
	for _, obj := range []Object{
		&XCConfigurationList{Ref: "C1"},
		&PBXNativeTarget{Ref: "T1", Name: "First", BuildConfigurationList: "C1"},
		&PBXNativeTarget{Ref: "T2", Name: "Second", BuildConfigurationList: "C1"},
	} {
		if err := doc.Add(obj); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	ann := doc.annotations()
	if got, want := ann["C1"], `Build configuration list for PBXNativeTarget "First"`; got != want {
		t.Errorf("annotations[C1] = %q, want %q", got, want)
	}
}

// A build file inside a shell-script phase is annotated with the phase's own
// name rather than a fixed kind label.
func TestAnnotationsNamedPhase(t *testing.T) {
	doc := NewDocument()
	for _, obj := range []Object{
		&PBXFileReference{Ref: "F1", Path: "lint.sh", SourceTree: "<group>"},
		&PBXBuildFile{Ref: "B1", FileRef: sp("F1")},
		&PBXShellScriptBuildPhase{Ref: "S1", Name: sp("Run SwiftLint"), Files: []string{"B1"}, ShellPath: "/bin/sh"},
	} {
		if err := doc.Add(obj); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	ann := doc.annotations()
	if got, want := ann["B1"], "lint.sh in Run SwiftLint"; got != want {
		t.Errorf("annotations[B1] = %q, want %q", got, want)
	}
}
