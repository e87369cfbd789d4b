package pbx

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	doc := demoDocument(t)

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var top map[string]any
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got := top["rootObject"]; got != "6A60" {
		t.Errorf("rootObject = %v, want 6A60", got)
	}
	if got := top["objectVersion"]; got != "56" {
		t.Errorf("objectVersion = %v, want %q", got, "56")
	}
	objects, ok := top["objects"].(map[string]any)
	if !ok {
		t.Fatalf("objects is %T, want map", top["objects"])
	}
	if len(objects) != 14 {
		t.Errorf("len(objects) = %d, want 14", len(objects))
	}
	project, ok := objects["6A60"].(map[string]any)
	if !ok {
		t.Fatalf("objects[6A60] is %T, want map", objects["6A60"])
	}
	if got := project["isa"]; got != "PBXProject" {
		t.Errorf("isa = %v, want PBXProject", got)
	}
	if regions, ok := project["knownRegions"].([]any); !ok || len(regions) != 2 {
		t.Errorf("knownRegions = %v, want two regions", project["knownRegions"])
	}
	// Comments exist only in the plist form.
	if strings.Contains(string(data), "Project object") {
		t.Error("JSON output carries plist comments")
	}
}

func TestMarshalIndentJSON(t *testing.T) {
	data, err := MarshalIndentJSON(demoDocument(t))
	if err != nil {
		t.Fatalf("MarshalIndentJSON: %v", err)
	}
	want := "{\n  \"archiveVersion\": \"1\",\n  \"classes\": {},"
	if !strings.HasPrefix(string(data), want) {
		t.Errorf("indented output starts %.60q, want prefix %q", string(data), want)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("sink closed") }

func TestWriteJSON(t *testing.T) {
	doc := demoDocument(t)

	var sb strings.Builder
	if err := WriteJSON(doc, &sb); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	indented, err := MarshalIndentJSON(doc)
	if err != nil {
		t.Fatalf("MarshalIndentJSON: %v", err)
	}
	if got, want := sb.String(), string(indented)+"\n"; got != want {
		t.Error("WriteJSON output differs from MarshalIndentJSON plus newline")
	}

	if err := WriteJSON(doc, failWriter{}); err == nil {
		t.Error("WriteJSON(failWriter) = nil, want error")
	}
}
