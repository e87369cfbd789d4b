package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunDump(t *testing.T) {
	path := writeProjectFile(t, cleanDoc(t))
	out := filepath.Join(t.TempDir(), "dump.json")

	c := newTestCLI()
	if err := c.runDump(path, out, false); err != nil {
		t.Fatalf("runDump() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	var top map[string]any
	if err := json.Unmarshal(data, &top); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got := top["rootObject"]; got != "P0" {
		t.Errorf("rootObject = %v, want P0", got)
	}
	objects, ok := top["objects"].(map[string]any)
	if !ok {
		t.Fatalf("objects = %T, want object map", top["objects"])
	}
	if len(objects) != 10 {
		t.Errorf("objects has %d entries, want 10", len(objects))
	}

	// Indented output spans many lines.
	if strings.Count(string(data), "\n") < 10 {
		t.Error("default output should be indented")
	}
}

func TestRunDumpCompact(t *testing.T) {
	path := writeProjectFile(t, cleanDoc(t))
	out := filepath.Join(t.TempDir(), "dump.json")

	c := newTestCLI()
	if err := c.runDump(path, out, true); err != nil {
		t.Fatalf("runDump() error: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 1 {
		t.Errorf("compact output should be a single line, got %d newlines", got)
	}
	if !json.Valid(data) {
		t.Error("compact output is not valid JSON")
	}
}

func TestRunDumpMissingFile(t *testing.T) {
	c := newTestCLI()
	if err := c.runDump(filepath.Join(t.TempDir(), "absent.pbxproj"), "", false); err == nil {
		t.Fatal("runDump() should fail for a missing file")
	}
}

func TestRunDumpBadOutputPath(t *testing.T) {
	path := writeProjectFile(t, cleanDoc(t))

	c := newTestCLI()
	err := c.runDump(path, filepath.Join(t.TempDir(), "missing", "dump.json"), false)
	if err == nil {
		t.Fatal("runDump() should fail when the output directory is missing")
	}
}
