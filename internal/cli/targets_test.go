package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencollective/xcproj/pkg/pbx"
)

// writeProjectFile encodes doc into a Demo.xcodeproj bundle and returns the
// project.pbxproj path. The bundle name matches the fixture's project name,
// so reading the file back reproduces the same bytes.
func writeProjectFile(t *testing.T, doc *pbx.Document) string {
	t.Helper()
	bundle := filepath.Join(t.TempDir(), "Demo.xcodeproj")
	if err := os.MkdirAll(bundle, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(bundle, "project.pbxproj")
	if err := pbx.WriteFile(doc, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestConfigurationNames(t *testing.T) {
	doc := cleanDoc(t)

	tests := []struct {
		name string
		ref  string
		want []string
	}{
		{name: "native target", ref: "T1", want: []string{"Debug"}},
		{name: "missing object", ref: "GONE", want: nil},
		{name: "not a target", ref: "G0", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := configurationNames(doc, tt.ref)
			if len(got) != len(tt.want) {
				t.Fatalf("configurationNames(%s) = %q, want %q", tt.ref, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("configurationNames(%s)[%d] = %q, want %q", tt.ref, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestOrDash(t *testing.T) {
	if got := orDash(""); got != "—" {
		t.Errorf("orDash(\"\") = %q", got)
	}
	if got := orDash("x"); got != "x" {
		t.Errorf("orDash(\"x\") = %q", got)
	}
}

func TestTargetTable(t *testing.T) {
	rows := [][]string{
		{"App", "PBXNativeTarget", "com.apple.product-type.application", "Debug, Release", "2"},
		{"Lib", "PBXNativeTarget", "com.apple.product-type.framework", "Debug", "0"},
	}

	out := targetTable(rows)
	for _, want := range []string{"Target", "Kind", "Product Type", "App", "Lib", "Debug, Release"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output should contain %q:\n%s", want, out)
		}
	}
}

func TestRunTargets(t *testing.T) {
	path := writeProjectFile(t, cleanDoc(t))

	c := newTestCLI()
	if err := c.runTargets(path); err != nil {
		t.Fatalf("runTargets() error: %v", err)
	}
}

func TestRunTargetsMissingFile(t *testing.T) {
	c := newTestCLI()
	if err := c.runTargets(filepath.Join(t.TempDir(), "absent.pbxproj")); err == nil {
		t.Fatal("runTargets() should fail for a missing file")
	}
}
