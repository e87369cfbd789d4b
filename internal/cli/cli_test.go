package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

func TestMain(m *testing.M) {
	// Strip ANSI sequences from styled output so assertions see plain text.
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// newTestCLI builds a CLI with a discarded logger and built-in defaults,
// bypassing the user's config file.
func newTestCLI() *CLI {
	return &CLI{Logger: newLogger(io.Discard, log.InfoLevel), cfg: defaultConfig()}
}

func TestNew(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	if c.Logger == nil {
		t.Fatal("New() should set a logger")
	}
	if got, want := c.cfg.Graph.Format, "dot"; got != want {
		t.Errorf("default graph format = %q, want %q", got, want)
	}
	if c.cfg.Serve.Addr == "" {
		t.Error("default serve addr should not be empty")
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := &CLI{Logger: newLogger(&buf, log.InfoLevel), cfg: defaultConfig()}

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("debug output should be filtered at info level")
	}

	c.SetLogLevel(LogDebug)
	c.Logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug output should appear after SetLogLevel(LogDebug)")
	}
}

func TestRootCommand(t *testing.T) {
	c := newTestCLI()
	root := c.RootCommand()

	if got, want := root.Name(), "xcproj"; got != want {
		t.Errorf("root command name = %q, want %q", got, want)
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}

	want := []string{"dump", "fmt", "targets", "tree", "browse", "graph", "check", "serve", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing subcommand %q", name)
		}
	}
}

func TestOpenOutputStdout(t *testing.T) {
	w, err := openOutput("")
	if err != nil {
		t.Fatalf("openOutput(\"\") error: %v", err)
	}
	// Closing the stdout wrapper must not close stdout itself.
	if err := w.Close(); err != nil {
		t.Errorf("Close() error: %v", err)
	}
}

func TestOpenOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := openOutput(path)
	if err != nil {
		t.Fatalf("openOutput(%q) error: %v", path, err)
	}
	if _, err := io.WriteString(w, "hello"); err != nil {
		t.Fatalf("write error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("file content = %q, want %q", data, "hello")
	}
}
