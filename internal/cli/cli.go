// Package cli implements the xcproj command-line interface.
//
// This package provides commands for decoding Xcode project files to JSON,
// rewriting them in canonical form, and inspecting their group tree and
// target dependency graph. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - dump: Decode a project file and write it as JSON
//   - fmt: Rewrite project files in canonical form
//   - targets: List targets with their configurations and dependencies
//   - tree: Print the group hierarchy
//   - browse: Walk the group hierarchy interactively
//   - graph: Render the target dependency graph as DOT, SVG, or PNG
//   - check: Run structural diagnostics on the object graph
//   - serve: Expose a project over HTTP for local inspection
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Logs go to
// stderr so command output stays pipeable.
//
// # Example
//
//	import "github.com/opencollective/xcproj/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/opencollective/xcproj/pkg/buildinfo"
	xcerrors "github.com/opencollective/xcproj/pkg/errors"
	"github.com/opencollective/xcproj/pkg/pbx"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "xcproj"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	cfg    Config
}

// New creates a new CLI instance with a default logger and the user
// configuration. A malformed config file is logged and ignored; commands
// then run with built-in defaults.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	cfg, err := loadConfig()
	if err != nil {
		c.Logger.Warnf("Ignoring config: %v", err)
	}
	c.cfg = cfg
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "xcproj inspects and rewrites Xcode project files",
		Long:         `xcproj is a CLI tool for working with project.pbxproj files: decode them to JSON, reformat them the way Xcode writes them, browse their group tree, and graph their target dependencies.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.targetsCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadDocument resolves path, reads the project file, and logs timing.
// Path may be a project.pbxproj file, an .xcodeproj bundle, or a directory
// containing one.
func (c *CLI) loadDocument(path string) (*pbx.Document, error) {
	if err := xcerrors.ValidateProjectPath(path); err != nil {
		return nil, err
	}
	c.Logger.Debugf("Reading %s", path)
	prog := newProgress(c.Logger)
	doc, err := pbx.ReadFile(path)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d objects", doc.Len()))
	return doc, nil
}

// openOutput opens the output destination: a file when path is set, stdout
// otherwise. The caller must close the returned writer.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

// nopCloser wraps a writer with a no-op Close so stdout survives the
// caller's deferred close.
type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
