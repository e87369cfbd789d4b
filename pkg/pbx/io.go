package pbx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/opencollective/xcproj/pkg/plist"

	xcerrors "github.com/opencollective/xcproj/pkg/errors"
)

// ResolveProjectPath resolves a user-supplied path to a concrete
// project.pbxproj file.
//
// Three shapes are accepted:
//   - a project.pbxproj file (or any plain file), returned as-is
//   - a .xcodeproj bundle directory, resolved to <bundle>/project.pbxproj
//   - any other directory, searched for exactly one *.xcodeproj bundle
//
// A directory with no bundle, or with more than one, is an error; callers
// must name the bundle explicitly in the ambiguous case.
func ResolveProjectPath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", xcerrors.Wrap(xcerrors.ErrCodeFileNotFound, err, "no such file: %s", path)
		}
		return "", xcerrors.Wrap(xcerrors.ErrCodeInvalidPath, err, "stat %s", path)
	}
	if !info.IsDir() {
		return path, nil
	}
	if strings.HasSuffix(path, ".xcodeproj") {
		return filepath.Join(path, "project.pbxproj"), nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", xcerrors.Wrap(xcerrors.ErrCodeInvalidPath, err, "scan %s", path)
	}
	var bundles []string
	for _, e := range entries {
		if e.IsDir() && strings.HasSuffix(e.Name(), ".xcodeproj") {
			bundles = append(bundles, e.Name())
		}
	}
	switch len(bundles) {
	case 0:
		return "", xcerrors.New(xcerrors.ErrCodeProjectNotFound, "no .xcodeproj bundle in %s", path)
	case 1:
		return filepath.Join(path, bundles[0], "project.pbxproj"), nil
	default:
		return "", xcerrors.New(xcerrors.ErrCodeProjectNotFound,
			"multiple .xcodeproj bundles in %s (%s); pass one explicitly", path, strings.Join(bundles, ", "))
	}
}

// ReadFile loads and decodes the project file at path. The path is resolved
// with [ResolveProjectPath], so a .xcodeproj bundle or its parent directory
// works as well as the project.pbxproj file itself.
//
// Failures carry pkg/errors codes: FILE_NOT_FOUND when the file is missing,
// INVALID_PLIST when the plist text does not parse, and INVALID_OBJECT when
// the object graph is malformed.
func ReadFile(path string) (*Document, error) {
	resolved, err := ResolveProjectPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, xcerrors.Wrap(xcerrors.ErrCodeFileNotFound, err, "no such file: %s", resolved)
		}
		return nil, xcerrors.Wrap(xcerrors.ErrCodeInvalidPath, err, "read %s", resolved)
	}

	root, err := plist.Parse(data)
	if err != nil {
		return nil, xcerrors.Wrap(xcerrors.ErrCodeInvalidPlist, err, "parse %s", resolved)
	}
	doc, err := DecodeDocument(root)
	if err != nil {
		return nil, xcerrors.Wrap(xcerrors.ErrCodeInvalidObject, err, "decode %s", resolved)
	}

	// The project's name is not stored in the file; Xcode derives it from
	// the bundle. Without it the configuration-list comments degrade to an
	// empty name on re-encode.
	if name := projectNameFromPath(resolved); name != "" {
		if p, err := doc.RootProject(); err == nil && p.Name == "" {
			p.Name = name
		}
	}
	return doc, nil
}

// projectNameFromPath derives the project's display name from the resolved
// file location: the basename of the enclosing .xcodeproj bundle. A bare
// project.pbxproj outside a bundle has no name.
func projectNameFromPath(resolved string) string {
	base := filepath.Base(filepath.Dir(resolved))
	if name, ok := strings.CutSuffix(base, ".xcodeproj"); ok && name != "" {
		return name
	}
	return ""
}

// WriteFile serializes d and writes it to path with mode 0644. The parent
// directory must already exist. Unlike [ReadFile], path is taken literally:
// writing through a bundle requires naming <bundle>/project.pbxproj.
func WriteFile(d *Document, path string) error {
	if err := os.WriteFile(path, d.Marshal(), 0o644); err != nil {
		return xcerrors.Wrap(xcerrors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
