package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateProjectPath validates a user-supplied project path for safety.
// Absolute and relative paths are both fine; what gets rejected is input
// that cannot be a real path at all.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidateProjectPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "project path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "project path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "project path contains invalid characters")
		}
	}

	return nil
}

// referenceRegex matches object references. Xcode's own identifiers are 24
// uppercase hex digits, but other project generators write longer or mixed
// keys, so only charset and length are checked here.
var referenceRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ValidateReference validates a user-supplied object reference before it is
// used as a lookup key.
func ValidateReference(ref string) error {
	if ref == "" {
		return New(ErrCodeInvalidReference, "object reference cannot be empty")
	}

	if !referenceRegex.MatchString(ref) {
		return New(ErrCodeInvalidReference, "invalid object reference: %q", ref)
	}

	return nil
}

// graphFormats are the renderings the graph command can produce.
var graphFormats = []string{"dot", "svg", "png"}

// ValidateGraphFormat validates an output format name for the target graph.
func ValidateGraphFormat(format string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}

	for _, f := range graphFormats {
		if format == f {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unknown output format %q (want %s)", format, strings.Join(graphFormats, ", "))
}

// graphDirections are the rank directions the renderer accepts.
var graphDirections = []string{"TB", "LR"}

// ValidateGraphDirection validates a Graphviz rank direction.
func ValidateGraphDirection(direction string) error {
	if direction == "" {
		return New(ErrCodeInvalidFormat, "rank direction cannot be empty")
	}

	for _, d := range graphDirections {
		if direction == d {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unknown rank direction %q (want %s)", direction, strings.Join(graphDirections, ", "))
}
