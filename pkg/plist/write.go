package plist

import (
	"io"
	"strings"
)

// isSafeBare reports whether c may appear in an unquoted string on output.
// The writer's set is narrower than what the parser accepts: Xcode quotes
// '-' and ':' even though they scan fine bare, and emitted files should
// match what Xcode itself writes.
func isSafeBare(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '$', '/', '.':
		return true
	}
	return false
}

// NeedsQuote reports whether s must be double-quoted on output. Empty strings
// and strings containing any byte outside the writer's bare charset need
// quotes.
func NeedsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		if !isSafeBare(s[i]) {
			return true
		}
	}
	return false
}

// Quote returns the wire form of s: verbatim when it can stand bare, otherwise
// double-quoted with backslash escapes.
func Quote(s string) string {
	if !NeedsQuote(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// WriteOptions configure [Write].
type WriteOptions struct {
	// Flow renders the whole value on a single line: `{k = v; }` and
	// `(a, b, )` instead of one entry per line.
	Flow bool
}

// Write renders v in the pbxproj convention: tab indentation, `key = value;`
// entries, one per line, with comments emitted as `/* ... */` immediately
// after the token they annotate. Rendering is total for well-formed values;
// the only possible error comes from w.
func Write(w io.Writer, v Value, opts WriteOptions) error {
	_, err := w.Write(AppendValue(nil, v, 0, opts.Flow))
	return err
}

// AppendValue appends the rendering of v to dst and returns the result.
// depth is the tab depth of the line the value starts on; nested entries
// indent one deeper. Flow mode renders everything on a single line.
func AppendValue(dst []byte, v Value, depth int, flow bool) []byte {
	switch v := v.(type) {
	case String:
		dst = append(dst, Quote(v.Value)...)
		if v.Comment != "" {
			dst = append(dst, " /* "...)
			dst = append(dst, v.Comment...)
			dst = append(dst, " */"...)
		}
	case Array:
		if flow {
			dst = append(dst, '(')
			for _, e := range v {
				dst = AppendValue(dst, e, depth, true)
				dst = append(dst, ", "...)
			}
			dst = append(dst, ')')
			break
		}
		dst = append(dst, "(\n"...)
		for _, e := range v {
			dst = appendTabs(dst, depth+1)
			dst = AppendValue(dst, e, depth+1, false)
			dst = append(dst, ",\n"...)
		}
		dst = appendTabs(dst, depth)
		dst = append(dst, ')')
	case *Dict:
		if flow {
			dst = append(dst, '{')
			for _, e := range v.Entries() {
				dst = AppendEntry(dst, e, depth, true)
			}
			dst = append(dst, '}')
			break
		}
		dst = append(dst, "{\n"...)
		for _, e := range v.Entries() {
			dst = AppendEntry(dst, e, depth+1, false)
		}
		dst = appendTabs(dst, depth)
		dst = append(dst, '}')
	}
	return dst
}

// AppendEntry appends one dictionary entry. In block mode that is a full
// `key = value;` line at the given tab depth; in flow mode it is
// `key = value; ` with a trailing space and no indentation.
func AppendEntry(dst []byte, e Entry, depth int, flow bool) []byte {
	if !flow {
		dst = appendTabs(dst, depth)
	}
	dst = append(dst, Quote(e.Key)...)
	if e.KeyComment != "" {
		dst = append(dst, " /* "...)
		dst = append(dst, e.KeyComment...)
		dst = append(dst, " */"...)
	}
	dst = append(dst, " = "...)
	dst = AppendValue(dst, e.Value, depth, flow)
	if flow {
		dst = append(dst, "; "...)
	} else {
		dst = append(dst, ";\n"...)
	}
	return dst
}

func appendTabs(dst []byte, n int) []byte {
	for i := 0; i < n; i++ {
		dst = append(dst, '\t')
	}
	return dst
}
