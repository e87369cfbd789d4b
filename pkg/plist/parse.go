package plist

import "fmt"

// ParseError describes a syntax error and where it occurred. Line and Col are
// 1-based; Col counts bytes, not runes.
type ParseError struct {
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("plist: line %d:%d: %s", e.Line, e.Col, e.Msg)
}

// Parse reads a single value from data. It accepts the pbxproj flavor of the
// old-style plist syntax: an optional `// !$*UTF8*$!` header line, `/* */` and
// `//` comments anywhere between tokens, `{key = value;}` dictionaries with
// bare or quoted keys, `(a, b,)` arrays with optional trailing separators, and
// strings either bare (over the charset A-Z a-z 0-9 _ $ / : . -) or double
// quoted with backslash escapes.
//
// Comments are skipped, never captured: annotations in the input are
// informational and are re-synthesized on output. Dictionary entry order is
// preserved in the returned [Dict].
func Parse(data []byte) (Value, error) {
	p := &parser{data: data, line: 1, col: 1}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if err := p.skipSpace(); err != nil {
		return nil, err
	}
	if p.pos < len(p.data) {
		return nil, p.errf("trailing data after value")
	}
	return v, nil
}

type parser struct {
	data []byte
	pos  int
	line int
	col  int
}

func (p *parser) errf(format string, args ...any) *ParseError {
	return &ParseError{Line: p.line, Col: p.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) peek() (byte, bool) {
	if p.pos >= len(p.data) {
		return 0, false
	}
	return p.data[p.pos], true
}

func (p *parser) advance() byte {
	c := p.data[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.col = 1
	} else {
		p.col++
	}
	return c
}

// skipSpace consumes whitespace and both comment forms. An unterminated block
// comment is an error; everything else just stops at the next token.
func (p *parser) skipSpace() error {
	for {
		c, ok := p.peek()
		if !ok {
			return nil
		}
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			p.advance()
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '/':
			for {
				c, ok := p.peek()
				if !ok || c == '\n' {
					break
				}
				p.advance()
			}
		case c == '/' && p.pos+1 < len(p.data) && p.data[p.pos+1] == '*':
			start := *p
			p.advance()
			p.advance()
			for {
				c, ok := p.peek()
				if !ok {
					return start.errf("unterminated block comment")
				}
				p.advance()
				if c == '*' {
					if n, ok := p.peek(); ok && n == '/' {
						p.advance()
						break
					}
				}
			}
		default:
			return nil
		}
	}
}

func (p *parser) expect(want byte) error {
	c, ok := p.peek()
	if !ok {
		return p.errf("unexpected end of input, want %q", want)
	}
	if c != want {
		return p.errf("unexpected %q, want %q", c, want)
	}
	p.advance()
	return nil
}

func (p *parser) parseValue() (Value, error) {
	c, ok := p.peek()
	if !ok {
		return nil, p.errf("unexpected end of input")
	}
	switch {
	case c == '{':
		return p.parseDict()
	case c == '(':
		return p.parseArray()
	case c == '"':
		s, err := p.parseQuoted()
		if err != nil {
			return nil, err
		}
		return String{Value: s}, nil
	case isBareChar(c):
		return String{Value: p.parseBare()}, nil
	default:
		return nil, p.errf("unexpected %q", c)
	}
}

func (p *parser) parseDict() (Value, error) {
	p.advance() // '{'
	d := &Dict{}
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		c, ok := p.peek()
		if !ok {
			return nil, p.errf("unexpected end of input in dictionary")
		}
		if c == '}' {
			p.advance()
			return d, nil
		}
		key, err := p.parseString()
		if err != nil {
			return nil, err
		}
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if err := p.expect('='); err != nil {
			return nil, err
		}
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		if err := p.expect(';'); err != nil {
			return nil, err
		}
		// Entries append directly so duplicate keys survive verbatim.
		d.append(Entry{Key: key, Value: v})
	}
}

func (p *parser) parseArray() (Value, error) {
	p.advance() // '('
	arr := Array{}
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		c, ok := p.peek()
		if !ok {
			return nil, p.errf("unexpected end of input in array")
		}
		if c == ')' {
			p.advance()
			return arr, nil
		}
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		c, ok = p.peek()
		if !ok {
			return nil, p.errf("unexpected end of input in array")
		}
		switch c {
		case ',':
			p.advance()
		case ')':
			p.advance()
			return arr, nil
		default:
			return nil, p.errf("unexpected %q, want %q or %q", c, ',', ')')
		}
	}
}

// parseString reads a bare or quoted string token.
func (p *parser) parseString() (string, error) {
	c, ok := p.peek()
	if !ok {
		return "", p.errf("unexpected end of input, want string")
	}
	if c == '"' {
		return p.parseQuoted()
	}
	if !isBareChar(c) {
		return "", p.errf("unexpected %q, want string", c)
	}
	return p.parseBare(), nil
}

func (p *parser) parseQuoted() (string, error) {
	start := *p
	p.advance() // '"'
	var out []byte
	for {
		c, ok := p.peek()
		if !ok {
			return "", start.errf("unterminated string")
		}
		p.advance()
		switch c {
		case '"':
			return string(out), nil
		case '\\':
			e, ok := p.peek()
			if !ok {
				return "", start.errf("unterminated string")
			}
			p.advance()
			switch e {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				// \" and \\ plus any other escaped byte taken literally.
				out = append(out, e)
			}
		default:
			out = append(out, c)
		}
	}
}

func (p *parser) parseBare() string {
	start := p.pos
	for {
		c, ok := p.peek()
		if !ok || !isBareChar(c) {
			break
		}
		p.advance()
	}
	return string(p.data[start:p.pos])
}

// isBareChar reports whether c may appear in an unquoted string.
func isBareChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '_', '$', '/', ':', '.', '-':
		return true
	}
	return false
}
