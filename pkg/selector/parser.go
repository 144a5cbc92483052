package selector

import (
	"fmt"
	"strings"

	"github.com/wongyip/php-html-writer/pkg/attrs"
)

// Parser splits a selector expression into a tag name and the attributes
// derived from its #id and .class fragments. Bracketed attribute fragments
// are validated but not returned here; InlineParser extracts those.
type Parser struct{}

// Parse parses expr and returns the tag name plus an attribute set holding
// at most the "id" and "class" keys. An empty or whitespace-only expression
// yields the default tag "div" with no attributes.
func (Parser) Parse(expr string) (string, attrs.Set, error) {
	ex, err := scan(expr)
	if err != nil {
		return "", nil, err
	}
	a := make(attrs.Set, 2)
	if ex.id != "" {
		a["id"] = ex.id
	}
	if len(ex.classes) > 0 {
		a["class"] = attrs.JoinClasses(ex.classes...)
	}
	return ex.tag, a, nil
}

// InlineParser extracts the bracketed attribute fragments embedded in a
// selector expression.
type InlineParser struct{}

// Parse re-scans expr and returns the attributes from its bracketed
// fragments, raw and unescaped. Expressions without a fragment yield an
// empty set.
func (InlineParser) Parse(expr string) (attrs.Set, error) {
	ex, err := scan(expr)
	if err != nil {
		return nil, err
	}
	return ex.inline, nil
}

// expression is the decomposed form of a selector expression.
type expression struct {
	tag     string
	id      string
	classes []string
	inline  attrs.Set
}

// scan decomposes a selector expression. The expression is trimmed first;
// positions in errors refer to the trimmed text.
func scan(input string) (*expression, error) {
	s := strings.TrimSpace(input)
	ex := &expression{tag: "div", inline: attrs.Set{}}
	n := len(s)
	i := 0

	if n > 0 && isTagStart(s[0]) {
		for i < n && isTagPart(s[i]) {
			i++
		}
		ex.tag = s[:i]
	}

	sawID := false
	for i < n {
		switch c := s[i]; c {
		case '#':
			if sawID {
				return nil, &MalformedSelectorError{Expr: s, Offset: i, Reason: "second #id fragment"}
			}
			name, next := scanIdent(s, i+1)
			if name == "" {
				return nil, &MalformedSelectorError{Expr: s, Offset: i, Reason: "empty id fragment"}
			}
			ex.id = name
			sawID = true
			i = next
		case '.':
			name, next := scanIdent(s, i+1)
			if name == "" {
				return nil, &MalformedSelectorError{Expr: s, Offset: i, Reason: "empty class fragment"}
			}
			ex.classes = append(ex.classes, name)
			i = next
		case '[':
			next, err := scanFragment(s, i, ex.inline)
			if err != nil {
				return nil, err
			}
			i = next
		default:
			return nil, &MalformedSelectorError{Expr: s, Offset: i, Reason: fmt.Sprintf("unexpected character %q", c)}
		}
	}
	return ex, nil
}

// scanFragment consumes one bracketed attribute fragment starting at the
// "[" at position i and merges its pairs into dst. It returns the position
// just past the closing "]".
func scanFragment(s string, i int, dst attrs.Set) (int, error) {
	open := i
	i++ // consume [
	n := len(s)
	for {
		for i < n && isSpace(s[i]) {
			i++
		}
		if i >= n {
			return 0, &MalformedAttributeStringError{Expr: s, Offset: open, Reason: "unterminated attribute fragment"}
		}
		if s[i] == ']' {
			return i + 1, nil
		}
		if !isKeyStart(s[i]) {
			return 0, &MalformedAttributeStringError{Expr: s, Offset: i, Reason: fmt.Sprintf("unexpected character %q", s[i])}
		}
		start := i
		for i < n && isKeyPart(s[i]) {
			i++
		}
		key := s[start:i]
		value := ""
		if i < n && s[i] == '=' {
			var err error
			value, i, err = scanValue(s, i+1)
			if err != nil {
				return 0, err
			}
		}
		if key == "class" {
			dst[key] = attrs.JoinClasses(dst[key], value)
		} else {
			dst[key] = value
		}
	}
}

// scanValue consumes an attribute value starting at position i. Quoted
// values end at the matching unescaped quote; unquoted values end at the
// next whitespace or "]".
func scanValue(s string, i int) (string, int, error) {
	n := len(s)
	if i < n && (s[i] == '"' || s[i] == '\'') {
		quote := s[i]
		open := i
		i++
		var b strings.Builder
		for i < n {
			c := s[i]
			if c == '\\' && i+1 < n {
				b.WriteByte(s[i+1])
				i += 2
				continue
			}
			if c == quote {
				return b.String(), i + 1, nil
			}
			b.WriteByte(c)
			i++
		}
		return "", 0, &MalformedAttributeStringError{Expr: s, Offset: open, Reason: "unterminated quoted value"}
	}
	start := i
	for i < n && !isSpace(s[i]) && s[i] != ']' {
		i++
	}
	return s[start:i], i, nil
}

func scanIdent(s string, i int) (string, int) {
	start := i
	for i < len(s) && isIdentPart(s[i]) {
		i++
	}
	return s[start:i], i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isTagStart(c byte) bool { return isLetter(c) }

func isTagPart(c byte) bool { return isLetter(c) || isDigit(c) || c == '-' }

func isIdentPart(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_' || c == ':'
}

// Attribute keys follow the same shape as data-* and aria-* names.
func isKeyStart(c byte) bool { return isLetter(c) }

func isKeyPart(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_' || c == ':' || c == '.'
}
