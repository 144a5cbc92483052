package render

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/wongyip/php-html-writer/pkg/attrs"
)

// Config configures the HTML tag renderer.
type Config struct {
	// Encoding is the name of the text encoding the markup is produced
	// for, resolved through the WHATWG encoding index ("UTF-8",
	// "ISO-8859-1", "windows-1252", ...). Characters the encoding cannot
	// represent are emitted as numeric character references.
	// Defaults to "UTF-8".
	Encoding string
}

// Renderer renders resolved tag targets into markup strings.
type Renderer struct {
	encName string
	// enc is nil for UTF-8, where every rune is representable and the
	// reference-escaping round trip would be a no-op.
	enc encoding.Encoding
}

// New creates a Renderer with the given configuration. An encoding name the
// WHATWG index does not know is an error.
func New(config Config) (*Renderer, error) {
	name := config.Encoding
	if name == "" {
		name = "UTF-8"
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("render: unknown encoding %q: %w", name, err)
	}
	r := &Renderer{encName: name}
	if enc != unicode.UTF8 {
		r.enc = enc
	}
	return r, nil
}

// Encoding returns the resolved encoding name the renderer was built with.
func (r *Renderer) Encoding() string {
	return r.encName
}

// Tag renders a complete element. Without a content argument the element is
// rendered with an empty body; a content argument is escaped and placed
// between the opening and closing tags. Void elements never take content and
// render their self-closed form either way.
func (r *Renderer) Tag(name string, a attrs.Set, content ...string) string {
	if isVoidElement(name) {
		return r.Open(name, a)
	}
	var body string
	if len(content) > 0 {
		body = r.forEncoding(escapeText(content[0]))
	}
	return r.Open(name, a) + body + r.Close(name)
}

// Open renders the opening tag only. For void elements this is already the
// complete element.
func (r *Renderer) Open(name string, a attrs.Set) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(name)
	r.writeAttributes(&b, a)
	b.WriteByte('>')
	return b.String()
}

// Close renders the closing tag. Void elements have none, so Close returns
// the empty string for them.
func (r *Renderer) Close(name string) string {
	if isVoidElement(name) {
		return ""
	}
	return "</" + name + ">"
}

// writeAttributes writes the attribute set in sorted name order for
// deterministic output. Boolean attributes with an empty value render
// name-only; any other empty value renders as name="".
func (r *Renderer) writeAttributes(b *strings.Builder, a attrs.Set) {
	if len(a) == 0 {
		return
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := a[key]
		if value == "" && isBooleanAttr(key) {
			b.WriteByte(' ')
			b.WriteString(key)
			continue
		}
		fmt.Fprintf(b, ` %s="%s"`, key, r.forEncoding(escapeAttr(value)))
	}
}

// forEncoding rewrites runes the target encoding cannot represent as numeric
// character references. The escaped input is encoded with unsupported runes
// turned into references, then decoded back so the result stays a UTF-8 Go
// string.
func (r *Renderer) forEncoding(s string) string {
	if r.enc == nil {
		return s
	}
	encoded, err := encoding.HTMLEscapeUnsupported(r.enc.NewEncoder()).String(s)
	if err != nil {
		return s
	}
	decoded, err := r.enc.NewDecoder().String(encoded)
	if err != nil {
		return s
	}
	return decoded
}
