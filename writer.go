package htmlwriter

import (
	"fmt"

	"github.com/wongyip/php-html-writer/pkg/attrs"
	"github.com/wongyip/php-html-writer/pkg/render"
	"github.com/wongyip/php-html-writer/pkg/selector"
)

// DefaultEncoding is the encoding a Writer uses unless configured otherwise.
const DefaultEncoding = "UTF-8"

// Attributes is the caller-facing attribute map accepted by Tag and Open.
// See attrs.Normalizer for the accepted value types.
type Attributes = map[string]any

// SelectorParser splits a selector expression into a tag name and the
// attributes derived from its #id and .class fragments.
type SelectorParser interface {
	Parse(expr string) (tag string, a attrs.Set, err error)
}

// InlineParser extracts the bracketed attribute fragments embedded in a
// selector expression.
type InlineParser interface {
	Parse(expr string) (attrs.Set, error)
}

// Normalizer converts a caller-supplied attribute map into a normalized set.
type Normalizer interface {
	Normalize(raw map[string]any) (attrs.Set, error)
}

// TagRenderer renders a resolved (tag, attribute set, content) target into
// markup. Without a content argument, Tag applies the renderer's own
// empty-body / self-closing policy.
type TagRenderer interface {
	Tag(name string, a attrs.Set, content ...string) string
	Open(name string, a attrs.Set) string
	Close(name string) string
}

// Writer resolves selector expressions and attribute data into markup. The
// zero value is not usable; construct with New or derive with With. A Writer
// is immutable after construction and safe for concurrent use.
type Writer struct {
	encoding       string
	selectors      SelectorParser
	inline         InlineParser
	normalizer     Normalizer
	renderer       TagRenderer
	customRenderer bool
}

// Option configures a Writer during construction.
type Option func(*Writer)

// WithEncoding sets the text encoding used for entity escaping. Ignored when
// a renderer is injected with WithRenderer, since escaping is the renderer's
// concern.
func WithEncoding(name string) Option {
	return func(w *Writer) { w.encoding = name }
}

// WithRenderer injects a renderer capability.
func WithRenderer(r TagRenderer) Option {
	return func(w *Writer) {
		w.renderer = r
		w.customRenderer = r != nil
	}
}

// WithSelectorParser injects a selector parser capability.
func WithSelectorParser(p SelectorParser) Option {
	return func(w *Writer) { w.selectors = p }
}

// WithInlineParser injects an inline-attribute parser capability.
func WithInlineParser(p InlineParser) Option {
	return func(w *Writer) { w.inline = p }
}

// WithNormalizer injects an attribute-map normalizer capability.
func WithNormalizer(n Normalizer) Option {
	return func(w *Writer) { w.normalizer = n }
}

// New creates a Writer. Unset capabilities fall back to the package defaults:
// the selector and inline parsers from pkg/selector, the normalizer from
// pkg/attrs, and a pkg/render renderer built for the configured encoding.
func New(opts ...Option) (*Writer, error) {
	w := &Writer{encoding: DefaultEncoding}
	for _, opt := range opts {
		opt(w)
	}
	return finish(w)
}

// MustNew is New but panics on error. Intended for package defaults and
// tests, where the options are known to be valid.
func MustNew(opts ...Option) *Writer {
	w, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return w
}

// With returns a new Writer derived from w with the given options applied.
// The receiver is left untouched, so capability substitution never races
// with in-flight calls on the original.
func (w *Writer) With(opts ...Option) (*Writer, error) {
	derived := *w
	for _, opt := range opts {
		opt(&derived)
	}
	if !derived.customRenderer {
		// Rebuild the default renderer so an encoding change takes effect.
		derived.renderer = nil
	}
	return finish(&derived)
}

func finish(w *Writer) (*Writer, error) {
	if w.selectors == nil {
		w.selectors = selector.Parser{}
	}
	if w.inline == nil {
		w.inline = selector.InlineParser{}
	}
	if w.normalizer == nil {
		w.normalizer = attrs.Normalizer{}
	}
	if w.renderer == nil {
		r, err := render.New(render.Config{Encoding: w.encoding})
		if err != nil {
			return nil, err
		}
		w.renderer = r
	}
	return w, nil
}

// Encoding returns the encoding name the Writer was configured with.
func (w *Writer) Encoding() string {
	return w.encoding
}

// Tag renders a complete element for the selector expression.
//
// The optional arguments follow one rule table, applied before any parsing:
//
//	Tag(sel)                    no extra attributes, renderer body policy
//	Tag(sel, content)           a lone string is content, attributes empty
//	Tag(sel, attributes)        a map (or nil) is the attribute source
//	Tag(sel, attributes, content)
//
// Any other argument shape is an error.
func (w *Writer) Tag(expr string, args ...any) (string, error) {
	attributes, content, err := splitArgs(args)
	if err != nil {
		return "", err
	}
	tag, merged, err := w.resolve(expr, attributes)
	if err != nil {
		return "", err
	}
	return w.renderer.Tag(tag, merged, content...), nil
}

// Open renders only the opening tag for the selector expression, or the
// complete self-closed form for void elements. A nil attribute map means no
// extra attributes.
func (w *Writer) Open(expr string, attributes map[string]any) (string, error) {
	tag, merged, err := w.resolve(expr, attributes)
	if err != nil {
		return "", err
	}
	return w.renderer.Open(tag, merged), nil
}

// Close renders only the closing tag. Any #id, .class or bracketed
// fragments in the argument are parsed and discarded, so Close("div#x.y")
// renders the same as Close("div").
func (w *Writer) Close(expr string) (string, error) {
	tag, _, err := w.selectors.Parse(expr)
	if err != nil {
		return "", err
	}
	return w.renderer.Close(tag), nil
}

// resolve runs the full pipeline short of rendering: parse the selector,
// re-scan it for inline attributes, normalize the caller map, and merge the
// three sets with precedence selector < inline < map.
func (w *Writer) resolve(expr string, attributes map[string]any) (string, attrs.Set, error) {
	tag, fromSelector, err := w.selectors.Parse(expr)
	if err != nil {
		return "", nil, err
	}
	fromInline, err := w.inline.Parse(expr)
	if err != nil {
		return "", nil, err
	}
	fromMap, err := w.normalizer.Normalize(attributes)
	if err != nil {
		return "", nil, err
	}
	return tag, fromSelector.Merge(fromInline).Merge(fromMap), nil
}

// splitArgs applies Tag's call-shape rules. A lone non-map argument is
// reinterpreted as content; with two arguments the first must be the
// attribute map and the second the content string.
func splitArgs(args []any) (map[string]any, []string, error) {
	switch len(args) {
	case 0:
		return nil, nil, nil
	case 1:
		switch v := args[0].(type) {
		case nil:
			return nil, nil, nil
		case string:
			return nil, []string{v}, nil
		default:
			m, err := asAttributeMap(args[0])
			if err != nil {
				return nil, nil, err
			}
			return m, nil, nil
		}
	case 2:
		m, err := asAttributeMap(args[0])
		if err != nil {
			return nil, nil, err
		}
		content, ok := args[1].(string)
		if !ok {
			return nil, nil, fmt.Errorf("htmlwriter: content argument must be a string, got %T", args[1])
		}
		return m, []string{content}, nil
	default:
		return nil, nil, fmt.Errorf("htmlwriter: too many arguments (%d)", len(args))
	}
}

func asAttributeMap(arg any) (map[string]any, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	case attrs.Set:
		m := make(map[string]any, len(v))
		for k, val := range v {
			m[k] = val
		}
		return m, nil
	default:
		return nil, fmt.Errorf("htmlwriter: attribute argument must be a map, got %T", arg)
	}
}

// Default is the Writer behind the package-level Tag, Open and Close.
var Default = MustNew()

// Tag renders a complete element using the default Writer.
func Tag(expr string, args ...any) (string, error) {
	return Default.Tag(expr, args...)
}

// Open renders an opening tag using the default Writer.
func Open(expr string, attributes map[string]any) (string, error) {
	return Default.Open(expr, attributes)
}

// Close renders a closing tag using the default Writer.
func Close(expr string) (string, error) {
	return Default.Close(expr)
}
