package htmlwriter

import (
	"errors"
	"strings"
	"testing"

	"github.com/wongyip/php-html-writer/pkg/attrs"
	"github.com/wongyip/php-html-writer/pkg/selector"
)

func TestTagBasic(t *testing.T) {
	tests := []struct {
		name string
		expr string
		args []any
		want string
	}{
		{
			name: "bare tag",
			expr: "p",
			args: []any{"hello"},
			want: "<p>hello</p>",
		},
		{
			name: "selector id and classes",
			expr: "div#main.card.active",
			args: []any{"x"},
			want: `<div class="card active" id="main">x</div>`,
		},
		{
			name: "default div",
			expr: ".card",
			args: []any{"x"},
			want: `<div class="card">x</div>`,
		},
		{
			name: "empty selector is a plain div",
			expr: "",
			args: []any{"x"},
			want: "<div>x</div>",
		},
		{
			name: "inline attributes",
			expr: "a[href=/x]",
			args: []any{"go"},
			want: `<a href="/x">go</a>`,
		},
		{
			name: "void element self-closes",
			expr: "input[type=text]",
			args: nil,
			want: `<input type="text">`,
		},
		{
			name: "no content renders empty body",
			expr: "div#x",
			args: nil,
			want: `<div id="x"></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tag(tt.expr, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMergePrecedence(t *testing.T) {
	// selector < inline < map for everything but class
	got, err := Tag(`div#main[title=inline id=inline]`, Attributes{"title": "map"}, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `title="map"`) {
		t.Errorf("map should win over inline, got %q", got)
	}
	if !strings.Contains(got, `id="inline"`) {
		t.Errorf("inline should win over selector, got %q", got)
	}
}

func TestClassMergesAdditively(t *testing.T) {
	got, err := Tag("a.button[class=primary]", Attributes{"class": "primary large"}, "go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `class="button primary large"`) {
		t.Errorf("classes should union in first-seen order, got %q", got)
	}
}

func TestClassUnionNeverDuplicates(t *testing.T) {
	got, err := Open("div.a.b", Attributes{"class": []string{"b", "c"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `class="a b c"`) {
		t.Errorf("got %q, want class %q", got, "a b c")
	}
}

func TestCallShapeNormalization(t *testing.T) {
	withString, err := Tag("p", "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withMap, err := Tag("p", Attributes{}, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withString != withMap {
		t.Errorf("Tag(p, hello) = %q but Tag(p, {}, hello) = %q", withString, withMap)
	}

	withNil, err := Tag("p", nil, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withNil != withMap {
		t.Errorf("nil attribute map should act like an empty one, got %q and %q", withNil, withMap)
	}
}

func TestCallShapeRejectsBadArguments(t *testing.T) {
	if _, err := Tag("p", 42); err == nil {
		t.Error("lone non-string, non-map argument should be rejected")
	}
	if _, err := Tag("p", Attributes{}, 42); err == nil {
		t.Error("non-string content should be rejected")
	}
	if _, err := Tag("p", Attributes{}, "a", "b"); err == nil {
		t.Error("more than two extra arguments should be rejected")
	}
}

func TestCloseDiscardsFragments(t *testing.T) {
	full, err := Close("div#id.cls[title=x]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bare, err := Close("div")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if full != bare {
		t.Errorf("Close(%q) = %q, Close(div) = %q; fragments must be discarded", "div#id.cls[title=x]", full, bare)
	}
	if bare != "</div>" {
		t.Errorf("got %q, want </div>", bare)
	}
}

func TestOpenCloseRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		tag   string
		attrs Attributes
	}{
		{name: "plain", expr: "div#x.y", tag: "div", attrs: Attributes{"title": "t"}},
		{name: "inline attrs", expr: "a.link[href=/x]", tag: "a", attrs: nil},
		{name: "void element", expr: "br", tag: "br", attrs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opened, err := Open(tt.expr, tt.attrs)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			closed, err := Close(tt.tag)
			if err != nil {
				t.Fatalf("Close: %v", err)
			}
			full, err := Tag(tt.expr, tt.attrs, "")
			if err != nil {
				t.Fatalf("Tag: %v", err)
			}
			if opened+closed != full {
				t.Errorf("Open+Close = %q, Tag with empty content = %q", opened+closed, full)
			}
		})
	}
}

func TestBooleanAttributeValues(t *testing.T) {
	got, err := Open("input[type=checkbox]", Attributes{"checked": true, "disabled": false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, " checked") {
		t.Errorf("true should render the bare attribute, got %q", got)
	}
	if strings.Contains(got, "disabled") {
		t.Errorf("false should omit the attribute entirely, got %q", got)
	}
}

func TestReadmeExample(t *testing.T) {
	got, err := Tag("a.button", Attributes{"href": "/x", "class": "primary"}, "Go")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `<a class="button primary" href="/x">Go</a>`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInlineValuesEscapeExactlyOnce(t *testing.T) {
	got, err := Open(`div[title="a & b"]`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `title="a &amp; b"`) {
		t.Errorf("value should be escaped once, got %q", got)
	}
	if strings.Contains(got, "&amp;amp;") {
		t.Errorf("value was double-escaped: %q", got)
	}
}

func TestErrorsPropagateUnchanged(t *testing.T) {
	_, err := Tag("div#a#b", nil, "x")
	var malformedSel *selector.MalformedSelectorError
	if !errors.As(err, &malformedSel) {
		t.Errorf("error type = %T, want *selector.MalformedSelectorError", err)
	}

	_, err = Tag("div[x=1", nil, "x")
	var malformedAttr *selector.MalformedAttributeStringError
	if !errors.As(err, &malformedAttr) {
		t.Errorf("error type = %T, want *selector.MalformedAttributeStringError", err)
	}

	_, err = Tag("div", Attributes{"data": map[string]string{}}, "x")
	var invalid *attrs.InvalidAttributeValueError
	if !errors.As(err, &invalid) {
		t.Errorf("error type = %T, want *attrs.InvalidAttributeValueError", err)
	}

	_, err = Close("div#a#b")
	if err == nil {
		t.Error("Close should reject malformed selectors too")
	}
}

func TestWriterEncodingOption(t *testing.T) {
	w, err := New(WithEncoding("ISO-8859-2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := w.Tag("p", nil, "100€")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "&#8364;") {
		t.Errorf("unsupported rune should become a reference, got %q", got)
	}

	if _, err := New(WithEncoding("KLINGON-8")); err == nil {
		t.Error("unknown encoding should fail construction")
	}
}

// staticRenderer proves the renderer capability is swappable without
// touching the Writer's own logic.
type staticRenderer struct{}

func (staticRenderer) Tag(name string, a attrs.Set, content ...string) string { return "tag:" + name }

func (staticRenderer) Open(name string, a attrs.Set) string { return "open:" + name }

func (staticRenderer) Close(name string) string { return "close:" + name }

func TestCapabilityInjection(t *testing.T) {
	w, err := New(WithRenderer(staticRenderer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := w.Tag("div#main.card", nil, "ignored")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "tag:div" {
		t.Errorf("got %q, want %q", got, "tag:div")
	}

	// Parsing still runs ahead of the injected renderer.
	if _, err := w.Tag("div#a#b"); err == nil {
		t.Error("parse errors should still surface with an injected renderer")
	}
}

func TestWithDerivesWithoutMutating(t *testing.T) {
	base := MustNew()
	derived, err := base.With(WithRenderer(staticRenderer{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := derived.Open("span", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "open:span" {
		t.Errorf("derived writer: got %q, want %q", got, "open:span")
	}

	got, err = base.Open("span", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "<span>" {
		t.Errorf("base writer was affected by With: got %q", got)
	}
}

func TestWithReappliesEncoding(t *testing.T) {
	base := MustNew()
	derived, err := base.With(WithEncoding("ISO-8859-2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := derived.Tag("p", nil, "€")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "&#8364;") {
		t.Errorf("derived writer should use the new encoding, got %q", got)
	}
}
