package htmlwriter

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// parseFragment runs the rendered markup through a real HTML parser so the
// assertions check structure rather than byte layout.
func parseFragment(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parsing rendered markup %q: %v", markup, err)
	}
	return doc
}

func TestRenderedMarkupParses(t *testing.T) {
	markup, err := Tag("a#home.button.primary", Attributes{"href": "/", "title": `say "hi" & more`}, "Home <3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := parseFragment(t, markup)
	sel := doc.Find("a#home.button.primary")
	if sel.Length() != 1 {
		t.Fatalf("selector did not match rendered markup %q", markup)
	}
	if href, _ := sel.Attr("href"); href != "/" {
		t.Errorf("href = %q, want /", href)
	}
	if title, _ := sel.Attr("title"); title != `say "hi" & more` {
		t.Errorf("title = %q; escaping must survive a parse round trip", title)
	}
	if text := sel.Text(); text != "Home <3" {
		t.Errorf("text = %q; content escaping must survive a parse round trip", text)
	}
}

func TestRenderedVoidElementParses(t *testing.T) {
	markup, err := Tag(`img.logo[src=/logo.png alt="The logo"]`, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := parseFragment(t, markup)
	sel := doc.Find("img.logo")
	if sel.Length() != 1 {
		t.Fatalf("selector did not match rendered markup %q", markup)
	}
	if src, _ := sel.Attr("src"); src != "/logo.png" {
		t.Errorf("src = %q, want /logo.png", src)
	}
	if alt, _ := sel.Attr("alt"); alt != "The logo" {
		t.Errorf("alt = %q, want The logo", alt)
	}
}

func TestNestedComposedMarkupParses(t *testing.T) {
	open, err := Open("ul#menu.nav", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item, err := Tag("li.item", Attributes{"data-idx": 1}, "first")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closing, err := Close("ul")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc := parseFragment(t, open+item+closing)
	if doc.Find("ul#menu.nav > li.item").Length() != 1 {
		t.Fatalf("composed markup did not nest: %q", open+item+closing)
	}
	if idx, _ := doc.Find("li.item").Attr("data-idx"); idx != "1" {
		t.Errorf("data-idx = %q, want 1", idx)
	}
}
