// Package htmlwriter renders HTML markup from a compact CSS-selector-like
// shorthand plus optional attribute data.
//
// A selector expression names one element:
//
//	div#main.card.active[data-role=hero]
//
// The Writer resolves an expression into a tag name and an attribute set,
// merges attributes from up to three sources, and hands the result to a
// renderer:
//
//	out, err := htmlwriter.Tag("a.button", htmlwriter.Attributes{
//	    "href":  "/x",
//	    "class": "primary",
//	}, "Go")
//	// <a class="button primary" href="/x">Go</a>
//
// # Attribute merging
//
// Attributes come from the selector's #id/.class fragments, from bracketed
// [key=value] fragments in the same expression, and from the caller-supplied
// attribute map, in that order of increasing precedence. A later source
// replaces earlier values key by key, except "class": class tokens from
// every source are unioned into one deduplicated, order-preserving list.
//
// # Operations
//
// Tag renders a complete element, Open just the opening tag (void elements
// come back self-closed), and Close just the closing tag, discarding any
// #id/.class/attribute fragments from its argument. All three are pure:
// errors from malformed input surface immediately and nothing is retried or
// logged.
//
// # Capabilities
//
// The selector parser, inline-attribute parser, attribute normalizer and
// renderer are interface-typed capabilities fixed at construction. Swap any
// of them with an Option at New, or derive a reconfigured Writer later with
// With; a Writer is never mutated after construction, so concurrent use
// needs no coordination.
package htmlwriter
