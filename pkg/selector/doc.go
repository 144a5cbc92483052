// Package selector parses the compact CSS-selector-like shorthand used to
// describe a single HTML element.
//
// # Grammar
//
// A selector expression is, in order:
//
//   - an optional tag name ([A-Za-z][A-Za-z0-9-]*), defaulting to "div"
//   - at most one #id fragment
//   - any number of .class fragments (deduplicated, first-seen order)
//   - zero or more bracketed attribute fragments
//
// Identifier characters for id and class names are letters, digits, "-",
// "_" and ":". An empty or whitespace-only expression is the default
// element: tag "div" with no attributes.
//
// A bracketed attribute fragment is a whitespace-separated list of
// key=value pairs:
//
//	div#main.card[data-role=hero title="A & B" hidden]
//
// Values may be single- or double-quoted; a backslash escapes the quote
// character inside a quoted value. An unquoted value runs to the next
// whitespace or "]". A key without "=" marks the attribute present with an
// empty value. A repeated key wins over earlier occurrences, except "class",
// whose tokens accumulate.
//
// All values are returned raw. Entity-escaping happens exactly once, in the
// renderer, so parsed values can never be double-escaped downstream.
//
// Anything outside this grammar is rejected: Parse and InlineParser.Parse
// fail with *MalformedSelectorError or *MalformedAttributeStringError rather
// than guessing at the intended element.
package selector
