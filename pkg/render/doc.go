// Package render turns a resolved (tag, attribute set, content) target into
// markup text.
//
// The renderer owns all HTML-entity escaping: attribute values and text
// content pass through it exactly once, regardless of which parser produced
// them. Attributes are written in sorted name order for deterministic
// output. Void elements (br, img, input, ...) render without a closing tag,
// and boolean attributes (checked, disabled, ...) render name-only when
// their value is empty.
//
// The configured encoding decides which characters can be emitted literally:
// runes the target encoding cannot represent are written as numeric
// character references. With the default UTF-8 every rune is representable
// and only the usual entity escaping applies.
package render
