package selector

import "fmt"

// MalformedSelectorError reports a selector expression whose tag/#id/.class
// portion does not match the grammar. Offset is the byte offset of the
// offending character within the trimmed expression.
type MalformedSelectorError struct {
	Expr   string
	Offset int
	Reason string
}

func (e *MalformedSelectorError) Error() string {
	return fmt.Sprintf("malformed selector %q at offset %d: %s", e.Expr, e.Offset, e.Reason)
}

// MalformedAttributeStringError reports an unterminated or unbalanced inline
// attribute fragment embedded in a selector expression.
type MalformedAttributeStringError struct {
	Expr   string
	Offset int
	Reason string
}

func (e *MalformedAttributeStringError) Error() string {
	return fmt.Sprintf("malformed attribute string in %q at offset %d: %s", e.Expr, e.Offset, e.Reason)
}
