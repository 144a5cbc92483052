package attrs

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidAttributeValueError reports a caller-supplied attribute entry that
// cannot be normalized into the canonical Set form.
type InvalidAttributeValueError struct {
	Name   string
	Value  any
	Reason string
}

func (e *InvalidAttributeValueError) Error() string {
	return fmt.Sprintf("attribute %q: %s", e.Name, e.Reason)
}

// Normalizer converts caller-supplied attribute maps into a Set.
//
// Accepted value types per attribute:
//   - string: used as-is ("class" is canonicalized to its token-list form)
//   - bool: true means present with an empty value, false omits the entry
//   - int, int64, float64: formatted as their decimal representation
//   - []string, []any of strings: class token lists, "class" key only
//
// Anything else (nested maps in particular) fails with
// *InvalidAttributeValueError. Values are returned raw; escaping is the
// renderer's job.
type Normalizer struct{}

// Normalize validates and normalizes raw into a Set. A nil or empty map
// means "no attributes" and yields an empty set.
func (Normalizer) Normalize(raw map[string]any) (Set, error) {
	out := make(Set, len(raw))
	for name, value := range raw {
		if !validName(name) {
			return nil, &InvalidAttributeValueError{Name: name, Value: value, Reason: "invalid attribute name"}
		}
		switch v := value.(type) {
		case nil:
			// Treated like boolean false: the attribute is omitted.
		case string:
			if name == "class" {
				out[name] = JoinClasses(v)
			} else {
				out[name] = v
			}
		case bool:
			if v {
				out[name] = ""
			}
		case int:
			out[name] = strconv.Itoa(v)
		case int64:
			out[name] = strconv.FormatInt(v, 10)
		case float64:
			out[name] = strconv.FormatFloat(v, 'f', -1, 64)
		case []string:
			if name != "class" {
				return nil, &InvalidAttributeValueError{Name: name, Value: value, Reason: "token list is only supported for the class attribute"}
			}
			out[name] = JoinClasses(v...)
		case []any:
			if name != "class" {
				return nil, &InvalidAttributeValueError{Name: name, Value: value, Reason: "token list is only supported for the class attribute"}
			}
			tokens := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, &InvalidAttributeValueError{Name: name, Value: value, Reason: fmt.Sprintf("class token of type %T", item)}
				}
				tokens = append(tokens, s)
			}
			out[name] = JoinClasses(tokens...)
		default:
			return nil, &InvalidAttributeValueError{Name: name, Value: value, Reason: fmt.Sprintf("unsupported value of type %T", value)}
		}
	}
	return out, nil
}

// validName reports whether name is usable as an HTML attribute name.
// Control characters and the characters that delimit attributes in markup
// are rejected.
func validName(name string) bool {
	if name == "" {
		return false
	}
	return !strings.ContainsFunc(name, func(r rune) bool {
		switch r {
		case ' ', '\t', '\n', '\r', '\f', '"', '\'', '>', '/', '=':
			return true
		}
		return r < 0x20
	})
}
