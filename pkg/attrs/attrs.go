package attrs

import "strings"

// Set is a normalized attribute set: a mapping from attribute name to value
// with at most one entry per name. The "class" value is always stored in its
// canonical form, a deduplicated space-joined token list.
//
// An empty value marks an attribute that is present without a value
// assignment; whether it renders name-only or as name="" is the renderer's
// call (boolean-attribute policy).
type Set map[string]string

// Clone returns a copy of the set. A nil set clones to an empty set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Merge returns a new set with over applied on top of s. Keys from over
// replace keys in s, except "class": class tokens from both sets are unioned
// into one value, keeping the first-seen token order. Neither receiver nor
// argument is modified.
func (s Set) Merge(over Set) Set {
	out := s.Clone()
	for k, v := range over {
		if k == "class" {
			out[k] = JoinClasses(out[k], v)
			continue
		}
		out[k] = v
	}
	return out
}

// JoinClasses unions class token lists into a single space-joined string.
// Duplicate tokens are dropped, first-seen order wins, surrounding
// whitespace is trimmed.
func JoinClasses(lists ...string) string {
	var tokens []string
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, tok := range strings.Fields(list) {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			tokens = append(tokens, tok)
		}
	}
	return strings.Join(tokens, " ")
}
