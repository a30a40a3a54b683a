package catalog

import (
	"strings"
	"unicode"

	"romsieve/pkg/errors"
)

// ParseEntry extracts tag metadata from a release name. Every maximal
// parenthesized span without nested parentheses is one tag group, read
// left to right; square-bracket spans contribute tag tokens the same way
// but never the country list. The first parenthesized group is split on
// ", " into the country list.
//
// A name with no parenthesized group at all is a malformed entry (the
// "missing region" condition). The partially filled Entry is still
// returned alongside an ENTRY_INVALID error so callers can report it.
func ParseEntry(name string) (Entry, error) {
	e := Entry{
		ID:      name,
		RawName: name,
	}

	var base strings.Builder
	firstParen := ""
	haveParen := false

	rest := name
	for len(rest) > 0 {
		i := strings.IndexAny(rest, "([")
		if i < 0 {
			base.WriteString(rest)
			break
		}
		open := rest[i]
		close := byte(')')
		if open == '[' {
			close = ']'
		}
		j := strings.IndexByte(rest[i+1:], close)
		if j < 0 {
			// Unbalanced bracket, keep the remainder as plain name text.
			base.WriteString(rest)
			break
		}
		base.WriteString(rest[:i])
		tag := rest[i+1 : i+1+j]
		e.Tags = append(e.Tags, tag)
		if open == '(' && !haveParen {
			firstParen = tag
			haveParen = true
		}
		rest = rest[i+1+j+1:]
	}

	e.BaseName = collapseSpaces(base.String())

	if !haveParen {
		return e, errors.Newf(errors.ErrEntryInvalid,
			"entry %q has no region tag group", name).
			WithDetail("name", name)
	}

	for _, c := range strings.Split(firstParen, ", ") {
		c = strings.TrimSpace(c)
		if c != "" {
			e.Countries = append(e.Countries, c)
		}
	}
	if len(e.Countries) == 0 {
		return e, errors.Newf(errors.ErrEntryInvalid,
			"entry %q has an empty region tag group", name).
			WithDetail("name", name)
	}

	return e, nil
}

// IsVersionTag reports whether a tag token is a version/revision marker:
// a "Rev" prefix, or a "v" immediately followed by a digit ("v1.1").
// Case-insensitive.
func IsVersionTag(tag string) bool {
	lower := strings.ToLower(strings.TrimSpace(tag))
	if strings.HasPrefix(lower, "rev") {
		return true
	}
	if len(lower) >= 2 && lower[0] == 'v' && unicode.IsDigit(rune(lower[1])) {
		return true
	}
	return false
}

// collapseSpaces trims the string and folds runs of whitespace left
// behind by tag removal into single spaces.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
