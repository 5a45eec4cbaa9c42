package rules

import (
	"regexp"
	"strings"
	"unicode"
)

// Shapes of values that are technical tokens rather than natural-language
// text. The patterns are independent, any single match excludes the value.
var technicalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`),      // URI scheme prefix
	regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),       // email shape
	regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`),              // hex color
	regexp.MustCompile(`^\d+(?:\.\d+)?\s*[a-zA-Z%]*$`),     // number with optional unit
	regexp.MustCompile(`^[A-Z][A-Z0-9]*(?:_[A-Z0-9]+)+$`),  // CONSTANT_CASE
	regexp.MustCompile(`^[a-z][a-z0-9]*(?:_[a-z0-9]+)+$`),  // snake_case
	regexp.MustCompile(`^(?:/[\w.-]+)+/?$`),                // absolute file path
	regexp.MustCompile(`^[\w.-]+(?:/[\w.-]+)+/?$`),         // relative multi-segment path
	regexp.MustCompile(`^[A-Za-z_]\w*\.[A-Za-z_]\w*$`),     // dotted two-part notation
	regexp.MustCompile(`^[\w-]+\.[A-Za-z0-9]{1,5}$`),       // filename with extension
}

// looksTechnical decides whether a literal value is a technical token
// (URL, color, path, identifier) rather than display text.
func looksTechnical(value string) bool {
	v := strings.TrimSpace(value)
	if v == "" {
		return false
	}

	for _, p := range technicalPatterns {
		if p.MatchString(v) {
			return true
		}
	}
	return mixedToken(v)
}

// mixedToken catches identifier-like values combining letters with digits,
// underscores or hyphens, e.g. "item2" or "btn-primary". RE2 has no
// lookahead, so the two-sided requirement is checked by hand.
func mixedToken(v string) bool {
	hasLetter, hasMark := false, false
	for _, r := range v {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r >= '0' && r <= '9', r == '_', r == '-':
			hasMark = true
		default:
			return false
		}
	}
	return hasLetter && hasMark
}
