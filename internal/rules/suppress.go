package rules

import (
	"regexp"

	"github.com/quangtuyen1993/hardcoded-strings/internal/dartast"
)

// Suppress markers recognized on the literal's own line or the line right
// above it. The long forms mirror the Dart analyzer ignore syntax; the two
// loose forms exist for codebases that predate it.
var suppressPatterns = []*regexp.Regexp{
	regexp.MustCompile(`ignore:\s*avoid_hardcoded_strings_in_widgets`),
	regexp.MustCompile(`ignore_for_file:\s*avoid_hardcoded_strings_in_widgets`),
	regexp.MustCompile(`(?i)ignore:.*hardcoded.*string`),
	regexp.MustCompile(`(?i)hardcoded\.ok`),
}

// Suppressed reports whether a suppress comment applies to the node. When the
// line of the node cannot be determined the answer is false: a broken lookup
// must not silently hide findings.
func (c *Context) Suppressed(n *dartast.Node) bool {
	if c.File == nil {
		return false
	}

	line := c.File.LineOf(n.Span.Start)
	if line == 0 {
		return false
	}

	cur := c.File.GetLine(line)
	var prev string
	if line > 1 {
		prev = c.File.GetLine(line - 1)
	}

	for _, p := range suppressPatterns {
		if p.MatchString(cur) || p.MatchString(prev) {
			return true
		}
	}
	return false
}
