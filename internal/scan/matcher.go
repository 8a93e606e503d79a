package scan

import (
	"regexp"
	"strings"

	"axscan/internal/model"
)

// contextWindow is how many characters around a match are captured for the
// report's context snippet.
const contextWindow = 100

// Matcher finds direct AXUIElementCopyAttributeValue calls in file text.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher creates a Matcher for the unsafe call shape.
func NewMatcher() *Matcher {
	// Pattern: AXUIElementCopyAttributeValue(<element>, "<attr>" as CFString, &<var>)
	// Matches only the exact three-argument shape with a quoted attribute
	// literal. Calls holding the attribute in a variable, or split across
	// lines, deliberately do not match.
	return &Matcher{
		re: regexp.MustCompile(`AXUIElementCopyAttributeValue\(([^,]+),\s*"([^"]+)"\s*as\s*CFString,\s*&([^)]+)\)`),
	}
}

// FindMatches returns one Match per non-overlapping occurrence of the unsafe
// call pattern in content, in ascending offset order.
func (m *Matcher) FindMatches(content string) []model.Match {
	var matches []model.Match

	for _, loc := range m.re.FindAllStringSubmatchIndex(content, -1) {
		// loc holds pairs: full match, then each capture group
		start, end := loc[0], loc[1]
		element := strings.TrimSpace(content[loc[2]:loc[3]])
		attribute := content[loc[4]:loc[5]]
		varRef := strings.TrimSpace(content[loc[6]:loc[7]])

		ctxStart := start - contextWindow
		if ctxStart < 0 {
			ctxStart = 0
		}
		ctxEnd := end + contextWindow
		if ctxEnd > len(content) {
			ctxEnd = len(content)
		}

		matches = append(matches, model.Match{
			Element:   element,
			Attribute: attribute,
			VarRef:    varRef,
			FullMatch: content[start:end],
			Context:   content[ctxStart:ctxEnd],
			Start:     start,
			End:       end,
			Line:      model.LineOf(content, start),
			Suggested: SuggestReplacement(element, attribute),
		})
	}

	return matches
}
