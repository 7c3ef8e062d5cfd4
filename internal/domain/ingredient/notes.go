package ingredient

import (
	"regexp"
	"strings"
)

// Optional markers are detected exhaustively: every pattern is applied and
// every match stripped, because notes often encode "optional" redundantly
// (both a parenthetical and a trailing comma form). The flag is monotonic.
var optionalPatterns = []*regexp.Regexp{
	// Parenthesized forms: (optional), (opt.), (alt.), (alt), (alternative)
	regexp.MustCompile(`(?i)\(\s*(?:optional|opt\.?|alt\.?|alternative)\s*\)`),
	// The entire string is just the marker
	regexp.MustCompile(`(?i)^\s*(?:optional|opt\.)\s*$`),
	// Comma/semicolon-delimited occurrences anywhere in the string
	regexp.MustCompile(`(?i)[,;]\s*(?:optional\b|opt\.)`),
	regexp.MustCompile(`(?i)^\s*(?:optional\b|opt\.)\s*[,;]`),
}

// Alternative markers are checked in order and only the first match of the
// first matching pattern is taken: notes carry at most one substitution
// suggestion, and overlapping captures would double-count. The parenthesized
// "(or ...)" form is checked before the bare "or" form; the bare pattern
// would otherwise match inside the parentheses and leave a dangling "(".
var alternativePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[,;]?\s*\balt(?:ernative)?\s*:\s*([^,;]+)`),
	regexp.MustCompile(`(?i)[,;]?\s*\bsub(?:stitute)?\s*:\s*([^,;]+)`),
	regexp.MustCompile(`(?i)\(\s*or\s+(?:use\s+)?([^)]+)\)`),
	regexp.MustCompile(`(?i)\bor\s+(?:use\s+)?([^,;]+)`),
}

var (
	edgePunct    = regexp.MustCompile(`^[\s·,;:\-–—]+|[\s·,;:\-–—]+$`)
	doubledDots  = regexp.MustCompile(`·{2,}`)
	doubledComma = regexp.MustCompile(`,{2,}`)
	doubledSemi  = regexp.MustCompile(`;{2,}`)
	multiSpace   = regexp.MustCompile(`\s{2,}`)
)

// ParseNotes extracts optionality and substitution markers from a free-form
// ingredient notes string, returning the residual descriptive text. It is
// total over its input. Re-parsing Remaining finds no further optional
// markers and leaves the string unchanged; the same holds for substitution
// markers unless the input carried more than one, since only the first is
// extracted and the later ones stay in the residue.
func ParseNotes(notes string) ParsedNotes {
	if notes == "" {
		return ParsedNotes{Remaining: ""}
	}

	remaining := notes

	optional := false
	for _, re := range optionalPatterns {
		if re.MatchString(remaining) {
			optional = true
			remaining = re.ReplaceAllString(remaining, " ")
		}
	}
	remaining = strings.TrimSpace(remaining)

	alternative := ""
	for _, re := range alternativePatterns {
		loc := re.FindStringSubmatchIndex(remaining)
		if loc == nil {
			continue
		}
		alternative = strings.TrimSpace(remaining[loc[2]:loc[3]])
		remaining = remaining[:loc[0]] + remaining[loc[1]:]
		break
	}

	return ParsedNotes{
		Optional:    optional,
		Alternative: alternative,
		Remaining:   cleanNotes(remaining),
	}
}

// cleanNotes strips separator residue left behind by marker removal.
func cleanNotes(s string) string {
	s = edgePunct.ReplaceAllString(s, "")
	s = doubledDots.ReplaceAllString(s, "·")
	s = doubledComma.ReplaceAllString(s, ",")
	s = doubledSemi.ReplaceAllString(s, ";")
	s = multiSpace.ReplaceAllString(s, " ")
	// First cleanup can expose new edge residue, e.g. ", ," collapsing to ","
	return strings.Trim(s, ",;: \t")
}
