package ingredient

import (
	"regexp"
	"strings"
)

// decimalFraction rewrites a decimal literal to a vulgar fraction glyph, but
// only when the literal is the entire fractional part of an amount token:
// the boundary group restricts matches to whitespace, end-of-string, hyphen
// or en-dash so numbers like "1.05" or "10.25" are never corrupted.
type decimalFraction struct {
	re    *regexp.Regexp
	glyph string
}

func newDecimalFraction(literal, glyph string) decimalFraction {
	return decimalFraction{
		re:    regexp.MustCompile(`(\d)` + regexp.QuoteMeta(literal) + `([\s\-–]|$)`),
		glyph: glyph,
	}
}

var decimalFractions = []decimalFraction{
	newDecimalFraction(".5", "½"),
	newDecimalFraction(".25", "¼"),
	newDecimalFraction(".75", "¾"),
	newDecimalFraction(".33", "⅓"),
	newDecimalFraction(".333", "⅓"),
	newDecimalFraction(".67", "⅔"),
	newDecimalFraction(".667", "⅔"),
	newDecimalFraction(".125", "⅛"),
	newDecimalFraction(".375", "⅜"),
	newDecimalFraction(".625", "⅝"),
	newDecimalFraction(".875", "⅞"),
}

// bareDecimalLiterals mirrors decimalFractions for amounts with no leading
// integer part, e.g. ".5 cup".
var bareDecimalLiterals = []struct{ literal, glyph string }{
	{".5", "½"}, {".25", "¼"}, {".75", "¾"},
	{".33", "⅓"}, {".333", "⅓"}, {".67", "⅔"}, {".667", "⅔"},
	{".125", "⅛"}, {".375", "⅜"}, {".625", "⅝"}, {".875", "⅞"},
}

// asciiFractions are replaced globally with no boundary anchoring: "1/2" is
// not a plausible substring of anything else in a cooking amount.
var asciiFractions = []struct{ ascii, glyph string }{
	{"1/2", "½"}, {"1/4", "¼"}, {"3/4", "¾"},
	{"1/3", "⅓"}, {"2/3", "⅔"},
	{"1/8", "⅛"}, {"3/8", "⅜"}, {"5/8", "⅝"}, {"7/8", "⅞"},
}

var trailingPointZero = regexp.MustCompile(`(\d)\.0([\s\-–]|$)`)

// FormatAmount normalizes a free-form amount string for display: strips
// trailing ".0" decimal noise and rewrites common decimal and ASCII fractions
// as unicode vulgar fraction glyphs. Unit text is the caller's concern; the
// formatter only sees the amount token. Output is a fixed point: feeding a
// formatted string back through produces the same string.
func FormatAmount(amount string) string {
	s := strings.TrimSpace(amount)
	if s == "" {
		return s
	}

	s = trailingPointZero.ReplaceAllString(s, "${1}${2}")
	// The regex misses a bare ".0" when the preceding rune is not a digit
	if strings.HasSuffix(s, ".0") {
		s = strings.TrimSuffix(s, ".0")
	}

	for _, f := range decimalFractions {
		s = f.re.ReplaceAllString(s, "${1}"+f.glyph+"${2}")
	}
	for _, f := range bareDecimalLiterals {
		if s == f.literal {
			s = f.glyph
			break
		}
		if strings.HasPrefix(s, f.literal+" ") {
			s = f.glyph + s[len(f.literal):]
			break
		}
	}

	return ReplaceASCIIFractions(s)
}

// ReplaceASCIIFractions rewrites ASCII fraction literals anywhere in free
// text. Direction steps embed amounts mid-sentence, so no anchoring applies.
func ReplaceASCIIFractions(s string) string {
	for _, f := range asciiFractions {
		s = strings.ReplaceAll(s, f.ascii, f.glyph)
	}
	return s
}
