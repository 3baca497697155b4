package render

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Visual reorders logical-order text into the order its glyphs are drawn
// left to right. The paragraph direction comes from the first strong
// character. Text without right-to-left characters is returned unchanged.
func Visual(s string) string {
	if !hasRTL(s) {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = visualLine(strings.TrimSuffix(line, "\r"))
	}
	return strings.Join(lines, "\n")
}

func visualLine(line string) string {
	if line == "" {
		return line
	}
	base := baseDirection(line)

	var p bidi.Paragraph
	if _, err := p.SetString(line, bidi.DefaultDirection(base)); err != nil {
		return line
	}
	ordering, err := p.Order()
	if err != nil {
		return line
	}

	runs := make([]string, ordering.NumRuns())
	for i := range runs {
		run := ordering.Run(i)
		text := run.String()
		if run.Direction() == bidi.RightToLeft {
			text = bidi.ReverseString(text)
		}
		runs[i] = text
	}
	if base == bidi.RightToLeft {
		for i, j := 0, len(runs)-1; i < j; i, j = i+1, j-1 {
			runs[i], runs[j] = runs[j], runs[i]
		}
	}
	return strings.Join(runs, "")
}

// baseDirection applies rules P2 and P3: the first strong character decides.
func baseDirection(s string) bidi.Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return bidi.LeftToRight
		case bidi.R, bidi.AL:
			return bidi.RightToLeft
		}
	}
	return bidi.LeftToRight
}

// hasRTL reports whether s contains a strong right-to-left character.
func hasRTL(s string) bool {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		if c := props.Class(); c == bidi.R || c == bidi.AL {
			return true
		}
	}
	return false
}
