package richtext

import "golang.org/x/text/unicode/bidi"

// DetectDirection returns the direction of the first strong character in
// text (UAX #9 rule P2). Text without strong characters is left-to-right.
func DetectDirection(text []rune) Direction {
	for _, r := range text {
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return DirectionLTR
}

// resolveDirection maps DirectionAuto to a concrete direction for text.
func resolveDirection(d Direction, text []rune) Direction {
	if d == DirectionAuto {
		return DetectDirection(text)
	}
	return d
}
