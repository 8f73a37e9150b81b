package edit

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// graphemeBounds returns the code-point offsets of all grapheme cluster
// boundaries of text, 0 and len(text) included.
func graphemeBounds(text []rune) []int {
	bounds := []int{0}
	pos := 0
	gr := uniseg.NewGraphemes(string(text))
	for gr.Next() {
		pos += len(gr.Runes())
		bounds = append(bounds, pos)
	}
	return bounds
}

// prevGrapheme returns the grapheme boundary before i.
func prevGrapheme(text []rune, i int) int {
	prev := 0
	for _, b := range graphemeBounds(text) {
		if b >= i {
			break
		}
		prev = b
	}
	return prev
}

// nextGrapheme returns the grapheme boundary after i.
func nextGrapheme(text []rune, i int) int {
	for _, b := range graphemeBounds(text) {
		if b > i {
			return b
		}
	}
	return len(text)
}

// wordSegment is a run of text between two word boundaries.
type wordSegment struct {
	start, end int

	// word is true for segments holding a letter or digit.
	word bool
}

func wordSegments(text []rune) []wordSegment {
	var (
		segs  []wordSegment
		word  string
		pos   int
		state = -1
	)
	rest := string(text)
	for rest != "" {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := utf8.RuneCountInString(word)
		segs = append(segs, wordSegment{
			start: pos,
			end:   pos + n,
			word:  strings.IndexFunc(word, isWordRune) >= 0,
		})
		pos += n
	}
	return segs
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// prevWord returns the start of the word before i, or 0.
func prevWord(text []rune, i int) int {
	prev := 0
	for _, s := range wordSegments(text) {
		if s.start >= i {
			break
		}
		if s.word {
			prev = s.start
		}
	}
	return prev
}

// nextWord returns the start of the first word after i, or len(text).
func nextWord(text []rune, i int) int {
	for _, s := range wordSegments(text) {
		if s.word && s.start > i {
			return s.start
		}
	}
	return len(text)
}
