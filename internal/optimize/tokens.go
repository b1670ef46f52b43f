package optimize

import (
	"strings"
	"unicode/utf8"
)

// CountTokens estimates the token count for text using a runes/4 approximation.
// Rune count (not byte count) keeps accented Spanish text from being overcounted.
func CountTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return utf8.RuneCountInString(text) / 4
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// WordStats holds before/after word counts for one optimization.
type WordStats struct {
	Before int
	After  int
}

// Measure compares the word counts of an objective before and after optimizing it.
func Measure(before, after string) WordStats {
	return WordStats{Before: CountWords(before), After: CountWords(after)}
}

// Saved returns the number of words removed.
func (s WordStats) Saved() int {
	return s.Before - s.After
}

// PercentReduction returns the percentage reduction. It is negative when the
// optimizer lengthened the text.
func (s WordStats) PercentReduction() float64 {
	if s.Before == 0 {
		return 0
	}
	return float64(s.Saved()) / float64(s.Before) * 100
}
