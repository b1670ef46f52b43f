package export

import (
	"strings"
	"unicode/utf8"

	"github.com/HartBrook/promptarchitect/internal/optimize"
)

// Stats summarizes the size of a prompt.
type Stats struct {
	Characters      int
	Words           int
	Lines           int
	Sections        int
	EstimatedTokens int
}

// Measure counts characters (runes), words, non-blank lines and blank-line
// separated sections of text.
func Measure(text string) Stats {
	return Stats{
		Characters:      utf8.RuneCountInString(text),
		Words:           optimize.CountWords(text),
		Lines:           countNonBlank(strings.Split(text, "\n")),
		Sections:        countNonBlank(strings.Split(text, "\n\n")),
		EstimatedTokens: optimize.CountTokens(text),
	}
}

func countNonBlank(parts []string) int {
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}
