package optimize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// doubledPhrases collapse to the first word of the match.
var doubledPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(muy muy|realmente muy|bastante muy|súper muy)\b`),
	regexp.MustCompile(`(?i)\b(que que|de de|en en|por por|con con)\b`),
	regexp.MustCompile(`(?i)\b(también también|además además|asimismo asimismo)\b`),
	regexp.MustCompile(`(?i)\b(crear y hacer|hacer y crear|desarrollar y crear)\b`),
	regexp.MustCompile(`(?i)\b(bueno y bueno|malo y malo|grande y grande)\b`),
}

var connectors = []rewrite{
	rw(`(?i)\by además\b`, ", además"),
	rw(`(?i)\bpero sin embargo\b`, ", sin embargo"),
	rw(`(?i)\bporque ya que\b`, "ya que"),
	rw(`(?i)\bpara que para\b`, "para que"),
	rw(`(?i)\baunque pero\b`, "aunque"),
	rw(`(?i)\bcuando mientras\b`, "mientras"),
	rw(`(?i)\bpero aunque\b`, "aunque"),
}

var fillerWords = []rewrite{
	rw(`(?i)\b(este|esta|esto|eso|esa|ese)\s+(tipo\s+de|clase\s+de|especie\s+de)\b`, ""),
	rw(`(?i)\b(como\s+que|tipo\s+de|clase\s+de|especie\s+de)\b`, ""),
	rw(`(?i)\b(o\s+sea|es\s+decir|digamos|pues)\b`, ""),
}

// deredundancy removes doubled words, merges stacked connectors and drops filler.
func deredundancy(text, _ string) string {
	for _, re := range doubledPhrases {
		text = re.ReplaceAllStringFunc(text, firstWord)
	}
	for _, c := range connectors {
		text = c.all(text)
	}
	for _, f := range fillerWords {
		text = f.all(text)
	}
	return text
}

func firstWord(match string) string {
	if fields := strings.Fields(match); len(fields) > 0 {
		return fields[0]
	}
	return match
}

var specificVerbs = []rewrite{
	rw(`(?i)\bmejorar el\b`, "optimizar el"),
	rw(`(?i)\bcambiar el\b`, "modificar el"),
	rw(`(?i)\bactualizar el\b`, "actualizar el"),
	rw(`(?i)\brevisar el\b`, "revisar el"),
}

// "tener" opens the gate but has no rewrite of its own.
var vagueOpening = regexp.MustCompile(`(?i)^(hacer|poner|dar|tener)\s`)

var openingVerbs = []rewrite{
	rw(`(?i)^hacer\s+`, "Desarrollar "),
	rw(`(?i)^poner\s+`, "Implementar "),
	rw(`(?i)^dar\s+`, "Proporcionar "),
}

var leftoverDoubles = []rewrite{
	rw(`(?i)\bque que\b`, "que"),
	rw(`(?i)\bpara para\b`, "para"),
	rw(`(?i)\ben en\b`, "en"),
}

// comprehension swaps generic verbs for specific ones and scrubs doubles that
// earlier rewrites may have produced.
func comprehension(text, _ string) string {
	for _, v := range specificVerbs {
		text = v.all(text)
	}

	if vagueOpening.MatchString(text) {
		for _, o := range openingVerbs {
			text = o.first(text)
		}
	}

	for _, d := range leftoverDoubles {
		text = d.all(text)
	}
	return text
}

var punctuation = []rewrite{
	rw(`,\s*,`, ","),
	rw(`\.\s*\.`, "."),
	rw(`\s+([,.!?])`, "${1}"),
}

var (
	terminalPunct  = regexp.MustCompile(`[.!?]$`)
	sentenceGap    = regexp.MustCompile(`\(?[.!?]\s*[A-Za-z]`)
	commaLowercase = rw(`,\s*([a-z])`, ", ${1}")
)

// finish capitalizes, terminates and tidies punctuation spacing.
func finish(text, _ string) string {
	text = capitalizeFirst(text)
	text = collapseWhitespace(text)

	if !terminalPunct.MatchString(text) {
		text += "."
	}

	for _, p := range punctuation {
		text = p.all(text)
	}

	text = sentenceGap.ReplaceAllStringFunc(text, spaceAfterPunct)
	text = commaLowercase.all(text)
	return text
}

// spaceAfterPunct puts one space between sentence punctuation and the next letter.
// A period right after "(" is an extension like "(.xlsx)" and stays joined.
func spaceAfterPunct(match string) string {
	if strings.HasPrefix(match, "(") {
		return match
	}
	letter := match[len(match)-1:]
	return match[:1] + " " + letter
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
