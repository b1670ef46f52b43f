// Package optimize rewrites a casual objective sentence into a tighter instruction
// using a fixed sequence of deterministic text stages.
package optimize

import (
	"regexp"
	"strings"
)

// Stage is one pure text transform of the pipeline. Context is the free-form hint
// (usually the selected theme) that the contextual stage matches against.
type Stage struct {
	Name  string
	Apply func(text, context string) string
}

// StageResult records the text after a stage ran.
type StageResult struct {
	Stage  string
	Output string
}

// Stages returns the pipeline in execution order.
func Stages() []Stage {
	return []Stage{
		{Name: "normalize", Apply: normalize},
		{Name: "restructure", Apply: restructure},
		{Name: "contextual", Apply: contextual},
		{Name: "deredundancy", Apply: deredundancy},
		{Name: "comprehension", Apply: comprehension},
		{Name: "finish", Apply: finish},
	}
}

// Optimize runs every stage over text. Text that trims to empty is returned as is.
func Optimize(text, context string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}
	for _, s := range Stages() {
		text = s.Apply(text, context)
	}
	return text
}

// Trace runs the pipeline like Optimize and returns the output of each stage.
func Trace(text, context string) []StageResult {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	stages := Stages()
	results := make([]StageResult, 0, len(stages))
	for _, s := range stages {
		text = s.Apply(text, context)
		results = append(results, StageResult{Stage: s.Name, Output: text})
	}
	return results
}

// rewrite is a single pattern replacement.
type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

func rw(pattern, replacement string) rewrite {
	return rewrite{pattern: regexp.MustCompile(pattern), replacement: replacement}
}

// first applies the rewrite to the leftmost match only.
func (r rewrite) first(s string) string {
	return replaceFirst(r.pattern, s, r.replacement)
}

// all applies the rewrite to every match.
func (r rewrite) all(s string) string {
	return r.pattern.ReplaceAllString(s, r.replacement)
}

// replaceFirst replaces the leftmost match of re in s, expanding ${n} references.
func replaceFirst(re *regexp.Regexp, s, repl string) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	expanded := re.ExpandString(nil, repl, s, m)
	return s[:m[0]] + string(expanded) + s[m[1]:]
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
