package template

import (
	"regexp"
	"slices"
	"strings"
)

// Privileged placeholder names. TopicToken is always substituted first.
const (
	TopicToken    = "SPECIFIC TOPIC"
	PlatformToken = "PLATFORM"
)

// tokenPattern matches a bracketed placeholder and captures its name.
var tokenPattern = regexp.MustCompile(`\[([^\]]+)\]`)

// Substitute fills a template.
//
// Every [SPECIFIC TOPIC] is replaced with topic. The result is then scanned
// for the remaining bracketed tokens; each token with a non-empty entry in
// values has all of its occurrences replaced. Tokens without a value stay
// bracketed so the gap is visible in the output. Substitute never fails.
func Substitute(tmpl, topic string, values map[string]string) string {
	result := strings.ReplaceAll(tmpl, bracket(TopicToken), topic)

	for _, tok := range Tokens(result) {
		if tok == TopicToken {
			continue
		}
		v := values[tok]
		if v == "" {
			continue
		}
		result = strings.ReplaceAll(result, bracket(tok), v)
	}
	return result
}

// Tokens returns the distinct placeholder names in s, in first-seen order.
// Matching is case-sensitive.
func Tokens(s string) []string {
	var tokens []string
	for _, m := range tokenPattern.FindAllStringSubmatch(s, -1) {
		if !slices.Contains(tokens, m[1]) {
			tokens = append(tokens, m[1])
		}
	}
	return tokens
}

// Placeholders returns the tokens in tmpl that a caller fills through the
// extra values map: everything except TopicToken and PlatformToken.
func Placeholders(tmpl string) []string {
	var result []string
	for _, tok := range Tokens(tmpl) {
		if tok != TopicToken && tok != PlatformToken {
			result = append(result, tok)
		}
	}
	return result
}

func bracket(name string) string {
	return "[" + name + "]"
}
