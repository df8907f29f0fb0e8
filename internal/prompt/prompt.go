// Package prompt turns a content request into its final prompt text.
//
// Generate is a pure function: no I/O, no shared state, and the same request
// always yields byte-identical output.
package prompt

import (
	"fmt"
	"maps"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-promptgen/internal/compose"
	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
)

// Result is a generated prompt.
type Result struct {
	Kind   request.Kind `json:"kind"`
	Prompt string       `json:"prompt"`
	Stats  Stats        `json:"stats"`
}

// Stats summarizes the size of a prompt.
type Stats struct {
	Characters int `json:"characters"`
	Words      int `json:"words"`
	Tokens     int `json:"tokens"`
}

// Token estimation: English prose averages ~4 chars/token.
const charsPerToken = 4

// Generate builds the prompt for req.
//
// Form requests go through the inline composer, template requests through
// placeholder substitution, and raw prompts pass through. The result is
// trimmed of surrounding whitespace. Returns request.ErrInvalidInput for
// nil requests and template.ErrUnknown for unknown template names.
func Generate(req request.Request) (Result, error) {
	if req == nil {
		return Result{}, fmt.Errorf("no request: %w", request.ErrInvalidInput)
	}

	var (
		text string
		err  error
	)
	switch r := req.(type) {
	case request.Raw:
		text = string(r)
	case request.Template:
		text, err = fillTemplate(r)
	default:
		text, err = compose.Compose(req)
	}
	if err != nil {
		return Result{}, err
	}

	text = strings.TrimSpace(text)
	return Result{
		Kind:   req.Kind(),
		Prompt: text,
		Stats:  Measure(text),
	}, nil
}

// fillTemplate resolves the named template and substitutes the topic, the
// platform and any extra values. An explicit PLATFORM entry in Values wins
// over the Platform field.
func fillTemplate(r request.Template) (string, error) {
	name, err := template.ParseName(r.Name)
	if err != nil {
		return "", err
	}

	values := make(map[string]string, len(r.Values)+1)
	values[template.PlatformToken] = r.Platform
	maps.Copy(values, r.Values)

	return template.Substitute(name.Text(), r.Topic, values), nil
}

// Measure computes size statistics for text.
func Measure(text string) Stats {
	chars := utf8.RuneCountInString(text)
	return Stats{
		Characters: chars,
		Words:      len(strings.Fields(text)),
		Tokens:     estimateTokens(chars),
	}
}

// estimateTokens rounds up so any non-empty text counts at least one token.
func estimateTokens(chars int) int {
	return (chars + charsPerToken - 1) / charsPerToken
}
