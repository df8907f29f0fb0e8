// Package tool models the AI assistants a prompt can be tailored for and
// the closing style guidance each one gets.
package tool

import (
	"fmt"
	"strings"
)

// Tool name constants.
const (
	GrokName    = "Grok"
	ChatGPTName = "ChatGPT"
	GeminiName  = "Gemini"
)

// Tool represents a validated AI tool.
// Zero value is invalid; use Parse or the pre-parsed values.
type Tool struct {
	name string
}

// Compile-time interface compliance check.
var _ fmt.Stringer = Tool{}

// Pre-parsed tools for use in code.
var (
	Grok    = Tool{name: GrokName}
	ChatGPT = Tool{name: ChatGPTName}
	Gemini  = Tool{name: GeminiName}
)

// Default is used whenever a tool is missing or unknown.
var Default = Grok

// toolOrder defines the canonical order for Names().
var toolOrder = []string{GrokName, ChatGPTName, GeminiName}

// Parse validates a tool name. Matching is case-insensitive and the
// canonical spelling is returned ("chatgpt" -> ChatGPT).
// Returns ErrInvalid for empty or unknown names.
func Parse(s string) (Tool, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Tool{}, fmt.Errorf("AI tool cannot be empty: %w", ErrInvalid)
	}
	for _, name := range toolOrder {
		if strings.EqualFold(trimmed, name) {
			return Tool{name: name}, nil
		}
	}
	return Tool{}, fmt.Errorf("unknown AI tool %q (use %s): %w",
		s, strings.Join(toolOrder, ", "), ErrInvalid)
}

// Resolve returns the tool named s, or Default when s is empty or unknown.
// This never fails: the style lookup degrades instead of erroring.
func Resolve(s string) Tool {
	t, err := Parse(s)
	if err != nil {
		return Default
	}
	return t
}

// String returns the canonical tool name.
func (t Tool) String() string {
	return t.name
}

// IsZero reports whether no tool is set.
func (t Tool) IsZero() bool {
	return t.name == ""
}

// Names returns the canonical tool names in menu order.
func Names() []string {
	result := make([]string, len(toolOrder))
	copy(result, toolOrder)
	return result
}
