package request

import (
	"fmt"
	"strings"
)

// Kind identifies which content request variant a value holds.
type Kind string

// Request kinds. The string values are the tags accepted in request documents.
const (
	KindArticle  Kind = "article"
	KindLinkedIn Kind = "linkedin"
	KindYouTube  Kind = "youtube"
	KindResearch Kind = "research"
	KindLearn    Kind = "learn"
	KindXPost    Kind = "x-post"
	KindRaw      Kind = "raw"
	KindTemplate Kind = "template"
)

// kindOrder defines the canonical order for Kinds().
// Form-driven kinds come first, in the order they appear in the menu.
var kindOrder = []Kind{
	KindArticle,
	KindLinkedIn,
	KindYouTube,
	KindResearch,
	KindLearn,
	KindXPost,
	KindTemplate,
	KindRaw,
}

// kindTitles holds the human-readable title for each kind.
var kindTitles = map[Kind]string{
	KindArticle:  "Article Writing Prompt",
	KindLinkedIn: "LinkedIn Post Generation Prompt",
	KindYouTube:  "YouTube Video Script Generation Prompt",
	KindResearch: "Research Prompt",
	KindLearn:    "Prompt for Learning Specific Topic",
	KindXPost:    "X Post Generator Prompt",
	KindTemplate: "Template Prompt",
	KindRaw:      "Raw Prompt",
}

// ParseKind validates a kind tag.
// Matching is case-insensitive and surrounding whitespace is ignored.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := kindTitles[k]; !ok {
		return "", fmt.Errorf("unknown request kind %q: %w", s, ErrInvalidInput)
	}
	return k, nil
}

// Kinds returns all kinds in canonical order.
func Kinds() []Kind {
	result := make([]Kind, len(kindOrder))
	copy(result, kindOrder)
	return result
}

// String returns the kind tag.
func (k Kind) String() string {
	return string(k)
}

// Title returns the display title, or the tag itself for unknown kinds.
func (k Kind) Title() string {
	if t, ok := kindTitles[k]; ok {
		return t
	}
	return string(k)
}

// IsForm reports whether the kind is assembled by the inline composer
// from a structured form.
func (k Kind) IsForm() bool {
	switch k {
	case KindArticle, KindLinkedIn, KindYouTube, KindResearch, KindLearn, KindXPost:
		return true
	default:
		return false
	}
}
