// Package template holds the static long-form prompt templates and the
// placeholder substitution engine that fills them in.
package template

import (
	"embed"
	"fmt"
	"strings"
)

// Template name constants.
// Use these instead of string literals for compile-time safety.
const (
	ComprehensiveArticle = "Comprehensive Article Prompt"
	EngagingLinkedInPost = "Engaging LinkedIn Post Prompt"
	YouTubeInstagramReel = "YouTube and Instagram Reel Prompt"
	SocialMediaPromotion = "Social Media Promotion Scripts"
)

// ---------------------------------------------------------------------------
// Name type - represents a validated template name
// ---------------------------------------------------------------------------

// Name represents a validated template name.
// Zero value is invalid and must not be used with Text().
// Use ParseName to create from user input, or the pre-parsed constants.
type Name struct {
	name string
}

// Pre-parsed template name constants for use in code.
var (
	ComprehensiveArticleName = Name{name: ComprehensiveArticle}
	EngagingLinkedInPostName = Name{name: EngagingLinkedInPost}
	YouTubeInstagramReelName = Name{name: YouTubeInstagramReel}
	SocialMediaPromotionName = Name{name: SocialMediaPromotion}
)

// ParseName validates and parses a template name.
// Accepts the display name ("Social Media Promotion Scripts") or its slug
// ("social-media-promotion-scripts"). Display names are case-sensitive.
// Returns ErrUnknown if the name is not recognized.
func ParseName(s string) (Name, error) {
	if s == "" {
		return Name{}, fmt.Errorf("template name cannot be empty: %w", ErrUnknown)
	}
	if _, ok := templates[s]; ok {
		return Name{name: s}, nil
	}
	for _, name := range templateOrder {
		if Slug(name) == s {
			return Name{name: name}, nil
		}
	}
	return Name{}, fmt.Errorf("unknown template %q: %w", s, ErrUnknown)
}

// MustParseName parses a template name, panicking if invalid.
// Use only for compile-time constants and tests.
func MustParseName(s string) Name {
	n, err := ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the display name.
// Returns empty string for zero value.
func (n Name) String() string {
	return n.name
}

// Slug returns the URL-friendly form of the name.
func (n Name) Slug() string {
	return Slug(n.name)
}

// IsZero returns true if this is the zero value (no template set).
func (n Name) IsZero() bool {
	return n.name == ""
}

// Text returns the raw template text for this name.
// Panics if called on zero value.
func (n Name) Text() string {
	if n.name == "" {
		panic("template.Name.Text called on zero value")
	}
	return templates[n.name]
}

// RequiresPlatform reports whether the template addresses a target
// platform through the [PLATFORM] token, which forms must then collect.
func (n Name) RequiresPlatform() bool {
	return n.name == EngagingLinkedInPost || n.name == YouTubeInstagramReel
}

// Placeholders returns the secondary placeholders a caller may fill for
// this template. See Placeholders.
func (n Name) Placeholders() []string {
	return Placeholders(n.Text())
}

// Slug lowercases a display name and joins its words with hyphens.
// "Comprehensive Article Prompt" -> "comprehensive-article-prompt".
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// ---------------------------------------------------------------------------
// Template table
// ---------------------------------------------------------------------------

// templateOrder defines the canonical order for Names().
// It is also the order the templates are offered in menus.
var templateOrder = []string{
	ComprehensiveArticle,
	EngagingLinkedInPost,
	YouTubeInstagramReel,
	SocialMediaPromotion,
}

//go:embed templates/*.txt
var templateFS embed.FS

// templates maps display names to template text.
// Texts are versioned with the binary; update requires rebuild.
var templates = loadTemplates()

func loadTemplates() map[string]string {
	m := make(map[string]string, len(templateOrder))
	for _, name := range templateOrder {
		b, err := templateFS.ReadFile("templates/" + Slug(name) + ".txt")
		if err != nil {
			panic(fmt.Sprintf("template %q missing from binary: %v", name, err))
		}
		m[name] = string(b)
	}
	return m
}

// Names returns the display names of all templates in canonical order.
func Names() []string {
	result := make([]string, len(templateOrder))
	copy(result, templateOrder)
	return result
}
