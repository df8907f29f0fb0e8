// Package form describes the input forms for each request kind and checks
// submissions against them before they reach the generator.
//
// The generator assumes required fields are present; this package is where
// that precondition is enforced.
package form

import (
	"fmt"

	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
	"github.com/alnah/go-promptgen/internal/tool"
)

// FieldType tells a front end how to capture a field.
type FieldType string

// Field types.
const (
	Text     FieldType = "text"
	TextArea FieldType = "textarea"
	Select   FieldType = "select"
	Multi    FieldType = "multi"
	Bool     FieldType = "bool"
)

// Field describes one form input.
type Field struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Type     FieldType `json:"type"`
	Required bool      `json:"required"`
	Choices  []string  `json:"choices,omitempty"`
	Default  string    `json:"default,omitempty"`
	Example  string    `json:"example,omitempty"`
}

// Form is the ordered list of fields for one request kind.
type Form struct {
	Kind   request.Kind `json:"kind"`
	Title  string       `json:"title"`
	Fields []Field      `json:"fields"`
}

// Field returns the field with the given name.
func (f Form) Field(name string) (Field, bool) {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return Field{}, false
}

// For returns the form for kind k.
// Template forms list the template picker, topic and platform; use
// ForTemplate to include the placeholders of a specific template.
func For(k request.Kind) (Form, error) {
	build, ok := builders[k]
	if !ok {
		return Form{}, fmt.Errorf("no form for kind %q: %w", k, request.ErrInvalidInput)
	}
	return Form{Kind: k, Title: k.Title(), Fields: build()}, nil
}

// ForTemplate returns the template form for a specific template: the common
// fields, with platform required only when the template needs it, followed
// by one optional text field per discovered placeholder.
func ForTemplate(name template.Name) Form {
	fields := templateFields()
	for i := range fields {
		switch fields[i].Name {
		case "name":
			fields[i].Default = name.String()
		case "platform":
			fields[i].Required = name.RequiresPlatform()
		}
	}
	for _, p := range name.Placeholders() {
		fields = append(fields, Field{Name: p, Label: p, Type: Text})
	}
	return Form{Kind: request.KindTemplate, Title: name.String(), Fields: fields}
}

// ---------------------------------------------------------------------------
// Vocabularies
// ---------------------------------------------------------------------------

var builders = map[request.Kind]func() []Field{
	request.KindArticle:  articleFields,
	request.KindLinkedIn: linkedInFields,
	request.KindYouTube:  youTubeFields,
	request.KindResearch: researchFields,
	request.KindLearn:    learnFields,
	request.KindXPost:    xPostFields,
	request.KindTemplate: templateFields,
	request.KindRaw:      rawFields,
}

func topic(example string) Field {
	return Field{Name: "topic", Label: "Topic", Type: Text, Required: true, Example: example}
}

func audience(example string) Field {
	return Field{Name: "audience", Label: "Target Audience", Type: Text, Required: true, Example: example}
}

func aiTool() Field {
	return Field{Name: "aiTool", Label: "AI Tool", Type: Select, Required: true,
		Choices: tool.Names(), Default: tool.Default.String()}
}

func objective(example string) Field {
	return Field{Name: "objective", Label: "Custom Objective", Type: TextArea, Example: example}
}

func articleFields() []Field {
	return []Field{
		topic("Introduction to GraphQL"),
		{Name: "tone", Label: "Tone", Type: Select, Required: true,
			Choices: []string{"Professional", "Casual", "Humorous", "Inspirational"}, Default: "Professional"},
		{Name: "platform", Label: "Platform", Type: Select, Required: true,
			Choices: []string{"Dev.to", "Medium", "Blog", "Other"}, Default: "Dev.to"},
		{Name: "isTechnical", Label: "Technical Topic", Type: Bool},
		{Name: "features", Label: "Features", Type: Multi,
			Choices: []string{"Storyline", "Humor", "Code Examples", "Diagrams (e.g., Venn, Flow Charts)", "Real-Life Examples", "Analogies"}},
		audience("Beginner developers, Tech enthusiasts"),
		{Name: "length", Label: "Article Length", Type: Select, Required: true,
			Choices: []string{"Short", "Medium", "Long"}, Default: "Medium"},
		{Name: "objectives", Label: "Specific Objectives", Type: TextArea,
			Example: "Compare GraphQL vs. REST, Include a case study, Debunk myths"},
	}
}

func linkedInFields() []Field {
	return []Field{
		topic("Why Java 21’s virtual threads are a game-changer"),
		{Name: "tone", Label: "Tone", Type: Select, Required: true,
			Choices: []string{"Professional", "Witty", "Inspirational", "Conversational"}, Default: "Professional"},
		audience("Backend developers, Tech recruiters"),
		{Name: "cta", Label: "Call-to-Action", Type: Select, Required: true,
			Choices: []string{"Comment with thoughts", "Follow for more", "Read my article", "Join my community"},
			Default: "Comment with thoughts"},
		{Name: "elements", Label: "Content Elements", Type: Multi,
			Choices: []string{"Anecdote", "Statistic", "Question", "Technical Insight", "Humor", "Quote"}},
		{Name: "crossPromotion", Label: "Cross-Promotion", Type: Text, Example: "Link to my Dev.to article"},
		aiTool(),
		objective("Highlight Java 21’s benefits, Encourage discussion"),
	}
}

func youTubeFields() []Field {
	return []Field{
		topic("Building a REST API with Spring Boot"),
		{Name: "tone", Label: "Tone", Type: Select, Required: true,
			Choices: []string{"Educational", "Entertaining", "Inspirational", "Conversational"}, Default: "Educational"},
		audience("Beginner programmers"),
		{Name: "length", Label: "Video Length", Type: Select, Required: true,
			Choices: []string{"Short", "Medium", "Long"}, Default: "Medium"},
		{Name: "elements", Label: "Content Elements", Type: Multi,
			Choices: []string{"Hook", "Tutorial Segment", "Call-to-Action", "Humor", "Case Study", "Visual Cue Suggestions"}},
		{Name: "cta", Label: "Call-to-Action", Type: Select, Required: true,
			Choices: []string{"Like and subscribe", "Comment with your thoughts", "Check out my article", "Join my community"},
			Default: "Like and subscribe"},
		{Name: "crossPromotion", Label: "Cross-Promotion", Type: Text, Example: "My Dev.to article"},
		aiTool(),
		objective("Teach Spring Boot basics, Promote my Java course"),
	}
}

func researchFields() []Field {
	return []Field{
		topic("Impact of Java 21’s virtual threads"),
		{Name: "scope", Label: "Research Scope", Type: Select, Required: true,
			Choices: []string{"Overview", "In-Depth Analysis", "Comparative Study", "Historical Review"}, Default: "Overview"},
		audience("Backend developers"),
		{Name: "purpose", Label: "Research Purpose", Type: Select, Required: true,
			Choices: []string{"Academic Paper", "Industry Report", "Personal Learning", "Product Development"},
			Default: "Academic Paper"},
		{Name: "elements", Label: "Research Elements", Type: Multi,
			Choices: []string{"Literature Review", "Data Analysis", "Case Studies", "Technical Details", "Future Trends", "Challenges"}},
		{Name: "depth", Label: "Complexity Level", Type: Select, Required: true,
			Choices: []string{"Basic", "Intermediate", "Advanced"}, Default: "Intermediate"},
		{Name: "crossReference", Label: "Cross-Reference", Type: Text, Example: "My Dev.to article"},
		aiTool(),
		objective("Evaluate Java 21’s performance benefits"),
	}
}

func learnFields() []Field {
	return []Field{
		topic("Spring Boot for REST API development"),
		{Name: "knowledgeLevel", Label: "Knowledge Level", Type: Select, Required: true,
			Choices: []string{"Beginner", "Intermediate", "Advanced"}, Default: "Beginner"},
		{Name: "learningGoal", Label: "Learning Goal", Type: Select, Required: true,
			Choices: []string{"Understand Concepts", "Build a Project", "Prepare for Certification", "Apply Professionally"},
			Default: "Understand Concepts"},
		audience("Aspiring backend developers"),
		{Name: "elements", Label: "Learning Elements", Type: Multi,
			Choices: []string{"Explanations", "Examples", "Exercises", "Quizzes", "Analogies", "Real-World Applications"}},
		{Name: "learningStyle", Label: "Learning Style", Type: Select, Required: true,
			Choices: []string{"Visual", "Hands-On", "Text-Based", "Interactive"}, Default: "Text-Based"},
		{Name: "crossReference", Label: "Cross-Reference", Type: Text, Example: "My YouTube video"},
		aiTool(),
		objective("Master Spring Boot configuration"),
	}
}

func xPostFields() []Field {
	return []Field{
		topic("Why Java 21’s virtual threads rock"),
		{Name: "tone", Label: "Tone", Type: Select, Required: true,
			Choices: []string{"Witty", "Informative", "Provocative", "Inspirational"}, Default: "Witty"},
		audience("Backend developers"),
		{Name: "cta", Label: "Call-to-Action", Type: Select, Required: true,
			Choices: []string{"Reply with your take", "Follow for more", "Check my article", "Join my community"},
			Default: "Reply with your take"},
		{Name: "elements", Label: "Content Elements", Type: Multi,
			Choices: []string{"Statistic", "Question", "Code Snippet", "Humor", "Hot Take", "Emoji"}},
		{Name: "crossPromotion", Label: "Cross-Promotion", Type: Text, Example: "My YouTube video"},
		aiTool(),
		objective("Spark discussion on Java 21"),
	}
}

func templateFields() []Field {
	return []Field{
		{Name: "name", Label: "Prompt Type", Type: Select, Required: true,
			Choices: template.Names(), Default: template.ComprehensiveArticle},
		topic("JavaScript Async/Await"),
		{Name: "platform", Label: "Platform", Type: Text, Example: "Medium, Dev.to"},
	}
}

func rawFields() []Field {
	return []Field{
		{Name: "prompt", Label: "Prompt", Type: TextArea, Required: true},
	}
}
