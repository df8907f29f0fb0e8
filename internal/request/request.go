// Package request defines the content requests accepted by the generator.
//
// Requests form a closed tagged union: every concrete type implements
// Request and reports its Kind. Callers that build requests in Go pick the
// concrete type directly. Callers holding untyped documents (YAML, JSON,
// HTTP bodies) go through Classify and FromValue, which infer the variant
// from an explicit "kind" tag or, failing that, from field presence.
package request

import "fmt"

// Request is implemented by every content request variant.
type Request interface {
	Kind() Kind
}

// Article asks for a long-form article.
type Article struct {
	Topic       string   `yaml:"topic" json:"topic"`
	Tone        string   `yaml:"tone" json:"tone"`
	Platform    string   `yaml:"platform" json:"platform"`
	IsTechnical bool     `yaml:"isTechnical" json:"isTechnical"`
	Features    []string `yaml:"features" json:"features"`
	Audience    string   `yaml:"audience" json:"audience"`
	Length      string   `yaml:"length" json:"length"`
	Objectives  string   `yaml:"objectives" json:"objectives"`
}

// LinkedInPost asks for a professional LinkedIn post.
type LinkedInPost struct {
	Topic          string   `yaml:"topic" json:"topic"`
	Tone           string   `yaml:"tone" json:"tone"`
	Audience       string   `yaml:"audience" json:"audience"`
	CTA            string   `yaml:"cta" json:"cta"`
	Elements       []string `yaml:"elements" json:"elements"`
	CrossPromotion string   `yaml:"crossPromotion" json:"crossPromotion"`
	AITool         string   `yaml:"aiTool" json:"aiTool"`
	Objective      string   `yaml:"objective" json:"objective"`
}

// YouTubeScript asks for a YouTube video script.
type YouTubeScript struct {
	Topic          string   `yaml:"topic" json:"topic"`
	Tone           string   `yaml:"tone" json:"tone"`
	Audience       string   `yaml:"audience" json:"audience"`
	Length         string   `yaml:"length" json:"length"`
	Elements       []string `yaml:"elements" json:"elements"`
	CTA            string   `yaml:"cta" json:"cta"`
	CrossPromotion string   `yaml:"crossPromotion" json:"crossPromotion"`
	AITool         string   `yaml:"aiTool" json:"aiTool"`
	Objective      string   `yaml:"objective" json:"objective"`
}

// Research asks for a research brief.
type Research struct {
	Topic          string   `yaml:"topic" json:"topic"`
	Scope          string   `yaml:"scope" json:"scope"`
	Audience       string   `yaml:"audience" json:"audience"`
	Purpose        string   `yaml:"purpose" json:"purpose"`
	Elements       []string `yaml:"elements" json:"elements"`
	Depth          string   `yaml:"depth" json:"depth"`
	CrossReference string   `yaml:"crossReference" json:"crossReference"`
	AITool         string   `yaml:"aiTool" json:"aiTool"`
	Objective      string   `yaml:"objective" json:"objective"`
}

// LearnTopic asks for a learning guide.
type LearnTopic struct {
	Topic          string   `yaml:"topic" json:"topic"`
	KnowledgeLevel string   `yaml:"knowledgeLevel" json:"knowledgeLevel"`
	LearningGoal   string   `yaml:"learningGoal" json:"learningGoal"`
	Audience       string   `yaml:"audience" json:"audience"`
	Elements       []string `yaml:"elements" json:"elements"`
	LearningStyle  string   `yaml:"learningStyle" json:"learningStyle"`
	CrossReference string   `yaml:"crossReference" json:"crossReference"`
	AITool         string   `yaml:"aiTool" json:"aiTool"`
	Objective      string   `yaml:"objective" json:"objective"`
}

// XPost asks for a short post on X.
// Its fields are identical to LinkedInPost; only the tag tells them apart.
type XPost struct {
	Topic          string   `yaml:"topic" json:"topic"`
	Tone           string   `yaml:"tone" json:"tone"`
	Audience       string   `yaml:"audience" json:"audience"`
	CTA            string   `yaml:"cta" json:"cta"`
	Elements       []string `yaml:"elements" json:"elements"`
	CrossPromotion string   `yaml:"crossPromotion" json:"crossPromotion"`
	AITool         string   `yaml:"aiTool" json:"aiTool"`
	Objective      string   `yaml:"objective" json:"objective"`
}

// Template asks for one of the static long-form templates to be filled in.
// Values maps bracketed placeholder names (without brackets) to replacements.
type Template struct {
	Name     string            `yaml:"name" json:"name"`
	Topic    string            `yaml:"topic" json:"topic"`
	Platform string            `yaml:"platform" json:"platform"`
	Values   map[string]string `yaml:"values" json:"values"`
}

// Raw is a prompt that is already final and passes through verbatim.
type Raw string

func (Article) Kind() Kind       { return KindArticle }
func (LinkedInPost) Kind() Kind  { return KindLinkedIn }
func (YouTubeScript) Kind() Kind { return KindYouTube }
func (Research) Kind() Kind      { return KindResearch }
func (LearnTopic) Kind() Kind    { return KindLearn }
func (XPost) Kind() Kind         { return KindXPost }
func (Template) Kind() Kind      { return KindTemplate }
func (Raw) Kind() Kind           { return KindRaw }

// New returns a zero request of the given kind, ready to be decoded into.
// The returned value is a pointer to the concrete type.
func New(k Kind) (any, error) {
	switch k {
	case KindArticle:
		return &Article{}, nil
	case KindLinkedIn:
		return &LinkedInPost{}, nil
	case KindYouTube:
		return &YouTubeScript{}, nil
	case KindResearch:
		return &Research{}, nil
	case KindLearn:
		return &LearnTopic{}, nil
	case KindXPost:
		return &XPost{}, nil
	case KindTemplate:
		return &Template{}, nil
	case KindRaw:
		var r Raw
		return &r, nil
	default:
		return nil, fmt.Errorf("unknown request kind %q: %w", k, ErrInvalidInput)
	}
}

// deref converts a pointer returned by New back into a Request value.
func deref(v any) Request {
	switch p := v.(type) {
	case *Article:
		return *p
	case *LinkedInPost:
		return *p
	case *YouTubeScript:
		return *p
	case *Research:
		return *p
	case *LearnTopic:
		return *p
	case *XPost:
		return *p
	case *Template:
		return *p
	case *Raw:
		return *p
	default:
		return nil
	}
}

// Compile-time interface verification.
var (
	_ Request = Article{}
	_ Request = LinkedInPost{}
	_ Request = YouTubeScript{}
	_ Request = Research{}
	_ Request = LearnTopic{}
	_ Request = XPost{}
	_ Request = Template{}
	_ Request = Raw("")
)
