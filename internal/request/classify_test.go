package request_test

// Notes:
// - Fixtures mirror the field sets the web forms submit, one per variant
// - Disjointness of the structural rules is asserted explicitly: the order of
//   the rule list must not be what keeps two variants apart

import (
	"errors"
	"testing"

	"github.com/alnah/go-promptgen/internal/request"
)

// fixtures returns one canonical untyped document per structural variant.
func fixtures() map[request.Kind]map[string]any {
	return map[request.Kind]map[string]any{
		request.KindArticle: {
			"topic": "GraphQL", "tone": "Professional", "platform": "Dev.to",
			"isTechnical": true, "features": []any{}, "audience": "Beginners",
			"length": "Medium", "objectives": "",
		},
		request.KindLinkedIn: {
			"topic": "Virtual threads", "tone": "Professional", "audience": "Backend developers",
			"cta": "Comment with thoughts", "elements": []any{"Humor"}, "crossPromotion": "",
			"aiTool": "Grok", "objective": "",
		},
		request.KindYouTube: {
			"topic": "Spring Boot", "tone": "Educational", "audience": "Beginners",
			"length": "Medium", "elements": []any{}, "cta": "Like and subscribe",
			"crossPromotion": "", "aiTool": "Gemini", "objective": "",
		},
		request.KindResearch: {
			"topic": "Virtual threads", "scope": "Overview", "audience": "Backend developers",
			"purpose": "Academic Paper", "elements": []any{}, "depth": "Intermediate",
			"crossReference": "", "aiTool": "ChatGPT", "objective": "",
		},
		request.KindLearn: {
			"topic": "Spring Boot", "knowledgeLevel": "Beginner", "learningGoal": "Build a Project",
			"audience": "Students", "elements": []any{}, "learningStyle": "Hands-On",
			"crossReference": "", "aiTool": "Grok", "objective": "",
		},
		request.KindTemplate: {
			"name": "Comprehensive Article Prompt", "topic": "Recursion",
		},
	}
}

// ---------------------------------------------------------------------------
// TestClassify_StructuralFixtures - each untagged shape maps to its own kind
// ---------------------------------------------------------------------------

func TestClassify_StructuralFixtures(t *testing.T) {
	t.Parallel()

	for want, doc := range fixtures() {
		t.Run(string(want), func(t *testing.T) {
			t.Parallel()

			got, err := request.Classify(doc)
			if err != nil {
				t.Fatalf("Classify() unexpected error: %v", err)
			}
			if got != want {
				t.Errorf("Classify() = %q, want %q", got, want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRules_AreDisjoint - no fixture satisfies more than one predicate
// ---------------------------------------------------------------------------

func TestRules_AreDisjoint(t *testing.T) {
	t.Parallel()

	for kind, doc := range fixtures() {
		matches := request.MatchingRules(doc)
		if len(matches) != 1 {
			t.Errorf("%s fixture matched %d rules %v, want exactly 1", kind, len(matches), matches)
		}
	}
}

// ---------------------------------------------------------------------------
// TestClassify_ExplicitTag - the kind tag wins over structure
// ---------------------------------------------------------------------------

func TestClassify_ExplicitTag(t *testing.T) {
	t.Parallel()

	// Same field set as a LinkedIn post; only the tag identifies an X post.
	doc := fixtures()[request.KindLinkedIn]
	doc["kind"] = "x-post"

	got, err := request.Classify(doc)
	if err != nil {
		t.Fatalf("Classify() unexpected error: %v", err)
	}
	if got != request.KindXPost {
		t.Errorf("Classify() = %q, want %q", got, request.KindXPost)
	}
}

func TestClassify_TypedUnion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		req  request.Request
		want request.Kind
	}{
		{request.Article{}, request.KindArticle},
		{request.LinkedInPost{}, request.KindLinkedIn},
		{request.YouTubeScript{}, request.KindYouTube},
		{request.Research{}, request.KindResearch},
		{request.LearnTopic{}, request.KindLearn},
		{request.XPost{}, request.KindXPost},
		{request.Template{}, request.KindTemplate},
		{request.Raw("hello"), request.KindRaw},
	}

	seen := make(map[request.Kind]bool)
	for _, tt := range tests {
		got, err := request.Classify(tt.req)
		if err != nil {
			t.Fatalf("Classify(%T) unexpected error: %v", tt.req, err)
		}
		if got != tt.want {
			t.Errorf("Classify(%T) = %q, want %q", tt.req, got, tt.want)
		}
		if seen[got] {
			t.Errorf("kind %q reported by more than one type", got)
		}
		seen[got] = true
	}
}

func TestClassify_StringIsRaw(t *testing.T) {
	t.Parallel()

	got, err := request.Classify("Write a haiku about Go.")
	if err != nil {
		t.Fatalf("Classify() unexpected error: %v", err)
	}
	if got != request.KindRaw {
		t.Errorf("Classify() = %q, want %q", got, request.KindRaw)
	}
}

// ---------------------------------------------------------------------------
// TestClassify_Failures - unmatched shapes report ErrInvalidInput
// ---------------------------------------------------------------------------

func TestClassify_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
	}{
		{"nil", nil},
		{"number", 42},
		{"empty map", map[string]any{}},
		{"unrelated fields", map[string]any{"title": "x", "body": "y"}},
		{"elements without cta", map[string]any{"topic": "x", "elements": []any{}}},
		{"unknown tag", map[string]any{"kind": "podcast"}},
		{"non-string tag", map[string]any{"kind": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := request.Classify(tt.v)
			if !errors.Is(err, request.ErrInvalidInput) {
				t.Errorf("Classify() error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    request.Kind
		wantErr bool
	}{
		{"article", request.KindArticle, false},
		{"  LinkedIn ", request.KindLinkedIn, false},
		{"X-POST", request.KindXPost, false},
		{"raw", request.KindRaw, false},
		{"", "", true},
		{"x", "", true},
	}

	for _, tt := range tests {
		got, err := request.ParseKind(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestKinds_ReturnsCopy(t *testing.T) {
	t.Parallel()

	first := request.Kinds()
	original := first[0]
	first[0] = "hacked"

	if second := request.Kinds(); second[0] != original {
		t.Errorf("Kinds() returned shared slice: got %q, want %q", second[0], original)
	}
}
