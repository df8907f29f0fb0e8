package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-promptgen/internal/config"
	"github.com/alnah/go-promptgen/internal/form"
	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
	"github.com/alnah/go-promptgen/internal/tool"
)

// ---------------------------------------------------------------------------
// GenerateCmd - flags
// ---------------------------------------------------------------------------

func TestGenerate_FromFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "article with features and defaults",
			args: []string{"article", "--topic", "Introduction to GraphQL", "--audience", "Beginner developers",
				"--element", "Code Examples", "--element", "Analogies", "--technical"},
			want: []string{
				`article on "Introduction to GraphQL" for Dev.to, targeting Beginner developers.`,
				"medium in length and written in a professional tone.",
				"The topic is technical",
				"code examples, analogies.",
			},
		},
		{
			name: "x-post with tool",
			args: []string{"x-post", "--topic", "Go 1.25", "--audience", "Gophers", "--tool", "chatgpt", "--cross", "My blog"},
			want: []string{
				`X post about "Go 1.25" targeting Gophers.`,
				"End with a strong call-to-action: Reply with your take.",
				"Subtly promote the following: My blog.",
				"Leverage ChatGPT’s conversational flow",
			},
		},
		{
			name: "research maps cross to crossReference",
			args: []string{"research", "--topic", "Virtual threads", "--audience", "Backend developers",
				"--scope", "Comparative Study", "--cross", "My article", "--objective", "Benchmark"},
			want: []string{
				"with a comparative study scope",
				"Integrate or reference the following: My article.",
				"Ensure the research achieves this objective: Benchmark.",
				"Optimize for Grok’s analytical",
			},
		},
		{
			name: "learn flags",
			args: []string{"learn", "--topic", "Spring Boot", "--audience", "Students", "--level", "Advanced", "--goal", "Build a Project", "--style", "Hands-On"},
			want: []string{"advanced knowledge level", "learning goal of build a project", "hands-on learning style"},
		},
		{
			name: "choices ignore case",
			args: []string{"linkedin", "--topic", "Go", "--audience", "Gophers", "--tone", "witty", "--element", "technical insight"},
			want: []string{"written in a witty tone", "technical insight."},
		},
		{
			name: "raw",
			args: []string{"raw", "--prompt", "  Say hi  "},
			want: []string{"Say hi"},
		},
		{
			name: "template with set",
			args: []string{"template", "--name", template.SocialMediaPromotion, "--topic", "Recursion", "--set", "LINK=https://example.com"},
			want: []string{"Recursion", "https://example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _, _ := testEnv()
			if err := runCmd(t, GenerateCmd(env), tt.args...); err != nil {
				t.Fatalf("generate %v: unexpected error: %v", tt.args, err)
			}
			got := stdout.String()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("prompt missing %q\ngot: %s", w, got)
				}
			}
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"no kind", nil, ErrFlagConflict},
		{"unknown kind", []string{"poem"}, request.ErrInvalidInput},
		{"flag not in form", []string{"article", "--topic", "Go", "--scope", "Overview"}, ErrFlagConflict},
		{"technical on x-post", []string{"x-post", "--topic", "Go", "--technical"}, ErrFlagConflict},
		{"set on article", []string{"article", "--set", "A=B"}, ErrFlagConflict},
		{"bad assignment", []string{"template", "--name", template.SocialMediaPromotion, "--set", "novalue"}, ErrInvalidAssignment},
		{"unknown tool", []string{"linkedin", "--topic", "Go", "--tool", "Claude"}, tool.ErrInvalid},
		{"missing topic", []string{"youtube", "--audience", "Devs"}, form.ErrMissingField},
		{"missing audience", []string{"youtube", "--topic", "Go"}, form.ErrMissingField},
		{"empty raw", []string{"raw"}, form.ErrMissingField},
		{"tone outside choices", []string{"linkedin", "--topic", "Go", "--audience", "Devs", "--tone", "Banana"}, form.ErrInvalidChoice},
		{"element outside choices", []string{"x-post", "--topic", "Go", "--audience", "Devs", "--element", "Laser Beams"}, form.ErrInvalidChoice},
		{"unknown template", []string{"template", "--name", "Haiku", "--topic", "Go"}, template.ErrUnknown},
		{"template needs platform", []string{"template", "--name", template.EngagingLinkedInPost, "--topic", "Go"}, form.ErrMissingField},
		{"output and save", []string{"raw", "--prompt", "x", "-o", "a.md", "--save"}, ErrFlagConflict},
		{"file with field flags", []string{"raw", "--file", "-", "--prompt", "x"}, ErrFlagConflict},
		{"interactive without terminal", []string{"raw", "--interactive"}, ErrNotTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _, _ := testEnv()
			err := runCmd(t, GenerateCmd(env), tt.args...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("generate %v: error = %v, want %v", tt.args, err, tt.wantErr)
			}
			if stdout.String() != "" {
				t.Errorf("stdout = %q, want nothing on error", stdout.String())
			}
		})
	}
}

func TestGenerate_ConfigToolDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"config tool applies", []string{"linkedin", "--topic", "Go", "--audience", "Devs"}, "Use Gemini’s structured clarity"},
		{"flag wins over config", []string{"linkedin", "--topic", "Go", "--audience", "Devs", "--tool", "Grok"}, "Optimize for Grok’s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mocks := newTestMocks()
			mocks.configLoader.LoadFunc = func() (config.Config, error) {
				return config.Config{AITool: tool.GeminiName}, nil
			}
			env, stdout, _, _ := testEnv(withTestMocks(mocks))

			if err := runCmd(t, GenerateCmd(env), tt.args...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Errorf("prompt = %q, want to contain %q", stdout.String(), tt.want)
			}
		})
	}
}

func TestGenerate_ConfigLoadFailureWarns(t *testing.T) {
	t.Parallel()

	mocks := newTestMocks()
	mocks.configLoader.LoadFunc = func() (config.Config, error) {
		return config.Config{}, errors.New("permission denied")
	}
	env, stdout, stderr, _ := testEnv(withTestMocks(mocks))

	if err := runCmd(t, GenerateCmd(env), "raw", "--prompt", "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout.String() != "hi\n" {
		t.Errorf("stdout = %q, want prompt", stdout.String())
	}
	if !strings.Contains(stderr.String(), "Warning: failed to load config") {
		t.Errorf("stderr = %q, want warning", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// GenerateCmd - documents
// ---------------------------------------------------------------------------

func TestGenerate_FromFile(t *testing.T) {
	t.Parallel()

	t.Run("self-describing document", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "req.yaml", "kind: x-post\ntopic: Go\naudience: Gophers\n")
		env, stdout, _, _ := testEnv()
		if err := runCmd(t, GenerateCmd(env), "--file", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), `X post about "Go" targeting Gophers.`) {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("typed by kind argument", func(t *testing.T) {
		t.Parallel()

		env, stdout, _, _ := testEnv(withTestStdin(`{"topic":"Go","audience":"Gophers"}`, false))
		if err := runCmd(t, GenerateCmd(env), "linkedin", "--file", "-"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(stdout.String(), "LinkedIn post about") {
			t.Errorf("stdout = %q, want a LinkedIn prompt", stdout.String())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		env, _, _, _ := testEnv()
		err := runCmd(t, GenerateCmd(env), "--file", "/nonexistent/req.yaml")
		if !errors.Is(err, ErrFileNotFound) {
			t.Errorf("error = %v, want ErrFileNotFound", err)
		}
	})

	t.Run("unclassifiable document", func(t *testing.T) {
		t.Parallel()

		path := writeTestFile(t, "req.yaml", "color: blue\n")
		env, _, _, _ := testEnv()
		err := runCmd(t, GenerateCmd(env), "--file", path)
		if !errors.Is(err, request.ErrInvalidInput) {
			t.Errorf("error = %v, want ErrInvalidInput", err)
		}
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func TestParseAssignments(t *testing.T) {
	t.Parallel()

	got, err := parseAssignments([]string{"LINK=https://x.io/?a=b", "[RELATED TOPIC]=Loops, iteration", "EMPTY="})
	if err != nil {
		t.Fatalf("parseAssignments() unexpected error: %v", err)
	}
	want := map[string]string{"LINK": "https://x.io/?a=b", "RELATED TOPIC": "Loops, iteration", "EMPTY": ""}
	if len(got) != len(want) {
		t.Fatalf("parseAssignments() = %v, want %v", got, want)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("parseAssignments()[%q] = %q, want %q", k, got[k], v)
		}
	}

	for _, bad := range []string{"novalue", "=value", " =x"} {
		if _, err := parseAssignments([]string{bad}); !errors.Is(err, ErrInvalidAssignment) {
			t.Errorf("parseAssignments(%q) error = %v, want ErrInvalidAssignment", bad, err)
		}
	}
}

func TestBindField(t *testing.T) {
	t.Parallel()

	article, _ := form.For(request.KindArticle)
	learn, _ := form.For(request.KindLearn)

	if got, _ := bindField(article, "element", "features", "elements"); got != "features" {
		t.Errorf("bindField(article) = %q, want features", got)
	}
	if got, _ := bindField(learn, "element", "features", "elements"); got != "elements" {
		t.Errorf("bindField(learn) = %q, want elements", got)
	}
	if _, err := bindField(learn, "tone", "tone"); !errors.Is(err, ErrFlagConflict) {
		t.Errorf("bindField(learn, tone) error = %v, want ErrFlagConflict", err)
	}
}
