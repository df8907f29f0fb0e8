package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-promptgen/internal/cli"
	"github.com/alnah/go-promptgen/internal/config"
	"github.com/alnah/go-promptgen/internal/prompt"
	"github.com/alnah/go-promptgen/internal/request"
)

// Notes:
// - Black-box tests drive the exported commands through NewEnv, the way
//   main wires them, with only the config and clipboard replaced.

type fixedConfig config.Config

func (c fixedConfig) Load() (config.Config, error) { return config.Config(c), nil }

type recordingClipboard struct{ text string }

func (r *recordingClipboard) WriteAll(text string) error {
	r.text = text
	return nil
}

func newEnv(stdout, stderr io.Writer, cfg config.Config, clip cli.Clipboard) *cli.Env {
	return cli.NewEnv(
		cli.WithStdin(strings.NewReader("")),
		cli.WithStdout(stdout),
		cli.WithStderr(stderr),
		cli.WithGetenv(func(string) string { return "" }),
		cli.WithNow(func() time.Time { return time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC) }),
		cli.WithConfigLoader(fixedConfig(cfg)),
		cli.WithClipboard(clip),
	)
}

func TestGenerateCmd_ArticleEndToEnd(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	clip := &recordingClipboard{}
	env := newEnv(&stdout, &stderr, config.Config{}, clip)

	cmd := cli.GenerateCmd(env)
	cmd.SetArgs([]string{"article",
		"--topic", "GraphQL", "--platform", "Dev.to", "--tone", "Professional",
		"--length", "Medium", "--technical", "--audience", "Beginners",
		"--copy", "--stats"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	want, err := prompt.Generate(request.Article{
		Topic: "GraphQL", Platform: "Dev.to", Tone: "Professional", Length: "Medium",
		IsTechnical: true, Audience: "Beginners",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if stdout.String() != want.Prompt+"\n" {
		t.Errorf("stdout = %q, want %q", stdout.String(), want.Prompt+"\n")
	}
	if clip.text != want.Prompt {
		t.Errorf("clipboard = %q, want the prompt", clip.text)
	}
	if !strings.Contains(stderr.String(), "tokens") {
		t.Errorf("stderr = %q, want stats", stderr.String())
	}
}

func TestGenerateCmd_SaveWritesIntoOutputDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	env := newEnv(&stdout, &stderr, config.Config{OutputDir: dir}, &recordingClipboard{})

	cmd := cli.GenerateCmd(env)
	cmd.SetArgs([]string{"raw", "--prompt", "hello", "--save"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}

	name := cli.DefaultPromptFilename(env, prompt.Result{Kind: request.KindRaw})
	if name != "raw-20261019-080000.md" {
		t.Errorf("DefaultPromptFilename() = %q", name)
	}
	got, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("saved prompt missing: %v", err)
	}
	if string(got) != "hello\n" {
		t.Errorf("saved content = %q", got)
	}
}

func TestExportedHelpers(t *testing.T) {
	t.Parallel()

	if got := cli.ClampParallel(cli.MaxParallel * 2); got != cli.MaxParallel {
		t.Errorf("ClampParallel() = %d, want %d", got, cli.MaxParallel)
	}
	values, err := cli.ParseAssignments([]string{"LINK=https://example.com"})
	if err != nil || values["LINK"] != "https://example.com" {
		t.Errorf("ParseAssignments() = %v, %v", values, err)
	}
}
