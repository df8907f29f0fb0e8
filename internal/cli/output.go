package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/alnah/go-promptgen/internal/config"
	"github.com/alnah/go-promptgen/internal/format"
	"github.com/alnah/go-promptgen/internal/prompt"
)

// savedNameLayout is the timestamp layout of files written by --save.
const savedNameLayout = "20060102-150405"

// outputOptions controls where a generated prompt goes.
type outputOptions struct {
	output string
	save   bool
	copy   bool
	stats  bool
}

// register adds the output flags to fs.
func (o *outputOptions) register(fs *pflag.FlagSet) {
	fs.StringVarP(&o.output, "output", "o", "", "Write the prompt to a file (relative to output-dir)")
	fs.BoolVar(&o.save, "save", false, "Write the prompt to <output-dir>/<kind>-<timestamp>.md")
	fs.BoolVar(&o.copy, "copy", false, "Copy the prompt to the clipboard")
	fs.BoolVar(&o.stats, "stats", false, "Print character, word and token counts to stderr")
}

// validate rejects contradictory output flags.
func (o outputOptions) validate() error {
	if o.output != "" && o.save {
		return fmt.Errorf("--output and --save cannot be combined: %w", ErrFlagConflict)
	}
	return nil
}

// emit delivers res according to opts: to a file when --output or --save is
// set, to stdout otherwise. --copy and --stats apply on top of either.
func emit(env *Env, cfg config.Config, res prompt.Result, opts outputOptions) error {
	path := ""
	switch {
	case opts.output != "":
		path = config.ResolveOutputPath(opts.output, cfg.OutputDir, "")
	case opts.save:
		if cfg.OutputDir != "" {
			if err := config.EnsureOutputDir(cfg.OutputDir); err != nil {
				return err
			}
		}
		path = config.ResolveOutputPath("", cfg.OutputDir, defaultPromptFilename(env, res))
	}

	if path == "" {
		if _, err := fmt.Fprintln(env.Stdout, res.Prompt); err != nil {
			return fmt.Errorf("cannot write prompt: %w", err)
		}
	} else {
		warnNonMarkdownExtension(env, path)
		content := res.Prompt + "\n"
		if err := writeFileAtomic(path, content); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(env.Stderr, "Wrote %s (%s)\n", path, format.Size(int64(len(content))))
	}

	if opts.copy {
		if err := copyPrompt(env, res.Prompt); err != nil {
			return err
		}
		_, _ = fmt.Fprintln(env.Stderr, "Copied to clipboard")
	}

	if opts.stats {
		printStats(env, env.Stderr, res.Stats)
	}
	return nil
}

// copyPrompt writes text to the clipboard. Every failure wraps
// ErrClipboardUnavailable.
func copyPrompt(env *Env, text string) error {
	err := env.Clipboard.WriteAll(text)
	if err == nil || errors.Is(err, ErrClipboardUnavailable) {
		return err
	}
	return fmt.Errorf("cannot copy to clipboard: %v: %w", err, ErrClipboardUnavailable)
}

func printStats(env *Env, w io.Writer, s prompt.Stats) {
	st := newStyles(env, w)
	_, _ = fmt.Fprintf(w, "%s %s\n", st.muted.Render("Stats:"),
		format.Stats(s.Characters, s.Words, s.Tokens))
}

// defaultPromptFilename returns "<kind>-<timestamp>.md".
func defaultPromptFilename(env *Env, res prompt.Result) string {
	return fmt.Sprintf("%s-%s.md", res.Kind, env.Now().Format(savedNameLayout))
}

// warnNonMarkdownExtension warns when path has an extension other than .md
// or .txt. The prompt is written as-is whatever the extension.
func warnNonMarkdownExtension(env *Env, path string) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != "" && ext != ".md" && ext != ".txt" {
		st := newStyles(env, env.Stderr)
		_, _ = fmt.Fprintf(env.Stderr, "%s prompt is plain text regardless of %s extension\n",
			st.warning.Render("Warning:"), ext)
	}
}

// readInput reads a request document from path, or from stdin when path
// is "-".
func readInput(env *Env, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return nil, fmt.Errorf("cannot read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- user-specified input file
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("cannot read input file: %w", err)
	}
	return data, nil
}

// writeFileAtomic writes content to path atomically.
// It fails if the file already exists (O_EXCL), preventing accidental overwrites.
// On write failure, the partial file is removed.
func writeFileAtomic(path, content string) error {
	// #nosec G302 G304 -- user-specified output file with standard permissions
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("output file already exists: %s: %w", path, ErrOutputExists)
		}
		return fmt.Errorf("cannot create output file: %w", err)
	}

	writeErr := func() error {
		defer func() { _ = f.Close() }()
		if _, err := f.WriteString(content); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}()

	if writeErr != nil {
		_ = os.Remove(path)
		return writeErr
	}

	return nil
}
