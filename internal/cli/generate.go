package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/alnah/go-promptgen/internal/config"
	"github.com/alnah/go-promptgen/internal/form"
	"github.com/alnah/go-promptgen/internal/prompt"
	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
	"github.com/alnah/go-promptgen/internal/tool"
)

// fieldFlag binds a string flag to a form field. When a flag maps to
// differently named fields across kinds, the first field present in the
// kind's form wins.
type fieldFlag struct {
	flag   string
	fields []string
	usage  string
}

var fieldFlags = []fieldFlag{
	{"topic", []string{"topic"}, "Topic of the content"},
	{"tone", []string{"tone"}, "Tone (article, linkedin, youtube, x-post)"},
	{"audience", []string{"audience"}, "Target audience"},
	{"platform", []string{"platform"}, "Publishing platform (article, template)"},
	{"length", []string{"length"}, "Length (article, youtube)"},
	{"objective", []string{"objective", "objectives"}, "Custom objective"},
	{"cta", []string{"cta"}, "Call-to-action (linkedin, youtube, x-post)"},
	{"cross", []string{"crossPromotion", "crossReference"}, "Cross-promotion or cross-reference"},
	{"scope", []string{"scope"}, "Research scope"},
	{"purpose", []string{"purpose"}, "Research purpose"},
	{"depth", []string{"depth"}, "Research complexity level"},
	{"level", []string{"knowledgeLevel"}, "Knowledge level (learn)"},
	{"goal", []string{"learningGoal"}, "Learning goal (learn)"},
	{"style", []string{"learningStyle"}, "Learning style (learn)"},
	{"tool", []string{"aiTool"}, "Target AI tool: " + strings.Join(tool.Names(), ", ")},
	{"prompt", []string{"prompt"}, "Prompt text (raw)"},
	{"name", []string{"name"}, "Template name (template)"},
}

// Flags that do not bind to a single string field.
const (
	flagElement   = "element"
	flagTechnical = "technical"
	flagSet       = "set"
)

// generateOptions holds the parsed flags of the generate command.
type generateOptions struct {
	fields      map[string]*string
	elements    []string
	technical   bool
	sets        []string
	file        string
	interactive bool
	out         outputOptions
}

// GenerateCmd creates the generate command.
// The env parameter provides injectable dependencies for testing.
func GenerateCmd(env *Env) *cobra.Command {
	opts := generateOptions{fields: make(map[string]*string, len(fieldFlags))}

	cmd := &cobra.Command{
		Use:   "generate [kind]",
		Short: "Generate a prompt",
		Long: `Generate a prompt for an AI tool.

Fields come from flags, from a YAML or JSON request document (--file), or
from interactive questions (--interactive). Blank choice fields take their
form defaults; the AI tool defaults to the ai-tool setting, then Grok.

Kinds: article, linkedin, youtube, research, learn, x-post, template, raw.
With --file the kind may be omitted; it is then inferred from the document.`,
		Example: `  promptgen generate article --topic "Introduction to GraphQL" --element "Code Examples" --technical
  promptgen generate x-post --topic "Go 1.25" --tool ChatGPT --copy
  promptgen generate research --topic "Virtual threads" --scope "Comparative Study" -o brief.md
  promptgen generate --file request.yaml --stats
  cat request.json | promptgen generate learn --file -
  promptgen generate youtube --interactive`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, env, args, opts)
		},
	}

	fs := cmd.Flags()
	for _, ff := range fieldFlags {
		opts.fields[ff.flag] = fs.String(ff.flag, "", ff.usage)
	}
	fs.StringArrayVar(&opts.elements, flagElement, nil, "Content element or feature (repeatable)")
	fs.BoolVar(&opts.technical, flagTechnical, false, "Mark the article topic as technical")
	fs.StringArrayVar(&opts.sets, flagSet, nil, "Template placeholder value KEY=VALUE (repeatable)")
	fs.StringVarP(&opts.file, "file", "f", "", "Read the request from a YAML or JSON file (- for stdin)")
	fs.BoolVarP(&opts.interactive, "interactive", "i", false, "Ask for each field on the terminal")
	opts.out.register(fs)

	return cmd
}

// runGenerate executes the generate command.
// Validation order: output flags -> input source -> kind -> fields -> form.
func runGenerate(cmd *cobra.Command, env *Env, args []string, opts generateOptions) error {
	if err := opts.out.validate(); err != nil {
		return err
	}

	changed := changedFieldFlags(cmd.Flags())
	if opts.file != "" && (opts.interactive || len(changed) > 0) {
		return fmt.Errorf("--file cannot be combined with --interactive or field flags: %w", ErrFlagConflict)
	}
	if opts.file == "" && len(args) == 0 {
		return fmt.Errorf("a kind is required unless --file is given: %w", ErrFlagConflict)
	}

	cfg := loadConfig(env)

	var req request.Request
	var err error
	if opts.file != "" {
		req, err = readRequest(env, opts.file, args)
	} else {
		req, err = requestFromFlags(cmd.Flags(), env, args[0], opts)
	}
	if err != nil {
		return err
	}

	res, err := generate(env, cfg, req)
	if err != nil {
		return err
	}
	return emit(env, cfg, res, opts.out)
}

// readRequest decodes a request document. A kind argument, when present,
// types the document; otherwise it must describe itself.
func readRequest(env *Env, path string, args []string) (request.Request, error) {
	data, err := readInput(env, path)
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return request.Decode(data)
	}
	k, err := request.ParseKind(args[0])
	if err != nil {
		return nil, err
	}
	return request.DecodeAs(k, data)
}

// requestFromFlags builds a request of the named kind from field flags and,
// with --interactive, terminal answers.
func requestFromFlags(fs *pflag.FlagSet, env *Env, kindArg string, opts generateOptions) (request.Request, error) {
	k, err := request.ParseKind(kindArg)
	if err != nil {
		return nil, err
	}
	values, err := flagValues(fs, k, opts)
	if err != nil {
		return nil, err
	}
	if opts.interactive {
		if err := askInteractive(env, k, values); err != nil {
			return nil, err
		}
	}
	values[request.FieldKind] = k.String()
	return request.FromValue(values)
}

// flagValues maps the changed flags onto the field names of kind k.
// A flag that has no field in k's form is a conflict.
func flagValues(fs *pflag.FlagSet, k request.Kind, opts generateOptions) (map[string]any, error) {
	f, err := form.For(k)
	if err != nil {
		return nil, err
	}
	values := make(map[string]any)
	if k == request.KindRaw {
		values[request.FieldPrompt] = ""
	}

	for _, ff := range fieldFlags {
		if !fs.Changed(ff.flag) {
			continue
		}
		name, err := bindField(f, ff.flag, ff.fields...)
		if err != nil {
			return nil, err
		}
		v := *opts.fields[ff.flag]
		if ff.flag == "tool" {
			t, err := tool.Parse(v)
			if err != nil {
				return nil, err
			}
			v = t.String()
		}
		values[name] = v
	}

	if fs.Changed(flagElement) {
		name, err := bindField(f, flagElement, "features", "elements")
		if err != nil {
			return nil, err
		}
		values[name] = opts.elements
	}
	if fs.Changed(flagTechnical) {
		name, err := bindField(f, flagTechnical, "isTechnical")
		if err != nil {
			return nil, err
		}
		values[name] = opts.technical
	}
	if fs.Changed(flagSet) {
		if k != request.KindTemplate {
			return nil, fmt.Errorf("--%s does not apply to %s: %w", flagSet, k, ErrFlagConflict)
		}
		extra, err := parseAssignments(opts.sets)
		if err != nil {
			return nil, err
		}
		values["values"] = extra
	}
	return values, nil
}

// bindField returns the first of fields present in f.
func bindField(f form.Form, flag string, fields ...string) (string, error) {
	for _, name := range fields {
		if _, ok := f.Field(name); ok {
			return name, nil
		}
	}
	return "", fmt.Errorf("--%s does not apply to %s: %w", flag, f.Kind, ErrFlagConflict)
}

// changedFieldFlags returns the names of field flags set on the command line.
func changedFieldFlags(fs *pflag.FlagSet) []string {
	var names []string
	for _, ff := range fieldFlags {
		if fs.Changed(ff.flag) {
			names = append(names, ff.flag)
		}
	}
	for _, name := range []string{flagElement, flagTechnical, flagSet} {
		if fs.Changed(name) {
			names = append(names, name)
		}
	}
	return names
}

// parseAssignments parses KEY=VALUE pairs. Keys are placeholder names
// without brackets; values may contain '=' and commas.
func parseAssignments(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		key = strings.Trim(strings.TrimSpace(key), "[]")
		if !ok || key == "" {
			return nil, fmt.Errorf("%q: want KEY=VALUE: %w", p, ErrInvalidAssignment)
		}
		result[key] = value
	}
	return result, nil
}

// askInteractive fills values from terminal answers. Templates ask for the
// template name first so its placeholders can be offered.
func askInteractive(env *Env, k request.Kind, values map[string]any) error {
	if !env.IsTerminal(env.Stdin) {
		return ErrNotTerminal
	}
	p := newPrompter(env)

	f, err := form.For(k)
	if err != nil {
		return err
	}
	if k != request.KindTemplate {
		return p.fill(f, values)
	}

	nameField, _ := f.Field("name")
	answer, err := p.ask(nameField, values["name"])
	if err != nil {
		return err
	}
	name, err := template.ParseName(answer.(string))
	if err != nil {
		return err
	}
	values["name"] = name.String()

	extra, _ := values["values"].(map[string]string)
	if extra == nil {
		extra = make(map[string]string)
	}
	placeholders := name.Placeholders()

	tf := form.ForTemplate(name)
	_, _ = fmt.Fprintln(p.out, p.st.title.Render(tf.Title))
	for _, fd := range tf.Fields {
		switch {
		case fd.Name == "name":
			continue
		case slices.Contains(placeholders, fd.Name):
			v, err := p.askText(fd, extra[fd.Name])
			if err != nil {
				return err
			}
			if v != "" {
				extra[fd.Name] = v
			}
		default:
			v, err := p.ask(fd, values[fd.Name])
			if err != nil {
				return err
			}
			values[fd.Name] = v
		}
	}
	values["values"] = extra
	return nil
}

// generate applies the configured AI tool and form defaults, validates the
// request and builds the prompt.
func generate(env *Env, cfg config.Config, req request.Request) (prompt.Result, error) {
	req = form.WithValue(req, "aiTool", cfg.AITool)
	req = form.WithDefaults(req)
	if err := form.Validate(req); err != nil {
		return prompt.Result{}, err
	}
	res, err := prompt.Generate(req)
	if err != nil {
		return prompt.Result{}, err
	}
	env.Logger.Debug("Prompt generated",
		zap.String("kind", res.Kind.String()),
		zap.Int("chars", res.Stats.Characters),
		zap.Int("tokens", res.Stats.Tokens))
	return res, nil
}

// loadConfig loads the configuration, warning on stderr when it cannot.
func loadConfig(env *Env) config.Config {
	cfg, err := env.ConfigLoader.Load()
	if err != nil {
		_, _ = fmt.Fprintf(env.Stderr, "Warning: failed to load config: %v\n", err)
	}
	return cfg
}
