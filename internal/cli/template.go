package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
)

// TemplateCmd creates the template command.
// The env parameter provides injectable dependencies for testing.
func TemplateCmd(env *Env) *cobra.Command {
	var (
		topic    string
		platform string
		sets     []string
		out      outputOptions
	)

	cmd := &cobra.Command{
		Use:   "template <name>",
		Short: "Fill one of the static prompt templates",
		Long: `Fill one of the static long-form prompt templates.

[SPECIFIC TOPIC] is replaced with --topic. Other bracketed placeholders are
filled from --set KEY=VALUE; placeholders left without a value stay in the
prompt and are listed as a warning. --platform fills [PLATFORM] and is
required by templates that mention it.

Templates are named by title or by slug:
  ` + strings.Join(template.Names(), "\n  "),
		Example: `  promptgen template comprehensive-article-prompt --topic "Go generics"
  promptgen template "Engaging LinkedIn Post Prompt" --topic Recursion --platform Medium
  promptgen template youtube-and-instagram-reel-prompt --topic Recursion --platform TikTok --set "RELATED TOPIC=Iteration"
  promptgen template social-media-promotion-scripts --topic "My new course" --set LINK=https://example.com --copy`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTemplate(env, args[0], topic, platform, sets, out)
		},
	}

	cmd.Flags().StringVar(&topic, "topic", "", "Topic replacing [SPECIFIC TOPIC] (required)")
	cmd.Flags().StringVar(&platform, "platform", "", "Platform replacing [PLATFORM]")
	cmd.Flags().StringArrayVar(&sets, flagSet, nil, "Placeholder value KEY=VALUE (repeatable)")
	out.register(cmd.Flags())

	return cmd
}

// runTemplate fills the named template and writes the prompt.
func runTemplate(env *Env, nameArg, topic, platform string, sets []string, out outputOptions) error {
	if err := out.validate(); err != nil {
		return err
	}
	name, err := template.ParseName(nameArg)
	if err != nil {
		return err
	}
	values, err := parseAssignments(sets)
	if err != nil {
		return err
	}

	cfg := loadConfig(env)
	res, err := generate(env, cfg, request.Template{
		Name:     name.String(),
		Topic:    topic,
		Platform: platform,
		Values:   values,
	})
	if err != nil {
		return err
	}

	if missing := unfilledPlaceholders(name, values); len(missing) > 0 {
		st := newStyles(env, env.Stderr)
		_, _ = fmt.Fprintf(env.Stderr, "%s unfilled placeholders: %s\n",
			st.warning.Render("Warning:"), strings.Join(missing, ", "))
	}
	return emit(env, cfg, res, out)
}

// unfilledPlaceholders lists the placeholders of name without a value.
func unfilledPlaceholders(name template.Name, values map[string]string) []string {
	var missing []string
	for _, p := range name.Placeholders() {
		if values[p] == "" {
			missing = append(missing, p)
		}
	}
	return missing
}
