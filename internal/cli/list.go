package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alnah/go-promptgen/internal/form"
	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
	"github.com/alnah/go-promptgen/internal/tool"
)

// ListCmd creates the list command with subcommands.
// The env parameter provides injectable dependencies for testing.
func ListCmd(env *Env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List kinds, templates, AI tools and form fields",
		Example: `  promptgen list kinds
  promptgen list templates
  promptgen list tools
  promptgen list fields research
  promptgen list fields template --name youtube-and-instagram-reel-prompt`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "kinds",
		Short: "List request kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListKinds(env)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "templates",
		Short: "List static templates and their placeholders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListTemplates(env)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "tools",
		Short: "List target AI tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListTools(env)
		},
	})
	cmd.AddCommand(listFieldsCmd(env))

	return cmd
}

func listFieldsCmd(env *Env) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "fields <kind>",
		Short: "List the form fields of a kind",
		Long: `List the form fields of a kind with their choices and defaults.
Required fields are marked with *. For templates, --name includes the
placeholders of one template.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListFields(env, args[0], name)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Template name (template kind only)")
	return cmd
}

func runListKinds(env *Env) error {
	tw := newTable(env.Stdout)
	for _, k := range request.Kinds() {
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", k, k.Title())
	}
	return tw.Flush()
}

func runListTemplates(env *Env) error {
	tw := newTable(env.Stdout)
	for _, n := range template.Names() {
		name := template.MustParseName(n)
		var notes []string
		if name.RequiresPlatform() {
			notes = append(notes, "needs --platform")
		}
		if p := name.Placeholders(); len(p) > 0 {
			notes = append(notes, "placeholders: "+strings.Join(p, ", "))
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", name.Slug(), name, strings.Join(notes, "; "))
	}
	return tw.Flush()
}

func runListTools(env *Env) error {
	for _, n := range tool.Names() {
		if n == tool.Default.String() {
			_, _ = fmt.Fprintf(env.Stdout, "%s (default)\n", n)
			continue
		}
		_, _ = fmt.Fprintln(env.Stdout, n)
	}
	return nil
}

// runListFields prints one row per field: name, type, default and choices.
func runListFields(env *Env, kindArg, nameArg string) error {
	k, err := request.ParseKind(kindArg)
	if err != nil {
		return err
	}

	var f form.Form
	switch {
	case nameArg != "" && k != request.KindTemplate:
		return fmt.Errorf("--name applies to template only: %w", ErrFlagConflict)
	case nameArg != "":
		name, err := template.ParseName(nameArg)
		if err != nil {
			return err
		}
		f = form.ForTemplate(name)
	default:
		if f, err = form.For(k); err != nil {
			return err
		}
	}

	st := newStyles(env, env.Stdout)
	_, _ = fmt.Fprintln(env.Stdout, st.title.Render(f.Title))
	tw := newTable(env.Stdout)
	for _, fd := range f.Fields {
		label := fd.Name
		if fd.Required {
			label += "*"
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", label, fd.Type, fd.Default, strings.Join(fd.Choices, " | "))
	}
	return tw.Flush()
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
