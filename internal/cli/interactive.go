package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/alnah/go-promptgen/internal/form"
)

// errInputClosed is returned when stdin ends before every field is answered.
var errInputClosed = errors.New("input closed before the form was complete")

// prompter asks for form fields one line at a time. Questions go to out so
// stdout stays reserved for the generated prompt.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
	st  styles
}

func newPrompter(env *Env) *prompter {
	return &prompter{
		in:  bufio.NewScanner(env.Stdin),
		out: env.Stderr,
		st:  newStyles(env, env.Stderr),
	}
}

// fill asks for every field of f in form order and stores the answers in
// values. Existing entries in values are offered as defaults.
func (p *prompter) fill(f form.Form, values map[string]any) error {
	_, _ = fmt.Fprintln(p.out, p.st.title.Render(f.Title))
	for _, fd := range f.Fields {
		v, err := p.ask(fd, values[fd.Name])
		if err != nil {
			return err
		}
		values[fd.Name] = v
	}
	return nil
}

// ask asks for one field. An empty answer keeps current, or the field
// default when current is unset.
func (p *prompter) ask(fd form.Field, current any) (any, error) {
	switch fd.Type {
	case form.Bool:
		def, _ := current.(bool)
		return p.askBool(fd, def)
	case form.Multi:
		def, _ := current.([]string)
		return p.askMulti(fd, def)
	case form.Select:
		def, _ := current.(string)
		if def == "" {
			def = fd.Default
		}
		return p.askSelect(fd, def)
	default:
		def, _ := current.(string)
		return p.askText(fd, def)
	}
}

func (p *prompter) askText(fd form.Field, def string) (string, error) {
	hint := def
	if hint == "" && fd.Example != "" {
		hint = "e.g. " + fd.Example
	}
	line, err := p.readLine(fd, hint)
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (p *prompter) askSelect(fd form.Field, def string) (string, error) {
	p.printChoices(fd.Choices)
	for {
		line, err := p.readLine(fd, def)
		if err != nil {
			return "", err
		}
		if line == "" {
			return def, nil
		}
		if c, ok := pickChoice(fd.Choices, line); ok {
			return c, nil
		}
		_, _ = fmt.Fprintf(p.out, "%s pick a number or one of the listed values\n", p.st.warning.Render("Invalid choice:"))
	}
}

func (p *prompter) askMulti(fd form.Field, def []string) ([]string, error) {
	p.printChoices(fd.Choices)
	for {
		line, err := p.readLine(fd, strings.Join(def, ", "))
		if err != nil {
			return nil, err
		}
		if line == "" {
			return def, nil
		}
		picked, ok := pickChoices(fd.Choices, line)
		if ok {
			return picked, nil
		}
		_, _ = fmt.Fprintf(p.out, "%s separate numbers or values with commas\n", p.st.warning.Render("Invalid choice:"))
	}
}

func (p *prompter) askBool(fd form.Field, def bool) (bool, error) {
	hint := "y/N"
	if def {
		hint = "Y/n"
	}
	for {
		line, err := p.readLine(fd, hint)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// readLine prints the field label and returns the trimmed answer.
func (p *prompter) readLine(fd form.Field, hint string) (string, error) {
	label := fd.Label
	if fd.Required {
		label += "*"
	}
	if hint != "" {
		_, _ = fmt.Fprintf(p.out, "%s %s: ", p.st.label.Render(label), p.st.muted.Render("["+hint+"]"))
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", p.st.label.Render(label))
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("cannot read answer: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(p.in.Text()), nil
}

func (p *prompter) printChoices(choices []string) {
	for i, c := range choices {
		_, _ = fmt.Fprintf(p.out, "  %s %s\n", p.st.muted.Render(strconv.Itoa(i+1)+")"), c)
	}
}

// pickChoice resolves answer as a 1-based index or a case-insensitive value.
func pickChoice(choices []string, answer string) (string, bool) {
	answer = strings.TrimSpace(answer)
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], true
		}
		return "", false
	}
	for _, c := range choices {
		if strings.EqualFold(c, answer) {
			return c, true
		}
	}
	return "", false
}

// pickChoices resolves a comma-separated answer. Duplicates are dropped.
func pickChoices(choices []string, answer string) ([]string, bool) {
	var picked []string
	for part := range strings.SplitSeq(answer, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, ok := pickChoice(choices, part)
		if !ok {
			return nil, false
		}
		if !slices.Contains(picked, c) {
			picked = append(picked, c)
		}
	}
	return picked, len(picked) > 0
}
