package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-promptgen/internal/request"
	"github.com/alnah/go-promptgen/internal/template"
)

// Validation errors.
var (
	// ErrMissingField indicates a required form field was left blank.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidChoice indicates a value outside a field's closed vocabulary.
	ErrInvalidChoice = errors.New("invalid choice")
)

// validate runs the field rules derived from the form tables.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks req against its form. Every required field must be filled
// in (ErrMissingField, first missing field in form order), then every select
// and multi-select value must be one of the field's choices
// (ErrInvalidChoice). The AI tool is not checked: unknown tools fall back to
// the default. Template requests are also checked for a known name
// (template.ErrUnknown) and, for templates that need one, a platform.
func Validate(req request.Request) error {
	if req == nil {
		return fmt.Errorf("no request: %w", request.ErrInvalidInput)
	}

	f, err := formOf(req)
	if err != nil {
		return err
	}

	ptr := pointerTo(req)
	// An explicit PLATFORM value satisfies the platform field.
	if t, ok := ptr.(*request.Template); ok && strings.TrimSpace(t.Platform) == "" {
		t.Platform = t.Values[template.PlatformToken]
	}
	values := textFields(ptr)
	for _, fd := range f.Fields {
		if !fd.Required {
			continue
		}
		v, ok := values[fd.Name]
		if !ok {
			continue
		}
		if err := validate.Var(strings.TrimSpace(*v), "required"); err != nil {
			return fmt.Errorf("%s: %q: %w", req.Kind(), fd.Name, ErrMissingField)
		}
	}

	lists := listFields(ptr)
	for _, fd := range f.Fields {
		rule := choiceRule(fd)
		if rule == "" {
			continue
		}
		var err error
		if v, ok := values[fd.Name]; ok {
			err = validate.Var(*v, "omitempty,"+rule)
		} else if l, ok := lists[fd.Name]; ok {
			err = validate.Var(*l, "dive,"+rule)
		}
		if err != nil {
			return fmt.Errorf("%s: %q: %s is not one of %s: %w",
				req.Kind(), fd.Name, rejected(err), strings.Join(fd.Choices, ", "), ErrInvalidChoice)
		}
	}
	return nil
}

// choiceRule returns the oneof rule for a closed-vocabulary field, or "" for
// fields without one. Commas and pipes are hex-escaped so multi-word choices
// survive tag parsing.
func choiceRule(fd Field) string {
	if len(fd.Choices) == 0 || fd.Name == "aiTool" || fd.Name == "name" {
		return ""
	}
	quoted := make([]string, len(fd.Choices))
	for i, c := range fd.Choices {
		c = strings.ReplaceAll(c, ",", "0x2C")
		c = strings.ReplaceAll(c, "|", "0x7C")
		quoted[i] = "'" + c + "'"
	}
	return "oneof=" + strings.Join(quoted, " ")
}

// rejected quotes the value that failed a rule.
func rejected(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Sprintf("%q", verrs[0].Value())
	}
	return "value"
}

// WithDefaults returns a copy of req with blank select fields set to their
// form defaults. Select and multi-select values spelled in another case are
// rewritten to the choice's spelling ("witty" -> "Witty"); values that match
// no choice are left for Validate to reject. Free-text fields are untouched.
func WithDefaults(req request.Request) request.Request {
	if req == nil {
		return nil
	}
	f, err := For(req.Kind())
	if err != nil {
		return req
	}

	ptr := pointerTo(req)
	values := textFields(ptr)
	lists := listFields(ptr)
	for _, fd := range f.Fields {
		if fd.Name == "name" {
			continue
		}
		if v, ok := values[fd.Name]; ok && fd.Type == Select {
			if strings.TrimSpace(*v) == "" {
				*v = fd.Default
				continue
			}
			*v = canonical(fd.Choices, *v)
		}
		if l, ok := lists[fd.Name]; ok && len(*l) > 0 {
			items := make([]string, len(*l))
			for i, item := range *l {
				items[i] = canonical(fd.Choices, item)
			}
			*l = items
		}
	}
	return valueOf(ptr)
}

// canonical returns the choice equal to v ignoring case and surrounding
// space, or v unchanged.
func canonical(choices []string, v string) string {
	trimmed := strings.TrimSpace(v)
	for _, c := range choices {
		if strings.EqualFold(c, trimmed) {
			return c
		}
	}
	return v
}

// WithValue returns a copy of req with the named text field set to value
// when that field exists and is blank. Other requests are returned as is.
func WithValue(req request.Request, field, value string) request.Request {
	if req == nil || value == "" {
		return req
	}
	ptr := pointerTo(req)
	v, ok := textFields(ptr)[field]
	if !ok || strings.TrimSpace(*v) != "" {
		return req
	}
	*v = value
	return valueOf(ptr)
}

// formOf returns the form that governs req. Template requests resolve their
// template first so the platform requirement follows the chosen template.
func formOf(req request.Request) (Form, error) {
	t, ok := req.(request.Template)
	if !ok {
		return For(req.Kind())
	}
	if strings.TrimSpace(t.Name) == "" {
		return Form{}, fmt.Errorf("%s: %q: %w", req.Kind(), "name", ErrMissingField)
	}
	name, err := template.ParseName(t.Name)
	if err != nil {
		return Form{}, err
	}
	return ForTemplate(name), nil
}

// pointerTo copies req into a fresh value and returns a pointer to it.
func pointerTo(req request.Request) any {
	switch r := req.(type) {
	case request.Article:
		return &r
	case request.LinkedInPost:
		return &r
	case request.YouTubeScript:
		return &r
	case request.Research:
		return &r
	case request.LearnTopic:
		return &r
	case request.XPost:
		return &r
	case request.Template:
		return &r
	case request.Raw:
		return &r
	default:
		return nil
	}
}

func valueOf(ptr any) request.Request {
	switch p := ptr.(type) {
	case *request.Article:
		return *p
	case *request.LinkedInPost:
		return *p
	case *request.YouTubeScript:
		return *p
	case *request.Research:
		return *p
	case *request.LearnTopic:
		return *p
	case *request.XPost:
		return *p
	case *request.Template:
		return *p
	case *request.Raw:
		return *p
	default:
		return nil
	}
}

// textFields maps form field names to the string fields they bind to.
func textFields(ptr any) map[string]*string {
	switch p := ptr.(type) {
	case *request.Article:
		return map[string]*string{
			"topic": &p.Topic, "tone": &p.Tone, "platform": &p.Platform,
			"audience": &p.Audience, "length": &p.Length, "objectives": &p.Objectives,
		}
	case *request.LinkedInPost:
		return map[string]*string{
			"topic": &p.Topic, "tone": &p.Tone, "audience": &p.Audience, "cta": &p.CTA,
			"crossPromotion": &p.CrossPromotion, "aiTool": &p.AITool, "objective": &p.Objective,
		}
	case *request.YouTubeScript:
		return map[string]*string{
			"topic": &p.Topic, "tone": &p.Tone, "audience": &p.Audience, "length": &p.Length,
			"cta": &p.CTA, "crossPromotion": &p.CrossPromotion, "aiTool": &p.AITool, "objective": &p.Objective,
		}
	case *request.Research:
		return map[string]*string{
			"topic": &p.Topic, "scope": &p.Scope, "audience": &p.Audience, "purpose": &p.Purpose,
			"depth": &p.Depth, "crossReference": &p.CrossReference, "aiTool": &p.AITool, "objective": &p.Objective,
		}
	case *request.LearnTopic:
		return map[string]*string{
			"topic": &p.Topic, "knowledgeLevel": &p.KnowledgeLevel, "learningGoal": &p.LearningGoal,
			"audience": &p.Audience, "learningStyle": &p.LearningStyle,
			"crossReference": &p.CrossReference, "aiTool": &p.AITool, "objective": &p.Objective,
		}
	case *request.XPost:
		return map[string]*string{
			"topic": &p.Topic, "tone": &p.Tone, "audience": &p.Audience, "cta": &p.CTA,
			"crossPromotion": &p.CrossPromotion, "aiTool": &p.AITool, "objective": &p.Objective,
		}
	case *request.Template:
		return map[string]*string{"name": &p.Name, "topic": &p.Topic, "platform": &p.Platform}
	case *request.Raw:
		return map[string]*string{"prompt": (*string)(p)}
	default:
		return nil
	}
}

// listFields maps multi-select field names to the slices they bind to.
func listFields(ptr any) map[string]*[]string {
	switch p := ptr.(type) {
	case *request.Article:
		return map[string]*[]string{"features": &p.Features}
	case *request.LinkedInPost:
		return map[string]*[]string{"elements": &p.Elements}
	case *request.YouTubeScript:
		return map[string]*[]string{"elements": &p.Elements}
	case *request.Research:
		return map[string]*[]string{"elements": &p.Elements}
	case *request.LearnTopic:
		return map[string]*[]string{"elements": &p.Elements}
	case *request.XPost:
		return map[string]*[]string{"elements": &p.Elements}
	default:
		return nil
	}
}
