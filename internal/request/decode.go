package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// FromValue converts an untyped request value into its concrete Request.
// See Classify for the accepted shapes. Unknown keys are ignored.
func FromValue(v any) (Request, error) {
	k, err := Classify(v)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case Request:
		return t, nil
	case string:
		return Raw(t), nil
	}

	fields := v.(map[string]any)
	if k == KindRaw {
		s, ok := fields[FieldPrompt].(string)
		if !ok {
			return nil, fmt.Errorf("raw request needs a %q string field: %w", FieldPrompt, ErrInvalidInput)
		}
		return Raw(s), nil
	}

	target, err := New(k)
	if err != nil {
		return nil, err
	}

	// Round-trip through yaml so field tags drive the mapping for both
	// yaml- and json-sourced maps.
	b, err := yaml.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("cannot encode %s request: %w", k, err)
	}
	if err := yaml.Unmarshal(b, target); err != nil {
		return nil, fmt.Errorf("malformed %s request: %v: %w", k, err, ErrInvalidInput)
	}
	return deref(target), nil
}

// Decode parses a single JSON or YAML document into a Request.
func Decode(data []byte) (Request, error) {
	v, err := parse(data)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}

// DecodeAs parses a single document as a request of kind k, for callers
// that already know the kind (a URL path, a CLI argument). A "kind" key in
// the document must agree with k. An empty document yields the zero request.
func DecodeAs(k Kind, data []byte) (Request, error) {
	k, err := ParseKind(string(k))
	if err != nil {
		return nil, err
	}
	v, err := parse(data)
	if err != nil {
		return nil, err
	}

	switch t := v.(type) {
	case nil:
		zero, _ := New(k)
		return deref(zero), nil
	case string:
		if k != KindRaw {
			return nil, fmt.Errorf("%s request must be a mapping: %w", k, ErrInvalidInput)
		}
		return Raw(t), nil
	case map[string]any:
		if tag, ok := t[FieldKind]; ok {
			s, _ := tag.(string)
			if tk, err := ParseKind(s); err != nil || tk != k {
				return nil, fmt.Errorf("document kind %v does not match %s: %w", tag, k, ErrInvalidInput)
			}
		}
		t[FieldKind] = string(k)
		return FromValue(t)
	default:
		return nil, fmt.Errorf("%s request must be a mapping, got %T: %w", k, v, ErrInvalidInput)
	}
}

// DecodeAll parses a stream of requests: a multi-document YAML stream,
// a top-level sequence, or a JSON array. Errors name the 1-based document.
func DecodeAll(data []byte) ([]Request, error) {
	var values []any

	if json.Valid(data) {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("malformed JSON: %v: %w", err, ErrInvalidInput)
		}
		values = flatten(values, v)
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		for {
			var v any
			err := dec.Decode(&v)
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return nil, fmt.Errorf("malformed YAML: %v: %w", err, ErrInvalidInput)
			}
			if v == nil {
				continue
			}
			values = flatten(values, v)
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("no requests found: %w", ErrInvalidInput)
	}

	reqs := make([]Request, 0, len(values))
	for i, v := range values {
		r, err := FromValue(v)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i+1, err)
		}
		reqs = append(reqs, r)
	}
	return reqs, nil
}

// parse decodes data as JSON when it is valid JSON, YAML otherwise.
// JSON is tried first because yaml rejects tab indentation that JSON allows.
func parse(data []byte) (any, error) {
	var v any
	if json.Valid(data) {
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("malformed JSON: %v: %w", err, ErrInvalidInput)
		}
		return v, nil
	}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("malformed YAML: %v: %w", err, ErrInvalidInput)
	}
	return v, nil
}

func flatten(dst []any, v any) []any {
	if seq, ok := v.([]any); ok {
		return append(dst, seq...)
	}
	return append(dst, v)
}
