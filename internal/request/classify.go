package request

import (
	"fmt"
	"slices"
	"sort"
)

// FieldKind is the optional document key that names the variant explicitly.
// When present it always wins over structural inference.
const FieldKind = "kind"

// FieldPrompt carries the prompt text of a tagged raw document.
const FieldPrompt = "prompt"

// rule pairs a kind with the field-presence predicate that identifies it.
type rule struct {
	kind  Kind
	match func(fields map[string]any) bool
}

// rules is evaluated in order and the first match wins.
//
// Field sets overlap (a YouTube script is a LinkedIn post plus "length"),
// so each predicate excludes the discriminating fields of the others and
// no two predicates can match the same well-formed document. X posts share
// the LinkedIn signature exactly and are reachable only through FieldKind.
var rules = []rule{
	{KindArticle, func(f map[string]any) bool {
		return has(f, "platform", "isTechnical", "features")
	}},
	{KindResearch, func(f map[string]any) bool {
		return has(f, "scope", "purpose", "depth")
	}},
	{KindLearn, func(f map[string]any) bool {
		return has(f, "knowledgeLevel", "learningGoal", "learningStyle")
	}},
	{KindYouTube, func(f map[string]any) bool {
		return has(f, "elements", "cta", "length") && lacks(f, "platform")
	}},
	{KindLinkedIn, func(f map[string]any) bool {
		return has(f, "elements", "cta") && lacks(f, "platform", "scope", "knowledgeLevel", "length")
	}},
	{KindTemplate, func(f map[string]any) bool {
		return has(f, "name", "topic") && lacks(f, "elements", "features")
	}},
}

// Classify reports which variant v holds.
//
// v may be a typed Request, a string (raw prompt passthrough), or a
// map[string]any as produced by the yaml and json decoders. Maps carrying
// FieldKind are classified by that tag; other maps go through the ordered
// field-presence rules. Returns ErrInvalidInput when nothing matches.
func Classify(v any) (Kind, error) {
	switch t := v.(type) {
	case nil:
		return "", fmt.Errorf("empty request: %w", ErrInvalidInput)
	case string:
		return KindRaw, nil
	case Request:
		return t.Kind(), nil
	case map[string]any:
		if tag, ok := t[FieldKind]; ok {
			s, ok := tag.(string)
			if !ok {
				return "", fmt.Errorf("%s must be a string, got %T: %w", FieldKind, tag, ErrInvalidInput)
			}
			return ParseKind(s)
		}
		for _, r := range rules {
			if r.match(t) {
				return r.kind, nil
			}
		}
		return "", fmt.Errorf("no request variant has fields %v: %w", sortedKeys(t), ErrInvalidInput)
	default:
		return "", fmt.Errorf("unsupported request value of type %T: %w", v, ErrInvalidInput)
	}
}

// matchingRules returns every structural rule that matches fields.
// Classification only uses the first; tests use all of them to prove the
// rules are disjoint.
func matchingRules(fields map[string]any) []Kind {
	var kinds []Kind
	for _, r := range rules {
		if r.match(fields) {
			kinds = append(kinds, r.kind)
		}
	}
	return kinds
}

func has(fields map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := fields[k]; !ok {
			return false
		}
	}
	return true
}

func lacks(fields map[string]any, keys ...string) bool {
	return !slices.ContainsFunc(keys, func(k string) bool {
		_, ok := fields[k]
		return ok
	})
}

func sortedKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
