package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dropcap/pkg/model"
	"github.com/goliatone/go-dropcap/pkg/style"
)

// Issue describes one rejected attribute.
type Issue struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

// Result captures validation outcomes.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Err returns nil for a valid result, otherwise an error listing the issues.
func (r Result) Err() error {
	if r.Valid {
		return nil
	}
	parts := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return fmt.Errorf("validation: %s", strings.Join(parts, "; "))
}

// ValidateAttributes checks attrs against the field schema, then checks every
// dimension of range-bounded fields (including responsive and state variants)
// against the declared bounds.
func ValidateAttributes(fields []model.FieldSpec, attrs map[string]string) Result {
	var issues []Issue

	schema := Schema(fields)
	value := make(map[string]any, len(attrs))
	for key, v := range attrs {
		value[key] = v
	}
	if err := schema.VisitJSON(value, openapi3.MultiErrors()); err != nil {
		issues = append(issues, schemaIssues(err, attrs)...)
	}

	for _, field := range fields {
		if field.Range == nil {
			continue
		}
		for _, key := range variantKeys(field.Key, attrs) {
			issues = append(issues, rangeIssues(field, key, attrs[key])...)
		}
	}

	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Field < issues[j].Field })
	return Result{Valid: len(issues) == 0, Issues: issues}
}

func schemaIssues(err error, attrs map[string]string) []Issue {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		var out []Issue
		for _, inner := range multi {
			out = append(out, schemaIssues(inner, attrs)...)
		}
		return out
	}
	var schemaErr *openapi3.SchemaError
	if errors.As(err, &schemaErr) {
		field := strings.Join(schemaErr.JSONPointer(), ".")
		return []Issue{{Field: field, Value: attrs[field], Message: schemaErr.Reason}}
	}
	return []Issue{{Message: err.Error()}}
}

func variantKeys(base string, attrs map[string]string) []string {
	var keys []string
	for key := range attrs {
		if key == base {
			keys = append(keys, key)
			continue
		}
		rest, ok := strings.CutPrefix(key, base)
		if ok && variantSuffix.MatchString(rest) && variantSuffix.FindString(rest) == rest {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys
}

func rangeIssues(field model.FieldSpec, key, raw string) []Issue {
	bounds := *field.Range
	check := func(side, value string) *Issue {
		if value == "" {
			return nil
		}
		number, _, ok := style.ParseDimension(value)
		if !ok || bounds.Contains(number) {
			return nil
		}
		label := key
		if side != "" {
			label = key + "." + side
		}
		return &Issue{
			Field:   label,
			Value:   value,
			Message: fmt.Sprintf("must be between %d and %d", bounds.Min, bounds.Max),
		}
	}

	var out []Issue
	switch field.Type {
	case model.FieldTypeMargin, model.FieldTypePadding:
		for _, side := range style.ParseSpacing(raw).Named() {
			if issue := check(side[0], side[1]); issue != nil {
				out = append(out, *issue)
			}
		}
	default:
		if issue := check("", strings.TrimSpace(raw)); issue != nil {
			out = append(out, *issue)
		}
	}
	return out
}
