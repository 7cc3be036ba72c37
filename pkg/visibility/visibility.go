// Package visibility decides which fields a builder shows for the current
// property values. Fields carry a ShowIf rule; an Evaluator interprets it.
package visibility

import (
	"fmt"

	"github.com/goliatone/go-dropcap/pkg/model"
)

// Evaluator determines whether a field is visible given its rule and the
// current property values.
type Evaluator interface {
	Eval(field, rule string, values map[string]string) (bool, error)
}

// EvaluatorFunc adapts a function into an Evaluator.
type EvaluatorFunc func(field, rule string, values map[string]string) (bool, error)

// Eval delegates to the underlying function.
func (fn EvaluatorFunc) Eval(field, rule string, values map[string]string) (bool, error) {
	return fn(field, rule, values)
}

// Filter returns the fields whose rule holds, in declaration order. Fields
// without a rule are always visible.
func Filter(evaluator Evaluator, fields []model.FieldSpec, values map[string]string) ([]model.FieldSpec, error) {
	out := make([]model.FieldSpec, 0, len(fields))
	for _, field := range fields {
		if field.ShowIf == "" || evaluator == nil {
			out = append(out, field)
			continue
		}
		ok, err := evaluator.Eval(field.Key, field.ShowIf, values)
		if err != nil {
			return nil, fmt.Errorf("visibility: field %q: %w", field.Key, err)
		}
		if ok {
			out = append(out, field)
		}
	}
	return out, nil
}
