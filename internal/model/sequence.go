package model

import (
	"fmt"
	"strings"
)

// FieldGroup is a named run of fields appended as a unit.
type FieldGroup struct {
	Name   string
	Fields []FieldSpec
}

// SequenceBuilder assembles an ordered field sequence from named groups. The
// groups keep their append order; fields keep their order inside a group.
// Empty labels are derived from the key with the configured labeler.
type SequenceBuilder struct {
	groups  []FieldGroup
	seen    map[string]string
	labeler func(string) string
	errs    []string
}

// NewSequenceBuilder returns an empty builder using DefaultLabeler.
func NewSequenceBuilder() *SequenceBuilder {
	return &SequenceBuilder{
		seen:    make(map[string]string),
		labeler: DefaultLabeler,
	}
}

// WithLabeler overrides the labeler used for fields without a label.
func (b *SequenceBuilder) WithLabeler(labeler func(string) string) *SequenceBuilder {
	if labeler != nil {
		b.labeler = labeler
	}
	return b
}

// Append adds a named group. Duplicate group names or field keys are
// recorded and reported by Build.
func (b *SequenceBuilder) Append(name string, fields ...FieldSpec) *SequenceBuilder {
	name = strings.TrimSpace(name)
	for _, group := range b.groups {
		if group.Name == name {
			b.errs = append(b.errs, fmt.Sprintf("group %q appended twice", name))
			return b
		}
	}

	group := FieldGroup{Name: name, Fields: make([]FieldSpec, 0, len(fields))}
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			b.errs = append(b.errs, fmt.Sprintf("group %q has a field without key", name))
			continue
		}
		if owner, exists := b.seen[key]; exists {
			b.errs = append(b.errs, fmt.Sprintf("field %q in group %q already declared by %q", key, name, owner))
			continue
		}
		b.seen[key] = name
		field.Key = key
		if field.Label == "" {
			field.Label = b.labeler(key)
		}
		group.Fields = append(group.Fields, field)
	}
	b.groups = append(b.groups, group)
	return b
}

// Groups returns the group names in append order.
func (b *SequenceBuilder) Groups() []string {
	names := make([]string, 0, len(b.groups))
	for _, group := range b.groups {
		names = append(names, group.Name)
	}
	return names
}

// Build flattens the groups into one sequence.
func (b *SequenceBuilder) Build() ([]FieldSpec, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("model: invalid field sequence: %s", strings.Join(b.errs, "; "))
	}
	total := 0
	for _, group := range b.groups {
		total += len(group.Fields)
	}
	out := make([]FieldSpec, 0, total)
	for _, group := range b.groups {
		out = append(out, group.Fields...)
	}
	return out, nil
}

// MustBuild panics when Build fails. Intended for static declarations.
func (b *SequenceBuilder) MustBuild() []FieldSpec {
	fields, err := b.Build()
	if err != nil {
		panic(err)
	}
	return fields
}

// FieldByKey finds a field in a sequence.
func FieldByKey(fields []FieldSpec, key string) (FieldSpec, bool) {
	for _, field := range fields {
		if field.Key == key {
			return field, true
		}
	}
	return FieldSpec{}, false
}

// Keys lists the keys of a sequence in order.
func Keys(fields []FieldSpec) []string {
	keys := make([]string, 0, len(fields))
	for _, field := range fields {
		keys = append(keys, field.Key)
	}
	return keys
}
