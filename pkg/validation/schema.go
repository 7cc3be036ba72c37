// Package validation checks instance attributes against a module's declared
// fields. The field list is turned into an OpenAPI object schema; declared
// ranges are enforced per side on top of the schema check.
package validation

import (
	"regexp"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dropcap/pkg/model"
)

// Extension keys carried on generated property schemas.
const (
	ExtensionRange     = "x-range"
	ExtensionFieldType = "x-field-type"
)

var (
	dimensionPattern = `-?\d+(\.\d+)?(px|em|rem|%|vw|vh|deg)?`
	spacingPattern   = `^(|` + dimensionPattern + `|auto)(\|(|` + dimensionPattern + `|auto)){0,3}(\|(on|off|true|false)?){0,2}$`
	rangePattern     = `^(|` + dimensionPattern + `|[a-z]+(_[a-z]+)?)$`
	colorPattern     = `^(|#[0-9A-Fa-f]{3,8}|(rgb|rgba|hsl|hsla)\([^;{}]*\)|[A-Za-z]+)$`
	yesNoOptions     = []string{"on", "off"}

	variantSuffix = regexp.MustCompile(`(_tablet|_phone|__hover|__sticky)$`)
)

// Schema builds an object schema with one string property per field.
// Unknown attributes are allowed since hosts store responsive and state
// variants next to the declared keys.
func Schema(fields []model.FieldSpec) *openapi3.Schema {
	root := openapi3.NewObjectSchema()
	for _, field := range fields {
		if field.Key == "" {
			continue
		}
		root.WithProperty(field.Key, propertySchema(field))
	}
	return root
}

func propertySchema(field model.FieldSpec) *openapi3.Schema {
	prop := openapi3.NewStringSchema()
	prop.Title = field.Label
	prop.Description = field.Description
	if field.Default != "" {
		prop.Default = field.Default
	}
	prop.Extensions = map[string]any{ExtensionFieldType: string(field.Type)}

	switch field.Type {
	case model.FieldTypeSelect:
		prop.WithEnum(enumValues(field.Options)...)
	case model.FieldTypeYesNo:
		prop.WithEnum(enumValues(yesNoOptions)...)
	case model.FieldTypeColor:
		prop.WithPattern(colorPattern)
	case model.FieldTypeRange:
		prop.WithPattern(rangePattern)
	case model.FieldTypeMargin, model.FieldTypePadding:
		prop.WithPattern(spacingPattern)
	}

	if field.Range != nil {
		prop.Extensions[ExtensionRange] = map[string]any{
			"min":  field.Range.Min,
			"max":  field.Range.Max,
			"step": field.Range.Step,
		}
	}
	return prop
}

func enumValues(options []string) []any {
	out := make([]any, 0, len(options))
	for _, option := range options {
		out = append(out, option)
	}
	return out
}
