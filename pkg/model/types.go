package model

import internalmodel "github.com/goliatone/go-dropcap/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText       = internalmodel.FieldTypeText
	FieldTypeRichText   = internalmodel.FieldTypeRichText
	FieldTypeColor      = internalmodel.FieldTypeColor
	FieldTypeYesNo      = internalmodel.FieldTypeYesNo
	FieldTypeSelect     = internalmodel.FieldTypeSelect
	FieldTypeRange      = internalmodel.FieldTypeRange
	FieldTypeUpload     = internalmodel.FieldTypeUpload
	FieldTypeBackground = internalmodel.FieldTypeBackground
	FieldTypeMargin     = internalmodel.FieldTypeMargin
	FieldTypePadding    = internalmodel.FieldTypePadding
)

type Tab = internalmodel.Tab

const (
	TabGeneral  = internalmodel.TabGeneral
	TabAdvanced = internalmodel.TabAdvanced
)

const OrderClassToken = internalmodel.OrderClassToken

type StyleCategory = internalmodel.StyleCategory

const (
	StyleFonts         = internalmodel.StyleFonts
	StyleBackground    = internalmodel.StyleBackground
	StyleBorders       = internalmodel.StyleBorders
	StyleBoxShadow     = internalmodel.StyleBoxShadow
	StyleMarginPadding = internalmodel.StyleMarginPadding
	StyleMaxWidth      = internalmodel.StyleMaxWidth
	StyleHeight        = internalmodel.StyleHeight
)

type Range = internalmodel.Range
type FieldSpec = internalmodel.FieldSpec
type ToggleGroup = internalmodel.ToggleGroup
type Toggles = internalmodel.Toggles
type StyleCSS = internalmodel.StyleCSS
type FontGroup = internalmodel.FontGroup
type AdvancedFields = internalmodel.AdvancedFields
type CustomCSSSlot = internalmodel.CustomCSSSlot
type ModuleDescriptor = internalmodel.ModuleDescriptor
type ModuleSchema = internalmodel.ModuleSchema
type TransitionProp = internalmodel.TransitionProp
type TransitionMap = internalmodel.TransitionMap
type SelectorSet = internalmodel.SelectorSet
type StyleSelectorSet = internalmodel.StyleSelectorSet
type FieldGroup = internalmodel.FieldGroup

// FieldByKey finds a field in a sequence.
func FieldByKey(fields []FieldSpec, key string) (FieldSpec, bool) {
	return internalmodel.FieldByKey(fields, key)
}

// CloneFields deep-copies a field sequence.
func CloneFields(fields []FieldSpec) []FieldSpec {
	return internalmodel.CloneFields(fields)
}

// Keys lists the keys of a sequence in order.
func Keys(fields []FieldSpec) []string {
	return internalmodel.Keys(fields)
}

// DefaultLabeler derives a label from a field key.
func DefaultLabeler(key string) string {
	return internalmodel.DefaultLabeler(key)
}

// PrefixLabeler derives labels after stripping a shared key prefix.
func PrefixLabeler(prefix string) func(string) string {
	return internalmodel.PrefixLabeler(prefix)
}
