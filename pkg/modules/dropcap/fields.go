package dropcap

import "github.com/goliatone/go-dropcap/pkg/model"

// Field keys.
const (
	FieldLetter  = "letter"
	FieldContent = "content"

	// LetterBase prefixes every drop cap letter style field.
	LetterBase = "drop_cap_letter"

	FieldBackground              = LetterBase + "_background"
	FieldBackgroundColor         = LetterBase + "_background_color"
	FieldBackgroundUseGradient   = LetterBase + "_background_use_color_gradient"
	FieldBackgroundGradientType  = LetterBase + "_background_color_gradient_type"
	FieldBackgroundGradientDir   = LetterBase + "_background_color_gradient_direction"
	FieldBackgroundGradientStart = LetterBase + "_background_color_gradient_start"
	FieldBackgroundGradientEnd   = LetterBase + "_background_color_gradient_end"
	FieldBackgroundImage         = LetterBase + "_background_image"
	FieldBackgroundSize          = LetterBase + "_background_size"
	FieldBackgroundPosition      = LetterBase + "_background_position"
	FieldBackgroundRepeat        = LetterBase + "_background_repeat"
	FieldBackgroundBlend         = LetterBase + "_background_blend"

	FieldMargin  = LetterBase + "_margin"
	FieldPadding = LetterBase + "_padding"
)

// DefaultLetter is shown until the user types a letter.
const DefaultLetter = "D"

// Field group names, in sequence order.
const (
	GroupContent    = "content"
	GroupBackground = "background"
	GroupSpacing    = "spacing"
)

// SpacingRange bounds each side of the margin and padding fields.
var SpacingRange = model.Range{Min: 1, Max: 100, Step: 1}

// Fields returns the field schema: content fields, then the drop cap
// background group, then spacing.
func Fields() []model.FieldSpec {
	return model.NewSequenceBuilder(model.WithLabeler(model.PrefixLabeler(LetterBase))).
		Append(GroupContent, contentFields()...).
		Append(GroupBackground, backgroundFields()...).
		Append(GroupSpacing, spacingFields()...).
		MustBuild()
}

func contentFields() []model.FieldSpec {
	return []model.FieldSpec{
		{
			Key:         FieldLetter,
			Label:       "Letter",
			Type:        model.FieldTypeText,
			Default:     DefaultLetter,
			Description: "The letter displayed as the drop cap.",
			Tab:         model.TabGeneral,
			Toggle:      ToggleMainContent,
		},
		{
			Key:         FieldContent,
			Label:       "Body",
			Type:        model.FieldTypeRichText,
			Description: "Text that follows the drop cap letter.",
			Tab:         model.TabGeneral,
			Toggle:      ToggleMainContent,
		},
	}
}

func backgroundFields() []model.FieldSpec {
	field := func(key string, kind model.FieldType, def string, options ...string) model.FieldSpec {
		return model.FieldSpec{
			Key:     key,
			Type:    kind,
			Default: def,
			Tab:     model.TabAdvanced,
			Toggle:  ToggleDropCapLetter,
			Options: options,
		}
	}

	group := field(FieldBackground, model.FieldTypeBackground, "")
	group.Description = "Background behind the drop cap letter."
	group.Metadata = map[string]string{
		"base_name": LetterBase,
		"video":     "off",
		"pattern":   "off",
		"mask":      "off",
	}

	color := field(FieldBackgroundColor, model.FieldTypeColor, "")
	color.Hoverable = true
	color.Responsive = true

	image := field(FieldBackgroundImage, model.FieldTypeUpload, "")
	image.Responsive = true

	gradient := func(key string, kind model.FieldType, def string, options ...string) model.FieldSpec {
		spec := field(key, kind, def, options...)
		spec.ShowIf = FieldBackgroundUseGradient
		return spec
	}

	return []model.FieldSpec{
		group,
		color,
		field(FieldBackgroundUseGradient, model.FieldTypeYesNo, "off", "off", "on"),
		gradient(FieldBackgroundGradientType, model.FieldTypeSelect, "linear", "linear", "radial"),
		gradient(FieldBackgroundGradientDir, model.FieldTypeRange, "180deg"),
		gradient(FieldBackgroundGradientStart, model.FieldTypeColor, "#2b87da"),
		gradient(FieldBackgroundGradientEnd, model.FieldTypeColor, "#29c4a9"),
		image,
		field(FieldBackgroundSize, model.FieldTypeSelect, "cover", "cover", "contain", "initial"),
		field(FieldBackgroundPosition, model.FieldTypeSelect, "center",
			"top_left", "top_center", "top_right",
			"center_left", "center", "center_right",
			"bottom_left", "bottom_center", "bottom_right"),
		field(FieldBackgroundRepeat, model.FieldTypeSelect, "no-repeat",
			"no-repeat", "repeat", "repeat-x", "repeat-y", "space", "round"),
		field(FieldBackgroundBlend, model.FieldTypeSelect, "normal",
			"normal", "multiply", "screen", "overlay", "darken", "lighten",
			"color-dodge", "color-burn", "hard-light", "soft-light",
			"difference", "exclusion", "hue", "saturation", "color", "luminosity"),
	}
}

func spacingFields() []model.FieldSpec {
	spacing := func(key string, kind model.FieldType, property, description string) model.FieldSpec {
		bounds := SpacingRange
		return model.FieldSpec{
			Key:         key,
			Type:        kind,
			Description: description,
			Tab:         model.TabAdvanced,
			Toggle:      ToggleDropCapLetter,
			Range:       &bounds,
			Hoverable:   true,
			Responsive:  true,
			Metadata:    map[string]string{"css_property": property},
		}
	}
	return []model.FieldSpec{
		spacing(FieldMargin, model.FieldTypeMargin, "margin", "Space around the drop cap letter."),
		spacing(FieldPadding, model.FieldTypePadding, "padding", "Space inside the drop cap letter box."),
	}
}
