package dropcap

import (
	"github.com/goliatone/go-dropcap/pkg/css"
	"github.com/goliatone/go-dropcap/pkg/model"
)

const (
	Name       = "Drop Cap Text"
	PluralName = "Drop Cap Texts"
	Slug       = "dropcap_text"
	IconPath   = "icons/dropcap.svg"
)

// DOM classes emitted by the template, where they are read from the
// "classes" global.
const (
	ClassWrapper = "drop-cap-text"
	ClassLetter  = "drop-cap-letter"
	ClassBody    = "drop-cap-body"
)

// Child selectors relative to the module selector.
const (
	LetterChild = "div ." + ClassLetter
	BodyChild   = "div"
)

// Toggle group keys.
const (
	ToggleMainContent   = "main_content"
	ToggleDropCapLetter = "drop_cap_letter"
	ToggleBodyText      = "body_text"
)

// Font group keys.
const (
	FontDropCapLetter = "drop_cap_letter"
	FontBody          = "body"
)

// Descriptor returns the module identity bound to the order class token.
func Descriptor() model.ModuleDescriptor {
	return DescriptorFor(model.OrderClassToken)
}

// DescriptorFor builds the descriptor with selector as the module selector.
func DescriptorFor(selector string) model.ModuleDescriptor {
	return model.ModuleDescriptor{
		Name:       Name,
		PluralName: PluralName,
		Slug:       Slug,
		Icon:       IconPath,
		Selector:   selector,
		Toggles: model.Toggles{
			model.TabGeneral: {
				{Key: ToggleMainContent, Label: "Content"},
			},
			model.TabAdvanced: {
				{Key: ToggleDropCapLetter, Label: "Drop Cap Letter"},
				{Key: ToggleBodyText, Label: "Body Text"},
			},
		},
		Advanced: AdvancedFor(selector),
		CustomCSS: []model.CustomCSSSlot{
			{Key: "main_element", Label: "Main Element", Selector: selector},
			{Key: "drop_cap_letter", Label: "Drop Cap Letter", Selector: css.Selector(selector, LetterChild)},
			{Key: "body_text", Label: "Body Text", Selector: css.Selector(selector, BodyChild+" ."+ClassBody)},
		},
	}
}

// AdvancedFor declares the enabled style categories for selector.
func AdvancedFor(selector string) model.AdvancedFields {
	boxed := model.StyleCSS{Main: selector, Hover: css.Selector(selector, "", ":hover")}
	return model.AdvancedFields{
		Fonts: []model.FontGroup{
			{
				Key:    FontDropCapLetter,
				Label:  "Drop Cap Letter",
				Toggle: ToggleDropCapLetter,
				Main:   css.Selector(selector, LetterChild),
				Hover:  css.HoverSelector(selector, LetterChild),
			},
			{
				Key:    FontBody,
				Label:  "Body",
				Toggle: ToggleBodyText,
				Main:   css.Selector(selector, BodyChild),
				Hover:  css.HoverSelector(selector, BodyChild),
			},
		},
		Categories: map[model.StyleCategory]model.StyleCSS{
			model.StyleBackground:    boxed,
			model.StyleBorders:       boxed,
			model.StyleBoxShadow:     boxed,
			model.StyleMarginPadding: {Main: selector, Important: true},
			model.StyleMaxWidth:      {Main: selector},
			model.StyleHeight:        {Main: selector},
		},
	}
}
