package module

import "github.com/goliatone/go-dropcap/pkg/model"

var fontTransitionProps = []struct {
	suffix   string
	property string
}{
	{"_text_color", "color"},
	{"_font_size", "font-size"},
	{"_letter_spacing", "letter-spacing"},
	{"_line_height", "line-height"},
	{"_text_shadow_style", "text-shadow"},
}

// FontTransitions derives the transition entries every font group gets by
// default, bound to the group's main selector.
func FontTransitions(fonts []model.FontGroup) model.TransitionMap {
	out := make(model.TransitionMap, len(fonts)*len(fontTransitionProps))
	for _, font := range fonts {
		if font.Key == "" || font.Main == "" {
			continue
		}
		for _, entry := range fontTransitionProps {
			out[font.Key+entry.suffix] = model.TransitionProp{
				Property: entry.property,
				Selector: font.Main,
			}
		}
	}
	return out
}

// DefaultTransitions is the host-provided base map for a descriptor: font
// group entries plus one entry per enabled box-level style category.
func DefaultTransitions(descriptor model.ModuleDescriptor) model.TransitionMap {
	out := FontTransitions(descriptor.Advanced.Fonts)
	categories := []struct {
		category model.StyleCategory
		key      string
		property string
	}{
		{model.StyleBackground, "background_color", "background-color"},
		{model.StyleBorders, "border_radii", "border-radius"},
		{model.StyleBoxShadow, "box_shadow_style", "box-shadow"},
		{model.StyleMaxWidth, "max_width", "max-width"},
		{model.StyleHeight, "height", "height"},
	}
	for _, entry := range categories {
		cfg, ok := descriptor.Advanced.Categories[entry.category]
		if !ok || cfg.Main == "" {
			continue
		}
		out[entry.key] = model.TransitionProp{Property: entry.property, Selector: cfg.Main}
	}
	return out
}
