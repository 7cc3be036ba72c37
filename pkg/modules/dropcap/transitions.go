package dropcap

import (
	"github.com/goliatone/go-dropcap/pkg/css"
	"github.com/goliatone/go-dropcap/pkg/model"
)

// letterStyleFields maps each letter style field to the CSS property it
// drives.
var letterStyleFields = []struct {
	key      string
	property string
}{
	{FieldBackgroundColor, "background-color"},
	{FieldMargin, "margin"},
	{FieldPadding, "padding"},
}

// DeriveTransitions copies base and adds the letter style entries bound to
// selector. base is not modified.
func DeriveTransitions(selector string, base model.TransitionMap) model.TransitionMap {
	out := base.Clone()
	letter := css.Selector(selector, LetterChild)
	for _, entry := range letterStyleFields {
		out[entry.key] = model.TransitionProp{Property: entry.property, Selector: letter}
	}
	return out
}

// StyleSelectors derives the base, hover and sticky selectors of every
// letter style field.
func StyleSelectors(selector string) model.StyleSelectorSet {
	set := css.SelectorSet(selector, LetterChild)
	out := make(model.StyleSelectorSet, len(letterStyleFields))
	for _, entry := range letterStyleFields {
		out[entry.key] = set
	}
	return out
}
