package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-dropcap/pkg/model"
)

// ErrMissingTranslator is passed to the missing handler when no translator is
// configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated. args carries {"default": fallback} as its first element.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Catalog is an in-memory Translator keyed by locale, then message key.
type Catalog map[string]map[string]string

// Translate implements Translator. Messages are formatted with fmt when args
// are supplied.
func (c Catalog) Translate(locale, key string, args ...any) (string, error) {
	messages, ok := c[locale]
	if !ok {
		if base, _, found := strings.Cut(locale, "-"); found {
			messages, ok = c[base]
		}
	}
	if !ok {
		return "", fmt.Errorf("render: locale %q not in catalog", locale)
	}
	msg, ok := messages[key]
	if !ok {
		return "", fmt.Errorf("render: key %q missing for locale %q", key, locale)
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...), nil
	}
	return msg, nil
}

// LocalizeOptions selects the locale and translator for label lookup.
type LocalizeOptions struct {
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// Message keys are namespaced by module slug:
//
//	<slug>.name, <slug>.plural_name
//	<slug>.toggle.<key>, <slug>.font.<key>, <slug>.css.<key>
//	<slug>.field.<key>.label, <slug>.field.<key>.description
func messageKey(slug string, parts ...string) string {
	return slug + "." + strings.Join(parts, ".")
}

// LocalizeSchema translates the human-facing strings of schema in place.
// Declared strings are the fallback; translation failures are routed through
// opts.OnMissing.
func LocalizeSchema(schema *model.ModuleSchema, opts LocalizeOptions) {
	if schema == nil {
		return
	}
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = missingTranslationDefault
	}
	tr := func(key, fallback string) string {
		return translate(opts.Locale, key, fallback, opts.Translator, onMissing)
	}

	d := &schema.Descriptor
	slug := d.Slug
	d.Name = tr(messageKey(slug, "name"), d.Name)
	d.PluralName = tr(messageKey(slug, "plural_name"), d.PluralName)

	toggles := make(model.Toggles, len(d.Toggles))
	for tab, groups := range d.Toggles {
		localized := make([]model.ToggleGroup, len(groups))
		for i, group := range groups {
			group.Label = tr(messageKey(slug, "toggle", group.Key), group.Label)
			localized[i] = group
		}
		toggles[tab] = localized
	}
	d.Toggles = toggles

	fonts := make([]model.FontGroup, len(d.Advanced.Fonts))
	for i, font := range d.Advanced.Fonts {
		font.Label = tr(messageKey(slug, "font", font.Key), font.Label)
		fonts[i] = font
	}
	d.Advanced.Fonts = fonts

	slots := make([]model.CustomCSSSlot, len(d.CustomCSS))
	for i, slot := range d.CustomCSS {
		slot.Label = tr(messageKey(slug, "css", slot.Key), slot.Label)
		slots[i] = slot
	}
	d.CustomCSS = slots

	fields := make([]model.FieldSpec, len(schema.Fields))
	for i, field := range schema.Fields {
		field.Label = tr(messageKey(slug, "field", field.Key, "label"), field.Label)
		if field.Description != "" {
			field.Description = tr(messageKey(slug, "field", field.Key, "description"), field.Description)
		}
		fields[i] = field
	}
	schema.Fields = fields
}

// Localizer returns a model.Decorator applying LocalizeSchema.
func Localizer(opts LocalizeOptions) model.Decorator {
	return model.DecoratorFunc(func(schema *model.ModuleSchema) error {
		LocalizeSchema(schema, opts)
		return nil
	})
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}
	args := []any{map[string]any{"default": fallback}}
	if t == nil {
		return onMissing(locale, key, args, ErrMissingTranslator)
	}
	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, args, err)
}

func missingTranslationDefault(_ string, key string, args []any, _ error) string {
	if len(args) > 0 {
		if m, ok := args[0].(map[string]any); ok {
			if fallback, ok := m["default"].(string); ok && strings.TrimSpace(fallback) != "" {
				return fallback
			}
		}
	}
	return key
}
