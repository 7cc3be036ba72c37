package model

// FieldType enumerates the input kinds a module can declare.
type FieldType string

const (
	FieldTypeText       FieldType = "text"
	FieldTypeRichText   FieldType = "rich_text"
	FieldTypeColor      FieldType = "color"
	FieldTypeYesNo      FieldType = "yes_no"
	FieldTypeSelect     FieldType = "select"
	FieldTypeRange      FieldType = "range"
	FieldTypeUpload     FieldType = "upload"
	FieldTypeBackground FieldType = "background"
	FieldTypeMargin     FieldType = "custom_margin"
	FieldTypePadding    FieldType = "custom_padding"
)

// Tab identifies the settings panel tab a toggle group lives under.
type Tab string

const (
	TabGeneral  Tab = "general"
	TabAdvanced Tab = "advanced"
)

// OrderClassToken is replaced by the host with the per-instance order class.
const OrderClassToken = "%%order_class%%"

// Range declares numeric bounds for dimension fields. The host enforces them;
// modules only declare.
type Range struct {
	Min  int `json:"min" yaml:"min"`
	Max  int `json:"max" yaml:"max"`
	Step int `json:"step" yaml:"step"`
}

// Contains reports whether value lies within [Min, Max].
func (r Range) Contains(value float64) bool {
	return value >= float64(r.Min) && value <= float64(r.Max)
}

// FieldSpec describes one declared input. Keys are unique within a module;
// sequence order only affects UI placement.
type FieldSpec struct {
	Key         string            `json:"key" yaml:"key"`
	Label       string            `json:"label,omitempty" yaml:"label,omitempty"`
	Type        FieldType         `json:"type" yaml:"type"`
	Default     string            `json:"default,omitempty" yaml:"default,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Tab         Tab               `json:"tab" yaml:"tab"`
	Toggle      string            `json:"toggle" yaml:"toggle"`
	Options     []string          `json:"options,omitempty" yaml:"options,omitempty"`
	Range       *Range            `json:"range,omitempty" yaml:"range,omitempty"`
	Hoverable   bool              `json:"hoverable,omitempty" yaml:"hoverable,omitempty"`
	Responsive  bool              `json:"responsive,omitempty" yaml:"responsive,omitempty"`
	// ShowIf is a visibility rule over other property values, e.g.
	// "use_gradient == on". Empty means always shown.
	ShowIf      string            `json:"showIf,omitempty" yaml:"show_if,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Clone returns a copy sharing no memory with f.
func (f FieldSpec) Clone() FieldSpec {
	if f.Options != nil {
		f.Options = append([]string(nil), f.Options...)
	}
	if f.Range != nil {
		bounds := *f.Range
		f.Range = &bounds
	}
	if f.Metadata != nil {
		metadata := make(map[string]string, len(f.Metadata))
		for key, value := range f.Metadata {
			metadata[key] = value
		}
		f.Metadata = metadata
	}
	return f
}

// CloneFields deep-copies a field sequence.
func CloneFields(fields []FieldSpec) []FieldSpec {
	if fields == nil {
		return nil
	}
	out := make([]FieldSpec, len(fields))
	for i, field := range fields {
		out[i] = field.Clone()
	}
	return out
}

// ToggleGroup is a named section of the settings panel.
type ToggleGroup struct {
	Key   string `json:"key" yaml:"key"`
	Label string `json:"label" yaml:"label"`
}

// Toggles maps each tab to its ordered toggle groups.
type Toggles map[Tab][]ToggleGroup

// Label returns the label of the toggle group key under tab.
func (t Toggles) Label(tab Tab, key string) (string, bool) {
	for _, group := range t[tab] {
		if group.Key == key {
			return group.Label, true
		}
	}
	return "", false
}

// Clone returns an independent copy.
func (t Toggles) Clone() Toggles {
	if t == nil {
		return nil
	}
	out := make(Toggles, len(t))
	for tab, groups := range t {
		out[tab] = append([]ToggleGroup(nil), groups...)
	}
	return out
}

// StyleCategory names a bundle of builder-provided style controls.
type StyleCategory string

const (
	StyleFonts         StyleCategory = "fonts"
	StyleBackground    StyleCategory = "background"
	StyleBorders       StyleCategory = "borders"
	StyleBoxShadow     StyleCategory = "box_shadow"
	StyleMarginPadding StyleCategory = "margin_padding"
	StyleMaxWidth      StyleCategory = "max_width"
	StyleHeight        StyleCategory = "height"
)

// StyleCSS binds a style category to the selectors it targets.
type StyleCSS struct {
	Main      string `json:"main" yaml:"main"`
	Hover     string `json:"hover,omitempty" yaml:"hover,omitempty"`
	Important bool   `json:"important,omitempty" yaml:"important,omitempty"`
}

// FontGroup is one independently styled run of text.
type FontGroup struct {
	Key    string `json:"key" yaml:"key"`
	Label  string `json:"label" yaml:"label"`
	Toggle string `json:"toggle" yaml:"toggle"`
	Main   string `json:"main" yaml:"main"`
	Hover  string `json:"hover,omitempty" yaml:"hover,omitempty"`
}

// AdvancedFields declares the enabled advanced style categories.
type AdvancedFields struct {
	Fonts      []FontGroup                `json:"fonts,omitempty" yaml:"fonts,omitempty"`
	Categories map[StyleCategory]StyleCSS `json:"categories" yaml:"categories"`
}

// Enabled reports whether category is switched on.
func (a AdvancedFields) Enabled(category StyleCategory) bool {
	if category == StyleFonts {
		return len(a.Fonts) > 0
	}
	_, ok := a.Categories[category]
	return ok
}

// Clone returns an independent copy.
func (a AdvancedFields) Clone() AdvancedFields {
	if a.Fonts != nil {
		a.Fonts = append([]FontGroup(nil), a.Fonts...)
	}
	if a.Categories != nil {
		categories := make(map[StyleCategory]StyleCSS, len(a.Categories))
		for category, css := range a.Categories {
			categories[category] = css
		}
		a.Categories = categories
	}
	return a
}

// CustomCSSSlot exposes a free-form CSS box bound to one element.
type CustomCSSSlot struct {
	Key      string `json:"key" yaml:"key"`
	Label    string `json:"label" yaml:"label"`
	Selector string `json:"selector" yaml:"selector"`
}

// ModuleDescriptor is the static identity of a module type. Selector holds
// OrderClassToken until the host expands it per instance.
type ModuleDescriptor struct {
	Name       string          `json:"name" yaml:"name"`
	PluralName string          `json:"pluralName" yaml:"pluralName"`
	Slug       string          `json:"slug" yaml:"slug"`
	Icon       string          `json:"icon" yaml:"icon"`
	Selector   string          `json:"selector" yaml:"selector"`
	Toggles    Toggles         `json:"toggles" yaml:"toggles"`
	Advanced   AdvancedFields  `json:"advanced" yaml:"advanced"`
	CustomCSS  []CustomCSSSlot `json:"customCss,omitempty" yaml:"customCss,omitempty"`
}

// Clone returns a copy sharing no memory with d.
func (d ModuleDescriptor) Clone() ModuleDescriptor {
	d.Toggles = d.Toggles.Clone()
	d.Advanced = d.Advanced.Clone()
	if d.CustomCSS != nil {
		d.CustomCSS = append([]CustomCSSSlot(nil), d.CustomCSS...)
	}
	return d
}

// TransitionProp is the CSS property a field animates and where.
type TransitionProp struct {
	Property string `json:"property" yaml:"property"`
	Selector string `json:"selector" yaml:"selector"`
}

// TransitionMap is keyed by field key.
type TransitionMap map[string]TransitionProp

// Clone returns an independent copy.
func (m TransitionMap) Clone() TransitionMap {
	out := make(TransitionMap, len(m))
	for key, prop := range m {
		out[key] = prop
	}
	return out
}

// SelectorSet carries the state variants of a style selector.
type SelectorSet struct {
	Base   string `json:"base" yaml:"base"`
	Hover  string `json:"hover" yaml:"hover"`
	Sticky string `json:"sticky" yaml:"sticky"`
}

// StyleSelectorSet is derived per module, keyed by style field key.
type StyleSelectorSet map[string]SelectorSet

// ModuleSchema bundles a descriptor with its field sequence, the unit hosts
// expose to settings panels.
type ModuleSchema struct {
	Descriptor ModuleDescriptor `json:"descriptor" yaml:"descriptor"`
	Fields     []FieldSpec      `json:"fields" yaml:"fields"`
}
