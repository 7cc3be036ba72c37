package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-dropcap/pkg/css"
	"github.com/goliatone/go-dropcap/pkg/model"
	"github.com/goliatone/go-dropcap/pkg/module"
	"github.com/goliatone/go-dropcap/pkg/render"
	"github.com/goliatone/go-dropcap/pkg/sanitize"
	"github.com/goliatone/go-dropcap/pkg/style"
	"github.com/goliatone/go-dropcap/pkg/visibility"
	"github.com/goliatone/go-dropcap/pkg/visibility/expr"
)

// Instance attributes the host itself interprets.
const (
	AttrModuleClass     = "module_class"
	AttrModuleID        = "module_id"
	AttrCustomCSSPrefix = "custom_css_"
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// Option configures a Host.
type Option func(*Host)

// WithLogger sets the structured logger. The default discards output.
func WithLogger(logger zerolog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// WithRegistry shares a module registry between hosts.
func WithRegistry(registry *module.Registry) Option {
	return func(h *Host) {
		if registry != nil {
			h.registry = registry
		}
	}
}

// WithTranslator enables label localization for Schema.
func WithTranslator(t render.Translator) Option {
	return func(h *Host) {
		h.translator = t
	}
}

// WithLocale sets the locale used for label lookup.
func WithLocale(locale string) Option {
	return func(h *Host) {
		h.locale = strings.TrimSpace(locale)
	}
}

// WithThemeSelector enables theme presets: manifest tokens named
// "<slug>.<field>" become field defaults.
func WithThemeSelector(selector ThemeSelector, name, variant string) Option {
	return func(h *Host) {
		h.themes = selector
		h.themeName = strings.TrimSpace(name)
		h.themeVariant = strings.TrimSpace(variant)
	}
}

// WithMetrics registers render metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(h *Host) {
		h.metricsReg = reg
	}
}

// WithIcons sets the filesystem module icon paths resolve against.
func WithIcons(fsys fs.FS) Option {
	return func(h *Host) {
		h.icons = fsys
	}
}

// WithDecorators appends schema decorators run after localization.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(h *Host) {
		h.decorators = append(h.decorators, decorators...)
	}
}

// WithVisibilityEvaluator replaces the show-if rule evaluator.
func WithVisibilityEvaluator(evaluator visibility.Evaluator) Option {
	return func(h *Host) {
		if evaluator != nil {
			h.evaluator = evaluator
		}
	}
}

// WithConfig applies locale, theme names and the inline catalog of cfg.
func WithConfig(cfg Config) Option {
	return func(h *Host) {
		if cfg.Locale != "" {
			h.locale = cfg.Locale
		}
		if cfg.Theme != "" {
			h.themeName = cfg.Theme
		}
		if cfg.Variant != "" {
			h.themeVariant = cfg.Variant
		}
		if len(cfg.Catalog) > 0 && h.translator == nil {
			h.translator = render.Catalog(cfg.Catalog)
		}
	}
}

// Host owns the module registry and the render collaborators. Render state
// lives on a Page; the host keeps a default one.
type Host struct {
	registry     *module.Registry
	logger       zerolog.Logger
	translator   render.Translator
	locale       string
	themes       ThemeSelector
	themeName    string
	themeVariant string
	icons        fs.FS
	decorators   []model.Decorator
	evaluator    visibility.Evaluator
	metricsReg   prometheus.Registerer
	metrics      *Metrics

	page *Page
}

// Fragment is the output of one instance render.
type Fragment struct {
	Slug       string `json:"slug"`
	OrderClass string `json:"orderClass"`
	HTML       string `json:"html"`
}

// New constructs a Host.
func New(options ...Option) (*Host, error) {
	h := &Host{
		registry:  module.NewRegistry(),
		logger:    zerolog.Nop(),
		locale:    "en",
		evaluator: expr.New(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(h)
		}
	}

	metrics, err := NewMetrics(h.metricsReg)
	if err != nil {
		return nil, fmt.Errorf("host: register metrics: %w", err)
	}
	h.metrics = metrics
	h.page = h.NewPage()
	return h, nil
}

// Registry exposes the module registry.
func (h *Host) Registry() *module.Registry {
	return h.registry
}

// Register adds a module type. Slug collisions fail with
// module.ErrDuplicateSlug.
func (h *Host) Register(m module.Module) (*module.Handle, error) {
	handle, err := h.registry.Register(m)
	if err != nil {
		h.logger.Error().Err(err).Msg("module registration failed")
		return nil, err
	}
	h.logger.Debug().Str("module", handle.Slug()).Int("fields", len(handle.Fields())).Msg("module registered")
	return handle, nil
}

// Schema returns the localized, decorated schema of slug.
func (h *Host) Schema(slug string) (model.ModuleSchema, error) {
	handle, err := h.registry.Get(slug)
	if err != nil {
		return model.ModuleSchema{}, err
	}
	schema := model.ModuleSchema{
		Descriptor: handle.Descriptor(),
		Fields:     handle.Fields(),
	}
	if h.translator != nil {
		render.LocalizeSchema(&schema, render.LocalizeOptions{
			Locale:     h.locale,
			Translator: h.translator,
		})
	}
	for _, decorator := range h.decorators {
		if err := decorator.Decorate(&schema); err != nil {
			return model.ModuleSchema{}, fmt.Errorf("host: decorate %q: %w", slug, err)
		}
	}
	return schema, nil
}

// Transitions returns the transition map of slug: the host defaults for its
// descriptor extended by the module.
func (h *Host) Transitions(slug string) (model.TransitionMap, error) {
	handle, err := h.registry.Get(slug)
	if err != nil {
		return nil, err
	}
	base := module.DefaultTransitions(handle.Descriptor())
	return handle.Module().TransitionFields(base), nil
}

// Icon resolves and sanitizes the SVG icon of slug.
func (h *Host) Icon(slug string) (string, error) {
	handle, err := h.registry.Get(slug)
	if err != nil {
		return "", err
	}
	if h.icons == nil {
		return "", errors.New("host: icon filesystem not configured")
	}
	data, err := fs.ReadFile(h.icons, handle.Descriptor().Icon)
	if err != nil {
		return "", fmt.Errorf("host: read icon for %q: %w", slug, err)
	}
	return sanitize.Icon(string(data)), nil
}

// ResolveProps resolves every declared field of slug: attribute value, else
// theme preset, else field default. Undeclared attributes are not copied.
func (h *Host) ResolveProps(slug string, attrs map[string]string) (style.Props, error) {
	handle, err := h.registry.Get(slug)
	if err != nil {
		return nil, err
	}
	presets := h.presets(handle.Slug())

	props := make(style.Props, len(handle.Fields()))
	for _, field := range handle.Fields() {
		if value, ok := attrs[field.Key]; ok {
			props[field.Key] = value
			continue
		}
		if value, ok := presets[field.Key]; ok {
			props[field.Key] = value
			continue
		}
		props[field.Key] = field.Default
	}
	return props, nil
}

// VisibleFields returns the localized fields of slug whose show-if rules hold
// for the resolved properties of attrs.
func (h *Host) VisibleFields(slug string, attrs map[string]string) ([]model.FieldSpec, error) {
	schema, err := h.Schema(slug)
	if err != nil {
		return nil, err
	}
	props, err := h.ResolveProps(slug, attrs)
	if err != nil {
		return nil, err
	}
	return visibility.Filter(h.evaluator, schema.Fields, props)
}

func (h *Host) presets(slug string) map[string]string {
	if h.themes == nil || h.themeName == "" {
		return nil
	}
	selection, err := h.themes.Select(h.themeName, h.themeVariant)
	if err != nil {
		h.logger.Warn().Err(err).Str("theme", h.themeName).Str("variant", h.themeVariant).Msg("theme selection failed, presets skipped")
		return nil
	}
	return presetsFor(presetTokens(selection), slug)
}

// RenderInstance renders one instance of slug on the host's default page.
// See Page.Render.
func (h *Host) RenderInstance(ctx context.Context, slug string, attrs map[string]string, content string) (Fragment, error) {
	return h.page.Render(ctx, slug, attrs, content)
}

func (h *Host) applyCustomCSS(sink css.Sink, descriptor model.ModuleDescriptor, attrs map[string]string, logger zerolog.Logger) {
	for _, slot := range descriptor.CustomCSS {
		raw := strings.TrimSpace(attrs[AttrCustomCSSPrefix+slot.Key])
		if raw == "" {
			continue
		}
		decls, err := css.ParseCustomCSS(raw)
		if err != nil {
			logger.Warn().Err(err).Str("slot", slot.Key).Msg("custom css ignored")
			continue
		}
		sink.AddRule(css.Rule{Selector: slot.Selector, Declarations: decls})
	}
}

// Stylesheet renders the CSS accumulated on the default page.
func (h *Host) Stylesheet() string {
	return h.page.Stylesheet()
}

// Rules returns the rules accumulated on the default page.
func (h *Host) Rules() []css.Rule {
	return h.page.Rules()
}

// Reset starts a new default page.
func (h *Host) Reset() {
	h.page.Reset()
}

func wrap(slug, orderClass string, attrs map[string]string, inner string) string {
	classes := []string{slug, strings.TrimPrefix(orderClass, ".")}
	for _, class := range strings.Fields(attrs[AttrModuleClass]) {
		if tokenPattern.MatchString(class) {
			classes = append(classes, class)
		}
	}

	var b strings.Builder
	b.WriteString(`<div`)
	if id := strings.TrimSpace(attrs[AttrModuleID]); tokenPattern.MatchString(id) {
		b.WriteString(` id="`)
		b.WriteString(id)
		b.WriteString(`"`)
	}
	b.WriteString(` class="`)
	b.WriteString(strings.Join(classes, " "))
	b.WriteString(`">`)
	b.WriteString(inner)
	b.WriteString(`</div>`)
	return b.String()
}

func copyAttrs(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for key, value := range attrs {
		out[key] = value
	}
	return out
}
