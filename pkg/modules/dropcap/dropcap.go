package dropcap

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-dropcap/pkg/css"
	"github.com/goliatone/go-dropcap/pkg/model"
	"github.com/goliatone/go-dropcap/pkg/module"
	rendertemplate "github.com/goliatone/go-dropcap/pkg/render/template"
	"github.com/goliatone/go-dropcap/pkg/render/template/gotemplate"
	"github.com/goliatone/go-dropcap/pkg/sanitize"
	"github.com/goliatone/go-dropcap/pkg/style"
)

const templateName = "templates/dropcap"

// templateGlobals exposes the DOM classes to templates as "classes".
func templateGlobals() map[string]any {
	return map[string]any{
		"classes": map[string]any{
			"wrapper": ClassWrapper,
			"letter":  ClassLetter,
			"body":    ClassBody,
		},
	}
}

type Option func(*config)

type config struct {
	templateRenderer rendertemplate.TemplateRenderer
	templateDir      string
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateDir looks templates up in dir before the embedded ones, so a
// "templates/dropcap.tpl" placed there overrides the default markup.
func WithTemplateDir(dir string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(dir)
	}
}

// Module is the Drop Cap Text module.
type Module struct {
	templates rendertemplate.TemplateRenderer
}

var _ module.Module = (*Module)(nil)

// New constructs the module with the embedded templates unless a renderer is
// injected.
func New(options ...Option) (*Module, error) {
	cfg := config{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOpts := []gotemplate.Option{
			gotemplate.WithFS(TemplatesFS()),
			gotemplate.WithGlobalData(templateGlobals()),
		}
		if cfg.templateDir != "" {
			engineOpts = append(engineOpts, gotemplate.WithBaseDir(cfg.templateDir))
		}
		engine, err := gotemplate.New(engineOpts...)
		if err != nil {
			return nil, fmt.Errorf("dropcap: configure template renderer: %w", err)
		}
		return &Module{templates: engine}, nil
	}
	if err := renderer.GlobalContext(templateGlobals()); err != nil {
		return nil, fmt.Errorf("dropcap: seed template globals: %w", err)
	}
	return &Module{templates: renderer}, nil
}

// MustNew panics when New fails.
func MustNew(options ...Option) *Module {
	m, err := New(options...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Module) Descriptor() model.ModuleDescriptor {
	return Descriptor()
}

func (m *Module) Fields() []model.FieldSpec {
	return Fields()
}

func (m *Module) TransitionFields(base model.TransitionMap) model.TransitionMap {
	return DeriveTransitions(model.OrderClassToken, base)
}

// Render sanitizes the letter and body (req.Content wins over the content
// field when set), writes the letter background and
// spacing rules into req.Styles and returns the markup fragment.
func (m *Module) Render(ctx context.Context, req module.RenderRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if m.templates == nil {
		return "", fmt.Errorf("dropcap: template renderer is nil")
	}

	letter := sanitize.Text(req.Props.Get(FieldLetter))
	raw := req.Props.Get(FieldContent)
	if strings.TrimSpace(req.Content) != "" {
		raw = req.Content
	}
	body := sanitize.RichText(raw)

	// Style generation also sees raw attributes the host did not resolve.
	props := req.Props.Merge(req.Attrs)
	if req.Styles != nil {
		writeStyles(req.Styles, props)
	}

	out, err := m.templates.RenderTemplate(templateName, map[string]any{
		"letter": letter,
		"body":   body,
	})
	if err != nil {
		return "", fmt.Errorf("dropcap: render template: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func writeStyles(sink css.Sink, props style.Props) {
	letter := css.SelectorSet(model.OrderClassToken, LetterChild)

	style.Background(sink, style.BackgroundArgs{
		Base:  LetterBase,
		Props: props,
		Selectors: style.BackgroundSelectors{
			Default: letter.Base,
			Hover:   letter.Hover,
			Sticky:  letter.Sticky,
		},
		Flags: style.BackgroundFlags{Video: false, Pattern: false, Mask: false},
		Aliases: map[string]string{
			style.BackgroundColor: FieldBackgroundColor,
		},
		Important: true,
	})

	for _, entry := range []struct{ field, property string }{
		{FieldMargin, "margin"},
		{FieldPadding, "padding"},
	} {
		style.Spacing(sink, style.SpacingArgs{
			Field:         entry.field,
			Props:         props,
			Selector:      letter.Base,
			HoverSelector: letter.Hover,
			Property:      entry.property,
			Important:     true,
		})
	}
}
