package host_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-dropcap/pkg/css"
	"github.com/goliatone/go-dropcap/pkg/host"
	"github.com/goliatone/go-dropcap/pkg/model"
	"github.com/goliatone/go-dropcap/pkg/module"
	"github.com/goliatone/go-dropcap/pkg/modules/dropcap"
)

func newHost(t *testing.T, opts ...host.Option) *host.Host {
	t.Helper()

	h, err := host.New(append([]host.Option{host.WithIcons(dropcap.IconsFS())}, opts...)...)
	if err != nil {
		t.Fatalf("new host: %v", err)
	}
	if _, err := h.Register(dropcap.MustNew()); err != nil {
		t.Fatalf("register: %v", err)
	}
	return h
}

func TestRenderInstanceAllocatesOrderClasses(t *testing.T) {
	h := newHost(t)
	ctx := context.Background()

	first, err := h.RenderInstance(ctx, dropcap.Slug, nil, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	second, err := h.RenderInstance(ctx, dropcap.Slug, nil, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if first.OrderClass != ".dropcap_text_0" || second.OrderClass != ".dropcap_text_1" {
		t.Fatalf("order classes = %q, %q", first.OrderClass, second.OrderClass)
	}

	want := `<div class="dropcap_text dropcap_text_0"><div class="drop-cap-text"><span class="drop-cap-letter">D</span><span class="drop-cap-body"></span></div></div>`
	if first.HTML != want {
		t.Fatalf("html mismatch\nwant: %s\n got: %s", want, first.HTML)
	}
	if h.Stylesheet() != "" {
		t.Fatalf("defaults should not produce css, got %q", h.Stylesheet())
	}

	h.Reset()
	again, err := h.RenderInstance(ctx, dropcap.Slug, nil, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if again.OrderClass != ".dropcap_text_0" {
		t.Fatalf("Reset did not restart counters: %q", again.OrderClass)
	}
}

func TestRenderInstanceScopesStyles(t *testing.T) {
	h := newHost(t)

	_, err := h.RenderInstance(context.Background(), dropcap.Slug, map[string]string{
		"drop_cap_letter_background_color":             "#ff0000",
		"drop_cap_letter_background_color_phone":       "#00ff00",
		"drop_cap_letter_background_color_last_edited": "on|phone",
		"drop_cap_letter_padding":                      "5px|||",
	}, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	letter := ".dropcap_text_0 div .drop-cap-letter"
	want := []css.Rule{
		{Selector: letter, Declarations: []css.Declaration{
			{Property: "background-color", Value: "#ff0000", Important: true},
			{Property: "padding-top", Value: "5px", Important: true},
		}},
		{Selector: letter, Media: css.MediaPhone, Declarations: []css.Declaration{
			{Property: "background-color", Value: "#00ff00", Important: true},
		}},
	}
	if diff := cmp.Diff(want, h.Rules()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}

	sheet := h.Stylesheet()
	if !strings.Contains(sheet, "@media only screen and (max-width: 767px) {") {
		t.Fatalf("stylesheet missing phone block:\n%s", sheet)
	}
	if strings.Contains(sheet, model.OrderClassToken) {
		t.Fatalf("order class token left in stylesheet:\n%s", sheet)
	}
}

func TestRenderInstanceWrapperAttributes(t *testing.T) {
	h := newHost(t)

	fragment, err := h.RenderInstance(context.Background(), dropcap.Slug, map[string]string{
		host.AttrModuleID:    "hero",
		host.AttrModuleClass: "intro bad\"class",
	}, "<em>Once</em> upon a time")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	prefix := `<div id="hero" class="dropcap_text dropcap_text_0 intro">`
	if !strings.HasPrefix(fragment.HTML, prefix) {
		t.Fatalf("wrapper mismatch: %s", fragment.HTML)
	}
	if !strings.Contains(fragment.HTML, `<span class="drop-cap-body"><em>Once</em> upon a time</span>`) {
		t.Fatalf("content not rendered: %s", fragment.HTML)
	}
}

func TestRenderInstanceCustomCSS(t *testing.T) {
	h := newHost(t)

	_, err := h.RenderInstance(context.Background(), dropcap.Slug, map[string]string{
		"custom_css_drop_cap_letter": "color: #333; font-size: 3em",
		"custom_css_main_element":    "width: expression(alert(1))",
	}, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []css.Rule{
		{Selector: ".dropcap_text_0 div .drop-cap-letter", Declarations: []css.Declaration{
			{Property: "color", Value: "#333"},
			{Property: "font-size", Value: "3em"},
		}},
	}
	if diff := cmp.Diff(want, h.Rules()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderInstanceUnknownModule(t *testing.T) {
	h := newHost(t)

	_, err := h.RenderInstance(context.Background(), "missing", nil, "")
	if !errors.Is(err, module.ErrUnknownModule) {
		t.Fatalf("expected ErrUnknownModule, got %v", err)
	}
}

func TestPagesAreIndependent(t *testing.T) {
	h := newHost(t)
	ctx := context.Background()
	attrs := map[string]string{"drop_cap_letter_background_color": "#000000"}

	a, b := h.NewPage(), h.NewPage()
	fa, err := a.Render(ctx, dropcap.Slug, attrs, "")
	if err != nil {
		t.Fatalf("render a: %v", err)
	}
	fb, err := b.Render(ctx, dropcap.Slug, attrs, "")
	if err != nil {
		t.Fatalf("render b: %v", err)
	}

	if fa.OrderClass != fb.OrderClass {
		t.Fatalf("pages share counters: %q vs %q", fa.OrderClass, fb.OrderClass)
	}
	if len(a.Rules()) != 1 || len(b.Rules()) != 1 || len(h.Rules()) != 0 {
		t.Fatalf("pages share stylesheets: %d %d %d", len(a.Rules()), len(b.Rules()), len(h.Rules()))
	}
}

type failingModule struct {
	*dropcap.Module
}

func (failingModule) Descriptor() model.ModuleDescriptor {
	desc := dropcap.Descriptor()
	desc.Slug = "broken_text"
	return desc
}

func (failingModule) Render(_ context.Context, req module.RenderRequest) (string, error) {
	req.Styles.AddRule(css.Rule{Selector: "%%order_class%%", Declarations: []css.Declaration{{Property: "color", Value: "red"}}})
	return "", errors.New("template exploded")
}

func TestRenderFailureDegradesToEmptyFragment(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := newHost(t, host.WithMetrics(reg))
	if _, err := h.Register(failingModule{dropcap.MustNew()}); err != nil {
		t.Fatalf("register: %v", err)
	}

	fragment, err := h.RenderInstance(context.Background(), "broken_text", nil, "")
	if err != nil {
		t.Fatalf("render should degrade, got %v", err)
	}
	if fragment.HTML != "" || fragment.OrderClass != ".broken_text_0" {
		t.Fatalf("unexpected fragment %+v", fragment)
	}
	if len(h.Rules()) != 0 {
		t.Fatalf("failed render leaked rules: %+v", h.Rules())
	}

	if _, err := h.RenderInstance(context.Background(), dropcap.Slug, nil, ""); err != nil {
		t.Fatalf("render: %v", err)
	}

	if got := counterValue(t, reg, "dropcap_render_errors_total", "broken_text"); got != 1 {
		t.Fatalf("error counter = %v, want 1", got)
	}
	if got := counterValue(t, reg, "dropcap_renders_total", "broken_text"); got != 1 {
		t.Fatalf("render counter broken_text = %v, want 1", got)
	}
	if got := counterValue(t, reg, "dropcap_renders_total", dropcap.Slug); got != 1 {
		t.Fatalf("render counter dropcap_text = %v, want 1", got)
	}
}

func TestHostsShareMetricsRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	newHost(t, host.WithMetrics(reg))
	newHost(t, host.WithMetrics(reg))
}

func counterValue(t *testing.T, gatherer prometheus.Gatherer, name, moduleLabel string) float64 {
	t.Helper()

	families, err := gatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "module" && label.GetValue() == moduleLabel {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

type stubSelector struct {
	selection *theme.Selection
	err       error
}

func (s stubSelector) Select(string, string, ...theme.QueryOption) (*theme.Selection, error) {
	return s.selection, s.err
}

func TestResolvePropsPrecedence(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "acme",
		Version: "1.0.0",
		Tokens: map[string]string{
			"dropcap_text.letter":                           "T",
			"dropcap_text.drop_cap_letter_background_color": "#abcdef",
			"other_module.letter":                           "X",
		},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"dropcap_text.letter": "K"}},
		},
	}
	selector := stubSelector{selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest}}
	h := newHost(t, host.WithThemeSelector(selector, "acme", "dark"))

	props, err := h.ResolveProps(dropcap.Slug, map[string]string{
		"drop_cap_letter_background_color": "#111111",
		"undeclared":                       "ignored",
	})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if props["letter"] != "K" {
		t.Fatalf("variant preset should win over base token, got %q", props["letter"])
	}
	if props["drop_cap_letter_background_color"] != "#111111" {
		t.Fatalf("attribute should win over preset, got %q", props["drop_cap_letter_background_color"])
	}
	if props["drop_cap_letter_background_size"] != "cover" {
		t.Fatalf("field default missing, got %q", props["drop_cap_letter_background_size"])
	}
	if _, ok := props["undeclared"]; ok {
		t.Fatalf("undeclared attribute copied into props")
	}
	if len(props) != len(dropcap.Fields()) {
		t.Fatalf("expected one prop per field, got %d", len(props))
	}
}

func TestResolvePropsSelectorFailureFallsBackToDefaults(t *testing.T) {
	h := newHost(t, host.WithThemeSelector(stubSelector{err: errors.New("no theme")}, "acme", ""))

	props, err := h.ResolveProps(dropcap.Slug, nil)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if props["letter"] != dropcap.DefaultLetter {
		t.Fatalf("letter = %q", props["letter"])
	}
}

func TestManifestSelector(t *testing.T) {
	manifest := &theme.Manifest{
		Name:      "acme",
		Version:   "1.0.0",
		Tokens:    map[string]string{"dropcap_text.letter": "A"},
		Templates: map[string]string{},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"dropcap_text.letter": "Z"}},
		},
	}
	selector, err := host.NewManifestSelector(manifest)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	selection, err := selector.Select("acme", "dark")
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if selection.Variant != "dark" || selection.Manifest != manifest {
		t.Fatalf("unexpected selection %+v", selection)
	}

	selection, err = selector.Select("acme", "sepia")
	if err != nil {
		t.Fatalf("select unknown variant: %v", err)
	}
	if selection.Variant != "" {
		t.Fatalf("unknown variant should fall back to base, got %q", selection.Variant)
	}

	if _, err := selector.Select("missing", ""); err == nil {
		t.Fatalf("expected error for unknown theme")
	}

	h := newHost(t, host.WithThemeSelector(selector, "acme", "dark"))
	fragment, err := h.RenderInstance(context.Background(), dropcap.Slug, nil, "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(fragment.HTML, `<span class="drop-cap-letter">Z</span>`) {
		t.Fatalf("preset letter not rendered: %s", fragment.HTML)
	}
}

func TestSchemaLocalizedFromConfigCatalog(t *testing.T) {
	cfg := host.DefaultConfig()
	cfg.Locale = "es"
	cfg.Catalog = map[string]map[string]string{
		"es": {"dropcap_text.name": "Texto capitular"},
	}
	h := newHost(t, host.WithConfig(cfg))

	schema, err := h.Schema(dropcap.Slug)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if schema.Descriptor.Name != "Texto capitular" {
		t.Fatalf("name = %q", schema.Descriptor.Name)
	}
	if schema.Fields[0].Label != "Letter" {
		t.Fatalf("untranslated label should fall back, got %q", schema.Fields[0].Label)
	}
}

func TestSchemaDecorators(t *testing.T) {
	h := newHost(t, host.WithDecorators(model.DecoratorFunc(func(s *model.ModuleSchema) error {
		s.Fields = s.Fields[:1]
		return nil
	})))

	schema, err := h.Schema(dropcap.Slug)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}
	if len(schema.Fields) != 1 {
		t.Fatalf("decorator not applied, %d fields", len(schema.Fields))
	}

	failing := newHost(t, host.WithDecorators(model.DecoratorFunc(func(*model.ModuleSchema) error {
		return errors.New("nope")
	})))
	if _, err := failing.Schema(dropcap.Slug); err == nil {
		t.Fatalf("expected decorator error")
	}
}

func TestSchemaDecoratorsCannotChangeRegisteredModule(t *testing.T) {
	h := newHost(t, host.WithDecorators(model.DecoratorFunc(func(s *model.ModuleSchema) error {
		s.Descriptor.Advanced.Categories[model.StyleHeight] = model.StyleCSS{Main: "changed"}
		s.Descriptor.Toggles[model.TabGeneral][0].Label = "changed"
		s.Descriptor.Advanced.Fonts[0].Main = "changed"
		for i := range s.Fields {
			if s.Fields[i].Range != nil {
				s.Fields[i].Range.Max = 5
			}
			if len(s.Fields[i].Options) > 0 {
				s.Fields[i].Options[0] = "changed"
			}
		}
		return nil
	})))
	want := newHost(t)

	for i := 0; i < 2; i++ {
		if _, err := h.Schema(dropcap.Slug); err != nil {
			t.Fatalf("schema: %v", err)
		}
	}

	handle, err := h.Registry().Get(dropcap.Slug)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if diff := cmp.Diff(dropcap.Descriptor(), handle.Descriptor()); diff != "" {
		t.Fatalf("registered descriptor changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(dropcap.Fields(), handle.Fields()); diff != "" {
		t.Fatalf("registered fields changed (-want +got):\n%s", diff)
	}

	got, err := h.Transitions(dropcap.Slug)
	if err != nil {
		t.Fatalf("transitions: %v", err)
	}
	expected, err := want.Transitions(dropcap.Slug)
	if err != nil {
		t.Fatalf("transitions: %v", err)
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Fatalf("transitions changed (-want +got):\n%s", diff)
	}

	visible, err := h.VisibleFields(dropcap.Slug, nil)
	if err != nil {
		t.Fatalf("visible fields: %v", err)
	}
	margin, ok := model.FieldByKey(visible, dropcap.FieldMargin)
	if !ok || margin.Range == nil || margin.Range.Max != 100 {
		t.Fatalf("margin range changed: %+v", margin.Range)
	}
}

func TestTransitions(t *testing.T) {
	h := newHost(t)

	got, err := h.Transitions(dropcap.Slug)
	if err != nil {
		t.Fatalf("transitions: %v", err)
	}

	letter := model.OrderClassToken + " div .drop-cap-letter"
	checks := map[string]model.TransitionProp{
		"drop_cap_letter_text_color":       {Property: "color", Selector: letter},
		"body_font_size":                   {Property: "font-size", Selector: model.OrderClassToken + " div"},
		"background_color":                 {Property: "background-color", Selector: model.OrderClassToken},
		"drop_cap_letter_background_color": {Property: "background-color", Selector: letter},
		"drop_cap_letter_margin":           {Property: "margin", Selector: letter},
		"drop_cap_letter_padding":          {Property: "padding", Selector: letter},
	}
	for key, want := range checks {
		if got[key] != want {
			t.Fatalf("%s = %+v, want %+v", key, got[key], want)
		}
	}
}

func TestIcon(t *testing.T) {
	h := newHost(t)

	icon, err := h.Icon(dropcap.Slug)
	if err != nil {
		t.Fatalf("icon: %v", err)
	}
	if !strings.HasPrefix(icon, "<svg") {
		t.Fatalf("unexpected icon %q", icon)
	}

	bare, err := host.New()
	if err != nil {
		t.Fatalf("new host: %v", err)
	}
	bare.Registry().MustRegister(dropcap.MustNew())
	if _, err := bare.Icon(dropcap.Slug); err == nil {
		t.Fatalf("expected error without icon filesystem")
	}
}

func TestVisibleFields(t *testing.T) {
	h := newHost(t)

	hidden, err := h.VisibleFields(dropcap.Slug, nil)
	if err != nil {
		t.Fatalf("visible fields: %v", err)
	}
	if len(hidden) != len(dropcap.Fields())-4 {
		t.Fatalf("gradient fields should be hidden, got %v", model.Keys(hidden))
	}

	shown, err := h.VisibleFields(dropcap.Slug, map[string]string{
		dropcap.FieldBackgroundUseGradient: "on",
	})
	if err != nil {
		t.Fatalf("visible fields: %v", err)
	}
	if len(shown) != len(dropcap.Fields()) {
		t.Fatalf("gradient fields should show, got %v", model.Keys(shown))
	}
}

func TestRegisterDuplicate(t *testing.T) {
	h := newHost(t)

	if _, err := h.Register(dropcap.MustNew()); !errors.Is(err, module.ErrDuplicateSlug) {
		t.Fatalf("expected ErrDuplicateSlug, got %v", err)
	}
}
