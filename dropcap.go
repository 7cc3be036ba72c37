// Package dropcap is the top-level entry point: it wires the Drop Cap Text
// module into a host so callers can render instances without assembling the
// collaborators themselves.
package dropcap

import (
	"context"
	"fmt"

	"github.com/goliatone/go-dropcap/pkg/host"
	"github.com/goliatone/go-dropcap/pkg/modules/dropcap"
	theme "github.com/goliatone/go-theme"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Fragment aliases host.Fragment for callers of the root package.
type Fragment = host.Fragment

// Config aliases host.Config.
type Config = host.Config

// Slug is the registered slug of the Drop Cap Text module.
const Slug = dropcap.Slug

// NewHost builds a host with the Drop Cap Text module registered and its
// icon bundle mounted. Options are applied after the defaults.
func NewHost(options ...host.Option) (*host.Host, error) {
	return NewHostWithModule(nil, options...)
}

// NewHostWithModule is NewHost with options for the module itself, such as
// dropcap.WithTemplateDir.
func NewHostWithModule(moduleOptions []dropcap.Option, options ...host.Option) (*host.Host, error) {
	opts := append([]host.Option{host.WithIcons(dropcap.IconsFS())}, options...)
	h, err := host.New(opts...)
	if err != nil {
		return nil, err
	}
	mod, err := dropcap.New(moduleOptions...)
	if err != nil {
		return nil, err
	}
	if _, err := h.Register(mod); err != nil {
		return nil, fmt.Errorf("dropcap: register module: %w", err)
	}
	return h, nil
}

// Render renders one Drop Cap Text instance on a fresh page and returns the
// markup together with its stylesheet.
func Render(ctx context.Context, attrs map[string]string, content string, options ...host.Option) (Fragment, string, error) {
	h, err := NewHost(options...)
	if err != nil {
		return Fragment{}, "", err
	}
	fragment, err := h.RenderInstance(ctx, Slug, attrs, content)
	if err != nil {
		return Fragment{}, "", err
	}
	return fragment, h.Stylesheet(), nil
}

// WithLogger forwards a zerolog logger to the host.
func WithLogger(logger zerolog.Logger) host.Option {
	return host.WithLogger(logger)
}

// WithThemeSelector passes a go-theme selector through to the host so
// "<slug>.<field>" tokens of the selected theme become field presets.
func WithThemeSelector(selector host.ThemeSelector, name, variant string) host.Option {
	return host.WithThemeSelector(selector, name, variant)
}

// WithThemeManifests selects presets from the given manifests.
func WithThemeManifests(name, variant string, manifests ...*theme.Manifest) (host.Option, error) {
	selector, err := host.NewManifestSelector(manifests...)
	if err != nil {
		return nil, fmt.Errorf("dropcap: %w", err)
	}
	return host.WithThemeSelector(selector, name, variant), nil
}

// WithMetrics registers render metrics.
func WithMetrics(reg prometheus.Registerer) host.Option {
	return host.WithMetrics(reg)
}
