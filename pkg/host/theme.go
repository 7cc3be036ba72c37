package host

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeSelector resolves a theme selection. go-theme selectors satisfy it.
type ThemeSelector interface {
	Select(name, variant string, opts ...theme.QueryOption) (*theme.Selection, error)
}

// presetTokens flattens the manifest tokens of a selection, with the selected
// variant's tokens overriding the base ones.
func presetTokens(selection *theme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	return out
}

// presetsFor keeps the tokens addressed to slug ("<slug>.<field>") keyed by
// field.
func presetsFor(tokens map[string]string, slug string) map[string]string {
	prefix := slug + "."
	out := make(map[string]string)
	for key, value := range tokens {
		if field, ok := strings.CutPrefix(key, prefix); ok && field != "" {
			out[field] = value
		}
	}
	return out
}

// ManifestSelector selects among a fixed set of go-theme manifests by name.
type ManifestSelector struct {
	manifests map[string]*theme.Manifest
}

// NewManifestSelector validates manifests through a go-theme registry and
// indexes them by name.
func NewManifestSelector(manifests ...*theme.Manifest) (*ManifestSelector, error) {
	registry := theme.NewRegistry()
	index := make(map[string]*theme.Manifest, len(manifests))
	for _, manifest := range manifests {
		if manifest == nil {
			continue
		}
		if err := registry.Register(manifest); err != nil {
			return nil, fmt.Errorf("host: register theme %q: %w", manifest.Name, err)
		}
		index[manifest.Name] = manifest
	}
	return &ManifestSelector{manifests: index}, nil
}

// Select implements ThemeSelector. An unknown variant falls back to the base
// tokens.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("host: theme %q not found", name)
	}
	if _, ok := manifest.Variants[variant]; !ok {
		variant = ""
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
