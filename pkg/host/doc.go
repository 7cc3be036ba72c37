// Package host is the builder-side runtime around content modules. It owns
// the registry, resolves instance properties (field defaults, theme presets,
// attributes), allocates order classes, collects scoped CSS into a page
// stylesheet and degrades module failures to empty fragments.
package host
