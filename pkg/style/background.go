package style

import (
	"strings"

	"github.com/goliatone/go-dropcap/pkg/css"
)

// Background property suffixes, appended to the generator base name.
const (
	BackgroundColor            = "background_color"
	BackgroundUseGradient      = "background_use_color_gradient"
	BackgroundGradientType     = "background_color_gradient_type"
	BackgroundGradientDir      = "background_color_gradient_direction"
	BackgroundGradientStart    = "background_color_gradient_start"
	BackgroundGradientEnd      = "background_color_gradient_end"
	BackgroundGradientStartPos = "background_color_gradient_start_position"
	BackgroundGradientEndPos   = "background_color_gradient_end_position"
	BackgroundImage            = "background_image"
	BackgroundSize             = "background_size"
	BackgroundPosition         = "background_position"
	BackgroundRepeat           = "background_repeat"
	BackgroundBlend            = "background_blend"
	BackgroundPatternImage     = "background_pattern_image"
	BackgroundMaskImage        = "background_mask_image"
)

// BackgroundFlags switches optional background layers on. Disabled layers
// are ignored even when their properties carry values. Video is a markup
// layer and never produces CSS here.
type BackgroundFlags struct {
	Video   bool
	Pattern bool
	Mask    bool
}

// BackgroundSelectors targets each state. Responsive states reuse Default
// inside media queries; empty Hover or Sticky skips that state.
type BackgroundSelectors struct {
	Default string
	Hover   string
	Sticky  string
}

// BackgroundArgs parameterizes Background.
type BackgroundArgs struct {
	// Base prefixes every property key, e.g. "drop_cap_letter".
	Base      string
	Props     Props
	Selectors BackgroundSelectors
	Flags     BackgroundFlags
	// Aliases maps a property suffix to the key actually holding its value.
	Aliases   map[string]string
	Important bool
}

// Background writes the background rules for every state into sink.
func Background(sink css.Sink, args BackgroundArgs) {
	if sink == nil || strings.TrimSpace(args.Selectors.Default) == "" {
		return
	}
	gen := backgroundGen{args: args}

	for _, device := range Devices {
		state := State{Device: device}
		gen.emit(sink, args.Selectors.Default, device.Media(), state)
	}
	if args.Selectors.Hover != "" {
		gen.emit(sink, args.Selectors.Hover, css.MediaDesktop, State{Device: Desktop, Hover: true})
	}
	if args.Selectors.Sticky != "" {
		gen.emit(sink, args.Selectors.Sticky, css.MediaDesktop, State{Device: Desktop, Sticky: true})
	}
}

type backgroundGen struct {
	args BackgroundArgs
}

func (g backgroundGen) key(suffix string) string {
	if alias, ok := g.args.Aliases[suffix]; ok && alias != "" {
		return alias
	}
	base := strings.TrimSuffix(strings.TrimSpace(g.args.Base), "_")
	if base == "" {
		return suffix
	}
	return base + "_" + suffix
}

// read returns the value set for exactly this state.
func (g backgroundGen) read(suffix string, state State) (string, bool) {
	return g.args.Props.Value(g.key(suffix), state)
}

// inherit returns the state value, falling back to the next wider device.
func (g backgroundGen) inherit(suffix string, state State) string {
	if value, ok := g.read(suffix, state); ok {
		return value
	}
	key := g.key(suffix)
	switch {
	case state.Hover, state.Sticky:
		return g.args.Props.Get(key)
	case state.Device == Phone:
		if value := g.args.Props.Device(key, Tablet); value != "" {
			return value
		}
		return g.args.Props.Get(key)
	case state.Device == Tablet:
		return g.args.Props.Get(key)
	}
	return ""
}

func (g backgroundGen) emit(sink css.Sink, selector string, media css.Media, state State) {
	var decls []css.Declaration
	add := func(property, value string) {
		if safe, ok := css.SafeValue(value); ok {
			decls = append(decls, css.Declaration{Property: property, Value: safe, Important: g.args.Important})
		}
	}

	if color, ok := g.read(BackgroundColor, state); ok {
		add("background-color", color)
	}
	if image := g.image(state); image != "" {
		add("background-image", image)
	}
	if g.layered(state) {
		for _, entry := range []struct{ suffix, property string }{
			{BackgroundSize, "background-size"},
			{BackgroundPosition, "background-position"},
			{BackgroundRepeat, "background-repeat"},
			{BackgroundBlend, "background-blend-mode"},
		} {
			if value, ok := g.read(entry.suffix, state); ok {
				add(entry.property, strings.ReplaceAll(value, "_", " "))
			}
		}
	}

	sink.AddRule(css.Rule{Selector: selector, Media: media, Declarations: decls})
	g.emitLayers(sink, selector, media, state)
}

func (g backgroundGen) emitLayers(sink css.Sink, selector string, media css.Media, state State) {
	if !state.Hover && !state.Sticky {
		g.emitLayer(sink, selector, media, state, g.args.Flags.Pattern, BackgroundPatternImage, ".bg-pattern")
		g.emitLayer(sink, selector, media, state, g.args.Flags.Mask, BackgroundMaskImage, ".bg-mask")
	}
}

// layered reports whether an image or gradient applies in state, which is
// when size, position, repeat and blend mean anything.
func (g backgroundGen) layered(state State) bool {
	return g.inherit(BackgroundImage, state) != "" ||
		strings.EqualFold(g.inherit(BackgroundUseGradient, state), "on")
}

// image composes the background-image stack. A state only emits an image
// when one of its inputs is set for that state; unset inputs inherit.
func (g backgroundGen) image(state State) string {
	touched := false
	for _, suffix := range []string{
		BackgroundUseGradient, BackgroundGradientType, BackgroundGradientDir,
		BackgroundGradientStart, BackgroundGradientEnd, BackgroundImage,
	} {
		if _, ok := g.read(suffix, state); ok {
			touched = true
			break
		}
	}
	if !touched {
		return ""
	}

	var layers []string
	if strings.EqualFold(g.inherit(BackgroundUseGradient, state), "on") {
		if gradient := g.gradient(state); gradient != "" {
			layers = append(layers, gradient)
		}
	}
	if url := css.URL(g.inherit(BackgroundImage, state)); url != "" {
		layers = append(layers, url)
	}
	return strings.Join(layers, ", ")
}

func (g backgroundGen) gradient(state State) string {
	start := g.inherit(BackgroundGradientStart, state)
	end := g.inherit(BackgroundGradientEnd, state)
	if start == "" || end == "" {
		return ""
	}
	startPos := firstNonEmpty(g.inherit(BackgroundGradientStartPos, state), "0%")
	endPos := firstNonEmpty(g.inherit(BackgroundGradientEndPos, state), "100%")
	stops := start + " " + startPos + ", " + end + " " + endPos

	if strings.EqualFold(g.inherit(BackgroundGradientType, state), "radial") {
		direction := strings.ReplaceAll(firstNonEmpty(g.inherit(BackgroundGradientDir, state), "center"), "_", " ")
		return "radial-gradient(circle at " + direction + ", " + stops + ")"
	}
	direction := firstNonEmpty(g.inherit(BackgroundGradientDir, state), "180deg")
	return "linear-gradient(" + direction + ", " + stops + ")"
}

func (g backgroundGen) emitLayer(sink css.Sink, selector string, media css.Media, state State, enabled bool, suffix, class string) {
	if !enabled {
		return
	}
	value, ok := g.read(suffix, state)
	if !ok {
		return
	}
	url := css.URL(value)
	if url == "" {
		return
	}
	sink.AddRule(css.Rule{
		Selector: css.Selector(selector, "> "+class),
		Media:    media,
		Declarations: []css.Declaration{
			{Property: "background-image", Value: url, Important: g.args.Important},
		},
	})
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
