package style

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/goliatone/go-dropcap/pkg/css"
)

var dimensionPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(px|em|rem|%|vw|vh)?$`)

// Sides is a parsed four-sided spacing value.
type Sides struct {
	Top    string
	Right  string
	Bottom string
	Left   string
}

// ParseSpacing splits a "top|right|bottom|left[|linked...]" value. Missing
// sides stay empty; trailing link flags are ignored.
func ParseSpacing(value string) Sides {
	parts := strings.Split(strings.TrimSpace(value), "|")
	side := func(i int) string {
		if i >= len(parts) {
			return ""
		}
		return strings.TrimSpace(parts[i])
	}
	return Sides{Top: side(0), Right: side(1), Bottom: side(2), Left: side(3)}
}

// Empty reports whether no side is set.
func (s Sides) Empty() bool {
	return s.Top == "" && s.Right == "" && s.Bottom == "" && s.Left == ""
}

// Named returns the non-empty sides keyed by side name, in CSS order.
func (s Sides) Named() [][2]string {
	var out [][2]string
	for _, entry := range [][2]string{{"top", s.Top}, {"right", s.Right}, {"bottom", s.Bottom}, {"left", s.Left}} {
		if entry[1] != "" {
			out = append(out, entry)
		}
	}
	return out
}

// Declarations emits property-side declarations for the set sides.
func (s Sides) Declarations(property string, important bool) []css.Declaration {
	var decls []css.Declaration
	for _, entry := range s.Named() {
		value, ok := css.SafeValue(entry[1])
		if !ok {
			continue
		}
		decls = append(decls, css.Declaration{
			Property:  property + "-" + entry[0],
			Value:     value,
			Important: important,
		})
	}
	return decls
}

// ParseDimension splits a CSS length into its number and unit. A bare number
// has an empty unit; "auto" and other keywords report ok=false.
func ParseDimension(value string) (float64, string, bool) {
	match := dimensionPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, "", false
	}
	number, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, "", false
	}
	return number, match[2], true
}

// SpacingArgs parameterizes Spacing.
type SpacingArgs struct {
	// Field is the property key holding the spacing value.
	Field         string
	Props         Props
	Selector      string
	HoverSelector string
	// Property is the CSS shorthand, "margin" or "padding".
	Property  string
	Important bool
}

// Spacing writes responsive and hover rules for one spacing field.
func Spacing(sink css.Sink, args SpacingArgs) {
	if sink == nil || args.Field == "" || strings.TrimSpace(args.Selector) == "" {
		return
	}
	for _, device := range Devices {
		value, ok := args.Props.Value(args.Field, State{Device: device})
		if !ok {
			continue
		}
		sink.AddRule(css.Rule{
			Selector:     args.Selector,
			Media:        device.Media(),
			Declarations: ParseSpacing(value).Declarations(args.Property, args.Important),
		})
	}
	if args.HoverSelector == "" {
		return
	}
	if value, ok := args.Props.Hover(args.Field); ok {
		sink.AddRule(css.Rule{
			Selector:     args.HoverSelector,
			Declarations: ParseSpacing(value).Declarations(args.Property, args.Important),
		})
	}
}
