// Package style turns resolved module properties into CSS rules. It knows the
// property naming conventions hosts use for responsive, hover and sticky
// variants and provides the background and margin/padding generators.
package style

import (
	"strings"

	"github.com/goliatone/go-dropcap/pkg/css"
)

const (
	suffixTablet        = "_tablet"
	suffixPhone         = "_phone"
	suffixLastEdited    = "_last_edited"
	suffixHover         = "__hover"
	suffixHoverEnabled  = "__hover_enabled"
	suffixSticky        = "__sticky"
	suffixStickyEnabled = "__sticky_enabled"
)

// Device is a responsive breakpoint.
type Device string

const (
	Desktop Device = "desktop"
	Tablet  Device = "tablet"
	Phone   Device = "phone"
)

// Media returns the media query wrapping rules for device.
func (d Device) Media() css.Media {
	switch d {
	case Tablet:
		return css.MediaTablet
	case Phone:
		return css.MediaPhone
	default:
		return css.MediaDesktop
	}
}

// Devices lists breakpoints from widest to narrowest.
var Devices = []Device{Desktop, Tablet, Phone}

// Props is the resolved property set of one module instance.
type Props map[string]string

// Get returns the trimmed value for key.
func (p Props) Get(key string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(p[key])
}

// Clone returns an independent copy.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// Merge returns a copy of p with attrs added for keys p does not define.
// Resolved properties take precedence over raw attributes.
func (p Props) Merge(attrs map[string]string) Props {
	out := p.Clone()
	for key, value := range attrs {
		if _, exists := out[key]; exists {
			continue
		}
		out[key] = value
	}
	return out
}

// Enabled reports whether key holds an "on" flag ("on" or "on|<device>").
func (p Props) Enabled(key string) bool {
	value := strings.ToLower(p.Get(key))
	return value == "on" || strings.HasPrefix(value, "on|")
}

// ResponsiveEnabled reports whether per-device values are active for key.
func (p Props) ResponsiveEnabled(key string) bool {
	return p.Enabled(key + suffixLastEdited)
}

// Device returns the value of key for device. Tablet and phone values only
// apply when responsive editing is enabled for key.
func (p Props) Device(key string, device Device) string {
	switch device {
	case Tablet:
		if !p.ResponsiveEnabled(key) {
			return ""
		}
		return p.Get(key + suffixTablet)
	case Phone:
		if !p.ResponsiveEnabled(key) {
			return ""
		}
		return p.Get(key + suffixPhone)
	default:
		return p.Get(key)
	}
}

// Hover returns the hover value of key when hover styling is enabled.
func (p Props) Hover(key string) (string, bool) {
	if !p.Enabled(key + suffixHoverEnabled) {
		return "", false
	}
	value := p.Get(key + suffixHover)
	return value, value != ""
}

// Sticky returns the sticky value of key when sticky styling is enabled.
func (p Props) Sticky(key string) (string, bool) {
	if !p.Enabled(key + suffixStickyEnabled) {
		return "", false
	}
	value := p.Get(key + suffixSticky)
	return value, value != ""
}

// State selects which variant of a property a generator reads.
type State struct {
	Device Device
	Hover  bool
	Sticky bool
}

// Value reads key for the state. Hover and sticky states report ok=false
// when the variant is not enabled.
func (p Props) Value(key string, state State) (string, bool) {
	switch {
	case state.Hover:
		return p.Hover(key)
	case state.Sticky:
		return p.Sticky(key)
	default:
		value := p.Device(key, state.Device)
		return value, value != ""
	}
}
