package css

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-dropcap/pkg/model"
)

// StickyClass marks an element whose sticky state is active.
const StickyClass = ".is-sticky"

// Selector joins base and child. Pseudo classes attach to base, so
// Selector("%%order_class%%", "div .x", ":hover") yields
// "%%order_class%%:hover div .x".
func Selector(base, child string, pseudo ...string) string {
	base = strings.TrimSpace(base)
	for _, p := range pseudo {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !strings.HasPrefix(p, ":") {
			p = ":" + p
		}
		base += p
	}

	child = strings.TrimSpace(child)
	switch {
	case child == "":
		return base
	case base == "":
		return child
	default:
		return base + " " + child
	}
}

// HoverSelector is Selector with the :hover pseudo class.
func HoverSelector(base, child string) string {
	return Selector(base, child, ":hover")
}

// StickySelector scopes Selector(base, child) to an active sticky ancestor.
func StickySelector(base, child string) string {
	return Selector(StickyClass+" "+strings.TrimSpace(base), child)
}

// SelectorSet derives the base, hover and sticky variants in one call.
func SelectorSet(base, child string) model.SelectorSet {
	return model.SelectorSet{
		Base:   Selector(base, child),
		Hover:  HoverSelector(base, child),
		Sticky: StickySelector(base, child),
	}
}

// OrderClass builds the per-instance class for the index-th instance of slug.
func OrderClass(slug string, index int) string {
	return "." + strings.TrimSpace(slug) + "_" + strconv.Itoa(index)
}

// ExpandOrderClass replaces the order class token with orderClass.
func ExpandOrderClass(selector, orderClass string) string {
	return strings.ReplaceAll(selector, model.OrderClassToken, orderClass)
}
