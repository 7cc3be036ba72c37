package host

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-dropcap/pkg/css"
	"github.com/goliatone/go-dropcap/pkg/module"
)

// Page holds the per-page render state: order class counters and the
// accumulated stylesheet. Pages of one host are independent.
type Page struct {
	host *Host

	mu       sync.Mutex
	counters map[string]int
	sheet    *css.StyleSheet
}

// NewPage starts an empty page.
func (h *Host) NewPage() *Page {
	return &Page{
		host:     h,
		counters: make(map[string]int),
		sheet:    css.NewStyleSheet(),
	}
}

// Render renders one instance of slug. Its CSS is scoped to a fresh order
// class and added to the page stylesheet. Unknown slugs are an error; module
// failures yield an empty fragment and leave the stylesheet untouched.
func (p *Page) Render(ctx context.Context, slug string, attrs map[string]string, content string) (Fragment, error) {
	h := p.host
	handle, err := h.registry.Get(slug)
	if err != nil {
		return Fragment{}, err
	}
	slug = handle.Slug()

	props, err := h.ResolveProps(slug, attrs)
	if err != nil {
		return Fragment{}, err
	}

	orderClass := p.nextOrderClass(slug)
	fragment := Fragment{Slug: slug, OrderClass: orderClass}
	logger := h.logger.With().Str("module", slug).Str("order_class", orderClass).Logger()

	collected := css.NewStyleSheet()
	started := time.Now()
	html, err := handle.Module().Render(ctx, module.RenderRequest{
		Props:      props,
		Attrs:      copyAttrs(attrs),
		Content:    content,
		Slug:       strings.TrimPrefix(orderClass, "."),
		OrderClass: orderClass,
		Styles:     collected,
	})
	h.metrics.observe(slug, time.Since(started).Seconds(), err != nil)
	if err != nil {
		logger.Error().Err(err).Msg("module render failed, emitting empty fragment")
		return fragment, nil
	}

	h.applyCustomCSS(collected, handle.Descriptor(), attrs, logger)

	scoped := css.ScopedSink(p.sheet, orderClass)
	for _, rule := range collected.Rules() {
		scoped.AddRule(rule)
	}

	fragment.HTML = wrap(slug, orderClass, attrs, html)
	logger.Debug().Int("rules", collected.Len()).Msg("module rendered")
	return fragment, nil
}

// Stylesheet renders the CSS accumulated since the last Reset.
func (p *Page) Stylesheet() string {
	return p.sheet.String()
}

// Rules returns the accumulated rules.
func (p *Page) Rules() []css.Rule {
	return p.sheet.Rules()
}

// Reset clears order class counters and the stylesheet.
func (p *Page) Reset() {
	p.mu.Lock()
	p.counters = make(map[string]int)
	p.mu.Unlock()
	p.sheet.Reset()
}

func (p *Page) nextOrderClass(slug string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	index := p.counters[slug]
	p.counters[slug] = index + 1
	return css.OrderClass(slug, index)
}
