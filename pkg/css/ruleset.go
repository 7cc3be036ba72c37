package css

import (
	"strings"
	"sync"
)

// Media is an at-rule prelude; MediaDesktop means no wrapping query.
type Media string

const (
	MediaDesktop Media = ""
	MediaTablet  Media = "@media only screen and (max-width: 980px)"
	MediaPhone   Media = "@media only screen and (max-width: 767px)"
)

// Declaration is a single property/value pair.
type Declaration struct {
	Property  string `json:"property"`
	Value     string `json:"value"`
	Important bool   `json:"important,omitempty"`
}

func (d Declaration) String() string {
	var b strings.Builder
	b.WriteString(escapeMarkup(d.Property))
	b.WriteString(": ")
	b.WriteString(escapeMarkup(d.Value))
	if d.Important {
		b.WriteString(" !important")
	}
	b.WriteString(";")
	return b.String()
}

// Rule groups declarations under a selector and optional media query.
type Rule struct {
	Selector     string        `json:"selector"`
	Media        Media         `json:"media,omitempty"`
	Declarations []Declaration `json:"declarations"`
}

// Sink accepts generated rules. StyleSheet is the standard implementation;
// hosts may wrap it to scope selectors.
type Sink interface {
	AddRule(Rule)
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(Rule)

// AddRule calls fn.
func (fn SinkFunc) AddRule(rule Rule) {
	fn(rule)
}

// ScopedSink expands the order class token before forwarding rules.
func ScopedSink(next Sink, orderClass string) Sink {
	return SinkFunc(func(rule Rule) {
		rule.Selector = ExpandOrderClass(rule.Selector, orderClass)
		next.AddRule(rule)
	})
}

// StyleSheet accumulates rules in insertion order. Rules sharing a selector
// and media query are merged; a later declaration of the same property
// replaces the earlier one in place.
type StyleSheet struct {
	mu    sync.Mutex
	rules []Rule
	index map[string]int
}

// NewStyleSheet returns an empty stylesheet.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{index: make(map[string]int)}
}

// AddRule implements Sink. Rules without declarations or selector are
// dropped.
func (s *StyleSheet) AddRule(rule Rule) {
	rule.Selector = strings.TrimSpace(rule.Selector)
	if rule.Selector == "" || len(rule.Declarations) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index == nil {
		s.index = make(map[string]int)
	}
	key := string(rule.Media) + "\x00" + rule.Selector
	if idx, ok := s.index[key]; ok {
		s.rules[idx].Declarations = mergeDeclarations(s.rules[idx].Declarations, rule.Declarations)
		return
	}
	rule.Declarations = mergeDeclarations(nil, rule.Declarations)
	if len(rule.Declarations) == 0 {
		return
	}
	s.index[key] = len(s.rules)
	s.rules = append(s.rules, rule)
}

// Rules returns a copy of the accumulated rules.
func (s *StyleSheet) Rules() []Rule {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Rule, len(s.rules))
	for i, rule := range s.rules {
		rule.Declarations = append([]Declaration(nil), rule.Declarations...)
		out[i] = rule
	}
	return out
}

// Len reports the number of distinct rules.
func (s *StyleSheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}

// Reset drops every rule.
func (s *StyleSheet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = nil
	s.index = make(map[string]int)
}

// String renders desktop rules first, then each media query block in the
// order it was first seen.
func (s *StyleSheet) String() string {
	rules := s.Rules()

	var (
		order  []Media
		groups = make(map[Media][]Rule)
	)
	for _, rule := range rules {
		if _, ok := groups[rule.Media]; !ok && rule.Media != MediaDesktop {
			order = append(order, rule.Media)
		}
		groups[rule.Media] = append(groups[rule.Media], rule)
	}

	var b strings.Builder
	for _, rule := range groups[MediaDesktop] {
		writeRule(&b, rule, "")
	}
	for _, media := range order {
		b.WriteString(string(media))
		b.WriteString(" {\n")
		for _, rule := range groups[media] {
			writeRule(&b, rule, "\t")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

func writeRule(b *strings.Builder, rule Rule, indent string) {
	b.WriteString(indent)
	b.WriteString(escapeMarkup(rule.Selector))
	b.WriteString(" {")
	for _, decl := range rule.Declarations {
		b.WriteString(" ")
		b.WriteString(decl.String())
	}
	b.WriteString(" }\n")
}

// escapeMarkup rewrites "<" as a CSS escape so generated text can be placed
// inside a <style> element.
func escapeMarkup(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	return strings.ReplaceAll(s, "<", `\3c `)
}

func mergeDeclarations(existing, extra []Declaration) []Declaration {
	out := append([]Declaration(nil), existing...)
	for _, decl := range extra {
		decl.Property = strings.ToLower(strings.TrimSpace(decl.Property))
		decl.Value = strings.TrimSpace(decl.Value)
		if decl.Property == "" || decl.Value == "" {
			continue
		}
		replaced := false
		for i := range out {
			if out[i].Property == decl.Property {
				out[i] = decl
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, decl)
		}
	}
	return out
}
