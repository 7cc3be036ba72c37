package css

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aymerick/douceur/parser"
)

var propertyPattern = regexp.MustCompile(`^-?[a-z][a-z0-9-]*$`)

// ParseCustomCSS parses a free-form declaration block, as typed into a custom
// CSS box, into declarations. Declarations with unknown-looking property
// names or unsafe values are dropped rather than reported.
func ParseCustomCSS(raw string) ([]Declaration, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	// The declaration parser only closes a declaration on ";" or "}".
	if !strings.HasSuffix(trimmed, ";") {
		trimmed += ";"
	}

	decls, err := parser.ParseDeclarations(trimmed)
	if err != nil {
		return nil, fmt.Errorf("css: parse custom declarations: %w", err)
	}

	out := make([]Declaration, 0, len(decls))
	for _, decl := range decls {
		property := strings.ToLower(strings.TrimSpace(decl.Property))
		if !propertyPattern.MatchString(property) {
			continue
		}
		value, ok := SafeValue(decl.Value)
		if !ok {
			continue
		}
		out = append(out, Declaration{
			Property:  property,
			Value:     value,
			Important: decl.Important,
		})
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}
