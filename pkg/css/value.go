package css

import (
	"strings"

	"github.com/gorilla/css/scanner"
)

var allowedFunctions = map[string]struct{}{
	"rgb":             {},
	"rgba":            {},
	"hsl":             {},
	"hsla":            {},
	"calc":            {},
	"var":             {},
	"linear-gradient": {},
	"radial-gradient": {},
}

// SafeValue reports whether raw can be emitted as a declaration value without
// escaping its declaration. It tokenizes the value and accepts identifiers,
// numbers, dimensions, hashes, strings, url() and a small set of functions;
// statement delimiters, braces, "!" and comments are refused, as is any "<"
// so a value can never close an enclosing <style> element. The trimmed value
// is returned when accepted.
func SafeValue(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.Contains(value, "<") {
		return "", false
	}

	s := scanner.New(value)
	depth := 0
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			if depth != 0 {
				return "", false
			}
			return value, true
		case scanner.TokenIdent, scanner.TokenNumber, scanner.TokenPercentage,
			scanner.TokenDimension, scanner.TokenHash, scanner.TokenS, scanner.TokenString:
			continue
		case scanner.TokenFunction:
			name := strings.ToLower(strings.TrimSuffix(tok.Value, "("))
			if _, ok := allowedFunctions[name]; !ok {
				return "", false
			}
			depth++
		case scanner.TokenURI:
			if unsafeURI(tok.Value) || markup(tok.Value) {
				return "", false
			}
		case scanner.TokenChar:
			switch tok.Value {
			case ",", "/", ".", "-", "+", "%", "*":
			case ")":
				depth--
				if depth < 0 {
					return "", false
				}
			default:
				return "", false
			}
		default:
			return "", false
		}
	}
}

// URL wraps raw as a quoted url() value, or returns "" if it is unsafe.
func URL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.ContainsAny(trimmed, "\"'()\\\n\r<>") {
		return ""
	}
	value := `url("` + trimmed + `")`
	if unsafeURI(value) {
		return ""
	}
	return value
}

func unsafeURI(value string) bool {
	lower := strings.ToLower(strings.ReplaceAll(value, " ", ""))
	return strings.Contains(lower, "javascript:") ||
		strings.Contains(lower, "vbscript:") ||
		strings.Contains(lower, "data:text/html")
}

func markup(value string) bool {
	return strings.ContainsAny(value, "<>")
}
