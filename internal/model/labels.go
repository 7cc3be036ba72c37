package model

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-\s]+`)

// labelAcronyms keeps CSS-ish abbreviations upper case in derived labels.
var labelAcronyms = map[string]string{
	"css": "CSS",
	"url": "URL",
}

// DefaultLabeler converts a field key into a human-friendly label, splitting
// on underscores, dashes and camelCase boundaries.
func DefaultLabeler(key string) string {
	if key == "" {
		return ""
	}

	var segments []string
	for _, word := range splitWordsPattern.Split(key, -1) {
		if word == "" {
			continue
		}
		for _, part := range strings.Fields(splitCamel(word)) {
			segments = append(segments, labelWord(part))
		}
	}
	return strings.Join(segments, " ")
}

// PrefixLabeler strips prefix from keys before labelling, so
// "drop_cap_letter_margin" under prefix "drop_cap_letter" becomes "Margin".
func PrefixLabeler(prefix string) func(string) string {
	prefix = strings.TrimSuffix(prefix, "_") + "_"
	return func(key string) string {
		trimmed := strings.TrimPrefix(key, prefix)
		if trimmed == "" {
			trimmed = key
		}
		return DefaultLabeler(trimmed)
	}
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func labelWord(word string) string {
	lower := strings.ToLower(word)
	if acronym, ok := labelAcronyms[lower]; ok {
		return acronym
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
