package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// NormalizeText trims surrounding whitespace and lowercases the result
func NormalizeText(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Capitalize upper-cases the first letter and lower-cases the rest,
// so "CLEAR", "clear" and "Clear" all become "Clear"
func Capitalize(value string) string {
	if value == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(value)
	return string(unicode.ToUpper(first)) + strings.ToLower(value[size:])
}

// IsBlank reports whether value is empty or whitespace only
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
