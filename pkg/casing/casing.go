package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ToCamelCase removes underscores from s and upper-cases the character that
// follows each one. Consecutive underscores arm the flag only once. Bytes
// that are not valid UTF-8 are copied through unchanged.
func ToCamelCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	upper := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteByte(s[i])
		case r == '_':
			upper = true
			i += size
			continue
		case upper:
			b.WriteString(strings.ToUpper(string(r)))
		default:
			b.WriteString(s[i : i+size])
		}
		upper = false
		i += size
	}
	return b.String()
}

// LowerFirst lower-cases the first character of s. A leading byte that is
// not valid UTF-8 leaves s unchanged.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return strings.ToLower(string(r)) + s[size:]
}

// CamelAndLower returns LowerFirst(ToCamelCase(s)).
func CamelAndLower(s string) string {
	return LowerFirst(ToCamelCase(s))
}

// ToSnakeCase converts a Go identifier to snake_case. Runs of capitals are
// treated as one word, so "HTTPServer" becomes "http_server".
func ToSnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && runes[i-1] != '_' {
				prev := runes[i-1]
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
					b.WriteByte('_')
				}
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
