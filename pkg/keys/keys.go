// Package keys converts record keys between the dash-separated spelling used
// by declared annotations and the capitalized spelling used for storage.
package keys

import "strings"

const msPrefix = "-ms-"

// Camel converts a dash-case key to its canonical capitalized form.
// Every dash followed by an ASCII letter or digit is dropped and the
// character upper-cased; other dashes are kept.
func Camel(key string) string {
	if strings.HasPrefix(key, msPrefix) {
		key = key[1:]
	}
	if !strings.Contains(key, "-") {
		return key
	}
	var b strings.Builder
	b.Grow(len(key))
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '-' && i+1 < len(key) && isAlnum(key[i+1]) {
			b.WriteByte(toUpper(key[i+1]))
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Dash converts a capitalized key back to its lower dash-case form, the
// spelling used to look up declared annotations. Only ASCII upper-case
// letters gain a dash; the whole result is lower-cased.
func Dash(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
		}
		b.WriteByte(c)
	}
	return strings.ToLower(b.String())
}

// Fields splits a whitespace separated key list.
func Fields(key string) []string {
	return strings.Fields(key)
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
