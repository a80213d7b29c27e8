// Package sanitize strips code points that Postgres rejects in text columns.
// Upstream image APIs occasionally embed NUL bytes and other control
// characters in their raw bodies, which breaks UTF-8 inserts.
package sanitize

import (
	"strings"
	"unicode"
)

// Clean removes the NUL code point, the ASCII control ranges 0x01-0x08,
// 0x0B-0x0C and 0x0E-0x1F, and everything in the Unicode "C" categories
// (control, format, surrogate, private use). Cleaning an already clean
// string returns it unchanged.
func Clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == 0x00:
			return -1
		case r >= 0x01 && r <= 0x08:
			return -1
		case r == 0x0B || r == 0x0C:
			return -1
		case r >= 0x0E && r <= 0x1F:
			return -1
		case unicode.In(r, unicode.C):
			return -1
		}
		return r
	}, s)
}

// CleanPtr is Clean for nullable text. A nil pointer stays nil, it is never
// turned into an empty string.
func CleanPtr(p *string) *string {
	if p == nil {
		return nil
	}
	cleaned := Clean(*p)
	return &cleaned
}
