// Package rendering lays out résumé documents: PDF templates drawn on a
// canvas and a rich-text (RTF) alternative with the same section order.
package rendering

import (
	"strconv"
	"strings"
	"unicode/utf16"
)

// EscapeRTF escapes text for an RTF body.
// Special characters: \ { } and newlines; non-ASCII runes become \uN? escapes.
func EscapeRTF(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch {
		case r == '\\':
			result.WriteString(`\\`)
		case r == '{':
			result.WriteString(`\{`)
		case r == '}':
			result.WriteString(`\}`)
		case r == '\n':
			result.WriteString(`\line `)
		case r == '\r':
		case r == '\t':
			result.WriteString(`\tab `)
		case r < 0x80:
			result.WriteRune(r)
		case r > 0xFFFF:
			hi, lo := utf16.EncodeRune(r)
			writeUnicode(&result, hi)
			writeUnicode(&result, lo)
		default:
			writeUnicode(&result, r)
		}
	}

	return result.String()
}

// writeUnicode writes r as a signed 16-bit \u escape with a '?' fallback.
func writeUnicode(b *strings.Builder, r rune) {
	b.WriteString(`\u`)
	b.WriteString(strconv.Itoa(int(int16(uint16(r)))))
	b.WriteByte('?')
}
