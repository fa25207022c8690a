// Package export turns registration records into downloadable documents.
// The record→rows projection is pure; the PDF and spreadsheet builders
// own the file side effects.
package export

import (
	"strings"
	"unicode"
)

// FormatKey derives a human label from an attribute name: a space is
// inserted before each internal capital and between a digit and a letter,
// then every word is capitalized. Applying it to its own output changes
// nothing, so already-derived labels pass through unharmed.
//
//	FormatKey("parentFirstName")         == "Parent First Name"
//	FormatKey("AfterSchoolProgramForms") == "After School Program Forms"
func FormatKey(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	runes := []rune(key)
	for i, r := range runes {
		if i > 0 {
			prev := runes[i-1]
			boundary := (unicode.IsUpper(r) && !unicode.IsUpper(prev)) ||
				(unicode.IsLetter(r) && unicode.IsDigit(prev))
			if boundary && prev != ' ' {
				b.WriteRune(' ')
			}
		}
		b.WriteRune(r)
	}
	words := strings.Fields(b.String())
	for i, w := range words {
		wr := []rune(w)
		wr[0] = unicode.ToUpper(wr[0])
		words[i] = string(wr)
	}
	return strings.Join(words, " ")
}
