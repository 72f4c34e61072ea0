package utils

import (
	"strings"
	"unicode"
)

// SafeFilename turns an arbitrary string into a file name: every rune that
// is neither a letter, a digit nor a space becomes an underscore, and
// "."+ext is appended.
func SafeFilename(raw, ext string) string {
	var b strings.Builder

	b.Grow(len(raw) + len(ext) + 1)

	for _, r := range raw {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
			continue
		}

		b.WriteByte('_')
	}

	b.WriteByte('.')
	b.WriteString(ext)

	return b.String()
}
