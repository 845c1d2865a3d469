package model

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// CleanText normalizes text content taken from a drawing: Unicode NFC
// normalization, NUL removal, and whitespace collapsed to single spaces.
// Drawing files frequently carry stray control characters and formatting
// whitespace inside labels.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}
