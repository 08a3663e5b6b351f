// Package textutil is the single boundary through which external text enters a
// data item. Edit widgets, prompt drivers and file loaders hand over strings in
// whatever encoding the platform produced; Normalize converges them to one
// canonical representation before any parsing or comparison happens.
package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize repairs invalid UTF-8, strips a leading BOM, canonicalises line
// endings and applies Unicode NFC so platform-variant spellings of the same
// text compare equal.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.ToValidUTF8(s, "\ufffd")
	if strings.ContainsRune(s, '\r') {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	return norm.NFC.String(s)
}
