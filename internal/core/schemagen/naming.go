package schemagen

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titler = cases.Title(language.English, cases.NoLower)

// ClassName normalizes s into a class identifier: words split on
// non-alphanumerics, each Title cased, joined. Empty input yields Data
func ClassName(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return "Data"
	}
	var b strings.Builder
	for _, w := range words {
		b.WriteString(titler.String(w))
	}
	name := b.String()
	if unicode.IsDigit(rune(name[0])) {
		name = "X" + name
	}
	return name
}
