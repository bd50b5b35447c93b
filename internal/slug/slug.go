// Package slug builds URL slugs and comparison keys from variety and
// winegrower names.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letters that NFD does not decompose into a base letter plus a mark.
var ligatures = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"ß", "ss",
	"đ", "d", "Đ", "D",
)

// Fold lowercases s and strips diacritics, so "Maréchal Foch" and
// "marechal foch" compare equal.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, ligatures.Replace(s))
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// Make returns a URL-safe slug: folded, with every run of characters other
// than ASCII letters and digits replaced by a single "-".
//
//	Make("L'Acadie Blanc") == "l-acadie-blanc"
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true // avoids a leading separator
	for _, r := range Fold(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			continue
		}
		if !lastWasSep {
			b.WriteByte('-')
			lastWasSep = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// Initial returns the upper-case folded first letter of s, or "#" when s
// does not start with an ASCII letter. Index pages group names by it.
func Initial(s string) string {
	folded := Fold(strings.TrimSpace(s))
	if folded == "" {
		return "#"
	}
	r := rune(folded[0])
	if r >= 'a' && r <= 'z' {
		return string(unicode.ToUpper(r))
	}
	return "#"
}
