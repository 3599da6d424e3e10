// Package normalize canonicalises todo text before it is stored or compared
// Pipeline order
// 1 drop invalid UTF-8
// 2 Unicode NFC
// 3 remove control and format runes (ZWJ, BOM, bidi marks) except whitespace
// 4 width fold fullwidth ASCII to ASCII
// 5 collapse whitespace runs to one space and trim
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.Predicate(invisible)),
			width.Fold,
		)
	},
}

func invisible(r rune) bool {
	if unicode.IsSpace(r) {
		return false
	}
	return unicode.IsControl(r) || unicode.In(r, unicode.Cf)
}

// Text returns the canonical form of a todo text. The empty string means blank input.
func Text(s string) string {
	if s == "" {
		return ""
	}
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}

// Equal reports whether a and b are the same text once normalised
func Equal(a, b string) bool { return Text(a) == Text(b) }

// Truncate cuts s to at most n runes, appending an ellipsis when it cut
func Truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
