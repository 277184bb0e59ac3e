package reconcile

import "strings"

// NormalizeName reduces a free-text name to its comparison key: lowercase
// with every rune outside a-z removed. Digits, punctuation and whitespace are
// all stripped, not collapsed. Idempotent.
func NormalizeName(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
