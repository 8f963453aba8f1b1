package utils

import "strings"

// Slugify converts free text to a URL- and code-safe slug: lower-case, with
// every run of non-alphanumeric characters collapsed to a single hyphen.
// Product and taxon codes derive from its output.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	lastHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen && b.Len() > 0 {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Truncate returns at most n bytes of s. Slugs are ASCII so byte and rune
// lengths coincide for our inputs.
func Truncate(s string, n int) string {
	if n < 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
