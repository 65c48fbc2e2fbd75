package catalog

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents applies compatibility decomposition and removes combining
// marks, so "Città" becomes "Citta" and "m²" becomes "m2".
var stripAccents = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFKC)

// NormalizeKey converts a raw CSV header into an ASCII, lowercase,
// underscore-delimited key. Runs of non-alphanumeric characters collapse to a
// single underscore and leading/trailing underscores are trimmed. An empty
// result means the column should be dropped. The function is idempotent.
func NormalizeKey(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	if ascii, _, err := transform.String(stripAccents, s); err == nil {
		s = ascii
	}

	var b strings.Builder
	b.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		} else {
			pendingSep = true
		}
	}
	return b.String()
}

// keySet tracks keys already assigned within one header row.
type keySet map[string]struct{}

// dedupe returns key unchanged if unused, otherwise the first unused key_2,
// key_3, … variant. The returned key is recorded as used.
func (ks keySet) dedupe(key string) string {
	if _, used := ks[key]; !used {
		ks[key] = struct{}{}
		return key
	}
	for i := 2; ; i++ {
		candidate := key + "_" + strconv.Itoa(i)
		if _, used := ks[candidate]; !used {
			ks[candidate] = struct{}{}
			return candidate
		}
	}
}
