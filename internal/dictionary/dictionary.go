package dictionary

import (
	"strings"

	"svw.info/crossword/internal/domain"
)

// Normalize trims surrounding whitespace, drops blank entries, and
// uppercases what remains. Relative order is preserved; the search
// tries candidates in exactly this order.
func Normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		out = append(out, strings.ToUpper(w))
	}
	return out
}

// ByLength buckets normalized words by byte length, keeping order
// within each bucket.
func ByLength(words []string) map[int][]string {
	buckets := make(map[int][]string)
	for _, w := range words {
		buckets[len(w)] = append(buckets[len(w)], w)
	}
	return buckets
}

// Domains returns each slot's candidate list, indexed by slot ID.
// Candidates are chosen by length alone. Slots of equal length share
// one backing slice; domains are never mutated after this point.
func Domains(slots []domain.Slot, words []string) [][]string {
	buckets := ByLength(words)
	out := make([][]string, len(slots))
	for i, s := range slots {
		out[i] = buckets[s.Length()]
	}
	return out
}
