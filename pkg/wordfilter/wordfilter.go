package wordfilter

import "strings"

// defaultWords is the built-in block list. Matching is case-insensitive
// substring containment, so short entries like "cc" intentionally catch
// embedded occurrences as well.
var defaultWords = []string{
	"spam", "scam", "hack", "đụ", "địt", "lồn", "cặc", "vãi", "đéo", "đm", "vcl", "cc", "dm",
}

// Filter screens free-form text against a fixed list of blocked substrings.
type Filter struct {
	words []string
}

// New builds a filter from the given block list. Entries are lowercased;
// blank entries are dropped.
func New(words []string) *Filter {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			cleaned = append(cleaned, w)
		}
	}
	return &Filter{words: cleaned}
}

// Default returns a filter loaded with the built-in block list.
func Default() *Filter {
	return New(defaultWords)
}

// Matches reports whether text contains any blocked substring,
// ignoring case.
func (f *Filter) Matches(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range f.words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
