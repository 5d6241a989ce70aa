package keywords

import "strings"

// TidyList holds suffixes stripped from keywords before rendering, in the
// order they are tried.
type TidyList struct {
	suffixes []string
}

// NewTidyList builds a list from suffixes in match order.
func NewTidyList(suffixes []string) *TidyList {
	list := &TidyList{suffixes: make([]string, 0, len(suffixes))}
	for _, s := range suffixes {
		if s == "" {
			continue
		}
		list.suffixes = append(list.suffixes, s)
	}
	return list
}

// ParseTidy builds a list from newline-delimited text.
func ParseTidy(text string) *TidyList {
	return NewTidyList(parseLines(text))
}

// Len reports the number of suffixes.
func (l *TidyList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.suffixes)
}

// Tidy removes the first matching suffix from keyword and trims the rest.
// At most one suffix is removed; unmatched keywords are returned unchanged.
func (l *TidyList) Tidy(keyword string) string {
	if l == nil {
		return keyword
	}
	for _, suffix := range l.suffixes {
		if strings.HasSuffix(keyword, suffix) {
			return strings.TrimSpace(strings.TrimSuffix(keyword, suffix))
		}
	}
	return keyword
}

// TidyAll applies Tidy to every keyword, keeping order.
func (l *TidyList) TidyAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = l.Tidy(w)
	}
	return out
}
