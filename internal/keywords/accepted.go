package keywords

import "sort"

// AcceptedList is the ordered keyword whitelist. A keyword's index is its
// priority: lower index sorts first. The list is immutable once built.
type AcceptedList struct {
	words []string
	index map[string]int
}

// NewAcceptedList builds a list from words in priority order. When a word
// repeats, its first position wins.
func NewAcceptedList(words []string) *AcceptedList {
	list := &AcceptedList{
		words: make([]string, 0, len(words)),
		index: make(map[string]int, len(words)),
	}
	for _, word := range words {
		if word == "" {
			continue
		}
		list.words = append(list.words, word)
		if _, exists := list.index[word]; !exists {
			list.index[word] = len(list.words) - 1
		}
	}
	return list
}

// ParseAccepted builds a list from newline-delimited text.
func ParseAccepted(text string) *AcceptedList {
	return NewAcceptedList(parseLines(text))
}

// Len reports the number of entries.
func (l *AcceptedList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.words)
}

// Position returns the priority of word, or -1 when it is not accepted.
// Matching is exact and case-sensitive.
func (l *AcceptedList) Position(word string) int {
	if l == nil {
		return -1
	}
	if pos, ok := l.index[word]; ok {
		return pos
	}
	return -1
}

// Filter keeps only accepted keywords, drops repeats, and orders the result
// by list priority.
func (l *AcceptedList) Filter(raw []string) []string {
	type ranked struct {
		pos  int
		word string
	}
	selected := make([]ranked, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, word := range raw {
		pos := l.Position(word)
		if pos < 0 {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		selected = append(selected, ranked{pos: pos, word: word})
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].pos < selected[j].pos
	})
	out := make([]string, len(selected))
	for i, r := range selected {
		out[i] = r.word
	}
	return out
}
