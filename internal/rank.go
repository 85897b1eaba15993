package internal

import (
	"cmp"
	"slices"
	"strings"
)

// WordCount pairs a lowercase word with its occurrence count.
type WordCount struct {
	Word  string
	Count int
}

// RankedList is a snapshot of selected words with the bounds of their counts.
// MaxCount and MinCount are zero when Entries is empty.
type RankedList struct {
	Entries  []WordCount
	MaxCount int
	MinCount int
}

// Len returns the number of selected entries.
func (l RankedList) Len() int { return len(l.Entries) }

// Degenerate reports whether every selected entry shares a single count.
func (l RankedList) Degenerate() bool {
	return len(l.Entries) > 0 && l.MaxCount == l.MinCount
}

// byCountDesc orders by descending count, breaking ties alphabetically so
// the cutoff is deterministic.
func byCountDesc(a, b WordCount) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	return byWord(a, b)
}

// byWord orders by lowercase word, ascending.
func byWord(a, b WordCount) int {
	return strings.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word))
}

// SelectTop returns the n highest-count entries of counts. A negative n is
// treated as zero; an n larger than len(counts) selects everything.
func SelectTop(counts map[string]int, n int) RankedList {
	all := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		all = append(all, WordCount{Word: word, Count: count})
	}
	slices.SortFunc(all, byCountDesc)

	n = max(0, min(n, len(all)))
	selected := slices.Clip(all[:n])
	list := RankedList{Entries: selected}
	if n > 0 {
		list.MaxCount = selected[0].Count
		list.MinCount = selected[n-1].Count
	}
	return list
}

// OrderAlphabetically returns a copy of list sorted by lowercase word.
func OrderAlphabetically(list RankedList) RankedList {
	entries := slices.Clone(list.Entries)
	slices.SortFunc(entries, byWord)
	return RankedList{
		Entries:  entries,
		MaxCount: list.MaxCount,
		MinCount: list.MinCount,
	}
}
