package internal

import (
	"slices"
	"testing"
)

func words(list RankedList) []string {
	out := make([]string, len(list.Entries))
	for i, e := range list.Entries {
		out[i] = e.Word
	}
	return out
}

func TestSelectTop(t *testing.T) {
	t.Parallel()

	counts := map[string]int{"the": 3, "cat": 2, "sat": 1, "on": 1, "mat": 1, "ran": 1}

	tests := []struct {
		name      string
		n         int
		wantWords []string
		wantMax   int
		wantMin   int
	}{
		{"zero", 0, []string{}, 0, 0},
		{"negative", -2, []string{}, 0, 0},
		{"top one", 1, []string{"the"}, 3, 3},
		{"top two", 2, []string{"the", "cat"}, 3, 2},
		{"tie at cutoff is alphabetical", 3, []string{"the", "cat", "mat"}, 3, 1},
		{"tie at cutoff two deep", 4, []string{"the", "cat", "mat", "on"}, 3, 1},
		{"all", 6, []string{"the", "cat", "mat", "on", "ran", "sat"}, 3, 1},
		{"more than available", 100, []string{"the", "cat", "mat", "on", "ran", "sat"}, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := SelectTop(counts, tt.n)
			if !slices.Equal(words(got), tt.wantWords) {
				t.Errorf("SelectTop(%d) = %v, want %v", tt.n, words(got), tt.wantWords)
			}
			if got.MaxCount != tt.wantMax || got.MinCount != tt.wantMin {
				t.Errorf("SelectTop(%d) bounds = (%d, %d), want (%d, %d)",
					tt.n, got.MaxCount, got.MinCount, tt.wantMax, tt.wantMin)
			}
		})
	}
}

func TestSelectTopDominatesUnselected(t *testing.T) {
	t.Parallel()

	counts := map[string]int{"a": 5, "b": 9, "c": 1, "d": 7, "e": 7, "f": 2, "g": 5}
	for n := 0; n <= len(counts); n++ {
		list := SelectTop(counts, n)
		if list.Len() != min(n, len(counts)) {
			t.Fatalf("SelectTop(%d) returned %d entries", n, list.Len())
		}
		selected := make(map[string]bool)
		for _, e := range list.Entries {
			selected[e.Word] = true
		}
		for word, count := range counts {
			if selected[word] {
				continue
			}
			for _, e := range list.Entries {
				if e.Count < count {
					t.Errorf("SelectTop(%d): selected %s:%d below unselected %s:%d", n, e.Word, e.Count, word, count)
				}
			}
		}
	}
}

func TestSelectTopEmpty(t *testing.T) {
	t.Parallel()

	list := SelectTop(map[string]int{}, 5)
	if list.Len() != 0 || list.MaxCount != 0 || list.MinCount != 0 {
		t.Errorf("SelectTop(empty) = %+v", list)
	}
	if list.Degenerate() {
		t.Error("empty list should not be degenerate")
	}
}

func TestSelectTopDoesNotAlias(t *testing.T) {
	t.Parallel()

	list := SelectTop(map[string]int{"a": 2, "b": 1, "c": 1}, 1)
	if cap(list.Entries) != 1 {
		t.Errorf("SelectTop() entries cap = %d, want 1", cap(list.Entries))
	}
}

func TestOrderAlphabetically(t *testing.T) {
	t.Parallel()

	list := SelectTop(map[string]int{"the": 3, "cat": 2, "mat": 1, "zebra": 2, "apple": 1}, 5)
	ordered := OrderAlphabetically(list)

	want := []string{"apple", "cat", "mat", "the", "zebra"}
	if !slices.Equal(words(ordered), want) {
		t.Errorf("OrderAlphabetically() = %v, want %v", words(ordered), want)
	}
	if ordered.MaxCount != 3 || ordered.MinCount != 1 {
		t.Errorf("OrderAlphabetically() bounds = (%d, %d), want (3, 1)", ordered.MaxCount, ordered.MinCount)
	}
	if words(list)[0] != "the" {
		t.Error("OrderAlphabetically() must not reorder its input")
	}

	twice := OrderAlphabetically(ordered)
	if !slices.Equal(twice.Entries, ordered.Entries) {
		t.Errorf("OrderAlphabetically() is not idempotent: %v vs %v", words(twice), words(ordered))
	}
}

func TestOrderAlphabeticallyCaseInsensitive(t *testing.T) {
	t.Parallel()

	list := RankedList{
		Entries: []WordCount{{"Banana", 1}, {"apple", 1}, {"Cherry", 1}},
	}
	got := words(OrderAlphabetically(list))
	want := []string{"apple", "Banana", "Cherry"}
	if !slices.Equal(got, want) {
		t.Errorf("OrderAlphabetically() = %v, want %v", got, want)
	}
}

func TestRankedListDegenerate(t *testing.T) {
	t.Parallel()

	if !SelectTop(map[string]int{"only": 4}, 1).Degenerate() {
		t.Error("single-count selection should be degenerate")
	}
	if SelectTop(map[string]int{"a": 4, "b": 1}, 2).Degenerate() {
		t.Error("two-count selection should not be degenerate")
	}
}
