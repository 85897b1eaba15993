package internal

import (
	"slices"
	"strings"
	"testing"
)

func TestSeparatorSetContains(t *testing.T) {
	t.Parallel()

	seps := NewSeparatorSet(DefaultSeparators)
	for _, r := range DefaultSeparators {
		if !seps.Contains(r) {
			t.Errorf("Contains(%q) = false, want true", r)
		}
	}
	for _, r := range "abcXYZ09_é\"" {
		if seps.Contains(r) {
			t.Errorf("Contains(%q) = true, want false", r)
		}
	}
	if got, want := seps.Len(), len(DefaultSeparators); got != want {
		t.Errorf("Len() = %d, want %d", got, want)
	}
}

func TestSeparatorSetCaseInsensitive(t *testing.T) {
	t.Parallel()

	seps := NewSeparatorSet("xÉ")
	for _, r := range "xXéÉ" {
		if !seps.Contains(r) {
			t.Errorf("Contains(%q) = false, want true", r)
		}
	}
	if got := seps.String(); got != "xé" {
		t.Errorf("String() = %q, want %q", got, "xé")
	}
}

func TestNextSpan(t *testing.T) {
	t.Parallel()

	seps := NewSeparatorSet(DefaultSeparators)
	tests := []struct {
		name     string
		text     string
		position int
		want     string
	}{
		{"word at start", "hello world", 0, "hello"},
		{"separator run", "hello,  world", 5, ",  "},
		{"word after separators", "hello,  world", 8, "world"},
		{"final character word", "ab c", 3, "c"},
		{"final character separator", "abc.", 3, "."},
		{"whole text is one word", "word", 0, "word"},
		{"whole text is separators", " .,!", 0, " .,!"},
		{"middle of word", "hello", 2, "llo"},
		{"mixed case kept", "Hello World", 0, "Hello"},
		{"multibyte word", "naïve café", 0, "naïve"},
		{"multibyte after separator", "naïve café", 7, "café"},
		{"brackets and quotes", "[it's]", 0, "["},
		{"apostrophe splits", "it's", 0, "it"},
		{"out of range", "abc", 3, ""},
		{"negative position", "abc", -1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NextSpan(tt.text, tt.position, seps); got != tt.want {
				t.Errorf("NextSpan(%q, %d) = %q, want %q", tt.text, tt.position, got, tt.want)
			}
		})
	}
}

func TestSpansPartition(t *testing.T) {
	t.Parallel()

	seps := NewSeparatorSet(DefaultSeparators)
	texts := []string{
		"",
		"the cat sat on the mat the cat ran",
		"  leading and trailing  ",
		"Hello, World! (Again) [bracketed]; a:b/c-d.e?f",
		"tabs\tand\r\nnewlines\n",
		"üñíçødé wörds, ÀND ÇÄPS",
		"....",
		"x",
	}

	for _, text := range texts {
		spans := slices.Collect(Spans(text, seps))
		if joined := strings.Join(spans, ""); joined != text {
			t.Errorf("Spans(%q) joined = %q", text, joined)
		}
		for i, span := range spans {
			if span == "" {
				t.Errorf("Spans(%q)[%d] is empty", text, i)
			}
			if i > 0 && IsSeparatorSpan(span, seps) == IsSeparatorSpan(spans[i-1], seps) {
				t.Errorf("Spans(%q): adjacent spans %q and %q have the same kind", text, spans[i-1], span)
			}
		}
	}
}

func TestWords(t *testing.T) {
	t.Parallel()

	seps := NewSeparatorSet(DefaultSeparators)
	got := slices.Collect(Words("The cat -- sat; on (the) mat!", seps))
	want := []string{"The", "cat", "sat", "on", "the", "mat"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Words() = %v, want %v", got, want)
	}
}

func TestNextSpanCustomSeparators(t *testing.T) {
	t.Parallel()

	seps := NewSeparatorSet("|")
	if got := NextSpan("a b|c", 0, seps); got != "a b" {
		t.Errorf("NextSpan() = %q, want %q", got, "a b")
	}
	if got := NextSpan("a b||c", 3, seps); got != "||" {
		t.Errorf("NextSpan() = %q, want %q", got, "||")
	}
}

func TestIsSeparatorSpan(t *testing.T) {
	t.Parallel()

	seps := NewSeparatorSet(DefaultSeparators)
	if IsSeparatorSpan("", seps) {
		t.Error("empty span should not be a separator span")
	}
	if !IsSeparatorSpan(" ,", seps) {
		t.Error("\" ,\" should be a separator span")
	}
	if IsSeparatorSpan("word", seps) {
		t.Error("\"word\" should not be a separator span")
	}
}

func TestWordsStopsEarly(t *testing.T) {
	t.Parallel()

	seps := NewSeparatorSet(DefaultSeparators)
	var got []string
	for w := range Words("one, two, three", seps) {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	if strings.Join(got, "|") != "one|two" {
		t.Errorf("Words() yielded %v before break, want [one two]", got)
	}
}
