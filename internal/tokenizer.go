// Package internal implements the text-to-tag-cloud pipeline: tokenizing,
// counting, ranking, font scaling and rendering.
package internal

import (
	"iter"
	"slices"
	"unicode"
	"unicode/utf8"
)

// DefaultSeparators is the separator alphabet used when none is configured.
const DefaultSeparators = " \t\n\r,-.!?[]';:/()"

// SeparatorSet classifies runes as word boundaries. Membership is
// case-insensitive: members and probes are lowercased before lookup.
type SeparatorSet struct {
	ascii [utf8.RuneSelf]bool
	other map[rune]struct{}
}

// NewSeparatorSet builds a set from every rune in chars.
func NewSeparatorSet(chars string) *SeparatorSet {
	s := &SeparatorSet{}
	for _, r := range chars {
		r = unicode.ToLower(r)
		if r < utf8.RuneSelf {
			s.ascii[r] = true
			continue
		}
		if s.other == nil {
			s.other = make(map[rune]struct{})
		}
		s.other[r] = struct{}{}
	}
	return s
}

// Contains reports whether r is a separator.
func (s *SeparatorSet) Contains(r rune) bool {
	r = unicode.ToLower(r)
	if r >= 0 && r < utf8.RuneSelf {
		return s.ascii[r]
	}
	_, ok := s.other[r]
	return ok
}

// Len returns the number of distinct separators.
func (s *SeparatorSet) Len() int {
	n := len(s.other)
	for _, ok := range s.ascii {
		if ok {
			n++
		}
	}
	return n
}

// String returns the members in code point order.
func (s *SeparatorSet) String() string {
	buf := make([]rune, 0, s.Len())
	for r, ok := range s.ascii {
		if ok {
			buf = append(buf, rune(r))
		}
	}
	extra := make([]rune, 0, len(s.other))
	for r := range s.other {
		extra = append(extra, r)
	}
	slices.Sort(extra)
	return string(append(buf, extra...))
}

// NextSpan returns the longest substring of text starting at byte offset
// position whose runes all share the separator membership of the first rune.
// position must lie on a rune boundary with 0 <= position < len(text).
func NextSpan(text string, position int, seps *SeparatorSet) string {
	if position < 0 || position >= len(text) {
		return ""
	}
	first, size := utf8.DecodeRuneInString(text[position:])
	want := seps.Contains(first)
	end := position + size
	for end < len(text) {
		r, n := utf8.DecodeRuneInString(text[end:])
		if seps.Contains(r) != want {
			break
		}
		end += n
	}
	return text[position:end]
}

// IsSeparatorSpan reports whether span is a run of separators.
func IsSeparatorSpan(span string, seps *SeparatorSet) bool {
	if span == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(span)
	return seps.Contains(r)
}

// Spans yields consecutive spans of text. Concatenating them reproduces text
// exactly.
func Spans(text string, seps *SeparatorSet) iter.Seq[string] {
	return func(yield func(string) bool) {
		for pos := 0; pos < len(text); {
			span := NextSpan(text, pos, seps)
			if !yield(span) {
				return
			}
			pos += len(span)
		}
	}
}

// Words yields only the non-separator spans of text, in order.
func Words(text string, seps *SeparatorSet) iter.Seq[string] {
	return func(yield func(string) bool) {
		for span := range Spans(text, seps) {
			if !IsSeparatorSpan(span, seps) && !yield(span) {
				return
			}
		}
	}
}
