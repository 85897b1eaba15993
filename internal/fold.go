package internal

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Folder lowercases words for counting and comparison. A Folder is not safe
// for concurrent use; each goroutine needs its own.
type Folder struct {
	caser cases.Caser
}

func NewFolder() *Folder {
	return &Folder{caser: cases.Lower(language.Und)}
}

// Fold returns the lowercase form of word.
func (f *Folder) Fold(word string) string {
	if isLowerASCII(word) {
		return word
	}
	if isASCII(word) {
		return lowerASCII(word)
	}
	return f.caser.String(word)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func isLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x80 || ('A' <= c && c <= 'Z') {
			return false
		}
	}
	return true
}

func lowerASCII(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		b[i] = c
	}
	return string(b)
}
