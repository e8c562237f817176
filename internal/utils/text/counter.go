// Package text provides small text helpers shared by the summarizer and
// sentiment adapters.
package text

import (
	"strings"
	"unicode/utf8"
)

// CountWords returns the number of whitespace-separated words in s.
// Summary bounds are expressed in words, so every summarizer measures its
// output with this function.
//
//	CountWords("hello world")   // 2
//	CountWords("  a \n b\tc ")  // 3
//	CountWords("")              // 0
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// CountRunes counts Unicode characters rather than bytes.
func CountRunes(s string) int {
	return utf8.RuneCountInString(s)
}

// TruncateWords keeps the first max words of s joined by single spaces.
// Text with max words or fewer is returned unchanged.
func TruncateWords(s string, max int) string {
	if max <= 0 {
		return ""
	}
	words := strings.Fields(s)
	if len(words) <= max {
		return s
	}
	return strings.Join(words[:max], " ")
}

// TruncateRunes cuts s to at most max runes without splitting a character.
func TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
