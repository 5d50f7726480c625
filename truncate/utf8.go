package truncate

import "unicode/utf8"

// UTF8Safe returns the longest prefix of s that is at most maxBytes long and
// does not end inside a UTF-8 sequence. If s already fits it is returned
// unmodified. A maxBytes of zero or less yields an empty prefix.
//
// The result shares memory with s.
func UTF8Safe[S ~string | ~[]byte](s S, maxBytes int) S {
	n := min(max(maxBytes, 0), len(s))

	// Offset 0 is always a boundary, so this terminates.
	for n > 0 && n < len(s) && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// UTF8SafeSuffix returns the longest suffix of s that is at most maxBytes
// long and starts on a rune boundary. If s already fits it is returned
// unmodified.
//
// The result shares memory with s.
func UTF8SafeSuffix[S ~string | ~[]byte](s S, maxBytes int) S {
	start := len(s) - min(max(maxBytes, 0), len(s))

	for start < len(s) && !utf8.RuneStart(s[start]) {
		start++
	}
	return s[start:]
}

// ToBytes truncates text to at most maxBytes bytes on a rune boundary.
func ToBytes(text string, maxBytes int) string {
	return UTF8Safe(text, maxBytes)
}

// Ellipsize truncates text to at most maxBytes bytes, replacing the removed
// tail with DefaultEndSuffix.
func Ellipsize(text string, maxBytes int) string {
	result, _ := NewFromEnd().Truncate(text, maxBytes)
	return result
}
