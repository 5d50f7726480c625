package eightbit

// ReplacementFunc maps a rune to its byte in the target encoding.
// It must be total over rune and should be free of side effects; it is
// called once per encoded rune, in input order.
type ReplacementFunc func(r rune) byte

// Encode converts the first maxChars runes of s to bytes using fn.
// The result has length min(maxChars, runes in s) and is never nil.
//
// Invalid UTF-8 in s reaches fn as utf8.RuneError, one per bad byte.
func Encode(s string, maxChars int, fn ReplacementFunc) []byte {
	n := runeCount(s, maxChars)
	return Append(make([]byte, 0, n), s, n, fn)
}

// EncodeString is Encode returning a string. The string holds raw 8-bit
// data and is not necessarily valid UTF-8.
func EncodeString(s string, maxChars int, fn ReplacementFunc) string {
	return string(Encode(s, maxChars, fn))
}

// Append encodes up to maxChars runes of s with fn and appends the bytes
// to dst. It stops at the end of s if s holds fewer runes.
func Append(dst []byte, s string, maxChars int, fn ReplacementFunc) []byte {
	if maxChars <= 0 {
		return dst
	}

	n := 0
	for _, r := range s {
		dst = append(dst, fn(r))
		n++
		if n == maxChars {
			break
		}
	}
	return dst
}

// runeCount returns min(limit, runes in s) without scanning past limit.
func runeCount(s string, limit int) int {
	if limit <= 0 {
		return 0
	}

	n := 0
	for range s {
		n++
		if n == limit {
			break
		}
	}
	return n
}
