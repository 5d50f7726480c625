package cstring

import (
	"bytes"
	"strings"
)

// FromString returns the bytes of s followed by a single NUL terminator.
//
// If s contains a NUL byte, the content is cut at the first one and the
// returned error is an *EmbeddedNulError. The buffer is valid either way:
// it never holds a NUL before its last byte.
func FromString(s string) ([]byte, error) {
	var err error
	if i := strings.IndexByte(s, 0); i >= 0 {
		err = &EmbeddedNulError{Position: i, Length: len(s)}
		s = s[:i]
	}

	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf, err
}

// FromBytes is FromString for byte slices. The returned buffer never
// aliases b.
func FromBytes(b []byte) ([]byte, error) {
	var err error
	if i := bytes.IndexByte(b, 0); i >= 0 {
		err = &EmbeddedNulError{Position: i, Length: len(b)}
		b = b[:i]
	}

	buf := make([]byte, len(b)+1)
	copy(buf, b)
	return buf, err
}

// String returns the content of a NUL-terminated buffer, up to but not
// including the first NUL. A buffer without a terminator is returned whole.
func String(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
