// Package cstring converts Go strings to NUL-terminated byte buffers for
// APIs that find the end of a string by its terminator rather than a length.
//
// Go strings may contain NUL bytes; C strings cannot. FromString never fails
// outright: when the input holds an embedded NUL, the buffer is cut at the
// first one and an advisory *EmbeddedNulError is returned with it. Callers
// that only need a safe buffer may ignore the error.
//
//	buf, err := cstring.FromString("AB\x00CD")
//	// buf == []byte("AB\x00"), errors.Is(err, cstring.ErrEmbeddedNul)
package cstring
