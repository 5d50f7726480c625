package cstring

import (
	"errors"
	"fmt"
)

// ErrEmbeddedNul indicates the input held a NUL byte before its end and the
// converted buffer was truncated there.
var ErrEmbeddedNul = errors.New("embedded nul in input")

// EmbeddedNulError reports where an input was cut.
type EmbeddedNulError struct {
	Position int // Byte offset of the first NUL in the input
	Length   int // Byte length of the original input
}

// Error implements the error interface.
func (e *EmbeddedNulError) Error() string {
	return fmt.Sprintf("%v at byte %d of %d", ErrEmbeddedNul, e.Position, e.Length)
}

// Unwrap returns ErrEmbeddedNul for errors.Is support.
func (e *EmbeddedNulError) Unwrap() error {
	return ErrEmbeddedNul
}
