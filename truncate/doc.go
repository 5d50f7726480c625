// Package truncate clips text to byte budgets without splitting UTF-8
// sequences.
//
// Storage columns, protocol fields and log lines usually limit values in
// bytes, not characters. Cutting a string at an arbitrary byte offset can
// leave half of a multi-byte character behind, which downstream decoders
// reject or render as U+FFFD. Everything in this package cuts on rune
// boundaries only.
//
// # Basic Usage
//
// Clip to a byte budget:
//
//	s := truncate.UTF8Safe("héllo", 2) // "h"
//
// UTF8Safe is generic over string and []byte and never allocates; it
// returns a prefix of its argument. UTF8SafeSuffix is the mirror operation
// and keeps the tail instead.
//
// # Strategies
//
// When a visible marker should show that content was removed, use a
// Truncator:
//
//   - FromEnd: Remove content from the end (default)
//   - FromMiddle: Remove content from the middle, keeping start and end
//   - FromStart: Remove content from the start
//
// The marker counts against the budget:
//
//	tr := truncate.NewFromEnd()
//	result, truncated := tr.Truncate(text, 255)
//
// # Convenience Functions
//
//	result := truncate.ToBytes(text, 64)   // UTF8Safe for strings
//	result := truncate.Ellipsize(text, 64) // FromEnd with "..."
package truncate
