// Package eightbit down-converts Unicode text into one-byte-per-character
// encodings.
//
// The conversion is driven by a ReplacementFunc that maps each rune to a
// single output byte. The package does not carry charset tables; callers
// supply the mapping, or bind one of the standard policies to a replacement
// byte with With:
//
//	fn := eightbit.With(eightbit.USASCIIPrintable, eightbit.DefaultReplacement)
//	b := eightbit.Encode("Hi! ☃", 10, fn) // "Hi!**"
//
// Output length is capped in runes, not bytes: the result holds exactly
// min(maxChars, number of runes in the input) bytes.
//
// # Debug Checks
//
// The standard policies require a 7-bit replacement byte. The requirement
// is only checked in binaries built with the strkit_debug build tag, where a
// violation panics.
package eightbit
