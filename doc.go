// Package strkit provides byte-safe text clipping and lossy 8-bit encoding.
//
// strkit is a set of small packages, each usable on its own:
//
//   - truncate: clip text to byte budgets on UTF-8 boundaries
//   - cstring: NUL-terminated buffers for C-style interop
//   - eightbit: one-byte-per-character encoding with pluggable mapping
//   - profile: declarative 8-bit encoding profiles (YAML, TOML, JSON)
//
// # Quick Start
//
// Truncation:
//
//	import "github.com/randalmurphal/strkit/truncate"
//	s := truncate.UTF8Safe("héllo", 2) // "h"
//
// NUL-terminated buffers:
//
//	import "github.com/randalmurphal/strkit/cstring"
//	buf, err := cstring.FromString("AB\x00CD") // "AB\x00", ErrEmbeddedNul
//
// 8-bit encoding:
//
//	import "github.com/randalmurphal/strkit/eightbit"
//	fn := eightbit.With(eightbit.USASCIIPrintable, eightbit.DefaultReplacement)
//	b := eightbit.Encode("Hi!", 10, fn) // []byte{0x48, 0x69, 0x21}
//
// # Design Philosophy
//
//   - Core packages are pure and allocation-conscious
//   - Lossy operations report what they dropped instead of failing
//   - Each package usable independently
//   - Sensible defaults with full configurability
package strkit
