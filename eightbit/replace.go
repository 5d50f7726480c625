package eightbit

import "fmt"

// DefaultReplacement is the suggested byte for characters the target
// encoding cannot represent.
const DefaultReplacement byte = '*'

// Policy maps a rune to a byte, falling back to replacement when the rune
// is not representable. USASCII and USASCIIPrintable are policies.
type Policy func(r rune, replacement byte) byte

// With binds a policy to a replacement byte.
func With(policy Policy, replacement byte) ReplacementFunc {
	checkReplacement(replacement)
	return func(r rune) byte {
		return policy(r, replacement)
	}
}

// USASCIIPrintable maps printable US-ASCII (0x21 through 0x7E) to itself
// and everything else, including space, DEL and control codes, to
// replacement. Suitable for RFC 5424 header fields.
func USASCIIPrintable(r rune, replacement byte) byte {
	checkReplacement(replacement)
	if r >= 0x21 && r <= 0x7E {
		return byte(r)
	}
	return replacement
}

// USASCII maps US-ASCII to itself and everything else to replacement.
//
// It currently applies the same range as USASCIIPrintable.
// TODO: decide whether space and control codes belong here; callers rely on
// both names staying separate.
func USASCII(r rune, replacement byte) byte {
	checkReplacement(replacement)
	if r >= 0x21 && r <= 0x7E {
		return byte(r)
	}
	return replacement
}

func checkReplacement(replacement byte) {
	if debugChecks && replacement > 0x7F {
		panic(fmt.Sprintf("eightbit: replacement must be 7-bit, not %#x", replacement))
	}
}
