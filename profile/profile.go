package profile

import (
	"fmt"
	"os"
	"strconv"

	"github.com/randalmurphal/strkit/eightbit"
	"github.com/randalmurphal/strkit/truncate"
)

// Charset selects the replacement policy of a profile.
type Charset string

// Supported charsets.
const (
	// CharsetUSASCII maps US-ASCII through eightbit.USASCII.
	CharsetUSASCII Charset = "us-ascii"

	// CharsetUSASCIIPrintable maps printable US-ASCII through
	// eightbit.USASCIIPrintable. This is the default.
	CharsetUSASCIIPrintable Charset = "us-ascii-printable"
)

// Policy returns the eightbit policy for the charset.
// The empty charset means CharsetUSASCIIPrintable.
func (c Charset) Policy() (eightbit.Policy, error) {
	switch c {
	case "", CharsetUSASCIIPrintable:
		return eightbit.USASCIIPrintable, nil
	case CharsetUSASCII:
		return eightbit.USASCII, nil
	default:
		return nil, fmt.Errorf("%w: charset %q (must be us-ascii or us-ascii-printable)", ErrInvalidProfile, truncate.Ellipsize(string(c), 64))
	}
}

// Profile is an 8-bit encoding target.
// Zero values use sensible defaults where noted.
type Profile struct {
	// Name identifies the profile within a Set.
	Name string `json:"name" yaml:"name" toml:"name" jsonschema:"minLength=1,description=Unique profile name"`

	// MaxLength caps the encoded output in characters.
	// 0 encodes every value to an empty field.
	MaxLength int `json:"max_length" yaml:"max_length" toml:"max_length" jsonschema:"minimum=0,description=Maximum encoded length in characters"`

	// Charset selects the replacement policy.
	// Default: us-ascii-printable.
	Charset Charset `json:"charset,omitempty" yaml:"charset,omitempty" toml:"charset,omitempty" jsonschema:"enum=us-ascii,enum=us-ascii-printable,default=us-ascii-printable"`

	// Replacement is the single 7-bit character emitted for characters the
	// charset cannot represent.
	// Default: "*".
	Replacement string `json:"replacement,omitempty" yaml:"replacement,omitempty" toml:"replacement,omitempty" jsonschema:"maxLength=1,pattern=^[\\x00-\\x7F]?$,default=*"`
}

// Validate checks the profile fields.
func (p *Profile) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidProfile)
	}
	if p.MaxLength < 0 {
		return fmt.Errorf("%w: max_length must be >= 0, got %d", ErrInvalidProfile, p.MaxLength)
	}
	if _, err := p.Charset.Policy(); err != nil {
		return err
	}
	if !validReplacement(p.Replacement) {
		return fmt.Errorf("%w: replacement %q must be a single 7-bit character", ErrInvalidProfile, truncate.Ellipsize(p.Replacement, 16))
	}
	return nil
}

// ReplacementByte returns the configured replacement byte, or
// eightbit.DefaultReplacement when none is set.
func (p *Profile) ReplacementByte() byte {
	if p.Replacement == "" {
		return eightbit.DefaultReplacement
	}
	return p.Replacement[0]
}

// ReplacementFunc returns the mapping function for the profile.
// An unknown charset falls back to printable US-ASCII; call Validate first
// to reject it instead.
func (p *Profile) ReplacementFunc() eightbit.ReplacementFunc {
	policy, err := p.Charset.Policy()
	if err != nil {
		policy = eightbit.USASCIIPrintable
	}
	return eightbit.With(policy, p.ReplacementByte())
}

// Encode converts s to the profile's 8-bit encoding, keeping at most
// MaxLength characters.
func (p *Profile) Encode(s string) []byte {
	return eightbit.Encode(s, p.MaxLength, p.ReplacementFunc())
}

// EncodeString is Encode returning a string of raw 8-bit data.
func (p *Profile) EncodeString(s string) string {
	return eightbit.EncodeString(s, p.MaxLength, p.ReplacementFunc())
}

// LoadFromEnv overrides fields from environment variables named
// <prefix>_MAX_LENGTH, <prefix>_CHARSET and <prefix>_REPLACEMENT.
// Values that would not pass Validate are ignored.
func (p *Profile) LoadFromEnv(prefix string) {
	if v := os.Getenv(prefix + "_MAX_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			p.MaxLength = n
		}
	}
	if v := os.Getenv(prefix + "_CHARSET"); v != "" {
		if _, err := Charset(v).Policy(); err == nil {
			p.Charset = Charset(v)
		}
	}
	if v := os.Getenv(prefix + "_REPLACEMENT"); v != "" && validReplacement(v) {
		p.Replacement = v
	}
}

// validReplacement reports whether s is empty or a single 7-bit byte.
func validReplacement(s string) bool {
	return len(s) == 0 || (len(s) == 1 && s[0] <= 0x7F)
}
