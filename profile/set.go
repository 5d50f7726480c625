package profile

import (
	"fmt"
	"strings"
)

// DefaultEnvPrefix is the environment prefix used by Set.LoadFromEnv.
const DefaultEnvPrefix = "STRKIT"

// Set is an ordered collection of uniquely named profiles.
type Set struct {
	Profiles []Profile `json:"profiles" yaml:"profiles" toml:"profiles" jsonschema:"minItems=1"`
}

// Defaults returns the header field limits of RFC 5424: HOSTNAME, APP-NAME,
// PROCID and MSGID, all printable US-ASCII.
func Defaults() *Set {
	return &Set{
		Profiles: []Profile{
			{Name: "hostname", MaxLength: 255, Charset: CharsetUSASCIIPrintable},
			{Name: "app-name", MaxLength: 48, Charset: CharsetUSASCIIPrintable},
			{Name: "procid", MaxLength: 128, Charset: CharsetUSASCIIPrintable},
			{Name: "msgid", MaxLength: 32, Charset: CharsetUSASCIIPrintable},
		},
	}
}

// Get returns the profile with the given name.
func (s *Set) Get(name string) (Profile, bool) {
	for _, p := range s.Profiles {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

// Names returns the profile names in file order.
func (s *Set) Names() []string {
	names := make([]string, 0, len(s.Profiles))
	for _, p := range s.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// Validate checks every profile and rejects empty sets and duplicate names.
func (s *Set) Validate() error {
	if len(s.Profiles) == 0 {
		return ErrEmpty
	}

	seen := make(map[string]struct{}, len(s.Profiles))
	for i := range s.Profiles {
		p := &s.Profiles[i]
		if err := p.Validate(); err != nil {
			return fmt.Errorf("profile %d (%s): %w", i, p.Name, err)
		}
		if _, ok := seen[p.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateProfile, p.Name)
		}
		seen[p.Name] = struct{}{}
	}
	return nil
}

// LoadFromEnv applies Profile.LoadFromEnv to every profile, using
// EnvPrefix(prefix, name) as each profile's prefix.
func (s *Set) LoadFromEnv(prefix string) {
	for i := range s.Profiles {
		s.Profiles[i].LoadFromEnv(EnvPrefix(prefix, s.Profiles[i].Name))
	}
}

// EnvPrefix derives the environment prefix for a profile: the upper-cased
// name with every character outside [A-Z0-9] replaced by '_', joined to
// prefix. EnvPrefix("STRKIT", "app-name") is "STRKIT_APP_NAME".
func EnvPrefix(prefix, name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r >= 'a' && r <= 'z':
			return r - 'a' + 'A'
		default:
			return '_'
		}
	}, name)
	return prefix + "_" + mapped
}
