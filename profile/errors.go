package profile

import "errors"

// Sentinel errors for profile operations.
var (
	// ErrInvalidProfile is returned when a profile fails validation.
	ErrInvalidProfile = errors.New("invalid profile")

	// ErrDuplicateProfile is returned when two profiles in a set share a name.
	ErrDuplicateProfile = errors.New("duplicate profile name")

	// ErrEmpty is returned when a profile file defines no profiles.
	ErrEmpty = errors.New("no profiles defined")

	// ErrUnknownFormat is returned for file formats other than YAML, TOML or JSON.
	ErrUnknownFormat = errors.New("unknown profile format")
)
