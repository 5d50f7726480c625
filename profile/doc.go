// Package profile describes 8-bit encoding targets declaratively.
//
// A Profile names a destination field, the character set it accepts, its
// length limit in characters and the byte to substitute for characters the
// set cannot represent. Profiles are usually loaded as a Set from a YAML,
// TOML or JSON file:
//
//	profiles:
//	  - name: app-name
//	    max_length: 48
//	    charset: us-ascii-printable
//	    replacement: "*"
//
// and applied with Encode:
//
//	set, err := profile.Load("profiles.yaml")
//	p, _ := set.Get("app-name")
//	field := p.Encode(appName)
//
// Defaults returns the RFC 5424 header field limits. Schema returns a JSON
// Schema for the file format, and Watch reloads a file when it changes.
package profile
