package profile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a profile file encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q (must be .yaml, .yml, .toml or .json)", ErrUnknownFormat, filepath.Base(path))
	}
}

// Parse decodes and validates a profile set. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Set, error) {
	var set Set

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		var extra yaml.Node
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return nil, errors.New("decode yaml: unexpected content after profiles document")
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &set)
		if err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("decode toml: unknown key %q", undecoded[0].String())
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&set); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		if dec.More() {
			return nil, errors.New("decode json: unexpected content after profiles document")
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// Load reads and parses a profile file, choosing the format from its
// extension.
func Load(path string) (*Set, error) {
	set, _, err := loadFile(path)
	return set, err
}

// loadFile is Load that also returns the raw file content, if it was read.
func loadFile(path string) (*Set, []byte, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read profile file: %w", err)
	}

	set, err := Parse(data, format)
	if err != nil {
		return nil, data, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return set, data, nil
}
