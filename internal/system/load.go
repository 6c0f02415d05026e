package system

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Load reads a system file. Files ending in ".json" are parsed as JSON,
// everything else as YAML.
func Load(path string) (*System, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
		return nil, fmt.Errorf("loading system %s: %w", path, err)
	}

	return decode(k)
}

// Parse decodes an in-memory system description. format is "json" or
// "yaml"; anything else is treated as YAML.
func Parse(data []byte, format string) (*System, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parserFor("."+format)); err != nil {
		return nil, fmt.Errorf("parsing system: %w", err)
	}

	return decode(k)
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Parser()
	}

	return yaml.Parser()
}

func decode(k *koanf.Koanf) (*System, error) {
	var spec Spec
	if err := k.Unmarshal("", &spec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSystem, err)
	}
	spec.Matrix.Format = strings.ToLower(strings.TrimSpace(spec.Matrix.Format))

	return spec.Build()
}
