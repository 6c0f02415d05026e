package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "LINSYS_"

// defaults is the lowest configuration layer.
func defaults() map[string]any {
	return map[string]any{
		"log.level":        "warn",
		"log.format":       "text",
		"report.format":    "text",
		"report.precision": 6,
		"report.margins":   false,
	}
}

// Load reads configuration using a 3-layer hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. YAML file at path (skipped when path is empty)
//  3. Environment variables (LINSYS_ prefix)
//
// Environment variable mapping uses key matching against loaded config keys
// so that field-internal underscores survive:
//
//	LINSYS_LOG_LEVEL        -> log.level
//	LINSYS_REPORT_PRECISION -> report.precision
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: optional config file.
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config %s: %w", path, err)
		}
	}

	// Layer 3: environment variables.
	envLookup := buildEnvLookup(k.Keys())
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if koanfKey, ok := envLookup[key]; ok {
				return koanfKey, value
			}

			// Fallback: simple underscore-to-dot replacement.
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// buildEnvLookup maps env-style keys ("report_precision") to koanf dotted
// keys ("report.precision").
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return lookup
}
