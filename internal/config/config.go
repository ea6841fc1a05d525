// seehuhn.de/go/contrast - readable foreground colors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the optional configuration file of the contrast
// command.
//
// A configuration file may be written in TOML, YAML or JSON; the format is
// chosen by the file name extension.  Example (TOML):
//
//	background = "#fdf6e3"
//	color = "auto"
//
//	[roles]
//	"link:url" = "dark-blue"
//	warning = "orange"
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/contrast"
)

// Config holds the settings read from a configuration file.
// Unset values are nil.
type Config struct {
	Background *contrast.RGB
	Color      *string
	Roles      contrast.Scheme
}

// Load reads the configuration file at path.
// An empty path gives an empty configuration.
func Load(path string) (*Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return &Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses configuration data.  The format is selected by ext, which
// must be one of ".toml", ".yaml", ".yml" or ".json".
func Decode(data []byte, ext string) (*Config, error) {
	var raw map[string]any
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return decodeMap(raw)
}

func decodeMap(raw map[string]any) (*Config, error) {
	cfg := &Config{}
	for key, value := range raw {
		switch normalizeKey(key) {
		case "background":
			s, err := expectString(value, key)
			if err != nil {
				return nil, err
			}
			bg, err := contrast.ParseRGB(s)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			cfg.Background = &bg
		case "color":
			s, err := expectString(value, key)
			if err != nil {
				return nil, err
			}
			s = strings.TrimSpace(s)
			cfg.Color = &s
		case "roles":
			roles, err := decodeRoles(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			cfg.Roles = roles
		default:
			return nil, fmt.Errorf("unknown config key: %s", key)
		}
	}
	return cfg, nil
}

func decodeRoles(value any) (contrast.Scheme, error) {
	m, err := toStringKeyMap(value)
	if err != nil {
		return nil, err
	}
	roles := make(contrast.Scheme, len(m))
	for role, v := range m {
		name, err := expectString(v, role)
		if err != nil {
			return nil, err
		}
		f, err := contrast.ParseFamily(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", role, err)
		}
		roles[strings.TrimSpace(role)] = f
	}
	return roles, nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
