// Package config loads curtain settings from TOML or YAML files and watches
// them for changes.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/curtain/pkg/curtain/easing"
	"github.com/BrandonKowalski/curtain/pkg/curtain/internal"
	"github.com/BrandonKowalski/curtain/pkg/curtain/transition"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported config format")
	// ErrInvalidLogLevel is returned when log_level is not a known level.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidEasing is returned when easing is neither a curve name nor
	// a list of four numbers.
	ErrInvalidEasing = errors.New("invalid easing")
)

// File is the decoded contents of a config file.
type File struct {
	LogLevel   string            `mapstructure:"log_level"`
	Transition transition.Config `mapstructure:"transition"`
}

// Load reads path and decodes it according to its extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	f, err := Parse(data, Format(path))
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	return f, nil
}

// Format returns the format name for path's extension, "toml" or "yaml",
// or the bare extension when it is neither.
func Format(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "yml" {
		return "yaml"
	}
	return ext
}

// Parse decodes data in the given format ("toml" or "yaml").
func Parse(data []byte, format string) (*File, error) {
	raw := map[string]any{}

	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	var f File
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: easingHook,
		Result:     &f,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}

	if f.LogLevel != "" {
		if _, ok := internal.ParseLevel(f.LogLevel); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogLevel, f.LogLevel)
		}
	}
	return &f, nil
}

var specType = reflect.TypeOf(easing.Spec{})

// easingHook accepts a curve name or a list of four control points
// wherever an easing.Spec is expected.
func easingHook(from, to reflect.Type, data any) (any, error) {
	if to != specType {
		return data, nil
	}

	switch v := data.(type) {
	case string:
		return easing.Named(v), nil
	case []any:
		if len(v) != 4 {
			return nil, fmt.Errorf("%w: want 4 control points, got %d", ErrInvalidEasing, len(v))
		}
		points := make([]float64, len(v))
		for i, p := range v {
			n, ok := toFloat(p)
			if !ok {
				return nil, fmt.Errorf("%w: control point %d is %T", ErrInvalidEasing, i, p)
			}
			points[i] = n
		}
		return easing.Spec{Points: points}, nil
	}
	return data, nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
