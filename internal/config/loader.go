package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atlanticdynamic/autodgm/internal/interpolation"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a configuration document
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the document format from the file extension
func FormatFromPath(filePath string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, ext)
	}
}

// NewConfig loads, interpolates and validates the configuration file
func NewConfig(filePath string) (*Config, error) {
	format, err := FormatFromPath(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	return NewConfigFromBytes(data, format)
}

// NewConfigFromReader loads configuration from an io.Reader
func NewConfigFromReader(reader io.Reader, format Format) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config data from reader: %w", ErrFailedToLoadConfig, err)
	}
	return NewConfigFromBytes(data, format)
}

// NewConfigFromBytes decodes the document, expands environment references and validates it
func NewConfigFromBytes(data []byte, format Format) (*Config, error) {
	cfg, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if err := interpolation.InterpolateStruct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToValidateConfig, err)
	}

	return cfg, nil
}

func decode(data []byte, format Format) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoSourceProvided
	}

	cfg := &Config{}
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnsupportedFormat, format)
	}
	return cfg, nil
}
