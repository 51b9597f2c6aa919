package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"
)

const historyFile = ".lishp_history"

// Config represents the lishp configuration
type Config struct {
	// Format is the default output format of parse and repl.
	Format string `yaml:"format" toml:"format"`
	// Color enables colored output when the terminal supports it.
	Color bool `yaml:"color" toml:"color"`
	// KeepComments makes the tokens command print comments.
	KeepComments bool `yaml:"keep_comments" toml:"keep_comments"`
	// History is the file the repl keeps its history in.
	History string `yaml:"history" toml:"history"`
}

// DefaultConfig returns the configuration used when no file is found
func DefaultConfig() *Config {
	return &Config{
		Format: FormatSExpr,
		Color:  true,
	}
}

// LoadConfig loads the configuration file at configPath. The decoder is
// picked by extension, an unknown one is an error even when the file does
// not exist. A missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		decode, err := configDecoder(configPath)
		if err != nil {
			return nil, err
		}

		data, err := os.ReadFile(configPath)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := decode(data, config); err != nil {
				return nil, err
			}
		}
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	applyDefaults(config)

	return config, nil
}

func configDecoder(configPath string) (func([]byte, *Config) error, error) {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return decodeYAML, nil
	case ".toml":
		return decodeTOML, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfigFormat, configPath)
}

func decodeYAML(data []byte, config *Config) error {
	// Strict mode rejects unknown fields
	if err := yaml.UnmarshalWithOptions(data, config, yaml.Strict()); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func decodeTOML(data []byte, config *Config) error {
	md, err := toml.Decode(string(data), config)
	if err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown field %q", ErrConfigValidation, undecoded[0].String())
	}
	return nil
}

func validateConfig(config *Config) error {
	if !isFormat(config.Format) {
		return fmt.Errorf("%w: format must be one of %s, got %q", ErrConfigValidation, strings.Join(formats, ", "), config.Format)
	}
	return nil
}

func applyDefaults(config *Config) {
	if config.History == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		config.History = filepath.Join(home, historyFile)
		return
	}

	config.History = os.ExpandEnv(config.History)
	if strings.HasPrefix(config.History, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			config.History = filepath.Join(home, config.History[2:])
		}
	}
}
