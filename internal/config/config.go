package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/panicit/internal/logging"
	"github.com/eugenenazirov/panicit/internal/storage"
)

const defaultLogFormat = logging.FormatConsole

// Environment variables read by Load.
const (
	EnvExit      = "PANICIT_EXIT"
	EnvSilent    = "PANICIT_SILENT"
	EnvExitCode  = "PANICIT_EXIT_CODE"
	EnvLogFormat = "PANICIT_LOG_FORMAT"
)

// Config aggregates runtime configuration resolved from multiple sources.
// Precedence: CLI flags > YAML config > Environment variables > Defaults
type Config struct {
	// Defaults holds only the fields some source set; the store keeps its
	// own values for the rest.
	Defaults  storage.Partial
	LogFormat string
}

// yamlConfig represents the YAML configuration file structure.
type yamlConfig struct {
	Exit      *bool  `yaml:"exit"`
	Silent    *bool  `yaml:"silent"`
	ExitCode  any    `yaml:"exit_code"`
	LogFormat string `yaml:"log_format"`
}

// CLIOverrides holds command-line flag overrides. Nil fields were not given.
type CLIOverrides struct {
	ConfigFile string
	LogFormat  *string
	Exit       *bool
	Silent     *bool
	ExitCode   *string
}

// Load extracts configuration from multiple sources with precedence:
// CLI flags > YAML config > Environment variables > Defaults
func Load(overrides *CLIOverrides) (Config, error) {
	cfg := defaultConfig()

	applyEnvConfig(&cfg)

	if overrides != nil && overrides.ConfigFile != "" {
		yamlCfg, err := loadFromFile(overrides.ConfigFile)
		if err != nil {
			return Config{}, fmt.Errorf("load YAML config: %w", err)
		}
		applyYAMLConfig(&cfg, yamlCfg)
	}

	if overrides != nil {
		applyCLIOverrides(&cfg, overrides)
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// defaultConfig returns a Config that changes no stored defaults.
func defaultConfig() Config {
	return Config{
		LogFormat: defaultLogFormat,
	}
}

// loadFromFile loads configuration from a YAML file.
func loadFromFile(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlCfg, nil
}

// applyYAMLConfig applies YAML configuration to the Config struct.
func applyYAMLConfig(cfg *Config, yamlCfg *yamlConfig) {
	if yamlCfg.Exit != nil {
		cfg.Defaults.Exit = yamlCfg.Exit
	}

	if yamlCfg.Silent != nil {
		cfg.Defaults.Silent = yamlCfg.Silent
	}

	if yamlCfg.ExitCode != nil {
		cfg.Defaults.ExitCode = yamlCfg.ExitCode
	}

	if format := strings.TrimSpace(yamlCfg.LogFormat); format != "" {
		cfg.LogFormat = format
	}
}

// applyEnvConfig applies environment variable configuration.
func applyEnvConfig(cfg *Config) {
	if exit, ok := envBool(EnvExit); ok {
		cfg.Defaults.Exit = &exit
	}

	if silent, ok := envBool(EnvSilent); ok {
		cfg.Defaults.Silent = &silent
	}

	if code := strings.TrimSpace(os.Getenv(EnvExitCode)); code != "" {
		cfg.Defaults.ExitCode = code
	}

	if format := strings.TrimSpace(os.Getenv(EnvLogFormat)); format != "" {
		cfg.LogFormat = format
	}
}

// applyCLIOverrides applies command-line flag overrides.
func applyCLIOverrides(cfg *Config, overrides *CLIOverrides) {
	if overrides.Exit != nil {
		cfg.Defaults.Exit = overrides.Exit
	}

	if overrides.Silent != nil {
		cfg.Defaults.Silent = overrides.Silent
	}

	if overrides.ExitCode != nil {
		cfg.Defaults.ExitCode = *overrides.ExitCode
	}

	if overrides.LogFormat != nil && *overrides.LogFormat != "" {
		cfg.LogFormat = *overrides.LogFormat
	}
}

// validateConfig validates the final configuration. Exit codes are not
// checked here; the store normalises them.
func validateConfig(cfg Config) error {
	switch cfg.LogFormat {
	case logging.FormatConsole, logging.FormatJSON:
		return nil
	}
	return fmt.Errorf("%w: %q", logging.ErrUnknownLogFormat, cfg.LogFormat)
}

// envBool reads a boolean variable. Unset or unparsable values report false.
func envBool(key string) (bool, bool) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return false, false
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return value, true
}
