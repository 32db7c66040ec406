package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lexlapax/xmerge/pkg/log"
	"github.com/lexlapax/xmerge/pkg/symmetry"
	"gopkg.in/yaml.v3"
)

// Defaults applied by validation.
const (
	DefaultStoreType  = "bolt"
	DefaultBoltPath   = "xmerge.db"
	DefaultPartitions = 1
	DefaultTimeoutMs  = 1000
)

// LoadFromFile loads configuration from a YAML or TOML file, chosen by extension.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadFromTOMLBytes(data)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return finish(&config)
}

// LoadFromTOMLBytes loads configuration from TOML bytes.
func LoadFromTOMLBytes(data []byte) (*Config, error) {
	var config Config
	if _, err := toml.Decode(string(data), &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return finish(&config)
}

func finish(config *Config) (*Config, error) {
	if err := applyEnvironmentOverrides(config); err != nil {
		return nil, fmt.Errorf("invalid environment override: %w", err)
	}
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func applyEnvironmentOverrides(config *Config) error {
	if sg := os.Getenv("XMERGE_SPACE_GROUP"); sg != "" {
		config.Scaling.SpaceGroup = sg
	}

	if cell := os.Getenv("XMERGE_UNIT_CELL"); cell != "" {
		params, err := parseUnitCell(cell)
		if err != nil {
			return fmt.Errorf("XMERGE_UNIT_CELL: %w", err)
		}
		config.Scaling.UnitCell = params
	}

	if v := os.Getenv("XMERGE_MERGE_ANOMALOUS"); v != "" {
		merge, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("XMERGE_MERGE_ANOMALOUS: %w", err)
		}
		config.Merging.MergeAnomalous = merge
	}

	if storeType := os.Getenv("XMERGE_STORE_TYPE"); storeType != "" {
		config.Store.Type = storeType
	}

	// The DSN override applies to whichever backend is selected
	if dsn := os.Getenv("XMERGE_STORE_DSN"); dsn != "" {
		switch strings.ToLower(config.Store.Type) {
		case "sqlite":
			config.Store.SQLiteDSN = dsn
		case "postgres":
			config.Store.PostgresDSN = dsn
		default:
			config.Store.BoltPath = dsn
		}
	}

	if level := os.Getenv("XMERGE_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	return nil
}

func parseUnitCell(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	params := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid unit cell parameter %q", f)
		}
		params = append(params, v)
	}
	return params, nil
}

// validateConfig validates the configuration and applies defaults.
func validateConfig(config *Config) error {
	// Validate scaling configuration
	if config.Scaling.SpaceGroup == "" {
		return fmt.Errorf("scaling space_group is required")
	}
	sg, err := symmetry.LookupSpaceGroup(config.Scaling.SpaceGroup)
	if err != nil {
		return err
	}
	if len(config.Scaling.UnitCell) > 0 {
		cell, err := symmetry.NewUnitCell(config.Scaling.UnitCell)
		if err != nil {
			return err
		}
		if _, err := symmetry.NewCrystalSymmetry(cell, sg); err != nil {
			return err
		}
	}

	// Validate store configuration
	if config.Store.Type == "" {
		config.Store.Type = DefaultStoreType
	}
	config.Store.Type = strings.ToLower(config.Store.Type)
	switch config.Store.Type {
	case "bolt", "boltdb":
		config.Store.Type = "bolt"
		if config.Store.BoltPath == "" {
			config.Store.BoltPath = DefaultBoltPath
		}
	case "sqlite":
		if config.Store.SQLiteDSN == "" {
			return fmt.Errorf("sqlite_dsn is required for sqlite store type")
		}
	case "postgres":
		if config.Store.PostgresDSN == "" {
			return fmt.Errorf("postgres_dsn is required for postgres store type")
		}
	case "mock":
		// Mock store doesn't require additional validation
	default:
		return fmt.Errorf("unsupported store type: %s", config.Store.Type)
	}

	// Validate pipeline configuration
	if config.Pipeline.Partitions < 0 {
		return fmt.Errorf("pipeline partitions must not be negative: %d", config.Pipeline.Partitions)
	}
	if config.Pipeline.Partitions == 0 {
		config.Pipeline.Partitions = DefaultPartitions
	}

	if config.Scripting.TimeoutMs <= 0 {
		config.Scripting.TimeoutMs = DefaultTimeoutMs
	}

	// Validate logging configuration
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", config.Logging.Level)
	}
	if config.Logging.Format == "" {
		config.Logging.Format = "text"
	}
	if config.Logging.Format != "text" && config.Logging.Format != "json" {
		return fmt.Errorf("unsupported log format: %s", config.Logging.Format)
	}

	return nil
}

// LogConfig converts the logging section for log.Setup.
func (c LoggingConfig) LogConfig() log.Config {
	return log.Config{
		Level:  log.Level(strings.ToLower(c.Level)),
		Format: log.Format(c.Format),
	}
}
