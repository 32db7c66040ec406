package config

// Config represents the top-level configuration for an xmerge run.
type Config struct {
	// Scaling holds the target symmetry used for scaling and merging
	Scaling ScalingConfig `yaml:"scaling" toml:"scaling"`

	// Merging configures how observations are merged
	Merging MergingConfig `yaml:"merging" toml:"merging"`

	// Store configures where reflection tables are read from and written to
	Store StoreConfig `yaml:"store" toml:"store"`

	// Scripting configures the Lua scripting engine
	Scripting ScriptingConfig `yaml:"scripting" toml:"scripting"`

	// Pipeline configures the pipeline driver
	Pipeline PipelineConfig `yaml:"pipeline" toml:"pipeline"`

	// Logging configures the logging behavior
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// ScalingConfig holds the target symmetry.
type ScalingConfig struct {
	// UnitCell is (a, b, c, alpha, beta, gamma), optional
	UnitCell []float64 `yaml:"unit_cell" toml:"unit_cell"`

	// SpaceGroup is the target space group symbol or number
	SpaceGroup string `yaml:"space_group" toml:"space_group"`
}

// MergingConfig configures merging.
type MergingConfig struct {
	// MergeAnomalous merges Friedel mates into the same asymmetric unit index
	MergeAnomalous bool `yaml:"merge_anomalous" toml:"merge_anomalous"`

	// KeepColumns overrides the columns kept after pruning
	KeepColumns []string `yaml:"keep_columns" toml:"keep_columns"`
}

// StoreConfig configures reflection table storage.
type StoreConfig struct {
	// Type is the store backend ("bolt", "sqlite", "postgres", "mock")
	Type string `yaml:"type" toml:"type"`

	// BoltPath is the BoltDB file path
	BoltPath string `yaml:"bolt_path" toml:"bolt_path"`

	// SQLiteDSN is the SQLite data source name
	SQLiteDSN string `yaml:"sqlite_dsn" toml:"sqlite_dsn"`

	// PostgresDSN is the PostgreSQL connection string
	PostgresDSN string `yaml:"postgres_dsn" toml:"postgres_dsn"`
}

// ScriptingConfig configures the Lua scripting engine.
type ScriptingConfig struct {
	// Enabled turns on the Lua stage hooks
	Enabled bool `yaml:"enabled" toml:"enabled"`

	// Paths is a list of directories containing Lua scripts
	Paths []string `yaml:"paths" toml:"paths"`

	// TimeoutMs bounds each hook call
	TimeoutMs int `yaml:"timeout_ms" toml:"timeout_ms"`
}

// PipelineConfig configures the pipeline driver.
type PipelineConfig struct {
	// Partitions is the number of disjoint tables processed concurrently
	Partitions int `yaml:"partitions" toml:"partitions"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the logging level ("debug", "info", "warn", "error")
	Level string `yaml:"level" toml:"level"`

	// Format is the log format ("text", "json")
	Format string `yaml:"format" toml:"format"`
}
