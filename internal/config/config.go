package config

import "time"

// Config is the root application configuration.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Output   OutputConfig   `yaml:"output"`
	Store    StoreConfig    `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// PuzzleConfig holds puzzle validation settings.
type PuzzleConfig struct {
	AllowRectangular bool `yaml:"allow_rectangular" env:"PUZZLE_ALLOW_RECTANGULAR" env-default:"false"`
}

// OutputConfig controls the result file written next to the input.
type OutputConfig struct {
	Skip      bool   `yaml:"skip"      env:"OUTPUT_SKIP"      env-default:"false"`
	Extension string `yaml:"extension" env:"OUTPUT_EXTENSION" env-default:".output"`
}

// StoreConfig controls persistence of solved puzzles.
type StoreConfig struct {
	Enabled       bool          `yaml:"enabled"        env:"STORE_ENABLED"        env-default:"false"`
	RetentionDays int           `yaml:"retention_days" env:"STORE_RETENTION_DAYS" env-default:"30"`
	Timeout       time.Duration `yaml:"timeout"        env:"STORE_TIMEOUT"        env-default:"30s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
// DSN is only required when the store is used.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"5m"`
}

// Retention returns the configured retention period of stored runs.
func (s StoreConfig) Retention() time.Duration {
	return time.Duration(s.RetentionDays) * 24 * time.Hour
}
