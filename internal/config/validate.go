package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; LoadFrom calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	if err := c.Output.validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	if c.Store.Enabled && c.Database.DSN == "" {
		return fmt.Errorf("store.enabled requires database.dsn")
	}
	if c.Store.RetentionDays <= 0 {
		return fmt.Errorf("store: retention_days must be > 0 (got %d)", c.Store.RetentionDays)
	}
	if c.Store.Timeout <= 0 {
		return fmt.Errorf("store: timeout must be > 0 (got %s)", c.Store.Timeout)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn, error (got %q)", l.Level)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "json", "text":
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
	return nil
}

func (o *OutputConfig) validate() error {
	if !strings.HasPrefix(o.Extension, ".") || len(o.Extension) < 2 {
		return fmt.Errorf("extension must start with a dot (got %q)", o.Extension)
	}
	if strings.ContainsAny(o.Extension, `/\`) {
		return fmt.Errorf("extension must not contain path separators (got %q)", o.Extension)
	}
	return nil
}
