package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.RateLimitPerMin <= 0 {
		return fmt.Errorf("server.rate_limit_per_min must be > 0 (got %d)", c.Server.RateLimitPerMin)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= database.min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if err := c.Logbook.validate(); err != nil {
		return fmt.Errorf("logbook: %w", err)
	}

	return nil
}

func (l *LogbookConfig) validate() error {
	if l.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", l.DefaultPageSize)
	}
	if l.MaxPageSize < l.DefaultPageSize {
		return fmt.Errorf("max_page_size (%d) must be >= default_page_size (%d)",
			l.MaxPageSize, l.DefaultPageSize)
	}
	if l.MaxBatchItems <= 0 {
		return fmt.Errorf("max_batch_items must be > 0 (got %d)", l.MaxBatchItems)
	}
	if l.RetentionDays <= 0 {
		return fmt.Errorf("retention_days must be > 0 (got %d)", l.RetentionDays)
	}
	return nil
}
