package config

import "github.com/shiv50084/fantasyname/errors"

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Pattern == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "pattern cannot be empty")
	}

	if c.Count < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "count must be >= 1, got %d", c.Count)
	}

	// List limit: 0 = guard disabled, negative = invalid
	if c.List.Limit < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "list.limit must be >= 0, got %d", c.List.Limit)
	}

	// Inspect warn count: 0 = warning disabled, negative = invalid
	if c.Inspect.WarnCount < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "inspect.warn_count must be >= 0, got %d", c.Inspect.WarnCount)
	}

	return nil
}
