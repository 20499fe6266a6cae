package config

import (
	"fmt"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/leapstack-labs/reactlint/pkg/core"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output format %q (expected one of %v)", c.OutputFormat, OutputFormats)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must not be negative, got %d", c.Concurrency)
	}
	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}
	if c.Lint != nil {
		for id, name := range c.Lint.Severity {
			if _, ok := core.ParseSeverity(name); !ok {
				return fmt.Errorf("invalid severity %q for rule %s (expected error, warning, info or hint)", name, id)
			}
		}
	}
	if c.Cache != nil && c.Cache.Enabled && c.Cache.Path == "" {
		return fmt.Errorf("cache.path is required when the cache is enabled")
	}
	return nil
}
