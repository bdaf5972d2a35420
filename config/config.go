// Package config provides YAML configuration loading for the externally
// tunable knobs this core exposes: the default reduction budget, the
// opcode-fetch reduction cost, heap-full retry policy, and log level.
// Mirrors internal/config.LoadConfig in the example this core is
// grounded on: default-on-missing-file, validate-on-present-file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for one VM instance.
type Config struct {
	// Reductions bounds how much work a process may do per schedule
	// before being preempted (§3.3, §5).
	Reductions ReductionsConfig `yaml:"reductions"`

	// HeapRetry configures the exponential-backoff retry applied on
	// HeapIsFull before escalating to system_limit (§7).
	HeapRetry HeapRetryConfig `yaml:"heap_retry"`

	// LogLevel sets the minimum log severity: "debug", "info", "warn",
	// or "error". Defaults to "info" when omitted.
	LogLevel string `yaml:"log_level"`
}

// ReductionsConfig mirrors defs::Reductions from the original.
type ReductionsConfig struct {
	// Default is the reduction budget assigned at every swap_in.
	Default int `yaml:"default"`

	// FetchOpcodeCost is charged from the budget on every opcode fetch.
	FetchOpcodeCost int `yaml:"fetch_opcode_cost"`
}

// HeapRetryConfig configures heap.AllocWithRetry's backoff.
type HeapRetryConfig struct {
	InitialInterval time.Duration `yaml:"initial_interval"`
	MaxInterval     time.Duration `yaml:"max_interval"`
	MaxRetries      int           `yaml:"max_retries"`
}

// BackOff builds the backoff.BackOff heap.AllocWithRetry should use.
func (h HeapRetryConfig) BackOff() backoff.BackOff {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = h.InitialInterval
	eb.MaxInterval = h.MaxInterval
	eb.MaxElapsedTime = 0
	return backoff.WithMaxRetries(eb, uint64(h.MaxRetries))
}

// Default returns the configuration this core runs with when no file is
// given: a 2000-reduction budget, a 1-reduction opcode fetch cost, and a
// short, bounded heap-retry policy.
func Default() *Config {
	return &Config{
		Reductions: ReductionsConfig{Default: 2000, FetchOpcodeCost: 1},
		HeapRetry: HeapRetryConfig{
			InitialInterval: 1 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			MaxRetries:      5,
		},
		LogLevel: "info",
	}
}

// Load reads and validates a YAML configuration file at path. A missing
// file is not an error: Default() is returned instead, matching the
// original's "no config file ⇒ built-in defaults" posture for a core
// that owns no persistent state (§6: "No CLI, no environment variables,
// no persistent state are owned by this core").
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations that would make the runtime
// unschedulable, a negative heap-retry count, or an unknown log level.
// A max_retries of 0 is accepted and means a single allocation attempt
// with no retry.
func (c *Config) Validate() error {
	if c.Reductions.Default <= 0 {
		return fmt.Errorf("reductions.default must be positive, got %d", c.Reductions.Default)
	}
	if c.Reductions.FetchOpcodeCost <= 0 {
		return fmt.Errorf("reductions.fetch_opcode_cost must be positive, got %d", c.Reductions.FetchOpcodeCost)
	}
	if c.HeapRetry.MaxRetries < 0 {
		return fmt.Errorf("heap_retry.max_retries must not be negative, got %d", c.HeapRetry.MaxRetries)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug/info/warn/error, got %q", c.LogLevel)
	}
	return nil
}
