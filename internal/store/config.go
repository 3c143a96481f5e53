package store

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetch struct {
		TimeoutSeconds    int `yaml:"timeout_seconds"`
		ProxyAttemptMS    int `yaml:"proxy_attempt_ms"`
		InterQueryDelayMS int `yaml:"inter_query_delay_ms"`
		MaxItemsPerFeed   int `yaml:"max_items_per_feed"`
	} `yaml:"fetch"`
	Analysis struct {
		WindowDays       int     `yaml:"window_days"`
		DedupThreshold   float64 `yaml:"dedup_threshold"`
		MaxItems         int     `yaml:"max_items"`
		MaxEnrichedItems int     `yaml:"max_enriched_items"`
	} `yaml:"analysis"`
	Social struct {
		Enabled     *bool   `yaml:"enabled"`
		BlendWeight float64 `yaml:"blend_weight"`
	} `yaml:"social"`
	RunLog struct {
		Enabled       *bool  `yaml:"enabled"`
		Dir           string `yaml:"dir"`
		RetentionDays int    `yaml:"retention_days"`
	} `yaml:"runlog"`
}

// SocialEnabled reports whether the grassroots supplement runs. On unless the
// config says otherwise.
func (c *Config) SocialEnabled() bool {
	return c.Social.Enabled == nil || *c.Social.Enabled
}

// RunLogEnabled reports whether completed runs are journaled. On unless the
// config says otherwise.
func (c *Config) RunLogEnabled() bool {
	return c.RunLog.Enabled == nil || *c.RunLog.Enabled
}

func (c *Config) Validate() error {
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be positive, got %d", c.Fetch.TimeoutSeconds)
	}
	if c.Analysis.WindowDays <= 0 {
		return fmt.Errorf("analysis.window_days must be positive, got %d", c.Analysis.WindowDays)
	}
	if c.Analysis.DedupThreshold <= 0 || c.Analysis.DedupThreshold > 1 {
		return fmt.Errorf("analysis.dedup_threshold must be in (0, 1], got %.2f", c.Analysis.DedupThreshold)
	}
	if c.Social.BlendWeight < 0 || c.Social.BlendWeight > 1 {
		return fmt.Errorf("social.blend_weight must be in [0, 1], got %.2f", c.Social.BlendWeight)
	}
	return nil
}

// FetchTimeout is the overall deadline for one feed fetch across all proxies.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}

// ProxyAttemptTimeout is the per-proxy deadline within a fetch.
func (c *Config) ProxyAttemptTimeout() time.Duration {
	return time.Duration(c.Fetch.ProxyAttemptMS) * time.Millisecond
}

// InterQueryDelay is the pause between sequential feed queries.
func (c *Config) InterQueryDelay() time.Duration {
	return time.Duration(c.Fetch.InterQueryDelayMS) * time.Millisecond
}

// DefaultConfig returns the built-in defaults, used when no config file is
// given.
func DefaultConfig() *Config {
	var c Config
	applyDefaults(&c)
	return &c
}

func applyDefaults(c *Config) {
	if c.Fetch.TimeoutSeconds == 0 {
		c.Fetch.TimeoutSeconds = 20
	}
	if c.Fetch.ProxyAttemptMS == 0 {
		c.Fetch.ProxyAttemptMS = 8000
	}
	if c.Fetch.InterQueryDelayMS == 0 {
		c.Fetch.InterQueryDelayMS = 350
	}
	if c.Fetch.MaxItemsPerFeed == 0 {
		c.Fetch.MaxItemsPerFeed = 25
	}
	if c.Analysis.WindowDays == 0 {
		c.Analysis.WindowDays = 28
	}
	if c.Analysis.DedupThreshold == 0 {
		c.Analysis.DedupThreshold = 0.6
	}
	if c.Analysis.MaxItems == 0 {
		c.Analysis.MaxItems = 80
	}
	if c.Analysis.MaxEnrichedItems == 0 {
		c.Analysis.MaxEnrichedItems = 5
	}
	if c.Social.BlendWeight == 0 {
		c.Social.BlendWeight = 0.3
	}
	if c.RunLog.Dir == "" {
		c.RunLog.Dir = "runs"
	}
	if c.RunLog.RetentionDays == 0 {
		c.RunLog.RetentionDays = 30
	}
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
