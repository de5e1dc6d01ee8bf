// Package config loads CLI-tunable settings: an optional YAML file
// overlaid with environment variables, following the same two-layer Load()
// shape used elsewhere in this stack.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the handful of knobs the reconstruction CLI exposes.
type Config struct {
	RingBufferSize int    `yaml:"ring_buffer_size"`
	LogLevel       string `yaml:"log_level"`
	LogPretty      bool   `yaml:"log_pretty"`
	OutputPath     string `yaml:"output_path"`
}

func defaultConfig() Config {
	return Config{
		RingBufferSize: 65536,
		LogLevel:       "info",
		LogPretty:      true,
		OutputPath:     "output_mbp.csv",
	}
}

// Load returns the default config, overlaid with an optional YAML file
// named by MBP10_CONFIG, then overlaid with individual MBP10_* env vars.
func Load() Config {
	c := defaultConfig()

	if path := os.Getenv("MBP10_CONFIG"); path != "" {
		if b, err := os.ReadFile(path); err == nil {
			_ = yaml.Unmarshal(b, &c)
		}
	}

	if v := os.Getenv("MBP10_RING_BUFFER_SIZE"); v != "" {
		var n int
		if _, err := fmt.Sscan(v, &n); err == nil && n > 0 && n&(n-1) == 0 {
			c.RingBufferSize = n
		}
	}
	if v := os.Getenv("MBP10_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("MBP10_LOG_PRETTY"); v != "" {
		c.LogPretty = v == "1" || v == "true"
	}
	if v := os.Getenv("MBP10_OUTPUT_PATH"); v != "" {
		c.OutputPath = v
	}

	return c
}
