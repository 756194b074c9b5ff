package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Config holds the server settings. Zero or omitted fields fall back to
// the defaults, so a config file only needs the keys it changes.
type Config struct {
	Addr                  string `yaml:"addr"`
	AllowOrigins          string `yaml:"allow_origins"`
	ClockSeconds          int    `yaml:"clock_seconds"`
	MatchmakingIntervalMS int    `yaml:"matchmaking_interval_ms"`
	MatchWaitTimeoutMS    int    `yaml:"match_wait_timeout_ms"`
	ReadBufferSize        int    `yaml:"read_buffer_size"`
	WriteBufferSize       int    `yaml:"write_buffer_size"`
}

func Default() Config {
	return Config{
		Addr:                  ":3000",
		AllowOrigins:          "http://localhost:5173",
		ClockSeconds:          600,
		MatchmakingIntervalMS: 1000,
		MatchWaitTimeoutMS:    30000,
		ReadBufferSize:        1024,
		WriteBufferSize:       1024,
	}
}

// Load reads a YAML file over the defaults. An empty path means defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

func (c Config) ClockBudget() time.Duration {
	return time.Duration(c.ClockSeconds) * time.Second
}

func (c Config) MatchmakingInterval() time.Duration {
	return time.Duration(c.MatchmakingIntervalMS) * time.Millisecond
}

func (c Config) MatchWaitTimeout() time.Duration {
	return time.Duration(c.MatchWaitTimeoutMS) * time.Millisecond
}
