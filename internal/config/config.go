package config

import "time"

type Config struct {
	Sampling SamplingConfig `yaml:"sampling"`
	Display  DisplayConfig  `yaml:"display"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type SamplingConfig struct {
	IntervalMS int `yaml:"interval_ms"`
}

type DisplayConfig struct {
	// Advanced enables one graph per CPU core below the basic section.
	// The --advanced flag overrides this.
	Advanced bool `yaml:"advanced"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File is the log sink path. The terminal itself belongs to the
	// dashboard, so logs are discarded when no file is set.
	File string `yaml:"file"`
}

func (c *Config) SamplingInterval() time.Duration {
	return time.Duration(c.Sampling.IntervalMS) * time.Millisecond
}
