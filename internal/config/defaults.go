package config

func Default() *Config {
	return &Config{
		Sampling: SamplingConfig{
			IntervalMS: 1000,
		},
		Display: DisplayConfig{
			Advanced: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "",
		},
	}
}
