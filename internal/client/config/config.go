package config

import "time"

// Config holds runtime settings for the portfolio console.
type Config struct {
	APIBaseURL     string
	SessionDBPath  string
	RequestTimeout time.Duration
	NoticeTimeout  time.Duration
	LogLevel       string
}

// LoadDefaults populates c with defaults suitable for a local backend.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8081/api"
	c.SessionDBPath = "portfolio.db"
	c.RequestTimeout = 15 * time.Second
	c.NoticeTimeout = 3 * time.Second
	c.LogLevel = "warn"
}

// LoadConfig applies defaults, then the environment, then an optional JSON
// file, then flags. Later sources win.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
