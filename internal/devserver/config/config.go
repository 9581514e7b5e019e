// Package config handles configuration for the development API server:
// defaults, environment (with an optional dotenv file), a JSON overlay and
// command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the development API server.
//
// SecretKey signs access tokens (HS256). When empty, a random key is made
// at start, so tokens do not survive a restart. Mail is sent through Resend only when ResendAPIKey and
// MailTo are both set; otherwise contact messages are just logged.
type Config struct {
	Addr           string
	SecretKey      string
	TokenTTL       time.Duration
	AdminUser      string
	AdminPassword  string
	AdminEmail     string
	AllowedOrigins []string
	ResendAPIKey   string
	MailFrom       string
	MailTo         string
	LogLevel       string
	Seed           bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = ":8081"
	c.TokenTTL = 24 * time.Hour
	c.AdminUser = "admin"
	c.AdminPassword = "admin123"
	c.AdminEmail = "admin@example.com"
	c.AllowedOrigins = []string{"*"}
	c.MailFrom = "onboarding@resend.dev"
	c.LogLevel = "info"
	c.Seed = true
}

// MailEnabled reports whether contact notifications go out by email.
func (c *Config) MailEnabled() bool {
	return c.ResendAPIKey != "" && c.MailTo != ""
}

func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
