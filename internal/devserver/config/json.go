package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
	"github.com/dmitrijs2005/portfolio/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Absent keys leave
// the current values alone.
type JsonConfig struct {
	Addr           *string         `json:"addr"`
	SecretKey      *string         `json:"secret_key"`
	TokenTTL       *timex.Duration `json:"token_ttl"`
	AdminUser      *string         `json:"admin_username"`
	AdminPassword  *string         `json:"admin_password"`
	AdminEmail     *string         `json:"admin_email"`
	AllowedOrigins []string        `json:"allowed_origins"`
	ResendAPIKey   *string         `json:"resend_api_key"`
	MailFrom       *string         `json:"from_email"`
	MailTo         *string         `json:"to_email"`
	LogLevel       *string         `json:"log_level"`
	Seed           *bool           `json:"seed"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Read and decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	set := func(src *string, dst *string) {
		if src != nil {
			*dst = *src
		}
	}

	set(jc.Addr, &cfg.Addr)
	set(jc.SecretKey, &cfg.SecretKey)
	set(jc.AdminUser, &cfg.AdminUser)
	set(jc.AdminPassword, &cfg.AdminPassword)
	set(jc.AdminEmail, &cfg.AdminEmail)
	set(jc.ResendAPIKey, &cfg.ResendAPIKey)
	set(jc.MailFrom, &cfg.MailFrom)
	set(jc.MailTo, &cfg.MailTo)
	set(jc.LogLevel, &cfg.LogLevel)

	if jc.TokenTTL != nil {
		cfg.TokenTTL = jc.TokenTTL.Duration
	}
	if jc.AllowedOrigins != nil {
		cfg.AllowedOrigins = jc.AllowedOrigins
	}
	if jc.Seed != nil {
		cfg.Seed = *jc.Seed
	}
}
