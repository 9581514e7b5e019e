package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

const (
	envAddr           = "DEVSERVER_ADDR"
	envSecretKey      = "JWT_SECRET"
	envAdminUser      = "ADMIN_USERNAME"
	envAdminPassword  = "ADMIN_PASSWORD"
	envAdminEmail     = "ADMIN_EMAIL"
	envAllowedOrigins = "ALLOWED_ORIGINS"
	envResendAPIKey   = "RESEND_API_KEY"
	envMailFrom       = "FROM_EMAIL"
	envMailTo         = "TO_EMAIL"
	envLogLevel       = "LOG_LEVEL"
)

// parseEnv overlays cfg with environment variables. A dotenv file named by
// -e/-env must exist; otherwise ./.env is loaded when present.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	str := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	str(envAddr, &cfg.Addr)
	str(envSecretKey, &cfg.SecretKey)
	str(envAdminUser, &cfg.AdminUser)
	str(envAdminPassword, &cfg.AdminPassword)
	str(envAdminEmail, &cfg.AdminEmail)
	str(envResendAPIKey, &cfg.ResendAPIKey)
	str(envMailFrom, &cfg.MailFrom)
	str(envMailTo, &cfg.MailTo)
	str(envLogLevel, &cfg.LogLevel)

	if v, ok := os.LookupEnv(envAllowedOrigins); ok {
		cfg.AllowedOrigins = splitList(v)
	}
}

// splitList splits a comma-separated list and drops blank items.
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
