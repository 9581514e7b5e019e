package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

const (
	envAPIBaseURL     = "PORTFOLIO_API_URL"
	envSessionDBPath  = "PORTFOLIO_SESSION_DB"
	envRequestTimeout = "PORTFOLIO_REQUEST_TIMEOUT"
	envLogLevel       = "PORTFOLIO_LOG_LEVEL"
)

// parseEnv overlays cfg with PORTFOLIO_* variables. A dotenv file named by
// -e/-env is loaded first and must exist; otherwise ./.env is loaded if
// present. Variables already set in the process are never overridden.
func parseEnv(cfg *Config) {
	if path := flagx.EnvFileFlags(); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else {
		_ = godotenv.Load()
	}

	if v, ok := os.LookupEnv(envAPIBaseURL); ok {
		cfg.APIBaseURL = v
	}
	if v, ok := os.LookupEnv(envSessionDBPath); ok {
		cfg.SessionDBPath = v
	}
	if v, ok := os.LookupEnv(envRequestTimeout); ok {
		d, err := parseSeconds(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.LogLevel = v
	}
}

// parseSeconds accepts either a Go duration ("20s") or whole seconds ("20").
func parseSeconds(v string) (time.Duration, error) {
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}
