// Package config loads runtime configuration for the portfolio console.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: PORTFOLIO_API_URL, PORTFOLIO_SESSION_DB,
//     PORTFOLIO_REQUEST_TIMEOUT, PORTFOLIO_LOG_LEVEL. A dotenv file is read
//     first (-e/-env, or ./.env when present).
//  3. JSON file selected with -c or -config.
//  4. Flags -a, -d, -t, -n, -l.
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8081/api",
//	  "session_db_path": "portfolio.db",
//	  "request_timeout": "15s",
//	  "notice_timeout": "3s",
//	  "log_level": "warn"
//	}
package config
