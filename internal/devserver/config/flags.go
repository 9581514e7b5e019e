package config

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/portfolio/internal/flagx"
)

// parseFlags overlays cfg with command-line flags:
//
//	-a string   listen address (e.g. ":8081")
//	-s string   JWT HMAC secret key
//	-t int      access token validity, hours
//	-u string   admin username
//	-p string   admin password
//	-o string   allowed CORS origins, comma-separated
//	-l string   log level
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-u", "-p", "-o", "-l"})

	fs := flag.NewFlagSet("devserver", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	tokenTTL := fs.Int("t", int(cfg.TokenTTL.Hours()), "token validity (in hours)")
	fs.StringVar(&cfg.AdminUser, "u", cfg.AdminUser, "admin username")
	fs.StringVar(&cfg.AdminPassword, "p", cfg.AdminPassword, "admin password")
	origins := fs.String("o", "", "allowed origins")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			cfg.TokenTTL = time.Duration(*tokenTTL) * time.Hour
		}
	})
	if *origins != "" {
		cfg.AllowedOrigins = splitList(*origins)
	}
}
