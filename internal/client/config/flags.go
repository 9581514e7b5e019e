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
//	-a string   API base URL
//	-d string   session database path
//	-t int      request timeout (seconds, 0 disables)
//	-n int      success notice timeout (seconds)
//	-l string   log level
//
// Other arguments are ignored so the command tree can own them.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t", "-n", "-l"})

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	noticeTimeout := fs.Int("n", int(cfg.NoticeTimeout.Seconds()), "notice timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// Only flags given on the command line override; the defaults above are
	// whole seconds and would truncate sub-second env or JSON values.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "n":
			cfg.NoticeTimeout = time.Duration(*noticeTimeout) * time.Second
		}
	})
}
